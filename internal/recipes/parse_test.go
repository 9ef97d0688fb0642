package recipes

import (
	"reflect"
	"testing"

	"github.com/julianstephens/mealplan/internal/models"
)

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []models.Ingredient
	}{
		{
			name:  "well formed lines keep order",
			input: "Flour, 2 cups\nSugar, 1 cup",
			want: []models.Ingredient{
				{Item: "Flour", Quantity: "2 cups"},
				{Item: "Sugar", Quantity: "1 cup"},
			},
		},
		{
			name:  "extra commas stay in quantity",
			input: "Sauce, 1 tbsp, diced",
			want:  []models.Ingredient{{Item: "Sauce", Quantity: "1 tbsp, diced"}},
		},
		{
			name:  "line without comma is skipped",
			input: "Salt",
			want:  nil,
		},
		{
			name:  "blank lines are skipped",
			input: "\n  \nEggs, 2\n\n",
			want:  []models.Ingredient{{Item: "Eggs", Quantity: "2"}},
		},
		{
			name:  "segments are trimmed and rejoined",
			input: "  Butter ,  50g ,softened  ",
			want:  []models.Ingredient{{Item: "Butter", Quantity: "50g, softened"}},
		},
		{
			name:  "windows line endings",
			input: "Milk, 1 cup\r\nHoney, 1 tbsp\r\n",
			want: []models.Ingredient{
				{Item: "Milk", Quantity: "1 cup"},
				{Item: "Honey", Quantity: "1 tbsp"},
			},
		},
		{
			name:  "empty item is skipped",
			input: ", 2 cups",
			want:  nil,
		},
		{
			name:  "empty item among valid lines",
			input: "Salt\n, 1 tsp\nPepper, pinch",
			want:  []models.Ingredient{{Item: "Pepper", Quantity: "pinch"}},
		},
		{
			name:  "mixed valid and invalid",
			input: "Salt\nPepper, pinch",
			want:  []models.Ingredient{{Item: "Pepper", Quantity: "pinch"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIngredients(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIngredients(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseIngredients_Idempotent(t *testing.T) {
	input := "Flour, 2 cups\nSugar, 1 cup"
	first := ParseIngredients(input)
	second := ParseIngredients(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing is not stable: %v vs %v", first, second)
	}
}
