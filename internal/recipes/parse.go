package recipes

import (
	"strings"

	"github.com/julianstephens/mealplan/internal/models"
)

// ParseIngredients turns an "item, quantity" per-line block into ingredient
// pairs. Blank lines, lines without a comma, and lines with an empty item are
// skipped. Extra commas stay in the quantity, rejoined with ", ".
func ParseIngredients(text string) []models.Ingredient {
	var ingredients []models.Ingredient
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if parts[0] == "" {
			continue
		}
		ingredients = append(ingredients, models.Ingredient{
			Item:     parts[0],
			Quantity: strings.Join(parts[1:], ", "),
		})
	}
	return ingredients
}
