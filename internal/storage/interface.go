package storage

import (
	"errors"

	"github.com/julianstephens/mealplan/internal/models"
)

var (
	ErrNotInitialized = errors.New("storage not initialized, run 'mealplan init' first")
	ErrRecipeNotFound = errors.New("recipe not found")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Recipes
	AddRecipe(models.RecipeDraft) (int64, error)
	GetRecipe(id int64) (models.Recipe, error)
	GetRecipes() ([]models.Recipe, error)

	// Meal plan
	// SetMeal replaces the recipe in a slot; a nil recipeID clears it.
	SetMeal(dayIndex int, meal string, recipeID *int64) error
	GetMealPlan() (models.MealPlan, error)
	GetGroceryList() ([]models.GroceryItem, error)

	// Utils
	GetConfigPath() string
}

// Seed adds the given recipes through p.
func Seed(p Provider, recipes []models.RecipeDraft) error {
	for _, r := range recipes {
		if _, err := p.AddRecipe(r); err != nil {
			return err
		}
	}
	return nil
}
