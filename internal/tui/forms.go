package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/models"
)

// NewRecipeForm has no field validators: blank fields and malformed
// ingredient lines are reported by the submitter as alerts.
func NewRecipeForm(fm *RecipeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recipe Name").
				Value(&fm.Name),
			huh.NewText().
				Title("Ingredients").
				Description("One per line: item, quantity").
				Value(&fm.Ingredients),
			huh.NewText().
				Title("Instructions").
				Value(&fm.Instructions),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewPickForm lists every recipe plus an empty choice that clears the slot.
func NewPickForm(fm *PickFormModel, recipes []models.Recipe) *huh.Form {
	options := []huh.Option[int64]{huh.NewOption("-- none --", int64(0))}
	for _, r := range recipes {
		options = append(options, huh.NewOption(r.Name, r.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title(fmt.Sprintf("%s %s", constants.Days[fm.DayIndex], fm.Meal)).
				Options(options...).
				Value(&fm.RecipeID),
		),
	).WithTheme(huh.ThemeDracula())
}
