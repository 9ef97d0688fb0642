package tui

import "github.com/julianstephens/mealplan/internal/models"

type recipesLoadedMsg struct {
	recipes []models.Recipe
}

type planLoadedMsg struct {
	plan models.MealPlan
}

type groceryLoadedMsg struct {
	items []models.GroceryItem
}

type loadFailedMsg struct {
	what string
	err  error
}

// mealUpdatedMsg carries the side effects of one set-meal call back to the
// update loop.
type mealUpdatedMsg struct {
	alerts []string
	err    error
}

// recipeSubmittedMsg carries the side effects of one add-recipe call back to
// the update loop.
type recipeSubmittedMsg struct {
	alerts  []string
	reloads int
	err     error
}
