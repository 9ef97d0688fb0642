package tui

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mealplan/internal/client"
	"github.com/julianstephens/mealplan/internal/meals"
	"github.com/julianstephens/mealplan/internal/notify"
	"github.com/julianstephens/mealplan/internal/recipes"
)

// Every command runs on its own goroutine. Alerts and reloads are recorded
// there and replayed by Update, so the model is only touched on the update loop.

func fetchRecipesCmd(ctx context.Context, c client.Client) tea.Cmd {
	return func() tea.Msg {
		list, err := c.ListRecipes(ctx)
		if err != nil {
			return loadFailedMsg{what: "recipes", err: err}
		}
		return recipesLoadedMsg{recipes: list}
	}
}

func fetchPlanCmd(ctx context.Context, c client.Client) tea.Cmd {
	return func() tea.Msg {
		plan, err := c.GetMealPlan(ctx)
		if err != nil {
			return loadFailedMsg{what: "meal plan", err: err}
		}
		return planLoadedMsg{plan: plan}
	}
}

func fetchGroceryCmd(ctx context.Context, c client.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := c.GetGroceryList(ctx)
		if err != nil {
			return loadFailedMsg{what: "grocery list", err: err}
		}
		return groceryLoadedMsg{items: items}
	}
}

// updateMealCmd sends one slot change. recipeID 0 clears the slot.
func updateMealCmd(ctx context.Context, c client.Client, dayIndex int, meal string, recipeID int64) tea.Cmd {
	day := strconv.Itoa(dayIndex)
	id := ""
	if recipeID != 0 {
		id = strconv.FormatInt(recipeID, 10)
	}
	return func() tea.Msg {
		rec := &notify.Recorder{}
		err := meals.NewUpdater(c, rec).Update(ctx, day, meal, id)
		return mealUpdatedMsg{alerts: rec.Alerts(), err: err}
	}
}

func submitRecipeCmd(ctx context.Context, c client.Client, f recipes.Fields) tea.Cmd {
	return func() tea.Msg {
		rec := &notify.Recorder{}
		err := recipes.NewSubmitter(c, rec, rec).Submit(ctx, f)
		return recipeSubmittedMsg{alerts: rec.Alerts(), reloads: rec.Reloads(), err: err}
	}
}
