package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mealplan/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case len(m.alerts) > 0:
		content = m.viewAlert()
	case m.state == constants.StateAddRecipe || m.state == constants.StatePickRecipe:
		content = docStyle.Render(m.form.View())
	default:
		content = docStyle.Render(m.viewContent())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m),
	)
}

// viewHeader draws the menu at the top-left corner, which is the origin its
// click bounds are computed from.
func (m Model) viewHeader() string {
	title := titleStyle.Render(m.title())
	status := ""
	switch {
	case m.loadErr != "":
		status = errorStyle.Render(m.loadErr)
	case m.pending > 0:
		status = mutedStyle.Render("saving...")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.nav.View(), " ", title, " ", status)
}

func (m Model) title() string {
	switch m.state {
	case constants.StateRecipes, constants.StateAddRecipe:
		return constants.LinkTitle(constants.LinkRecipes)
	case constants.StateMealPlan, constants.StatePickRecipe:
		return constants.LinkTitle(constants.LinkMealPlan)
	case constants.StateGrocery:
		return constants.LinkTitle(constants.LinkGrocery)
	default:
		return "Meal Planner"
	}
}

func (m Model) viewContent() string {
	switch m.state {
	case constants.StateRecipes:
		return m.recipeList.View()
	case constants.StateMealPlan:
		return m.planner.View()
	case constants.StateGrocery:
		return m.groceryModel.View()
	default:
		return m.viewHome()
	}
}

func (m Model) viewHome() string {
	slots := len(constants.Days) * len(constants.Meals)
	planned := len(m.planner.Plan().Entries)
	return lipgloss.JoinVertical(lipgloss.Left,
		"Plan your week, keep your recipes, and shop from one list.",
		"",
		fmt.Sprintf("%d recipes", len(m.recipes)),
		fmt.Sprintf("%d of %d meals planned", planned, slots),
		"",
		mutedStyle.Render("Press 'm' or click the menu to get started."),
	)
}

func (m Model) viewAlert() string {
	box := alertStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.alerts[0],
		"",
		mutedStyle.Render("[enter] OK"),
	))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, box)
}
