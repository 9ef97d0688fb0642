package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/logger"
	"github.com/julianstephens/mealplan/internal/recipes"
	"github.com/julianstephens/mealplan/internal/tui/components/navmenu"
	"github.com/julianstephens/mealplan/internal/tui/components/planner"
	"github.com/julianstephens/mealplan/internal/tui/components/recipelist"
)

var mainViews = []constants.SessionState{
	constants.StateHome,
	constants.StateRecipes,
	constants.StateMealPlan,
	constants.StateGrocery,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := msg.Width-4, msg.Height-8
		m.planner.SetSize(w, h)
		m.recipeList.SetSize(w, h)
		m.groceryModel.SetSize(w, h)
		return m, nil

	case tea.MouseMsg:
		// An alert is modal: the pointer is ignored until it is dismissed.
		if len(m.alerts) > 0 {
			return m, nil
		}
		// Every other click in the session reaches the menu so it can close
		// on clicks outside itself.
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		return m, cmd

	case navmenu.NavigateMsg:
		return m.navigate(stateForLink(msg.Link))

	case recipesLoadedMsg:
		m.recipes = msg.recipes
		m.recipeList.SetRecipes(msg.recipes)
		m.planner.SetRecipes(msg.recipes)
		m.loadErr = ""
		return m, nil

	case planLoadedMsg:
		m.planner.SetPlan(msg.plan)
		m.loadErr = ""
		return m, nil

	case groceryLoadedMsg:
		m.groceryModel.SetItems(msg.items)
		m.loadErr = ""
		return m, nil

	case loadFailedMsg:
		logger.Warn("Failed to load view data", "what", msg.what, "error", msg.err)
		m.loadErr = fmt.Sprintf("Could not load %s", msg.what)
		return m, nil

	case mealUpdatedMsg:
		m.pending--
		m.alerts = append(m.alerts, msg.alerts...)
		return m, nil

	case recipeSubmittedMsg:
		m.pending--
		m.alerts = append(m.alerts, msg.alerts...)
		var cmds []tea.Cmd
		for i := 0; i < msg.reloads; i++ {
			cmds = append(cmds, m.reload())
		}
		return m, tea.Batch(cmds...)

	case planner.PickRecipeMsg:
		return m.openPickForm(msg.DayIndex, msg.Meal)

	case planner.ClearMealMsg:
		return m.applyPick(msg.DayIndex, msg.Meal, 0)

	case recipelist.AddRecipeMsg:
		return m.openRecipeForm()
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, next, cmd := m.handleGlobalKeys(keyMsg); handled {
			return next, cmd
		}
	}

	switch m.state {
	case constants.StateAddRecipe, constants.StatePickRecipe:
		return m.updateForm(msg)
	}

	return m.updateView(msg)
}

// handleGlobalKeys returns handled=false when the key should fall through to
// the active form or view.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, m.quit(), tea.Quit
	}

	// An alert blocks everything until it is dismissed.
	if len(m.alerts) > 0 {
		if key.Matches(msg, m.keys.Dismiss) {
			m.alerts = m.alerts[1:]
		}
		return true, m, nil
	}

	if m.state == constants.StateAddRecipe || m.state == constants.StatePickRecipe {
		return false, m, nil
	}

	if m.nav.IsOpen() {
		if key.Matches(msg, m.keys.Quit) {
			return true, m.quit(), tea.Quit
		}
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		return true, m, cmd
	}

	if m.state == constants.StateRecipes && m.recipeList.Filtering() {
		return false, m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, m.quit(), tea.Quit
	case key.Matches(msg, m.keys.Menu):
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		return true, m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, m, nil
	case key.Matches(msg, m.keys.Refresh):
		return true, m, m.reload()
	case key.Matches(msg, m.keys.Tab):
		next, cmd := m.navigate(m.cycleView(1))
		return true, next, cmd
	case key.Matches(msg, m.keys.ShiftTab):
		next, cmd := m.navigate(m.cycleView(-1))
		return true, next, cmd
	}
	return false, m, nil
}

func (m Model) quit() Model {
	m.quitting = true
	m.cancel()
	return m
}

func (m Model) cycleView(step int) constants.SessionState {
	for i, s := range mainViews {
		if s == m.state {
			return mainViews[(i+step+len(mainViews))%len(mainViews)]
		}
	}
	return constants.StateHome
}

// navigate switches the active view and loads its data fresh.
func (m Model) navigate(state constants.SessionState) (Model, tea.Cmd) {
	m.state = state
	switch state {
	case constants.StateRecipes:
		return m, fetchRecipesCmd(m.ctx, m.client)
	case constants.StateMealPlan:
		// A refetch while a write is in flight would briefly undo the local edit.
		if m.pending > 0 {
			return m, fetchRecipesCmd(m.ctx, m.client)
		}
		return m, tea.Batch(fetchRecipesCmd(m.ctx, m.client), fetchPlanCmd(m.ctx, m.client))
	case constants.StateGrocery:
		return m, fetchGroceryCmd(m.ctx, m.client)
	}
	return m, nil
}

func (m Model) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case constants.StateRecipes:
		m.recipeList, cmd = m.recipeList.Update(msg)
	case constants.StateMealPlan:
		m.planner, cmd = m.planner.Update(msg)
	case constants.StateGrocery:
		m.groceryModel, cmd = m.groceryModel.Update(msg)
	}
	return m, cmd
}

func (m Model) openRecipeForm() (Model, tea.Cmd) {
	m.recipeForm = &RecipeFormModel{}
	m.pickForm = nil
	m.form = NewRecipeForm(m.recipeForm)
	m.returnState = constants.StateRecipes
	m.state = constants.StateAddRecipe
	return m, m.form.Init()
}

func (m Model) openPickForm(dayIndex int, meal string) (Model, tea.Cmd) {
	current, _ := m.planner.Plan().RecipeFor(dayIndex, meal)
	m.pickForm = &PickFormModel{DayIndex: dayIndex, Meal: meal, RecipeID: current}
	m.recipeForm = nil
	m.form = NewPickForm(m.pickForm, m.recipes)
	m.returnState = constants.StateMealPlan
	m.state = constants.StatePickRecipe
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		m.state = m.returnState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = m.returnState
		if m.pickForm != nil {
			return m.applyPick(m.pickForm.DayIndex, m.pickForm.Meal, m.pickForm.RecipeID)
		}
		return m.submitRecipe(recipes.Fields{
			Name:         m.recipeForm.Name,
			Ingredients:  m.recipeForm.Ingredients,
			Instructions: m.recipeForm.Instructions,
		})
	case huh.StateAborted:
		m.state = m.returnState
		return m, nil
	}
	return m, cmd
}

// applyPick shows the new slot value at once and sends it in the background.
// A failed send raises an alert but the local value is left as chosen.
func (m Model) applyPick(dayIndex int, meal string, recipeID int64) (Model, tea.Cmd) {
	if current, _ := m.planner.Plan().RecipeFor(dayIndex, meal); current == recipeID {
		return m, nil
	}
	m.planner.Assign(dayIndex, meal, recipeID)
	m.pending++
	return m, updateMealCmd(m.ctx, m.client, dayIndex, meal, recipeID)
}

func (m Model) submitRecipe(f recipes.Fields) (Model, tea.Cmd) {
	m.pending++
	return m, submitRecipeCmd(m.ctx, m.client, f)
}
