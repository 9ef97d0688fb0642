package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/models"
	"github.com/julianstephens/mealplan/internal/recipes"
	"github.com/julianstephens/mealplan/internal/tui/components/navmenu"
	"github.com/julianstephens/mealplan/internal/tui/components/planner"
)

type fakeClient struct {
	mu          sync.Mutex
	setMealErr  error
	addErr      error
	assignments []models.MealAssignment
	drafts      []models.RecipeDraft
	listCalls   int
	recipes     []models.Recipe
	plan        models.MealPlan
}

func (f *fakeClient) SetMeal(_ context.Context, a models.MealAssignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments = append(f.assignments, a)
	return f.setMealErr
}

func (f *fakeClient) AddRecipe(_ context.Context, d models.RecipeDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts = append(f.drafts, d)
	return f.addErr
}

func (f *fakeClient) ListRecipes(context.Context) ([]models.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.recipes, nil
}

func (f *fakeClient) GetMealPlan(context.Context) (models.MealPlan, error) {
	return f.plan, nil
}

func (f *fakeClient) GetGroceryList(context.Context) ([]models.GroceryItem, error) {
	return []models.GroceryItem{}, nil
}

// runCmd executes cmd and any batched commands, returning the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func newLoadedModel(t *testing.T, fc *fakeClient) Model {
	t.Helper()
	fc.recipes = []models.Recipe{{ID: 7, Name: "Oatmeal"}, {ID: 9, Name: "Caesar Salad"}}
	fc.plan = models.MealPlan{Meals: constants.Meals, Entries: []models.PlanEntry{}}
	for i, d := range constants.Days {
		fc.plan.Days = append(fc.plan.Days, models.Day{Index: i, Name: d})
	}

	m := NewModel(fc)
	t.Cleanup(m.Close)
	return apply(t, m, runCmd(m.Init())...)
}

func TestInitLoadsViews(t *testing.T) {
	fc := &fakeClient{}
	m := newLoadedModel(t, fc)

	if len(m.recipes) != 2 {
		t.Errorf("recipes = %d, want 2", len(m.recipes))
	}
	if m.State() != constants.StateHome {
		t.Errorf("state = %v, want home", m.State())
	}
}

func TestNavigateClosesMenuAndSwitchesView(t *testing.T) {
	m := newLoadedModel(t, &fakeClient{})

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if !m.nav.IsOpen() {
		t.Fatal("m should open the menu")
	}

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.nav.IsOpen() {
		t.Error("selecting a link should close the menu")
	}

	m = apply(t, m, runCmd(cmd)...)
	if m.State() != constants.StateMealPlan {
		t.Errorf("state = %v, want meal plan", m.State())
	}
}

func TestOutsideClickClosesMenu(t *testing.T) {
	m := newLoadedModel(t, &fakeClient{})
	m = apply(t, m, navmenu.NavigateMsg{Link: constants.LinkGrocery})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})

	m = apply(t, m, tea.MouseMsg{X: 70, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.nav.IsOpen() {
		t.Error("click outside the menu should close it")
	}
	if m.State() != constants.StateGrocery {
		t.Errorf("outside click changed view to %v", m.State())
	}
}

func TestAlertBlocksMouse(t *testing.T) {
	m := newLoadedModel(t, &fakeClient{})
	toggle := tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m.alerts = []string{constants.MsgMealUpdateFailed}
	m = apply(t, m, toggle)
	if m.nav.IsOpen() {
		t.Error("click should not open the menu while an alert is shown")
	}
	if m.State() != constants.StateHome {
		t.Errorf("state = %v, want home", m.State())
	}

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter}, toggle)
	if !m.nav.IsOpen() {
		t.Error("click on the toggle should open the menu once the alert is dismissed")
	}
}

func TestApplyPickIsOptimistic(t *testing.T) {
	fc := &fakeClient{}
	m := newLoadedModel(t, fc)

	m, cmd := m.applyPick(2, "lunch", 7)
	if id, ok := m.planner.Plan().RecipeFor(2, "lunch"); !ok || id != 7 {
		t.Fatalf("slot not updated before the request: %d, %v", id, ok)
	}

	m = apply(t, m, runCmd(cmd)...)
	if len(fc.assignments) != 1 {
		t.Fatalf("SetMeal called %d times, want 1", len(fc.assignments))
	}
	a := fc.assignments[0]
	if a.Day != "2" || a.Meal != "lunch" || a.RecipeID == nil || *a.RecipeID != "7" {
		t.Errorf("assignment = %+v, want day 2 lunch recipe 7", a)
	}
	if len(m.Alerts()) != 0 {
		t.Errorf("alerts = %v, want none on success", m.Alerts())
	}
}

func TestClearSendsNullRecipe(t *testing.T) {
	fc := &fakeClient{}
	m := newLoadedModel(t, fc)
	m, cmd := m.applyPick(0, "dinner", 9)
	m = apply(t, m, runCmd(cmd)...)

	next, cmd := m.Update(planner.ClearMealMsg{DayIndex: 0, Meal: "dinner"})
	m = apply(t, next.(Model), runCmd(cmd)...)

	if len(fc.assignments) != 2 || fc.assignments[1].RecipeID != nil {
		t.Fatalf("assignments = %+v, want a second one with nil recipe", fc.assignments)
	}
	if _, ok := m.planner.Plan().RecipeFor(0, "dinner"); ok {
		t.Error("slot should be empty after clearing")
	}
}

func TestFailedUpdateAlertsAndKeepsLocalValue(t *testing.T) {
	fc := &fakeClient{setMealErr: errors.New("connection refused")}
	m := newLoadedModel(t, fc)

	m, cmd := m.applyPick(4, "breakfast", 9)
	m = apply(t, m, runCmd(cmd)...)

	if got := m.Alerts(); len(got) != 1 || got[0] != constants.MsgMealUpdateFailed {
		t.Fatalf("alerts = %v, want one failure alert", got)
	}
	if id, ok := m.planner.Plan().RecipeFor(4, "breakfast"); !ok || id != 9 {
		t.Error("local value should not be rolled back")
	}

	// the alert blocks other keys until dismissed
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if m.nav.IsOpen() {
		t.Error("keys should be blocked while an alert is shown")
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.Alerts()) != 0 {
		t.Error("enter should dismiss the alert")
	}
}

func TestOutOfOrderCompletion(t *testing.T) {
	fc := &fakeClient{}
	m := newLoadedModel(t, fc)

	m, first := m.applyPick(0, "lunch", 7)
	m, second := m.applyPick(1, "lunch", 9)
	if m.pending != 2 {
		t.Fatalf("pending = %d, want 2", m.pending)
	}

	m = apply(t, m, runCmd(second)...)
	m = apply(t, m, runCmd(first)...)
	if m.pending != 0 {
		t.Errorf("pending = %d, want 0", m.pending)
	}
	if len(fc.assignments) != 2 {
		t.Errorf("SetMeal called %d times, want 2", len(fc.assignments))
	}
}

func TestSubmitRecipeReloadsOnce(t *testing.T) {
	fc := &fakeClient{}
	m := newLoadedModel(t, fc)
	before := fc.listCalls

	m, cmd := m.submitRecipe(recipes.Fields{
		Name:         "Toast",
		Ingredients:  "bread, 2 slices",
		Instructions: "Toast it.",
	})
	msgs := runCmd(cmd)
	next, reload := m.Update(msgs[0])
	m = next.(Model)

	if got := m.Alerts(); len(got) != 1 || got[0] != constants.MsgRecipeAdded {
		t.Errorf("alerts = %v, want one success alert", got)
	}
	m = apply(t, m, runCmd(reload)...)
	if fc.listCalls != before+1 {
		t.Errorf("recipes fetched %d times after submit, want 1", fc.listCalls-before)
	}
}

func TestSubmitRecipeValidation(t *testing.T) {
	fc := &fakeClient{}
	m := newLoadedModel(t, fc)

	m, cmd := m.submitRecipe(recipes.Fields{Name: "Toast", Ingredients: "bread", Instructions: "Toast it."})
	next, reload := m.Update(runCmd(cmd)[0])
	m = next.(Model)

	if got := m.Alerts(); len(got) != 1 || got[0] != constants.MsgNeedIngredient {
		t.Errorf("alerts = %v, want the ingredient format alert", got)
	}
	if len(fc.drafts) != 0 {
		t.Error("no request should be sent for invalid input")
	}
	if msgs := runCmd(reload); len(msgs) != 0 {
		t.Errorf("no reload expected, got %v", msgs)
	}
}

func TestQuitCancelsContext(t *testing.T) {
	m := newLoadedModel(t, &fakeClient{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)

	if cmd == nil {
		t.Fatal("q should quit")
	}
	if m.ctx.Err() == nil {
		t.Error("quitting should cancel in-flight requests")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
