package planner

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/models"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel() Model {
	m := New(80, 20)
	m.SetRecipes([]models.Recipe{{ID: 1, Name: "Oatmeal"}, {ID: 2, Name: "Turkey Sandwich"}})
	plan := models.MealPlan{Meals: constants.Meals, Entries: []models.PlanEntry{{DayIndex: 0, Meal: "breakfast", RecipeID: 1}}}
	for i, d := range constants.Days {
		plan.Days = append(plan.Days, models.Day{Index: i, Name: d})
	}
	m.SetPlan(plan)
	return m
}

func TestCursorMovementIsClamped(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(keyMsg("up"))
	if day, meal := m.Selected(); day != 0 || meal != "breakfast" {
		t.Errorf("Selected() = %d, %s; want 0, breakfast", day, meal)
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("down"))
		m, _ = m.Update(keyMsg("right"))
	}
	if day, meal := m.Selected(); day != 6 || meal != "dinner" {
		t.Errorf("Selected() = %d, %s; want 6, dinner", day, meal)
	}
}

func TestPickEmitsSlot(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("right"))

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should emit a pick command")
	}
	msg, ok := cmd().(PickRecipeMsg)
	if !ok || msg.DayIndex != 1 || msg.Meal != "lunch" {
		t.Errorf("msg = %#v, want PickRecipeMsg{1, lunch}", cmd())
	}
}

func TestClearOnlyFilledSlots(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(keyMsg("x"))
	if cmd == nil {
		t.Fatal("x on a filled slot should emit a clear command")
	}
	if msg, ok := cmd().(ClearMealMsg); !ok || msg.DayIndex != 0 || msg.Meal != "breakfast" {
		t.Errorf("msg = %#v, want ClearMealMsg{0, breakfast}", cmd())
	}

	m, _ = m.Update(keyMsg("right"))
	if _, cmd := m.Update(keyMsg("x")); cmd != nil {
		t.Error("x on an empty slot should do nothing")
	}
}

func TestAssignShowsImmediately(t *testing.T) {
	m := newTestModel()
	m.Assign(3, "dinner", 2)

	if !strings.Contains(m.View(), "Turkey Sandwich") {
		t.Error("view should show the locally assigned recipe")
	}
	if id, ok := m.Plan().RecipeFor(3, "dinner"); !ok || id != 2 {
		t.Errorf("RecipeFor(3, dinner) = %d, %v", id, ok)
	}

	m.Assign(0, "breakfast", 0)
	if strings.Contains(m.View(), "Oatmeal") {
		t.Error("cleared slot should not show its old recipe")
	}
}

func TestViewBeforeLoad(t *testing.T) {
	if got := New(80, 20).View(); !strings.Contains(got, "Loading") {
		t.Errorf("View() = %q, want loading message", got)
	}
}
