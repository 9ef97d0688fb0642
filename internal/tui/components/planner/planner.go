package planner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/models"
)

// PickRecipeMsg asks the parent to choose a recipe for a slot.
type PickRecipeMsg struct {
	DayIndex int
	Meal     string
}

// ClearMealMsg asks the parent to empty a slot.
type ClearMealMsg struct {
	DayIndex int
	Meal     string
}

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Bold(true).
			Padding(0, 1)
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pick  key.Binding
	Clear key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev day"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next day"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev meal"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next meal"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose recipe"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "clear slot"),
		),
	}
}

// Model is the weekly grid. Each cell is a (day, meal) select.
type Model struct {
	plan   models.MealPlan
	names  map[int64]string
	day    int
	meal   int
	keys   KeyMap
	width  int
	height int
	loaded bool
}

func New(width, height int) Model {
	return Model{
		names:  map[int64]string{},
		keys:   DefaultKeyMap(),
		width:  width,
		height: height,
	}
}

func (m Model) Keys() KeyMap { return m.keys }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetPlan(plan models.MealPlan) {
	m.plan = plan
	m.loaded = true
}

func (m *Model) SetRecipes(recipes []models.Recipe) {
	m.names = make(map[int64]string, len(recipes))
	for _, r := range recipes {
		m.names[r.ID] = r.Name
	}
}

// Plan returns the grid's current view of the plan, including local edits.
func (m Model) Plan() models.MealPlan { return m.plan }

// Assign reflects a slot change locally before the server confirms it.
func (m *Model) Assign(dayIndex int, meal string, recipeID int64) {
	m.plan.Assign(dayIndex, meal, recipeID)
}

// Selected returns the slot under the cursor.
func (m Model) Selected() (int, string) {
	return m.day, m.meals()[m.meal]
}

func (m Model) days() []models.Day {
	if len(m.plan.Days) > 0 {
		return m.plan.Days
	}
	days := make([]models.Day, len(constants.Days))
	for i, name := range constants.Days {
		days[i] = models.Day{Index: i, Name: name}
	}
	return days
}

func (m Model) meals() []string {
	if len(m.plan.Meals) > 0 {
		return m.plan.Meals
	}
	return constants.Meals
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.day > 0 {
			m.day--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.day < len(m.days())-1 {
			m.day++
		}
	case key.Matches(keyMsg, m.keys.Left):
		if m.meal > 0 {
			m.meal--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.meal < len(m.meals())-1 {
			m.meal++
		}
	case key.Matches(keyMsg, m.keys.Pick):
		day, meal := m.Selected()
		return m, func() tea.Msg { return PickRecipeMsg{DayIndex: day, Meal: meal} }
	case key.Matches(keyMsg, m.keys.Clear):
		day, meal := m.Selected()
		if _, ok := m.plan.RecipeFor(day, meal); ok {
			return m, func() tea.Msg { return ClearMealMsg{DayIndex: day, Meal: meal} }
		}
	}
	return m, nil
}

func (m Model) cellWidth() int {
	w := (m.width - 12) / len(m.meals())
	if w < 14 {
		w = 14
	}
	if w > 28 {
		w = 28
	}
	return w
}

func (m Model) View() string {
	if !m.loaded {
		return "Loading meal plan..."
	}

	cw := m.cellWidth()
	var b strings.Builder

	b.WriteString(dayStyle.Render(""))
	for _, meal := range m.meals() {
		b.WriteString(headerStyle.Width(cw).Render(" " + strings.ToUpper(meal[:1]) + meal[1:]))
	}
	b.WriteString("\n")

	for di, d := range m.days() {
		b.WriteString(dayStyle.Render(d.Name))
		for mi, meal := range m.meals() {
			style := cellStyle
			label := "-- none --"
			if id, ok := m.plan.RecipeFor(d.Index, meal); ok {
				label = m.names[id]
				if label == "" {
					label = fmt.Sprintf("#%d", id)
				}
			} else {
				style = emptyStyle
			}
			if di == m.day && mi == m.meal {
				style = selectedStyle
			}
			b.WriteString(style.Width(cw).MaxWidth(cw).Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
