package recipelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mealplan/internal/models"
)

type AddRecipeMsg struct{}

type Item struct {
	Recipe models.Recipe
}

func (i Item) Title() string { return i.Recipe.Name }

func (i Item) Description() string {
	items := make([]string, 0, len(i.Recipe.Ingredients))
	for _, ing := range i.Recipe.Ingredients {
		items = append(items, ing.Item)
	}
	return fmt.Sprintf("%d ingredients | %s", len(items), strings.Join(items, ", "))
}

func (i Item) FilterValue() string { return i.Recipe.Name }

type KeyMap struct {
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add recipe"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(recipes []models.Recipe, width, height int) Model {
	l := list.New(toItems(recipes), list.NewDefaultDelegate(), width, height)
	l.Title = "Recipes"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}

	return Model{list: l, keys: keys}
}

func toItems(recipes []models.Recipe) []list.Item {
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		items[i] = Item{Recipe: r}
	}
	return items
}

func (m *Model) SetRecipes(recipes []models.Recipe) {
	m.list.SetItems(toItems(recipes))
}

// Selected returns the highlighted recipe, if any.
func (m Model) Selected() (models.Recipe, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Recipe, ok
}

// Filtering reports whether the list is capturing keys for its filter input.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		if key.Matches(msg, m.keys.Add) {
			return m, func() tea.Msg { return AddRecipeMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No recipes yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
