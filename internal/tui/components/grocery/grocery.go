package grocery

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mealplan/internal/models"
)

var (
	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	qtyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type Model struct {
	viewport viewport.Model
	items    []models.GroceryItem
	loaded   bool
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return "Loading grocery list..."
	}
	if len(m.items) == 0 {
		return "Grocery list is empty. Plan some meals first."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetItems(items []models.GroceryItem) {
	m.items = items
	m.loaded = true
	m.render()
}

func (m *Model) render() {
	var b strings.Builder
	for _, it := range m.items {
		b.WriteString("• " + itemStyle.Render(it.Item) + "  " + qtyStyle.Render(strings.Join(it.Quantities, ", ")) + "\n")
	}
	m.viewport.SetContent(b.String())
}
