package navmenu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/nav"
)

// NavigateMsg is emitted when a menu link is chosen.
type NavigateMsg struct {
	Link constants.MenuLink
}

var (
	toggleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	activeLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
)

type KeyMap struct {
	Toggle key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
	}
}

// Model renders the menu toggle and, while open, its links. The row layout
// is one line per entry with the toggle on the first row, so a click maps to
// an entry by its row offset from the origin.
type Model struct {
	menu   nav.Menu
	links  []constants.MenuLink
	cursor int
	keys   KeyMap
	x, y   int
}

func New() Model {
	return Model{
		links: constants.MenuLinks,
		keys:  DefaultKeyMap(),
	}
}

func (m Model) State() nav.MenuState { return m.menu.State() }

func (m Model) IsOpen() bool { return m.menu.IsOpen() }

func (m Model) Keys() KeyMap { return m.keys }

// SetOrigin records where the parent draws the menu on screen.
func (m *Model) SetOrigin(x, y int) {
	m.x, m.y = x, y
}

// Contains reports whether the screen cell (x, y) falls inside the menu container.
func (m Model) Contains(x, y int) bool {
	view := m.View()
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	return x >= m.x && x < m.x+w && y >= m.y && y < m.y+h
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.menu.Toggle()
		return m, nil
	}

	if !m.menu.IsOpen() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.menu.Close()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.links)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m, m.navigate(m.cursor)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	inside := m.Contains(msg.X, msg.Y)
	if inside {
		rows := m.rows()
		row, col := msg.Y-m.y, msg.X-m.x
		// Only the rendered text of a row is a control; the rest of the
		// container is inert.
		if col < lipgloss.Width(rows[row]) {
			if row == 0 {
				m.menu.Toggle()
				return m, nil
			}
			m.cursor = row - 1
			return m, m.navigate(m.cursor)
		}
	}

	m.menu.HandleClick(inside)
	return m, nil
}

func (m *Model) navigate(i int) tea.Cmd {
	link := m.menu.SelectLink(m.links[i])
	return func() tea.Msg { return NavigateMsg{Link: link} }
}

func (m Model) View() string {
	return strings.Join(m.rows(), "\n")
}

func (m Model) rows() []string {
	icon := "☰"
	if m.menu.IsOpen() {
		icon = "✕"
	}
	rows := []string{toggleStyle.Render(icon + " Menu")}

	if m.menu.IsOpen() {
		for i, l := range m.links {
			style := linkStyle
			if i == m.cursor {
				style = activeLinkStyle
			}
			rows = append(rows, style.Render(constants.LinkTitle(l)))
		}
	}
	return rows
}
