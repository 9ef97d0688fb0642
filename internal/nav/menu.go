// Package nav holds the open/closed state of the navigation menu.
package nav

import "github.com/julianstephens/mealplan/internal/constants"

// MenuState is the visibility of the navigation menu
type MenuState int

const (
	Closed MenuState = iota
	Open
)

func (s MenuState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Menu is a two-state machine with no transition guards. Close is
// idempotent, so callers never need to check the state first.
type Menu struct {
	state MenuState
}

func (m *Menu) State() MenuState { return m.state }

func (m *Menu) IsOpen() bool { return m.state == Open }

// Toggle flips the state
func (m *Menu) Toggle() {
	if m.state == Open {
		m.state = Closed
	} else {
		m.state = Open
	}
}

// Close hides the menu; a no-op when already closed
func (m *Menu) Close() {
	m.state = Closed
}

// HandleClick is the session-wide click handler. It closes the menu whenever
// the click landed outside the navigation container, whatever the state.
func (m *Menu) HandleClick(insideNav bool) {
	if !insideNav {
		m.Close()
	}
}

// SelectLink closes the menu and returns the chosen link for navigation.
func (m *Menu) SelectLink(link constants.MenuLink) constants.MenuLink {
	m.Close()
	return link
}
