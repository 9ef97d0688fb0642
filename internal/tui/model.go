package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mealplan/internal/client"
	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/models"
	"github.com/julianstephens/mealplan/internal/tui/components/grocery"
	"github.com/julianstephens/mealplan/internal/tui/components/navmenu"
	"github.com/julianstephens/mealplan/internal/tui/components/planner"
	"github.com/julianstephens/mealplan/internal/tui/components/recipelist"
)

type RecipeFormModel struct {
	Name         string
	Ingredients  string
	Instructions string
}

type PickFormModel struct {
	DayIndex int
	Meal     string
	RecipeID int64
}

type Model struct {
	ctx          context.Context
	cancel       context.CancelFunc
	client       client.Client
	state        constants.SessionState
	returnState  constants.SessionState
	keys         KeyMap
	help         help.Model
	nav          navmenu.Model
	planner      planner.Model
	recipeList   recipelist.Model
	groceryModel grocery.Model
	recipes      []models.Recipe
	form         *huh.Form
	recipeForm   *RecipeFormModel
	pickForm     *PickFormModel
	alerts       []string
	loadErr      string
	pending      int
	quitting     bool
	width        int
	height       int
}

// NewModel builds the TUI around c. Its context is cancelled by Close, which
// aborts any request still in flight when the program exits.
func NewModel(c client.Client) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		ctx:          ctx,
		cancel:       cancel,
		client:       c,
		state:        constants.StateHome,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		nav:          navmenu.New(),
		planner:      planner.New(0, 0),
		recipeList:   recipelist.New(nil, 0, 0),
		groceryModel: grocery.New(0, 0),
	}
}

func (m Model) Close() {
	m.cancel()
}

func (m Model) Init() tea.Cmd {
	return m.reload()
}

// reload refetches everything shown by the views.
func (m Model) reload() tea.Cmd {
	return tea.Batch(
		fetchRecipesCmd(m.ctx, m.client),
		fetchPlanCmd(m.ctx, m.client),
		fetchGroceryCmd(m.ctx, m.client),
	)
}

// State returns the active view.
func (m Model) State() constants.SessionState { return m.state }

// Alerts returns the alerts waiting to be dismissed, oldest first.
func (m Model) Alerts() []string { return append([]string(nil), m.alerts...) }

func (m Model) ShortHelp() []key.Binding {
	if len(m.alerts) > 0 {
		return []key.Binding{m.keys.Dismiss}
	}
	keys := m.keys.ShortHelp()
	switch m.state {
	case constants.StateMealPlan:
		pk := m.planner.Keys()
		keys = append(keys, pk.Pick, pk.Clear)
	case constants.StateRecipes:
		keys = append(keys, recipelist.DefaultKeyMap().Add)
	case constants.StateAddRecipe, constants.StatePickRecipe:
		keys = []key.Binding{m.keys.Back}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	groups := m.keys.FullHelp()
	switch m.state {
	case constants.StateMealPlan:
		pk := m.planner.Keys()
		groups = append(groups, []key.Binding{pk.Up, pk.Down, pk.Left, pk.Right, pk.Pick, pk.Clear})
	case constants.StateRecipes:
		groups = append(groups, []key.Binding{recipelist.DefaultKeyMap().Add})
	}
	nk := m.nav.Keys()
	groups = append(groups, []key.Binding{nk.Toggle, nk.Up, nk.Down, nk.Select, nk.Close})
	return groups
}

func stateForLink(l constants.MenuLink) constants.SessionState {
	switch l {
	case constants.LinkRecipes:
		return constants.StateRecipes
	case constants.LinkMealPlan:
		return constants.StateMealPlan
	case constants.LinkGrocery:
		return constants.StateGrocery
	default:
		return constants.StateHome
	}
}
