package constants

import "time"

// SessionState represents the current view of the TUI application
type SessionState int

// MenuLink identifies a navigation target reachable from the menu
type MenuLink string

const (
	AppName           = "mealplan"
	Version           = "v0.3.0"
	DefaultConfigDir  = "~/.config/mealplan"
	DefaultDBPath     = "~/.config/mealplan/meal_planner.db"
	DefaultServerURL  = "http://localhost:5000"
	DefaultListenAddr = "0.0.0.0:5000"
	DefaultTimeout    = 10 * time.Second

	// API routes
	RouteSetMeal     = "/api/set-meal"
	RouteAddRecipe   = "/api/add-recipe"
	RouteRecipes     = "/api/recipes"
	RouteMealPlan    = "/api/meal-plan"
	RouteGroceryList = "/api/grocery-list"

	ContentTypeJSON = "application/json"

	// Meal categories
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"

	// Menu links
	LinkHome     MenuLink = "/"
	LinkRecipes  MenuLink = "/recipes"
	LinkMealPlan MenuLink = "/meal-plan"
	LinkGrocery  MenuLink = "/grocery-list"
)

// Session States
const (
	StateHome SessionState = iota
	StateRecipes
	StateMealPlan
	StateGrocery
	StateAddRecipe
	StatePickRecipe
)

// Meals lists the meal categories in display order.
var Meals = []string{MealBreakfast, MealLunch, MealDinner}

// Days lists the planner days; the slice index is the day index stored by the server.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MenuLinks lists the navigation links in display order.
var MenuLinks = []MenuLink{LinkHome, LinkRecipes, LinkMealPlan, LinkGrocery}

// LinkTitle returns the label shown for a menu link
func LinkTitle(l MenuLink) string {
	switch l {
	case LinkHome:
		return "Home"
	case LinkRecipes:
		return "Recipes"
	case LinkMealPlan:
		return "Meal Plan"
	case LinkGrocery:
		return "Grocery List"
	default:
		return string(l)
	}
}
