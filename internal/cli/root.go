package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/mealplan/internal/client"
	"github.com/julianstephens/mealplan/internal/config"
	"github.com/julianstephens/mealplan/internal/models"
	"github.com/julianstephens/mealplan/internal/notify"
	"github.com/julianstephens/mealplan/internal/storage"
)

// Context is passed to every command's Run method. Store is only loaded by
// the commands that own the database (init, serve); the rest talk to the
// server through Client.
type Context struct {
	Config   *config.Config
	Store    storage.Provider
	Client   client.Client
	Notifier notify.Notifier
	Out      io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RecipeNames indexes recipe names by id.
func RecipeNames(recipes []models.Recipe) map[int64]string {
	names := make(map[int64]string, len(recipes))
	for _, r := range recipes {
		names[r.ID] = r.Name
	}
	return names
}

// FormatIngredients joins ingredients as "item (quantity)".
func FormatIngredients(ings []models.Ingredient) string {
	parts := make([]string, 0, len(ings))
	for _, ing := range ings {
		parts = append(parts, fmt.Sprintf("%s (%s)", ing.Item, ing.Quantity))
	}
	return strings.Join(parts, ", ")
}

// PlanTable renders the weekly plan with one row per day and one column per meal.
func PlanTable(plan models.MealPlan, names map[int64]string) string {
	headers := []string{"Day"}
	for _, m := range plan.Meals {
		headers = append(headers, MealTitle(m))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, d := range plan.Days {
		row := []string{d.Name}
		for _, m := range plan.Meals {
			cell := "-"
			if id, ok := plan.RecipeFor(d.Index, m); ok {
				cell = names[id]
				if cell == "" {
					cell = fmt.Sprintf("#%d", id)
				}
			}
			row = append(row, cell)
		}
		t.Row(row...)
	}
	return t.String()
}

// GroceryLines formats each item with its quantities, sorted by item.
func GroceryLines(items []models.GroceryItem) []string {
	sorted := append([]models.GroceryItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Item < sorted[j].Item })

	lines := make([]string, 0, len(sorted))
	for _, it := range sorted {
		lines = append(lines, fmt.Sprintf("%s: %s", it.Item, strings.Join(it.Quantities, ", ")))
	}
	return lines
}

// MealTitle capitalizes a meal name for display.
func MealTitle(meal string) string {
	if meal == "" {
		return meal
	}
	return strings.ToUpper(meal[:1]) + meal[1:]
}
