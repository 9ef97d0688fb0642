package sqlite

import (
	"fmt"
	"sort"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/models"
	"github.com/julianstephens/mealplan/internal/storage"
)

func (s *Store) SetMeal(dayIndex int, meal string, recipeID *int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM meal_plan WHERE day_index = ? AND meal = ?", dayIndex, meal); err != nil {
		return fmt.Errorf("failed to clear meal slot: %w", err)
	}

	if recipeID != nil {
		var exists int
		if err := tx.QueryRow("SELECT count(*) FROM recipes WHERE id = ?", *recipeID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to look up recipe: %w", err)
		}
		if exists == 0 {
			return storage.ErrRecipeNotFound
		}
		_, err := tx.Exec(
			"INSERT INTO meal_plan (day_index, meal, recipe_id) VALUES (?, ?, ?)",
			dayIndex, meal, *recipeID,
		)
		if err != nil {
			return fmt.Errorf("failed to set meal: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) GetMealPlan() (models.MealPlan, error) {
	plan := models.MealPlan{
		Meals:   append([]string(nil), constants.Meals...),
		Entries: []models.PlanEntry{},
	}
	for i, name := range constants.Days {
		plan.Days = append(plan.Days, models.Day{Index: i, Name: name})
	}

	rows, err := s.db.Query("SELECT day_index, meal, recipe_id FROM meal_plan ORDER BY day_index, meal")
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("failed to query meal plan: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.PlanEntry
		if err := rows.Scan(&e.DayIndex, &e.Meal, &e.RecipeID); err != nil {
			return models.MealPlan{}, fmt.Errorf("failed to scan meal plan entry: %w", err)
		}
		plan.Entries = append(plan.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return models.MealPlan{}, fmt.Errorf("failed to iterate meal plan: %w", err)
	}
	return plan, nil
}

// GetGroceryList collects the ingredients of every distinct planned recipe,
// grouping quantities by item.
func (s *Store) GetGroceryList() ([]models.GroceryItem, error) {
	rows, err := s.db.Query(`
		SELECT item, quantity FROM ingredients
		WHERE recipe_id IN (SELECT DISTINCT recipe_id FROM meal_plan)
		ORDER BY recipe_id, position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query grocery list: %w", err)
	}
	defer rows.Close()

	index := map[string]int{}
	items := []models.GroceryItem{}
	for rows.Next() {
		var item, qty string
		if err := rows.Scan(&item, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		i, ok := index[item]
		if !ok {
			i = len(items)
			index[item] = i
			items = append(items, models.GroceryItem{Item: item})
		}
		items[i].Quantities = append(items[i].Quantities, qty)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grocery list: %w", err)
	}

	sort.SliceStable(items, func(a, b int) bool { return items[a].Item < items[b].Item })
	return items, nil
}
