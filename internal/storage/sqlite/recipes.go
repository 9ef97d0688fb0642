package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/mealplan/internal/models"
	"github.com/julianstephens/mealplan/internal/storage"
)

// AddRecipe stores a recipe and its ingredients in one transaction.
func (s *Store) AddRecipe(draft models.RecipeDraft) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("INSERT INTO recipes (name, instructions) VALUES (?, ?)", draft.Name, draft.Instructions)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read recipe id: %w", err)
	}

	for pos, ing := range draft.Ingredients {
		_, err := tx.Exec(
			"INSERT INTO ingredients (recipe_id, position, item, quantity) VALUES (?, ?, ?, ?)",
			id, pos, ing.Item, ing.Quantity,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert ingredient %q: %w", ing.Item, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit recipe: %w", err)
	}
	return id, nil
}

func (s *Store) GetRecipe(id int64) (models.Recipe, error) {
	r := models.Recipe{ID: id}
	err := s.db.QueryRow("SELECT name, instructions FROM recipes WHERE id = ?", id).Scan(&r.Name, &r.Instructions)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, storage.ErrRecipeNotFound
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to get recipe: %w", err)
	}

	r.Ingredients, err = s.ingredients(id)
	if err != nil {
		return models.Recipe{}, err
	}
	return r, nil
}

// GetRecipes returns every recipe ordered by name.
func (s *Store) GetRecipes() ([]models.Recipe, error) {
	rows, err := s.db.Query("SELECT id, name, instructions FROM recipes ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}

	var recipes []models.Recipe
	for rows.Next() {
		var r models.Recipe
		if err := rows.Scan(&r.ID, &r.Name, &r.Instructions); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	rows.Close()

	for i := range recipes {
		recipes[i].Ingredients, err = s.ingredients(recipes[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

func (s *Store) ingredients(recipeID int64) ([]models.Ingredient, error) {
	rows, err := s.db.Query(
		"SELECT item, quantity FROM ingredients WHERE recipe_id = ? ORDER BY position, id",
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	ings := []models.Ingredient{}
	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(&ing.Item, &ing.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ings = append(ings, ing)
	}
	return ings, rows.Err()
}
