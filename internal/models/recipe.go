package models

import (
	"encoding/json"
	"fmt"
)

// Ingredient is an (item, quantity) pair. On the wire it is a two-element array.
type Ingredient struct {
	Item     string
	Quantity string
}

func (i Ingredient) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{i.Item, i.Quantity})
}

func (i *Ingredient) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("ingredient must be an [item, quantity] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("ingredient must have exactly 2 elements, got %d", len(pair))
	}
	i.Item, i.Quantity = pair[0], pair[1]
	return nil
}

// RecipeDraft is user-entered recipe data pending submission
type RecipeDraft struct {
	Name         string       `json:"name"`
	Instructions string       `json:"instructions"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// Recipe is a stored recipe
type Recipe struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Instructions string       `json:"instructions"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// GroceryItem aggregates the quantities of one item across planned recipes
type GroceryItem struct {
	Item       string   `json:"item"`
	Quantities []string `json:"quantities"`
}
