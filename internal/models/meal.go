package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/mealplan/internal/constants"
)

// MealAssignment is the body of a set-meal request. A nil RecipeID clears the slot.
type MealAssignment struct {
	Day      string  `json:"day"`
	Meal     string  `json:"meal"`
	RecipeID *string `json:"recipe_id"`
}

// NewMealAssignment builds an assignment, mapping an empty recipe id to nil.
func NewMealAssignment(day, meal, recipeID string) MealAssignment {
	a := MealAssignment{Day: day, Meal: meal}
	if recipeID != "" {
		id := recipeID
		a.RecipeID = &id
	}
	return a
}

// Day is a single planner day
type Day struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// PlanEntry is one filled meal slot
type PlanEntry struct {
	DayIndex int    `json:"day_index"`
	Meal     string `json:"meal"`
	RecipeID int64  `json:"recipe_id"`
}

// MealPlan is the weekly plan as served by the backend
type MealPlan struct {
	Days    []Day       `json:"days"`
	Meals   []string    `json:"meals"`
	Entries []PlanEntry `json:"entries"`
}

// RecipeFor returns the recipe assigned to a slot, if any.
func (p MealPlan) RecipeFor(dayIndex int, meal string) (int64, bool) {
	for _, e := range p.Entries {
		if e.DayIndex == dayIndex && e.Meal == meal {
			return e.RecipeID, true
		}
	}
	return 0, false
}

// Assign sets or clears a slot in place. A zero recipeID clears it.
func (p *MealPlan) Assign(dayIndex int, meal string, recipeID int64) {
	kept := p.Entries[:0]
	for _, e := range p.Entries {
		if e.DayIndex == dayIndex && e.Meal == meal {
			continue
		}
		kept = append(kept, e)
	}
	p.Entries = kept
	if recipeID != 0 {
		p.Entries = append(p.Entries, PlanEntry{DayIndex: dayIndex, Meal: meal, RecipeID: recipeID})
	}
}

// ParseDay accepts a day index ("0".."6", Monday first) or a weekday name
// ("monday", "Mon") and returns the day index.
func ParseDay(day string) (int, error) {
	day = strings.TrimSpace(day)
	if n, err := strconv.Atoi(day); err == nil {
		if n < 0 || n >= len(constants.Days) {
			return 0, fmt.Errorf("day index out of range: %d", n)
		}
		return n, nil
	}
	lower := strings.ToLower(day)
	if len(lower) >= 3 {
		for i, name := range constants.Days {
			if strings.HasPrefix(strings.ToLower(name), lower) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid day: %q", day)
}

// IsMeal reports whether s names a known meal category.
func IsMeal(s string) bool {
	for _, m := range constants.Meals {
		if m == s {
			return true
		}
	}
	return false
}
