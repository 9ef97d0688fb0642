package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/julianstephens/mealplan/internal/constants"
	"github.com/julianstephens/mealplan/internal/logger"
	"github.com/julianstephens/mealplan/internal/models"
	"github.com/julianstephens/mealplan/internal/storage"
)

type setMealRequest struct {
	Day      any    `json:"day"`
	Meal     string `json:"meal"`
	RecipeID any    `json:"recipe_id"`
}

type successResponse struct {
	Success  bool  `json:"success"`
	RecipeID int64 `json:"recipe_id,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

// parseRecipeID accepts a JSON string or number; null and "" mean no recipe.
func parseRecipeID(v any) (*int64, error) {
	switch id := v.(type) {
	case nil:
		return nil, nil
	case string:
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid recipe_id: %q", id)
		}
		return &n, nil
	case float64:
		if math.IsNaN(id) || math.Abs(id) >= 1<<63 {
			return nil, fmt.Errorf("invalid recipe_id: %v", id)
		}
		n := int64(id)
		if float64(n) != id {
			return nil, fmt.Errorf("invalid recipe_id: %v", id)
		}
		return &n, nil
	default:
		return nil, fmt.Errorf("invalid recipe_id type %T", v)
	}
}

func parseDayField(v any) (int, error) {
	switch d := v.(type) {
	case string:
		return models.ParseDay(d)
	case float64:
		return models.ParseDay(strconv.FormatFloat(d, 'f', -1, 64))
	default:
		return 0, fmt.Errorf("invalid day type %T", v)
	}
}

func (s *Server) setMeal(w http.ResponseWriter, r *http.Request) {
	var req setMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	day, err := parseDayField(req.Day)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.IsMeal(req.Meal) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid meal: %q", req.Meal))
		return
	}
	recipeID, err := parseRecipeID(req.RecipeID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SetMeal(day, req.Meal, recipeID); err != nil {
		if errors.Is(err, storage.ErrRecipeNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Error("Failed to set meal", "day", day, "meal", req.Meal, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to set meal")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) addRecipe(w http.ResponseWriter, r *http.Request) {
	var draft models.RecipeDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Instructions) == "" {
		writeError(w, http.StatusBadRequest, "name and instructions are required")
		return
	}
	for _, ing := range draft.Ingredients {
		if strings.TrimSpace(ing.Item) == "" {
			writeError(w, http.StatusBadRequest, "ingredient item is required")
			return
		}
	}

	id, err := s.store.AddRecipe(draft)
	if err != nil {
		logger.Error("Failed to add recipe", "name", draft.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to add recipe")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, RecipeID: id})
}

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.store.GetRecipes()
	if err != nil {
		logger.Error("Failed to list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list recipes")
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (s *Server) mealPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.store.GetMealPlan()
	if err != nil {
		logger.Error("Failed to load meal plan", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load meal plan")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) groceryList(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.GetGroceryList()
	if err != nil {
		logger.Error("Failed to build grocery list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build grocery list")
		return
	}
	writeJSON(w, http.StatusOK, items)
}
