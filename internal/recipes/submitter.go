// Package recipes validates and submits new recipes.
package recipes

import (
	"context"
	"errors"
	"strings"

	"github.com/julianstephens/mealplan/internal/client"
	"github.com/julianstephens/mealplan/internal/constants"
	mperrors "github.com/julianstephens/mealplan/internal/errors"
	"github.com/julianstephens/mealplan/internal/logger"
	"github.com/julianstephens/mealplan/internal/models"
	"github.com/julianstephens/mealplan/internal/notify"
)

var (
	// ErrMissingFields is returned when name, ingredients or instructions is blank
	ErrMissingFields = errors.New("recipe name, ingredients and instructions are required")
	// ErrNoIngredients is returned when no line of the ingredient block parses
	ErrNoIngredients = errors.New("no ingredient in the format: item, quantity")
)

// Fields are the raw form inputs of the add-recipe form.
type Fields struct {
	Name         string
	Ingredients  string
	Instructions string
}

// Submitter sends recipe drafts. It holds no state between calls.
type Submitter struct {
	client   client.Client
	notifier notify.Notifier
	reloader notify.Reloader
}

func NewSubmitter(c client.Client, n notify.Notifier, r notify.Reloader) *Submitter {
	return &Submitter{client: c, notifier: n, reloader: r}
}

// Draft validates the fields and builds the request body.
func Draft(f Fields) (models.RecipeDraft, error) {
	name := strings.TrimSpace(f.Name)
	ingredientsText := strings.TrimSpace(f.Ingredients)
	instructions := strings.TrimSpace(f.Instructions)

	if name == "" || ingredientsText == "" || instructions == "" {
		return models.RecipeDraft{}, mperrors.NewUserError(constants.MsgFillAllFields, ErrMissingFields)
	}

	ingredients := ParseIngredients(ingredientsText)
	if len(ingredients) == 0 {
		return models.RecipeDraft{}, mperrors.NewUserError(constants.MsgNeedIngredient, ErrNoIngredients)
	}

	return models.RecipeDraft{
		Name:         name,
		Instructions: instructions,
		Ingredients:  ingredients,
	}, nil
}

// Submit validates f and posts it. Every outcome produces exactly one alert;
// a successful post is followed by exactly one reload.
func (s *Submitter) Submit(ctx context.Context, f Fields) error {
	draft, err := Draft(f)
	if err != nil {
		msg, _ := mperrors.UserMessage(err)
		s.notifier.Alert(msg)
		return err
	}

	if err := s.client.AddRecipe(ctx, draft); err != nil {
		logger.Error("Error adding recipe", "name", draft.Name, "error", err)
		s.notifier.Alert(constants.MsgRecipeAddFailed)
		return mperrors.NewUserError(constants.MsgRecipeAddFailed, err)
	}

	logger.Info("Recipe added", "name", draft.Name, "ingredients", len(draft.Ingredients))
	s.notifier.Alert(constants.MsgRecipeAdded)
	s.reloader.Reload()
	return nil
}
