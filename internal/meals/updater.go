// Package meals assigns recipes to meal slots on the server.
package meals

import (
	"context"

	"github.com/julianstephens/mealplan/internal/client"
	"github.com/julianstephens/mealplan/internal/constants"
	mperrors "github.com/julianstephens/mealplan/internal/errors"
	"github.com/julianstephens/mealplan/internal/logger"
	"github.com/julianstephens/mealplan/internal/models"
	"github.com/julianstephens/mealplan/internal/notify"
)

// Updater sends single meal assignments. It holds no state between calls.
type Updater struct {
	client   client.Client
	notifier notify.Notifier
}

func NewUpdater(c client.Client, n notify.Notifier) *Updater {
	return &Updater{client: c, notifier: n}
}

// Update assigns recipeID to the (day, meal) slot, or clears the slot when
// recipeID is empty. Success is only logged; the caller is expected to have
// already reflected the change. Any failure, including a non-2xx response,
// raises exactly one alert and is returned.
func (u *Updater) Update(ctx context.Context, day, meal, recipeID string) error {
	assignment := models.NewMealAssignment(day, meal, recipeID)

	if err := u.client.SetMeal(ctx, assignment); err != nil {
		logger.Error("Error updating meal", "day", day, "meal", meal, "error", err)
		u.notifier.Alert(constants.MsgMealUpdateFailed)
		return mperrors.NewUserError(constants.MsgMealUpdateFailed, err)
	}

	logger.Info(constants.MsgMealUpdated, "day", day, "meal", meal, "recipe_id", recipeID)
	return nil
}
