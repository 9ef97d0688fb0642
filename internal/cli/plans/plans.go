package plans

import (
	"context"
	"fmt"

	"github.com/julianstephens/mealplan/internal/cli"
	"github.com/julianstephens/mealplan/internal/meals"
)

type MealSetCmd struct {
	Day      string `arg:"" help:"Day index (0 = Monday) or weekday name."`
	Meal     string `arg:"" help:"Meal slot." enum:"breakfast,lunch,dinner"`
	RecipeID string `arg:"" optional:"" name:"recipe-id" help:"Recipe ID; omit to clear the slot."`
}

func (c *MealSetCmd) Run(ctx *cli.Context) error {
	if err := meals.NewUpdater(ctx.Client, ctx.Notifier).Update(context.Background(), c.Day, c.Meal, c.RecipeID); err != nil {
		return err
	}
	if c.RecipeID == "" {
		ctx.Printf("Cleared %s on %s\n", c.Meal, c.Day)
	} else {
		ctx.Printf("Set %s on %s to recipe %s\n", c.Meal, c.Day, c.RecipeID)
	}
	return nil
}

type MealClearCmd struct {
	Day  string `arg:"" help:"Day index (0 = Monday) or weekday name."`
	Meal string `arg:"" help:"Meal slot." enum:"breakfast,lunch,dinner"`
}

func (c *MealClearCmd) Run(ctx *cli.Context) error {
	return (&MealSetCmd{Day: c.Day, Meal: c.Meal}).Run(ctx)
}

type PlanCmd struct{}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	bg := context.Background()

	plan, err := ctx.Client.GetMealPlan(bg)
	if err != nil {
		return fmt.Errorf("failed to get meal plan: %w", err)
	}
	recipes, err := ctx.Client.ListRecipes(bg)
	if err != nil {
		return fmt.Errorf("failed to get recipes: %w", err)
	}

	ctx.Println(cli.PlanTable(plan, cli.RecipeNames(recipes)))
	return nil
}
