package cookbook

import (
	"context"
	"fmt"
	"os"

	"github.com/julianstephens/mealplan/internal/cli"
	"github.com/julianstephens/mealplan/internal/logger"
	"github.com/julianstephens/mealplan/internal/notify"
	"github.com/julianstephens/mealplan/internal/recipes"
)

type RecipeAddCmd struct {
	Name            string `help:"Recipe name."`
	Ingredients     string `help:"Ingredients, one 'item, quantity' per line." xor:"ingredients"`
	IngredientsFile string `help:"Read ingredients from a file." type:"existingfile" name:"ingredients-file" xor:"ingredients"`
	Instructions    string `help:"Preparation instructions."`
}

func (c *RecipeAddCmd) Run(ctx *cli.Context) error {
	fields := recipes.Fields{
		Name:         c.Name,
		Ingredients:  c.Ingredients,
		Instructions: c.Instructions,
	}
	if c.IngredientsFile != "" {
		data, err := os.ReadFile(c.IngredientsFile)
		if err != nil {
			return fmt.Errorf("failed to read ingredients file: %w", err)
		}
		fields.Ingredients = string(data)
	}

	bg := context.Background()
	reload := notify.ReloadFunc(func() {
		if err := printRecipes(bg, ctx); err != nil {
			logger.Warn("Failed to refresh recipes", "error", err)
		}
	})

	return recipes.NewSubmitter(ctx.Client, ctx.Notifier, reload).Submit(bg, fields)
}

type RecipeListCmd struct{}

func (c *RecipeListCmd) Run(ctx *cli.Context) error {
	return printRecipes(context.Background(), ctx)
}

func printRecipes(bg context.Context, ctx *cli.Context) error {
	list, err := ctx.Client.ListRecipes(bg)
	if err != nil {
		return fmt.Errorf("failed to get recipes: %w", err)
	}
	if len(list) == 0 {
		ctx.Println("No recipes found")
		return nil
	}

	ctx.Println("Recipes:")
	for _, r := range list {
		ctx.Printf("  [%d] %s\n", r.ID, r.Name)
		ctx.Printf("      Ingredients: %s\n", cli.FormatIngredients(r.Ingredients))
		ctx.Printf("      %s\n", r.Instructions)
	}
	return nil
}

type GroceryCmd struct{}

func (c *GroceryCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Client.GetGroceryList(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get grocery list: %w", err)
	}
	if len(items) == 0 {
		ctx.Println("Grocery list is empty. Plan some meals first.")
		return nil
	}

	ctx.Println("Grocery list:")
	for _, line := range cli.GroceryLines(items) {
		ctx.Printf("  - %s\n", line)
	}
	return nil
}
