package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/mealplan/internal/cli"
	"github.com/julianstephens/mealplan/internal/cli/cookbook"
	"github.com/julianstephens/mealplan/internal/cli/plans"
	"github.com/julianstephens/mealplan/internal/cli/system"
	"github.com/julianstephens/mealplan/internal/client"
	"github.com/julianstephens/mealplan/internal/config"
	"github.com/julianstephens/mealplan/internal/constants"
	mperrors "github.com/julianstephens/mealplan/internal/errors"
	"github.com/julianstephens/mealplan/internal/logger"
	"github.com/julianstephens/mealplan/internal/notify"
	"github.com/julianstephens/mealplan/internal/storage/sqlite"
)

var CLI struct {
	config.Config `embed:""`
	Version kong.VersionFlag

	Init  system.InitCmd  `cmd:"" help:"Initialize the database and add sample recipes."`
	Serve system.ServeCmd `cmd:"" help:"Run the meal planner API server."`
	Tui   system.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Meal  struct {
		Set   plans.MealSetCmd   `cmd:"" help:"Assign a recipe to a meal slot."`
		Clear plans.MealClearCmd `cmd:"" help:"Clear a meal slot."`
	} `cmd:"" help:"Manage meal slots."`
	Recipe struct {
		Add  cookbook.RecipeAddCmd  `cmd:"" help:"Add a new recipe."`
		List cookbook.RecipeListCmd `cmd:"" help:"List all recipes." default:"1"`
	} `cmd:"" help:"Manage recipes."`
	Backup struct {
		Create  system.BackupCreateCmd  `cmd:"" help:"Snapshot the database." default:"1"`
		List    system.BackupListCmd    `cmd:"" help:"List database snapshots."`
		Restore system.BackupRestoreCmd `cmd:"" help:"Replace the database with a snapshot."`
	} `cmd:"" help:"Manage database backups."`
	Plan    plans.PlanCmd       `cmd:"" help:"Show the weekly meal plan."`
	Grocery cookbook.GroceryCmd `cmd:"" help:"Show the grocery list for the planned meals."`
}

func main() {
	if err := config.LoadEnv(); err != nil {
		mperrors.Fatal(err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly meal planner with recipes and a grocery list"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg := &CLI.Config
	if err := cfg.Normalize(); err != nil {
		mperrors.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		mperrors.Fatal(err)
	}

	serving := strings.HasPrefix(ctx.Command(), "serve")
	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		Level:     cfg.LogLevel,
		ConfigDir: cfg.ConfigDir,
		Stderr:    serving,
	}); err != nil {
		mperrors.Fatalf("failed to initialize logger: %v", err)
	}

	appCtx := &cli.Context{
		Config:   cfg,
		Store:    sqlite.NewStore(cfg.DB),
		Client:   client.New(cfg.Server, cfg.Timeout),
		Notifier: notify.NewConsole(os.Stderr),
	}

	if err := ctx.Run(appCtx); err != nil {
		// User-facing failures were already shown by the notifier.
		if _, ok := mperrors.UserMessage(err); ok {
			logger.Error("Command failed", "command", ctx.Command(), "error", err)
			os.Exit(1)
		}
		mperrors.Fatal(err)
	}
}
