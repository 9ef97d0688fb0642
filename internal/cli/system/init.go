package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/mealplan/internal/backup"
	"github.com/julianstephens/mealplan/internal/cli"
	"github.com/julianstephens/mealplan/internal/storage"
)

type InitCmd struct {
	Force  bool `help:"Force reset by deleting existing database before initialization."`
	NoSeed bool `help:"Do not add the sample recipes." name:"no-seed"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			saved, err := backup.NewManager(dbPath).Create()
			if err != nil {
				return fmt.Errorf("failed to back up existing database: %w", err)
			}
			ctx.Printf("Backed up existing database to: %s\n", saved)
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized mealplan storage at: %s\n", ctx.Store.GetConfigPath())

	if c.NoSeed {
		return nil
	}

	// Re-running init on a populated database must not duplicate the samples.
	existing, err := ctx.Store.GetRecipes()
	if err != nil {
		return fmt.Errorf("failed to check existing recipes: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	if err := storage.Seed(ctx.Store, storage.SampleRecipes); err != nil {
		return fmt.Errorf("failed to add sample recipes: %w", err)
	}
	ctx.Printf("Added %d sample recipes\n", len(storage.SampleRecipes))
	return nil
}
