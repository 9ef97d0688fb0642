package system

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/mealplan/internal/backup"
	"github.com/julianstephens/mealplan/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	path, err := backup.NewManager(ctx.Store.GetConfigPath()).Create()
	if err != nil {
		return err
	}
	ctx.Printf("Backup written to: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		ctx.Printf("No backups in %s\n", mgr.Dir())
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Created", "Size", "Path")
	for _, b := range backups {
		t.Row(b.Timestamp.Format("2006-01-02 15:04:05"), humanize.IBytes(uint64(b.Size)), b.Path)
	}
	ctx.Println(t.Render())
	return nil
}

// BackupRestoreCmd copies a snapshot over the live database.
type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore." type:"existingfile"`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	if _, err := os.Stat(dbPath); err == nil {
		saved, err := backup.NewManager(dbPath).Create()
		if err != nil {
			return fmt.Errorf("failed to back up current database: %w", err)
		}
		ctx.Printf("Backed up current database to: %s\n", saved)
	}
	if err := backup.Restore(c.Path, dbPath); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("restored database is not usable: %w", err)
	}
	ctx.Printf("Restored %s\n", c.Path)
	return nil
}
