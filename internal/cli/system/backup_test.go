package system

import (
	"strings"
	"testing"

	"github.com/julianstephens/mealplan/internal/backup"
	"github.com/julianstephens/mealplan/internal/models"
)

func TestBackupCommands(t *testing.T) {
	ctx, out, dbPath := setupTestInitDB(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups") {
		t.Errorf("output = %q, want empty notice", out.String())
	}

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	backups, err := backup.NewManager(dbPath).List()
	if err != nil || len(backups) != 1 {
		t.Fatalf("backups = %v, %v; want one", backups, err)
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), backups[0].Path) {
		t.Errorf("output = %q, want %s", out.String(), backups[0].Path)
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, _, _ := setupTestInitDB(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil || len(backups) != 1 {
		t.Fatalf("backups = %v, %v; want one", backups, err)
	}
	if _, err := ctx.Store.AddRecipe(models.RecipeDraft{Name: "Late Addition", Instructions: "x"}); err != nil {
		t.Fatalf("AddRecipe() failed: %v", err)
	}

	if err := (&BackupRestoreCmd{Path: backups[0].Path}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if n := recipeCount(t, ctx); n != 4 {
		t.Errorf("recipes after restore = %d, want 4", n)
	}
}
