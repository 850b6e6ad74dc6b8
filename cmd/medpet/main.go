package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/cli/assist"
	"github.com/marcelomendesnai/medpet/internal/cli/doses"
	"github.com/marcelomendesnai/medpet/internal/cli/meds"
	"github.com/marcelomendesnai/medpet/internal/cli/system"
	"github.com/marcelomendesnai/medpet/internal/constants"
	apperrors "github.com/marcelomendesnai/medpet/internal/errors"
	"github.com/marcelomendesnai/medpet/internal/idgen"
	"github.com/marcelomendesnai/medpet/internal/logger"
	"github.com/marcelomendesnai/medpet/internal/storage"
	"github.com/marcelomendesnai/medpet/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path. A .db or .sqlite suffix selects the SQLite backend; anything else is a JSON snapshot." type:"path" default:"~/.config/medpet/medpet.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd   `cmd:"" help:"Initialize medpet storage with the starter dataset."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Med     meds.MedCmd      `cmd:"" help:"Manage medications."`
	Today   doses.TodayCmd   `cmd:"" help:"Show today's late, next and taken doses." default:"1"`
	Dose    doses.DoseCmd    `cmd:"" help:"Log, skip or undo doses."`
	History doses.HistoryCmd `cmd:"" help:"Show the dose log, newest first."`
	Ask     assist.AskCmd    `cmd:"" help:"Ask the assistant about your medications."`
	Backup  struct {
		Create  system.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    system.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore system.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Medication schedule and treatment progress tracker for people and pets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") || strings.HasSuffix(CLI.Config, ".sqlite") {
		store = sqlite.NewStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		IDs:   idgen.UUIDGenerator{},
	}

	// The init command handles its own lifecycle; backup restore must run
	// against the closed store file.
	selected := ""
	if ctx.Selected() != nil {
		selected = ctx.Selected().Name
	}
	if selected != "init" && selected != "restore" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		apperrors.Fatal(err)
	}
}
