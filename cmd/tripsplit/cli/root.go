// Package cli holds the tripsplit cobra commands.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/tripsplit/internal/config"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/internal/storage/memory"
	"github.com/mmynk/tripsplit/internal/storage/sqlite"
	"github.com/mmynk/tripsplit/pkg/logging"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// app carries state shared by the subcommands once the root has loaded config.
type app struct {
	configFile string
	cfg        *config.Config
}

// Run enters into the cobra command tree.
func Run() error {
	if err := NewRootCommand().Execute(); err != nil {
		return fmt.Errorf("error executing root command: %w", err)
	}
	return nil
}

// NewRootCommand builds the tripsplit command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "tripsplit",
		Short:        "Track shared trip expenses and work out who pays whom.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			logging.SetupWithLevel(logging.ParseLevel(cfg.Log.Level))
			slog.Debug("Configuration loaded",
				"driver", cfg.Database.Driver,
				"database", cfg.Database.Path,
				"port", cfg.Server.Port,
			)
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./tripsplit.yaml if present)")
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newVersionCommand(),
		newServeCommand(a),
		newSummaryCommand(a),
		newQuickSplitCommand(a),
		newExportCommand(a),
		newImportCommand(a),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Describes version.",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tripsplit %s\n", Version)
		},
	}
}

// openStore opens the storage backend selected by database.driver.
func (a *app) openStore() (storage.Store, error) {
	if a.cfg.Database.Driver == config.DriverMemory {
		return memory.New(), nil
	}
	store, err := sqlite.New(a.cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}
