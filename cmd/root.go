package cmd

import (
	"fmt"
	"os"

	"github.com/axellelanca/linkboard/internal/config"
	"github.com/axellelanca/linkboard/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Cfg holds the configuration loaded before any subcommand runs.
var Cfg *config.Config

// Logger is the application logger built from Cfg.
var Logger = zap.NewNop()

var configDir string

// RootCmd is the base command for the CLI application.
// Subcommands (run-server, migrate, submit, list) register themselves from their own init().
var RootCmd = &cobra.Command{
	Use:   "linkboard",
	Short: "A link submission board",
	Long: `A small link board: visitors submit a title, a URL and a description,
the submission is validated and stored, and the listing page shows every link.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute is the main entry point for the Cobra application.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", config.DefaultConfigDir, "directory containing config.yaml")
}

// initConfig loads the configuration and builds the logger shared by every command.
func initConfig() error {
	cfg, err := config.LoadConfigFrom(configDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}

	Cfg = cfg
	Logger = logger
	Logger.Debug("configuration loaded",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("monitor", cfg.Monitor.Enabled))
	return nil
}
