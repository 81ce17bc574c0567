package cli

import (
	"fmt"

	"github.com/axellelanca/linkboard/cmd"
	"github.com/axellelanca/linkboard/internal/storage"
	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the links table.
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Executes database migrations to create or update tables.",
	Long: `This command connects to the configured database (SQLite or Postgres)
and runs the GORM automatic migration for the 'links' table.`,
	RunE: func(c *cobra.Command, args []string) error {
		db, err := storage.Open(cmd.Cfg.Database)
		if err != nil {
			return err
		}
		defer func() { _ = storage.Close(db) }()

		if err := storage.Migrate(db); err != nil {
			return err
		}

		fmt.Fprintln(c.OutOrStdout(), "Database migrations executed successfully.")
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(MigrateCmd)
}
