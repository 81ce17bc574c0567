package cli

import (
	"fmt"

	"github.com/axellelanca/linkboard/cmd"
	"github.com/axellelanca/linkboard/internal/repository"
	"github.com/axellelanca/linkboard/internal/services"
	"github.com/axellelanca/linkboard/internal/storage"
	"github.com/spf13/cobra"
)

// ListCmd prints the stored links, newest first.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists submitted links.",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		db, err := storage.Open(cmd.Cfg.Database)
		if err != nil {
			return err
		}
		defer func() { _ = storage.Close(db) }()

		if err := storage.Migrate(db); err != nil {
			return err
		}

		linkService := services.NewLinkService(repository.NewLinkRepository(db), cmd.Logger)
		links, err := linkService.ListLinks(c.Context())
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		if len(links) == 0 {
			fmt.Fprintln(out, "No links submitted yet.")
			return nil
		}
		for _, link := range links {
			fmt.Fprintf(out, "#%d  %s  %s\n", link.ID, link.Title, link.URL)
			fmt.Fprintf(out, "     %s (%s)\n", link.Description, link.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(ListCmd)
}
