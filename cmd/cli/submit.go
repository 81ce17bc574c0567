package cli

import (
	"fmt"

	"github.com/axellelanca/linkboard/cmd"
	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/axellelanca/linkboard/internal/repository"
	"github.com/axellelanca/linkboard/internal/services"
	"github.com/axellelanca/linkboard/internal/storage"
	"github.com/spf13/cobra"
)

var submission services.Submission

// SubmitCmd submits a link through the same validation as the web form.
var SubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submits a new link.",
	Long: `Validates and stores a link, exactly like the web form does.

Example:
  linkboard submit --title="Go" --url="https://go.dev" --description="The Go website"`,
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
		result, err := linkService.Submit(c.Context(), submission)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		if result.Rejected() {
			for _, field := range result.Errors.Fields() {
				for _, msg := range result.Errors.Messages()[field] {
					fmt.Fprintf(out, "%s: %s\n", field, msg)
				}
			}
			return customerrors.ErrSubmissionRejected
		}

		fmt.Fprintf(out, "Link #%d created: %s\n", result.Link.ID, result.Link.Title)
		return nil
	},
}

func init() {
	// Flags are optional on purpose: a missing field is reported by validation.
	SubmitCmd.Flags().StringVar(&submission.Title, "title", "", "link title")
	SubmitCmd.Flags().StringVar(&submission.URL, "url", "", "absolute link URL")
	SubmitCmd.Flags().StringVar(&submission.Description, "description", "", "link description")

	cmd.RootCmd.AddCommand(SubmitCmd)
}
