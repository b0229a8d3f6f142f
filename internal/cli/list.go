package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/dirstatus/internal/status"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all statuses in the database",
		Long: `Print one line per stored directory: "<path>: <branch> <counts>".
The order of lines is not defined.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(opts)
			if err != nil {
				return err
			}

			records, err := eng.List(context.Background())
			if err != nil {
				return err
			}

			if opts.json {
				if records == nil {
					records = []*status.Record{}
				}
				return outputJSON(cmd.OutOrStdout(), records)
			}

			for _, rec := range records {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), rec.String())
			}
			return nil
		},
	}
}
