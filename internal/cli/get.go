package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/dirstatus/internal/engine"
)

func newGetCmd(opts *globalOptions) *cobra.Command {
	req := &engine.GetRequest{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a status from the database",
		Long: `Print the stored status of a directory as two lines: the branch, then
the file counts sorted by status code ("1 ?? | 2 M "). Both lines are
empty when nothing is stored for the directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(opts)
			if err != nil {
				return err
			}

			result, err := eng.Get(context.Background(), req)
			if err != nil {
				return err
			}

			if opts.json {
				return outputJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, result.BranchLine)
			_, _ = fmt.Fprintln(out, result.StatusLine)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Path, "path", "p", "", "The path of the folder")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
