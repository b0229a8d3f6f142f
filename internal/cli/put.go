package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/dirstatus/internal/engine"
)

func newPutCmd(opts *globalOptions) *cobra.Command {
	req := &engine.PutRequest{}

	cmd := &cobra.Command{
		Use:   "put",
		Short: "Put (insert or update) a status into the database",
		Long: `Store the branch and git status of a directory, replacing any status
previously stored for it.

The status uses the form "<count> <code>|<count> <code>", for example
"2 M|1 ??". With --detect, values not given on the command line are read
from the git working tree at --path.`,
		Example: `  dirstatus put --path "$PWD" --branch main --git-status "2 M|1 ??"
  dirstatus put --path "$PWD" --detect`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(opts)
			if err != nil {
				return err
			}

			rec, err := eng.Put(context.Background(), req)
			if err != nil {
				return err
			}

			if opts.json {
				return outputJSON(cmd.OutOrStdout(), rec)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Path, "path", "p", "", "The path of the folder")
	cmd.Flags().StringVarP(&req.Branch, "branch", "b", "", "The git branch, if any")
	cmd.Flags().StringVarP(&req.RawStatus, "git-status", "g", "", "The git status counts, if any")
	cmd.Flags().BoolVarP(&req.Detect, "detect", "d", false, "Read missing branch and status from the git working tree")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
