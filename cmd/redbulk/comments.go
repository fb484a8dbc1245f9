package main

import (
	"github.com/spf13/cobra"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// NewCommentsCmd creates the comments command.
func NewCommentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments <subreddit> <post-id>",
		Short: "Fetch a post together with its comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}

			response, err := client.PostComments(cmd.Context(), &types.PostCommentsRequest{
				Subreddit: args[0],
				PostID:    args[1],
				Bulk:      bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, response)
		},
	}

	addBulkFlags(cmd)
	return cmd
}
