package main

import (
	"github.com/spf13/cobra"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// NewSubredditCmd creates the subreddit command (single community
// metadata).
func NewSubredditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subreddit <name>",
		Short: "Fetch a single subreddit's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			subreddit, err := client.Subreddit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if subreddit == nil {
				cmd.Println("subreddit not found")
				return nil
			}
			return printJSON(cmd, subreddit)
		},
	}
}

// NewSubredditsCmd creates the subreddits command (sitewide listing).
func NewSubredditsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subreddits",
		Short: "Fetch the sitewide subreddit listing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			records, err := client.Subreddits(cmd.Context(), &types.SubredditsRequest{
				Bulk: bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}

	addBulkFlags(cmd)
	return cmd
}
