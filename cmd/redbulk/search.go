package main

import (
	"github.com/spf13/cobra"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// NewSearchCmd creates the search command and its subcommands.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search posts, subreddits, or users",
	}

	posts := &cobra.Command{
		Use:   "posts <query>",
		Short: "Search posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			records, err := client.SearchPosts(cmd.Context(), &types.SearchRequest{
				Query: args[0],
				Bulk:  bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
	addBulkFlags(posts)

	subreddits := &cobra.Command{
		Use:   "subreddits <query>",
		Short: "Search subreddits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			records, err := client.SearchSubreddits(cmd.Context(), &types.SearchRequest{
				Query: args[0],
				Bulk:  bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
	addBulkFlags(subreddits)

	users := &cobra.Command{
		Use:   "users <query>",
		Short: "Search users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			records, err := client.SearchUsers(cmd.Context(), &types.SearchRequest{
				Query: args[0],
				Bulk:  bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
	addBulkFlags(users)

	cmd.AddCommand(posts, subreddits, users)
	return cmd
}
