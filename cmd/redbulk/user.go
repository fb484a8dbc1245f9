package main

import (
	"github.com/spf13/cobra"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// NewUserCmd creates the user command and its subcommands.
func NewUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Fetch user profiles and listings",
	}

	about := &cobra.Command{
		Use:   "about <username>",
		Short: "Fetch a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			user, err := client.User(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if user == nil {
				cmd.Println("user not found")
				return nil
			}
			return printJSON(cmd, user)
		},
	}

	posts := &cobra.Command{
		Use:   "posts <username>",
		Short: "Fetch posts submitted by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			records, err := client.UserPosts(cmd.Context(), &types.UserListingRequest{
				Username: args[0],
				Bulk:     bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
	addBulkFlags(posts)

	comments := &cobra.Command{
		Use:   "comments <username>",
		Short: "Fetch comments posted by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			records, err := client.UserComments(cmd.Context(), &types.UserListingRequest{
				Username: args[0],
				Bulk:     bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
	addBulkFlags(comments)

	overview := &cobra.Command{
		Use:   "overview <username>",
		Short: "Fetch a user's recent comment activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			records, err := client.UserOverview(cmd.Context(), &types.UserListingRequest{
				Username: args[0],
				Bulk:     bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
	addBulkFlags(overview)

	moderated := &cobra.Command{
		Use:   "moderated <username>",
		Short: "Fetch the subreddits a user moderates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			records, err := client.ModeratedSubreddits(cmd.Context(), &types.UserListingRequest{
				Username: args[0],
				Bulk:     bulkFromFlags(cmd),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
	addBulkFlags(moderated)

	cmd.AddCommand(about, posts, comments, overview, moderated)
	return cmd
}
