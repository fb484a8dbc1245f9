package main

import (
	"github.com/spf13/cobra"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// NewWikiCmd creates the wiki command.
func NewWikiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wiki <subreddit> <page>",
		Short: "Fetch a subreddit wiki page revision",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.WikiPage(cmd.Context(), &types.WikiPageRequest{
				Subreddit: args[0],
				Page:      args[1],
			})
			if err != nil {
				return err
			}
			if page == nil {
				cmd.Println("wiki page not found")
				return nil
			}
			return printJSON(cmd, page)
		},
	}
}
