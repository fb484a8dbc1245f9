package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// postSources maps the --source flag to a listing kind.
var postSources = map[string]types.QueryKind{
	"best":    types.KindBestPosts,
	"front":   types.KindFrontPage,
	"new":     types.KindNewPosts,
	"popular": types.KindPopularPosts,
	"all":     types.KindAllPosts,
}

// NewPostsCmd creates the posts command.
func NewPostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Fetch a bulk post listing",
		Long: `Fetch posts from a subreddit or a sitewide source.

With --subreddit, posts come from that community; otherwise --source
selects best, front, new, popular, or all.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := buildClient(cmd)
			if err != nil {
				return err
			}

			subreddit, _ := cmd.Flags().GetString("subreddit")
			source, _ := cmd.Flags().GetString("source")

			request := &types.PostsRequest{Bulk: bulkFromFlags(cmd)}
			if subreddit != "" {
				request.Kind = types.KindSubredditPosts
				request.Subreddit = subreddit
			} else {
				kind, ok := postSources[source]
				if !ok {
					return fmt.Errorf("unknown post source %q", source)
				}
				request.Kind = kind
			}

			posts, err := client.Posts(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd, posts)
		},
	}

	cmd.Flags().StringP("subreddit", "r", "", "Subreddit to fetch posts from")
	cmd.Flags().String("source", "front", "Sitewide source: best, front, new, popular, all")
	addBulkFlags(cmd)

	return cmd
}
