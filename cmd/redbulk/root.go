// Package main provides the redbulk CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// NewRootCmd creates the root command for redbulk.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redbulk",
		Short: "Bulk data retrieval from Reddit's public read endpoints",
		Long: `redbulk fetches posts, comments, subreddits, users, wiki pages, and
search results from Reddit and prints them as flat JSON records.

Bulk listings paginate automatically up to --limit items, pausing politely
between pages. Credentials (if any) come from the config file or the
REDBULK_CLIENT_ID / REDBULK_CLIENT_SECRET environment variables.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("config", "", "Path to the config file (default: .redbulk.yml, then $HOME/.redbulk.yml)")
	cmd.PersistentFlags().String("time-format", "concise", "Timestamp rendering: concise or locale")

	cmd.AddCommand(NewPostsCmd())
	cmd.AddCommand(NewCommentsCmd())
	cmd.AddCommand(NewUserCmd())
	cmd.AddCommand(NewSubredditCmd())
	cmd.AddCommand(NewSubredditsCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewWikiCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger installs a tinted terminal handler as the default logger.
func initLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
	return logger
}

// addBulkFlags registers the shared --limit / --sort / --time flags.
func addBulkFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "l", 100, "Maximum number of records to fetch across all pages")
	cmd.Flags().StringP("sort", "s", "all", "Listing sort order")
	cmd.Flags().StringP("time", "t", "all", "Listing timeframe (hour, day, week, month, year, all)")
}

// bulkFromFlags reads the shared bulk flags into a types.Bulk.
func bulkFromFlags(cmd *cobra.Command) types.Bulk {
	limit, _ := cmd.Flags().GetInt("limit")
	sort, _ := cmd.Flags().GetString("sort")
	timeframe, _ := cmd.Flags().GetString("time")
	return types.Bulk{
		Limit:     limit,
		Sort:      types.Sort(sort),
		Timeframe: types.Timeframe(timeframe),
	}
}

// printJSON writes records to stdout as indented JSON. Rendering beyond
// this is deliberately out of scope for the CLI.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
