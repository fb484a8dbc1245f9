// Package main provides the entry point for the redbulk CLI.
//
// redbulk pulls posts, comments, subreddits, users, wiki pages, and
// search results from Reddit in bulk and prints them as flat JSON
// records, one array per invocation.
//
// Usage:
//
//	redbulk posts --subreddit golang --limit 250 --sort top
//	redbulk user comments spez --limit 50
//	redbulk search subreddits "self hosting"
//
// See --help for all available options.
package main

// main is the entry point for redbulk.
func main() {
	Execute()
}
