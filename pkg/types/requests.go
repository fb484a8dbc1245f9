package types

// Bulk describes the caller-facing knobs shared by every bulk listing
// request. Limit is a hard ceiling on returned records, not a per-page
// size: the engine keeps fetching pages until the ceiling is reached or
// the listing runs out. A Limit of 0 short-circuits to an empty result
// without touching the network.
type Bulk struct {
	Limit     int
	Sort      Sort
	Timeframe Timeframe
}

// PostsRequest describes a request for a post listing. Kind selects the
// source (KindBestPosts, KindFrontPage, KindNewPosts, KindPopularPosts,
// KindAllPosts, KindSubredditPosts); Subreddit is required only for
// KindSubredditPosts.
type PostsRequest struct {
	Kind      QueryKind
	Subreddit string
	Bulk
}

// UserListingRequest describes a request for a listing under a username
// (submitted posts, comments, or overview).
type UserListingRequest struct {
	Username string
	Bulk
}

// PostCommentsRequest describes a request for a post together with its
// comment listing.
type PostCommentsRequest struct {
	Subreddit string
	PostID    string
	Bulk
}

// SearchRequest describes a search query for posts, subreddits, or users.
type SearchRequest struct {
	Query string
	Bulk
}

// SubredditsRequest describes a request for a subreddit listing.
type SubredditsRequest struct {
	Bulk
}

// WikiPageRequest describes a request for a single wiki page revision.
type WikiPageRequest struct {
	Subreddit string
	Page      string
}
