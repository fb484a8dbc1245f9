package types

// QueryKind identifies one of the closed set of fetch operations. Endpoint
// resolution and normalization dispatch on it explicitly rather than
// guessing from the response shape.
type QueryKind int

const (
	KindUnknown QueryKind = iota

	// Post listings.
	KindBestPosts
	KindFrontPage
	KindNewPosts
	KindPopularPosts
	KindAllPosts
	KindSubredditPosts

	// User listings.
	KindUserPosts
	KindUserComments
	KindUserOverview
	KindUserModerated

	// Post detail (two-element [post, comments] response).
	KindPostComments

	// Search listings.
	KindSearchPosts
	KindSearchSubreddits
	KindSearchUsers

	// Subreddit listings.
	KindAllSubreddits

	// Single entities.
	KindSubredditAbout
	KindUserAbout
	KindWikiPage
)

// String returns the lowercase name used in logs and error messages.
func (k QueryKind) String() string {
	switch k {
	case KindBestPosts:
		return "best-posts"
	case KindFrontPage:
		return "front-page-posts"
	case KindNewPosts:
		return "new-posts"
	case KindPopularPosts:
		return "popular-posts"
	case KindAllPosts:
		return "all-posts"
	case KindSubredditPosts:
		return "subreddit-posts"
	case KindUserPosts:
		return "user-posts"
	case KindUserComments:
		return "user-comments"
	case KindUserOverview:
		return "user-overview"
	case KindUserModerated:
		return "user-moderated"
	case KindPostComments:
		return "post-comments"
	case KindSearchPosts:
		return "search-posts"
	case KindSearchSubreddits:
		return "search-subreddits"
	case KindSearchUsers:
		return "search-users"
	case KindAllSubreddits:
		return "all-subreddits"
	case KindSubredditAbout:
		return "subreddit-about"
	case KindUserAbout:
		return "user-about"
	case KindWikiPage:
		return "wiki-page"
	default:
		return "unknown"
	}
}

// Sort is the listing sort order sent as the "sort" query parameter.
type Sort string

const (
	SortAll           Sort = "all"
	SortHot           Sort = "hot"
	SortNew           Sort = "new"
	SortTop           Sort = "top"
	SortBest          Sort = "best"
	SortRising        Sort = "rising"
	SortControversial Sort = "controversial"
)

// Timeframe is the listing time window sent as the "t" query parameter.
type Timeframe string

const (
	TimeframeAll   Timeframe = "all"
	TimeframeHour  Timeframe = "hour"
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// TimeFormat selects how raw Unix timestamps are rendered on canonical
// records.
type TimeFormat string

const (
	// TimeFormatConcise renders a human-relative age such as "3 hours ago".
	TimeFormatConcise TimeFormat = "concise"
	// TimeFormatLocale renders an absolute date/time string.
	TimeFormatLocale TimeFormat = "locale"
)

// QueryParams carries the kind-specific scalar parameters of a query
// intent. Only the fields relevant to the kind need to be set.
type QueryParams struct {
	Subreddit string
	Username  string
	PostID    string
	Query     string
	WikiPage  string

	Limit     int
	Sort      Sort
	Timeframe Timeframe
}
