package internal

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	pkgerrs "github.com/lmaznek/go-reddit-bulk/pkg/errors"
	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// Resolver maps a (query kind, parameters) tuple to a fully-qualified
// request URL. It is pure: the same inputs always produce the same URL,
// and an unknown kind is a programming error, never a network failure.
type Resolver struct {
	base *url.URL
}

// NewResolver creates a Resolver rooted at baseURL.
func NewResolver(baseURL string) (*Resolver, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	return &Resolver{base: parsed}, nil
}

// Resolve builds the request URL for the given kind. The returned URL
// carries raw_json=1 plus limit, sort, and t query parameters where set;
// cursor parameters are appended later by the pagination engine.
func (r *Resolver) Resolve(kind types.QueryKind, p types.QueryParams) (string, error) {
	path, err := r.path(kind, p)
	if err != nil {
		return "", err
	}

	u, err := r.base.Parse(path)
	if err != nil {
		return "", &pkgerrs.RequestError{Operation: kind.String(), URL: path, Err: err}
	}

	q := u.Query()
	q.Set("raw_json", "1")
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Sort != "" {
		q.Set("sort", string(p.Sort))
	}
	if p.Timeframe != "" {
		q.Set("t", string(p.Timeframe))
	}
	switch kind {
	case types.KindSearchPosts:
		q.Set("q", p.Query)
		q.Set("type", "link")
	case types.KindSearchSubreddits, types.KindSearchUsers:
		q.Set("q", p.Query)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (r *Resolver) path(kind types.QueryKind, p types.QueryParams) (string, error) {
	switch kind {
	case types.KindBestPosts:
		return "best", nil
	case types.KindFrontPage:
		return "hot", nil
	case types.KindNewPosts:
		return "new", nil
	case types.KindPopularPosts:
		return "r/popular", nil
	case types.KindAllPosts:
		return "r/all", nil
	case types.KindSubredditPosts:
		return "r/" + p.Subreddit, nil
	case types.KindUserPosts:
		return "user/" + p.Username + "/submitted", nil
	case types.KindUserComments:
		return "user/" + p.Username + "/comments", nil
	case types.KindUserOverview:
		return "user/" + p.Username + "/overview", nil
	case types.KindUserModerated:
		return "user/" + p.Username + "/moderated_subreddits", nil
	case types.KindPostComments:
		return "r/" + p.Subreddit + "/comments/" + p.PostID, nil
	case types.KindSearchPosts:
		return "search", nil
	case types.KindSearchSubreddits:
		return "subreddits/search", nil
	case types.KindSearchUsers:
		return "users/search", nil
	case types.KindAllSubreddits:
		return "subreddits/new", nil
	case types.KindSubredditAbout:
		return "r/" + p.Subreddit + "/about", nil
	case types.KindUserAbout:
		return "user/" + p.Username + "/about", nil
	case types.KindWikiPage:
		return "r/" + p.Subreddit + "/wiki/" + p.WikiPage, nil
	default:
		return "", &pkgerrs.ConfigError{
			Field:   "kind",
			Message: fmt.Sprintf("no endpoint for query kind %q", kind),
		}
	}
}

// NextPageURL appends the pagination cursor and the running item count to
// a resolved base URL. Reddit uses count for its own pagination
// bookkeeping, so it is sent even though the engine never reads it back.
func NextPageURL(baseURL, cursor string, count int) string {
	if cursor == "" {
		return baseURL
	}

	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "after=" + url.QueryEscape(cursor) + "&count=" + strconv.Itoa(count)
}
