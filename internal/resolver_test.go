package internal

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	pkgerrs "github.com/lmaznek/go-reddit-bulk/pkg/errors"
	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

func TestResolvePaths(t *testing.T) {
	resolver, err := NewResolver("https://oauth.reddit.com/")
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	tests := []struct {
		name     string
		kind     types.QueryKind
		params   types.QueryParams
		wantPath string
	}{
		{"best posts", types.KindBestPosts, types.QueryParams{}, "/best"},
		{"front page", types.KindFrontPage, types.QueryParams{}, "/hot"},
		{"new posts", types.KindNewPosts, types.QueryParams{}, "/new"},
		{"popular posts", types.KindPopularPosts, types.QueryParams{}, "/r/popular"},
		{"all posts", types.KindAllPosts, types.QueryParams{}, "/r/all"},
		{"subreddit posts", types.KindSubredditPosts, types.QueryParams{Subreddit: "golang"}, "/r/golang"},
		{"user posts", types.KindUserPosts, types.QueryParams{Username: "spez"}, "/user/spez/submitted"},
		{"user comments", types.KindUserComments, types.QueryParams{Username: "spez"}, "/user/spez/comments"},
		{"user overview", types.KindUserOverview, types.QueryParams{Username: "spez"}, "/user/spez/overview"},
		{"moderated", types.KindUserModerated, types.QueryParams{Username: "spez"}, "/user/spez/moderated_subreddits"},
		{"post comments", types.KindPostComments, types.QueryParams{Subreddit: "golang", PostID: "abc123"}, "/r/golang/comments/abc123"},
		{"search posts", types.KindSearchPosts, types.QueryParams{Query: "generics"}, "/search"},
		{"search subreddits", types.KindSearchSubreddits, types.QueryParams{Query: "golang"}, "/subreddits/search"},
		{"search users", types.KindSearchUsers, types.QueryParams{Query: "spez"}, "/users/search"},
		{"all subreddits", types.KindAllSubreddits, types.QueryParams{}, "/subreddits/new"},
		{"subreddit about", types.KindSubredditAbout, types.QueryParams{Subreddit: "golang"}, "/r/golang/about"},
		{"user about", types.KindUserAbout, types.QueryParams{Username: "spez"}, "/user/spez/about"},
		{"wiki page", types.KindWikiPage, types.QueryParams{Subreddit: "golang", WikiPage: "index"}, "/r/golang/wiki/index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := resolver.Resolve(tt.kind, tt.params)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}

			u, err := url.Parse(resolved)
			if err != nil {
				t.Fatalf("resolved URL does not parse: %v", err)
			}
			if u.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", u.Path, tt.wantPath)
			}
			if u.Query().Get("raw_json") != "1" {
				t.Errorf("raw_json parameter missing from %q", resolved)
			}
		})
	}
}

func TestResolveQueryParameters(t *testing.T) {
	resolver, err := NewResolver("https://oauth.reddit.com/")
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	resolved, err := resolver.Resolve(types.KindSubredditPosts, types.QueryParams{
		Subreddit: "golang",
		Limit:     100,
		Sort:      types.SortTop,
		Timeframe: types.TimeframeWeek,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	u, _ := url.Parse(resolved)
	q := u.Query()
	if q.Get("limit") != "100" {
		t.Errorf("limit = %q, want 100", q.Get("limit"))
	}
	if q.Get("sort") != "top" {
		t.Errorf("sort = %q, want top", q.Get("sort"))
	}
	if q.Get("t") != "week" {
		t.Errorf("t = %q, want week", q.Get("t"))
	}
}

func TestResolveSearchQuery(t *testing.T) {
	resolver, err := NewResolver("https://oauth.reddit.com/")
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	resolved, err := resolver.Resolve(types.KindSearchPosts, types.QueryParams{Query: "go generics"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	u, _ := url.Parse(resolved)
	if got := u.Query().Get("q"); got != "go generics" {
		t.Errorf("q = %q, want %q", got, "go generics")
	}
	if got := u.Query().Get("type"); got != "link" {
		t.Errorf("type = %q, want link", got)
	}
}

func TestResolveUnknownKind(t *testing.T) {
	resolver, err := NewResolver("https://oauth.reddit.com/")
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	_, err = resolver.Resolve(types.KindUnknown, types.QueryParams{})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}

	var cfgErr *pkgerrs.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *ConfigError", err)
	}
}

func TestNextPageURL(t *testing.T) {
	base := "https://oauth.reddit.com/hot?limit=100&raw_json=1"

	if got := NextPageURL(base, "", 0); got != base {
		t.Errorf("no cursor should return base URL unchanged, got %q", got)
	}

	got := NextPageURL(base, "t3_abc", 100)
	if !strings.Contains(got, "after=t3_abc") {
		t.Errorf("cursor missing from %q", got)
	}
	if !strings.Contains(got, "count=100") {
		t.Errorf("count missing from %q", got)
	}

	// A base URL without a query string gets "?" rather than "&".
	bare := NextPageURL("https://oauth.reddit.com/hot", "t3_abc", 5)
	if !strings.Contains(bare, "hot?after=t3_abc") {
		t.Errorf("expected ? separator in %q", bare)
	}
}
