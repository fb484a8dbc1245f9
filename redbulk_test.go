package redbulk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrs "github.com/lmaznek/go-reddit-bulk/pkg/errors"
	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient(nil) failed: %v", err)
	}
	if client.transport.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", client.transport.UserAgent)
	}
}

func TestNewClientRejectsBadUserAgent(t *testing.T) {
	_, err := NewClient(&Config{UserAgent: "evil\r\nX-Injected: 1"})
	if err == nil {
		t.Fatal("expected error for user agent with newlines")
	}

	var cfgErr *pkgerrs.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *ConfigError", err)
	}
}

func TestSubredditAbout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/golang/about" {
			t.Errorf("path = %q, want /r/golang/about", r.URL.Path)
		}
		fmt.Fprint(w, `{"kind": "t5", "data": {
			"display_name": "golang",
			"id": "2rc7j",
			"public_description": "Gopher discussion",
			"subscribers": 200000,
			"active_user_count": 500,
			"subreddit_type": "public",
			"lang": "en",
			"created_utc": 1201243765
		}}`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL, TimeFormat: types.TimeFormatLocale})
	sub, err := client.Subreddit(context.Background(), "golang")
	if err != nil {
		t.Fatalf("Subreddit failed: %v", err)
	}
	if sub == nil {
		t.Fatal("sub = nil, want a record")
	}
	if sub.DisplayName != "golang" || sub.Subscribers != 200000 || sub.ActiveUsers != 500 {
		t.Errorf("sub = %+v", sub)
	}
	if sub.Created != "Friday, January 25, 2008 at 05:29:25" {
		t.Errorf("Created = %q", sub.Created)
	}
}

func TestSubredditNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Reddit answers some missing subreddits with 200 and a bare
		// message body; absence of created_utc is the signal.
		fmt.Fprint(w, `{"kind": "t5", "data": {"message": "Not Found"}}`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	sub, err := client.Subreddit(context.Background(), "doesnotexist")
	if err != nil {
		t.Fatalf("missing subreddit should not be an error, got %v", err)
	}
	if sub != nil {
		t.Errorf("sub = %+v, want nil for a missing subreddit", sub)
	}
}

func TestSubredditRejectsInvalidName(t *testing.T) {
	client := newTestClient(t, &Config{BaseURL: "http://127.0.0.1:1"})
	if _, err := client.Subreddit(context.Background(), "../secrets"); err == nil {
		t.Fatal("expected error for invalid subreddit name")
	}
}

func TestUserAbout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/spez/about" {
			t.Errorf("path = %q, want /user/spez/about", r.URL.Path)
		}
		fmt.Fprint(w, `{"kind": "t2", "data": {
			"name": "spez",
			"id": "1w72",
			"link_karma": 100,
			"comment_karma": 200,
			"total_karma": 300,
			"verified": true,
			"created_utc": 1118030400,
			"subreddit": {"display_name": "u_spez", "subscribers": 42}
		}}`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	user, err := client.User(context.Background(), "spez")
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}
	if user == nil {
		t.Fatal("user = nil, want a record")
	}
	if user.Name != "spez" || user.TotalKarma != 300 || !user.IsVerified {
		t.Errorf("user = %+v", user)
	}
	if user.Subreddit == nil || user.Subreddit.DisplayName != "u_spez" {
		t.Errorf("profile subreddit = %+v", user.Subreddit)
	}
}

func TestUserNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"kind": "t2", "data": {}}`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	user, err := client.User(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("missing user should not be an error, got %v", err)
	}
	if user != nil {
		t.Errorf("user = %+v, want nil for a missing user", user)
	}
}

func TestWikiPageFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/golang/wiki/index" {
			t.Errorf("path = %q, want /r/golang/wiki/index", r.URL.Path)
		}
		fmt.Fprint(w, `{"kind": "wikipage", "data": {
			"content_md": "# Welcome",
			"content_html": "<h1>Welcome</h1>",
			"revision_id": "rev-7",
			"revision_date": 1700000000,
			"revision_by": {"kind": "t2", "data": {"name": "moderator"}}
		}}`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	page, err := client.WikiPage(context.Background(), &types.WikiPageRequest{Subreddit: "golang", Page: "index"})
	if err != nil {
		t.Fatalf("WikiPage failed: %v", err)
	}
	if page == nil {
		t.Fatal("page = nil, want a record")
	}
	if page.ContentMarkdown != "# Welcome" || page.RevisionID != "rev-7" {
		t.Errorf("page = %+v", page)
	}
	if page.RevisedBy == nil || page.RevisedBy.Name != "moderator" {
		t.Errorf("RevisedBy = %+v", page.RevisedBy)
	}
}

func TestWikiPageNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"kind": "wikipage", "data": {"reason": "PAGE_NOT_FOUND"}}`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	page, err := client.WikiPage(context.Background(), &types.WikiPageRequest{Subreddit: "golang", Page: "missing"})
	if err != nil {
		t.Fatalf("missing wiki page should not be an error, got %v", err)
	}
	if page != nil {
		t.Errorf("page = %+v, want nil for a missing page", page)
	}
}

func TestPostComments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/golang/comments/abc" {
			t.Errorf("path = %q, want /r/golang/comments/abc", r.URL.Path)
		}
		fmt.Fprint(w, `[
			{"kind": "Listing", "data": {"after": "", "children": [
				{"kind": "t3", "data": {"id": "abc", "title": "A post", "num_comments": 4}}
			]}},
			{"kind": "Listing", "data": {"after": "", "children": [
				{"kind": "t1", "data": {"id": "c1", "body": "first"}},
				{"kind": "t1", "data": {"id": "c2", "body": "second"}},
				{"kind": "t1", "data": {"id": "c3", "body": "third"}},
				{"kind": "more", "data": {"count": 9, "children": ["c4", "c5"]}}
			]}}
		]`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	result, err := client.PostComments(context.Background(), &types.PostCommentsRequest{
		Subreddit: "golang",
		PostID:    "abc",
		Bulk:      types.Bulk{Limit: 2},
	})
	if err != nil {
		t.Fatalf("PostComments failed: %v", err)
	}
	if result.Post == nil || result.Post.Title != "A post" {
		t.Errorf("Post = %+v", result.Post)
	}
	if len(result.Comments) != 2 {
		t.Errorf("len(Comments) = %d, want limit of 2", len(result.Comments))
	}
	if len(result.MoreIDs) != 2 || result.MoreIDs[0] != "c4" {
		t.Errorf("MoreIDs = %v, want the stub's children", result.MoreIDs)
	}
}

func TestPostCommentsRequiresPostID(t *testing.T) {
	client := newTestClient(t, &Config{BaseURL: "http://127.0.0.1:1"})
	_, err := client.PostComments(context.Background(), &types.PostCommentsRequest{Subreddit: "golang"})
	if err == nil {
		t.Fatal("expected error for empty post ID")
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	client := newTestClient(t, &Config{BaseURL: "http://127.0.0.1:1"})
	_, err := client.SearchPosts(context.Background(), &types.SearchRequest{Bulk: types.Bulk{Limit: 10}})
	if err == nil {
		t.Fatal("expected error for empty query")
	}

	var cfgErr *pkgerrs.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *ConfigError", err)
	}
}

func TestSearchSubredditsSendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subreddits/search" {
			t.Errorf("path = %q, want /subreddits/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "gophers" {
			t.Errorf("q = %q, want gophers", got)
		}
		fmt.Fprint(w, `{"kind": "Listing", "data": {"after": "", "children": [
			{"kind": "t5", "data": {"display_name": "golang"}}
		]}}`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	subs, err := client.SearchSubreddits(context.Background(), &types.SearchRequest{
		Query: "gophers",
		Bulk:  types.Bulk{Limit: 10},
	})
	if err != nil {
		t.Fatalf("SearchSubreddits failed: %v", err)
	}
	if len(subs) != 1 || subs[0].DisplayName != "golang" {
		t.Errorf("subs = %+v", subs)
	}
}

func TestUserListingValidation(t *testing.T) {
	client := newTestClient(t, &Config{BaseURL: "http://127.0.0.1:1"})

	if _, err := client.UserPosts(context.Background(), nil); err == nil {
		t.Error("nil request should be rejected")
	}
	if _, err := client.UserComments(context.Background(), &types.UserListingRequest{Username: "bad name"}); err == nil {
		t.Error("invalid username should be rejected")
	}
}

func TestUserOverviewFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/spez/overview" {
			t.Errorf("path = %q, want /user/spez/overview", r.URL.Path)
		}
		fmt.Fprint(w, `{"kind": "Listing", "data": {"after": "", "children": [
			{"kind": "t1", "data": {"id": "c1", "body": "a comment"}},
			{"kind": "t3", "data": {"id": "p1", "title": "a post"}}
		]}}`)
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	comments, err := client.UserOverview(context.Background(), &types.UserListingRequest{
		Username: "spez",
		Bulk:     types.Bulk{Limit: 50},
	})
	if err != nil {
		t.Fatalf("UserOverview failed: %v", err)
	}
	// Overview mixes kinds; only comments survive normalization.
	if len(comments) != 1 || comments[0].Body != "a comment" {
		t.Errorf("comments = %+v", comments)
	}
}

func TestPostsDefaultsToFrontPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hot" {
			t.Errorf("path = %q, want /hot", r.URL.Path)
		}
		fmt.Fprint(w, postPage(0, 3, ""))
	}))
	defer server.Close()

	client := newTestClient(t, &Config{BaseURL: server.URL})
	posts, err := client.Posts(context.Background(), nil)
	if err != nil {
		t.Fatalf("Posts(nil) failed: %v", err)
	}
	if len(posts) != 3 {
		t.Errorf("len(posts) = %d, want 3", len(posts))
	}
}
