// Package redbulk is a bulk-retrieval toolkit for Reddit's public read
// endpoints. It turns a query intent (a kind, its parameters, and an item
// limit) into a sequence of flat canonical records, driving cursor-based
// pagination with a politeness delay between pages and tolerating
// partial or malformed responses from the upstream service.
//
// Basic usage:
//
//	client, err := redbulk.NewClient(&redbulk.Config{
//		UserAgent: "myapp/1.0 (+https://example.com/myapp)",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	posts, err := client.Posts(ctx, &types.PostsRequest{
//		Kind:      types.KindSubredditPosts,
//		Subreddit: "golang",
//		Bulk:      types.Bulk{Limit: 250, Sort: types.SortTop},
//	})
//
// Authentication is delegated to the HTTP client supplied in Config:
// pass an *http.Client built by golang.org/x/oauth2 (or any other
// mechanism) and the toolkit never touches token lifecycles itself.
package redbulk

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/lmaznek/go-reddit-bulk/internal"
	pkgerrs "github.com/lmaznek/go-reddit-bulk/pkg/errors"
	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

const (
	// DefaultBaseURL is the default Reddit API base URL.
	DefaultBaseURL = "https://oauth.reddit.com/"
	// DefaultUserAgent identifies the toolkit, its release, and where to
	// find it; Reddit requires a descriptive client identifier.
	DefaultUserAgent = "go-reddit-bulk/0.3 (+https://github.com/lmaznek/go-reddit-bulk)"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// maxPageSize is Reddit's per-request item cap; bulk limits above it
	// are satisfied across multiple pages.
	maxPageSize = 100
)

// WaitStrategy inserts the politeness delay between successive page
// requests. Substitute NoWait in tests to run the engine without sleeps.
type WaitStrategy = internal.WaitStrategy

// NoWait is a WaitStrategy that skips the delay entirely.
type NoWait = internal.NoWait

// RateLimitConfig controls steady-state request throttling.
type RateLimitConfig = internal.RateLimitConfig

// Config holds the configuration for the bulk client. Only UserAgent is
// commonly customized; every other field has a sensible default.
type Config struct {
	// UserAgent identifies the application to Reddit. Should name the
	// tool, its version, and a contact or documentation URL.
	UserAgent string

	// BaseURL for the Reddit API. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient performs the actual requests. Authentication is its
	// concern: pass a pre-authenticated client (for example from
	// golang.org/x/oauth2/clientcredentials) to hit oauth endpoints.
	// Defaults to a plain client with DefaultTimeout.
	HTTPClient *http.Client

	// Logger for structured diagnostics. Optional.
	Logger *slog.Logger

	// TimeFormat selects how timestamps are rendered on canonical
	// records. Defaults to the concise human-relative form.
	TimeFormat types.TimeFormat

	// RateLimit caps steady-state request throughput. Optional.
	RateLimit *RateLimitConfig

	// Wait is the politeness delay between listing pages. Defaults to a
	// bounded random delay of 1-10 seconds.
	Wait WaitStrategy

	// Strict makes bulk fetches return the failure alongside partial
	// results instead of only logging it.
	Strict bool

	// OnPageError observes non-fatal page failures in non-strict mode.
	OnPageError func(error)
}

// Client fetches flat canonical records from Reddit. It is safe for
// concurrent use: independent bulk fetches share only the underlying
// HTTP client and rate limiter.
type Client struct {
	transport   *internal.Transport
	resolver    *internal.Resolver
	parser      *internal.Parser
	validator   *internal.Validator
	normalizer  *internal.Normalizer
	logger      *slog.Logger
	wait        WaitStrategy
	strict      bool
	onPageError func(error)
}

// NewClient creates a client from the provided configuration, applying
// defaults for every unset field. A nil config gets all defaults.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = &Config{}
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	wait := config.Wait
	if wait == nil {
		wait = internal.DefaultWait()
	}

	validator := internal.NewValidator()
	if err := validator.ValidateUserAgent(userAgent); err != nil {
		return nil, err
	}

	resolver, err := internal.NewResolver(baseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		transport:   internal.NewTransport(httpClient, userAgent, config.RateLimit, config.Logger),
		resolver:    resolver,
		parser:      internal.NewParser(),
		validator:   validator,
		normalizer:  internal.NewNormalizer(config.TimeFormat),
		logger:      config.Logger,
		wait:        wait,
		strict:      config.Strict,
		onPageError: config.OnPageError,
	}, nil
}

// Posts retrieves a bulk post listing. The request kind selects the
// source: best, front page, new, popular, all, or a single subreddit. A
// nil request fetches the front page with the default page of results.
func (c *Client) Posts(ctx context.Context, request *types.PostsRequest) ([]types.Post, error) {
	if request == nil {
		request = &types.PostsRequest{Kind: types.KindFrontPage, Bulk: types.Bulk{Limit: maxPageSize}}
	}
	kind := request.Kind
	if kind == types.KindUnknown {
		kind = types.KindFrontPage
	}
	if kind == types.KindSubredditPosts {
		if err := c.validator.ValidateSubredditName(request.Subreddit); err != nil {
			return nil, err
		}
	}

	url, err := c.resolveBulk(kind, types.QueryParams{Subreddit: request.Subreddit}, request.Bulk)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, kind.String(), url, request.Limit, c.normalizer.Posts)
}

// UserPosts retrieves posts submitted by a user.
func (c *Client) UserPosts(ctx context.Context, request *types.UserListingRequest) ([]types.Post, error) {
	if request == nil {
		return nil, &pkgerrs.ConfigError{Field: "request", Message: "request cannot be nil"}
	}
	if err := c.validator.ValidateUsername(request.Username); err != nil {
		return nil, err
	}

	url, err := c.resolveBulk(types.KindUserPosts, types.QueryParams{Username: request.Username}, request.Bulk)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, types.KindUserPosts.String(), url, request.Limit, c.normalizer.Posts)
}

// UserComments retrieves comments posted by a user.
func (c *Client) UserComments(ctx context.Context, request *types.UserListingRequest) ([]types.Comment, error) {
	if request == nil {
		return nil, &pkgerrs.ConfigError{Field: "request", Message: "request cannot be nil"}
	}
	if err := c.validator.ValidateUsername(request.Username); err != nil {
		return nil, err
	}

	url, err := c.resolveBulk(types.KindUserComments, types.QueryParams{Username: request.Username}, request.Bulk)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, types.KindUserComments.String(), url, request.Limit, c.normalizer.Comments)
}

// UserOverview retrieves a user's recent comment activity.
func (c *Client) UserOverview(ctx context.Context, request *types.UserListingRequest) ([]types.Comment, error) {
	if request == nil {
		return nil, &pkgerrs.ConfigError{Field: "request", Message: "request cannot be nil"}
	}
	if err := c.validator.ValidateUsername(request.Username); err != nil {
		return nil, err
	}

	url, err := c.resolveBulk(types.KindUserOverview, types.QueryParams{Username: request.Username}, request.Bulk)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, types.KindUserOverview.String(), url, request.Limit, c.normalizer.Comments)
}

// ModeratedSubreddits retrieves the subreddits a user moderates. Callers
// probing for bare existence pass a zero limit, which answers without a
// network round trip.
func (c *Client) ModeratedSubreddits(ctx context.Context, request *types.UserListingRequest) ([]types.Subreddit, error) {
	if request == nil {
		return nil, &pkgerrs.ConfigError{Field: "request", Message: "request cannot be nil"}
	}
	if err := c.validator.ValidateUsername(request.Username); err != nil {
		return nil, err
	}

	url, err := c.resolveBulk(types.KindUserModerated, types.QueryParams{Username: request.Username}, request.Bulk)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, types.KindUserModerated.String(), url, request.Limit, c.normalizer.Subreddits)
}

// SearchPosts retrieves posts matching a search query.
func (c *Client) SearchPosts(ctx context.Context, request *types.SearchRequest) ([]types.Post, error) {
	url, err := c.resolveSearch(types.KindSearchPosts, request)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, types.KindSearchPosts.String(), url, request.Limit, c.normalizer.Posts)
}

// SearchSubreddits retrieves subreddits matching a search query.
func (c *Client) SearchSubreddits(ctx context.Context, request *types.SearchRequest) ([]types.Subreddit, error) {
	url, err := c.resolveSearch(types.KindSearchSubreddits, request)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, types.KindSearchSubreddits.String(), url, request.Limit, c.normalizer.Subreddits)
}

// SearchUsers retrieves users matching a search query.
func (c *Client) SearchUsers(ctx context.Context, request *types.SearchRequest) ([]types.User, error) {
	url, err := c.resolveSearch(types.KindSearchUsers, request)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, types.KindSearchUsers.String(), url, request.Limit, c.normalizer.Users)
}

// Subreddits retrieves the sitewide subreddit listing.
func (c *Client) Subreddits(ctx context.Context, request *types.SubredditsRequest) ([]types.Subreddit, error) {
	if request == nil {
		request = &types.SubredditsRequest{Bulk: types.Bulk{Limit: maxPageSize}}
	}

	url, err := c.resolveBulk(types.KindAllSubreddits, types.QueryParams{}, request.Bulk)
	if err != nil {
		return nil, err
	}
	return paginate(ctx, c, types.KindAllSubreddits.String(), url, request.Limit, c.normalizer.Subreddits)
}

// PostComments retrieves a post together with its comment listing.
// Reddit responds with a two-element [post, comments] array; "more"
// stubs are excluded from the comments by kind and their IDs surfaced on
// the response for deferred loading.
func (c *Client) PostComments(ctx context.Context, request *types.PostCommentsRequest) (*PostWithComments, error) {
	if request == nil {
		return nil, &pkgerrs.ConfigError{Field: "request", Message: "request cannot be nil"}
	}
	if err := c.validator.ValidateSubredditName(request.Subreddit); err != nil {
		return nil, err
	}
	if request.PostID == "" {
		return nil, &pkgerrs.ConfigError{Field: "PostID", Message: "post ID cannot be empty"}
	}

	url, err := c.resolveBulk(types.KindPostComments, types.QueryParams{
		Subreddit: request.Subreddit,
		PostID:    request.PostID,
	}, request.Bulk)
	if err != nil {
		return nil, err
	}

	op := types.KindPostComments.String()
	things, err := c.transport.FetchThings(ctx, op, url)
	if err != nil {
		return nil, err
	}

	rawPost, rawComments, moreIDs, err := c.parser.ExtractPostAndComments(things)
	if err != nil {
		return nil, err
	}

	response := &PostWithComments{MoreIDs: moreIDs}
	if rawPost != nil {
		post := c.normalizer.Post(rawPost)
		response.Post = &post
	}

	comments := make([]types.Comment, 0, len(rawComments))
	for _, raw := range rawComments {
		comments = append(comments, c.normalizer.Comment(raw))
	}
	if request.Limit > 0 && len(comments) > request.Limit {
		comments = comments[:request.Limit]
	}
	response.Comments = comments

	return response, nil
}

// Subreddit retrieves a single subreddit's metadata. A response missing
// its discriminating key means the subreddit does not exist; that is
// reported as (nil, nil), not as an error.
func (c *Client) Subreddit(ctx context.Context, name string) (*types.Subreddit, error) {
	if err := c.validator.ValidateSubredditName(name); err != nil {
		return nil, err
	}

	url, err := c.resolver.Resolve(types.KindSubredditAbout, types.QueryParams{Subreddit: name})
	if err != nil {
		return nil, err
	}

	thing, err := c.transport.FetchThing(ctx, types.KindSubredditAbout.String(), url)
	if err != nil {
		return nil, err
	}
	if !c.validator.HasKey(thing.Data, internal.ProfileKey) {
		return nil, nil
	}

	data, err := c.parser.ParseSubreddit(thing)
	if err != nil {
		return nil, err
	}
	record := c.normalizer.Subreddit(data)
	return &record, nil
}

// User retrieves a single user profile. A response missing its
// discriminating key means the user does not exist; that is reported as
// (nil, nil), not as an error.
func (c *Client) User(ctx context.Context, username string) (*types.User, error) {
	if err := c.validator.ValidateUsername(username); err != nil {
		return nil, err
	}

	url, err := c.resolver.Resolve(types.KindUserAbout, types.QueryParams{Username: username})
	if err != nil {
		return nil, err
	}

	thing, err := c.transport.FetchThing(ctx, types.KindUserAbout.String(), url)
	if err != nil {
		return nil, err
	}
	if !c.validator.HasKey(thing.Data, internal.ProfileKey) {
		return nil, nil
	}

	data, err := c.parser.ParseAccount(thing)
	if err != nil {
		return nil, err
	}
	record := c.normalizer.User(data)
	return &record, nil
}

// WikiPage retrieves a single wiki page revision. A response missing its
// content key means the page does not exist; that is reported as
// (nil, nil), not as an error.
func (c *Client) WikiPage(ctx context.Context, request *types.WikiPageRequest) (*types.WikiPage, error) {
	if request == nil {
		return nil, &pkgerrs.ConfigError{Field: "request", Message: "request cannot be nil"}
	}
	if err := c.validator.ValidateSubredditName(request.Subreddit); err != nil {
		return nil, err
	}
	if request.Page == "" {
		return nil, &pkgerrs.ConfigError{Field: "Page", Message: "wiki page name cannot be empty"}
	}

	url, err := c.resolver.Resolve(types.KindWikiPage, types.QueryParams{
		Subreddit: request.Subreddit,
		WikiPage:  request.Page,
	})
	if err != nil {
		return nil, err
	}

	thing, err := c.transport.FetchThing(ctx, types.KindWikiPage.String(), url)
	if err != nil {
		return nil, err
	}
	if !c.validator.HasKey(thing.Data, internal.WikiPageKey) {
		return nil, nil
	}

	data, err := c.parser.ParseWikiPage(thing)
	if err != nil {
		return nil, err
	}
	record := c.normalizer.WikiPage(data)
	return &record, nil
}

// resolveBulk builds the initial listing URL for a bulk request,
// clamping the per-page size to Reddit's cap while leaving the total
// limit to the pagination engine.
func (c *Client) resolveBulk(kind types.QueryKind, params types.QueryParams, bulk types.Bulk) (string, error) {
	if err := c.validator.ValidateLimit(bulk.Limit); err != nil {
		return "", err
	}

	pageSize := bulk.Limit
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	params.Limit = pageSize
	params.Sort = bulk.Sort
	params.Timeframe = bulk.Timeframe
	return c.resolver.Resolve(kind, params)
}

func (c *Client) resolveSearch(kind types.QueryKind, request *types.SearchRequest) (string, error) {
	if request == nil {
		return "", &pkgerrs.ConfigError{Field: "request", Message: "request cannot be nil"}
	}
	if request.Query == "" {
		return "", &pkgerrs.ConfigError{Field: "Query", Message: "search query cannot be empty"}
	}
	return c.resolveBulk(kind, types.QueryParams{Query: request.Query}, request.Bulk)
}
