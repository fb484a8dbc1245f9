package internal

import (
	"encoding/json"
	"fmt"

	pkgerrs "github.com/lmaznek/go-reddit-bulk/pkg/errors"
	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// Thing kinds as tagged by Reddit.
const (
	KindListing   = "Listing"
	KindComment   = "t1"
	KindAccount   = "t2"
	KindLink      = "t3"
	KindSubreddit = "t5"
	KindWikiPage  = "wikipage"
	KindMoreStub  = "more"
)

// Parser decodes raw Thing envelopes into their typed payloads.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseListing extracts a ListingData from a Thing of kind "Listing".
func (p *Parser) ParseListing(thing *types.Thing) (*types.ListingData, error) {
	if err := expectKind(thing, KindListing); err != nil {
		return nil, err
	}

	var listing types.ListingData
	if err := json.Unmarshal(thing.Data, &listing); err != nil {
		return nil, &pkgerrs.ShapeError{Operation: "parse listing", Err: err}
	}
	return &listing, nil
}

// ParsePost extracts a PostData from a Thing of kind "t3".
func (p *Parser) ParsePost(thing *types.Thing) (*types.PostData, error) {
	if err := expectKind(thing, KindLink); err != nil {
		return nil, err
	}

	var post types.PostData
	if err := json.Unmarshal(thing.Data, &post); err != nil {
		return nil, &pkgerrs.ShapeError{Operation: "parse post", Err: err}
	}
	return &post, nil
}

// ParseComment extracts a CommentData from a Thing of kind "t1".
func (p *Parser) ParseComment(thing *types.Thing) (*types.CommentData, error) {
	if err := expectKind(thing, KindComment); err != nil {
		return nil, err
	}

	var comment types.CommentData
	if err := json.Unmarshal(thing.Data, &comment); err != nil {
		return nil, &pkgerrs.ShapeError{Operation: "parse comment", Err: err}
	}
	return &comment, nil
}

// ParseSubreddit extracts a SubredditData from a Thing of kind "t5".
func (p *Parser) ParseSubreddit(thing *types.Thing) (*types.SubredditData, error) {
	if err := expectKind(thing, KindSubreddit); err != nil {
		return nil, err
	}

	var subreddit types.SubredditData
	if err := json.Unmarshal(thing.Data, &subreddit); err != nil {
		return nil, &pkgerrs.ShapeError{Operation: "parse subreddit", Err: err}
	}
	return &subreddit, nil
}

// ParseAccount extracts an AccountData from a Thing of kind "t2".
func (p *Parser) ParseAccount(thing *types.Thing) (*types.AccountData, error) {
	if err := expectKind(thing, KindAccount); err != nil {
		return nil, err
	}

	var account types.AccountData
	if err := json.Unmarshal(thing.Data, &account); err != nil {
		return nil, &pkgerrs.ShapeError{Operation: "parse account", Err: err}
	}
	return &account, nil
}

// ParseWikiPage extracts a WikiPageData from a Thing of kind "wikipage".
func (p *Parser) ParseWikiPage(thing *types.Thing) (*types.WikiPageData, error) {
	if err := expectKind(thing, KindWikiPage); err != nil {
		return nil, err
	}

	var page types.WikiPageData
	if err := json.Unmarshal(thing.Data, &page); err != nil {
		return nil, &pkgerrs.ShapeError{Operation: "parse wiki page", Err: err}
	}
	return &page, nil
}

// ParseMore extracts a MoreData from a Thing of kind "more".
func (p *Parser) ParseMore(thing *types.Thing) (*types.MoreData, error) {
	if err := expectKind(thing, KindMoreStub); err != nil {
		return nil, err
	}

	var more types.MoreData
	if err := json.Unmarshal(thing.Data, &more); err != nil {
		return nil, &pkgerrs.ShapeError{Operation: "parse more stub", Err: err}
	}
	return &more, nil
}

// IsMoreStub reports whether a child is the "more" pseudo-comment Reddit
// appends to truncated comment listings. Filtering happens by kind, not
// by position in the listing.
func IsMoreStub(thing *types.Thing) bool {
	return thing != nil && thing.Kind == KindMoreStub
}

// Children returns the child envelopes and next-page cursor of a listing
// Thing.
func (p *Parser) Children(thing *types.Thing) ([]*types.Thing, string, error) {
	listing, err := p.ParseListing(thing)
	if err != nil {
		return nil, "", err
	}
	return listing.Children, listing.AfterFullname, nil
}

// ExtractPostAndComments parses the two-element [post_listing,
// comments_listing] response of a post-detail fetch. "more" stubs are
// excluded from the comment slice by kind and their child IDs returned
// separately.
func (p *Parser) ExtractPostAndComments(response []*types.Thing) (*types.PostData, []*types.CommentData, []string, error) {
	if len(response) == 0 {
		return nil, nil, nil, &pkgerrs.ShapeError{Operation: "parse post detail", Message: "empty response"}
	}

	var post *types.PostData
	commentListing := response[0]

	if len(response) >= 2 {
		// Standard format: first listing holds the post, second the comments.
		children, _, err := p.Children(response[0])
		if err == nil {
			for _, child := range children {
				if child == nil || child.Kind != KindLink {
					continue
				}
				if parsed, err := p.ParsePost(child); err == nil {
					post = parsed
					break
				}
			}
		}
		commentListing = response[1]
	}

	children, _, err := p.Children(commentListing)
	if err != nil {
		return post, nil, nil, err
	}

	comments := make([]*types.CommentData, 0, len(children))
	var moreIDs []string
	for _, child := range children {
		if child == nil || len(child.Data) == 0 {
			continue
		}
		switch child.Kind {
		case KindComment:
			comment, err := p.ParseComment(child)
			if err != nil {
				continue
			}
			comments = append(comments, comment)
		case KindMoreStub:
			more, err := p.ParseMore(child)
			if err != nil {
				continue
			}
			moreIDs = append(moreIDs, more.Children...)
		}
	}

	return post, comments, moreIDs, nil
}

func expectKind(thing *types.Thing, kind string) error {
	if thing == nil {
		return &pkgerrs.ShapeError{Message: "thing is nil"}
	}
	if thing.Kind != kind {
		return &pkgerrs.ShapeError{Message: fmt.Sprintf("expected %s, got %s", kind, thing.Kind)}
	}
	return nil
}
