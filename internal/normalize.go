package internal

import (
	"time"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// Normalizer maps raw envelope payloads to canonical flat records. Every
// mapper is a total, pure projection: missing raw fields fall through to
// their zero values, never to an error. Batch forms skip envelopes with a
// missing data payload or an unexpected kind rather than failing the page.
type Normalizer struct {
	format types.TimeFormat
	now    func() time.Time
	parser *Parser
}

// NewNormalizer creates a Normalizer for the given time format.
func NewNormalizer(format types.TimeFormat) *Normalizer {
	return NewNormalizerAt(format, time.Now)
}

// NewNormalizerAt creates a Normalizer with an injected clock. Tests use
// a fixed clock to pin relative timestamps.
func NewNormalizerAt(format types.TimeFormat, now func() time.Time) *Normalizer {
	if format == "" {
		format = types.TimeFormatConcise
	}
	if now == nil {
		now = time.Now
	}
	return &Normalizer{format: format, now: now, parser: NewParser()}
}

// Post projects a raw post payload onto its canonical record.
func (n *Normalizer) Post(d *types.PostData) types.Post {
	now := n.now()
	return types.Post{
		Author:       d.Author,
		Title:        d.Title,
		Body:         d.SelfText,
		ID:           d.ID,
		Subreddit:    d.Subreddit,
		SubredditID:  d.SubredditID,
		Upvotes:      d.Ups,
		Downvotes:    d.Downs,
		UpvoteRatio:  d.UpvoteRatio,
		Score:        d.Score,
		CommentCount: d.NumComments,
		IsNSFW:       d.Over18,
		IsLocked:     d.Locked,
		IsArchived:   d.Archived,
		Domain:       d.Domain,
		Permalink:    d.Permalink,
		Created:      FormatTimestamp(d.CreatedUTC, n.format, now),
		Edited:       FormatEdited(d.Edited, n.format, now),
	}
}

// Comment projects a raw comment payload onto its canonical record.
func (n *Normalizer) Comment(d *types.CommentData) types.Comment {
	return types.Comment{
		Body:       d.Body,
		ID:         d.ID,
		Author:     d.Author,
		Upvotes:    d.Ups,
		Downvotes:  d.Downs,
		Subreddit:  d.Subreddit,
		PostID:     d.LinkID,
		PostTitle:  d.LinkTitle,
		IsNSFW:     d.Over18,
		Score:      d.Score,
		IsStickied: d.Stickied,
		IsLocked:   d.Locked,
		Created:    FormatTimestamp(d.CreatedUTC, n.format, n.now()),
	}
}

// Subreddit projects a raw subreddit payload onto its canonical record.
func (n *Normalizer) Subreddit(d *types.SubredditData) types.Subreddit {
	active := d.ActiveUserCount
	if active == 0 {
		active = d.AccountsActive
	}
	icon := d.CommunityIcon
	if icon == "" {
		icon = d.IconImg
	}
	return types.Subreddit{
		DisplayName:     d.DisplayName,
		ID:              d.ID,
		Description:     d.PublicDescription,
		Subscribers:     d.Subscribers,
		ActiveUsers:     active,
		Type:            d.SubredditType,
		IsNSFW:          d.Over18,
		Language:        d.Lang,
		WhitelistStatus: d.WhitelistStatus,
		IconURL:         StripTracking(icon),
		Created:         FormatTimestamp(d.CreatedUTC, n.format, n.now()),
	}
}

// User projects a raw account payload onto its canonical record,
// including the nested profile subreddit when present.
func (n *Normalizer) User(d *types.AccountData) types.User {
	u := types.User{
		Name:         d.Name,
		ID:           d.ID,
		IsVerified:   d.Verified,
		IsMod:        d.IsMod,
		IsEmployee:   d.IsEmployee,
		IsGold:       d.IsGold,
		CommentKarma: d.CommentKarma,
		LinkKarma:    d.LinkKarma,
		AwardeeKarma: d.AwardeeKarma,
		TotalKarma:   d.TotalKarma,
		AvatarURL:    StripTracking(d.IconImg),
		Created:      FormatTimestamp(d.CreatedUTC, n.format, n.now()),
	}
	if d.Subreddit != nil {
		profile := n.Subreddit(d.Subreddit)
		u.Subreddit = &profile
	}
	return u
}

// WikiPage projects a raw wiki payload onto its canonical record. The
// revising account arrives as a nested t2 Thing and is normalized like
// any other user.
func (n *Normalizer) WikiPage(d *types.WikiPageData) types.WikiPage {
	page := types.WikiPage{
		RevisionID:      d.RevisionID,
		RevisionDate:    FormatTimestamp(d.RevisionDate, n.format, n.now()),
		ContentMarkdown: d.ContentMarkdown,
		ContentHTML:     d.ContentHTML,
	}
	if d.RevisionBy != nil && len(d.RevisionBy.Data) > 0 {
		if account, err := n.parser.ParseAccount(d.RevisionBy); err == nil {
			user := n.User(account)
			page.RevisedBy = &user
		}
	}
	return page
}

// Posts normalizes every t3 child of a listing page, in input order.
func (n *Normalizer) Posts(children []*types.Thing) []types.Post {
	records := make([]types.Post, 0, len(children))
	for _, child := range children {
		if child == nil || len(child.Data) == 0 || child.Kind != KindLink {
			continue
		}
		data, err := n.parser.ParsePost(child)
		if err != nil {
			continue
		}
		records = append(records, n.Post(data))
	}
	return records
}

// Comments normalizes every t1 child of a listing page, in input order.
// "more" stubs and any other non-comment children are excluded by kind.
func (n *Normalizer) Comments(children []*types.Thing) []types.Comment {
	records := make([]types.Comment, 0, len(children))
	for _, child := range children {
		if child == nil || len(child.Data) == 0 || child.Kind != KindComment {
			continue
		}
		data, err := n.parser.ParseComment(child)
		if err != nil {
			continue
		}
		records = append(records, n.Comment(data))
	}
	return records
}

// Subreddits normalizes every t5 child of a listing page, in input order.
func (n *Normalizer) Subreddits(children []*types.Thing) []types.Subreddit {
	records := make([]types.Subreddit, 0, len(children))
	for _, child := range children {
		if child == nil || len(child.Data) == 0 || child.Kind != KindSubreddit {
			continue
		}
		data, err := n.parser.ParseSubreddit(child)
		if err != nil {
			continue
		}
		records = append(records, n.Subreddit(data))
	}
	return records
}

// Users normalizes every t2 child of a listing page, in input order.
func (n *Normalizer) Users(children []*types.Thing) []types.User {
	records := make([]types.User, 0, len(children))
	for _, child := range children {
		if child == nil || len(child.Data) == 0 || child.Kind != KindAccount {
			continue
		}
		data, err := n.parser.ParseAccount(child)
		if err != nil {
			continue
		}
		records = append(records, n.User(data))
	}
	return records
}
