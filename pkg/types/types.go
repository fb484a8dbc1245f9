package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Thing is the envelope Reddit wraps around every API object: a kind tag
// plus a raw data payload parsed by the caller once the kind is known.
type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// ListingData contains the data for a Listing, Reddit's paginated
// collection shape. AfterFullname is the opaque cursor for the next page;
// an empty value signals the final page.
type ListingData struct {
	BeforeFullname string   `json:"before"`
	AfterFullname  string   `json:"after"`
	Modhash        string   `json:"modhash"`
	Children       []*Thing `json:"children"`
}

// Edited represents a field that can be a boolean or a timestamp.
// If IsEdited is true and Timestamp is 0, it was an old edit marked as `true`.
// If IsEdited is true and Timestamp is non-zero, it's a modern edit with a timestamp.
// If IsEdited is false, the item was not edited.
type Edited struct {
	IsEdited  bool
	Timestamp float64
}

// UnmarshalJSON implements json.Unmarshaler to handle mixed types for the "edited" field.
func (e *Edited) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(string(data))
	switch s {
	case "false", "null":
		e.IsEdited = false
		e.Timestamp = 0
		return nil
	case "true":
		e.IsEdited = true
		e.Timestamp = 0
		return nil
	}

	var timestamp float64
	if err := json.Unmarshal(data, &timestamp); err == nil {
		e.IsEdited = true
		e.Timestamp = timestamp
		return nil
	}

	return fmt.Errorf("unrecognized type for 'edited' field: %s", s)
}

// PostData is the raw payload of a "t3" (link) Thing.
type PostData struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Author      string  `json:"author"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext"`
	Subreddit   string  `json:"subreddit"`
	SubredditID string  `json:"subreddit_id"`
	Ups         int     `json:"ups"`
	Downs       int     `json:"downs"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	Over18      bool    `json:"over_18"`
	Locked      bool    `json:"locked"`
	Archived    bool    `json:"archived"`
	Stickied    bool    `json:"stickied"`
	IsSelf      bool    `json:"is_self"`
	Domain      string  `json:"domain"`
	URL         string  `json:"url"`
	Thumbnail   string  `json:"thumbnail"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
	Edited      Edited  `json:"edited"`
}

// CommentData is the raw payload of a "t1" (comment) Thing.
type CommentData struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Author      string  `json:"author"`
	Body        string  `json:"body"`
	BodyHTML    string  `json:"body_html"`
	Subreddit   string  `json:"subreddit"`
	LinkID      string  `json:"link_id"`
	LinkTitle   string  `json:"link_title"`
	ParentID    string  `json:"parent_id"`
	Ups         int     `json:"ups"`
	Downs       int     `json:"downs"`
	Score       int     `json:"score"`
	Over18      bool    `json:"over_18"`
	Stickied    bool    `json:"stickied"`
	Locked      bool    `json:"locked"`
	ScoreHidden bool    `json:"score_hidden"`
	CreatedUTC  float64 `json:"created_utc"`
	Edited      Edited  `json:"edited"`
}

// SubredditData is the raw payload of a "t5" (subreddit) Thing.
type SubredditData struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	DisplayName       string  `json:"display_name"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	PublicDescription string  `json:"public_description"`
	Subscribers       int64   `json:"subscribers"`
	AccountsActive    int     `json:"accounts_active"`
	ActiveUserCount   int     `json:"active_user_count"`
	SubredditType     string  `json:"subreddit_type"`
	Over18            bool    `json:"over18"`
	Lang              string  `json:"lang"`
	WhitelistStatus   string  `json:"whitelist_status"`
	URL               string  `json:"url"`
	IconImg           string  `json:"icon_img"`
	CommunityIcon     string  `json:"community_icon"`
	CreatedUTC        float64 `json:"created_utc"`
}

// AccountData is the raw payload of a "t2" (account) Thing.
type AccountData struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Verified         bool           `json:"verified"`
	IsMod            bool           `json:"is_mod"`
	IsEmployee       bool           `json:"is_employee"`
	IsGold           bool           `json:"is_gold"`
	IsBlocked        bool           `json:"is_blocked"`
	HasVerifiedEmail *bool          `json:"has_verified_email"`
	CommentKarma     int            `json:"comment_karma"`
	LinkKarma        int            `json:"link_karma"`
	AwardeeKarma     int            `json:"awardee_karma"`
	AwarderKarma     int            `json:"awarder_karma"`
	TotalKarma       int            `json:"total_karma"`
	HideFromRobots   bool           `json:"hide_from_robots"`
	IconImg          string         `json:"icon_img"`
	CreatedUTC       float64        `json:"created_utc"`
	Subreddit        *SubredditData `json:"subreddit"`
}

// WikiPageData is the raw payload of a "wikipage" Thing.
type WikiPageData struct {
	ContentMarkdown string  `json:"content_md"`
	ContentHTML     string  `json:"content_html"`
	MayRevise       bool    `json:"may_revise"`
	RevisionID      string  `json:"revision_id"`
	RevisionDate    float64 `json:"revision_date"`
	RevisionBy      *Thing  `json:"revision_by"`
}

// MoreData is the raw payload of a "more" stub, the pseudo-comment Reddit
// inserts in place of truncated comment subtrees.
type MoreData struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Count    int      `json:"count"`
	Children []string `json:"children"`
}
