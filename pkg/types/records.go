package types

// Canonical records are the flat, immutable snapshots the normalizer
// produces from raw envelopes. They hold no reference to their raw source
// and are never mutated after creation; the caller owns them outright.

// Post is the canonical flat record for a submission.
type Post struct {
	Author       string  `json:"author"`
	Title        string  `json:"title"`
	Body         string  `json:"body"`
	ID           string  `json:"id"`
	Subreddit    string  `json:"subreddit"`
	SubredditID  string  `json:"subreddit_id"`
	Upvotes      int     `json:"upvotes"`
	Downvotes    int     `json:"downvotes"`
	UpvoteRatio  float64 `json:"upvote_ratio"`
	Score        int     `json:"score"`
	CommentCount int     `json:"comment_count"`
	IsNSFW       bool    `json:"is_nsfw"`
	IsLocked     bool    `json:"is_locked"`
	IsArchived   bool    `json:"is_archived"`
	Domain       string  `json:"domain"`
	Permalink    string  `json:"permalink"`
	Created      string  `json:"created"`
	// Edited is "false" for unedited posts, otherwise the edit time
	// rendered with the same TimeFormat as Created.
	Edited string `json:"edited"`
}

// Comment is the canonical flat record for a comment.
type Comment struct {
	Body       string `json:"body"`
	ID         string `json:"id"`
	Author     string `json:"author"`
	Upvotes    int    `json:"upvotes"`
	Downvotes  int    `json:"downvotes"`
	Subreddit  string `json:"subreddit"`
	PostID     string `json:"post_id"`
	PostTitle  string `json:"post_title"`
	IsNSFW     bool   `json:"is_nsfw"`
	Score      int    `json:"score"`
	IsStickied bool   `json:"is_stickied"`
	IsLocked   bool   `json:"is_locked"`
	Created    string `json:"created"`
}

// Subreddit is the canonical flat record for a community.
type Subreddit struct {
	DisplayName     string `json:"display_name"`
	ID              string `json:"id"`
	Description     string `json:"description"`
	Subscribers     int64  `json:"subscribers"`
	ActiveUsers     int    `json:"active_users"`
	Type            string `json:"type"`
	IsNSFW          bool   `json:"is_nsfw"`
	Language        string `json:"language"`
	WhitelistStatus string `json:"whitelist_status"`
	IconURL         string `json:"icon_url"`
	Created         string `json:"created"`
}

// User is the canonical flat record for an account.
type User struct {
	Name         string     `json:"name"`
	ID           string     `json:"id"`
	IsVerified   bool       `json:"is_verified"`
	IsMod        bool       `json:"is_mod"`
	IsEmployee   bool       `json:"is_employee"`
	IsGold       bool       `json:"is_gold"`
	CommentKarma int        `json:"comment_karma"`
	LinkKarma    int        `json:"link_karma"`
	AwardeeKarma int        `json:"awardee_karma"`
	TotalKarma   int        `json:"total_karma"`
	AvatarURL    string     `json:"avatar_url"`
	Created      string     `json:"created"`
	Subreddit    *Subreddit `json:"subreddit,omitempty"`
}

// WikiPage is the canonical flat record for a wiki page revision.
type WikiPage struct {
	RevisionID      string `json:"revision_id"`
	RevisionDate    string `json:"revision_date"`
	ContentMarkdown string `json:"content_markdown"`
	ContentHTML     string `json:"content_html"`
	RevisedBy       *User  `json:"revised_by,omitempty"`
}
