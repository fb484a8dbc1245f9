package redbulk

import "github.com/lmaznek/go-reddit-bulk/pkg/types"

// PostWithComments bundles a post with its normalized comment listing.
// MoreIDs carries the IDs of comments Reddit truncated behind "more"
// stubs; those stubs are excluded from Comments by kind.
type PostWithComments struct {
	Post     *types.Post
	Comments []types.Comment
	MoreIDs  []string
}
