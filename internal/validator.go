package internal

import (
	"encoding/json"
	"fmt"
	"strings"

	pkgerrs "github.com/lmaznek/go-reddit-bulk/pkg/errors"
)

const (
	// Subreddit name constraints
	minSubredditLength = 3
	maxSubredditLength = 21

	// Username constraints
	maxUsernameLength = 20

	// User agent constraints
	maxUserAgentLength = 256
)

// Discriminating keys for single-entity responses: a body missing its key
// means "no such entity", which is a sentinel, not an error.
const (
	ProfileKey  = "created_utc"
	WikiPageKey = "content_md"
)

// Validator provides response-shape probes and parameter validation.
//
// The shape probes preserve a deliberate double meaning: for a
// single-entity dict, a missing discriminating key means "not found"; for
// a listing, an empty children slice is a valid end-of-results signal.
// Callers distinguish the two with the query kind, never by guessing.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// HasKey reports whether a raw data payload contains the given top-level
// key. Used as the not-found probe for single-entity responses.
func (v *Validator) HasKey(data json.RawMessage, key string) bool {
	if len(data) == 0 {
		return false
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	_, ok := probe[key]
	return ok
}

// ValidateSubredditName checks a subreddit name against Reddit's naming rules.
func (v *Validator) ValidateSubredditName(name string) error {
	if name == "" {
		return &pkgerrs.ConfigError{Field: "subreddit", Message: "subreddit name cannot be empty"}
	}
	if len(name) < minSubredditLength {
		return &pkgerrs.ConfigError{Field: "subreddit", Message: fmt.Sprintf("subreddit name must be at least %d characters", minSubredditLength)}
	}
	if len(name) > maxSubredditLength {
		return &pkgerrs.ConfigError{Field: "subreddit", Message: fmt.Sprintf("subreddit name cannot exceed %d characters", maxSubredditLength)}
	}
	if name[0] == '_' || name[len(name)-1] == '_' {
		return &pkgerrs.ConfigError{Field: "subreddit", Message: "subreddit name cannot start or end with underscore"}
	}
	for i, ch := range name {
		if !isWordChar(ch) {
			return &pkgerrs.ConfigError{Field: "subreddit", Message: fmt.Sprintf("subreddit name contains invalid character '%c' at position %d", ch, i)}
		}
	}
	return nil
}

// ValidateUsername checks a Reddit username.
func (v *Validator) ValidateUsername(name string) error {
	if name == "" {
		return &pkgerrs.ConfigError{Field: "username", Message: "username cannot be empty"}
	}
	if len(name) > maxUsernameLength {
		return &pkgerrs.ConfigError{Field: "username", Message: fmt.Sprintf("username cannot exceed %d characters", maxUsernameLength)}
	}
	for i, ch := range name {
		if !isWordChar(ch) && ch != '-' {
			return &pkgerrs.ConfigError{Field: "username", Message: fmt.Sprintf("username contains invalid character '%c' at position %d", ch, i)}
		}
	}
	return nil
}

// ValidateLimit rejects negative item limits. Zero is valid and
// short-circuits a bulk fetch to an empty result.
func (v *Validator) ValidateLimit(limit int) error {
	if limit < 0 {
		return &pkgerrs.ConfigError{Field: "limit", Message: "limit cannot be negative"}
	}
	return nil
}

// ValidateUserAgent validates the client-identifier header to prevent
// header injection.
func (v *Validator) ValidateUserAgent(ua string) error {
	if len(ua) == 0 {
		return &pkgerrs.ConfigError{Field: "UserAgent", Message: "user agent cannot be empty"}
	}
	if strings.ContainsAny(ua, "\r\n") {
		return &pkgerrs.ConfigError{Field: "UserAgent", Message: "user agent cannot contain newline characters"}
	}
	if len(ua) > maxUserAgentLength {
		return &pkgerrs.ConfigError{Field: "UserAgent", Message: fmt.Sprintf("user agent too long (max %d characters)", maxUserAgentLength)}
	}
	return nil
}

func isWordChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_'
}
