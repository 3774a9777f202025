// Package chat holds the transient conversational state of the assistant
// surface: append-only transcripts kept in memory per session, never persisted.
package chat

import (
	"strings"
	"time"
)

// Role identifies who authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a transcript.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsError   bool      `json:"is_error"`
}

// FallbackText is the fixed assistant turn appended when the remote function
// cannot be reached or returns an unusable payload.
const FallbackText = "Sorry, I couldn't reach the assistant right now. Please try again in a moment."

// errorMarkers are substrings the legacy remote function embeds in otherwise
// successful responses to signal a semantic failure. Kept as a compatibility
// shim until every deployment returns the structured status field.
var errorMarkers = []string{
	"quota has been exceeded",
	"technical difficulties",
}

// ReplyIsError decides whether an assistant reply should render as an error.
// A structured status wins; the substring check covers deployments that
// predate it.
func ReplyIsError(status, text string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "error":
		return true
	case "ok":
		return false
	}

	lower := strings.ToLower(text)
	for _, marker := range errorMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// NewUserTurn builds a user turn stamped with the current time.
func NewUserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content, Timestamp: time.Now()}
}

// NewAssistantTurn builds an assistant turn stamped with the current time.
func NewAssistantTurn(content string, isError bool) Turn {
	return Turn{Role: RoleAssistant, Content: content, Timestamp: time.Now(), IsError: isError}
}
