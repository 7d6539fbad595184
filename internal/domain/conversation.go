package domain

import "time"

// Conversation roles as they appear in the history envelope.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one prior exchange in the rolling history the
// client sends with each request.
type ConversationTurn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NewTurn builds a turn stamped with the current time.
func NewTurn(role, content string) ConversationTurn {
	return ConversationTurn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// LastTurns returns up to n most recent turns, oldest first.
func LastTurns(history []ConversationTurn, n int) []ConversationTurn {
	if n <= 0 || len(history) == 0 {
		return nil
	}
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
