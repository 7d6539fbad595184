package service

import (
	"fmt"
	"strings"

	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
)

// Normalize lowercases the input, folds Vietnamese diacritics to base
// Latin letters, replaces anything outside [a-z0-9] with whitespace and
// collapses runs of whitespace. Running it on already-normalized text
// is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if mapped, ok := vietnameseCharMap[r]; ok {
			r = mapped
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// ExtractKeywords tokenizes normalized input, drops stop words and
// short tokens, and caps the result to bound query fan-out.
func ExtractKeywords(input string, stopWords map[string]struct{}, limit int) []string {
	words := strings.Fields(Normalize(input))
	var keywords []string
	for _, w := range words {
		if len(w) < 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == limit {
			break
		}
	}
	return keywords
}

// Sanitize strips control characters that break JSON serialization of
// replies and stored history turns.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == 0x7f {
			return -1
		}
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, text)
}

// BuildConversationContext renders the most recent turns as labeled
// lines for the completion prompt.
func BuildConversationContext(history []domain.ConversationTurn) string {
	turns := domain.LastTurns(history, 10)
	if len(turns) == 0 {
		return ""
	}
	parts := make([]string, 0, len(turns))
	for _, turn := range turns {
		label := "FitBridge"
		if turn.Role == domain.RoleUser {
			label = "Người dùng"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", label, Sanitize(turn.Content)))
	}
	return strings.Join(parts, "\n")
}
