package service

import (
	"strings"
	"testing"

	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "diacritics folded",
			input:    "Tìm phòng gym gần đây",
			expected: "tim phong gym gan day",
		},
		{
			name:     "dong character",
			input:    "quận Đống Đa",
			expected: "quan dong da",
		},
		{
			name:     "punctuation becomes whitespace",
			input:    "gym, fitness; center!",
			expected: "gym fitness center",
		},
		{
			name:     "whitespace collapsed",
			input:    "  tìm   PT   ",
			expected: "tim pt",
		},
		{
			name:     "digits preserved",
			input:    "quận 7",
			expected: "quan 7",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}

			// Normalizing twice must be a no-op.
			if again := Normalize(got); again != got {
				t.Errorf("not idempotent: %q became %q", got, again)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		stop     map[string]struct{}
		limit    int
		expected []string
	}{
		{
			name:     "stop words and short tokens dropped",
			input:    "Tìm phòng gym California ở quận 7",
			stop:     gymStopWords,
			limit:    5,
			expected: []string{"california"},
		},
		{
			name:     "limit caps output",
			input:    "alpha bravo charlie delta",
			stop:     map[string]struct{}{},
			limit:    2,
			expected: []string{"alpha", "bravo"},
		},
		{
			name:     "nothing left",
			input:    "tìm gym",
			stop:     gymStopWords,
			limit:    5,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.input, tt.stop, tt.limit)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("keyword %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"control characters stripped", "gym\x00near\x1fme", "gymnearme"},
		{"delete character stripped", "gym\x7fhot", "gymhot"},
		{"newlines and tabs kept", "line1\n\tline2\r\n", "line1\n\tline2\r\n"},
		{"clean text untouched", "Tìm gym quận 7", "Tìm gym quận 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildConversationContext(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		if got := BuildConversationContext(nil); got != "" {
			t.Errorf("expected empty context, got %q", got)
		}
	})

	t.Run("roles labeled", func(t *testing.T) {
		history := []domain.ConversationTurn{
			{Role: domain.RoleUser, Content: "Tìm gym quận 7"},
			{Role: domain.RoleAssistant, Content: "Tìm thấy 3 phòng gym"},
		}
		got := BuildConversationContext(history)
		if !strings.Contains(got, "Người dùng: Tìm gym quận 7") {
			t.Errorf("missing user label in %q", got)
		}
		if !strings.Contains(got, "FitBridge: Tìm thấy 3 phòng gym") {
			t.Errorf("missing assistant label in %q", got)
		}
	})

	t.Run("window keeps last ten turns", func(t *testing.T) {
		var history []domain.ConversationTurn
		for i := 0; i < 15; i++ {
			history = append(history, domain.NewTurn(domain.RoleUser, "turn"))
		}
		got := BuildConversationContext(history)
		if n := strings.Count(got, "\n") + 1; n != 10 {
			t.Errorf("expected 10 lines, got %d", n)
		}
	})
}
