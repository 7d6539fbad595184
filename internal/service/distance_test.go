package service

import "testing"

func TestResolveRadius(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "explicit km beats proximity bucket",
			input:    "Tìm PT gần tôi trong vòng 3km",
			expected: 3,
		},
		{
			name:     "explicit km clamped to minimum",
			input:    "gym trong 0km",
			expected: 1,
		},
		{
			name:     "explicit km clamped to maximum",
			input:    "gym trong 200km",
			expected: 50,
		},
		{
			name:     "walking distance bucket",
			input:    "gym đi bộ được",
			expected: 2,
		},
		{
			name:     "near bucket",
			input:    "Tìm gym gần tôi",
			expected: 5,
		},
		{
			name:     "area bucket",
			input:    "gym trong khu vực",
			expected: 10,
		},
		{
			name:     "nationwide bucket",
			input:    "gym toàn quốc",
			expected: 50,
		},
		{
			name:     "bicycle transport cue",
			input:    "gym đi xe đạp tới được",
			expected: 8,
		},
		{
			name:     "travel time cue",
			input:    "gym cách 15 phút",
			expected: 8,
		},
		{
			name:     "numbered district place cue",
			input:    "gym quận 3 thế nào",
			expected: 8,
		},
		{
			name:     "short prompt fallback",
			input:    "tìm gym",
			expected: 8,
		},
		{
			name:     "medium prompt fallback",
			input:    "cho tôi danh sách gym đi",
			expected: 10,
		},
		{
			name:     "long prompt fallback",
			input:    "tôi muốn biết có những phòng tập nào phù hợp với tôi",
			expected: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRadius(tt.input); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
