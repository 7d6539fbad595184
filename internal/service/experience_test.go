package service

import "testing"

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		found    bool
		operator string
		years    int
	}{
		{
			name:     "at least phrasing",
			input:    "PT có ít nhất 3 năm kinh nghiệm",
			found:    true,
			operator: ">=",
			years:    3,
		},
		{
			name:     "more than phrasing",
			input:    "trainer with more than 5 years",
			found:    true,
			operator: ">",
			years:    5,
		},
		{
			name:     "under phrasing",
			input:    "PT dưới 2 năm kinh nghiệm",
			found:    true,
			operator: "<",
			years:    2,
		},
		{
			name:     "bare years of experience",
			input:    "PT 5 năm kinh nghiệm",
			found:    true,
			operator: "=",
			years:    5,
		},
		{
			name:     "diacritic-free phrasing",
			input:    "pt it nhat 4 nam kinh nghiem",
			found:    true,
			operator: ">=",
			years:    4,
		},
		{
			name:  "bare years without experience suffix",
			input: "PT 5 năm",
			found: false,
		},
		{
			name:  "no experience phrasing",
			input: "Tìm PT nữ",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, ok := ExtractExperience(tt.input)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if !tt.found {
				return
			}
			if req.Operator != tt.operator {
				t.Errorf("expected operator %q, got %q", tt.operator, req.Operator)
			}
			if req.Years != tt.years {
				t.Errorf("expected years %d, got %d", tt.years, req.Years)
			}
		})
	}
}

func TestExperienceOperatorSQL(t *testing.T) {
	for _, op := range []string{">=", ">", "<", "="} {
		if got, ok := experienceOperatorSQL(op); !ok || got != op {
			t.Errorf("expected %q to pass the whitelist", op)
		}
	}
	for _, op := range []string{"", ";", "OR 1=1", "<="} {
		if _, ok := experienceOperatorSQL(op); ok {
			t.Errorf("expected %q to be rejected", op)
		}
	}
}
