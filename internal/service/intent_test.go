package service

import (
	"reflect"
	"testing"
)

func TestDetectTrainerIntent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"pt abbreviation", "Tìm PT nữ", true},
		{"full vietnamese term", "Tìm huấn luyện viên giỏi", true},
		{"english term", "I need a personal trainer", true},
		{"context plus goal", "Tôi muốn tập riêng để giảm cân", true},
		{"context without goal", "Tôi muốn tập riêng", false},
		{"goal without context", "Tôi muốn giảm cân", false},
		{"greeting", "Xin chào", false},
		{"gym search", "Tìm gym quận 7", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTrainerIntent(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDetectGender(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{"female vietnamese", "Tìm PT nữ", boolPtr(false)},
		{"female english", "female trainer please", boolPtr(false)},
		{"male vietnamese", "Tìm PT nam", boolPtr(true)},
		{"female wins over embedded male", "Tìm PT nữ hay nam cũng được", boolPtr(false)},
		{"no cue", "Tìm PT giỏi", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectGender(tt.input)
			if (got == nil) != (tt.expected == nil) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			if got != nil && *got != *tt.expected {
				t.Errorf("expected IsMale=%v, got %v", *tt.expected, *got)
			}
		})
	}
}

func TestResolvePTTypeMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected PTTypeMode
	}{
		{"freelance cue", "Tìm PT tự do", PTTypeFreelanceOnly},
		{"gym cue", "Tìm PT tại phòng gym", PTTypeGymOnly},
		{"freelance wins over gym cue", "PT tự do hay pt gym", PTTypeFreelanceOnly},
		{"no cue defaults to mixed", "Tìm PT nữ", PTTypeMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePTTypeMode(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMatchGoals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single goal", "PT chuyên giảm cân", []string{"Giảm cân"}},
		{"multiple goals sorted", "giảm cân và tăng cơ", []string{"Giảm cân", "Tăng cơ"}},
		{"english synonym", "help me build muscle", []string{"Tăng cơ"}},
		{"no goal", "Tìm PT giỏi", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchGoals(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHasProximityCue(t *testing.T) {
	if !HasProximityCue("Tìm gym gần đây", gymNearCues) {
		t.Error("expected gym proximity cue to match")
	}
	if HasProximityCue("Tìm gym gần đây", trainerNearCues) != true {
		t.Error("expected shared cue to match trainer list too")
	}
	if HasProximityCue("Tìm gym quận 7", gymNearCues) {
		t.Error("expected no proximity cue")
	}
}
