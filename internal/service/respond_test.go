package service

import (
	"strings"
	"testing"

	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km       float64
		expected string
	}{
		{0.3, "300m"},
		{0.8, "0.8km (đi bộ được)"},
		{2.5, "2.5km (gần)"},
		{4.2, "4.2km (xe đạp/xe máy)"},
		{7.0, "7.0km (ô tô/xe máy)"},
		{15.5, "15.5km (xa)"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.km); got != tt.expected {
			t.Errorf("FormatDistance(%v): expected %q, got %q", tt.km, tt.expected, got)
		}
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestTrainerReply(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := TrainerReply(nil); got != msgNoTrainers {
			t.Errorf("expected fixed message, got %q", got)
		}
	})

	t.Run("single trainer gets detail card", func(t *testing.T) {
		got := TrainerReply([]domain.Trainer{{
			FullName:   "Nguyễn Văn A",
			Email:      "a@example.com",
			PTType:     domain.PTTypeGym,
			GymName:    "California Gym",
			GymAddress: "Quận 1, TP.HCM",
			Experience: intPtr(5),
		}})
		for _, want := range []string{
			"Thông tin huấn luyện viên: Nguyễn Văn A",
			"Email: a@example.com",
			"Phòng gym: **California Gym**",
			"Kinh nghiệm: 5 năm",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("expected reply to contain %q:\n%s", want, got)
			}
		}
	})

	t.Run("single freelance trainer", func(t *testing.T) {
		got := TrainerReply([]domain.Trainer{{
			FullName: "Trần B",
			PTType:   domain.PTTypeFreelance,
		}})
		if !strings.Contains(got, "Huấn luyện viên tự do") {
			t.Errorf("expected freelance badge:\n%s", got)
		}
		if !strings.Contains(got, "Linh hoạt theo yêu cầu") {
			t.Errorf("expected flexible location line:\n%s", got)
		}
	})

	t.Run("multiple trainers get breakdown header", func(t *testing.T) {
		got := TrainerReply([]domain.Trainer{
			{FullName: "A", PTType: domain.PTTypeGym, GymName: "Gym X", DistanceKm: floatPtr(1.2)},
			{FullName: "B", PTType: domain.PTTypeFreelance},
		})
		if !strings.Contains(got, "Tìm thấy 2 huấn luyện viên") {
			t.Errorf("expected count header:\n%s", got)
		}
		if !strings.Contains(got, "(1 PT gym, 1 PT tự do)") {
			t.Errorf("expected population breakdown:\n%s", got)
		}
		if !strings.Contains(got, "Làm việc tại Gym X") {
			t.Errorf("expected gym line:\n%s", got)
		}
		if !strings.Contains(got, "PT tự do") {
			t.Errorf("expected freelance badge:\n%s", got)
		}
	})

	t.Run("specialties capped at three", func(t *testing.T) {
		got := TrainerReply([]domain.Trainer{
			{FullName: "A", GoalTrainings: []string{"g1", "g2", "g3", "g4"}},
			{FullName: "B"},
		})
		if strings.Contains(got, "g4") {
			t.Errorf("expected at most 3 specialties listed:\n%s", got)
		}
	})
}

func TestGymReply(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := GymReply(nil)
		if !strings.Contains(got, "Không tìm thấy gym nào") {
			t.Errorf("expected no-result message, got %q", got)
		}
	})

	t.Run("single gym", func(t *testing.T) {
		got := GymReply([]domain.Gym{{
			GymName:     "California Gym",
			Address:     "Quận 1",
			HotResearch: true,
			DistanceKm:  floatPtr(0.4),
		}})
		for _, want := range []string{"**California Gym**", "400m", "Địa chỉ: Quận 1", "rất được yêu thích"} {
			if !strings.Contains(got, want) {
				t.Errorf("expected reply to contain %q:\n%s", want, got)
			}
		}
	})

	t.Run("short list", func(t *testing.T) {
		got := GymReply([]domain.Gym{
			{GymName: "A", HotResearch: true},
			{GymName: "B"},
		})
		if !strings.Contains(got, "Tìm thấy 2 phòng gym") {
			t.Errorf("expected count header:\n%s", got)
		}
		if !strings.Contains(got, "A (Hot)") {
			t.Errorf("expected hot marker:\n%s", got)
		}
	})

	t.Run("long list groups popular gyms first", func(t *testing.T) {
		got := GymReply([]domain.Gym{
			{GymName: "A"},
			{GymName: "B", HotResearch: true},
			{GymName: "C"},
			{GymName: "D"},
		})
		if !strings.Contains(got, "Các phòng gym phổ biến") {
			t.Errorf("expected popular group:\n%s", got)
		}
		if !strings.Contains(got, "Các phòng gym khác") {
			t.Errorf("expected other group:\n%s", got)
		}
		if strings.Index(got, "**B**") > strings.Index(got, "**A**") {
			t.Errorf("expected hot gym listed first:\n%s", got)
		}
	})
}

func TestMsgNoGymsWithin(t *testing.T) {
	got := msgNoGymsWithin(5)
	if !strings.Contains(got, "bán kính 5km") {
		t.Errorf("expected radius in message, got %q", got)
	}
}
