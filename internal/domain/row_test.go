package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestRowGetters(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	row := Row{
		"name":     []byte("California Gym"),
		"hot":      true,
		"hot_int":  int64(1),
		"exp":      int64(5),
		"height":   175.5,
		"created":  now,
		"missing2": nil,
	}

	if got := row.String("name"); got != "California Gym" {
		t.Errorf("String: expected California Gym, got %q", got)
	}
	if got := row.String("absent"); got != "" {
		t.Errorf("String on absent key: expected empty, got %q", got)
	}
	if !row.Bool("hot") || !row.Bool("hot_int") {
		t.Error("Bool: expected true for native and integer forms")
	}
	if got := row.IntPtr("exp"); got == nil || *got != 5 {
		t.Errorf("IntPtr: expected 5, got %v", got)
	}
	if got := row.IntPtr("absent"); got != nil {
		t.Errorf("IntPtr on absent key: expected nil, got %v", got)
	}
	if got := row.FloatPtr("height"); got == nil || *got != 175.5 {
		t.Errorf("FloatPtr: expected 175.5, got %v", got)
	}
	if got := row.Time("created"); got != "2025-06-01T12:00:00Z" {
		t.Errorf("Time: expected RFC3339, got %q", got)
	}
}

func TestRowRoundedFloatPtr(t *testing.T) {
	row := Row{"distance_km": 2.34567}
	got := row.RoundedFloatPtr("distance_km")
	if got == nil || *got != 2.35 {
		t.Errorf("expected 2.35, got %v", got)
	}
	if row.RoundedFloatPtr("absent") != nil {
		t.Error("expected nil for absent key")
	}
}

func TestRowStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected []string
	}{
		{"postgres array literal", `{Giảm cân,"Tăng cơ"}`, []string{"Giảm cân", "Tăng cơ"}},
		{"postgres empty array", "{}", nil},
		{"array with null entry", "{Yoga,NULL}", []string{"Yoga"}},
		{"json array", `["a","b"]`, []string{"a", "b"}},
		{"native slice", []string{"x"}, []string{"x"}},
		{"interface slice", []interface{}{"x", "", "y"}, []string{"x", "y"}},
		{"null", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Row{"v": tt.value}
			if got := row.StringSlice("v"); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTrainerFromRow(t *testing.T) {
	row := Row{
		"id":             "pt-1",
		"full_name":      "Nguyễn Văn A",
		"is_male":        true,
		"experience":     int64(4),
		"goal_trainings": "{Giảm cân,Tăng cơ}",
		"pt_type":        "freelance",
		"distance_km":    1.23456,
	}

	tr := TrainerFromRow(row)
	if tr.ID != "pt-1" || tr.FullName != "Nguyễn Văn A" {
		t.Errorf("unexpected identity fields: %+v", tr)
	}
	if !tr.IsFreelance() {
		t.Error("expected freelance classification")
	}
	if tr.Experience == nil || *tr.Experience != 4 {
		t.Errorf("expected experience 4, got %v", tr.Experience)
	}
	if len(tr.GoalTrainings) != 2 {
		t.Errorf("expected 2 goals, got %v", tr.GoalTrainings)
	}
	if tr.DistanceKm == nil || *tr.DistanceKm != 1.23 {
		t.Errorf("expected rounded distance 1.23, got %v", tr.DistanceKm)
	}

	// Anything other than the freelance marker is a gym trainer.
	row["pt_type"] = "gym"
	if TrainerFromRow(row).IsFreelance() {
		t.Error("expected gym classification")
	}
}

func TestGymFromRow(t *testing.T) {
	row := Row{
		"id":           "gym-1",
		"gym_name":     "California Gym",
		"address":      "12, Nguyễn Huệ, Quận 1, TP.HCM",
		"hot_research": int64(1),
		"latitude":     10.77,
		"distance_km":  nil,
	}

	g := GymFromRow(row)
	if g.GymName != "California Gym" {
		t.Errorf("unexpected name %q", g.GymName)
	}
	if !g.HotResearch {
		t.Error("expected hot flag from integer form")
	}
	if g.Latitude == nil || *g.Latitude != 10.77 {
		t.Errorf("expected latitude, got %v", g.Latitude)
	}
	if g.DistanceKm != nil {
		t.Errorf("expected nil distance, got %v", g.DistanceKm)
	}
}
