package service

import (
	"sort"
	"strings"
)

// PTTypeMode selects which trainer population a query targets.
type PTTypeMode int

const (
	PTTypeMixed PTTypeMode = iota
	PTTypeGymOnly
	PTTypeFreelanceOnly
)

// DetectTrainerIntent reports whether the input asks for a personal
// trainer: explicit PT vocabulary, or personal-training context
// combined with a concrete fitness goal.
func DetectTrainerIntent(input string) bool {
	lower := strings.ToLower(input)

	for _, p := range trainerKeywordPatterns {
		if p.MatchString(lower) {
			return true
		}
	}

	hasContext := false
	for _, p := range trainingContextPatterns {
		if p.MatchString(lower) {
			hasContext = true
			break
		}
	}
	if !hasContext {
		return false
	}
	return containsAny(lower, specificGoalCues)
}

// ResolvePTTypeMode derives the trainer population from explicit
// freelance or at-a-gym cues. Default is mixed.
func ResolvePTTypeMode(input string) PTTypeMode {
	lower := strings.ToLower(input)
	if containsAny(lower, freelanceCues) {
		return PTTypeFreelanceOnly
	}
	if containsAny(lower, gymOnlyCues) {
		return PTTypeGymOnly
	}
	return PTTypeMixed
}

// DetectGender returns the IsMale filter value, or nil when the input
// carries no gender cue. The female cue is checked first: "female"
// contains "male", and the filters are exclusive.
func DetectGender(input string) *bool {
	lower := strings.ToLower(input)
	normalized := Normalize(input)

	female := false
	male := true
	if strings.Contains(lower, "nữ") || strings.Contains(lower, "female") ||
		strings.Contains(normalized, "nu") {
		return &female
	}
	if strings.Contains(lower, "nam") || strings.Contains(lower, "male") {
		return &male
	}
	return nil
}

// MatchGoals collects every canonical specialty tag whose synonym list
// matches the input. A miss means no goal filter, not an error.
func MatchGoals(input string) []string {
	lower := strings.ToLower(input)
	var goals []string
	for tag, synonyms := range goalMapping {
		if containsAny(lower, synonyms) {
			goals = append(goals, tag)
		}
	}
	sort.Strings(goals)
	return goals
}

// HasProximityCue reports whether the input contains one of the given
// "near me" cues. Callers pair this with a coordinates check.
func HasProximityCue(input string, cues []string) bool {
	return containsAny(strings.ToLower(input), cues)
}

// isNonGymInput is the negative gate: greetings, thanks, personal
// questions and generic advice never reach query construction.
func isNonGymInput(lower string) bool {
	return containsAny(lower, nonGymIndicators)
}

// hasGymSearchIntent is the positive gate over the fixed gym-search
// pattern set.
func hasGymSearchIntent(lower string) bool {
	for _, p := range gymSearchPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
