package service

import (
	"strconv"
	"strings"
)

// ExperienceRequirement is a parsed experience threshold. Operator is
// one of ">=", ">", "<", "=". The "=" form comes from bare "N years of
// experience" phrasing and is applied literally.
type ExperienceRequirement struct {
	Operator string
	Years    int
}

// ExtractExperience parses experience phrasing from the input. It
// checks both the raw lowercase text and its diacritic-folded form so
// "5 năm kinh nghiệm" and "5 nam kinh nghiem" behave the same. Only the
// first matching family is honored.
func ExtractExperience(input string) (ExperienceRequirement, bool) {
	lower := strings.ToLower(input)
	normalized := Normalize(input)

	for _, family := range experienceFamilies {
		m := family.pattern.FindStringSubmatch(lower)
		if m == nil {
			m = family.pattern.FindStringSubmatch(normalized)
		}
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return ExperienceRequirement{Operator: family.op, Years: years}, true
	}
	return ExperienceRequirement{}, false
}
