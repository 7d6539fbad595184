package service

import (
	"strconv"
	"strings"
)

const (
	minRadiusKm     = 1
	maxRadiusKm     = 50
	defaultRadiusKm = 10
)

// ResolveRadius turns free-text distance phrasing into a search radius
// in kilometers. Priority order: explicit "N km" (clamped to [1, 50]),
// categorical buckets, transport cues, travel-time cues, place-scale
// cues, then a word-count fallback. The first matching rule wins.
func ResolveRadius(input string) int {
	lower := strings.ToLower(input)

	if m := explicitKmPattern.FindStringSubmatch(lower); m != nil {
		km, err := strconv.Atoi(m[1])
		if err == nil {
			if km < minRadiusKm {
				return minRadiusKm
			}
			if km > maxRadiusKm {
				return maxRadiusKm
			}
			return km
		}
	}

	for _, bucket := range radiusBuckets {
		for _, p := range bucket.patterns {
			if p.MatchString(lower) {
				return bucket.km
			}
		}
	}

	for _, cue := range transportCues {
		if cue.pattern.MatchString(lower) {
			return cue.km
		}
	}

	for _, cue := range travelTimeCues {
		if cue.pattern.MatchString(lower) {
			return cue.km
		}
	}

	for _, cue := range placeScaleCues {
		if cue.pattern.MatchString(lower) {
			return cue.km
		}
	}

	// Short prompts imply a tight search; long ones usually carry more
	// qualifiers and tolerate a wider net.
	switch words := len(strings.Fields(lower)); {
	case words <= 3:
		return 8
	case words <= 6:
		return 10
	default:
		return 12
	}
}
