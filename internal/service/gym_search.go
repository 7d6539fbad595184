package service

import (
	"fmt"
	"strings"

	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
)

// gymProjection is the shared column list for gym queries, aliased to
// the lowercase keys the record normalization expects.
const gymProjection = `u."Id" AS id,
        u."GymName" AS gym_name,
        u."FullName" AS owner_name,
        ` + gymAddressExpr + ` AS address,
        CAST(u."Latitude" AS DOUBLE PRECISION) AS latitude,
        CAST(u."Longitude" AS DOUBLE PRECISION) AS longitude,
        u."hotResearch" AS hot_research,
        u."Email" AS email,
        u."PhoneNumber" AS phone_number,
        u."AvatarUrl" AS avatar_url,
        u."CreatedAt" AS created_at`

// gymSearchInfo is the structured outcome of gym input analysis.
type gymSearchInfo struct {
	keywords         []string
	location         string
	districtNumber   string
	districtName     string
	hot              bool
	districtSpecific bool
}

// extractGymSearchInfo pulls keywords, popularity cues and a location
// token out of the input. Numbered districts ("quận 7") and named
// districts ("quận Hải Châu") are kept apart because they generate
// different address conditions.
func extractGymSearchInfo(input string) gymSearchInfo {
	lower := strings.ToLower(input)
	info := gymSearchInfo{
		keywords: ExtractKeywords(input, gymStopWords, 5),
	}

	for _, p := range hotCuePatterns {
		if p.MatchString(lower) {
			info.hot = true
			break
		}
	}

	for i, pattern := range locationPatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if i == 0 {
			part := strings.TrimSpace(m[2])
			if districtNumberPattern.MatchString(part) {
				info.districtNumber = part
				info.location = "quận " + part
				info.districtSpecific = true
			} else if cleaned := strings.TrimSpace(districtNameTrailerPattern.ReplaceAllString(part, "")); cleaned != "" {
				info.districtName = cleaned
				info.location = "quận " + cleaned
				info.districtSpecific = true
			}
		} else {
			info.location = strings.TrimSpace(m[0])
		}
		break
	}

	return info
}

// ComposeNearbyGymQuery builds the proximity gym query: bounding-box
// pre-filter, haversine distance, cutoff at the radius, ordered by
// distance, popularity, then name.
func ComposeNearbyGymQuery(point domain.GeoPoint, radiusKm int) *Query {
	b := newBinder()

	latRange, lngRange := boundingBox(point.Latitude, float64(radiusKm))
	latBind := b.bind(point.Latitude)
	lngBind := b.bind(point.Longitude)
	latLo := b.bind(point.Latitude - latRange)
	latHi := b.bind(point.Latitude + latRange)
	lngLo := b.bind(point.Longitude - lngRange)
	lngHi := b.bind(point.Longitude + lngRange)
	radiusBind := b.bind(float64(radiusKm))

	distance := haversineExpr(latBind, lngBind, "latitude", "longitude")

	sql := fmt.Sprintf(`WITH BoundedGyms AS (
    SELECT
        %s
    FROM "AspNetUsers" u
    LEFT JOIN "Addresses" a ON u."Id" = a."CustomerId" AND a."IsEnabled" = true
    WHERE u."AccountStatus" = 'Active'
        AND u."GymName" IS NOT NULL
        AND u."GymName" != ''
        AND u."Latitude" IS NOT NULL
        AND u."Longitude" IS NOT NULL
        AND CAST(u."Latitude" AS DOUBLE PRECISION) BETWEEN %s AND %s
        AND CAST(u."Longitude" AS DOUBLE PRECISION) BETWEEN %s AND %s
),
DistanceCalculated AS (
    SELECT *,
        %s AS distance_km
    FROM BoundedGyms
)
SELECT *
FROM DistanceCalculated
WHERE distance_km <= %s
ORDER BY distance_km ASC, hot_research DESC, gym_name ASC`,
		gymProjection, latLo, latHi, lngLo, lngHi, distance, radiusBind)

	return &Query{SQL: sql, Args: b.args}
}

// ComposeGymQuery runs the two-stage gate and, when the input is a
// real gym search, returns the scored keyword/location query. Listing
// phrasings that carry no other signal fall back to the unfiltered
// all-gyms query. Returns nil when no database query is warranted.
func ComposeGymQuery(input string) *Query {
	lower := strings.ToLower(input)

	if isNonGymInput(lower) {
		return nil
	}

	if hasGymSearchIntent(lower) {
		if q := buildGymQuery(extractGymSearchInfo(input), nil); q != nil {
			return q
		}
	}

	if containsAny(lower, specialGymListCases) {
		return buildAllGymsQuery()
	}

	return nil
}

// ComposeGymQueryWithContext wraps ComposeGymQuery with one extra rule:
// when the history already names gyms and the user asks for "other"
// options, those names are excluded from the new query. Name parsing is
// best-effort; on any miss it falls through to plain classification.
func ComposeGymQueryWithContext(input, conversationContext string) *Query {
	lower := strings.ToLower(input)

	if isNonGymInput(lower) {
		return nil
	}
	if !containsAny(lower, gymContextKeywords) {
		return nil
	}

	if conversationContext != "" && containsAny(lower, somethingElseCues) {
		var excluded []string
		for _, m := range contextGymNamePattern.FindAllStringSubmatch(strings.ToLower(conversationContext), -1) {
			if fields := strings.Fields(m[1]); len(fields) > 0 {
				excluded = append(excluded, fields[0])
			}
		}
		if len(excluded) > 0 && hasGymSearchIntent(lower) {
			if q := buildGymQuery(extractGymSearchInfo(input), excluded); q != nil {
				return q
			}
		}
	}

	return ComposeGymQuery(input)
}

// buildGymQuery assembles the scored gym query. The district condition
// is mandatory (AND) when present and suppresses general keyword
// OR-matching so a district search never widens back out. Returns nil
// for inputs with no keyword, no district, and no popularity cue.
func buildGymQuery(info gymSearchInfo, excludedNames []string) *Query {
	b := newBinder()

	baseConds := []string{
		`u."AccountStatus" = 'Active'`,
		`u."GymName" IS NOT NULL`,
		`u."GymName" != ''`,
	}
	if info.hot {
		baseConds = append(baseConds, `u."hotResearch" = true`)
	}
	for _, name := range excludedNames {
		baseConds = append(baseConds, fmt.Sprintf(`u."GymName" NOT ILIKE %s`, b.bind("%"+name+"%")))
	}

	var searchConds []string
	if !info.districtSpecific {
		for _, kw := range info.keywords {
			pattern := b.bind("%" + kw + "%")
			searchConds = append(searchConds,
				fmt.Sprintf(`u."GymName" ILIKE %s`, pattern),
				fmt.Sprintf(`%s ILIKE %s`, gymAddressExpr, pattern),
				fmt.Sprintf(`u."FullName" ILIKE %s`, pattern),
			)
		}
		if info.location != "" {
			pattern := b.bind("%" + info.location + "%")
			searchConds = append(searchConds,
				fmt.Sprintf(`%s ILIKE %s`, gymAddressExpr, pattern),
				fmt.Sprintf(`u."GymName" ILIKE %s`, pattern),
			)
		}
	} else {
		var districtConds []string
		if info.districtNumber != "" {
			vi := b.bind("%quận " + info.districtNumber + "%")
			en := b.bind("%district " + info.districtNumber + "%")
			districtConds = []string{
				fmt.Sprintf(`%s ILIKE %s`, gymAddressExpr, vi),
				fmt.Sprintf(`%s ILIKE %s`, gymAddressExpr, en),
				fmt.Sprintf(`a."District" ILIKE %s`, vi),
				fmt.Sprintf(`a."District" ILIKE %s`, en),
			}
		} else {
			vi := b.bind("%quận " + info.districtName + "%")
			en := b.bind("%district " + info.districtName + "%")
			bare := b.bind("%" + info.districtName + "%")
			exact := b.bind("Quận " + info.districtName)
			districtConds = []string{
				fmt.Sprintf(`%s ILIKE %s`, gymAddressExpr, vi),
				fmt.Sprintf(`%s ILIKE %s`, gymAddressExpr, en),
				fmt.Sprintf(`a."District" ILIKE %s`, vi),
				fmt.Sprintf(`a."District" ILIKE %s`, bare),
				fmt.Sprintf(`a."District" = %s`, exact),
			}
		}
		baseConds = append(baseConds, "("+strings.Join(districtConds, " OR ")+")")
	}

	whereClause := strings.Join(baseConds, "\n        AND ")
	if len(searchConds) > 0 {
		whereClause += "\n        AND (" + strings.Join(searchConds, "\n            OR ") + ")"
	} else if !info.hot && !info.districtSpecific {
		// Nothing to search on; ambiguous input defaults to conversation.
		return nil
	}

	relevance := "10 AS relevance_score"
	if len(info.keywords) > 0 || info.districtSpecific {
		primary := "gym"
		if len(info.keywords) > 0 {
			primary = info.keywords[0]
		}
		pattern := b.bind("%" + primary + "%")
		relevance = fmt.Sprintf(`CASE
            WHEN u."GymName" ILIKE %[1]s THEN 30
            WHEN %[2]s ILIKE %[1]s THEN 25
            WHEN u."FullName" ILIKE %[1]s THEN 15
            ELSE 5
        END AS relevance_score`, pattern, gymAddressExpr)
	}

	sql := fmt.Sprintf(`SELECT
        %s,
        CASE WHEN u."hotResearch" = true THEN 20 ELSE 0 END AS hot_score,
        %s,
        CASE
            WHEN u."CreatedAt" >= (CURRENT_DATE - INTERVAL '1 year') THEN 5
            ELSE 0
        END AS recency_score
    FROM "AspNetUsers" u
    LEFT JOIN "Addresses" a ON u."Id" = a."CustomerId" AND a."IsEnabled" = true
    WHERE %s
    ORDER BY hot_score DESC, relevance_score DESC, recency_score DESC, gym_name ASC`,
		gymProjection, relevance, whereClause)

	return &Query{SQL: sql, Args: b.args}
}

// buildAllGymsQuery is the unfiltered listing: every active gym,
// popular ones first.
func buildAllGymsQuery() *Query {
	sql := fmt.Sprintf(`SELECT
        %s,
        CASE WHEN u."hotResearch" = true THEN 20 ELSE 0 END AS hot_score,
        10 AS relevance_score
    FROM "AspNetUsers" u
    LEFT JOIN "Addresses" a ON u."Id" = a."CustomerId" AND a."IsEnabled" = true
    WHERE u."AccountStatus" = 'Active'
        AND u."GymName" IS NOT NULL
        AND u."GymName" != ''
    ORDER BY hot_score DESC, gym_name ASC`, gymProjection)

	return &Query{SQL: sql}
}
