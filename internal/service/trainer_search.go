package service

import (
	"fmt"
	"strings"

	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
)

// gymAddressExpr composes the display address from the gym owner's
// enabled address row. Empty components are skipped; a gym with no
// address at all gets the fixed placeholder.
const gymAddressExpr = `COALESCE(
        CONCAT_WS(', ',
            NULLIF(a."HouseNumber", ''),
            NULLIF(a."Street", ''),
            NULLIF(a."Ward", ''),
            NULLIF(a."District", ''),
            NULLIF(a."City", '')
        ),
        'Địa chỉ chưa cập nhật'
    )`

// TrainerFilters is the structured output of trainer-intent
// classification, built fresh per request.
type TrainerFilters struct {
	Gender     *bool
	Goals      []string
	Keywords   []string
	Mode       PTTypeMode
	Experience *ExperienceRequirement
}

// ExtractTrainerFilters derives all trainer search filters from the
// raw input.
func ExtractTrainerFilters(input string) TrainerFilters {
	f := TrainerFilters{
		Gender:   DetectGender(input),
		Goals:    MatchGoals(input),
		Keywords: ExtractKeywords(input, trainerStopWords, 3),
		Mode:     ResolvePTTypeMode(input),
	}
	if req, ok := ExtractExperience(input); ok {
		f.Experience = &req
	}
	return f
}

// ComposeTrainerQuery classifies the input and, when trainer intent is
// present, returns the trainer retrieval query. Proximity cues plus
// coordinates route to the geo query over both trainer populations;
// otherwise a non-geo ranked query is produced. Returns nil when the
// input is not a trainer search.
func ComposeTrainerQuery(input string, point *domain.GeoPoint) *Query {
	if !DetectTrainerIntent(input) {
		return nil
	}

	filters := ExtractTrainerFilters(input)
	if point != nil && HasProximityCue(input, trainerNearCues) {
		return buildNearbyTrainerQuery(filters, *point, ResolveRadius(input))
	}
	return buildTrainerQuery(filters)
}

// buildTrainerQuery composes the non-geo trainer query: filters feed a
// DISTINCT pre-selection, the projection aggregates specialties per
// trainer, ranking is popularity, experience, then name, capped at 10.
func buildTrainerQuery(f TrainerFilters) *Query {
	b := newBinder()
	base := trainerBaseCTEs(b, f)

	sql := fmt.Sprintf(`WITH %s
SELECT
    t.*,
    CASE WHEN t.is_freelance THEN 'freelance' ELSE 'gym' END AS pt_type,
    gym."Id" AS gym_id,
    gym."GymName" AS gym_name,
    %s AS gym_address,
    CAST(gym."Latitude" AS DOUBLE PRECISION) AS gym_latitude,
    CAST(gym."Longitude" AS DOUBLE PRECISION) AS gym_longitude,
    COALESCE(gym."hotResearch", false) AS gym_hot
FROM TrainersWithGoals t
LEFT JOIN "AspNetUsers" gym ON t.gym_owner_id = gym."Id" AND gym."AccountStatus" = 'Active'
LEFT JOIN "Addresses" a ON gym."Id" = a."CustomerId" AND a."IsEnabled" = true
ORDER BY
    COALESCE(gym."hotResearch", false) DESC,
    t.experience DESC NULLS LAST,
    t.full_name ASC
LIMIT 10`, base, gymAddressExpr)

	return &Query{SQL: sql, Args: b.args}
}

// buildNearbyTrainerQuery composes the geo trainer query. Affiliated
// trainers are measured from their gym's location, freelance trainers
// from their own; a freelance trainer without coordinates is treated as
// in range everywhere with a NULL distance. In mixed mode the two arms
// are ranked independently and interleaved gym-first.
func buildNearbyTrainerQuery(f TrainerFilters, point domain.GeoPoint, radiusKm int) *Query {
	b := newBinder()
	base := trainerBaseCTEs(b, f)

	latRange, lngRange := boundingBox(point.Latitude, float64(radiusKm))
	latBind := b.bind(point.Latitude)
	lngBind := b.bind(point.Longitude)
	latLo := b.bind(point.Latitude - latRange)
	latHi := b.bind(point.Latitude + latRange)
	lngLo := b.bind(point.Longitude - lngRange)
	lngHi := b.bind(point.Longitude + lngRange)
	radiusBind := b.bind(float64(radiusKm))

	gymDistance := haversineExpr(latBind, lngBind,
		`CAST(gym."Latitude" AS DOUBLE PRECISION)`,
		`CAST(gym."Longitude" AS DOUBLE PRECISION)`)
	ptDistance := haversineExpr(latBind, lngBind, "t.pt_latitude", "t.pt_longitude")

	gymArmFilter := ""
	if f.Mode == PTTypeMixed {
		gymArmFilter = "\n    AND NOT t.is_freelance"
	}

	nearbyGyms := fmt.Sprintf(`NearbyGyms AS (
    SELECT
        gym."Id" AS gym_id,
        gym."GymName" AS gym_name,
        %s AS gym_address,
        CAST(gym."Latitude" AS DOUBLE PRECISION) AS gym_latitude,
        CAST(gym."Longitude" AS DOUBLE PRECISION) AS gym_longitude,
        gym."hotResearch" AS gym_hot,
        %s AS distance_km
    FROM "AspNetUsers" gym
    LEFT JOIN "Addresses" a ON gym."Id" = a."CustomerId" AND a."IsEnabled" = true
    WHERE gym."AccountStatus" = 'Active'
        AND gym."GymName" IS NOT NULL
        AND gym."GymName" != ''
        AND gym."Latitude" IS NOT NULL
        AND gym."Longitude" IS NOT NULL
        AND CAST(gym."Latitude" AS DOUBLE PRECISION) BETWEEN %s AND %s
        AND CAST(gym."Longitude" AS DOUBLE PRECISION) BETWEEN %s AND %s
)`, gymAddressExpr, gymDistance, latLo, latHi, lngLo, lngHi)

	gymArm := fmt.Sprintf(`GymArm AS (
    SELECT
        t.*,
        CASE WHEN t.is_freelance THEN 'freelance' ELSE 'gym' END AS pt_type,
        g.gym_id,
        g.gym_name,
        g.gym_address,
        g.gym_latitude,
        g.gym_longitude,
        g.gym_hot,
        g.distance_km,
        ROW_NUMBER() OVER (
            ORDER BY g.distance_km ASC, g.gym_hot DESC, t.experience DESC NULLS LAST, t.full_name ASC
        ) AS arm_rank
    FROM TrainersWithGoals t
    INNER JOIN NearbyGyms g ON t.gym_owner_id = g.gym_id
    WHERE g.distance_km <= %s%s
)`, radiusBind, gymArmFilter)

	freelanceArm := fmt.Sprintf(`FreelanceBase AS (
    SELECT
        t.*,
        'freelance' AS pt_type,
        NULL AS gym_id,
        NULL AS gym_name,
        NULL AS gym_address,
        NULL AS gym_latitude,
        NULL AS gym_longitude,
        false AS gym_hot,
        CASE
            WHEN t.pt_latitude IS NULL OR t.pt_longitude IS NULL THEN NULL
            ELSE %s
        END AS distance_km
    FROM TrainersWithGoals t
    WHERE t.is_freelance
),
FreelanceArm AS (
    SELECT
        f.*,
        ROW_NUMBER() OVER (
            ORDER BY f.distance_km ASC NULLS LAST, f.experience DESC NULLS LAST, f.full_name ASC
        ) AS arm_rank
    FROM FreelanceBase f
    WHERE f.distance_km IS NULL OR f.distance_km <= %s
)`, ptDistance, radiusBind)

	var sql string
	switch f.Mode {
	case PTTypeGymOnly:
		sql = fmt.Sprintf(`WITH %s,
%s,
%s
SELECT * FROM GymArm
ORDER BY arm_rank ASC
LIMIT 10`, base, nearbyGyms, gymArm)
	case PTTypeFreelanceOnly:
		sql = fmt.Sprintf(`WITH %s,
%s
SELECT * FROM FreelanceArm
ORDER BY arm_rank ASC
LIMIT 10`, base, freelanceArm)
	default:
		sql = fmt.Sprintf(`WITH %s,
%s,
%s,
%s
SELECT * FROM (
    SELECT * FROM GymArm
    UNION ALL
    SELECT * FROM FreelanceArm
) merged
ORDER BY arm_rank ASC, CASE WHEN pt_type = 'gym' THEN 0 ELSE 1 END ASC
LIMIT 10`, base, nearbyGyms, gymArm, freelanceArm)
	}

	return &Query{SQL: sql, Args: b.args}
}

// trainerBaseCTEs builds the FilteredPTs and TrainersWithGoals CTE
// text shared by the geo and non-geo queries, binding every
// user-derived value.
func trainerBaseCTEs(b *binder, f TrainerFilters) string {
	freelanceExists := `EXISTS (
        SELECT 1 FROM "PTFreelancePackages" fp
        WHERE fp."PtId" = pt."Id" AND fp."IsEnabled" = true
    )`

	conds := []string{`pt."AccountStatus" = 'Active'`}
	switch f.Mode {
	case PTTypeGymOnly:
		conds = append(conds, `pt."GymOwnerId" IS NOT NULL`)
	case PTTypeFreelanceOnly:
		conds = append(conds, freelanceExists)
	default:
		conds = append(conds, fmt.Sprintf(`(pt."GymOwnerId" IS NOT NULL OR %s)`, freelanceExists))
	}

	if f.Gender != nil {
		conds = append(conds, fmt.Sprintf(`pt."IsMale" = %s`, b.bind(*f.Gender)))
	}

	if f.Experience != nil {
		if op, ok := experienceOperatorSQL(f.Experience.Operator); ok {
			conds = append(conds, fmt.Sprintf(`ud."Experience" %s %s`, op, b.bind(f.Experience.Years)))
		}
	}

	if len(f.Goals) > 0 {
		binds := make([]string, len(f.Goals))
		for i, goal := range f.Goals {
			binds[i] = b.bind(goal)
		}
		conds = append(conds, fmt.Sprintf(`gt."Name" IN (%s)`, strings.Join(binds, ", ")))
	}

	var nameConds []string
	for _, kw := range f.Keywords {
		if len(kw) < 3 {
			continue
		}
		nameConds = append(nameConds, fmt.Sprintf(`pt."FullName" ILIKE %s`, b.bind("%"+kw+"%")))
	}
	if len(nameConds) > 0 {
		conds = append(conds, "("+strings.Join(nameConds, " OR ")+")")
	}

	return fmt.Sprintf(`FilteredPTs AS (
    SELECT DISTINCT pt."Id" AS pt_id
    FROM "AspNetUsers" pt
    LEFT JOIN "UserDetails" ud ON pt."Id" = ud."Id"
    LEFT JOIN "PTGoalTrainings" pgt ON pt."Id" = pgt."ApplicationUsersId"
    LEFT JOIN "GoalTrainings" gt ON pgt."GoalTrainingsId" = gt."Id" AND gt."IsEnabled" = true
    WHERE %s
),
TrainersWithGoals AS (
    SELECT
        pt."Id" AS id,
        pt."FullName" AS full_name,
        pt."Email" AS email,
        pt."PhoneNumber" AS phone_number,
        pt."IsMale" AS is_male,
        pt."Dob" AS dob,
        pt."AvatarUrl" AS avatar_url,
        pt."AccountStatus" AS account_status,
        pt."CreatedAt" AS created_at,
        pt."UpdatedAt" AS updated_at,
        pt."GymOwnerId" AS gym_owner_id,
        CAST(pt."Latitude" AS DOUBLE PRECISION) AS pt_latitude,
        CAST(pt."Longitude" AS DOUBLE PRECISION) AS pt_longitude,
        ud."Experience" AS experience,
        ud."Certificates" AS certificates,
        ud."Bio" AS bio,
        ud."Height" AS height,
        ud."Weight" AS weight,
        ud."Biceps" AS biceps,
        ud."Chest" AS chest,
        ud."Waist" AS waist,
        ARRAY_AGG(DISTINCT gt."Name") FILTER (WHERE gt."Name" IS NOT NULL) AS goal_trainings,
        EXISTS (
            SELECT 1 FROM "PTFreelancePackages" fp
            WHERE fp."PtId" = pt."Id" AND fp."IsEnabled" = true
        ) AS is_freelance
    FROM "AspNetUsers" pt
    INNER JOIN FilteredPTs f ON pt."Id" = f.pt_id
    LEFT JOIN "UserDetails" ud ON pt."Id" = ud."Id"
    LEFT JOIN "PTGoalTrainings" pgt ON pt."Id" = pgt."ApplicationUsersId"
    LEFT JOIN "GoalTrainings" gt ON pgt."GoalTrainingsId" = gt."Id" AND gt."IsEnabled" = true
    GROUP BY pt."Id", ud."Experience", ud."Certificates", ud."Bio", ud."Height",
             ud."Weight", ud."Biceps", ud."Chest", ud."Waist"
)`, strings.Join(conds, "\n        AND "))
}

// experienceOperatorSQL whitelists the comparison operator before it is
// spliced into query text. The threshold itself is always bound.
func experienceOperatorSQL(op string) (string, bool) {
	switch op {
	case ">=", ">", "<", "=":
		return op, true
	default:
		return "", false
	}
}
