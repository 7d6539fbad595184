package service

import (
	"strings"
	"testing"

	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
)

func TestExtractGymSearchInfo(t *testing.T) {
	t.Run("numbered district", func(t *testing.T) {
		info := extractGymSearchInfo("Tìm gym ở quận 7")
		if !info.districtSpecific {
			t.Fatal("expected district-specific search")
		}
		if info.districtNumber != "7" {
			t.Errorf("expected district number 7, got %q", info.districtNumber)
		}
		if info.location != "quận 7" {
			t.Errorf("expected location %q, got %q", "quận 7", info.location)
		}
	})

	t.Run("named district", func(t *testing.T) {
		info := extractGymSearchInfo("Tìm gym quận Hải Châu")
		if !info.districtSpecific {
			t.Fatal("expected district-specific search")
		}
		if info.districtNumber != "" {
			t.Errorf("expected no district number, got %q", info.districtNumber)
		}
		if info.districtName != "hải" {
			t.Errorf("expected district name %q, got %q", "hải", info.districtName)
		}
	})

	t.Run("popularity cue", func(t *testing.T) {
		info := extractGymSearchInfo("Gym nào hot nhất")
		if !info.hot {
			t.Error("expected hot filter")
		}
	})

	t.Run("keywords survive normalization", func(t *testing.T) {
		info := extractGymSearchInfo("Tìm phòng gym California")
		if len(info.keywords) != 1 || info.keywords[0] != "california" {
			t.Errorf("expected [california], got %v", info.keywords)
		}
	})
}

func TestComposeGymQuery(t *testing.T) {
	t.Run("greeting yields no query", func(t *testing.T) {
		if q := ComposeGymQuery("Xin chào"); q != nil {
			t.Errorf("expected nil, got %q", q.SQL)
		}
	})

	t.Run("advice question yields no query", func(t *testing.T) {
		if q := ComposeGymQuery("Làm sao để giảm cân?"); q != nil {
			t.Errorf("expected nil, got %q", q.SQL)
		}
	})

	t.Run("numbered district search", func(t *testing.T) {
		q := ComposeGymQuery("Tìm gym ở quận 7")
		if q == nil {
			t.Fatal("expected a query")
		}
		if !strings.Contains(q.SQL, `a."District" ILIKE`) {
			t.Error("expected district column condition")
		}
		hasVi, hasEn := false, false
		for _, v := range q.Args {
			switch v {
			case "%quận 7%":
				hasVi = true
			case "%district 7%":
				hasEn = true
			}
		}
		if !hasVi || !hasEn {
			t.Errorf("expected both district patterns bound, got %v", q.Args)
		}
	})

	t.Run("district suppresses keyword widening", func(t *testing.T) {
		q := ComposeGymQuery("Tìm gym California ở quận 7")
		if q == nil {
			t.Fatal("expected a query")
		}
		// Two district patterns plus the relevance pattern, nothing else.
		if len(q.Args) != 3 {
			t.Errorf("expected 3 binds, got %d: %v", len(q.Args), q.Args)
		}
	})

	t.Run("hot filter", func(t *testing.T) {
		q := ComposeGymQuery("gym nào hot")
		if q == nil {
			t.Fatal("expected a query")
		}
		if !strings.Contains(q.SQL, `u."hotResearch" = true`) {
			t.Error("expected hot filter condition")
		}
	})

	t.Run("bare listing falls back to all gyms", func(t *testing.T) {
		q := ComposeGymQuery("gym nào")
		if q == nil {
			t.Fatal("expected the all-gyms query")
		}
		if len(q.Args) != 0 {
			t.Errorf("expected no binds, got %v", q.Args)
		}
		if !strings.Contains(q.SQL, "ORDER BY hot_score DESC, gym_name ASC") {
			t.Error("expected popularity-first ordering")
		}
	})
}

func TestComposeGymQueryWithContext(t *testing.T) {
	t.Run("excludes gyms already shown", func(t *testing.T) {
		history := "Người dùng: Tìm gym\nFitBridge: Đã tìm thấy California Gym ở quận 1"
		q := ComposeGymQueryWithContext("Còn gym nào khác không?", history)
		if q == nil {
			t.Fatal("expected a query")
		}
		if !strings.Contains(q.SQL, "NOT ILIKE") {
			t.Error("expected exclusion condition")
		}
		found := false
		for _, v := range q.Args {
			if v == "%california%" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected excluded name bind, got %v", q.Args)
		}
	})

	t.Run("non gym vocabulary goes to conversation", func(t *testing.T) {
		if q := ComposeGymQueryWithContext("Kể chuyện cười đi", ""); q != nil {
			t.Errorf("expected nil, got %q", q.SQL)
		}
	})

	t.Run("plain search unaffected by empty context", func(t *testing.T) {
		q := ComposeGymQueryWithContext("Tìm gym ở quận 7", "")
		if q == nil {
			t.Fatal("expected a query")
		}
		if strings.Contains(q.SQL, "NOT ILIKE") {
			t.Error("expected no exclusion conditions")
		}
	})
}

func TestComposeNearbyGymQuery(t *testing.T) {
	q := ComposeNearbyGymQuery(domain.GeoPoint{Latitude: 10.7769, Longitude: 106.7009}, 5)

	for _, want := range []string{
		"BoundedGyms", "DistanceCalculated",
		"distance_km <= @p6",
		"ORDER BY distance_km ASC, hot_research DESC, gym_name ASC",
	} {
		if !strings.Contains(q.SQL, want) {
			t.Errorf("expected SQL to contain %q", want)
		}
	}

	if len(q.Args) != 7 {
		t.Fatalf("expected 7 binds, got %d: %v", len(q.Args), q.Args)
	}
	if q.Args["p0"] != 10.7769 {
		t.Errorf("expected latitude bind, got %v", q.Args["p0"])
	}
	if q.Args["p6"] != float64(5) {
		t.Errorf("expected radius bind, got %v", q.Args["p6"])
	}
}
