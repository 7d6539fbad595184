package service

import "testing"

func TestComposeRecoversFromPanic(t *testing.T) {
	q := compose(func() *Query {
		panic("composer bug")
	})
	if q != nil {
		t.Errorf("expected nil query after panic, got %+v", q)
	}
}

func TestPlanKey(t *testing.T) {
	lat, lng := 10.7769, 106.7009

	withCoords := planKey(ChatRequest{Prompt: "Tìm PT gần tôi", Latitude: &lat, Longitude: &lng})
	withoutCoords := planKey(ChatRequest{Prompt: "Tìm PT gần tôi"})

	if withCoords == withoutCoords {
		t.Error("expected coordinate presence to change the cache key")
	}

	same := planKey(ChatRequest{Prompt: "Tìm PT gần tôi", Latitude: &lat, Longitude: &lng})
	if withCoords != same {
		t.Error("expected identical requests to share a cache key")
	}
}

func TestQueryArgs(t *testing.T) {
	if got := queryArgs(&Query{SQL: "SELECT 1"}); got != nil {
		t.Errorf("expected nil for query without binds, got %v", got)
	}

	q := &Query{SQL: "SELECT @p0", Args: map[string]interface{}{"p0": 1}}
	got := queryArgs(q)
	if len(got) != 1 {
		t.Fatalf("expected the args map as a single vararg, got %v", got)
	}
}
