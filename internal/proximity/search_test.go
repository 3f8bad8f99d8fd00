package proximity

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/akozadaev/rawgle/internal/models"
)

func TestNearbyScenario(t *testing.T) {
	suppliers := []models.Supplier{
		supplier("here", "Cardiff Raw", 51.48, -3.18),
		supplier("far", "Far Raw", 51.48, -0.30),
	}
	q, err := ParseProximityQuery(url.Values{"lat": {"51.48"}, "lng": {"-3.18"}, "radius": {"10"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp := Nearby(suppliers, q)
	if resp.Total != 1 || resp.Count != 1 || resp.HasMore {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Results[0].ID != "here" || resp.Results[0].Distance == nil || *resp.Results[0].Distance != 0 {
		t.Errorf("unexpected result: %+v", resp.Results[0])
	}
	if resp.Center == nil || resp.Center.Lat != 51.48 || resp.Center.Lng != -3.18 || resp.Radius != 10 {
		t.Errorf("center/radius not echoed: %+v %d", resp.Center, resp.Radius)
	}
}

func TestNearbyPagination(t *testing.T) {
	suppliers := gridSuppliers(25)

	pages := []struct {
		page    string
		count   int
		first   string
		hasMore bool
	}{
		{"2", 10, "sup-010", true},
		{"3", 5, "sup-020", false},
		{"4", 0, "", false},
	}
	for _, p := range pages {
		q, err := ParseProximityQuery(url.Values{"lat": {"51.48"}, "lng": {"-3.18"}, "page": {p.page}, "limit": {"10"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp := Nearby(suppliers, q)
		if resp.Total != 25 || resp.Count != p.count || resp.HasMore != p.hasMore {
			t.Errorf("page %s: total=%d count=%d hasMore=%v", p.page, resp.Total, resp.Count, resp.HasMore)
		}
		if p.count > 0 && resp.Results[0].ID != p.first {
			t.Errorf("page %s: first = %s, want %s", p.page, resp.Results[0].ID, p.first)
		}
		if resp.Results == nil {
			t.Errorf("page %s: results must be an empty array, not null", p.page)
		}
	}
}

func TestNearbyDeterministic(t *testing.T) {
	suppliers := gridSuppliers(60)
	q, err := ParseProximityQuery(url.Values{"lat": {"51.5"}, "lng": {"-3.16"}, "sort": {"distance"}, "limit": {"15"}, "page": {"2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _ := json.Marshal(Nearby(suppliers, q))
	for i := 0; i < 5; i++ {
		again, _ := json.Marshal(Nearby(suppliers, q))
		if string(again) != string(first) {
			t.Fatalf("response changed between runs")
		}
	}
}

func TestText(t *testing.T) {
	suppliers := gridSuppliers(30)
	q, err := ParseTextQuery(url.Values{"q": {"raw bowl 01"}, "sort": {"rating"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp := Text(suppliers, q)
	if resp.Total != 10 || resp.Center != nil {
		t.Fatalf("unexpected response: total=%d center=%v", resp.Total, resp.Center)
	}
	for _, r := range resp.Results {
		if r.Distance != nil {
			t.Errorf("text results must not carry distance: %+v", r)
		}
	}
	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i-1].RatingOrZero() < resp.Results[i].RatingOrZero() {
			t.Errorf("results not sorted by rating desc at %d", i)
		}
	}
}
