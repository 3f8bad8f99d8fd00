package proximity

import (
	"testing"

	"github.com/akozadaev/rawgle/internal/models"
)

func ids(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Supplier.ID
	}
	return out
}

func boolPtr(v bool) *bool { return &v }

func speciesPtr(s models.Species) *models.Species { return &s }

func nearbyQuery(radius int) *models.ProximityQuery {
	return &models.ProximityQuery{
		Center:   models.GeoPoint{Lat: 51.48, Lon: -3.18},
		RadiusKM: radius,
		Sort:     models.SortByName,
		Page:     1,
		Limit:    DefaultLimit,
	}
}

func TestFilterNearbyRadius(t *testing.T) {
	suppliers := []models.Supplier{
		supplier("here", "Cardiff Raw", 51.48, -3.18),
		// ~200 км к востоку
		supplier("far", "Far Raw", 51.48, -0.30),
	}

	got := FilterNearby(suppliers, nearbyQuery(10))
	if len(got) != 1 || got[0].Supplier.ID != "here" {
		t.Fatalf("got %v, want [here]", ids(got))
	}
	if got[0].DistanceKM != 0 {
		t.Errorf("distance = %v, want 0", got[0].DistanceKM)
	}
}

func TestFilterNearbyRadiusMonotonic(t *testing.T) {
	suppliers := make([]models.Supplier, 0, 50)
	for i := 0; i < 50; i++ {
		suppliers = append(suppliers, supplier(string(rune('a'+i%26))+string(rune('a'+i/26)), "s", 51.48+float64(i)*0.05, -3.18))
	}

	prev := map[string]bool{}
	for _, radius := range []int{1, 5, 10, 50, 100, 250, 500} {
		current := map[string]bool{}
		for _, c := range FilterNearby(suppliers, nearbyQuery(radius)) {
			current[c.Supplier.ID] = true
		}
		for id := range prev {
			if !current[id] {
				t.Errorf("supplier %s in radius set but missing at radius %d", id, radius)
			}
		}
		prev = current
	}
	if len(prev) != len(suppliers) {
		t.Errorf("radius 500 should contain all %d suppliers, got %d", len(suppliers), len(prev))
	}
}

func TestFilterNearbySpecies(t *testing.T) {
	both := supplier("both", "Both", 51.48, -3.18)
	cats := supplier("cats", "Cats", 51.48, -3.18)
	cats.Species = models.SpeciesCats
	dogs := supplier("dogs", "Dogs", 51.48, -3.18)
	dogs.Species = models.SpeciesDogs

	q := nearbyQuery(10)
	q.Species = speciesPtr(models.SpeciesDogs)

	got := ids(FilterNearby([]models.Supplier{both, cats, dogs}, q))
	if len(got) != 2 || got[0] != "both" || got[1] != "dogs" {
		t.Errorf("got %v, want [both dogs]", got)
	}
}

func TestFilterNearbyDeliveryPickup(t *testing.T) {
	a := supplier("a", "A", 51.48, -3.18)
	a.DeliveryAvailable = true
	b := supplier("b", "B", 51.48, -3.18)
	b.PickupAvailable = true

	q := nearbyQuery(10)
	q.Delivery = boolPtr(true)
	if got := ids(FilterNearby([]models.Supplier{a, b}, q)); len(got) != 1 || got[0] != "a" {
		t.Errorf("delivery=true: got %v", got)
	}

	q = nearbyQuery(10)
	q.Delivery = boolPtr(false)
	q.Pickup = boolPtr(true)
	if got := ids(FilterNearby([]models.Supplier{a, b}, q)); len(got) != 1 || got[0] != "b" {
		t.Errorf("delivery=false pickup=true: got %v", got)
	}
}

func TestFilterNearbyMinRating(t *testing.T) {
	five := supplier("five", "Five", 51.48, -3.18)
	five.Rating = rating(5.0)
	four := supplier("four", "Four", 51.48, -3.18)
	four.Rating = rating(4.0)
	unrated := supplier("unrated", "Unrated", 51.48, -3.18)

	q := nearbyQuery(10)
	q.MinRating = rating(4.5)
	got := ids(FilterNearby([]models.Supplier{five, four, unrated}, q))
	if len(got) != 1 || got[0] != "five" {
		t.Errorf("got %v, want [five]", got)
	}

	q.MinRating = rating(0)
	if got := FilterNearby([]models.Supplier{five, four, unrated}, q); len(got) != 3 {
		t.Errorf("minRating=0 should keep unrated suppliers, got %v", ids(got))
	}
}

func TestFilterText(t *testing.T) {
	a := supplier("a", "Happy Hounds Butchery", 51.48, -3.18)
	b := supplier("b", "Feline Feast", 40.0, -74.0)
	b.City, b.State = "Newark", "New Jersey"
	c := supplier("c", "Farm Shop", 10, 10)
	c.City, c.State = "Leeds", "Yorkshire"
	c.Description = "Grass-fed RAW tripe"

	tests := []struct {
		text string
		want []string
	}{
		{"hounds", []string{"a"}},
		{"JERSEY", []string{"b"}},
		{"raw tripe", []string{"c"}},
		{"cardiff", []string{"a"}},
		{"e", []string{"a", "b", "c"}},
		{"nothing matches", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ids(FilterText([]models.Supplier{a, b, c}, &models.TextQuery{Criteria: models.Criteria{Text: tt.text}}))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
