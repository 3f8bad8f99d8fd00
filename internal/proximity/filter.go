package proximity

import (
	"strings"

	"github.com/akozadaev/rawgle/internal/models"
)

// Candidate - поставщик, прошедший фильтры, вместе с расстоянием до центра поиска.
type Candidate struct {
	Supplier    models.Supplier
	DistanceKM  float64
	hasDistance bool
}

// FilterNearby оставляет поставщиков в радиусе запроса, удовлетворяющих всем фильтрам.
// Географический фильтр применяется первым.
func FilterNearby(suppliers []models.Supplier, q *models.ProximityQuery) []Candidate {
	radius := float64(q.RadiusKM)
	text := strings.ToLower(q.Text)

	candidates := make([]Candidate, 0)
	for i := range suppliers {
		distance := DistanceKM(q.Center, suppliers[i].Location)
		if distance > radius {
			continue
		}
		if !matches(&suppliers[i], &q.Criteria, text) {
			continue
		}
		candidates = append(candidates, Candidate{
			Supplier:    suppliers[i],
			DistanceKM:  distance,
			hasDistance: true,
		})
	}
	return candidates
}

// FilterText оставляет поставщиков, удовлетворяющих атрибутным и текстовому фильтрам.
func FilterText(suppliers []models.Supplier, q *models.TextQuery) []Candidate {
	text := strings.ToLower(q.Text)

	candidates := make([]Candidate, 0)
	for i := range suppliers {
		if matches(&suppliers[i], &q.Criteria, text) {
			candidates = append(candidates, Candidate{Supplier: suppliers[i]})
		}
	}
	return candidates
}

// matches объединяет активные фильтры через логическое И.
// text передается уже в нижнем регистре.
func matches(s *models.Supplier, c *models.Criteria, text string) bool {
	if c.Species != nil && s.Species != *c.Species && s.Species != models.SpeciesBoth {
		return false
	}
	if c.Delivery != nil && s.DeliveryAvailable != *c.Delivery {
		return false
	}
	if c.Pickup != nil && s.PickupAvailable != *c.Pickup {
		return false
	}
	if c.MinRating != nil && s.RatingOrZero() < *c.MinRating {
		return false
	}
	if text != "" && !containsText(s, text) {
		return false
	}
	return true
}

func containsText(s *models.Supplier, text string) bool {
	for _, field := range []string{s.Name, s.City, s.State, s.Description} {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}
