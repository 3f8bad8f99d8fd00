package proximity

import (
	"fmt"

	"github.com/akozadaev/rawgle/internal/models"
)

func rating(v float64) *float64 { return &v }

func supplier(id, name string, lat, lon float64) models.Supplier {
	return models.Supplier{
		ID:       id,
		Name:     name,
		City:     "Cardiff",
		State:    "Wales",
		Country:  "UK",
		Location: models.GeoPoint{Lat: lat, Lon: lon},
		Species:  models.SpeciesBoth,
	}
}

// gridSuppliers возвращает n поставщиков вокруг Кардиффа на расстоянии до ~5 км.
func gridSuppliers(n int) []models.Supplier {
	out := make([]models.Supplier, 0, n)
	for i := 0; i < n; i++ {
		s := supplier(fmt.Sprintf("sup-%03d", i), fmt.Sprintf("Raw Bowl %03d", i),
			51.48+float64(i%5)*0.01, -3.18+float64(i/5)*0.01)
		s.Rating = rating(float64(i%6) * 0.9)
		out = append(out, s)
	}
	return out
}
