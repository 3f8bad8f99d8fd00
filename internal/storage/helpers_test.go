package storage

import (
	"io"
	"log/slog"
	"time"

	"github.com/akozadaev/rawgle/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ratingPtr(v float64) *float64 { return &v }

func sampleSuppliers() []models.Supplier {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Supplier{
		{
			ID:                "sup-1",
			Name:              "Cardiff Raw Co",
			Address:           "1 Queen St",
			City:              "Cardiff",
			State:             "Wales",
			Country:           "UK",
			Location:          models.GeoPoint{Lat: 51.48, Lon: -3.18},
			Phone:             "+44 29 0000 0000",
			Rating:            ratingPtr(4.5),
			RatingCount:       12,
			Species:           models.SpeciesBoth,
			DeliveryAvailable: true,
			Description:       "Raw tripe and chicken necks",
			UpdatedAt:         updated,
		},
		{
			ID:              "sup-2",
			Name:            "Bristol Barf",
			City:            "Bristol",
			State:           "England",
			Country:         "UK",
			Location:        models.GeoPoint{Lat: 51.45, Lon: -2.58},
			Species:         models.SpeciesDogs,
			PickupAvailable: true,
			UpdatedAt:       updated,
		},
	}
}
