// Package storage содержит источники справочника поставщиков: PostgreSQL, Elasticsearch/OpenSearch,
// SQLite и JSON-файл.
package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/akozadaev/rawgle/internal/models"
)

// ErrSupplierNotFound возвращается, когда поставщик с заданным идентификатором отсутствует.
var ErrSupplierNotFound = errors.New("supplier not found")

// ErrResultTooLarge возвращается, когда источник не может отдать выборку целиком.
var ErrResultTooLarge = errors.New("supplier result set too large")

// SupplierSource - источник справочника поставщиков.
type SupplierSource interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*models.Supplier, error)
}

// NearbySource умеет заранее сузить выборку до окрестности точки.
// Результат может содержать лишних поставщиков, но не должен терять попадающих в радиус.
type NearbySource interface {
	ListSuppliersNear(ctx context.Context, center models.GeoPoint, radiusKM int) ([]models.Supplier, error)
}

// RegionLister возвращает регионы присутствия поставщиков.
type RegionLister interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
}

// validSuppliers отбрасывает записи с нарушенными инвариантами.
func validSuppliers(logger *slog.Logger, source string, suppliers []models.Supplier) []models.Supplier {
	valid := suppliers[:0]
	for i := range suppliers {
		if err := suppliers[i].Validate(); err != nil {
			logger.Warn("skipping invalid supplier record", "source", source, "error", err)
			continue
		}
		valid = append(valid, suppliers[i])
	}
	return valid
}
