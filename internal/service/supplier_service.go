// Package service связывает проверку запросов, источник справочника, кэш и поиск поставщиков.
package service

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/akozadaev/rawgle/internal/cache"
	"github.com/akozadaev/rawgle/internal/models"
	"github.com/akozadaev/rawgle/internal/proximity"
	"github.com/akozadaev/rawgle/internal/storage"
)

// ErrUpstreamUnavailable означает, что справочник поставщиков не удалось получить из источника.
var ErrUpstreamUnavailable = errors.New("supplier directory unavailable")

// SupplierService выполняет поиск поставщиков поверх источника справочника.
// Кэш необязателен: его отсутствие влияет только на задержку, но не на результат.
type SupplierService struct {
	source storage.SupplierSource
	cache  cache.Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewSupplierService создает сервис. cacheStore может быть nil.
func NewSupplierService(source storage.SupplierSource, cacheStore cache.Store, ttl time.Duration, logger *slog.Logger) *SupplierService {
	return &SupplierService{source: source, cache: cacheStore, ttl: ttl, logger: logger}
}

// Nearby ищет поставщиков в радиусе от точки. Параметры проверяются до любого обращения к источнику.
func (s *SupplierService) Nearby(ctx context.Context, values url.Values) (*models.SearchResponse, error) {
	q, err := proximity.ParseProximityQuery(values)
	if err != nil {
		return nil, err
	}

	key := nearbyKey(q)
	if resp, ok := s.cached(ctx, key); ok {
		return resp, nil
	}

	var suppliers []models.Supplier
	if near, ok := s.source.(storage.NearbySource); ok {
		suppliers, err = near.ListSuppliersNear(ctx, q.Center, q.RadiusKM)
	} else {
		suppliers, err = s.source.ListSuppliers(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	resp := proximity.Nearby(suppliers, q)
	s.store(ctx, key, resp)
	return resp, nil
}

// Search выполняет полнотекстовый поиск без географического фильтра.
func (s *SupplierService) Search(ctx context.Context, values url.Values) (*models.SearchResponse, error) {
	q, err := proximity.ParseTextQuery(values)
	if err != nil {
		return nil, err
	}

	key := textKey(q)
	if resp, ok := s.cached(ctx, key); ok {
		return resp, nil
	}

	suppliers, err := s.source.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	resp := proximity.Text(suppliers, q)
	s.store(ctx, key, resp)
	return resp, nil
}

// GetSupplier возвращает поставщика по идентификатору.
func (s *SupplierService) GetSupplier(ctx context.Context, id string) (*models.Supplier, error) {
	supplier, err := s.source.GetSupplier(ctx, id)
	if errors.Is(err, storage.ErrSupplierNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return supplier, nil
}

// Regions возвращает регионы присутствия поставщиков, упорядоченные по стране и региону.
func (s *SupplierService) Regions(ctx context.Context) ([]models.Region, error) {
	if lister, ok := s.source.(storage.RegionLister); ok {
		regions, err := lister.ListRegions(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		return regions, nil
	}

	suppliers, err := s.source.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	counts := make(map[[2]string]int)
	for i := range suppliers {
		counts[[2]string{suppliers[i].Country, suppliers[i].State}]++
	}

	regions := make([]models.Region, 0, len(counts))
	for k, n := range counts {
		regions = append(regions, models.Region{Country: k[0], State: k[1], Suppliers: n})
	}
	slices.SortFunc(regions, func(a, b models.Region) int {
		if c := cmp.Compare(a.Country, b.Country); c != 0 {
			return c
		}
		return cmp.Compare(a.State, b.State)
	})
	return regions, nil
}

func (s *SupplierService) cached(ctx context.Context, key string) (*models.SearchResponse, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt cache entry", "key", key, "error", err)
		return nil, false
	}
	return &resp, true
}

func (s *SupplierService) store(ctx context.Context, key string, resp *models.SearchResponse) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode response for cache", "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

// nearbyKey строит канонический ключ кэша из проверенного запроса,
// поэтому эквивалентные наборы параметров попадают в одну запись.
func nearbyKey(q *models.ProximityQuery) string {
	v := criteriaValues(&q.Criteria)
	v.Set("lat", strconv.FormatFloat(q.Center.Lat, 'f', -1, 64))
	v.Set("lng", strconv.FormatFloat(q.Center.Lon, 'f', -1, 64))
	v.Set("radius", strconv.Itoa(q.RadiusKM))
	v.Set("sort", string(q.Sort))
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	return "suppliers:nearby:" + v.Encode()
}

func textKey(q *models.TextQuery) string {
	v := criteriaValues(&q.Criteria)
	v.Set("sort", string(q.Sort))
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	return "suppliers:search:" + v.Encode()
}

func criteriaValues(c *models.Criteria) url.Values {
	v := url.Values{}
	if c.Species != nil {
		v.Set("species", string(*c.Species))
	}
	if c.Delivery != nil {
		v.Set("delivery", strconv.FormatBool(*c.Delivery))
	}
	if c.Pickup != nil {
		v.Set("pickup", strconv.FormatBool(*c.Pickup))
	}
	if c.MinRating != nil {
		v.Set("minRating", strconv.FormatFloat(*c.MinRating, 'f', -1, 64))
	}
	if c.Text != "" {
		v.Set("q", strings.ToLower(c.Text))
	}
	return v
}
