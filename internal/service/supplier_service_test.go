package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/akozadaev/rawgle/internal/cache"
	"github.com/akozadaev/rawgle/internal/models"
	"github.com/akozadaev/rawgle/internal/proximity"
	"github.com/akozadaev/rawgle/internal/storage"
)

type fakeSource struct {
	suppliers []models.Supplier
	err       error
	calls     int
}

func (f *fakeSource) ListSuppliers(context.Context) ([]models.Supplier, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.suppliers, nil
}

func (f *fakeSource) GetSupplier(_ context.Context, id string) (*models.Supplier, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.suppliers {
		if f.suppliers[i].ID == id {
			return &f.suppliers[i], nil
		}
	}
	return nil, storage.ErrSupplierNotFound
}

type fakeNearbySource struct {
	fakeSource
	nearCalls int
}

func (f *fakeNearbySource) ListSuppliersNear(context.Context, models.GeoPoint, int) ([]models.Supplier, error) {
	f.nearCalls++
	return f.suppliers, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSuppliers() []models.Supplier {
	five := 5.0
	return []models.Supplier{
		{ID: "a", Name: "Cardiff Raw", City: "Cardiff", State: "Wales", Country: "UK", Location: models.GeoPoint{Lat: 51.48, Lon: -3.18}, Species: models.SpeciesBoth, Rating: &five},
		{ID: "b", Name: "Newport Paws", City: "Newport", State: "Wales", Country: "UK", Location: models.GeoPoint{Lat: 51.58, Lon: -3.0}, Species: models.SpeciesDogs},
		{ID: "c", Name: "London Raw", City: "London", State: "England", Country: "UK", Location: models.GeoPoint{Lat: 51.5, Lon: -0.12}, Species: models.SpeciesCats},
	}
}

func nearbyValues() url.Values {
	return url.Values{"lat": {"51.48"}, "lng": {"-3.18"}, "radius": {"25"}}
}

func TestNearbyValidationBeforeIO(t *testing.T) {
	src := &fakeSource{suppliers: testSuppliers()}
	svc := NewSupplierService(src, nil, time.Minute, testLogger())

	_, err := svc.Nearby(context.Background(), url.Values{"lat": {"95"}, "lng": {"0"}})
	var verr *proximity.ValidationError
	if !errors.As(err, &verr) || verr.Field != "lat" {
		t.Fatalf("expected lat validation error, got %v", err)
	}
	if src.calls != 0 {
		t.Errorf("source called %d times for an invalid query", src.calls)
	}
}

func TestNearbyUsesCache(t *testing.T) {
	src := &fakeSource{suppliers: testSuppliers()}
	svc := NewSupplierService(src, cache.NewMemoryStore(), time.Minute, testLogger())
	ctx := context.Background()

	first, err := svc.Nearby(ctx, nearbyValues())
	if err != nil {
		t.Fatalf("Nearby: %v", err)
	}
	if first.Total != 2 {
		t.Fatalf("total = %d, want 2", first.Total)
	}

	// эквивалентный запрос с другими именами параметров
	second, err := svc.Nearby(ctx, url.Values{"latitude": {"51.480"}, "longitude": {"-3.18"}, "radius": {"25"}, "sort": {"name"}})
	if err != nil {
		t.Fatalf("Nearby: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("cached response differs:\n%s\n%s", a, b)
	}
}

func TestNearbyCacheDoesNotChangeResult(t *testing.T) {
	ctx := context.Background()
	withCache := NewSupplierService(&fakeSource{suppliers: testSuppliers()}, cache.NewMemoryStore(), time.Minute, testLogger())
	without := NewSupplierService(&fakeSource{suppliers: testSuppliers()}, nil, time.Minute, testLogger())

	values := url.Values{"lat": {"51.5"}, "lng": {"-1.5"}, "radius": {"500"}, "sort": {"distance"}, "limit": {"2"}}
	for i := 0; i < 2; i++ {
		a, err := withCache.Nearby(ctx, values)
		if err != nil {
			t.Fatal(err)
		}
		b, err := without.Nearby(ctx, values)
		if err != nil {
			t.Fatal(err)
		}
		ja, _ := json.Marshal(a)
		jb, _ := json.Marshal(b)
		if string(ja) != string(jb) {
			t.Fatalf("run %d: cache changed the result", i)
		}
	}
}

func TestNearbyPrefersNearbySource(t *testing.T) {
	src := &fakeNearbySource{fakeSource: fakeSource{suppliers: testSuppliers()}}
	svc := NewSupplierService(src, nil, 0, testLogger())

	resp, err := svc.Nearby(context.Background(), nearbyValues())
	if err != nil {
		t.Fatalf("Nearby: %v", err)
	}
	if src.nearCalls != 1 || src.calls != 0 {
		t.Errorf("nearCalls=%d calls=%d", src.nearCalls, src.calls)
	}
	if resp.Total != 2 {
		t.Errorf("radius filter must still apply to prefiltered suppliers, total = %d", resp.Total)
	}
}

func TestUpstreamUnavailable(t *testing.T) {
	src := &fakeSource{err: errors.New("dial tcp: connection refused")}
	svc := NewSupplierService(src, nil, time.Minute, testLogger())
	ctx := context.Background()

	if _, err := svc.Nearby(ctx, nearbyValues()); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("Nearby: expected ErrUpstreamUnavailable, got %v", err)
	}
	if _, err := svc.Search(ctx, url.Values{"q": {"raw"}}); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("Search: expected ErrUpstreamUnavailable, got %v", err)
	}
	if _, err := svc.GetSupplier(ctx, "a"); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("GetSupplier: expected ErrUpstreamUnavailable, got %v", err)
	}
	if _, err := svc.Regions(ctx); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("Regions: expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	svc := NewSupplierService(&fakeSource{suppliers: testSuppliers()}, nil, time.Minute, testLogger())

	resp, err := svc.Search(context.Background(), url.Values{"q": {"RAW"}, "sort": {"rating"}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Total != 2 || resp.Results[0].ID != "a" || resp.Results[1].ID != "c" {
		t.Errorf("unexpected results: %+v", resp.Results)
	}
}

func TestGetSupplierNotFound(t *testing.T) {
	svc := NewSupplierService(&fakeSource{suppliers: testSuppliers()}, nil, time.Minute, testLogger())

	if _, err := svc.GetSupplier(context.Background(), "zzz"); !errors.Is(err, storage.ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}

func TestRegionsFromSupplierList(t *testing.T) {
	svc := NewSupplierService(&fakeSource{suppliers: testSuppliers()}, nil, time.Minute, testLogger())

	regions, err := svc.Regions(context.Background())
	if err != nil {
		t.Fatalf("Regions: %v", err)
	}
	want := []models.Region{
		{Country: "UK", State: "England", Suppliers: 1},
		{Country: "UK", State: "Wales", Suppliers: 2},
	}
	if len(regions) != len(want) || regions[0] != want[0] || regions[1] != want[1] {
		t.Errorf("regions = %+v, want %+v", regions, want)
	}
}
