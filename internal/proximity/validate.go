package proximity

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/akozadaev/rawgle/internal/models"
)

const (
	DefaultRadiusKM = 50
	MaxRadiusKM     = 500
	DefaultLimit    = 20
	MaxLimit        = 100
	MaxTextLength   = 100
)

// ValidationError описывает отклоненный параметр запроса.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ParseProximityQuery проверяет сырые параметры запроса и строит ProximityQuery.
// Любой неверный параметр отклоняет весь запрос.
func ParseProximityQuery(values url.Values) (*models.ProximityQuery, error) {
	lat, err := parseCoordinate(values, "lat", -90, 90, "lat", "latitude")
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate(values, "lng", -180, 180, "lng", "lon", "longitude")
	if err != nil {
		return nil, err
	}

	radius := DefaultRadiusKM
	if raw, ok := lookup(values, "radius"); ok {
		radius, err = strconv.Atoi(raw)
		if err != nil || radius < 1 || radius > MaxRadiusKM {
			return nil, invalid("radius", fmt.Sprintf("must be an integer between 1 and %d", MaxRadiusKM))
		}
	}

	criteria, err := parseCriteria(values)
	if err != nil {
		return nil, err
	}

	sortKey, err := parseSort(values, true)
	if err != nil {
		return nil, err
	}

	page, limit, err := parsePaging(values)
	if err != nil {
		return nil, err
	}

	return &models.ProximityQuery{
		Center:   models.GeoPoint{Lat: lat, Lon: lon},
		RadiusKM: radius,
		Criteria: criteria,
		Sort:     sortKey,
		Page:     page,
		Limit:    limit,
	}, nil
}

// ParseTextQuery проверяет параметры полнотекстового поиска. Строка поиска обязательна,
// сортировка по расстоянию недоступна.
func ParseTextQuery(values url.Values) (*models.TextQuery, error) {
	criteria, err := parseCriteria(values)
	if err != nil {
		return nil, err
	}
	if criteria.Text == "" {
		return nil, invalid("query", "is required")
	}

	sortKey, err := parseSort(values, false)
	if err != nil {
		return nil, err
	}

	page, limit, err := parsePaging(values)
	if err != nil {
		return nil, err
	}

	return &models.TextQuery{
		Criteria: criteria,
		Sort:     sortKey,
		Page:     page,
		Limit:    limit,
	}, nil
}

// lookup возвращает первое непустое значение среди ключей.
func lookup(values url.Values, keys ...string) (string, bool) {
	for _, key := range keys {
		if raw := strings.TrimSpace(values.Get(key)); raw != "" {
			return raw, true
		}
	}
	return "", false
}

func parseCoordinate(values url.Values, field string, lo, hi float64, keys ...string) (float64, error) {
	raw, ok := lookup(values, keys...)
	if !ok {
		return 0, invalid(field, "is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, "must be a number")
	}
	if v < lo || v > hi {
		return 0, invalid(field, fmt.Sprintf("must be between %g and %g", lo, hi))
	}
	return v, nil
}

func parseCriteria(values url.Values) (models.Criteria, error) {
	var c models.Criteria

	if raw, ok := lookup(values, "species"); ok {
		species := models.Species(strings.ToLower(raw))
		if !species.Valid() {
			return c, invalid("species", "must be one of dogs, cats, both")
		}
		c.Species = &species
	}

	for _, field := range []struct {
		name string
		dst  **bool
	}{{"delivery", &c.Delivery}, {"pickup", &c.Pickup}} {
		raw, ok := lookup(values, field.name)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c, invalid(field.name, "must be true or false")
		}
		*field.dst = &v
	}

	if raw, ok := lookup(values, "minRating"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || v < 0 || v > 5 {
			return c, invalid("minRating", "must be a number between 0 and 5")
		}
		c.MinRating = &v
	}

	if raw, ok := lookup(values, "query", "q"); ok {
		if utf8.RuneCountInString(raw) > MaxTextLength {
			return c, invalid("query", fmt.Sprintf("must be at most %d characters", MaxTextLength))
		}
		c.Text = raw
	}

	return c, nil
}

func parseSort(values url.Values, geo bool) (models.SortKey, error) {
	raw, ok := lookup(values, "sort")
	if !ok {
		return models.SortByName, nil
	}
	switch key := models.SortKey(strings.ToLower(raw)); key {
	case models.SortByName, models.SortByRating:
		return key, nil
	case models.SortByDistance:
		if geo {
			return key, nil
		}
		return "", invalid("sort", "distance requires lat and lng")
	}
	if geo {
		return "", invalid("sort", "must be one of name, rating, distance")
	}
	return "", invalid("sort", "must be one of name, rating")
}

func parsePaging(values url.Values) (page, limit int, err error) {
	page, limit = 1, DefaultLimit

	if raw, ok := lookup(values, "page"); ok {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, invalid("page", "must be a positive integer")
		}
	}

	if raw, ok := lookup(values, "limit"); ok {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxLimit {
			return 0, 0, invalid("limit", fmt.Sprintf("must be an integer between 1 and %d", MaxLimit))
		}
	}

	return page, limit, nil
}
