// Package models содержит доменные и транспортные типы локатора поставщиков.
package models

import (
	"fmt"
	"time"
)

// Species описывает, каких животных обслуживает поставщик.
type Species string

const (
	SpeciesDogs Species = "dogs"
	SpeciesCats Species = "cats"
	SpeciesBoth Species = "both"
)

// Valid сообщает, является ли значение одним из допустимых.
func (s Species) Valid() bool {
	switch s {
	case SpeciesDogs, SpeciesCats, SpeciesBoth:
		return true
	}
	return false
}

// SortKey задает ключ сортировки результатов.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByRating   SortKey = "rating"
	SortByDistance SortKey = "distance"
)

// GeoPoint представляет географические координаты
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Supplier представляет запись справочника поставщиков сырого корма.
type Supplier struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Country           string    `json:"country"`
	Location          GeoPoint  `json:"location"`
	Phone             string    `json:"phone,omitempty"`
	Website           string    `json:"website,omitempty"`
	Rating            *float64  `json:"rating,omitempty"`
	RatingCount       int       `json:"rating_count"`
	Species           Species   `json:"species"`
	DeliveryAvailable bool      `json:"delivery_available"`
	PickupAvailable   bool      `json:"pickup_available"`
	Description       string    `json:"description"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RatingOrZero возвращает рейтинг или 0, если он не задан.
func (s *Supplier) RatingOrZero() float64 {
	if s.Rating == nil {
		return 0
	}
	return *s.Rating
}

// Validate проверяет инварианты записи поставщика.
func (s *Supplier) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("supplier id is empty")
	}
	if s.Location.Lat < -90 || s.Location.Lat > 90 {
		return fmt.Errorf("supplier %s: latitude %v out of range", s.ID, s.Location.Lat)
	}
	if s.Location.Lon < -180 || s.Location.Lon > 180 {
		return fmt.Errorf("supplier %s: longitude %v out of range", s.ID, s.Location.Lon)
	}
	if !s.Species.Valid() {
		return fmt.Errorf("supplier %s: unknown species %q", s.ID, s.Species)
	}
	if s.Rating != nil && (*s.Rating < 0 || *s.Rating > 5) {
		return fmt.Errorf("supplier %s: rating %v out of range", s.ID, *s.Rating)
	}
	return nil
}

// Criteria содержит необязательные фильтры по атрибутам поставщика.
// nil означает, что фильтр не применяется.
type Criteria struct {
	Species   *Species
	Delivery  *bool
	Pickup    *bool
	MinRating *float64
	Text      string
}

// ProximityQuery представляет проверенный запрос поиска поставщиков рядом с точкой.
type ProximityQuery struct {
	Center   GeoPoint
	RadiusKM int
	Criteria
	Sort  SortKey
	Page  int
	Limit int
}

// TextQuery представляет проверенный запрос полнотекстового поиска без географии.
type TextQuery struct {
	Criteria
	Sort  SortKey
	Page  int
	Limit int
}

// RankedResult - поставщик с рассчитанным расстоянием до центра поиска, км.
type RankedResult struct {
	Supplier
	Distance *float64 `json:"distance,omitempty"`
}

// Center - центр поиска в ответе API.
type Center struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchResponse представляет ответ поиска поставщиков
type SearchResponse struct {
	Results []RankedResult `json:"results"`
	Center  *Center        `json:"center,omitempty"`
	Radius  int            `json:"radius,omitempty"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Total   int            `json:"total"`
	HasMore bool           `json:"hasMore"`
	Count   int            `json:"count"`
}

// ErrorResponse представляет тело ответа с ошибкой.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Field   string         `json:"field,omitempty"`
	Reason  string         `json:"reason,omitempty"`
	Message string         `json:"message"`
	Results []RankedResult `json:"results"`
}

// Region представляет регион присутствия поставщиков
type Region struct {
	Country   string `json:"country"`
	State     string `json:"state"`
	Suppliers int    `json:"suppliers"`
}
