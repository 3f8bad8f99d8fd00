// Package handlers содержит HTTP обработчики для REST API локатора поставщиков.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/akozadaev/rawgle/internal/models"
	"github.com/akozadaev/rawgle/internal/proximity"
	"github.com/akozadaev/rawgle/internal/service"
	"github.com/akozadaev/rawgle/internal/storage"
	"github.com/gorilla/mux"
)

// Handlers содержит зависимости для обработки HTTP запросов.
type Handlers struct {
	suppliers *service.SupplierService
	logger    *slog.Logger
}

// NewHandlers создает новый экземпляр Handlers.
func NewHandlers(suppliers *service.SupplierService, logger *slog.Logger) *Handlers {
	return &Handlers{
		suppliers: suppliers,
		logger:    logger,
	}
}

// NearbySuppliers обрабатывает GET запрос на поиск поставщиков рядом с точкой.
// Эндпоинт: GET /suppliers/nearby
//
// @Summary      Найти поставщиков рядом
// @Description  Возвращает поставщиков в радиусе (км) от точки с фильтрами по виду животных, доставке, самовывозу, рейтингу и тексту. Расстояния в километрах.
// @Tags         suppliers
// @Produce      json
// @Param        lat        query     number   true   "Широта центра, [-90, 90]"
// @Param        lng        query     number   true   "Долгота центра, [-180, 180]"
// @Param        radius     query     integer  false  "Радиус, км, [1, 500]"  default(50)
// @Param        species    query     string   false  "Вид животных"  Enums(dogs, cats, both)
// @Param        delivery   query     boolean  false  "Есть доставка"
// @Param        pickup     query     boolean  false  "Есть самовывоз"
// @Param        minRating  query     number   false  "Минимальный рейтинг, [0, 5]"
// @Param        query      query     string   false  "Подстрока в названии, городе, регионе или описании"
// @Param        sort       query     string   false  "Сортировка"  Enums(name, rating, distance)  default(name)
// @Param        page       query     integer  false  "Номер страницы"  default(1)
// @Param        limit      query     integer  false  "Размер страницы, [1, 100]"  default(20)
// @Success      200  {object}  models.SearchResponse
// @Failure      400  {object}  models.ErrorResponse  "Неверный параметр запроса"
// @Failure      429  {object}  models.ErrorResponse  "Превышен лимит запросов"
// @Failure      503  {object}  models.ErrorResponse  "Справочник поставщиков недоступен"
// @Router       /suppliers/nearby [get]
func (h *Handlers) NearbySuppliers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.suppliers.Nearby(r.Context(), r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// SearchSuppliers обрабатывает GET запрос полнотекстового поиска поставщиков.
// Эндпоинт: GET /suppliers/search
//
// @Summary      Полнотекстовый поиск поставщиков
// @Description  Ищет подстроку без учета регистра в названии, городе, регионе и описании поставщика.
// @Tags         suppliers
// @Produce      json
// @Param        q          query     string   true   "Строка поиска"
// @Param        species    query     string   false  "Вид животных"  Enums(dogs, cats, both)
// @Param        delivery   query     boolean  false  "Есть доставка"
// @Param        pickup     query     boolean  false  "Есть самовывоз"
// @Param        minRating  query     number   false  "Минимальный рейтинг, [0, 5]"
// @Param        sort       query     string   false  "Сортировка"  Enums(name, rating)  default(name)
// @Param        page       query     integer  false  "Номер страницы"  default(1)
// @Param        limit      query     integer  false  "Размер страницы, [1, 100]"  default(20)
// @Success      200  {object}  models.SearchResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /suppliers/search [get]
func (h *Handlers) SearchSuppliers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.suppliers.Search(r.Context(), r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// GetSupplier обрабатывает GET запрос на получение поставщика по ID.
// Эндпоинт: GET /suppliers/{id}
//
// @Summary      Получить поставщика
// @Tags         suppliers
// @Produce      json
// @Param        id   path      string  true  "Идентификатор поставщика"
// @Success      200  {object}  models.Supplier
// @Failure      404  {object}  models.ErrorResponse  "Поставщик не найден"
// @Failure      503  {object}  models.ErrorResponse
// @Router       /suppliers/{id} [get]
func (h *Handlers) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	supplier, err := h.suppliers.GetSupplier(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, supplier)
}

// GetRegions обрабатывает GET запрос на получение списка регионов с поставщиками.
// Эндпоинт: GET /regions
//
// @Summary      Получить список регионов
// @Tags         regions
// @Produce      json
// @Success      200  {array}   models.Region
// @Failure      503  {object}  models.ErrorResponse
// @Router       /regions [get]
func (h *Handlers) GetRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.suppliers.Regions(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if regions == nil {
		regions = []models.Region{}
	}
	h.writeJSON(w, r, http.StatusOK, regions)
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
//
// @Summary      Проверка работоспособности сервиса
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// writeError переводит ошибку сервиса в HTTP статус и тело ответа.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *proximity.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, r, http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Field:   verr.Field,
			Reason:  verr.Reason,
			Message: verr.Error(),
			Results: []models.RankedResult{},
		})
	case errors.Is(err, storage.ErrSupplierNotFound):
		h.writeJSON(w, r, http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Supplier not found",
			Results: []models.RankedResult{},
		})
	case errors.Is(err, service.ErrUpstreamUnavailable):
		h.logger.ErrorContext(r.Context(), "supplier directory unavailable", "request_id", RequestID(r.Context()), "error", err)
		h.writeJSON(w, r, http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "upstream_unavailable",
			Message: "Supplier directory is temporarily unavailable",
			Results: []models.RankedResult{},
		})
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "request_id", RequestID(r.Context()), "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Internal server error",
			Results: []models.RankedResult{},
		})
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "error encoding response", "request_id", RequestID(r.Context()), "error", err)
	}
}
