package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akozadaev/rawgle/internal/ratelimit"
	"github.com/gorilla/mux"
)

// RouterOptions задает необязательные части маршрутизатора.
type RouterOptions struct {
	Limiter    *ratelimit.Limiter // nil отключает ограничение запросов
	TrustProxy bool               // брать IP клиента из X-Forwarded-For
	Swagger    http.Handler       // обработчик /swagger/, nil отключает UI
}

// NewRouter настраивает маршруты и цепочку middleware.
func NewRouter(h *Handlers, opts RouterOptions) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, accessLogMiddleware(h.logger), corsMiddleware)

	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	if opts.Limiter != nil {
		api.Use(rateLimitMiddleware(opts.Limiter, opts.TrustProxy, h.logger))
	}
	api.HandleFunc("/suppliers/nearby", h.NearbySuppliers).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/suppliers/search", h.SearchSuppliers).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/suppliers/{id}", h.GetSupplier).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/regions", h.GetRegions).Methods(http.MethodGet, http.MethodOptions)

	if opts.Swagger != nil {
		router.PathPrefix("/swagger/").Handler(opts.Swagger)
	}

	return router
}

func writeBody(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}
