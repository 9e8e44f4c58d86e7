package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

const HealthPath = "/healthz"

func WithHealthCheck(customHandlerFunc HandlerFunc) HandlerOption {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}
	if customHandlerFunc != nil {
		handler = httpHandlerWrapper(customHandlerFunc)
	}

	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(handler)
	}
}

func WithErrorMapping(statusCodes map[int][]error) HandlerOption {
	mappings := make([]errorMapping, 0, len(statusCodes))
	for statusCode, errs := range statusCodes {
		mappings = append(mappings, errorMapping{
			code: statusCode,
			predicate: func(err error) bool {
				for _, expected := range errs {
					if errors.Is(err, expected) {
						return true
					}
				}
				return false
			},
		})
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := getHandlerMetadata(r.Context())
			meta.ErrorMapping = append(meta.ErrorMapping, mappings...)
			handler.ServeHTTP(w, r)
		})
	})
}

func WithMW(mw HandlerMiddleware) HandlerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}
