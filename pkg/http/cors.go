package http

import (
	"net/http"
	"strings"
)

type CORSConfig struct {
	AllowedOrigin  string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
}

func WithCORS(config CORSConfig) ServerOption {
	allowedMethods := strings.Join(config.AllowedMethods, ", ")
	allowedHeaders := strings.Join(config.AllowedHeaders, ", ")
	exposedHeaders := strings.Join(config.ExposedHeaders, ", ")

	return WithServerMiddleware(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", config.AllowedOrigin)
			if exposedHeaders != "" {
				header.Set("Access-Control-Expose-Headers", exposedHeaders)
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				handler.ServeHTTP(w, r)
				return
			}

			if allowedMethods != "" {
				header.Set("Access-Control-Allow-Methods", allowedMethods)
			}
			if allowedHeaders != "" {
				header.Set("Access-Control-Allow-Headers", allowedHeaders)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}
