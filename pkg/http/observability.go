package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/pkg/observability"
)

const RequestIDHeader = "X-Request-ID"

type RequestIDExtractor func(*http.Request) string

func WithObservability(observer observability.Observer, extractors ...RequestIDExtractor) HandlerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, extractor := range extractors {
				if id := extractor(r); id != "" {
					r = r.WithContext(observer.WithRequestID(r.Context(), id))
					w.Header().Set(RequestIDHeader, id)
					break
				}
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func RequestIDHeaderExtractor(header string) RequestIDExtractor {
	return func(r *http.Request) string {
		return r.Header.Get(header)
	}
}

func RequestIDRandomUUIDExtractor() RequestIDExtractor {
	return func(_ *http.Request) string {
		return uuid.New().String()
	}
}
