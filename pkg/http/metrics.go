package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/klwxsrx/media-service/pkg/metric"
)

func WithMetrics(metrics metric.Metrics) HandlerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())
			routeName := getRequestRouteName(r)

			if meta.Panic != nil {
				metrics.With(metric.Labels{
					"route": routeName,
				}).Increment("http_api_request_panics_total")
			}

			metrics.With(metric.Labels{
				"route": routeName,
				"code":  fmt.Sprintf("%d", meta.Code),
			}).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}
