package http

import (
	"net/http"

	"github.com/klwxsrx/media-service/internal/pkg/auth"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

const RequestIDHeader = "X-Request-ID"

func CORSConfig() pkghttp.CORSConfig {
	return pkghttp.CORSConfig{
		AllowedOrigin: "*",
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{
			auth.AuthorizationHeader,
			"Origin",
			"X-Requested-With",
			"Content-Type",
			"Accept",
		},
		ExposedHeaders: []string{
			auth.AuthorizationHeader,
			RequestIDHeader,
		},
	}
}

// Reject answers with the given status and the error envelope carrying message.
func Reject(w pkghttp.ResponseWriter, httpCode int, message string, err error) error {
	w.SetStatusCode(httpCode)
	w.SetJSONBody(pkghttp.NewErrorResponse(message))
	return err
}
