package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/media-service/pkg/auth"
)

// AuthProvider resolves the caller of a request. It may replace the request, e.g. to rewrite its headers.
type AuthProvider[T auth.Principal] func(w http.ResponseWriter, r *http.Request) (auth.Authentication[T], *http.Request, error)

func WithAuth[T auth.Principal](provider AuthProvider[T]) HandlerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authData, r, err := provider(w, r)
			if errors.Is(err, auth.ErrUnauthenticated) {
				WriteError(w, r, http.StatusUnauthorized, err)
				return
			}
			if err != nil {
				WriteError(w, r, http.StatusInternalServerError, err)
				return
			}

			r = setHandlerAuthentication(r, authData)
			handler.ServeHTTP(w, r)
		})
	})
}

func WithAuthenticationRequirement() HandlerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil {
				WriteError(w, r, http.StatusInternalServerError, err)
				return
			}

			if !isAuthenticated {
				WriteError(w, r, http.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func setHandlerAuthentication[T auth.Principal](r *http.Request, a auth.Authentication[T]) *http.Request {
	var principal *auth.Principal
	if a.Principal() != nil {
		p := auth.Principal(*a.Principal())
		principal = &p
	}

	meta := getHandlerMetadata(r.Context())
	meta.Auth = auth.Auth[auth.Principal]{AuthPrincipal: principal}

	return r.WithContext(auth.WithAuthentication(r.Context(), a))
}
