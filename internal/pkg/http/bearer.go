package http

import (
	"net/http"

	"github.com/klwxsrx/media-service/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/media-service/pkg/auth"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

// WithBearerAuth rejects requests without a valid bearer credential. A refreshed credential
// replaces the request's Authorization header and is returned in the response one once the caller resolves.
func WithBearerAuth(authenticator auth.Authenticator) pkghttp.HandlerOption {
	return pkghttp.WithAuth[auth.Principal](func(w http.ResponseWriter, r *http.Request) (pkgauth.Authentication[auth.Principal], *http.Request, error) {
		reqCtx := &requestContext{request: r}
		ok, err := authenticator.Authenticate(r.Context(), reqCtx)
		if err != nil {
			return nil, r, err
		}
		if !ok || reqCtx.claims == nil {
			return nil, r, pkgauth.ErrUnauthenticated
		}

		principal, err := auth.PrincipalFromClaims(*reqCtx.claims)
		if err != nil {
			return nil, r, err
		}

		if reqCtx.refreshed != "" {
			w.Header().Set(auth.AuthorizationHeader, reqCtx.refreshed)
		}
		return pkgauth.NewAuthentication(principal), r, nil
	})
}

type requestContext struct {
	request   *http.Request
	claims    *auth.Claims
	refreshed string
}

func (c *requestContext) AuthorizationHeader() (string, bool) {
	values := c.request.Header.Values(auth.AuthorizationHeader)
	if len(values) == 0 {
		return "", false
	}

	return values[0], true
}

func (c *requestContext) SetAuthorizationHeader(value string) {
	c.request.Header.Set(auth.AuthorizationHeader, value)
	c.refreshed = value
}

func (c *requestContext) SetClaims(claims auth.Claims) {
	c.claims = &claims
}
