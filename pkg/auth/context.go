package auth

import (
	"context"
	"errors"
)

const authenticationContextKey contextKey = iota

type contextKey int

var errAuthenticationNotFound = errors.New("authentication not found")

func WithAuthentication[T Principal](ctx context.Context, auth Authentication[T]) context.Context {
	var principal *Principal
	if auth.Principal() != nil {
		p := Principal(*auth.Principal())
		principal = &p
	}

	return context.WithValue(ctx, authenticationContextKey, Auth[Principal]{principal})
}

func GetAuthentication[T Principal](ctx context.Context) (Authentication[T], bool) {
	authentication, ok := ctx.Value(authenticationContextKey).(Authentication[Principal])
	if !ok {
		return nil, false
	}

	var principal *T
	if authentication.Principal() != nil {
		p, ok := (*authentication.Principal()).(T)
		if !ok {
			return nil, false
		}
		principal = &p
	}

	return Auth[T]{principal}, true
}

// GetPrincipal returns ErrUnauthenticated when the context carries no principal of type T.
func GetPrincipal[T Principal](ctx context.Context) (T, error) {
	authentication, ok := GetAuthentication[T](ctx)
	if !ok || !authentication.IsAuthenticated() {
		var result T
		return result, ErrUnauthenticated
	}

	return *authentication.Principal(), nil
}

func IsAuthenticated(ctx context.Context) (bool, error) {
	result, ok := ctx.Value(authenticationContextKey).(Authentication[Principal])
	if !ok {
		return false, errAuthenticationNotFound
	}

	return result.IsAuthenticated(), nil
}
