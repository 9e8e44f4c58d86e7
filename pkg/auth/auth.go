package auth

import (
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

type (
	Authentication[T Principal] interface {
		IsAuthenticated() bool
		Principal() *T
	}

	Principal interface {
		Type() PrincipalType
		ID() *string
	}

	Auth[T Principal] struct {
		AuthPrincipal *T
	}

	PrincipalType string
)

func NewAuthentication[T Principal](principal T) Auth[T] {
	return Auth[T]{AuthPrincipal: &principal}
}

func (a Auth[T]) IsAuthenticated() bool {
	return a.AuthPrincipal != nil
}

func (a Auth[T]) Principal() *T {
	return a.AuthPrincipal
}
