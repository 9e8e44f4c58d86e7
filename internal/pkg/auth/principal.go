package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgauth "github.com/klwxsrx/media-service/pkg/auth"
)

const PrincipalTypeUser pkgauth.PrincipalType = "user"

type (
	Principal struct {
		UserID uuid.UUID
		Email  string
		Name   string
	}

	Authentication    = pkgauth.Authentication[Principal]
	PermissionService = pkgauth.PermissionService[Principal]
	Permission        = pkgauth.Permission[Principal]
)

func NewPermissionService() PermissionService {
	return pkgauth.NewPermissionService[Principal]()
}

// CurrentPrincipal returns the authenticated user of the request context or pkgauth.ErrUnauthenticated.
func CurrentPrincipal(ctx context.Context) (Principal, error) {
	return pkgauth.GetPrincipal[Principal](ctx)
}

func PrincipalFromClaims(claims Claims) (Principal, error) {
	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: parse id: %v", ErrMalformedPayload, err)
	}

	return Principal{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

func (p Principal) Type() pkgauth.PrincipalType {
	return PrincipalTypeUser
}

func (p Principal) ID() *string {
	id := p.UserID.String()
	return &id
}
