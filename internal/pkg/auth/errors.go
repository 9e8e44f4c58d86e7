package auth

import (
	"errors"
	"fmt"

	pkgauth "github.com/klwxsrx/media-service/pkg/auth"
)

// Every rejection of a request wraps pkgauth.ErrUnauthenticated.
var (
	ErrMissingCredential = fmt.Errorf("%w: missing credential", pkgauth.ErrUnauthenticated)
	ErrInvalidCredential = fmt.Errorf("%w: invalid credential", pkgauth.ErrUnauthenticated)
	ErrMalformedPayload  = fmt.Errorf("%w: malformed credential payload", pkgauth.ErrUnauthenticated)
	ErrRefreshFailed     = fmt.Errorf("%w: credential refresh failed", pkgauth.ErrUnauthenticated)
)

var (
	ErrExpiredCredential = errors.New("credential expired")
	ErrInvalidSignature  = errors.New("invalid credential signature")
	ErrSigning           = errors.New("sign credential")
)
