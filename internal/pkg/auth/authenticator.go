package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klwxsrx/media-service/pkg/log"
	"github.com/klwxsrx/media-service/pkg/metric"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

const (
	rejectReasonMissing   = "missing"
	rejectReasonInvalid   = "invalid"
	rejectReasonMalformed = "malformed"
	rejectReasonRefresh   = "refresh"
)

type (
	RequestContext interface {
		AuthorizationHeader() (string, bool)
		SetAuthorizationHeader(value string)
		SetClaims(Claims)
	}

	Authenticator interface {
		Authenticate(ctx context.Context, request RequestContext) (bool, error)
	}
)

type authenticator struct {
	signer  CredentialSigner
	metrics metric.Metrics
	logger  log.Logger
}

func NewAuthenticator(signer CredentialSigner, metrics metric.Metrics, logger log.Logger) Authenticator {
	return authenticator{
		signer:  signer,
		metrics: metrics,
		logger:  logger,
	}
}

// Authenticate accepts a validly signed credential with well-formed claims. An expired one is replaced
// by a fresh credential with the same claims, written back to the request's Authorization header.
func (a authenticator) Authenticate(ctx context.Context, request RequestContext) (bool, error) {
	credential, ok := extractCredential(request)
	if !ok {
		return a.reject(ctx, rejectReasonMissing, ErrMissingCredential)
	}

	claims, err := a.signer.Verify(credential)
	if err == nil {
		if err = claims.Validate(); err != nil {
			return a.reject(ctx, rejectReasonMalformed, fmt.Errorf("%w: %v", ErrMalformedPayload, err))
		}

		request.SetClaims(claims)
		return true, nil
	}
	if !errors.Is(err, ErrExpiredCredential) {
		return a.reject(ctx, rejectReasonInvalid, fmt.Errorf("%w: %v", ErrInvalidCredential, err))
	}

	refreshed, claims, err := a.refresh(credential)
	if errors.Is(err, ErrMalformedPayload) {
		return a.reject(ctx, rejectReasonMalformed, err)
	}
	if errors.Is(err, ErrRefreshFailed) {
		return a.reject(ctx, rejectReasonRefresh, err)
	}
	if err != nil {
		a.metrics.Increment("auth_credential_signing_faults_total")
		a.logger.WithError(err).Error(ctx, "failed to sign refreshed credential")
		return false, err
	}

	request.SetAuthorizationHeader(fmt.Sprintf("%s %s", BearerScheme, refreshed))
	request.SetClaims(claims)

	a.metrics.Increment("auth_credential_refreshes_total")
	a.logger.WithField("userID", claims.ID).Info(ctx, "expired credential refreshed")
	return true, nil
}

func (a authenticator) refresh(expired Credential) (Credential, Claims, error) {
	decoded, err := a.signer.DecodeUnsafe(expired)
	if err != nil {
		return "", Claims{}, fmt.Errorf("%w: decode expired credential: %v", ErrRefreshFailed, err)
	}
	if decoded == nil {
		return "", Claims{}, ErrMalformedPayload
	}
	if err = decoded.Validate(); err != nil {
		return "", Claims{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	refreshed, err := a.signer.Sign(Claims{
		ID:    decoded.ID,
		Email: decoded.Email,
		Name:  decoded.Name,
	}, SignOptions{})
	if err != nil {
		return "", Claims{}, fmt.Errorf("sign refreshed credential: %w", err)
	}

	claims, err := a.signer.Verify(refreshed)
	if err != nil {
		return "", Claims{}, fmt.Errorf("%w: verify refreshed credential: %v", ErrRefreshFailed, err)
	}

	return refreshed, claims, nil
}

func (a authenticator) reject(ctx context.Context, reason string, err error) (bool, error) {
	a.metrics.With(metric.Labels{"reason": reason}).Increment("auth_rejections_total")
	a.logger.WithError(err).Debug(ctx, "request authentication rejected")
	return false, err
}

func extractCredential(request RequestContext) (Credential, bool) {
	header, ok := request.AuthorizationHeader()
	if !ok || header == "" {
		return "", false
	}

	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}

	return Credential(parts[1]), true
}
