package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/internal/pkg/auth"
)

type Config struct {
	Secret string
	// Expiry of credentials signed without SignOptions.Expiry. Zero means no expiry.
	Expiry time.Duration
}

type tokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type signer struct {
	secret []byte
	expiry time.Duration
}

func NewSigner(config Config) auth.CredentialSigner {
	return signer{
		secret: []byte(config.Secret),
		expiry: config.Expiry,
	}
}

func (s signer) Sign(claims auth.Claims, opts auth.SignOptions) (auth.Credential, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: secret is not configured", auth.ErrSigning)
	}

	expiry := s.expiry
	if opts.Expiry != nil {
		expiry = *opts.Expiry
	}

	now := time.Now()
	registered := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if expiry != 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID:           claims.ID,
		Email:            claims.Email,
		Name:             claims.Name,
		RegisteredClaims: registered,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", auth.ErrSigning, err)
	}

	return auth.Credential(signed), nil
}

func (s signer) Verify(credential auth.Credential) (auth.Claims, error) {
	claims, err := s.parse(credential)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return auth.Claims{}, fmt.Errorf("%w: %w", auth.ErrExpiredCredential, err)
	}
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", auth.ErrInvalidSignature, err)
	}

	return claims.toClaims(), nil
}

func (s signer) DecodeUnsafe(credential auth.Credential) (*auth.Claims, error) {
	claims, err := s.parse(credential, jwt.WithoutClaimsValidation())
	if errors.Is(err, jwt.ErrTokenMalformed) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", auth.ErrInvalidSignature, err)
	}

	result := claims.toClaims()
	if result.Validate() != nil {
		return nil, nil
	}

	return &result, nil
}

func (s signer) parse(credential auth.Credential, opts ...jwt.ParserOption) (*tokenClaims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(string(credential), claims, func(*jwt.Token) (any, error) {
		if len(s.secret) == 0 {
			return nil, errors.New("secret is not configured")
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

func (c tokenClaims) toClaims() auth.Claims {
	return auth.Claims{
		ID:    c.UserID,
		Email: c.Email,
		Name:  c.Name,
	}
}
