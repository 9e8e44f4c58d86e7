//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "User=User"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klwxsrx/media-service/internal/pkg/auth"
	"github.com/klwxsrx/media-service/internal/user/app/encoding"
	"github.com/klwxsrx/media-service/internal/user/domain"
	"github.com/klwxsrx/media-service/pkg/persistence"
	pkgtime "github.com/klwxsrx/media-service/pkg/time"
)

var (
	ErrInvalidUserCredentials = errors.New("invalid user credentials")
	ErrUserAlreadyExists      = errors.New("user with specified email already exists")
)

const updateUsersLockName = "update_users"

type (
	User interface {
		Register(context.Context, RegisterUserData) (*UserData, error)
		SignIn(context.Context, UserCredentials) (*SignInData, error)
		List(context.Context) ([]UserData, error)
	}

	RegisterUserData struct {
		Name     string
		Email    string
		Password string
	}

	UserCredentials struct {
		Email    string
		Password string
	}

	UserData struct {
		ID        domain.UserID
		Name      string
		Email     string
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	SignInData struct {
		Credential auth.Credential
		User       UserData
	}

	userService struct {
		userRepo        domain.UserRepository
		passwordEncoder encoding.PasswordEncoder
		signer          auth.CredentialSigner
		transaction     persistence.Transaction
		clock           pkgtime.Clock
	}
)

func NewUser(
	userRepo domain.UserRepository,
	passwordEncoder encoding.PasswordEncoder,
	signer auth.CredentialSigner,
	transaction persistence.Transaction,
	clock pkgtime.Clock,
) User {
	return &userService{
		userRepo:        userRepo,
		passwordEncoder: passwordEncoder,
		signer:          signer,
		transaction:     transaction,
		clock:           clock,
	}
}

func (s *userService) Register(ctx context.Context, data RegisterUserData) (*UserData, error) {
	name := strings.TrimSpace(data.Name)
	email := normalizeEmail(data.Email)
	if email == "" || data.Password == "" {
		return nil, ErrInvalidUserCredentials
	}

	passwordHash, err := s.passwordEncoder.HashPassword(data.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	registerUserImpl := func(ctx context.Context) (*UserData, error) {
		_, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Emails: []string{email}})
		if err == nil {
			return nil, ErrUserAlreadyExists
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("find user by email: %w", err)
		}

		now := s.clock.Now(ctx)
		user := &domain.User{
			ID:           s.userRepo.NextID(),
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		err = s.userRepo.Store(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}

		return toUserData(user), nil
	}

	return persistence.WithinTransactionWithResult(ctx, s.transaction, registerUserImpl, updateUsersLockName)
}

func (s *userService) SignIn(ctx context.Context, credentials UserCredentials) (*SignInData, error) {
	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		return nil, ErrInvalidUserCredentials
	}

	user, err := s.userRepo.FindOne(ctx, domain.FindUserSpecification{Emails: []string{email}})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, ErrInvalidUserCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if !s.passwordEncoder.CompareHash(user.PasswordHash, credentials.Password) {
		return nil, ErrInvalidUserCredentials
	}

	credential, err := s.signer.Sign(auth.Claims{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, auth.SignOptions{})
	if err != nil {
		return nil, fmt.Errorf("sign credential: %w", err)
	}

	return &SignInData{
		Credential: credential,
		User:       *toUserData(user),
	}, nil
}

func (s *userService) List(ctx context.Context) ([]UserData, error) {
	users, err := s.userRepo.Find(ctx, domain.FindUserSpecification{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	return toUsersData(users), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
