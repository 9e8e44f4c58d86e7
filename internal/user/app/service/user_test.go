package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/media-service/internal/pkg/auth"
	authmock "github.com/klwxsrx/media-service/internal/pkg/auth/mock"
	encodingmock "github.com/klwxsrx/media-service/internal/user/app/encoding/mock"
	"github.com/klwxsrx/media-service/internal/user/app/service"
	"github.com/klwxsrx/media-service/internal/user/domain"
	domainmock "github.com/klwxsrx/media-service/internal/user/domain/mock"
	"github.com/klwxsrx/media-service/pkg/persistence"
	pkgpersistencemock "github.com/klwxsrx/media-service/pkg/persistence/mock"
	pkgpersistencestub "github.com/klwxsrx/media-service/pkg/persistence/stub"
	pkgtime "github.com/klwxsrx/media-service/pkg/time"
)

type userServiceMocks struct {
	repo    *domainmock.UserRepository
	encoder *encodingmock.PasswordEncoder
	signer  *authmock.CredentialSigner
}

func TestUserService_Register(t *testing.T) {
	userID := domain.UserID{UUID: uuid.New()}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		data        service.RegisterUserData
		transaction func(ctrl *gomock.Controller) persistence.Transaction
		prepare     func(m userServiceMocks)
		expect      func(t *testing.T, result *service.UserData, err error)
	}{
		{
			name: "stores_user_with_normalized_email",
			data: service.RegisterUserData{Name: " Jane ", Email: " Jane@Example.COM ", Password: "secret"},
			prepare: func(m userServiceMocks) {
				m.encoder.EXPECT().HashPassword("secret").Return("hash", nil)
				m.repo.EXPECT().FindOne(gomock.Any(), domain.FindUserSpecification{Emails: []string{"jane@example.com"}}).
					Return(nil, domain.ErrUserNotFound)
				m.repo.EXPECT().NextID().Return(userID)
				m.repo.EXPECT().Store(gomock.Any(), &domain.User{
					ID:           userID,
					Name:         "Jane",
					Email:        "jane@example.com",
					PasswordHash: "hash",
					CreatedAt:    now,
					UpdatedAt:    now,
				}).Return(nil)
			},
			expect: func(t *testing.T, result *service.UserData, err error) {
				require.NoError(t, err)
				assert.Equal(t, &service.UserData{
					ID:        userID,
					Name:      "Jane",
					Email:     "jane@example.com",
					CreatedAt: now,
					UpdatedAt: now,
				}, result)
			},
		},
		{
			name: "rejects_duplicate_email",
			data: service.RegisterUserData{Name: "Jane", Email: "JANE@example.com", Password: "secret"},
			prepare: func(m userServiceMocks) {
				m.encoder.EXPECT().HashPassword("secret").Return("hash", nil)
				m.repo.EXPECT().FindOne(gomock.Any(), domain.FindUserSpecification{Emails: []string{"jane@example.com"}}).
					Return(&domain.User{ID: userID, Email: "jane@example.com"}, nil)
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
			},
		},
		{
			name:    "rejects_empty_password",
			data:    service.RegisterUserData{Name: "Jane", Email: "jane@example.com"},
			prepare: func(userServiceMocks) {},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidUserCredentials)
			},
		},
		{
			name: "fails_when_store_fails",
			data: service.RegisterUserData{Name: "Jane", Email: "jane@example.com", Password: "secret"},
			prepare: func(m userServiceMocks) {
				m.encoder.EXPECT().HashPassword("secret").Return("hash", nil)
				m.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
				m.repo.EXPECT().NextID().Return(userID)
				m.repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrUserAlreadyExists)
			},
		},
		{
			name: "runs_within_locked_transaction",
			data: service.RegisterUserData{Name: "Jane", Email: "jane@example.com", Password: "secret"},
			transaction: func(ctrl *gomock.Controller) persistence.Transaction {
				mock := pkgpersistencemock.NewTransaction(ctrl)
				mock.EXPECT().WithinContext(gomock.Any(), gomock.Any(), "update_users").Return(errors.New("unexpected"))
				return mock
			},
			prepare: func(m userServiceMocks) {
				m.encoder.EXPECT().HashPassword("secret").Return("hash", nil)
			},
			expect: func(t *testing.T, _ *service.UserData, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			m := userServiceMocks{
				repo:    domainmock.NewUserRepository(ctrl),
				encoder: encodingmock.NewPasswordEncoder(ctrl),
				signer:  authmock.NewCredentialSigner(ctrl),
			}
			tc.prepare(m)

			transaction := pkgpersistencestub.NewTransaction()
			if tc.transaction != nil {
				transaction = tc.transaction(ctrl)
			}

			clock := pkgtime.NewAdjustableClock()
			srv := service.NewUser(m.repo, m.encoder, m.signer, transaction, clock)

			result, err := srv.Register(clock.Set(context.Background(), now), tc.data)
			tc.expect(t, result, err)
		})
	}
}

func TestUserService_SignIn(t *testing.T) {
	user := &domain.User{
		ID:           domain.UserID{UUID: uuid.New()},
		Name:         "Jane",
		Email:        "jane@example.com",
		PasswordHash: "hash",
	}

	tests := []struct {
		name        string
		credentials service.UserCredentials
		prepare     func(m userServiceMocks)
		expect      func(t *testing.T, result *service.SignInData, err error)
	}{
		{
			name:        "issues_credential_for_user_claims",
			credentials: service.UserCredentials{Email: "Jane@Example.com", Password: "secret"},
			prepare: func(m userServiceMocks) {
				m.repo.EXPECT().FindOne(gomock.Any(), domain.FindUserSpecification{Emails: []string{"jane@example.com"}}).Return(user, nil)
				m.encoder.EXPECT().CompareHash("hash", "secret").Return(true)
				m.signer.EXPECT().Sign(auth.Claims{
					ID:    user.ID.String(),
					Email: "jane@example.com",
					Name:  "Jane",
				}, auth.SignOptions{}).Return(auth.Credential("token"), nil)
			},
			expect: func(t *testing.T, result *service.SignInData, err error) {
				require.NoError(t, err)
				assert.Equal(t, auth.Credential("token"), result.Credential)
				assert.Equal(t, user.ID, result.User.ID)
				assert.Equal(t, "jane@example.com", result.User.Email)
			},
		},
		{
			name:        "rejects_unknown_email",
			credentials: service.UserCredentials{Email: "nobody@example.com", Password: "secret"},
			prepare: func(m userServiceMocks) {
				m.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
			},
			expect: func(t *testing.T, _ *service.SignInData, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidUserCredentials)
			},
		},
		{
			name:        "rejects_wrong_password",
			credentials: service.UserCredentials{Email: "jane@example.com", Password: "wrong"},
			prepare: func(m userServiceMocks) {
				m.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(user, nil)
				m.encoder.EXPECT().CompareHash("hash", "wrong").Return(false)
			},
			expect: func(t *testing.T, _ *service.SignInData, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidUserCredentials)
			},
		},
		{
			name:        "fails_when_signing_fails",
			credentials: service.UserCredentials{Email: "jane@example.com", Password: "secret"},
			prepare: func(m userServiceMocks) {
				m.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(user, nil)
				m.encoder.EXPECT().CompareHash("hash", "secret").Return(true)
				m.signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(auth.Credential(""), auth.ErrSigning)
			},
			expect: func(t *testing.T, _ *service.SignInData, err error) {
				assert.ErrorIs(t, err, auth.ErrSigning)
				assert.NotErrorIs(t, err, service.ErrInvalidUserCredentials)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			m := userServiceMocks{
				repo:    domainmock.NewUserRepository(ctrl),
				encoder: encodingmock.NewPasswordEncoder(ctrl),
				signer:  authmock.NewCredentialSigner(ctrl),
			}
			tc.prepare(m)

			srv := service.NewUser(m.repo, m.encoder, m.signer, pkgpersistencestub.NewTransaction(), pkgtime.NewAdjustableClock())
			result, err := srv.SignIn(context.Background(), tc.credentials)
			tc.expect(t, result, err)
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)

	users := []domain.User{
		{ID: domain.UserID{UUID: uuid.New()}, Name: "A", Email: "a@example.com", PasswordHash: "h1"},
		{ID: domain.UserID{UUID: uuid.New()}, Name: "B", Email: "b@example.com", PasswordHash: "h2"},
	}
	repo := domainmock.NewUserRepository(ctrl)
	repo.EXPECT().Find(gomock.Any(), domain.FindUserSpecification{}).Return(users, nil)

	srv := service.NewUser(
		repo,
		encodingmock.NewPasswordEncoder(ctrl),
		authmock.NewCredentialSigner(ctrl),
		pkgpersistencestub.NewTransaction(),
		pkgtime.NewAdjustableClock(),
	)

	result, err := srv.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, users[0].ID, result[0].ID)
	assert.Equal(t, "b@example.com", result[1].Email)
}
