package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/media-service/pkg/auth"
)

type testPrincipal struct {
	id string
}

func (p testPrincipal) Type() auth.PrincipalType {
	return "test"
}

func (p testPrincipal) ID() *string {
	return &p.id
}

type otherPrincipal struct{}

func (p otherPrincipal) Type() auth.PrincipalType {
	return "other"
}

func (p otherPrincipal) ID() *string {
	return nil
}

func TestGetPrincipal(t *testing.T) {
	tests := []struct {
		name        string
		ctx         context.Context
		expected    testPrincipal
		expectedErr error
	}{
		{
			name:        "no_authentication",
			ctx:         context.Background(),
			expectedErr: auth.ErrUnauthenticated,
		},
		{
			name:        "anonymous_authentication",
			ctx:         auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{}),
			expectedErr: auth.ErrUnauthenticated,
		},
		{
			name:        "principal_of_another_type",
			ctx:         auth.WithAuthentication(context.Background(), auth.NewAuthentication(otherPrincipal{})),
			expectedErr: auth.ErrUnauthenticated,
		},
		{
			name:     "authenticated",
			ctx:      auth.WithAuthentication(context.Background(), auth.NewAuthentication(testPrincipal{id: "42"})),
			expected: testPrincipal{id: "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := auth.GetPrincipal[testPrincipal](tt.ctx)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, principal)
		})
	}
}

func TestIsAuthenticated(t *testing.T) {
	_, err := auth.IsAuthenticated(context.Background())
	require.Error(t, err)

	ok, err := auth.IsAuthenticated(auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{}))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = auth.IsAuthenticated(auth.WithAuthentication(context.Background(), auth.NewAuthentication(testPrincipal{id: "1"})))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPermissionService_Check(t *testing.T) {
	errCheck := errors.New("check failed")
	isOwner := func(ownerID string) auth.Permission[testPrincipal] {
		return func(a auth.Authentication[testPrincipal]) (bool, error) {
			if !a.IsAuthenticated() {
				return false, nil
			}
			return *(*a.Principal()).ID() == ownerID, nil
		}
	}

	authenticated := auth.WithAuthentication(context.Background(), auth.NewAuthentication(testPrincipal{id: "owner"}))
	tests := []struct {
		name        string
		ctx         context.Context
		permission  auth.Permission[testPrincipal]
		expectedErr error
	}{
		{
			name:        "no_authentication_in_context",
			ctx:         context.Background(),
			permission:  isOwner("owner"),
			expectedErr: auth.ErrUnauthenticated,
		},
		{
			name:       "allowed",
			ctx:        authenticated,
			permission: isOwner("owner"),
		},
		{
			name:        "denied",
			ctx:         authenticated,
			permission:  isOwner("someone else"),
			expectedErr: auth.ErrPermissionDenied,
		},
		{
			name: "permission_error",
			ctx:  authenticated,
			permission: func(auth.Authentication[testPrincipal]) (bool, error) {
				return false, errCheck
			},
			expectedErr: errCheck,
		},
	}

	service := auth.NewPermissionService[testPrincipal]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Check(tt.ctx, tt.permission)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
