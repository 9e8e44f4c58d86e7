package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/media-service/internal/pkg/auth"
	"github.com/klwxsrx/media-service/internal/user/app/service"
	servicemock "github.com/klwxsrx/media-service/internal/user/app/service/mock"
	"github.com/klwxsrx/media-service/internal/user/domain"
	userhttp "github.com/klwxsrx/media-service/internal/user/infra/http"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

func newTestServer(userService service.User) http.Handler {
	srv := pkghttp.NewServer()
	srv.Register(userhttp.NewSignUpHandler(userService))
	srv.Register(userhttp.NewSignInHandler(userService))
	srv.Register(userhttp.NewListUsersHandler(userService))
	return srv.Handler()
}

func TestUserHandlers(t *testing.T) {
	user := &service.UserData{
		ID:        domain.UserID{UUID: uuid.MustParse("4b1f3a3e-7c55-4c5e-9d2c-2f0d7f5b8a11")},
		Name:      "Jane",
		Email:     "jane@example.com",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	userJSON := `{"_id":"4b1f3a3e-7c55-4c5e-9d2c-2f0d7f5b8a11","name":"Jane","email":"jane@example.com",` +
		`"createdAt":"2024-05-01T12:00:00Z","updatedAt":"2024-05-01T12:00:00Z"}`

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		prepare      func(m *servicemock.User)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "sign_up",
			method: http.MethodPost,
			path:   "/users/sign-up",
			body:   `{"name":"Jane","email":"jane@example.com","password":"secret"}`,
			prepare: func(m *servicemock.User) {
				m.EXPECT().Register(gomock.Any(), service.RegisterUserData{
					Name:     "Jane",
					Email:    "jane@example.com",
					Password: "secret",
				}).Return(user, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: userJSON,
		},
		{
			name:         "sign_up_invalid_email",
			method:       http.MethodPost,
			path:         "/users/sign-up",
			body:         `{"name":"Jane","email":"not-an-email","password":"secret"}`,
			prepare:      func(*servicemock.User) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":true,"message":"email: must be a valid email address."}`,
		},
		{
			name:   "sign_up_duplicate_email",
			method: http.MethodPost,
			path:   "/users/sign-up",
			body:   `{"name":"Jane","email":"jane@example.com","password":"secret"}`,
			prepare: func(m *servicemock.User) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":true,"message":"User with this email already exists!"}`,
		},
		{
			name:   "sign_up_unexpected_error",
			method: http.MethodPost,
			path:   "/users/sign-up",
			body:   `{"name":"Jane","email":"jane@example.com","password":"secret"}`,
			prepare: func(m *servicemock.User) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("unexpected"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":true,"message":"Internal Server Error"}`,
		},
		{
			name:   "sign_in",
			method: http.MethodPost,
			path:   "/users/sign-in",
			body:   `{"email":"jane@example.com","password":"secret"}`,
			prepare: func(m *servicemock.User) {
				m.EXPECT().SignIn(gomock.Any(), service.UserCredentials{Email: "jane@example.com", Password: "secret"}).
					Return(&service.SignInData{Credential: auth.Credential("token"), User: *user}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"token":"token","data":` + userJSON + `}`,
		},
		{
			name:   "sign_in_wrong_credentials",
			method: http.MethodPost,
			path:   "/users/sign-in",
			body:   `{"email":"jane@example.com","password":"wrong"}`,
			prepare: func(m *servicemock.User) {
				m.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidUserCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":true,"message":"Email or password is incorrect"}`,
		},
		{
			name:         "sign_in_malformed_body",
			method:       http.MethodPost,
			path:         "/users/sign-in",
			body:         `{`,
			prepare:      func(*servicemock.User) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/users/list",
			prepare: func(m *servicemock.User) {
				m.EXPECT().List(gomock.Any()).Return([]service.UserData{*user}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[` + userJSON + `]`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			userService := servicemock.NewUser(ctrl)
			tc.prepare(userService)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			newTestServer(userService).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
				return
			}

			var body pkghttp.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Error)
		})
	}
}
