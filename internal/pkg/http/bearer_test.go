package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/media-service/internal/pkg/auth"
	authjwt "github.com/klwxsrx/media-service/internal/pkg/auth/jwt"
	commonhttp "github.com/klwxsrx/media-service/internal/pkg/http"
	pkgauth "github.com/klwxsrx/media-service/pkg/auth"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
	"github.com/klwxsrx/media-service/pkg/log"
	"github.com/klwxsrx/media-service/pkg/metric"
)

const userID = "4f0bd1b8-9ba6-4a6c-9d43-1c6dd1b1e9a1"

type whoAmIHandler struct {
	seenAuthorization *string
}

func (h whoAmIHandler) Method() string {
	return http.MethodGet
}

func (h whoAmIHandler) Path() string {
	return "/whoami"
}

func (h whoAmIHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := pkgauth.GetPrincipal[auth.Principal](r.Context())
	if err != nil {
		return err
	}

	*h.seenAuthorization = r.Header.Get(auth.AuthorizationHeader)
	w.SetJSONBody(map[string]string{
		"id":    principal.UserID.String(),
		"email": principal.Email,
	})
	return nil
}

func TestWithBearerAuth(t *testing.T) {
	signer := authjwt.NewSigner(authjwt.Config{Secret: "secret", Expiry: time.Hour})
	authenticator := auth.NewAuthenticator(signer, metric.NewStub(), log.New(log.LevelDisabled))
	claims := auth.Claims{ID: userID, Email: "jane@example.com", Name: "Jane"}

	var seenAuthorization string
	srv := pkghttp.NewServer(pkghttp.WithCORS(commonhttp.CORSConfig()))
	srv.Register(whoAmIHandler{seenAuthorization: &seenAuthorization}, commonhttp.WithBearerAuth(authenticator))

	valid, err := signer.Sign(claims, auth.SignOptions{})
	require.NoError(t, err)
	expiry := -time.Minute
	expired, err := signer.Sign(claims, auth.SignOptions{Expiry: &expiry})
	require.NoError(t, err)
	notUUID, err := signer.Sign(auth.Claims{ID: "42", Email: "jane@example.com"}, auth.SignOptions{})
	require.NoError(t, err)
	expiredNotUUID, err := signer.Sign(auth.Claims{ID: "42", Email: "jane@example.com"}, auth.SignOptions{Expiry: &expiry})
	require.NoError(t, err)
	noEmail, err := signer.Sign(auth.Claims{ID: userID}, auth.SignOptions{})
	require.NoError(t, err)

	tests := []struct {
		name                string
		authorization       string
		expectedCode        int
		expectedBody        string
		expectRefreshedCred bool
	}{
		{
			name:         "no_header",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":true,"message":"Unauthorized"}`,
		},
		{
			name:          "invalid_credential",
			authorization: "Bearer garbage",
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"error":true,"message":"Unauthorized"}`,
		},
		{
			name:          "id_is_not_a_user_id",
			authorization: "Bearer " + string(notUUID),
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "expired_credential_with_non_uuid_id",
			authorization: "Bearer " + string(expiredNotUUID),
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"error":true,"message":"Unauthorized"}`,
		},
		{
			name:          "credential_without_email",
			authorization: "Bearer " + string(noEmail),
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"error":true,"message":"Unauthorized"}`,
		},
		{
			name:          "valid_credential",
			authorization: "Bearer " + string(valid),
			expectedCode:  http.StatusOK,
			expectedBody:  `{"id":"` + userID + `","email":"jane@example.com"}`,
		},
		{
			name:                "expired_credential",
			authorization:       "Bearer " + string(expired),
			expectedCode:        http.StatusOK,
			expectedBody:        `{"id":"` + userID + `","email":"jane@example.com"}`,
			expectRefreshedCred: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenAuthorization = ""
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.authorization != "" {
				req.Header.Set(auth.AuthorizationHeader, tt.authorization)
			}

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

			responseAuthorization := rec.Header().Get(auth.AuthorizationHeader)
			if !tt.expectRefreshedCred {
				assert.Empty(t, responseAuthorization)
				return
			}

			require.NotEmpty(t, responseAuthorization)
			assert.NotEqual(t, tt.authorization, responseAuthorization)
			assert.Equal(t, responseAuthorization, seenAuthorization)
		})
	}
}
