package http

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	commonhttp "github.com/klwxsrx/media-service/internal/pkg/http"
	"github.com/klwxsrx/media-service/internal/user/app/service"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

const invalidCredentialsMessage = "Email or password is incorrect"

type SignInHandler struct {
	userService service.User
}

func NewSignInHandler(userService service.User) SignInHandler {
	return SignInHandler{userService: userService}
}

func (h SignInHandler) Method() string {
	return http.MethodPost
}

func (h SignInHandler) Path() string {
	return "/users/sign-in"
}

func (h SignInHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[SignInIn](), err)
	if err != nil {
		return err
	}

	if err = in.Validate(); err != nil {
		return commonhttp.Reject(w, http.StatusBadRequest, err.Error(), err)
	}

	result, err := h.userService.SignIn(r.Context(), service.UserCredentials{
		Email:    in.Email,
		Password: in.Password,
	})
	if errors.Is(err, service.ErrInvalidUserCredentials) {
		return commonhttp.Reject(w, http.StatusBadRequest, invalidCredentialsMessage, err)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(signInOut{
		Token: string(result.Credential),
		Data:  toHTTPUserOut(&result.User),
	})
	return nil
}

type (
	SignInIn struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	signInOut struct {
		Token string  `json:"token"`
		Data  UserOut `json:"data"`
	}
)

func (in SignInIn) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required),
	)
}
