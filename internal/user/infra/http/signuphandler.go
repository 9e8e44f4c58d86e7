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

const userAlreadyExistsMessage = "User with this email already exists!"

type SignUpHandler struct {
	userService service.User
}

func NewSignUpHandler(userService service.User) SignUpHandler {
	return SignUpHandler{userService: userService}
}

func (h SignUpHandler) Method() string {
	return http.MethodPost
}

func (h SignUpHandler) Path() string {
	return "/users/sign-up"
}

func (h SignUpHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[SignUpIn](), err)
	if err != nil {
		return err
	}

	if err = in.Validate(); err != nil {
		return commonhttp.Reject(w, http.StatusBadRequest, err.Error(), err)
	}

	user, err := h.userService.Register(r.Context(), service.RegisterUserData{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if errors.Is(err, service.ErrUserAlreadyExists) {
		return commonhttp.Reject(w, http.StatusBadRequest, userAlreadyExistsMessage, err)
	}
	if errors.Is(err, service.ErrInvalidUserCredentials) {
		return commonhttp.Reject(w, http.StatusBadRequest, err.Error(), err)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toHTTPUserOut(user))
	return nil
}

type SignUpIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in SignUpIn) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required),
	)
}
