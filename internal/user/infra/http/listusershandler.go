package http

import (
	"net/http"

	"github.com/klwxsrx/media-service/internal/user/app/service"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

type ListUsersHandler struct {
	userService service.User
}

func NewListUsersHandler(userService service.User) ListUsersHandler {
	return ListUsersHandler{userService: userService}
}

func (h ListUsersHandler) Method() string {
	return http.MethodGet
}

func (h ListUsersHandler) Path() string {
	return "/users/list"
}

func (h ListUsersHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	users, err := h.userService.List(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toHTTPUsersOut(users))
	return nil
}
