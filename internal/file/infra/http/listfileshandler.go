package http

import (
	"net/http"

	"github.com/klwxsrx/media-service/internal/file/app/service"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

type ListFilesHandler struct {
	fileService service.File
}

func NewListFilesHandler(fileService service.File) ListFilesHandler {
	return ListFilesHandler{fileService: fileService}
}

func (h ListFilesHandler) Method() string {
	return http.MethodGet
}

func (h ListFilesHandler) Path() string {
	return "/files/list/details"
}

func (h ListFilesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	files, err := h.fileService.ListOwned(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toHTTPFilesOut(files))
	return nil
}
