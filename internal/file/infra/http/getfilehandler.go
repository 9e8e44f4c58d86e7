package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/internal/file/app/service"
	"github.com/klwxsrx/media-service/internal/file/domain"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

type GetFileHandler struct {
	fileService service.File
}

func NewGetFileHandler(fileService service.File) GetFileHandler {
	return GetFileHandler{fileService: fileService}
}

func (h GetFileHandler) Method() string {
	return http.MethodGet
}

func (h GetFileHandler) Path() string {
	return "/files/{id}"
}

func (h GetFileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	fileID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("id"), err)
	if err != nil {
		return err
	}

	file, err := h.fileService.Get(r.Context(), domain.FileID{UUID: fileID})
	if err != nil {
		return rejectFileError(w, err)
	}

	w.SetJSONBody(toHTTPFileOut(file))
	return nil
}
