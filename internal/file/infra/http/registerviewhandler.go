package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/internal/file/app/service"
	"github.com/klwxsrx/media-service/internal/file/domain"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

const viewUpdatedMessage = "View Updated Successfully"

type RegisterViewHandler struct {
	fileService service.File
}

func NewRegisterViewHandler(fileService service.File) RegisterViewHandler {
	return RegisterViewHandler{fileService: fileService}
}

func (h RegisterViewHandler) Method() string {
	return http.MethodGet
}

func (h RegisterViewHandler) Path() string {
	return "/files/update-view/{id}"
}

func (h RegisterViewHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	fileID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("id"), err)
	if err != nil {
		return err
	}

	err = h.fileService.RegisterView(r.Context(), domain.FileID{UUID: fileID})
	if err != nil {
		return rejectFileError(w, err)
	}

	w.SetJSONBody(messageOut{Message: viewUpdatedMessage})
	return nil
}
