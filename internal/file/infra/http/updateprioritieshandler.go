package http

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/internal/file/app/service"
	"github.com/klwxsrx/media-service/internal/file/domain"
	commonhttp "github.com/klwxsrx/media-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

const priorityUpdatedMessage = "Priority Updated Successfully"

type UpdatePrioritiesHandler struct {
	fileService service.File
}

func NewUpdatePrioritiesHandler(fileService service.File) UpdatePrioritiesHandler {
	return UpdatePrioritiesHandler{fileService: fileService}
}

func (h UpdatePrioritiesHandler) Method() string {
	return http.MethodPut
}

func (h UpdatePrioritiesHandler) Path() string {
	return "/files/update-priority"
}

func (h UpdatePrioritiesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[PriorityUpdatesIn](), err)
	if err != nil {
		return err
	}

	if err = in.Validate(); err != nil {
		return commonhttp.Reject(w, http.StatusBadRequest, err.Error(), err)
	}

	updates := make([]service.PriorityUpdate, 0, len(in))
	for _, item := range in {
		updates = append(updates, service.PriorityUpdate{
			FileID:   domain.FileID{UUID: uuid.MustParse(item.ID)},
			Priority: item.Priority,
		})
	}

	err = h.fileService.UpdatePriorities(r.Context(), updates)
	if errors.Is(err, service.ErrInvalidPriorities) {
		return commonhttp.Reject(w, http.StatusBadRequest, err.Error(), err)
	}
	if err != nil {
		return rejectFileError(w, err)
	}

	w.SetJSONBody(messageOut{Message: priorityUpdatedMessage})
	return nil
}

type (
	PriorityUpdatesIn []PriorityUpdateIn

	PriorityUpdateIn struct {
		ID       string `json:"_id"`
		Priority int    `json:"priority"`
	}
)

func (in PriorityUpdatesIn) Validate() error {
	errs := validation.Errors{}
	for i, item := range in {
		errs[strconv.Itoa(i)] = item.Validate()
	}

	return errs.Filter()
}

func (in PriorityUpdateIn) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ID, validation.Required, is.UUID),
		validation.Field(&in.Priority, validation.Min(0)),
	)
}
