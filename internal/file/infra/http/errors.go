package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/media-service/internal/file/app/service"
	commonhttp "github.com/klwxsrx/media-service/internal/pkg/http"
	pkgauth "github.com/klwxsrx/media-service/pkg/auth"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

const (
	fileNotFoundMessage     = "File not found"
	fileAccessDeniedMessage = "You do not have access to this file"
)

func rejectFileError(w pkghttp.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, service.ErrFileNotFound):
		return commonhttp.Reject(w, http.StatusNotFound, fileNotFoundMessage, err)
	case errors.Is(err, pkgauth.ErrPermissionDenied):
		return commonhttp.Reject(w, http.StatusForbidden, fileAccessDeniedMessage, err)
	default:
		return err
	}
}
