package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/klwxsrx/media-service/internal/file/app/service"
	commonhttp "github.com/klwxsrx/media-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

const (
	DefaultUploadMaxSize = 10 << 20

	fileField = "file"
	tagsField = "tags"

	invalidFileTypeMessage = "Invalid file type. Only image and video files are allowed."
)

type UploadFileHandler struct {
	fileService service.File
	maxSize     int64
}

func NewUploadFileHandler(fileService service.File, maxSize int64) UploadFileHandler {
	if maxSize <= 0 {
		maxSize = DefaultUploadMaxSize
	}

	return UploadFileHandler{fileService: fileService, maxSize: maxSize}
}

func (h UploadFileHandler) Method() string {
	return http.MethodPost
}

func (h UploadFileHandler) Path() string {
	return "/files/upload"
}

func (h UploadFileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	defer pkghttp.RemoveMultipartForm(r)

	formFile, err := pkghttp.ParseRequest(r, pkghttp.MultipartFile(fileField, h.maxSize), err)
	if errors.Is(err, pkghttp.ErrRequestTooLarge) {
		message := fmt.Sprintf("File too large. Maximum size is %d bytes.", h.maxSize)
		return commonhttp.Reject(w, http.StatusRequestEntityTooLarge, message, err)
	}
	tags, err := pkghttp.ParseRequest(r, pkghttp.MultipartValues(tagsField), err)
	if err != nil {
		return err
	}
	defer formFile.File.Close()

	file, err := h.fileService.Upload(r.Context(), service.UploadFileData{
		Filename:    formFile.Header.Filename,
		ContentType: formFile.Header.Header.Get("Content-Type"),
		Size:        formFile.Header.Size,
		Content:     formFile.File,
		Tags:        splitTags(tags),
	})
	if errors.Is(err, service.ErrUnsupportedFileType) {
		return commonhttp.Reject(w, http.StatusBadRequest, invalidFileTypeMessage, err)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toHTTPFileOut(file))
	return nil
}

func splitTags(values []string) []string {
	var result []string
	for _, value := range values {
		result = append(result, strings.Split(value, ",")...)
	}

	return result
}
