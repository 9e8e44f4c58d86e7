package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/media-service/pkg/strings"
)

type (
	DataExtractor[T any] func(*http.Request) (T, error)

	supportedParsingTypes interface {
		strings.SupportedValueParsingTypes | strings.SupportedPointerParsingTypes
	}

	FormFile struct {
		File   multipart.File
		Header *multipart.FileHeader
	}
)

var (
	ErrParsingError = errors.New("parsing error")

	ErrRequestTooLarge = errors.New("request body too large")
)

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := extractor(r)
	if err != nil {
		return nil
	}

	return &result
}

func PathParameter[T supportedParsingTypes](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		paramValue, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](paramValue)
	}
}

func QueryParameter[T supportedParsingTypes](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](value)
	}
}

func Header[T supportedParsingTypes](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		header := r.Header.Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](header)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var result T
		err := json.NewDecoder(r.Body).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

// MultipartFile reads the named file part, rejecting bodies above maxSize bytes with ErrRequestTooLarge.
func MultipartFile(field string, maxSize int64) DataExtractor[FormFile] {
	return func(r *http.Request) (FormFile, error) {
		err := parseMultipartForm(r, maxSize)
		if err != nil {
			return FormFile{}, err
		}

		file, header, err := r.FormFile(field)
		if err != nil {
			RemoveMultipartForm(r)
			return FormFile{}, fmt.Errorf("%w: form file %s: %w", ErrParsingError, field, err)
		}
		if header.Size > maxSize {
			_ = file.Close()
			RemoveMultipartForm(r)
			return FormFile{}, fmt.Errorf("%w: form file %s is %d bytes", ErrRequestTooLarge, field, header.Size)
		}

		return FormFile{File: file, Header: header}, nil
	}
}

// RemoveMultipartForm deletes temporary files of a parsed multipart form.
// Handlers behind middleware see a request copy, so the server cannot clean them up.
func RemoveMultipartForm(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

func MultipartValues(field string) DataExtractor[[]string] {
	return func(r *http.Request) ([]string, error) {
		if r.MultipartForm == nil {
			return nil, fmt.Errorf("%w: multipart form is not parsed", ErrParsingError)
		}

		return r.MultipartForm.Value[field], nil
	}
}

func parseMultipartForm(r *http.Request, maxSize int64) error {
	if r.MultipartForm != nil {
		return nil
	}

	const formOverhead = 1 << 20
	r.Body = http.MaxBytesReader(nil, r.Body, maxSize+formOverhead)

	err := r.ParseMultipartForm(maxSize)
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	}
	if err != nil {
		return fmt.Errorf("%w: parse multipart form: %w", ErrParsingError, err)
	}

	return nil
}

func parseTypedValueImpl[T supportedParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
