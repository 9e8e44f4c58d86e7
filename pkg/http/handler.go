package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	HandlerFunc func(w ResponseWriter, r *http.Request) error

	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetCookie(cookie *http.Cookie) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}

	// ErrorResponse is the body of every failed response.
	ErrorResponse struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
)

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Error:   true,
		Message: message,
	}
}

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	meta := getHandlerMetadata(ctx)
	if err != nil {
		httpCode := resolveErrorCode(meta, err, w.httpCode)
		body := w.body
		if !w.hasBody {
			body = errorResponseBody(httpCode, err)
		}
		writeJSONResponse(ctx, w.impl, httpCode, body, err)
		return
	}

	if !w.hasBody {
		meta.Code = w.httpCode
		w.impl.WriteHeader(w.httpCode)
		return
	}

	writeJSONResponse(ctx, w.impl, w.httpCode, w.body, nil)
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Panic = &p
	writeJSONResponse(ctx, w.impl, http.StatusInternalServerError, errorResponseBody(http.StatusInternalServerError, nil), nil)
}

func resolveErrorCode(meta *handlerMetadata, err error, explicitCode int) int {
	if explicitCode >= http.StatusBadRequest {
		return explicitCode
	}
	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest
	}
	for _, mapping := range meta.ErrorMapping {
		if mapping.predicate(err) {
			return mapping.code
		}
	}

	return http.StatusInternalServerError
}

func errorResponseBody(httpCode int, err error) ErrorResponse {
	if err != nil && errors.Is(err, ErrParsingError) {
		return NewErrorResponse(err.Error())
	}

	return NewErrorResponse(http.StatusText(httpCode))
}

func writeJSONResponse(ctx context.Context, w http.ResponseWriter, httpCode int, body any, handlerErr error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = handlerErr

	encoded, err := json.Marshal(body)
	if err != nil {
		meta.Code = http.StatusInternalServerError
		meta.Error = errors.Join(handlerErr, fmt.Errorf("encode body: %w", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_, _ = w.Write(encoded)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}

// WriteError writes the error envelope from middlewares that reject a request before its handler runs.
func WriteError(w http.ResponseWriter, r *http.Request, httpCode int, err error) {
	writeJSONResponse(r.Context(), w, httpCode, errorResponseBody(httpCode, err), err)
}
