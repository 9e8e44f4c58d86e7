package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type (
	ServerOption      func(*ServerImpl)
	HandlerOption     func(*mux.Router)
	HandlerMiddleware func(http.Handler) http.Handler
)

type HandlerRegistry interface {
	Register(handler Handler, opts ...HandlerOption)
}

type Server interface {
	HandlerRegistry
	Listener(context.Context) error
	Handler() http.Handler
}

type ServerImpl struct {
	Impl   *http.Server
	router *mux.Router
	wraps  []HandlerMiddleware
}

func NewServer(opts ...ServerOption) *ServerImpl {
	router := withHandlerMetadata(mux.NewRouter())
	srv := &ServerImpl{
		Impl: &http.Server{
			Addr:              DefaultServerAddress,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router: router,
	}

	for _, opt := range opts {
		opt(srv)
	}

	var handler http.Handler = router
	for i := len(srv.wraps) - 1; i >= 0; i-- {
		handler = srv.wraps[i](handler)
	}
	srv.Impl.Handler = handler

	return srv
}

func (s *ServerImpl) Listener(ctx context.Context) error {
	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.Impl.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = s.shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.Impl.Addr, err)
	}

	return nil
}

func (s *ServerImpl) Handler() http.Handler {
	return s.Impl.Handler
}

func (s *ServerImpl) Register(handler Handler, opts ...HandlerOption) {
	router := s.router
	if len(opts) > 0 {
		router = s.router.NewRoute().Subrouter()
		for _, opt := range opts {
			opt(router)
		}
	}

	router.
		Name(getRouteName(handler.Method(), handler.Path())).
		Methods(handler.Method()).
		Path(handler.Path()).
		Handler(httpHandlerWrapper(handler.Handle))
}

func (s *ServerImpl) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	err := s.Impl.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func WithServerAddress(addr string) ServerOption {
	return func(srv *ServerImpl) {
		if addr != "" {
			srv.Impl.Addr = addr
		}
	}
}

func WithHandlerOptions(opts ...HandlerOption) ServerOption {
	return func(srv *ServerImpl) {
		for _, opt := range opts {
			opt(srv.router)
		}
	}
}

// WithServerMiddleware wraps the whole router, so it runs for unmatched routes and preflight requests too.
func WithServerMiddleware(mw HandlerMiddleware) ServerOption {
	return func(srv *ServerImpl) {
		srv.wraps = append(srv.wraps, mw)
	}
}
