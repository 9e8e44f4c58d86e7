package http

import (
	"net/http"

	"github.com/klwxsrx/media-service/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) HandlerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			fields := log.Fields{
				"routeName":    getRequestRouteName(r),
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			}
			if meta.Auth != nil && meta.Auth.Principal() != nil {
				principal := *meta.Auth.Principal()
				fields["authPrincipalType"] = principal.Type()
				if id := principal.ID(); id != nil {
					fields["authPrincipalID"] = *id
				}
			}

			loggerWithFields := logger.With(fields)
			switch {
			case meta.Panic != nil:
				loggerWithFields.
					WithField("panic", log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					}).
					Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				loggerWithFields.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with error")
			case meta.Error != nil:
				loggerWithFields.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled with failure")
			default:
				loggerWithFields.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
