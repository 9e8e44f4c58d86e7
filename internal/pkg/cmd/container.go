package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/klwxsrx/media-service/internal/pkg/auth"
	"github.com/klwxsrx/media-service/internal/pkg/auth/jwt"
	commonhttp "github.com/klwxsrx/media-service/internal/pkg/http"
	"github.com/klwxsrx/media-service/pkg/cmd"
	"github.com/klwxsrx/media-service/pkg/env"
	"github.com/klwxsrx/media-service/pkg/http"
	"github.com/klwxsrx/media-service/pkg/lazy"
	"github.com/klwxsrx/media-service/pkg/log"
	"github.com/klwxsrx/media-service/pkg/metric"
	"github.com/klwxsrx/media-service/pkg/observability"
	"github.com/klwxsrx/media-service/pkg/sql"
	pkgtime "github.com/klwxsrx/media-service/pkg/time"
)

const (
	defaultCredentialExpiry = 24 * time.Hour
	defaultUploadMaxSize    = 10 << 20
)

var errEmptyCredentialSecret = errors.New("JWT_SECRET must not be empty")

type InfrastructureContainer struct {
	HTTPServer       lazy.Loader[http.Server]
	DBMigrations     lazy.Loader[SQLMigrations]
	DB               lazy.Loader[sql.Database]
	CredentialSigner lazy.Loader[auth.CredentialSigner]
	Authenticator    lazy.Loader[auth.Authenticator]
	Clock            lazy.Loader[pkgtime.Clock]
	Metrics          lazy.Loader[metric.Metrics]
	Logger           lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)
	signer := credentialSignerProvider()

	return &InfrastructureContainer{
		HTTPServer:       httpServerProvider(observer, metrics, logger),
		DBMigrations:     sqlMigrationsProvider(ctx, db, logger),
		DB:               db,
		CredentialSigner: signer,
		Authenticator:    authenticatorProvider(signer, metrics, logger),
		Clock:            clockProvider(),
		Metrics:          metrics,
		Logger:           logger,
	}
}

// UploadMaxSize is the largest accepted upload in bytes.
func (i *InfrastructureContainer) UploadMaxSize() int64 {
	maxSize := env.Must(env.ParseOptional[*int64]("UPLOAD_MAX_SIZE"))
	if maxSize == nil || *maxSize <= 0 {
		return defaultUploadMaxSize
	}

	return *maxSize
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return metric.NewStub(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewAdjustableClock(), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.Parse[int]("SQL_MAX_OPEN_CONNECTIONS")),
			MaxIdleConnections: env.Must(env.Parse[int]("SQL_MAX_IDLE_CONNECTIONS")),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[*time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func credentialSignerProvider() lazy.Loader[auth.CredentialSigner] {
	return lazy.New(func() (auth.CredentialSigner, error) {
		secret := env.Must(env.Parse[string]("JWT_SECRET"))
		if secret == "" {
			panic(errEmptyCredentialSecret)
		}

		expiry := defaultCredentialExpiry
		customExpiry := env.Must(env.ParseOptional[*string]("JWT_EXPIRATION_TIME"))
		if customExpiry != nil {
			var err error
			expiry, err = jwt.ParseExpiry(*customExpiry)
			if err != nil {
				panic(fmt.Errorf("parse JWT_EXPIRATION_TIME: %w", err))
			}
		}

		return jwt.NewSigner(jwt.Config{
			Secret: secret,
			Expiry: expiry,
		}), nil
	})
}

func authenticatorProvider(
	signer lazy.Loader[auth.CredentialSigner],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[auth.Authenticator] {
	return lazy.New(func() (auth.Authenticator, error) {
		return auth.NewAuthenticator(
			signer.MustLoad(),
			metrics.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := env.Must(env.ParseOptional[*string]("HTTP_ADDRESS"))
		if address == nil {
			address = new(string)
		}

		return http.NewServer(
			http.WithServerAddress(*address),
			http.WithCORS(commonhttp.CORSConfig()),
			http.WithHandlerOptions(
				http.WithHealthCheck(nil),
				http.WithObservability(
					observer.MustLoad(),
					http.RequestIDHeaderExtractor(commonhttp.RequestIDHeader),
					http.RequestIDRandomUUIDExtractor(),
				),
				http.WithMetrics(metrics.MustLoad()),
				http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
			),
		), nil
	})
}
