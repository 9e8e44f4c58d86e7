package main

import (
	"context"
	"fmt"

	"github.com/klwxsrx/media-service/internal/file"
	fileinfra "github.com/klwxsrx/media-service/internal/file/infra"
	"github.com/klwxsrx/media-service/internal/pkg/cmd"
	"github.com/klwxsrx/media-service/internal/user"
	pkgcmd "github.com/klwxsrx/media-service/pkg/cmd"
	"github.com/klwxsrx/media-service/pkg/env"
)

func main() {
	if err := env.LoadDotEnv(); err != nil {
		panic(fmt.Errorf("load dotenv: %w", err))
	}

	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	userContainer := user.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.CredentialSigner,
		infra.Clock,
	)
	fileContainer := file.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		fileinfra.NewS3ObjectStorage(ctx),
		infra.Authenticator,
		infra.Clock,
		infra.UploadMaxSize(),
	)

	httpServer := infra.HTTPServer.MustLoad()
	userContainer.MustRegisterHTTPHandlers(httpServer)
	fileContainer.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
