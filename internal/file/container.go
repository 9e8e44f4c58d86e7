package file

import (
	"net/http"

	"github.com/klwxsrx/media-service/internal/file/app/service"
	"github.com/klwxsrx/media-service/internal/file/app/storage"
	"github.com/klwxsrx/media-service/internal/file/domain"
	"github.com/klwxsrx/media-service/internal/file/infra"
	filehttp "github.com/klwxsrx/media-service/internal/file/infra/http"
	"github.com/klwxsrx/media-service/internal/pkg/auth"
	"github.com/klwxsrx/media-service/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/media-service/internal/pkg/http"
	pkgauth "github.com/klwxsrx/media-service/pkg/auth"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
	"github.com/klwxsrx/media-service/pkg/lazy"
	"github.com/klwxsrx/media-service/pkg/persistence"
	"github.com/klwxsrx/media-service/pkg/sql"
	pkgtime "github.com/klwxsrx/media-service/pkg/time"
)

type DependencyContainer struct {
	FileService lazy.Loader[service.File]

	authenticator lazy.Loader[auth.Authenticator]

	uploadFileHandler       lazy.Loader[filehttp.UploadFileHandler]
	getFileHandler          lazy.Loader[filehttp.GetFileHandler]
	listFilesHandler        lazy.Loader[filehttp.ListFilesHandler]
	updatePrioritiesHandler lazy.Loader[filehttp.UpdatePrioritiesHandler]
	registerViewHandler     lazy.Loader[filehttp.RegisterViewHandler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	objectStorage lazy.Loader[storage.ObjectStorage],
	authenticator lazy.Loader[auth.Authenticator],
	clock lazy.Loader[pkgtime.Clock],
	uploadMaxSize int64,
) DependencyContainer {
	transaction := transactionProvider(db)
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)

	fileService := fileServiceProvider(objectStorage, transaction, clock, sqlContainer)
	return DependencyContainer{
		FileService:   fileService,
		authenticator: authenticator,
		uploadFileHandler: lazy.New(func() (filehttp.UploadFileHandler, error) {
			return filehttp.NewUploadFileHandler(fileService.MustLoad(), uploadMaxSize), nil
		}),
		getFileHandler: lazy.New(func() (filehttp.GetFileHandler, error) {
			return filehttp.NewGetFileHandler(fileService.MustLoad()), nil
		}),
		listFilesHandler: lazy.New(func() (filehttp.ListFilesHandler, error) {
			return filehttp.NewListFilesHandler(fileService.MustLoad()), nil
		}),
		updatePrioritiesHandler: lazy.New(func() (filehttp.UpdatePrioritiesHandler, error) {
			return filehttp.NewUpdatePrioritiesHandler(fileService.MustLoad()), nil
		}),
		registerViewHandler: lazy.New(func() (filehttp.RegisterViewHandler, error) {
			return filehttp.NewRegisterViewHandler(fileService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	opts := []pkghttp.HandlerOption{
		commonhttp.WithBearerAuth(c.authenticator.MustLoad()),
		pkghttp.WithErrorMapping(map[int][]error{
			http.StatusUnauthorized: {pkgauth.ErrUnauthenticated},
			http.StatusForbidden:    {pkgauth.ErrPermissionDenied},
		}),
	}

	registry.Register(c.uploadFileHandler.MustLoad(), opts...)
	registry.Register(c.listFilesHandler.MustLoad(), opts...)
	registry.Register(c.updatePrioritiesHandler.MustLoad(), opts...)
	registry.Register(c.registerViewHandler.MustLoad(), opts...)
	registry.Register(c.getFileHandler.MustLoad(), opts...)
}

func transactionProvider(db lazy.Loader[sql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		return sql.NewTransaction(
			db.MustLoad(),
			domain.Name,
			nil,
		), nil
	})
}

func fileServiceProvider(
	objectStorage lazy.Loader[storage.ObjectStorage],
	transaction lazy.Loader[persistence.Transaction],
	clock lazy.Loader[pkgtime.Clock],
	sqlContainer lazy.Loader[infra.SQLContainer],
) lazy.Loader[service.File] {
	return lazy.New(func() (service.File, error) {
		return service.NewFile(
			sqlContainer.MustLoad().FileRepo.MustLoad(),
			objectStorage.MustLoad(),
			auth.NewPermissionService(),
			transaction.MustLoad(),
			clock.MustLoad(),
		), nil
	})
}
