package user

import (
	"github.com/klwxsrx/media-service/internal/pkg/auth"
	"github.com/klwxsrx/media-service/internal/pkg/cmd"
	"github.com/klwxsrx/media-service/internal/user/app/encoding"
	"github.com/klwxsrx/media-service/internal/user/app/service"
	"github.com/klwxsrx/media-service/internal/user/domain"
	"github.com/klwxsrx/media-service/internal/user/infra"
	"github.com/klwxsrx/media-service/internal/user/infra/http"
	"github.com/klwxsrx/media-service/internal/user/infra/password"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
	"github.com/klwxsrx/media-service/pkg/lazy"
	"github.com/klwxsrx/media-service/pkg/persistence"
	"github.com/klwxsrx/media-service/pkg/sql"
	pkgtime "github.com/klwxsrx/media-service/pkg/time"
)

type DependencyContainer struct {
	UserService lazy.Loader[service.User]

	signUpHandler    lazy.Loader[http.SignUpHandler]
	signInHandler    lazy.Loader[http.SignInHandler]
	listUsersHandler lazy.Loader[http.ListUsersHandler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	signer lazy.Loader[auth.CredentialSigner],
	clock lazy.Loader[pkgtime.Clock],
) DependencyContainer {
	transaction := transactionProvider(db)
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)
	passwordEncoder := passwordEncoderProvider()

	userService := userServiceProvider(passwordEncoder, signer, transaction, clock, sqlContainer)
	return DependencyContainer{
		UserService: userService,
		signUpHandler: lazy.New(func() (http.SignUpHandler, error) {
			return http.NewSignUpHandler(userService.MustLoad()), nil
		}),
		signInHandler: lazy.New(func() (http.SignInHandler, error) {
			return http.NewSignInHandler(userService.MustLoad()), nil
		}),
		listUsersHandler: lazy.New(func() (http.ListUsersHandler, error) {
			return http.NewListUsersHandler(userService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.signUpHandler.MustLoad())
	registry.Register(c.signInHandler.MustLoad())
	registry.Register(c.listUsersHandler.MustLoad())
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

func passwordEncoderProvider() lazy.Loader[encoding.PasswordEncoder] {
	return lazy.New(func() (encoding.PasswordEncoder, error) {
		return password.NewEncoder(password.DefaultCost), nil
	})
}

func userServiceProvider(
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
	signer lazy.Loader[auth.CredentialSigner],
	transaction lazy.Loader[persistence.Transaction],
	clock lazy.Loader[pkgtime.Clock],
	sqlContainer lazy.Loader[infra.SQLContainer],
) lazy.Loader[service.User] {
	return lazy.New(func() (service.User, error) {
		return service.NewUser(
			sqlContainer.MustLoad().UserRepo.MustLoad(),
			passwordEncoder.MustLoad(),
			signer.MustLoad(),
			transaction.MustLoad(),
			clock.MustLoad(),
		), nil
	})
}
