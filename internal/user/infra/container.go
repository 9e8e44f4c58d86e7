package infra

import (
	"github.com/klwxsrx/media-service/data/sql/user"
	"github.com/klwxsrx/media-service/internal/pkg/cmd"
	"github.com/klwxsrx/media-service/internal/user/domain"
	"github.com/klwxsrx/media-service/internal/user/infra/sql"
	"github.com/klwxsrx/media-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/media-service/pkg/sql"
)

type SQLContainer struct {
	UserRepo lazy.Loader[domain.UserRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().MustRegister(user.Migrations)

		return SQLContainer{
			UserRepo: userRepoProvider(db),
		}, nil
	})
}

func userRepoProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[domain.UserRepository] {
	return lazy.New(func() (domain.UserRepository, error) {
		return sql.NewUserRepository(db.MustLoad()), nil
	})
}
