package user

import (
	"embed"

	"github.com/klwxsrx/media-service/pkg/sql"
)

var Migrations = sql.FSMigrations("user", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
