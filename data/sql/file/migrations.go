package file

import (
	"embed"

	"github.com/klwxsrx/media-service/pkg/sql"
)

var Migrations = sql.FSMigrations("file", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
