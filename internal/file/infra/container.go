package infra

import (
	"context"
	"fmt"

	"github.com/klwxsrx/media-service/data/sql/file"
	"github.com/klwxsrx/media-service/internal/file/app/storage"
	"github.com/klwxsrx/media-service/internal/file/domain"
	"github.com/klwxsrx/media-service/internal/file/infra/s3"
	"github.com/klwxsrx/media-service/internal/file/infra/sql"
	"github.com/klwxsrx/media-service/internal/pkg/cmd"
	"github.com/klwxsrx/media-service/pkg/env"
	"github.com/klwxsrx/media-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/media-service/pkg/sql"
)

type SQLContainer struct {
	FileRepo lazy.Loader[domain.FileRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().MustRegister(file.Migrations)

		return SQLContainer{
			FileRepo: fileRepoProvider(db),
		}, nil
	})
}

// NewS3ObjectStorage reads the S3_* environment on first load.
func NewS3ObjectStorage(ctx context.Context) lazy.Loader[storage.ObjectStorage] {
	return lazy.New(func() (storage.ObjectStorage, error) {
		cfg := s3.Config{
			Endpoint:  env.Must(env.Parse[string]("S3_ENDPOINT")),
			Region:    env.Must(env.Parse[string]("S3_REGION")),
			Bucket:    env.Must(env.Parse[string]("S3_BUCKET")),
			AccessKey: env.Must(env.Parse[string]("S3_ACCESS_KEY")),
			SecretKey: env.Must(env.Parse[string]("S3_SECRET_KEY")),
		}
		publicURL := env.Must(env.ParseOptional[*string]("S3_PUBLIC_URL"))
		if publicURL != nil {
			cfg.PublicURL = *publicURL
		}

		objectStorage, err := s3.NewObjectStorage(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("init s3 object storage: %w", err)
		}

		return objectStorage, nil
	})
}

func fileRepoProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[domain.FileRepository] {
	return lazy.New(func() (domain.FileRepository, error) {
		return sql.NewFileRepository(db.MustLoad()), nil
	})
}
