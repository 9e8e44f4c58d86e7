package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/klwxsrx/media-service/internal/file/domain"
	pkgsql "github.com/klwxsrx/media-service/pkg/sql"
)

const fileTable = "files"

type fileRepository struct {
	db pkgsql.Client
}

func NewFileRepository(db pkgsql.Client) domain.FileRepository {
	return fileRepository{db: db}
}

func (r fileRepository) NextID() domain.FileID {
	return domain.FileID{UUID: uuid.New()}
}

func (r fileRepository) Store(ctx context.Context, file *domain.File) error {
	tags := pq.StringArray(file.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}

	query, args, err := sq.
		Insert(fileTable).
		Columns(
			"id", "owner_id", "filename", "file_type", "file_url", "tags",
			"is_shared", "priority", "total_views", "created_at", "updated_at",
		).
		Values(
			file.ID, file.OwnerID, file.Filename, string(file.Type), file.URL, tags,
			file.IsShared, file.Priority, file.TotalViews, file.CreatedAt, file.UpdatedAt,
		).
		Suffix(`on conflict (id) do update set
			filename = excluded.filename,
			file_type = excluded.file_type,
			file_url = excluded.file_url,
			tags = excluded.tags,
			is_shared = excluded.is_shared,
			priority = excluded.priority,
			updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r fileRepository) Find(ctx context.Context, spec domain.FindFileSpecification) ([]domain.File, error) {
	query, args, err := r.buildFindQuery(ctx, spec).
		OrderBy("priority", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxFile
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	return toDomainFiles(rows), nil
}

func (r fileRepository) FindOne(ctx context.Context, spec domain.FindFileSpecification) (*domain.File, error) {
	query, args, err := r.buildFindQuery(ctx, spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxFile
	err = r.db.GetContext(ctx, &row, query, args...)
	if pkgsql.IsNoRows(err) {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	file := toDomainFile(row)
	return &file, nil
}

func (r fileRepository) MaxPriority(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query, args, err := sq.
		Select("coalesce(max(priority), 0)").
		From(fileTable).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var priority int
	err = r.db.GetContext(ctx, &priority, query, args...)
	if err != nil {
		return 0, err
	}

	return priority, nil
}

func (r fileRepository) IncrementViews(ctx context.Context, fileID domain.FileID) error {
	query, args, err := sq.
		Update(fileTable).
		Set("total_views", sq.Expr("total_views + 1")).
		Where(sq.Eq{"id": fileID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrFileNotFound
	}

	return nil
}

func (r fileRepository) buildFindQuery(ctx context.Context, spec domain.FindFileSpecification) sq.SelectBuilder {
	qb := sq.
		Select(
			"id", "owner_id", "filename", "file_type", "file_url", "tags",
			"is_shared", "priority", "total_views", "created_at", "updated_at",
		).
		From(fileTable)
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.OwnerIDs) > 0 {
		qb = qb.Where(sq.Eq{"owner_id": spec.OwnerIDs})
	}

	return pkgsql.ForUpdate(ctx, qb)
}

type sqlxFile struct {
	ID         domain.FileID  `db:"id"`
	OwnerID    uuid.UUID      `db:"owner_id"`
	Filename   string         `db:"filename"`
	FileType   string         `db:"file_type"`
	FileURL    string         `db:"file_url"`
	Tags       pq.StringArray `db:"tags"`
	IsShared   bool           `db:"is_shared"`
	Priority   int            `db:"priority"`
	TotalViews int64          `db:"total_views"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}
