package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/internal/user/domain"
	pkgsql "github.com/klwxsrx/media-service/pkg/sql"
)

const userTable = "users"

type userRepository struct {
	db pkgsql.Client
}

func NewUserRepository(db pkgsql.Client) domain.UserRepository {
	return userRepository{db: db}
}

func (r userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r userRepository) Store(ctx context.Context, user *domain.User) error {
	query, args, err := sq.
		Insert(userTable).
		Columns("id", "name", "email", "password_hash", "created_at", "updated_at").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix(`on conflict (id) do update set
			name = excluded.name,
			email = excluded.email,
			password_hash = excluded.password_hash,
			updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r userRepository) Find(ctx context.Context, spec domain.FindUserSpecification) ([]domain.User, error) {
	query, args, err := r.buildFindQuery(ctx, spec).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxUser
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	return toDomainUsers(rows), nil
}

func (r userRepository) FindOne(ctx context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	query, args, err := r.buildFindQuery(ctx, spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if pkgsql.IsNoRows(err) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user := toDomainUser(row)
	return &user, nil
}

func (r userRepository) buildFindQuery(ctx context.Context, spec domain.FindUserSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "name", "email", "password_hash", "created_at", "updated_at").
		From(userTable)
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.Emails) > 0 {
		qb = qb.Where(sq.Eq{"lower(email)": lowerAll(spec.Emails)})
	}

	return pkgsql.ForUpdate(ctx, qb)
}

type sqlxUser struct {
	ID           domain.UserID `db:"id"`
	Name         string        `db:"name"`
	Email        string        `db:"email"`
	PasswordHash string        `db:"password_hash"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}
