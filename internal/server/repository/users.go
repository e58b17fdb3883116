// Package repository реализует доступ к PostgreSQL для сервисного слоя.
//
// Репозитории не содержат бизнес-логики: они переводят ошибки базы в
// доменные (serr.ErrNotFound, serr.ErrAlreadyExists, serr.ErrInternal)
// и больше ничего не решают.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
)

const pgUniqueViolation = "23505"

const userColumns = `id, email, password_digest, role, created_at, updated_at`

type UsersRepository struct {
	db *sqlx.DB
}

func NewUsersRepository(db *sqlx.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create добавляет пользователя с ролью по умолчанию.
// Занятый email (уникальный индекс) возвращается как ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, email, passwordDigest string) (models.User, error) {
	var u models.User

	err := r.db.GetContext(ctx, &u,
		`INSERT INTO users (email, password_digest)
		 VALUES ($1, $2)
		 RETURNING `+userColumns,
		email, passwordDigest,
	)
	if err != nil {
		return models.User{}, mapWriteError(err)
	}

	return u, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User

	err := r.db.GetContext(ctx, &u,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return models.User{}, mapReadError(err)
	}

	return u, nil
}

// GetByEmail ищет пользователя по точному (регистрозависимому) email.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.GetContext(ctx, &u,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	if err != nil {
		return models.User{}, mapReadError(err)
	}

	return u, nil
}

// UpdateEmail меняет email и возвращает обновлённую запись.
func (r *UsersRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) (models.User, error) {
	var u models.User

	err := r.db.GetContext(ctx, &u,
		`UPDATE users SET email = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+userColumns,
		email, id,
	)
	if err != nil {
		return models.User{}, mapWriteError(err)
	}

	return u, nil
}

// Delete удаляет пользователя. Его вкладки удаляются каскадом.
func (r *UsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}
	return expectAffected(res)
}

func mapReadError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return serr.ErrNotFound
	}
	return fmt.Errorf("%w: %v", serr.ErrInternal, err)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return serr.ErrAlreadyExists
	}
	return mapReadError(err)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", serr.ErrInternal, err)
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
