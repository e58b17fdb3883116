package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("test@mail.com", "digest").
		WillReturnRows(userRow(id, "test@mail.com"))

	got, err := repo.Create(context.Background(), "test@mail.com", "digest")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "test@mail.com", got.Email)
	require.Equal(t, models.RoleClient, got.Role)
	require.Equal(t, fixedNow, got.CreatedAt)
}

// Такой пользователь уже есть
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), "test@mail.com", "digest")
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "test@mail.com", "digest")
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("Test@Mail.com").
		WillReturnRows(userRow(id, "Test@Mail.com"))

	got, err := repo.GetByEmail(context.Background(), "Test@Mail.com")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "digest", got.PasswordDigest)
}

func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "none@mail.com")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestUsersRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := repo.GetByID(context.Background(), id)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestUsersRepository_UpdateEmail_Taken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`UPDATE users SET email = \$1`).
		WithArgs("taken@mail.com", id).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.UpdateEmail(context.Background(), id, "taken@mail.com")
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

func TestUsersRepository_UpdateEmail_OK(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`UPDATE users SET email = \$1`).
		WithArgs("new@mail.com", id).
		WillReturnRows(userRow(id, "new@mail.com"))

	got, err := repo.UpdateEmail(context.Background(), id, "new@mail.com")
	require.NoError(t, err)
	require.Equal(t, "new@mail.com", got.Email)
}

func TestUsersRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), id))
	require.True(t, errors.Is(repo.Delete(context.Background(), id), serr.ErrNotFound))
}
