package repository_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var (
	userCols = []string{"id", "email", "password_digest", "role", "created_at", "updated_at"}
	tabCols  = []string{"id", "user_id", "url", "title", "created_at", "updated_at"}
	fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return sqlxWrap(db), mock
}

func userRow(id uuid.UUID, email string) *sqlmock.Rows {
	return sqlmock.NewRows(userCols).
		AddRow(id.String(), email, "digest", "client", fixedNow, fixedNow)
}

func tabRow(rows *sqlmock.Rows, id, userID uuid.UUID, url string, title any) *sqlmock.Rows {
	return rows.AddRow(id.String(), userID.String(), url, title, fixedNow, fixedNow)
}

func sqlxWrap(db *sql.DB) *sqlx.DB {
	return sqlx.NewDb(db, "pgx")
}
