package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/auth/domain"
	"github.com/Michaelmpofo/helpmate-lite/internal/modules/auth/infrastructure/persistence/postgres"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlmock"), mock, func() { _ = sqlDB.Close() }
}

func userColumns() []string {
	return []string{"id", "email", "password_hash", "name", "phone", "whatsapp", "avatar_url", "created_at", "updated_at"}
}

func TestPgUserRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "a@example.com",
		PasswordHash: "hash",
		Name:         "Alice",
	}

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505"})
	err := repo.Create(ctx, user)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepository_GetByEmail(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(userID, "a@example.com", "hash", "Alice", "", "", nil, time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM users WHERE email`).
		WithArgs("a@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	mock.ExpectQuery(`SELECT \* FROM users WHERE email`).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepository_GetByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(userID, "a@example.com", "hash", "Alice", "", "", nil, time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM users WHERE id`).
		WithArgs(userID).
		WillReturnRows(rows)

	user, err := repo.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	mock.ExpectQuery(`SELECT \* FROM users WHERE id`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err = repo.GetByID(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
