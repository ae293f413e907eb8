package admin

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at FROM admin_users WHERE email = $1")).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(1, "admin@example.com", "$2a$10$hash", time.Now()))

	user, err := repo.GetByEmail(context.Background(), "  Admin@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	mock.ExpectQuery(`FROM admin_users`).WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))
	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO admin_users (email,password_hash) VALUES ($1,$2) RETURNING id, created_at")).
		WithArgs("admin@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, time.Now()))

	user, err := repo.Create(context.Background(), "Admin@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "admin@example.com", user.Email)

	mock.ExpectQuery(`INSERT INTO admin_users`).WillReturnError(&pq.Error{Code: "23505"})
	_, err = repo.Create(context.Background(), "admin@example.com", "hash")
	assert.ErrorIs(t, err, ErrAdminExists)
}
