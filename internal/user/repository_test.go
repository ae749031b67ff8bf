package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	newUser := func() *User {
		return &User{
			Email:        "an@bijoux.test",
			PasswordHash: "hash",
			Name:         "An Tran",
			Role:         RoleCustomer,
			Active:       true,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("an@bijoux.test", "hash", "An Tran", "", RoleCustomer, true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

		u := newUser()
		err := repo.Create(context.Background(), u)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), u.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), newUser())
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New("db error"))

		err := repo.Create(context.Background(), newUser())
		assert.ErrorIs(t, err, ErrFailedCreateUser)
	})
}

func TestRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "email", "password_hash", "name", "phone", "role", "active", "created_at",
		}).AddRow(7, "an@bijoux.test", "hash", "An Tran", "", RoleCustomer, true, time.Now())

		mock.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
			WithArgs("an@bijoux.test").
			WillReturnRows(rows)

		u, err := repo.GetByEmail(context.Background(), "an@bijoux.test")
		require.NoError(t, err)
		assert.Equal(t, uint(7), u.ID)
		assert.True(t, u.Active)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
			WithArgs("ghost@bijoux.test").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "ghost@bijoux.test")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_Reactivate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET active = TRUE").
			WithArgs(uint(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Reactivate(context.Background(), 7))
	})

	t.Run("UnknownUser", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET active = TRUE").
			WithArgs(uint(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Reactivate(context.Background(), 99), ErrNotFound)
	})
}
