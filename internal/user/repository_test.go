package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "password", "role", "first_name", "last_name", "created_at"}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		first := "Jane"
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("test@example.com", "hashed", "USER", &first, nil).
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(1, "test@example.com", "hashed", "USER", "Jane", nil, time.Now()))

		u, err := repo.Create(ctx, "test@example.com", "hashed", "USER", &first, nil)
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, RoleUser, u.Role)
		assert.Equal(t, "Jane", *u.FirstName)
		assert.Nil(t, u.LastName)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "users_email_key"`))

		_, err = repo.Create(ctx, "test@example.com", "hashed", "USER", nil, nil)
		assert.Error(t, err)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, email, password, role, first_name, last_name, created_at`).
			WithArgs("test@example.com").
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(1, "test@example.com", "hashed", "USER", nil, nil, time.Now()))

		u, err := repo.FindByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", u.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, email, password, role, first_name, last_name, created_at`).
			WithArgs("unknown@example.com").
			WillReturnRows(sqlmock.NewRows(userCols))

		_, err = repo.FindByEmail(ctx, "unknown@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		first := "Jane"
		mock.ExpectQuery(`UPDATE users`).
			WithArgs(&first, nil, uint(1)).
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(1, "test@example.com", "hashed", "USER", "Jane", "Doe", time.Now()))

		u, err := repo.UpdateProfile(ctx, UpdateProfileParams{UserID: 1, FirstName: &first})
		require.NoError(t, err)
		assert.Equal(t, "Jane", *u.FirstName)
		assert.Equal(t, "Doe", *u.LastName)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`UPDATE users`).
			WillReturnRows(sqlmock.NewRows(userCols))

		_, err = repo.UpdateProfile(ctx, UpdateProfileParams{UserID: 999})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
