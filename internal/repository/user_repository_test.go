package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cloudpix/internal/models"
)

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	username := "alice"
	password := "secret1"

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		user := &models.User{
			Username: username,
			Role:     models.RoleCreator,
		}

		mock.ExpectQuery(`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING user_id`).
			WithArgs(username, sqlmock.AnyArg(), models.RoleCreator).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

		err := repo.CreateUser(ctx, user, password)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
		// пароль хранится только в виде bcrypt-хеша
		assert.NotEqual(t, password, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при дублировании имени пользователя", func(t *testing.T) {
		user := &models.User{
			Username: username,
			Role:     models.RoleCreator,
		}

		mock.ExpectQuery(`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING user_id`).
			WithArgs(username, sqlmock.AnyArg(), models.RoleCreator).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateUser(ctx, user, password)

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	expectedUser := &models.User{
		UserID:       7,
		Username:     "alice",
		PasswordHash: "hashed_password",
		Role:         models.RoleCreator,
	}

	t.Run("Успешное получение пользователя по имени", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "username", "password_hash", "role"}).
			AddRow(expectedUser.UserID, expectedUser.Username, expectedUser.PasswordHash, expectedUser.Role)

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := repo.GetUserByUsername(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, expectedUser.UserID, user.UserID)
		assert.Equal(t, expectedUser.Username, user.Username)
		assert.Equal(t, expectedUser.Role, user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("bob").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByUsername(ctx, "bob")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("bob").
			WillReturnError(errors.New("connection failed"))

		user, err := repo.GetUserByUsername(ctx, "bob")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "ошибка при получении пользователя по имени")
	})
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	password := "secret1"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"user_id", "username", "password_hash", "role"}).
			AddRow(1, "alice", string(hash), models.RoleCreator)
	}

	t.Run("Верный пароль", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("alice").
			WillReturnRows(userRows())

		user, err := repo.VerifyPassword(ctx, "alice", password)

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("alice").
			WillReturnRows(userRows())

		user, err := repo.VerifyPassword(ctx, "alice", "wrong-password")

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}
