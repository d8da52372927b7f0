package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/coursehub-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestUserCreateReturnsGeneratedID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(42))

	user := &models.User{
		Email:        "new@example.com",
		PasswordHash: "hash",
		FirstName:    "Jane",
		LastName:     "Doe",
		RoleID:       1,
		StatusID:     1,
	}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.False(t, user.DateRegistered.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindAuthByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"user_id", "email", "password_hash", "first_name", "last_name", "role_code", "status_code"}).
		AddRow(7, "student@example.com", "hash", "Jane", "Doe", "student", "active")
	mock.ExpectQuery("SELECT u.user_id, u.email, u.password_hash").
		WithArgs("student@example.com").
		WillReturnRows(rows)

	account, err := repo.FindAuthByEmail(context.Background(), "student@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.UserID)
	assert.Equal(t, "student", account.RoleCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT user_id, email, password_hash").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDeleteCascadeSingleTransaction(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	for range deleteCascadeStatements {
		mock.ExpectExec("DELETE FROM").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.DeleteCascade(context.Background(), 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDeleteCascadeRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reviews")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM submission_files").
		WithArgs(int64(5)).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.DeleteCascade(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete user closure")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateLastLogin(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	ts := time.Now()
	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(int64(3), ts).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateLastLogin(context.Background(), 3, ts)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
