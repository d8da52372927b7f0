package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryListCategoriesOrderedByName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewDictionaryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(3, "Backend").
		AddRow(1, "Databases")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT category_id AS id, name FROM categories ORDER BY name")).
		WillReturnRows(rows)

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Backend", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDictionaryFindEnrollmentStatusID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewDictionaryRepository(db)

	mock.ExpectQuery("SELECT status_id FROM enrollment_statuses").
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"status_id"}).AddRow(1))

	id, err := repo.FindEnrollmentStatusID(context.Background(), "active")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDictionaryFindEnrollmentStatusIDMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewDictionaryRepository(db)

	mock.ExpectQuery("SELECT status_id FROM enrollment_statuses").
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindEnrollmentStatusID(context.Background(), "unknown")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDictionaryEnsureRoleCreatesWhenMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewDictionaryRepository(db)

	mock.ExpectQuery("SELECT role_id FROM roles").
		WithArgs("student").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO roles").
		WithArgs("student", "Student").
		WillReturnRows(sqlmock.NewRows([]string{"role_id"}).AddRow(1))

	id, err := repo.EnsureRole(context.Background(), "student", "Student")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
