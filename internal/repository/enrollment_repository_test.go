package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/coursehub-api/internal/models"
)

func TestEnrollmentCreateFillsServerSideFields(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO enrollments").
		WithArgs(int64(4), int64(9), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_id", "enroll_date"}).AddRow(21, now))

	enrollment := &models.Enrollment{StudentID: 4, CourseID: 9, StatusID: 1}
	err := repo.Create(context.Background(), enrollment)
	require.NoError(t, err)
	assert.Equal(t, int64(21), enrollment.EnrollmentID)
	assert.Equal(t, now, enrollment.EnrollDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentExists(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery("SELECT 1 FROM enrollments").
		WithArgs(int64(4), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 4, 9)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentComplete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("UPDATE enrollments SET status_id").
		WithArgs(int64(2), 92.5, int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Complete(context.Background(), 21, 2, 92.5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentListByStudent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"enrollment_id", "course_id", "course_title", "price", "enroll_date", "completion_date", "final_grade", "status_code", "status_name"}).
		AddRow(21, 9, "Go Basics", 49.99, now, nil, nil, "active", "Active")
	mock.ExpectQuery("SELECT e.enrollment_id, c.course_id").
		WithArgs(int64(4)).
		WillReturnRows(rows)

	courses, err := repo.ListByStudent(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Basics", courses[0].CourseTitle)
	assert.Nil(t, courses[0].FinalGrade)
	assert.NoError(t, mock.ExpectationsWereMet())
}
