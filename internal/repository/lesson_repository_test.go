package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonReorderRenumbersSequentially(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	ids := []int64{30, 10, 20}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM lessons WHERE course_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE lessons SET lesson_order = lesson_order + 1000000 WHERE course_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	for i, id := range ids {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE lessons SET lesson_order = $1 WHERE lesson_id = $2 AND course_id = $3")).
			WithArgs(i+1, id, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.Reorder(context.Background(), 1, ids)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonReorderRejectsPartialSequence(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM lessons WHERE course_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	err := repo.Reorder(context.Background(), 1, []int64{10, 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reorder requires all 3 lessons")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonReorderRejectsForeignLesson(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM lessons WHERE course_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE lessons SET lesson_order = lesson_order + 1000000 WHERE course_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE lessons SET lesson_order = $1 WHERE lesson_id = $2 AND course_id = $3")).
		WithArgs(1, int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE lessons SET lesson_order = $1 WHERE lesson_id = $2 AND course_id = $3")).
		WithArgs(2, int64(777), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Reorder(context.Background(), 1, []int64{10, 777})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lesson 777 does not belong to course 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonListByCourseOrdered(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	rows := sqlmock.NewRows([]string{"lesson_id", "course_id", "title", "content", "video_url", "duration_minutes", "lesson_order"}).
		AddRow(10, 1, "Intro", "", "", nil, 1).
		AddRow(20, 1, "Basics", "", "", 30, 2)
	mock.ExpectQuery("SELECT lesson_id, course_id, title").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	lessons, err := repo.ListByCourse(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, 1, lessons[0].LessonOrder)
	assert.Equal(t, 2, lessons[1].LessonOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}
