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

func TestReviewCreateFillsGeneratedFields(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReviewRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(int64(3), 5, "great course").
		WillReturnRows(sqlmock.NewRows([]string{"review_id", "created_at"}).AddRow(11, now))

	review := &models.Review{EnrollmentID: 3, Rating: 5, Comment: "great course"}
	err := repo.Create(context.Background(), review)
	require.NoError(t, err)
	assert.Equal(t, int64(11), review.ReviewID)
	assert.Equal(t, now, review.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewExistsForEnrollment(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReviewRepository(db)

	mock.ExpectQuery("SELECT 1 FROM reviews").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))

	exists, err := repo.ExistsForEnrollment(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewAggregateWithoutReviews(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReviewRepository(db)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"reviews_count", "avg_rating"}).AddRow(0, 0))

	aggregate, err := repo.AggregateByCourse(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, 0, aggregate.ReviewsCount)
	assert.Equal(t, float64(0), aggregate.AvgRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewUpdateRefreshesTimestamp(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReviewRepository(db)

	refreshed := time.Now()
	mock.ExpectQuery("UPDATE reviews SET rating").
		WithArgs(4, "updated", int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(refreshed))

	review := &models.Review{ReviewID: 11, Rating: 4, Comment: "updated"}
	err := repo.Update(context.Background(), review)
	require.NoError(t, err)
	assert.Equal(t, refreshed, review.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
