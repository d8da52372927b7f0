package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
)

type mockReviewRepo struct {
	reviews      map[int64]models.Review
	byEnrollment map[int64]int64
	nextID       int64
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if m.reviews == nil {
		m.reviews = make(map[int64]models.Review)
		m.byEnrollment = make(map[int64]int64)
	}
	m.nextID++
	review.ReviewID = m.nextID
	m.reviews[review.ReviewID] = *review
	m.byEnrollment[review.EnrollmentID] = review.ReviewID
	return nil
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id int64) (*models.Review, error) {
	if r, ok := m.reviews[id]; ok {
		return &r, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockReviewRepo) FindByEnrollment(ctx context.Context, enrollmentID int64) (*models.Review, error) {
	if id, ok := m.byEnrollment[enrollmentID]; ok {
		return m.FindByID(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (m *mockReviewRepo) ExistsForEnrollment(ctx context.Context, enrollmentID int64) (bool, error) {
	_, ok := m.byEnrollment[enrollmentID]
	return ok, nil
}

func (m *mockReviewRepo) Update(ctx context.Context, review *models.Review) error {
	m.reviews[review.ReviewID] = *review
	return nil
}

func (m *mockReviewRepo) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseReview, error) {
	return []models.CourseReview{}, nil
}

func (m *mockReviewRepo) AggregateByCourse(ctx context.Context, courseID int64) (*models.ReviewAggregate, error) {
	return &models.ReviewAggregate{}, nil
}

type mockReviewEnrollments struct {
	enrollments map[int64]models.Enrollment
}

func (m *mockReviewEnrollments) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if e, ok := m.enrollments[id]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func newReviewFixture() (*mockReviewRepo, *ReviewService) {
	repo := &mockReviewRepo{}
	enrollments := &mockReviewEnrollments{enrollments: map[int64]models.Enrollment{
		3: {EnrollmentID: 3, StudentID: 4, CourseID: 9},
	}}
	courses := &mockExistsRepo{existing: map[int64]bool{9: true}}
	svc := NewReviewService(repo, enrollments, courses, nil, zap.NewNop())
	return repo, svc
}

func TestReviewCreate(t *testing.T) {
	repo, svc := newReviewFixture()

	review, err := svc.Create(context.Background(), models.CreateReviewRequest{EnrollmentID: 3, Rating: 5, Comment: "great course"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.ReviewID)
	assert.Len(t, repo.reviews, 1)
}

func TestReviewCreateDuplicateConflict(t *testing.T) {
	_, svc := newReviewFixture()

	_, err := svc.Create(context.Background(), models.CreateReviewRequest{EnrollmentID: 3, Rating: 5})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), models.CreateReviewRequest{EnrollmentID: 3, Rating: 4})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, appErrors.FromError(err).Status)
}

func TestReviewCreateUnknownEnrollment(t *testing.T) {
	_, svc := newReviewFixture()

	_, err := svc.Create(context.Background(), models.CreateReviewRequest{EnrollmentID: 77, Rating: 5})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestReviewCreateRatingOutOfRange(t *testing.T) {
	_, svc := newReviewFixture()

	_, err := svc.Create(context.Background(), models.CreateReviewRequest{EnrollmentID: 3, Rating: 6})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestReviewUpdateByEnrollment(t *testing.T) {
	_, svc := newReviewFixture()

	_, err := svc.Create(context.Background(), models.CreateReviewRequest{EnrollmentID: 3, Rating: 3, Comment: "fine"})
	require.NoError(t, err)

	updated, err := svc.UpdateByEnrollment(context.Background(), 3, models.UpdateReviewRequest{Rating: 5, Comment: "much better now"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "much better now", updated.Comment)
}

func TestReviewRatingUnknownCourse(t *testing.T) {
	_, svc := newReviewFixture()

	_, err := svc.Rating(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
