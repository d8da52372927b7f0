package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
)

type reviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id int64) (*models.Review, error)
	FindByEnrollment(ctx context.Context, enrollmentID int64) (*models.Review, error)
	ExistsForEnrollment(ctx context.Context, enrollmentID int64) (bool, error)
	Update(ctx context.Context, review *models.Review) error
	ListByCourse(ctx context.Context, courseID int64) ([]models.CourseReview, error)
	AggregateByCourse(ctx context.Context, courseID int64) (*models.ReviewAggregate, error)
}

type reviewEnrollmentRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Enrollment, error)
}

// ReviewService provides review use cases.
type ReviewService struct {
	repo        reviewRepository
	enrollments reviewEnrollmentRepository
	courses     enrollmentCourseRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewReviewService constructs a ReviewService instance.
func NewReviewService(repo reviewRepository, enrollments reviewEnrollmentRepository, courses enrollmentCourseRepository, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ReviewService{repo: repo, enrollments: enrollments, courses: courses, validator: validate, logger: logger}
}

// Create attaches a review to an enrollment. An enrollment carries at most
// one review.
func (s *ReviewService) Create(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid review payload")
	}

	if _, err := s.enrollments.FindByID(ctx, req.EnrollmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollment")
	}

	exists, err := s.repo.ExistsForEnrollment(ctx, req.EnrollmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check review")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "review already exists for this enrollment")
	}

	review := &models.Review{
		EnrollmentID: req.EnrollmentID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create review")
	}

	s.logger.Info("review created", zap.Int64("review_id", review.ReviewID), zap.Int64("enrollment_id", review.EnrollmentID))
	return review, nil
}

// Get returns a review by id.
func (s *ReviewService) Get(ctx context.Context, id int64) (*models.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "review not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load review")
	}
	return review, nil
}

// GetByEnrollment returns the review attached to an enrollment.
func (s *ReviewService) GetByEnrollment(ctx context.Context, enrollmentID int64) (*models.Review, error) {
	review, err := s.repo.FindByEnrollment(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "review not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load review")
	}
	return review, nil
}

// Update replaces rating and comment and refreshes the review timestamp.
func (s *ReviewService) Update(ctx context.Context, id int64, req models.UpdateReviewRequest) (*models.Review, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid review payload")
	}

	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update review")
	}
	return review, nil
}

// UpdateByEnrollment updates the review attached to an enrollment.
func (s *ReviewService) UpdateByEnrollment(ctx context.Context, enrollmentID int64, req models.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.GetByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, review.ReviewID, req)
}

// ListByCourse returns a course's reviews, newest first.
func (s *ReviewService) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseReview, error) {
	courseExists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course")
	}
	if !courseExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	reviews, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reviews")
	}
	return reviews, nil
}

// Rating returns the review count and average rating of a course, zero
// coalesced for courses without reviews.
func (s *ReviewService) Rating(ctx context.Context, courseID int64) (*models.ReviewAggregate, error) {
	courseExists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course")
	}
	if !courseExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	aggregate, err := s.repo.AggregateByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate reviews")
	}
	return aggregate, nil
}
