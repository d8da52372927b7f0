package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// ReviewRepository handles persistence of course reviews.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository constructs the repository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review and fills in the generated id and timestamp.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	const query = `INSERT INTO reviews (enrollment_id, rating, comment)
        VALUES ($1, $2, $3) RETURNING review_id, created_at`
	row := r.db.QueryRowxContext(ctx, query, review.EnrollmentID, review.Rating, review.Comment)
	if err := row.Scan(&review.ReviewID, &review.CreatedAt); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// FindByID returns a review by its id.
func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*models.Review, error) {
	const query = `SELECT review_id, enrollment_id, rating, comment, created_at
        FROM reviews WHERE review_id = $1 LIMIT 1`
	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

// FindByEnrollment returns the review attached to an enrollment.
func (r *ReviewRepository) FindByEnrollment(ctx context.Context, enrollmentID int64) (*models.Review, error) {
	const query = `SELECT review_id, enrollment_id, rating, comment, created_at
        FROM reviews WHERE enrollment_id = $1 LIMIT 1`
	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, enrollmentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

// ExistsForEnrollment reports whether an enrollment already has a review.
func (r *ReviewRepository) ExistsForEnrollment(ctx context.Context, enrollmentID int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM reviews WHERE enrollment_id = $1 LIMIT 1`, enrollmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check review: %w", err)
	}
	return true, nil
}

// Update replaces the rating and comment of a review and refreshes its
// timestamp.
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	const query = `UPDATE reviews SET rating = $1, comment = $2, created_at = NOW()
        WHERE review_id = $3 RETURNING created_at`
	if err := r.db.GetContext(ctx, &review.CreatedAt, query, review.Rating, review.Comment, review.ReviewID); err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// Delete removes a review.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE review_id = $1`, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// ListByCourse returns a course's reviews with their authors, newest first.
func (r *ReviewRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseReview, error) {
	const query = `SELECT rv.review_id, e.student_id, u.first_name, u.last_name,
        rv.rating, rv.comment, rv.created_at
        FROM reviews rv
        JOIN enrollments e ON e.enrollment_id = rv.enrollment_id
        JOIN users u ON u.user_id = e.student_id
        WHERE e.course_id = $1
        ORDER BY rv.created_at DESC`
	var reviews []models.CourseReview
	if err := r.db.SelectContext(ctx, &reviews, query, courseID); err != nil {
		return nil, fmt.Errorf("list course reviews: %w", err)
	}
	return reviews, nil
}

// AggregateByCourse returns the review count and average rating of a course.
// A course without reviews yields count 0 and average 0, never an error.
func (r *ReviewRepository) AggregateByCourse(ctx context.Context, courseID int64) (*models.ReviewAggregate, error) {
	const query = `SELECT COUNT(rv.review_id) AS reviews_count, COALESCE(AVG(rv.rating), 0) AS avg_rating
        FROM reviews rv
        JOIN enrollments e ON e.enrollment_id = rv.enrollment_id
        WHERE e.course_id = $1`
	var aggregate models.ReviewAggregate
	if err := r.db.GetContext(ctx, &aggregate, query, courseID); err != nil {
		return nil, fmt.Errorf("aggregate course reviews: %w", err)
	}
	return &aggregate, nil
}
