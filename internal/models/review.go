package models

import "time"

// Review is a rating and comment attached to exactly one enrollment.
type Review struct {
	ReviewID     int64     `db:"review_id" json:"review_id"`
	EnrollmentID int64     `db:"enrollment_id" json:"enrollment_id"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CourseReview is a review joined with the reviewing student's identity.
type CourseReview struct {
	ReviewID  int64     `db:"review_id" json:"review_id"`
	StudentID int64     `db:"student_id" json:"student_id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReviewAggregate is the per-course rating summary, zero-valued when the
// course has no reviews.
type ReviewAggregate struct {
	ReviewsCount int     `db:"reviews_count" json:"reviews_count"`
	AvgRating    float64 `db:"avg_rating" json:"avg_rating"`
}
