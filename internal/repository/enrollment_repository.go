package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts an enrollment and fills in the generated id and the
// server-side enroll date.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	const query = `INSERT INTO enrollments (student_id, course_id, status_id)
        VALUES ($1, $2, $3) RETURNING enrollment_id, enroll_date`
	row := r.db.QueryRowxContext(ctx, query, enrollment.StudentID, enrollment.CourseID, enrollment.StatusID)
	if err := row.Scan(&enrollment.EnrollmentID, &enrollment.EnrollDate); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// FindByID returns an enrollment by its id.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	const query = `SELECT enrollment_id, student_id, course_id, enroll_date, completion_date, final_grade, status_id
        FROM enrollments WHERE enrollment_id = $1 LIMIT 1`
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return &enrollment, nil
}

// FindByStudentAndCourse returns the enrollment of a student in a course.
func (r *EnrollmentRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	const query = `SELECT enrollment_id, student_id, course_id, enroll_date, completion_date, final_grade, status_id
        FROM enrollments WHERE student_id = $1 AND course_id = $2 LIMIT 1`
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, studentID, courseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return &enrollment, nil
}

// Exists reports whether a student is already enrolled in a course.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists,
		`SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2 LIMIT 1`, studentID, courseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return true, nil
}

// UpdateStatus moves an enrollment to another status.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id, statusID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE enrollments SET status_id = $1 WHERE enrollment_id = $2`, statusID, id); err != nil {
		return fmt.Errorf("update enrollment status: %w", err)
	}
	return nil
}

// Complete marks an enrollment finished, stamping the completion date
// server-side and recording the final grade.
func (r *EnrollmentRepository) Complete(ctx context.Context, id, statusID int64, finalGrade float64) error {
	const query = `UPDATE enrollments SET status_id = $1, final_grade = $2, completion_date = NOW()
        WHERE enrollment_id = $3`
	if _, err := r.db.ExecContext(ctx, query, statusID, finalGrade, id); err != nil {
		return fmt.Errorf("complete enrollment: %w", err)
	}
	return nil
}

// ListByStudent returns a student's courses, most recently enrolled first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error) {
	const query = `SELECT e.enrollment_id, c.course_id, c.title AS course_title, c.price,
        e.enroll_date, e.completion_date, e.final_grade,
        es.code AS status_code, es.name AS status_name
        FROM enrollments e
        JOIN courses c ON c.course_id = e.course_id
        JOIN enrollment_statuses es ON es.status_id = e.status_id
        WHERE e.student_id = $1
        ORDER BY e.enroll_date DESC`
	var courses []models.StudentCourse
	if err := r.db.SelectContext(ctx, &courses, query, studentID); err != nil {
		return nil, fmt.Errorf("list student courses: %w", err)
	}
	return courses, nil
}

// ListByCourse returns a course's roster, most recently enrolled first.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseStudent, error) {
	const query = `SELECT e.enrollment_id, e.student_id, u.first_name, u.last_name, u.email,
        e.enroll_date, e.completion_date, e.final_grade,
        es.code AS status_code
        FROM enrollments e
        JOIN users u ON u.user_id = e.student_id
        JOIN enrollment_statuses es ON es.status_id = e.status_id
        WHERE e.course_id = $1
        ORDER BY e.enroll_date DESC`
	var students []models.CourseStudent
	if err := r.db.SelectContext(ctx, &students, query, courseID); err != nil {
		return nil, fmt.Errorf("list course students: %w", err)
	}
	return students, nil
}
