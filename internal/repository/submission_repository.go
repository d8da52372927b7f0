package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// SubmissionRepository handles persistence of submissions and their file
// references.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository constructs the repository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a submission and fills in the generated id and the
// server-side submission timestamp.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	const query = `INSERT INTO submissions (assignment_id, student_id, feedback)
        VALUES ($1, $2, $3) RETURNING submission_id, submitted_at`
	row := r.db.QueryRowxContext(ctx, query, submission.AssignmentID, submission.StudentID, submission.Feedback)
	if err := row.Scan(&submission.SubmissionID, &submission.SubmittedAt); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// FindByID returns a submission by its id.
func (r *SubmissionRepository) FindByID(ctx context.Context, id int64) (*models.Submission, error) {
	const query = `SELECT submission_id, assignment_id, student_id, submitted_at, score, feedback
        FROM submissions WHERE submission_id = $1 LIMIT 1`
	var submission models.Submission
	if err := r.db.GetContext(ctx, &submission, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return &submission, nil
}

// Exists reports whether a student has already submitted for an assignment.
func (r *SubmissionRepository) Exists(ctx context.Context, assignmentID, studentID int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists,
		`SELECT 1 FROM submissions WHERE assignment_id = $1 AND student_id = $2 LIMIT 1`, assignmentID, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check submission: %w", err)
	}
	return true, nil
}

// UpdateGrade records the score and feedback of a submission.
func (r *SubmissionRepository) UpdateGrade(ctx context.Context, id int64, score int, feedback string) error {
	const query = `UPDATE submissions SET score = $1, feedback = $2 WHERE submission_id = $3`
	if _, err := r.db.ExecContext(ctx, query, score, feedback, id); err != nil {
		return fmt.Errorf("grade submission: %w", err)
	}
	return nil
}

// ListByAssignment returns an assignment's submissions, newest first.
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID int64) ([]models.AssignmentSubmission, error) {
	const query = `SELECT s.submission_id, s.student_id, u.first_name, u.last_name, u.email,
        s.submitted_at, s.score, s.feedback
        FROM submissions s
        JOIN users u ON u.user_id = s.student_id
        WHERE s.assignment_id = $1
        ORDER BY s.submitted_at DESC`
	var submissions []models.AssignmentSubmission
	if err := r.db.SelectContext(ctx, &submissions, query, assignmentID); err != nil {
		return nil, fmt.Errorf("list assignment submissions: %w", err)
	}
	return submissions, nil
}

// ListByStudentCourse returns one student's submissions within a course,
// walking the course structure in lesson order.
func (r *SubmissionRepository) ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]models.StudentCourseSubmission, error) {
	const query = `SELECT s.submission_id, a.assignment_id, a.title AS assignment_title,
        l.lesson_id, l.lesson_order, l.title AS lesson_title, a.max_score,
        s.submitted_at, s.score, s.feedback
        FROM submissions s
        JOIN assignments a ON a.assignment_id = s.assignment_id
        JOIN lessons l ON l.lesson_id = a.lesson_id
        WHERE s.student_id = $1 AND l.course_id = $2
        ORDER BY l.lesson_order, s.submitted_at DESC`
	var submissions []models.StudentCourseSubmission
	if err := r.db.SelectContext(ctx, &submissions, query, studentID, courseID); err != nil {
		return nil, fmt.Errorf("list student course submissions: %w", err)
	}
	return submissions, nil
}

// CreateFile attaches a file URL to a submission.
func (r *SubmissionRepository) CreateFile(ctx context.Context, file *models.SubmissionFile) error {
	const query = `INSERT INTO submission_files (submission_id, file_url)
        VALUES ($1, $2) RETURNING file_id, uploaded_at`
	row := r.db.QueryRowxContext(ctx, query, file.SubmissionID, file.FileURL)
	if err := row.Scan(&file.FileID, &file.UploadedAt); err != nil {
		return fmt.Errorf("create submission file: %w", err)
	}
	return nil
}

// ListFiles returns a submission's file references in upload order.
func (r *SubmissionRepository) ListFiles(ctx context.Context, submissionID int64) ([]models.SubmissionFile, error) {
	const query = `SELECT file_id, submission_id, file_url, uploaded_at
        FROM submission_files WHERE submission_id = $1 ORDER BY uploaded_at`
	var files []models.SubmissionFile
	if err := r.db.SelectContext(ctx, &files, query, submissionID); err != nil {
		return nil, fmt.Errorf("list submission files: %w", err)
	}
	return files, nil
}

// DeleteFile removes one file reference; the stored content is external and
// untouched.
func (r *SubmissionRepository) DeleteFile(ctx context.Context, fileID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM submission_files WHERE file_id = $1`, fileID)
	if err != nil {
		return fmt.Errorf("delete submission file: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete submission file: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
