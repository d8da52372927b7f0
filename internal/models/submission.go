package models

import "time"

// Submission links a student to an assignment; (assignment_id, student_id)
// is unique.
type Submission struct {
	SubmissionID int64     `db:"submission_id" json:"submission_id"`
	AssignmentID int64     `db:"assignment_id" json:"assignment_id"`
	StudentID    int64     `db:"student_id" json:"student_id"`
	SubmittedAt  time.Time `db:"submitted_at" json:"submitted_at"`
	Score        *int      `db:"score" json:"score,omitempty"`
	Feedback     string    `db:"feedback" json:"feedback"`
}

// SubmissionFile is a URL reference to externally stored content.
type SubmissionFile struct {
	FileID       int64     `db:"file_id" json:"file_id"`
	SubmissionID int64     `db:"submission_id" json:"submission_id"`
	FileURL      string    `db:"file_url" json:"file_url"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// AssignmentSubmission is a submission joined with student identity.
type AssignmentSubmission struct {
	SubmissionID int64     `db:"submission_id" json:"submission_id"`
	StudentID    int64     `db:"student_id" json:"student_id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	SubmittedAt  time.Time `db:"submitted_at" json:"submitted_at"`
	Score        *int      `db:"score" json:"score,omitempty"`
	Feedback     string    `db:"feedback" json:"feedback"`
}

// StudentCourseSubmission is a submission joined with its lesson and
// assignment context within one course.
type StudentCourseSubmission struct {
	SubmissionID    int64     `db:"submission_id" json:"submission_id"`
	AssignmentID    int64     `db:"assignment_id" json:"assignment_id"`
	AssignmentTitle string    `db:"assignment_title" json:"assignment_title"`
	LessonID        int64     `db:"lesson_id" json:"lesson_id"`
	LessonOrder     int       `db:"lesson_order" json:"lesson_order"`
	LessonTitle     string    `db:"lesson_title" json:"lesson_title"`
	MaxScore        int       `db:"max_score" json:"max_score"`
	SubmittedAt     time.Time `db:"submitted_at" json:"submitted_at"`
	Score           *int      `db:"score" json:"score,omitempty"`
	Feedback        string    `db:"feedback" json:"feedback"`
}
