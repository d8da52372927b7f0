package models

import "time"

// Enrollment links a student to a course; (student_id, course_id) is unique.
type Enrollment struct {
	EnrollmentID   int64      `db:"enrollment_id" json:"enrollment_id"`
	StudentID      int64      `db:"student_id" json:"student_id"`
	CourseID       int64      `db:"course_id" json:"course_id"`
	EnrollDate     time.Time  `db:"enroll_date" json:"enroll_date"`
	CompletionDate *time.Time `db:"completion_date" json:"completion_date,omitempty"`
	FinalGrade     *float64   `db:"final_grade" json:"final_grade,omitempty"`
	StatusID       int64      `db:"status_id" json:"status_id"`
}

// StudentCourse is an enrollment joined with course and status info,
// used for a student's course list.
type StudentCourse struct {
	EnrollmentID   int64      `db:"enrollment_id" json:"enrollment_id"`
	CourseID       int64      `db:"course_id" json:"course_id"`
	CourseTitle    string     `db:"course_title" json:"course_title"`
	Price          float64    `db:"price" json:"price"`
	EnrollDate     time.Time  `db:"enroll_date" json:"enroll_date"`
	CompletionDate *time.Time `db:"completion_date" json:"completion_date,omitempty"`
	FinalGrade     *float64   `db:"final_grade" json:"final_grade,omitempty"`
	StatusCode     string     `db:"status_code" json:"status_code"`
	StatusName     string     `db:"status_name" json:"status_name"`
}

// CourseStudent is an enrollment joined with student identity, used for a
// course's roster.
type CourseStudent struct {
	EnrollmentID   int64      `db:"enrollment_id" json:"enrollment_id"`
	StudentID      int64      `db:"student_id" json:"student_id"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	Email          string     `db:"email" json:"email"`
	EnrollDate     time.Time  `db:"enroll_date" json:"enroll_date"`
	CompletionDate *time.Time `db:"completion_date" json:"completion_date,omitempty"`
	FinalGrade     *float64   `db:"final_grade" json:"final_grade,omitempty"`
	StatusCode     string     `db:"status_code" json:"status_code"`
}
