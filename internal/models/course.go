package models

import "time"

// Course belongs to a teacher and references level/language/category lookups.
type Course struct {
	CourseID      int64     `db:"course_id" json:"course_id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	LevelID       int64     `db:"level_id" json:"level_id"`
	Price         float64   `db:"price" json:"price"`
	DurationHours *int      `db:"duration_hours" json:"duration_hours,omitempty"`
	LanguageID    int64     `db:"language_id" json:"language_id"`
	CategoryID    int64     `db:"category_id" json:"category_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	TeacherID     int64     `db:"teacher_id" json:"teacher_id"`
}

// CourseDetail joins a course with its lookup names and teacher identity.
type CourseDetail struct {
	Course
	LevelCode        string `db:"level_code" json:"level_code"`
	LevelName        string `db:"level_name" json:"level_name"`
	LanguageCode     string `db:"language_code" json:"language_code"`
	LanguageName     string `db:"language_name" json:"language_name"`
	CategoryName     string `db:"category_name" json:"category_name"`
	TeacherFirstName string `db:"teacher_first_name" json:"teacher_first_name"`
	TeacherLastName  string `db:"teacher_last_name" json:"teacher_last_name"`
}

// CourseFilter captures the catalog listing filters.
type CourseFilter struct {
	CategoryID      int64
	LevelID         int64
	LanguageID      int64
	TeacherID       int64
	TeacherFullName string
}

// CourseStructureRow is a denormalized lesson+assignment row. Assignment
// columns are null for lessons without assignments.
type CourseStructureRow struct {
	CourseID        int64      `db:"course_id" json:"course_id"`
	CourseTitle     string     `db:"course_title" json:"course_title"`
	LessonID        int64      `db:"lesson_id" json:"lesson_id"`
	LessonOrder     int        `db:"lesson_order" json:"lesson_order"`
	LessonTitle     string     `db:"lesson_title" json:"lesson_title"`
	AssignmentID    *int64     `db:"assignment_id" json:"assignment_id,omitempty"`
	AssignmentTitle *string    `db:"assignment_title" json:"assignment_title,omitempty"`
	Deadline        *time.Time `db:"deadline" json:"deadline,omitempty"`
	MaxScore        *int       `db:"max_score" json:"max_score,omitempty"`
	AssignmentType  *string    `db:"assignment_type" json:"assignment_type,omitempty"`
}
