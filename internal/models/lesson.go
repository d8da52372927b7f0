package models

// Lesson belongs to a course; (course_id, lesson_order) is unique.
type Lesson struct {
	LessonID        int64  `db:"lesson_id" json:"lesson_id"`
	CourseID        int64  `db:"course_id" json:"course_id"`
	Title           string `db:"title" json:"title"`
	Content         string `db:"content" json:"content"`
	VideoURL        string `db:"video_url" json:"video_url"`
	DurationMinutes *int   `db:"duration_minutes" json:"duration_minutes,omitempty"`
	LessonOrder     int    `db:"lesson_order" json:"lesson_order"`
}
