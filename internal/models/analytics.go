package models

// TeacherRating ranks teachers by the average rating of their courses.
type TeacherRating struct {
	TeacherID   int64   `db:"teacher_id" json:"teacher_id"`
	FirstName   string  `db:"first_name" json:"first_name"`
	LastName    string  `db:"last_name" json:"last_name"`
	AvgRating   float64 `db:"avg_rating" json:"avg_rating"`
	CourseCount int     `db:"course_count" json:"course_count"`
}

// PopularCourse ranks courses by enrollment count.
type PopularCourse struct {
	CourseID        int64  `db:"course_id" json:"course_id"`
	Title           string `db:"title" json:"title"`
	FirstName       string `db:"first_name" json:"teacher_first_name"`
	LastName        string `db:"last_name" json:"teacher_last_name"`
	CategoryName    string `db:"category_name" json:"category_name"`
	EnrollmentCount int    `db:"enrollment_count" json:"enrollment_count"`
}

// CourseCompletionStat reports the share of enrollments carrying a final
// grade, per course.
type CourseCompletionStat struct {
	CourseID         int64   `db:"course_id" json:"course_id"`
	CourseTitle      string  `db:"course_title" json:"course_title"`
	TotalEnrollments int     `db:"total_enrollments" json:"total_enrollments"`
	CompletedCount   int     `db:"completed_count" json:"completed_count"`
	CompletionRate   float64 `db:"completion_rate" json:"completion_rate"`
}

// AssignmentStat reports how many assignment slots received submissions,
// per course.
type AssignmentStat struct {
	CourseID         int64   `db:"course_id" json:"course_id"`
	CourseTitle      string  `db:"course_title" json:"course_title"`
	TotalAssignments int     `db:"total_assignments" json:"total_assignments"`
	SubmittedCount   int     `db:"submitted_count" json:"submitted_count"`
	SubmissionRate   float64 `db:"submission_rate" json:"submission_rate"`
}

// CategoryRevenue sums course prices per category.
type CategoryRevenue struct {
	CategoryName string  `db:"category_name" json:"category_name"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
	CourseCount  int     `db:"course_count" json:"course_count"`
}

// TeacherActivity reports per-teacher catalog and audience metrics.
type TeacherActivity struct {
	TeacherID       int64    `db:"teacher_id" json:"teacher_id"`
	FirstName       string   `db:"first_name" json:"first_name"`
	LastName        string   `db:"last_name" json:"last_name"`
	CourseCount     int      `db:"course_count" json:"course_count"`
	TotalStudents   int      `db:"total_students" json:"total_students"`
	AvgCourseRating *float64 `db:"avg_course_rating" json:"avg_course_rating,omitempty"`
}

// PlatformAnalytics aggregates all analytics slices. Every slice degrades
// independently to its zero value when its query fails.
type PlatformAnalytics struct {
	TotalCourses          int                    `json:"total_courses"`
	TotalStudents         int                    `json:"total_students"`
	AverageCoursePrice    float64                `json:"average_course_price"`
	TotalAssignments      int                    `json:"total_assignments"`
	TopTeachers           []TeacherRating        `json:"top_teachers"`
	PopularCourses        []PopularCourse        `json:"popular_courses"`
	CourseCompletionStats []CourseCompletionStat `json:"course_completion_stats"`
	AssignmentStats       []AssignmentStat       `json:"assignment_stats"`
	RevenueByCategory     []CategoryRevenue      `json:"revenue_by_category"`
	OverallCompletionRate float64                `json:"overall_completion_rate"`
	TeacherActivity       []TeacherActivity      `json:"teacher_activity"`
}
