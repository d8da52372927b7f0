package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// AnalyticsRepository runs the aggregate queries behind the platform
// analytics report. Each method covers exactly one slice so callers can
// degrade slices independently.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository constructs the repository.
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// CountCourses returns the total number of courses.
func (r *AnalyticsRepository) CountCourses(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM courses`); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return count, nil
}

// CountStudents returns the total number of student profiles.
func (r *AnalyticsRepository) CountStudents(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM students`); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}

// AverageCoursePrice returns the mean course price, zero for an empty catalog.
func (r *AnalyticsRepository) AverageCoursePrice(ctx context.Context) (float64, error) {
	var avg float64
	if err := r.db.GetContext(ctx, &avg, `SELECT COALESCE(AVG(price), 0) FROM courses`); err != nil {
		return 0, fmt.Errorf("average course price: %w", err)
	}
	return avg, nil
}

// CountAssignments returns the total number of assignments.
func (r *AnalyticsRepository) CountAssignments(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM assignments`); err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return count, nil
}

// TopTeachers returns the five teachers with the highest average course
// rating. Teachers whose courses have no reviews do not appear.
func (r *AnalyticsRepository) TopTeachers(ctx context.Context) ([]models.TeacherRating, error) {
	const query = `SELECT c.teacher_id, u.first_name, u.last_name,
        AVG(rv.rating) AS avg_rating, COUNT(DISTINCT c.course_id) AS course_count
        FROM reviews rv
        JOIN enrollments e ON e.enrollment_id = rv.enrollment_id
        JOIN courses c ON c.course_id = e.course_id
        JOIN users u ON u.user_id = c.teacher_id
        GROUP BY c.teacher_id, u.first_name, u.last_name
        ORDER BY avg_rating DESC
        LIMIT 5`
	var teachers []models.TeacherRating
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("top teachers: %w", err)
	}
	return teachers, nil
}

// PopularCourses returns the five courses with the most enrollments.
func (r *AnalyticsRepository) PopularCourses(ctx context.Context) ([]models.PopularCourse, error) {
	const query = `SELECT c.course_id, c.title, u.first_name, u.last_name, cat.name AS category_name,
        COUNT(e.enrollment_id) AS enrollment_count
        FROM courses c
        JOIN users u ON u.user_id = c.teacher_id
        JOIN categories cat ON cat.category_id = c.category_id
        LEFT JOIN enrollments e ON e.course_id = c.course_id
        GROUP BY c.course_id, c.title, u.first_name, u.last_name, cat.name
        ORDER BY enrollment_count DESC
        LIMIT 5`
	var courses []models.PopularCourse
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("popular courses: %w", err)
	}
	return courses, nil
}

// CourseCompletionStats returns the five courses with the highest share of
// enrollments carrying a final grade.
func (r *AnalyticsRepository) CourseCompletionStats(ctx context.Context) ([]models.CourseCompletionStat, error) {
	const query = `SELECT c.course_id, c.title AS course_title,
        COUNT(e.enrollment_id) AS total_enrollments,
        COUNT(e.final_grade) AS completed_count,
        CASE WHEN COUNT(e.enrollment_id) = 0 THEN 0
             ELSE ROUND(COUNT(e.final_grade)::numeric * 100 / COUNT(e.enrollment_id), 2)
        END AS completion_rate
        FROM courses c
        LEFT JOIN enrollments e ON e.course_id = c.course_id
        GROUP BY c.course_id, c.title
        ORDER BY completion_rate DESC
        LIMIT 5`
	var stats []models.CourseCompletionStat
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("course completion stats: %w", err)
	}
	return stats, nil
}

// AssignmentStats returns, per course, how many of its assignment slots
// (assignments x enrolled students) received a submission.
func (r *AnalyticsRepository) AssignmentStats(ctx context.Context) ([]models.AssignmentStat, error) {
	const query = `SELECT c.course_id, c.title AS course_title,
        COUNT(DISTINCT a.assignment_id) AS total_assignments,
        COUNT(DISTINCT s.submission_id) AS submitted_count,
        CASE WHEN COUNT(DISTINCT a.assignment_id) * COUNT(DISTINCT e.enrollment_id) = 0 THEN 0
             ELSE ROUND(COUNT(DISTINCT s.submission_id)::numeric * 100
                  / (COUNT(DISTINCT a.assignment_id) * COUNT(DISTINCT e.enrollment_id)), 2)
        END AS submission_rate
        FROM courses c
        LEFT JOIN lessons l ON l.course_id = c.course_id
        LEFT JOIN assignments a ON a.lesson_id = l.lesson_id
        LEFT JOIN enrollments e ON e.course_id = c.course_id
        LEFT JOIN submissions s ON s.assignment_id = a.assignment_id
        GROUP BY c.course_id, c.title
        ORDER BY c.course_id`
	var stats []models.AssignmentStat
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("assignment stats: %w", err)
	}
	return stats, nil
}

// RevenueByCategory sums catalog prices per category, highest first.
func (r *AnalyticsRepository) RevenueByCategory(ctx context.Context) ([]models.CategoryRevenue, error) {
	const query = `SELECT cat.name AS category_name,
        COALESCE(SUM(c.price), 0) AS total_revenue,
        COUNT(c.course_id) AS course_count
        FROM categories cat
        LEFT JOIN courses c ON c.category_id = cat.category_id
        GROUP BY cat.name
        ORDER BY total_revenue DESC`
	var revenue []models.CategoryRevenue
	if err := r.db.SelectContext(ctx, &revenue, query); err != nil {
		return nil, fmt.Errorf("revenue by category: %w", err)
	}
	return revenue, nil
}

// OverallCompletionRate returns the platform-wide share of enrollments with a
// final grade, zero when there are no enrollments.
func (r *AnalyticsRepository) OverallCompletionRate(ctx context.Context) (float64, error) {
	const query = `SELECT CASE WHEN COUNT(*) = 0 THEN 0
        ELSE ROUND(COUNT(final_grade)::numeric * 100 / COUNT(*), 2)
        END
        FROM enrollments`
	var rate float64
	if err := r.db.GetContext(ctx, &rate, query); err != nil {
		return 0, fmt.Errorf("overall completion rate: %w", err)
	}
	return rate, nil
}

// TeacherActivity returns per-teacher course, audience and rating figures.
// The rating stays null for teachers whose courses are unreviewed.
func (r *AnalyticsRepository) TeacherActivity(ctx context.Context) ([]models.TeacherActivity, error) {
	const query = `SELECT t.teacher_id, u.first_name, u.last_name,
        COUNT(DISTINCT c.course_id) AS course_count,
        COUNT(DISTINCT e.student_id) AS total_students,
        AVG(rv.rating) AS avg_course_rating
        FROM teachers t
        JOIN users u ON u.user_id = t.teacher_id
        LEFT JOIN courses c ON c.teacher_id = t.teacher_id
        LEFT JOIN enrollments e ON e.course_id = c.course_id
        LEFT JOIN reviews rv ON rv.enrollment_id = e.enrollment_id
        GROUP BY t.teacher_id, u.first_name, u.last_name
        ORDER BY course_count DESC`
	var activity []models.TeacherActivity
	if err := r.db.SelectContext(ctx, &activity, query); err != nil {
		return nil, fmt.Errorf("teacher activity: %w", err)
	}
	return activity, nil
}
