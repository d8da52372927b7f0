package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// CourseRepository handles persistence of the course catalog.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseDetailColumns = `c.course_id, c.title, c.description, c.level_id, c.price, c.duration_hours,
        c.language_id, c.category_id, c.created_at, c.teacher_id,
        lv.code AS level_code, lv.name AS level_name,
        lg.code AS language_code, lg.name AS language_name,
        cat.name AS category_name,
        u.first_name AS teacher_first_name, u.last_name AS teacher_last_name`

const courseDetailJoins = `FROM courses c
        JOIN course_levels lv ON lv.level_id = c.level_id
        JOIN languages lg ON lg.language_id = c.language_id
        JOIN categories cat ON cat.category_id = c.category_id
        JOIN users u ON u.user_id = c.teacher_id`

// Create inserts a course and fills in the generated id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses (title, description, level_id, price, duration_hours, language_id, category_id, created_at, teacher_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING course_id`
	if err := r.db.GetContext(ctx, &course.CourseID, query,
		course.Title, course.Description, course.LevelID, course.Price, course.DurationHours,
		course.LanguageID, course.CategoryID, course.CreatedAt, course.TeacherID,
	); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// FindByID returns a course by its id.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT course_id, title, description, level_id, price, duration_hours, language_id, category_id, created_at, teacher_id
        FROM courses WHERE course_id = $1 LIMIT 1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

// FindDetail returns a course joined with its lookup names.
func (r *CourseRepository) FindDetail(ctx context.Context, id int64) (*models.CourseDetail, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE c.course_id = $1 LIMIT 1`, courseDetailColumns, courseDetailJoins)
	var detail models.CourseDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course detail: %w", err)
	}
	return &detail, nil
}

// List returns courses matching the filter, newest first.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, error) {
	var conditions []string
	var args []interface{}

	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("c.category_id = $%d", len(args)))
	}
	if filter.LevelID > 0 {
		args = append(args, filter.LevelID)
		conditions = append(conditions, fmt.Sprintf("c.level_id = $%d", len(args)))
	}
	if filter.LanguageID > 0 {
		args = append(args, filter.LanguageID)
		conditions = append(conditions, fmt.Sprintf("c.language_id = $%d", len(args)))
	}
	if filter.TeacherID > 0 {
		args = append(args, filter.TeacherID)
		conditions = append(conditions, fmt.Sprintf("c.teacher_id = $%d", len(args)))
	}
	if filter.TeacherFullName != "" {
		args = append(args, "%"+strings.ToLower(filter.TeacherFullName)+"%")
		conditions = append(conditions, fmt.Sprintf("(LOWER(u.first_name) LIKE $%d OR LOWER(u.last_name) LIKE $%d)", len(args), len(args)))
	}

	clause := ""
	if len(conditions) > 0 {
		clause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s %s%s ORDER BY c.created_at DESC`, courseDetailColumns, courseDetailJoins, clause)
	var courses []models.CourseDetail
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListByTeacher returns the courses owned by a teacher, newest first.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	const query = `SELECT course_id, title, description, level_id, price, duration_hours, language_id, category_id, created_at, teacher_id
        FROM courses WHERE teacher_id = $1 ORDER BY created_at DESC`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, teacherID); err != nil {
		return nil, fmt.Errorf("list teacher courses: %w", err)
	}
	return courses, nil
}

// Update updates the mutable fields of a course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	const query = `UPDATE courses SET title = :title, description = :description, level_id = :level_id,
        price = :price, duration_hours = :duration_hours, language_id = :language_id,
        category_id = :category_id, teacher_id = :teacher_id
        WHERE course_id = :course_id`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// Delete removes a course; owned lessons, assignments, enrollments and their
// children go with it through the schema's cascade rules.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE course_id = $1`, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// Exists reports whether a course exists.
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM courses WHERE course_id = $1 LIMIT 1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check course: %w", err)
	}
	return true, nil
}

// Structure returns the denormalized lesson+assignment rows of a course,
// ordered by lesson_order then assignment id. Lessons without assignments
// keep one row with null assignment columns.
func (r *CourseRepository) Structure(ctx context.Context, courseID int64) ([]models.CourseStructureRow, error) {
	const query = `SELECT c.course_id, c.title AS course_title,
        l.lesson_id, l.lesson_order, l.title AS lesson_title,
        a.assignment_id, a.title AS assignment_title, a.deadline, a.max_score,
        at.code AS assignment_type
        FROM lessons l
        JOIN courses c ON c.course_id = l.course_id
        LEFT JOIN assignments a ON a.lesson_id = l.lesson_id
        LEFT JOIN assignment_types at ON at.type_id = a.type_id
        WHERE l.course_id = $1
        ORDER BY l.lesson_order, a.assignment_id`
	var rows []models.CourseStructureRow
	if err := r.db.SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("course structure: %w", err)
	}
	return rows, nil
}
