package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// LessonRepository handles persistence of lessons.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository constructs the repository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// Create inserts a lesson and fills in the generated id.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	const query = `INSERT INTO lessons (course_id, title, content, video_url, duration_minutes, lesson_order)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING lesson_id`
	if err := r.db.GetContext(ctx, &lesson.LessonID, query,
		lesson.CourseID, lesson.Title, lesson.Content, lesson.VideoURL, lesson.DurationMinutes, lesson.LessonOrder,
	); err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}
	return nil
}

// FindByID returns a lesson by its id.
func (r *LessonRepository) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	const query = `SELECT lesson_id, course_id, title, content, video_url, duration_minutes, lesson_order
        FROM lessons WHERE lesson_id = $1 LIMIT 1`
	var lesson models.Lesson
	if err := r.db.GetContext(ctx, &lesson, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	return &lesson, nil
}

// ListByCourse returns the lessons of a course in display order.
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	const query = `SELECT lesson_id, course_id, title, content, video_url, duration_minutes, lesson_order
        FROM lessons WHERE course_id = $1 ORDER BY lesson_order`
	var lessons []models.Lesson
	if err := r.db.SelectContext(ctx, &lessons, query, courseID); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

// Update updates the mutable fields of a lesson. lesson_order is a raw field
// update guarded only by the per-course unique constraint; Reorder is the
// operation that keeps sibling ordering consistent.
func (r *LessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	const query = `UPDATE lessons SET title = :title, content = :content, video_url = :video_url,
        duration_minutes = :duration_minutes, lesson_order = :lesson_order
        WHERE lesson_id = :lesson_id`
	if _, err := r.db.NamedExecContext(ctx, query, lesson); err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}
	return nil
}

// Delete removes a lesson and, via cascade, its assignments.
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE lesson_id = $1`, id); err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}
	return nil
}

// Reorder renumbers all lessons of a course to match the given id sequence,
// assigning orders 1..n in one transaction. The sequence must contain every
// lesson of the course exactly once.
func (r *LessonRepository) Reorder(ctx context.Context, courseID int64, lessonIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin lesson reorder: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var total int
	if err := tx.GetContext(ctx, &total, `SELECT COUNT(*) FROM lessons WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("count lessons: %w", err)
	}
	if total != len(lessonIDs) {
		return fmt.Errorf("reorder requires all %d lessons of the course, got %d", total, len(lessonIDs))
	}

	// Shift existing orders out of the target range so the unique
	// constraint cannot trip while rows are renumbered one by one.
	if _, err := tx.ExecContext(ctx, `UPDATE lessons SET lesson_order = lesson_order + 1000000 WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("shift lesson orders: %w", err)
	}

	for i, lessonID := range lessonIDs {
		res, err := tx.ExecContext(ctx,
			`UPDATE lessons SET lesson_order = $1 WHERE lesson_id = $2 AND course_id = $3`,
			i+1, lessonID, courseID,
		)
		if err != nil {
			return fmt.Errorf("renumber lesson %d: %w", lessonID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("renumber lesson %d: %w", lessonID, err)
		}
		if affected == 0 {
			return fmt.Errorf("lesson %d does not belong to course %d", lessonID, courseID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lesson reorder: %w", err)
	}
	return nil
}
