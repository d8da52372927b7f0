package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// AssignmentRepository handles persistence of assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts an assignment and fills in the generated id.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	const query = `INSERT INTO assignments (lesson_id, title, description, deadline, max_score, type_id)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING assignment_id`
	if err := r.db.GetContext(ctx, &assignment.AssignmentID, query,
		assignment.LessonID, assignment.Title, assignment.Description,
		assignment.Deadline, assignment.MaxScore, assignment.TypeID,
	); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// FindByID returns an assignment by its id.
func (r *AssignmentRepository) FindByID(ctx context.Context, id int64) (*models.Assignment, error) {
	const query = `SELECT assignment_id, lesson_id, title, description, deadline, max_score, type_id
        FROM assignments WHERE assignment_id = $1 LIMIT 1`
	var assignment models.Assignment
	if err := r.db.GetContext(ctx, &assignment, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return &assignment, nil
}

// FindDetail returns an assignment joined with its type lookup.
func (r *AssignmentRepository) FindDetail(ctx context.Context, id int64) (*models.AssignmentDetail, error) {
	const query = `SELECT a.assignment_id, a.lesson_id, a.title, a.description, a.deadline, a.max_score, a.type_id,
        at.code AS type_code, at.name AS type_name
        FROM assignments a
        JOIN assignment_types at ON at.type_id = a.type_id
        WHERE a.assignment_id = $1 LIMIT 1`
	var detail models.AssignmentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find assignment detail: %w", err)
	}
	return &detail, nil
}

// ListByLesson returns a lesson's assignments in insertion order.
func (r *AssignmentRepository) ListByLesson(ctx context.Context, lessonID int64) ([]models.AssignmentDetail, error) {
	const query = `SELECT a.assignment_id, a.lesson_id, a.title, a.description, a.deadline, a.max_score, a.type_id,
        at.code AS type_code, at.name AS type_name
        FROM assignments a
        JOIN assignment_types at ON at.type_id = a.type_id
        WHERE a.lesson_id = $1
        ORDER BY a.assignment_id`
	var assignments []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &assignments, query, lessonID); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// Update updates the mutable fields of an assignment.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	const query = `UPDATE assignments SET title = :title, description = :description, deadline = :deadline,
        max_score = :max_score, type_id = :type_id
        WHERE assignment_id = :assignment_id`
	if _, err := r.db.NamedExecContext(ctx, query, assignment); err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

// Delete removes an assignment and, via cascade, its submissions.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE assignment_id = $1`, id); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

// Exists reports whether an assignment exists.
func (r *AssignmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM assignments WHERE assignment_id = $1 LIMIT 1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check assignment: %w", err)
	}
	return true, nil
}
