package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// TeacherRepository handles persistence of teacher profiles.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs the repository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a teacher profile sharing the user's primary key.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	const query = `INSERT INTO teachers (teacher_id, academic_degree, experience_years, specialization, bio)
        VALUES (:teacher_id, :academic_degree, :experience_years, :specialization, :bio)`
	if _, err := r.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// FindProfile returns the teacher merged with its user identity fields.
func (r *TeacherRepository) FindProfile(ctx context.Context, id int64) (*models.TeacherProfile, error) {
	const query = `SELECT t.teacher_id, u.email, u.first_name, u.last_name, u.phone,
        t.academic_degree, t.experience_years, t.specialization, t.bio
        FROM teachers t
        JOIN users u ON u.user_id = t.teacher_id
        WHERE t.teacher_id = $1 LIMIT 1`
	var profile models.TeacherProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find teacher profile: %w", err)
	}
	return &profile, nil
}

// Update updates the teaching attributes of a teacher profile.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	const query = `UPDATE teachers SET academic_degree = :academic_degree, experience_years = :experience_years,
        specialization = :specialization, bio = :bio
        WHERE teacher_id = :teacher_id`
	if _, err := r.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	return nil
}

// Exists reports whether a teacher profile exists for the id.
func (r *TeacherRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM teachers WHERE teacher_id = $1 LIMIT 1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher: %w", err)
	}
	return true, nil
}
