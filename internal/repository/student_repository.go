package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// StudentRepository handles persistence of student profiles.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a student profile sharing the user's primary key.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students (student_id, birth_date, education_level, university, faculty, year_of_study, scholarship)
        VALUES (:student_id, :birth_date, :education_level, :university, :faculty, :year_of_study, :scholarship)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// FindProfile returns the student merged with its user identity fields.
func (r *StudentRepository) FindProfile(ctx context.Context, id int64) (*models.StudentProfile, error) {
	const query = `SELECT s.student_id, u.email, u.first_name, u.last_name, u.phone,
        s.birth_date, s.education_level, s.university, s.faculty, s.year_of_study, s.scholarship
        FROM students s
        JOIN users u ON u.user_id = s.student_id
        WHERE s.student_id = $1 LIMIT 1`
	var profile models.StudentProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student profile: %w", err)
	}
	return &profile, nil
}

// Update updates the academic attributes of a student profile.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET birth_date = :birth_date, education_level = :education_level,
        university = :university, faculty = :faculty, year_of_study = :year_of_study, scholarship = :scholarship
        WHERE student_id = :student_id`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Exists reports whether a student profile exists for the id.
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM students WHERE student_id = $1 LIMIT 1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}
	return true, nil
}
