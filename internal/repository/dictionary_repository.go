package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// DictionaryRepository reads the lookup tables.
type DictionaryRepository struct {
	db *sqlx.DB
}

// NewDictionaryRepository constructs the repository.
func NewDictionaryRepository(db *sqlx.DB) *DictionaryRepository {
	return &DictionaryRepository{db: db}
}

func (r *DictionaryRepository) list(ctx context.Context, table, idColumn string) ([]models.Dictionary, error) {
	query := fmt.Sprintf("SELECT %s AS id, code, name FROM %s ORDER BY %s", idColumn, table, idColumn)
	var entries []models.Dictionary
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return entries, nil
}

// ListUserStatuses returns user statuses ordered by id.
func (r *DictionaryRepository) ListUserStatuses(ctx context.Context) ([]models.Dictionary, error) {
	return r.list(ctx, "user_statuses", "status_id")
}

// ListRoles returns roles ordered by id.
func (r *DictionaryRepository) ListRoles(ctx context.Context) ([]models.Dictionary, error) {
	return r.list(ctx, "roles", "role_id")
}

// ListCourseLevels returns course levels ordered by id.
func (r *DictionaryRepository) ListCourseLevels(ctx context.Context) ([]models.Dictionary, error) {
	return r.list(ctx, "course_levels", "level_id")
}

// ListAssignmentTypes returns assignment types ordered by id.
func (r *DictionaryRepository) ListAssignmentTypes(ctx context.Context) ([]models.Dictionary, error) {
	return r.list(ctx, "assignment_types", "type_id")
}

// ListEnrollmentStatuses returns enrollment statuses ordered by id.
func (r *DictionaryRepository) ListEnrollmentStatuses(ctx context.Context) ([]models.Dictionary, error) {
	return r.list(ctx, "enrollment_statuses", "status_id")
}

// ListLanguages returns languages ordered by id.
func (r *DictionaryRepository) ListLanguages(ctx context.Context) ([]models.Dictionary, error) {
	return r.list(ctx, "languages", "language_id")
}

// ListCategories returns categories ordered by name, ascending.
func (r *DictionaryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	const query = `SELECT category_id AS id, name FROM categories ORDER BY name`
	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// EnsureRole returns the id of the role with the given code, creating the
// row when missing.
func (r *DictionaryRepository) EnsureRole(ctx context.Context, code, name string) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `SELECT role_id FROM roles WHERE code = $1`, code)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("find role %s: %w", code, err)
	}
	if err := r.db.GetContext(ctx, &id, `INSERT INTO roles (code, name) VALUES ($1, $2) RETURNING role_id`, code, name); err != nil {
		return 0, fmt.Errorf("create role %s: %w", code, err)
	}
	return id, nil
}

// FindEnrollmentStatusID returns the id of the enrollment status with the
// given code.
func (r *DictionaryRepository) FindEnrollmentStatusID(ctx context.Context, code string) (int64, error) {
	var id int64
	if err := r.db.GetContext(ctx, &id, `SELECT status_id FROM enrollment_statuses WHERE code = $1`, code); err != nil {
		if err == sql.ErrNoRows {
			return 0, err
		}
		return 0, fmt.Errorf("find enrollment status %s: %w", code, err)
	}
	return id, nil
}

// EnsureUserStatus returns the id of the user status with the given code,
// creating the row when missing.
func (r *DictionaryRepository) EnsureUserStatus(ctx context.Context, code, name string) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `SELECT status_id FROM user_statuses WHERE code = $1`, code)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("find user status %s: %w", code, err)
	}
	if err := r.db.GetContext(ctx, &id, `INSERT INTO user_statuses (code, name) VALUES ($1, $2) RETURNING status_id`, code, name); err != nil {
		return 0, fmt.Errorf("create user status %s: %w", code, err)
	}
	return id, nil
}
