package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coursehub/coursehub-api/internal/models"
)

// UserRepository provides database access for accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in the generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.DateRegistered.IsZero() {
		user.DateRegistered = time.Now().UTC()
	}
	const query = `INSERT INTO users (email, password_hash, first_name, last_name, phone, date_registered, role_id, status_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING user_id`
	if err := r.db.GetContext(ctx, &user.UserID, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Phone,
		user.DateRegistered, user.RoleID, user.StatusID,
	); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT user_id, email, password_hash, first_name, last_name, phone, date_registered, last_login, role_id, status_id
        FROM users WHERE user_id = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindProfile returns a user joined with its status lookup.
func (r *UserRepository) FindProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	const query = `SELECT u.user_id, u.email, u.first_name, u.last_name, u.phone,
        us.code AS status_code, us.name AS status_name, u.date_registered, u.last_login
        FROM users u
        JOIN user_statuses us ON us.status_id = u.status_id
        WHERE u.user_id = $1 LIMIT 1`
	var profile models.UserProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user profile: %w", err)
	}
	return &profile, nil
}

// FindCredentialsByEmail returns the credential projection for an email.
func (r *UserRepository) FindCredentialsByEmail(ctx context.Context, email string) (*models.UserCredentials, error) {
	const query = `SELECT user_id, email, password_hash, status_id FROM users WHERE email = $1 LIMIT 1`
	var creds models.UserCredentials
	if err := r.db.GetContext(ctx, &creds, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &creds, nil
}

// FindAuthByEmail returns a user joined with role and status codes.
func (r *UserRepository) FindAuthByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	const query = `SELECT u.user_id, u.email, u.password_hash, u.first_name, u.last_name,
        ro.code AS role_code, us.code AS status_code
        FROM users u
        JOIN roles ro ON ro.role_id = u.role_id
        JOIN user_statuses us ON us.status_id = u.status_id
        WHERE u.email = $1 LIMIT 1`
	var account models.AuthAccount
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find auth account: %w", err)
	}
	return &account, nil
}

// List returns users joined with status codes, newest registrations first.
func (r *UserRepository) List(ctx context.Context) ([]models.UserListItem, error) {
	const query = `SELECT u.user_id, u.email, u.first_name, u.last_name,
        us.code AS status_code, u.date_registered, u.last_login
        FROM users u
        JOIN user_statuses us ON us.status_id = u.status_id
        ORDER BY u.date_registered DESC`
	var users []models.UserListItem
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update updates mutable identity fields of a user.
func (r *UserRepository) Update(ctx context.Context, id int64, firstName, lastName, phone string) error {
	const query = `UPDATE users SET first_name = $2, last_name = $3, phone = $4 WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, firstName, lastName, phone); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateStatus sets the status reference of a user.
func (r *UserRepository) UpdateStatus(ctx context.Context, id, statusID int64) error {
	const query = `UPDATE users SET status_id = $2 WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, statusID); err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	return nil
}

// UpdateLastLogin updates the last_login timestamp for a user.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, ts time.Time) error {
	const query = `UPDATE users SET last_login = $2 WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, ts); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// HasStudentProfile reports whether a student row shares the user id.
func (r *UserRepository) HasStudentProfile(ctx context.Context, id int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM students WHERE student_id = $1 LIMIT 1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student profile: %w", err)
	}
	return true, nil
}

// HasTeacherProfile reports whether a teacher row shares the user id.
func (r *UserRepository) HasTeacherProfile(ctx context.Context, id int64) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM teachers WHERE teacher_id = $1 LIMIT 1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher profile: %w", err)
	}
	return true, nil
}

// deleteCascadeStatements removes the dependency closure of one user,
// bottom-up. Both profile closures run unconditionally: the statements are
// no-ops for a missing profile, and a user holding both profiles gets both
// closures removed in the same transaction.
var deleteCascadeStatements = []string{
	// student-owned rows
	`DELETE FROM reviews WHERE enrollment_id IN (SELECT enrollment_id FROM enrollments WHERE student_id = $1)`,
	`DELETE FROM submission_files WHERE submission_id IN (SELECT submission_id FROM submissions WHERE student_id = $1)`,
	`DELETE FROM submissions WHERE student_id = $1`,
	`DELETE FROM enrollments WHERE student_id = $1`,
	`DELETE FROM students WHERE student_id = $1`,
	// teacher-owned rows
	`DELETE FROM reviews WHERE enrollment_id IN (
        SELECT e.enrollment_id FROM enrollments e
        JOIN courses c ON c.course_id = e.course_id
        WHERE c.teacher_id = $1)`,
	`DELETE FROM submission_files WHERE submission_id IN (
        SELECT s.submission_id FROM submissions s
        JOIN assignments a ON a.assignment_id = s.assignment_id
        JOIN lessons l ON l.lesson_id = a.lesson_id
        JOIN courses c ON c.course_id = l.course_id
        WHERE c.teacher_id = $1)`,
	`DELETE FROM submissions WHERE assignment_id IN (
        SELECT a.assignment_id FROM assignments a
        JOIN lessons l ON l.lesson_id = a.lesson_id
        JOIN courses c ON c.course_id = l.course_id
        WHERE c.teacher_id = $1)`,
	`DELETE FROM assignments WHERE lesson_id IN (
        SELECT l.lesson_id FROM lessons l
        JOIN courses c ON c.course_id = l.course_id
        WHERE c.teacher_id = $1)`,
	`DELETE FROM lessons WHERE course_id IN (SELECT course_id FROM courses WHERE teacher_id = $1)`,
	`DELETE FROM enrollments WHERE course_id IN (SELECT course_id FROM courses WHERE teacher_id = $1)`,
	`DELETE FROM courses WHERE teacher_id = $1`,
	`DELETE FROM teachers WHERE teacher_id = $1`,
	// the user itself
	`DELETE FROM users WHERE user_id = $1`,
}

// DeleteCascade removes a user together with its full dependency closure in
// a single transaction. Either everything is removed or nothing is.
func (r *UserRepository) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin user delete: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range deleteCascadeStatements {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("delete user closure: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit user delete: %w", err)
	}
	return nil
}
