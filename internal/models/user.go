package models

import "time"

// User represents a platform account stored in the users table.
type User struct {
	UserID         int64      `db:"user_id" json:"user_id"`
	Email          string     `db:"email" json:"email"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	Phone          string     `db:"phone" json:"phone"`
	DateRegistered time.Time  `db:"date_registered" json:"date_registered"`
	LastLogin      *time.Time `db:"last_login" json:"last_login,omitempty"`
	RoleID         int64      `db:"role_id" json:"role_id"`
	StatusID       int64      `db:"status_id" json:"status_id"`
}

// UserProfile is a user joined with its status dictionary row.
type UserProfile struct {
	UserID         int64      `db:"user_id" json:"user_id"`
	Email          string     `db:"email" json:"email"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	Phone          string     `db:"phone" json:"phone"`
	StatusCode     string     `db:"status_code" json:"status_code"`
	StatusName     string     `db:"status_name" json:"status_name"`
	DateRegistered time.Time  `db:"date_registered" json:"date_registered"`
	LastLogin      *time.Time `db:"last_login" json:"last_login,omitempty"`
}

// UserListItem is the listing projection ordered by registration date.
type UserListItem struct {
	UserID         int64      `db:"user_id" json:"user_id"`
	Email          string     `db:"email" json:"email"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	StatusCode     string     `db:"status_code" json:"status_code"`
	DateRegistered time.Time  `db:"date_registered" json:"date_registered"`
	LastLogin      *time.Time `db:"last_login" json:"last_login,omitempty"`
}

// UserCredentials is the by-email projection consumed by the auth flow.
// The password hash is exposed on purpose: the endpoint serves internal
// credential verification, matching the platform contract.
type UserCredentials struct {
	UserID       int64  `db:"user_id" json:"user_id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"password_hash"`
	StatusID     int64  `db:"status_id" json:"status_id"`
}
