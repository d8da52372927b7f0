package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims carries the authenticated identity through the request context.
type JWTClaims struct {
	UserID   int64  `json:"uid"`
	Email    string `json:"email"`
	RoleCode string `json:"role"`
	jwt.RegisteredClaims
}

// AuthAccount is a user joined with its role and status codes, used to
// verify credentials.
type AuthAccount struct {
	UserID       int64  `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	RoleCode     string `db:"role_code"`
	StatusCode   string `db:"status_code"`
}

// LoginRequest is the credential payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and basic account info.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        UserInfo  `json:"user"`
}

// UserInfo is the compact account representation embedded in auth responses.
type UserInfo struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleCode  string `json:"role"`
}
