package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
)

type mockAuthRepo struct {
	accounts   map[string]models.AuthAccount
	lastLogins map[int64]time.Time
}

func (m *mockAuthRepo) FindAuthByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	if a, ok := m.accounts[email]; ok {
		return &a, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthRepo) UpdateLastLogin(ctx context.Context, id int64, ts time.Time) error {
	if m.lastLogins == nil {
		m.lastLogins = make(map[int64]time.Time)
	}
	m.lastLogins[id] = ts
	return nil
}

func newAuthFixture(t *testing.T) (*mockAuthRepo, *AuthService) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockAuthRepo{accounts: map[string]models.AuthAccount{
		"student@example.com": {
			UserID:       7,
			Email:        "student@example.com",
			PasswordHash: string(hash),
			FirstName:    "Jane",
			LastName:     "Doe",
			RoleCode:     models.RoleCodeStudent,
			StatusCode:   models.UserStatusCodeActive,
		},
		"blocked@example.com": {
			UserID:       8,
			Email:        "blocked@example.com",
			PasswordHash: string(hash),
			RoleCode:     models.RoleCodeStudent,
			StatusCode:   "blocked",
		},
	}}
	svc := NewAuthService(repo, nil, zap.NewNop(), AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "coursehub-api",
	})
	return repo, svc
}

func TestAuthLoginIssuesValidToken(t *testing.T) {
	repo, svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "student@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, models.RoleCodeStudent, resp.User.RoleCode)
	assert.Contains(t, repo.lastLogins, int64(7))

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, models.RoleCodeStudent, claims.RoleCode)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "student@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}

func TestAuthLoginUnknownEmail(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}

func TestAuthLoginInactiveAccount(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "blocked@example.com", Password: "correct-horse"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, appErrors.FromError(err).Status)
}

func TestAuthValidateTokenRejectsGarbage(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
}
