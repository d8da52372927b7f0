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

type mockUserRepo struct {
	users   map[int64]models.User
	deleted []int64
	nextID  int64
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.users == nil {
		m.users = make(map[int64]models.User)
	}
	m.nextID++
	user.UserID = m.nextID
	m.users[user.UserID] = *user
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	if u, ok := m.users[id]; ok {
		return &models.UserProfile{UserID: u.UserID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Phone: u.Phone}, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindCredentialsByEmail(ctx context.Context, email string) (*models.UserCredentials, error) {
	for _, u := range m.users {
		if u.Email == email {
			return &models.UserCredentials{UserID: u.UserID, Email: u.Email, PasswordHash: u.PasswordHash, StatusID: u.StatusID}, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.UserListItem, error) {
	return []models.UserListItem{}, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, firstName, lastName, phone string) error {
	u := m.users[id]
	u.FirstName, u.LastName, u.Phone = firstName, lastName, phone
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) UpdateStatus(ctx context.Context, id, statusID int64) error {
	u := m.users[id]
	u.StatusID = statusID
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id int64, ts time.Time) error {
	u := m.users[id]
	u.LastLogin = &ts
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) DeleteCascade(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	delete(m.users, id)
	return nil
}

type mockUserDicts struct {
	roleCodes   []string
	statusCodes []string
}

func (m *mockUserDicts) EnsureRole(ctx context.Context, code, name string) (int64, error) {
	m.roleCodes = append(m.roleCodes, code)
	return 1, nil
}

func (m *mockUserDicts) EnsureUserStatus(ctx context.Context, code, name string) (int64, error) {
	m.statusCodes = append(m.statusCodes, code)
	return 1, nil
}

func TestUserCreateDefaultsToActiveStudent(t *testing.T) {
	repo := &mockUserRepo{}
	dicts := &mockUserDicts{}
	svc := NewUserService(repo, dicts, nil, zap.NewNop())

	user, err := svc.Create(context.Background(), models.CreateUserRequest{
		Email:     "new@example.com",
		Password:  "long-enough",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Contains(t, dicts.roleCodes, models.RoleCodeStudent)
	assert.Contains(t, dicts.statusCodes, models.UserStatusCodeActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("long-enough")))
}

func TestUserCreateRejectsShortPassword(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, &mockUserDicts{}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), models.CreateUserRequest{
		Email:     "new@example.com",
		Password:  "short",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestUserDeleteCascades(t *testing.T) {
	repo := &mockUserRepo{users: map[int64]models.User{5: {UserID: 5, Email: "old@example.com"}}}
	svc := NewUserService(repo, &mockUserDicts{}, nil, zap.NewNop())

	err := svc.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Contains(t, repo.deleted, int64(5))
}

func TestUserDeleteMissingUser(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, &mockUserDicts{}, nil, zap.NewNop())

	err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
	assert.Empty(t, repo.deleted)
}
