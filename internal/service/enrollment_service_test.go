package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
)

type mockExistsRepo struct {
	existing map[int64]bool
	err      error
}

func (m *mockExistsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existing[id], nil
}

type mockEnrollmentRepo struct {
	enrollments map[int64]models.Enrollment
	byPair      map[[2]int64]int64
	nextID      int64
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if m.enrollments == nil {
		m.enrollments = make(map[int64]models.Enrollment)
		m.byPair = make(map[[2]int64]int64)
	}
	m.nextID++
	enrollment.EnrollmentID = m.nextID
	m.enrollments[enrollment.EnrollmentID] = *enrollment
	m.byPair[[2]int64{enrollment.StudentID, enrollment.CourseID}] = enrollment.EnrollmentID
	return nil
}

func (m *mockEnrollmentRepo) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if e, ok := m.enrollments[id]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEnrollmentRepo) FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if id, ok := m.byPair[[2]int64{studentID, courseID}]; ok {
		return m.FindByID(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (m *mockEnrollmentRepo) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	_, ok := m.byPair[[2]int64{studentID, courseID}]
	return ok, nil
}

func (m *mockEnrollmentRepo) UpdateStatus(ctx context.Context, id, statusID int64) error {
	e := m.enrollments[id]
	e.StatusID = statusID
	m.enrollments[id] = e
	return nil
}

func (m *mockEnrollmentRepo) Complete(ctx context.Context, id, statusID int64, finalGrade float64) error {
	e := m.enrollments[id]
	e.StatusID = statusID
	e.FinalGrade = &finalGrade
	m.enrollments[id] = e
	return nil
}

func (m *mockEnrollmentRepo) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error) {
	return []models.StudentCourse{}, nil
}

func (m *mockEnrollmentRepo) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseStudent, error) {
	return []models.CourseStudent{}, nil
}

type mockEnrollmentDicts struct {
	statuses map[string]int64
}

func (m *mockEnrollmentDicts) FindEnrollmentStatusID(ctx context.Context, code string) (int64, error) {
	if id, ok := m.statuses[code]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

func newEnrollmentFixture() (*mockEnrollmentRepo, *EnrollmentService) {
	repo := &mockEnrollmentRepo{}
	students := &mockExistsRepo{existing: map[int64]bool{4: true}}
	courses := &mockExistsRepo{existing: map[int64]bool{9: true}}
	dicts := &mockEnrollmentDicts{statuses: map[string]int64{"active": 1, "completed": 2, "dropped": 3}}
	svc := NewEnrollmentService(repo, students, courses, dicts, nil, zap.NewNop())
	return repo, svc
}

func TestEnrollmentCreate(t *testing.T) {
	repo, svc := newEnrollmentFixture()

	enrollment, err := svc.Create(context.Background(), models.CreateEnrollmentRequest{StudentID: 4, CourseID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(1), enrollment.StatusID)
	assert.Len(t, repo.enrollments, 1)
}

func TestEnrollmentCreateDuplicateConflict(t *testing.T) {
	_, svc := newEnrollmentFixture()

	_, err := svc.Create(context.Background(), models.CreateEnrollmentRequest{StudentID: 4, CourseID: 9})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), models.CreateEnrollmentRequest{StudentID: 4, CourseID: 9})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, appErrors.FromError(err).Status)
}

func TestEnrollmentCreateUnknownStudent(t *testing.T) {
	_, svc := newEnrollmentFixture()

	_, err := svc.Create(context.Background(), models.CreateEnrollmentRequest{StudentID: 77, CourseID: 9})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestEnrollmentUpdateStatusUnknownCode(t *testing.T) {
	_, svc := newEnrollmentFixture()

	_, err := svc.Create(context.Background(), models.CreateEnrollmentRequest{StudentID: 4, CourseID: 9})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), 4, 9, models.UpdateEnrollmentStatusRequest{StatusCode: "paused"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestEnrollmentComplete(t *testing.T) {
	repo, svc := newEnrollmentFixture()

	_, err := svc.Create(context.Background(), models.CreateEnrollmentRequest{StudentID: 4, CourseID: 9})
	require.NoError(t, err)

	updated, err := svc.Complete(context.Background(), 4, 9, models.CompleteEnrollmentRequest{StatusCode: "completed", FinalGrade: 91.5})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.StatusID)
	require.NotNil(t, updated.FinalGrade)
	assert.Equal(t, 91.5, *updated.FinalGrade)
	assert.Len(t, repo.enrollments, 1)
}

func TestEnrollmentCompleteMissingEnrollment(t *testing.T) {
	_, svc := newEnrollmentFixture()

	_, err := svc.Complete(context.Background(), 4, 9, models.CompleteEnrollmentRequest{StatusCode: "completed", FinalGrade: 50})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
