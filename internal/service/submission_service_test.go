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

type mockSubmissionRepo struct {
	submissions map[int64]models.Submission
	files       map[int64]models.SubmissionFile
	nextID      int64
}

func (m *mockSubmissionRepo) Create(ctx context.Context, submission *models.Submission) error {
	if m.submissions == nil {
		m.submissions = make(map[int64]models.Submission)
	}
	m.nextID++
	submission.SubmissionID = m.nextID
	m.submissions[submission.SubmissionID] = *submission
	return nil
}

func (m *mockSubmissionRepo) FindByID(ctx context.Context, id int64) (*models.Submission, error) {
	if s, ok := m.submissions[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockSubmissionRepo) Exists(ctx context.Context, assignmentID, studentID int64) (bool, error) {
	for _, s := range m.submissions {
		if s.AssignmentID == assignmentID && s.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSubmissionRepo) UpdateGrade(ctx context.Context, id int64, score int, feedback string) error {
	s := m.submissions[id]
	s.Score = &score
	s.Feedback = feedback
	m.submissions[id] = s
	return nil
}

func (m *mockSubmissionRepo) ListByAssignment(ctx context.Context, assignmentID int64) ([]models.AssignmentSubmission, error) {
	return []models.AssignmentSubmission{}, nil
}

func (m *mockSubmissionRepo) ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]models.StudentCourseSubmission, error) {
	return []models.StudentCourseSubmission{}, nil
}

func (m *mockSubmissionRepo) CreateFile(ctx context.Context, file *models.SubmissionFile) error {
	if m.files == nil {
		m.files = make(map[int64]models.SubmissionFile)
	}
	file.FileID = int64(len(m.files) + 1)
	m.files[file.FileID] = *file
	return nil
}

func (m *mockSubmissionRepo) ListFiles(ctx context.Context, submissionID int64) ([]models.SubmissionFile, error) {
	out := make([]models.SubmissionFile, 0, len(m.files))
	for _, f := range m.files {
		if f.SubmissionID == submissionID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockSubmissionRepo) DeleteFile(ctx context.Context, fileID int64) error {
	if _, ok := m.files[fileID]; !ok {
		return sql.ErrNoRows
	}
	delete(m.files, fileID)
	return nil
}

type mockAssignmentFinder struct {
	assignments map[int64]models.Assignment
}

func (m *mockAssignmentFinder) FindByID(ctx context.Context, id int64) (*models.Assignment, error) {
	if a, ok := m.assignments[id]; ok {
		return &a, nil
	}
	return nil, sql.ErrNoRows
}

func newSubmissionFixture() (*mockSubmissionRepo, *SubmissionService) {
	repo := &mockSubmissionRepo{}
	assignments := &mockAssignmentFinder{assignments: map[int64]models.Assignment{
		6: {AssignmentID: 6, LessonID: 10, Title: "Quiz 1", MaxScore: 100, TypeID: 1},
	}}
	students := &mockExistsRepo{existing: map[int64]bool{4: true}}
	courses := &mockExistsRepo{existing: map[int64]bool{9: true}}
	svc := NewSubmissionService(repo, assignments, students, courses, nil, zap.NewNop())
	return repo, svc
}

func TestSubmissionCreate(t *testing.T) {
	repo, svc := newSubmissionFixture()

	submission, err := svc.Create(context.Background(), models.CreateSubmissionRequest{AssignmentID: 6, StudentID: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(1), submission.SubmissionID)
	assert.Len(t, repo.submissions, 1)
}

func TestSubmissionCreateDuplicateConflict(t *testing.T) {
	_, svc := newSubmissionFixture()

	_, err := svc.Create(context.Background(), models.CreateSubmissionRequest{AssignmentID: 6, StudentID: 4})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), models.CreateSubmissionRequest{AssignmentID: 6, StudentID: 4})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, appErrors.FromError(err).Status)
}

func TestSubmissionGradeExceedsMaxScore(t *testing.T) {
	_, svc := newSubmissionFixture()

	submission, err := svc.Create(context.Background(), models.CreateSubmissionRequest{AssignmentID: 6, StudentID: 4})
	require.NoError(t, err)

	_, err = svc.Grade(context.Background(), submission.SubmissionID, models.GradeSubmissionRequest{Score: 101})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestSubmissionGrade(t *testing.T) {
	_, svc := newSubmissionFixture()

	submission, err := svc.Create(context.Background(), models.CreateSubmissionRequest{AssignmentID: 6, StudentID: 4})
	require.NoError(t, err)

	graded, err := svc.Grade(context.Background(), submission.SubmissionID, models.GradeSubmissionRequest{Score: 85, Feedback: "well done"})
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 85, *graded.Score)
	assert.Equal(t, "well done", graded.Feedback)
}

func TestSubmissionDeleteFileNotFound(t *testing.T) {
	_, svc := newSubmissionFixture()

	err := svc.DeleteFile(context.Background(), 123)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestSubmissionAttachAndListFiles(t *testing.T) {
	_, svc := newSubmissionFixture()

	submission, err := svc.Create(context.Background(), models.CreateSubmissionRequest{AssignmentID: 6, StudentID: 4})
	require.NoError(t, err)

	file, err := svc.AttachFile(context.Background(), models.CreateSubmissionFileRequest{
		SubmissionID: submission.SubmissionID,
		FileURL:      "https://files.example.com/answer.pdf",
	})
	require.NoError(t, err)
	assert.NotZero(t, file.FileID)

	files, err := svc.ListFiles(context.Background(), submission.SubmissionID)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
