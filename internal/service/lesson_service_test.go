package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
)

type mockLessonRepo struct {
	lessons    map[int64]models.Lesson
	reorderErr error
	reordered  []int64
}

func (m *mockLessonRepo) Create(ctx context.Context, lesson *models.Lesson) error {
	if m.lessons == nil {
		m.lessons = make(map[int64]models.Lesson)
	}
	lesson.LessonID = int64(len(m.lessons) + 1)
	m.lessons[lesson.LessonID] = *lesson
	return nil
}

func (m *mockLessonRepo) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	if l, ok := m.lessons[id]; ok {
		return &l, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockLessonRepo) ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	out := make([]models.Lesson, 0, len(m.lessons))
	for _, l := range m.lessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockLessonRepo) Update(ctx context.Context, lesson *models.Lesson) error {
	m.lessons[lesson.LessonID] = *lesson
	return nil
}

func (m *mockLessonRepo) Delete(ctx context.Context, id int64) error {
	delete(m.lessons, id)
	return nil
}

func (m *mockLessonRepo) Reorder(ctx context.Context, courseID int64, lessonIDs []int64) error {
	if m.reorderErr != nil {
		return m.reorderErr
	}
	m.reordered = lessonIDs
	return nil
}

func newLessonFixture() (*mockLessonRepo, *LessonService) {
	repo := &mockLessonRepo{lessons: map[int64]models.Lesson{
		10: {LessonID: 10, CourseID: 1, Title: "Intro", LessonOrder: 1},
		20: {LessonID: 20, CourseID: 1, Title: "Basics", LessonOrder: 2},
	}}
	courses := &mockExistsRepo{existing: map[int64]bool{1: true}}
	svc := NewLessonService(repo, courses, nil, zap.NewNop())
	return repo, svc
}

func TestLessonCreateUnknownCourse(t *testing.T) {
	_, svc := newLessonFixture()

	_, err := svc.Create(context.Background(), models.CreateLessonRequest{CourseID: 99, Title: "X", LessonOrder: 1})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestLessonReorder(t *testing.T) {
	repo, svc := newLessonFixture()

	lessons, err := svc.Reorder(context.Background(), 1, models.ReorderLessonsRequest{LessonIDs: []int64{20, 10}})
	require.NoError(t, err)
	assert.Equal(t, []int64{20, 10}, repo.reordered)
	assert.Len(t, lessons, 2)
}

func TestLessonReorderRejectsDuplicateIDs(t *testing.T) {
	repo, svc := newLessonFixture()

	_, err := svc.Reorder(context.Background(), 1, models.ReorderLessonsRequest{LessonIDs: []int64{10, 10}})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
	assert.Nil(t, repo.reordered)
}

func TestLessonReorderRepoRejection(t *testing.T) {
	repo, svc := newLessonFixture()
	repo.reorderErr = errors.New("lesson 777 does not belong to course 1")

	_, err := svc.Reorder(context.Background(), 1, models.ReorderLessonsRequest{LessonIDs: []int64{10, 777}})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
