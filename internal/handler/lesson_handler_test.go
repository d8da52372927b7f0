package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	"github.com/coursehub/coursehub-api/internal/service"
	"github.com/coursehub/coursehub-api/pkg/response"
)

type lessonRepoStub struct {
	lessons   map[int64]models.Lesson
	reordered []int64
}

func (m *lessonRepoStub) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.LessonID = int64(len(m.lessons) + 1)
	m.lessons[lesson.LessonID] = *lesson
	return nil
}

func (m *lessonRepoStub) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	if l, ok := m.lessons[id]; ok {
		return &l, nil
	}
	return nil, sql.ErrNoRows
}

func (m *lessonRepoStub) ListByCourse(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	out := make([]models.Lesson, 0, len(m.lessons))
	for _, l := range m.lessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *lessonRepoStub) Update(ctx context.Context, lesson *models.Lesson) error {
	m.lessons[lesson.LessonID] = *lesson
	return nil
}

func (m *lessonRepoStub) Delete(ctx context.Context, id int64) error {
	delete(m.lessons, id)
	return nil
}

func (m *lessonRepoStub) Reorder(ctx context.Context, courseID int64, lessonIDs []int64) error {
	m.reordered = lessonIDs
	return nil
}

type courseExistsStub struct {
	existing map[int64]bool
}

func (m *courseExistsStub) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existing[id], nil
}

func newLessonHandler() (*lessonRepoStub, *LessonHandler) {
	repo := &lessonRepoStub{lessons: map[int64]models.Lesson{
		10: {LessonID: 10, CourseID: 1, Title: "Intro", LessonOrder: 1},
		20: {LessonID: 20, CourseID: 1, Title: "Basics", LessonOrder: 2},
	}}
	courses := &courseExistsStub{existing: map[int64]bool{1: true}}
	lessons := service.NewLessonService(repo, courses, nil, zap.NewNop())
	return repo, NewLessonHandler(lessons, nil)
}

func TestLessonHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, handler := newLessonHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/lessons/10", nil)
	c.Params = gin.Params{{Key: "id", Value: "10"}}

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Error)
}

func TestLessonHandlerGetInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, handler := newLessonHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/lessons/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLessonHandlerGetMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, handler := newLessonHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/lessons/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLessonHandlerReorder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo, handler := newLessonHandler()

	payload, _ := json.Marshal(models.ReorderLessonsRequest{LessonIDs: []int64{20, 10}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPut, "/courses/1/lessons/reorder", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Reorder(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{20, 10}, repo.reordered)
}

func TestLessonHandlerReorderInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, handler := newLessonHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPut, "/courses/1/lessons/reorder", bytes.NewBufferString(`{"lesson_ids":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Reorder(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
