package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	"github.com/coursehub/coursehub-api/internal/service"
	"github.com/coursehub/coursehub-api/pkg/export"
)

type reportStudentStub struct {
	profiles map[int64]models.StudentProfile
}

func (m *reportStudentStub) FindProfile(ctx context.Context, id int64) (*models.StudentProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

type reportEnrollmentStub struct{}

func (m *reportEnrollmentStub) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error) {
	return []models.StudentCourse{}, nil
}

type reportSubmissionStub struct{}

func (m *reportSubmissionStub) ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]models.StudentCourseSubmission, error) {
	return []models.StudentCourseSubmission{}, nil
}

type rendererStub struct{}

func (m *rendererStub) Render(doc export.Document) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func newReportHandler() *ReportHandler {
	students := &reportStudentStub{profiles: map[int64]models.StudentProfile{
		7: {StudentID: 7, Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"},
	}}
	reports := service.NewReportService(students, &reportEnrollmentStub{}, &reportSubmissionStub{}, &rendererStub{}, zap.NewNop())
	return NewReportHandler(reports)
}

func TestReportHandlerStudentReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newReportHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/students/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	handler.StudentReport(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="student_7_transcript.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestReportHandlerStudentReportNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newReportHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/students/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.StudentReport(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}
