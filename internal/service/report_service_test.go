package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
	"github.com/coursehub/coursehub-api/pkg/export"
)

type mockReportStudents struct {
	profiles map[int64]models.StudentProfile
}

func (m *mockReportStudents) FindProfile(ctx context.Context, id int64) (*models.StudentProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

type mockReportEnrollments struct {
	courses []models.StudentCourse
}

func (m *mockReportEnrollments) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error) {
	return m.courses, nil
}

type mockReportSubmissions struct {
	byCourse map[int64][]models.StudentCourseSubmission
	errs     map[int64]error
}

func (m *mockReportSubmissions) ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]models.StudentCourseSubmission, error) {
	if err, ok := m.errs[courseID]; ok {
		return nil, err
	}
	return m.byCourse[courseID], nil
}

type mockRenderer struct {
	doc     export.Document
	payload []byte
	err     error
}

func (m *mockRenderer) Render(doc export.Document) ([]byte, error) {
	m.doc = doc
	if m.err != nil {
		return nil, m.err
	}
	return m.payload, nil
}

func intPtr(v int) *int { return &v }

func newReportFixture() (*mockReportSubmissions, *mockRenderer, *ReportService) {
	enrolled := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	completed := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	grade := 88.5

	students := &mockReportStudents{profiles: map[int64]models.StudentProfile{
		7: {StudentID: 7, Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", University: "KBTU"},
	}}
	enrollments := &mockReportEnrollments{courses: []models.StudentCourse{
		{EnrollmentID: 1, CourseID: 9, CourseTitle: "Go Basics", EnrollDate: enrolled, CompletionDate: &completed, FinalGrade: &grade, StatusName: "Completed"},
		{EnrollmentID: 2, CourseID: 10, CourseTitle: "Databases", EnrollDate: enrolled, StatusName: "Active"},
	}}
	submissions := &mockReportSubmissions{byCourse: map[int64][]models.StudentCourseSubmission{
		9:  {{SubmissionID: 1, Score: intPtr(80)}, {SubmissionID: 2, Score: intPtr(90)}, {SubmissionID: 3}},
		10: {},
	}}
	renderer := &mockRenderer{payload: []byte("%PDF-1.4")}
	svc := NewReportService(students, enrollments, submissions, renderer, zap.NewNop())
	return submissions, renderer, svc
}

func TestStudentReportAssemblesTranscript(t *testing.T) {
	_, renderer, svc := newReportFixture()

	payload, filename, err := svc.StudentReport(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), payload)
	assert.Equal(t, "student_7_transcript.pdf", filename)

	assert.Equal(t, "Student Transcript", renderer.doc.Title)
	assert.Equal(t, [2]string{"Student", "Jane Doe"}, renderer.doc.Fields[0])
	assert.Equal(t, [2]string{"University", "KBTU"}, renderer.doc.Fields[2])

	require.Len(t, renderer.doc.Tables, 2)
	coursesTable := renderer.doc.Tables[0]
	assert.Equal(t, "Courses", coursesTable.Heading)
	require.Len(t, coursesTable.Rows, 2)
	assert.Equal(t, []string{"Go Basics", "2025-09-01", "2025-12-20", "Completed", "88.5"}, coursesTable.Rows[0])
	assert.Equal(t, []string{"Databases", "2025-09-01", "-", "Active", "-"}, coursesTable.Rows[1])

	summaryTable := renderer.doc.Tables[1]
	assert.Equal(t, "Submissions", summaryTable.Heading)
	require.Len(t, summaryTable.Rows, 2)
	assert.Equal(t, []string{"Go Basics", "3", "2", "85.0"}, summaryTable.Rows[0])
	assert.Equal(t, []string{"Databases", "0", "0", "-"}, summaryTable.Rows[1])
}

func TestStudentReportSkipsFailingCourseSummary(t *testing.T) {
	submissions, renderer, svc := newReportFixture()
	submissions.errs = map[int64]error{9: errors.New("connection reset")}

	_, _, err := svc.StudentReport(context.Background(), 7)
	require.NoError(t, err)

	summaryTable := renderer.doc.Tables[1]
	require.Len(t, summaryTable.Rows, 1)
	assert.Equal(t, "Databases", summaryTable.Rows[0][0])
}

func TestStudentReportUnknownStudent(t *testing.T) {
	_, _, svc := newReportFixture()

	_, _, err := svc.StudentReport(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestStudentReportRendererFailure(t *testing.T) {
	_, renderer, svc := newReportFixture()
	renderer.err = errors.New("font not loaded")

	_, _, err := svc.StudentReport(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}
