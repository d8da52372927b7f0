package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
	"github.com/coursehub/coursehub-api/pkg/export"
)

type reportStudentRepository interface {
	FindProfile(ctx context.Context, id int64) (*models.StudentProfile, error)
}

type reportEnrollmentRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error)
}

type reportSubmissionRepository interface {
	ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]models.StudentCourseSubmission, error)
}

type documentRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

// ReportService builds per-student PDF transcripts.
type ReportService struct {
	students    reportStudentRepository
	enrollments reportEnrollmentRepository
	submissions reportSubmissionRepository
	renderer    documentRenderer
	logger      *zap.Logger
}

// NewReportService constructs a ReportService instance.
func NewReportService(students reportStudentRepository, enrollments reportEnrollmentRepository, submissions reportSubmissionRepository, renderer documentRenderer, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{students: students, enrollments: enrollments, submissions: submissions, renderer: renderer, logger: logger}
}

// StudentReport assembles and renders the transcript of one student:
// identity block, per-course enrollment rows, and a submission summary per
// course.
func (s *ReportService) StudentReport(ctx context.Context, studentID int64) ([]byte, string, error) {
	profile, err := s.students.FindProfile(ctx, studentID)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	courses, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}

	doc := export.Document{
		Title: "Student Transcript",
		Fields: [][2]string{
			{"Student", fmt.Sprintf("%s %s", profile.FirstName, profile.LastName)},
			{"Email", profile.Email},
			{"University", profile.University},
			{"Generated", time.Now().UTC().Format("2006-01-02 15:04")},
		},
	}

	courseRows := make([][]string, 0, len(courses))
	for _, course := range courses {
		grade := "-"
		if course.FinalGrade != nil {
			grade = strconv.FormatFloat(*course.FinalGrade, 'f', 1, 64)
		}
		completed := "-"
		if course.CompletionDate != nil {
			completed = course.CompletionDate.Format("2006-01-02")
		}
		courseRows = append(courseRows, []string{
			course.CourseTitle,
			course.EnrollDate.Format("2006-01-02"),
			completed,
			course.StatusName,
			grade,
		})
	}
	doc.Tables = append(doc.Tables, export.Section{
		Heading: "Courses",
		Headers: []string{"Course", "Enrolled", "Completed", "Status", "Final grade"},
		Rows:    courseRows,
	})

	summaryRows := make([][]string, 0, len(courses))
	for _, course := range courses {
		submissions, err := s.submissions.ListByStudentCourse(ctx, studentID, course.CourseID)
		if err != nil {
			s.logger.Warn("transcript submissions lookup failed",
				zap.Int64("student_id", studentID), zap.Int64("course_id", course.CourseID), zap.Error(err))
			continue
		}
		graded := 0
		total := 0
		for _, sub := range submissions {
			if sub.Score != nil {
				graded++
				total += *sub.Score
			}
		}
		avg := "-"
		if graded > 0 {
			avg = strconv.FormatFloat(float64(total)/float64(graded), 'f', 1, 64)
		}
		summaryRows = append(summaryRows, []string{
			course.CourseTitle,
			strconv.Itoa(len(submissions)),
			strconv.Itoa(graded),
			avg,
		})
	}
	doc.Tables = append(doc.Tables, export.Section{
		Heading: "Submissions",
		Headers: []string{"Course", "Submitted", "Graded", "Average score"},
		Rows:    summaryRows,
	})

	payload, err := s.renderer.Render(doc)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	filename := fmt.Sprintf("student_%d_transcript.pdf", studentID)
	return payload, filename, nil
}
