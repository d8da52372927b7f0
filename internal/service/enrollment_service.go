package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
)

// EnrollmentStatusCodeActive is the default status for new enrollments.
const EnrollmentStatusCodeActive = "active"

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	FindByID(ctx context.Context, id int64) (*models.Enrollment, error)
	FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	UpdateStatus(ctx context.Context, id, statusID int64) error
	Complete(ctx context.Context, id, statusID int64, finalGrade float64) error
	ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error)
	ListByCourse(ctx context.Context, courseID int64) ([]models.CourseStudent, error)
}

type enrollmentStudentRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type enrollmentCourseRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type enrollmentDictionaryRepository interface {
	FindEnrollmentStatusID(ctx context.Context, code string) (int64, error)
}

// EnrollmentService provides enrollment use cases.
type EnrollmentService struct {
	repo      enrollmentRepository
	students  enrollmentStudentRepository
	courses   enrollmentCourseRepository
	dicts     enrollmentDictionaryRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService instance.
func NewEnrollmentService(repo enrollmentRepository, students enrollmentStudentRepository, courses enrollmentCourseRepository, dicts enrollmentDictionaryRepository, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EnrollmentService{repo: repo, students: students, courses: courses, dicts: dicts, validator: validate, logger: logger}
}

// Create enrolls a student in a course. A student enrolls in a course at
// most once; the duplicate check runs first, with the unique constraint as
// backstop.
func (s *EnrollmentService) Create(ctx context.Context, req models.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	studentExists, err := s.students.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student")
	}
	if !studentExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	courseExists, err := s.courses.Exists(ctx, req.CourseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course")
	}
	if !courseExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	enrolled, err := s.repo.Exists(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
	}
	if enrolled {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student is already enrolled in this course")
	}

	statusID, err := s.resolveStatus(ctx, EnrollmentStatusCodeActive)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		StatusID:  statusID,
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create enrollment")
	}

	s.logger.Info("enrollment created",
		zap.Int64("enrollment_id", enrollment.EnrollmentID),
		zap.Int64("student_id", req.StudentID),
		zap.Int64("course_id", req.CourseID))
	return enrollment, nil
}

// UpdateStatus moves an enrollment identified by (student, course) to the
// posted status code. Status transitions are unconstrained.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, studentID, courseID int64, req models.UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}

	enrollment, err := s.findByPair(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	statusID, err := s.resolveStatus(ctx, req.StatusCode)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, enrollment.EnrollmentID, statusID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update enrollment status")
	}
	updated, err := s.repo.FindByID(ctx, enrollment.EnrollmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollment")
	}
	return updated, nil
}

// Complete finishes an enrollment: the posted status and final grade are
// applied and completion_date is stamped server-side.
func (s *EnrollmentService) Complete(ctx context.Context, studentID, courseID int64, req models.CompleteEnrollmentRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid completion payload")
	}

	enrollment, err := s.findByPair(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	statusID, err := s.resolveStatus(ctx, req.StatusCode)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Complete(ctx, enrollment.EnrollmentID, statusID, req.FinalGrade); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to complete enrollment")
	}
	updated, err := s.repo.FindByID(ctx, enrollment.EnrollmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollment")
	}
	return updated, nil
}

// ListByStudent returns a student's courses, most recent first.
func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error) {
	studentExists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student")
	}
	if !studentExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	courses, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list student courses")
	}
	return courses, nil
}

// ListByCourse returns the roster of a course, most recent first.
func (s *EnrollmentService) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseStudent, error) {
	courseExists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course")
	}
	if !courseExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	students, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list course students")
	}
	return students, nil
}

func (s *EnrollmentService) findByPair(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	enrollment, err := s.repo.FindByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollment")
	}
	return enrollment, nil
}

func (s *EnrollmentService) resolveStatus(ctx context.Context, code string) (int64, error) {
	statusID, err := s.dicts.FindEnrollmentStatusID(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "enrollment status not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve status")
	}
	return statusID, nil
}
