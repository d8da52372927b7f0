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

type submissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	FindByID(ctx context.Context, id int64) (*models.Submission, error)
	Exists(ctx context.Context, assignmentID, studentID int64) (bool, error)
	UpdateGrade(ctx context.Context, id int64, score int, feedback string) error
	ListByAssignment(ctx context.Context, assignmentID int64) ([]models.AssignmentSubmission, error)
	ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]models.StudentCourseSubmission, error)
	CreateFile(ctx context.Context, file *models.SubmissionFile) error
	ListFiles(ctx context.Context, submissionID int64) ([]models.SubmissionFile, error)
	DeleteFile(ctx context.Context, fileID int64) error
}

type submissionAssignmentRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Assignment, error)
}

// SubmissionService provides submission and file reference use cases.
type SubmissionService struct {
	repo        submissionRepository
	assignments submissionAssignmentRepository
	students    enrollmentStudentRepository
	courses     enrollmentCourseRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(repo submissionRepository, assignments submissionAssignmentRepository, students enrollmentStudentRepository, courses enrollmentCourseRepository, validate *validator.Validate, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SubmissionService{repo: repo, assignments: assignments, students: students, courses: courses, validator: validate, logger: logger}
}

// Create records an answer. A student submits to an assignment at most once.
func (s *SubmissionService) Create(ctx context.Context, req models.CreateSubmissionRequest) (*models.Submission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}

	if _, err := s.assignments.FindByID(ctx, req.AssignmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}

	studentExists, err := s.students.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student")
	}
	if !studentExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	submitted, err := s.repo.Exists(ctx, req.AssignmentID, req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check submission")
	}
	if submitted {
		return nil, appErrors.Clone(appErrors.ErrConflict, "submission already exists for this assignment")
	}

	submission := &models.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		Feedback:     req.Feedback,
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create submission")
	}

	s.logger.Info("submission created",
		zap.Int64("submission_id", submission.SubmissionID),
		zap.Int64("assignment_id", req.AssignmentID),
		zap.Int64("student_id", req.StudentID))
	return submission, nil
}

// Get returns a submission by id.
func (s *SubmissionService) Get(ctx context.Context, id int64) (*models.Submission, error) {
	submission, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "submission not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission")
	}
	return submission, nil
}

// Grade records score and feedback. The score may not exceed the
// assignment's max score.
func (s *SubmissionService) Grade(ctx context.Context, id int64, req models.GradeSubmissionRequest) (*models.Submission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}

	submission, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignments.FindByID(ctx, submission.AssignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	if req.Score > assignment.MaxScore {
		return nil, appErrors.Clone(appErrors.ErrValidation, "score exceeds the assignment max score")
	}

	if err := s.repo.UpdateGrade(ctx, id, req.Score, req.Feedback); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to grade submission")
	}
	return s.Get(ctx, id)
}

// ListByAssignment returns the submissions to an assignment, newest first.
func (s *SubmissionService) ListByAssignment(ctx context.Context, assignmentID int64) ([]models.AssignmentSubmission, error) {
	if _, err := s.assignments.FindByID(ctx, assignmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	submissions, err := s.repo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return submissions, nil
}

// ListByStudentCourse returns one student's submissions inside one course.
func (s *SubmissionService) ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]models.StudentCourseSubmission, error) {
	studentExists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student")
	}
	if !studentExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	courseExists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course")
	}
	if !courseExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	submissions, err := s.repo.ListByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return submissions, nil
}

// AttachFile adds a URL reference to a submission.
func (s *SubmissionService) AttachFile(ctx context.Context, req models.CreateSubmissionFileRequest) (*models.SubmissionFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid file payload")
	}

	if _, err := s.Get(ctx, req.SubmissionID); err != nil {
		return nil, err
	}

	file := &models.SubmissionFile{
		SubmissionID: req.SubmissionID,
		FileURL:      req.FileURL,
	}
	if err := s.repo.CreateFile(ctx, file); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to attach file")
	}
	return file, nil
}

// ListFiles returns a submission's file references in upload order.
func (s *SubmissionService) ListFiles(ctx context.Context, submissionID int64) ([]models.SubmissionFile, error) {
	if _, err := s.Get(ctx, submissionID); err != nil {
		return nil, err
	}
	files, err := s.repo.ListFiles(ctx, submissionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list files")
	}
	return files, nil
}

// DeleteFile removes a file reference; the external content is untouched.
func (s *SubmissionService) DeleteFile(ctx context.Context, fileID int64) error {
	if err := s.repo.DeleteFile(ctx, fileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "file not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete file")
	}
	return nil
}
