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

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindDetail(ctx context.Context, id int64) (*models.CourseDetail, error)
	List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Structure(ctx context.Context, courseID int64) ([]models.CourseStructureRow, error)
}

type courseTeacherRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// CourseService provides catalog use cases.
type CourseService struct {
	repo      courseRepository
	teachers  courseTeacherRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(repo courseRepository, teachers courseTeacherRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{repo: repo, teachers: teachers, validator: validate, logger: logger}
}

// Create adds a catalog entry owned by an existing teacher.
func (s *CourseService) Create(ctx context.Context, req models.CreateCourseRequest) (*models.CourseDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	teacherExists, err := s.teachers.Exists(ctx, req.TeacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher")
	}
	if !teacherExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	course := &models.Course{
		Title:         req.Title,
		Description:   req.Description,
		LevelID:       req.LevelID,
		Price:         req.Price,
		DurationHours: req.DurationHours,
		LanguageID:    req.LanguageID,
		CategoryID:    req.CategoryID,
		TeacherID:     req.TeacherID,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}

	s.logger.Info("course created", zap.Int64("course_id", course.CourseID), zap.Int64("teacher_id", course.TeacherID))
	return s.Get(ctx, course.CourseID)
}

// Get returns a course joined with its lookup names.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.CourseDetail, error) {
	detail, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	return detail, nil
}

// List returns catalog entries matching the filter, newest first.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// ListByTeacher returns the courses owned by a teacher.
func (s *CourseService) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	teacherExists, err := s.teachers.Exists(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher")
	}
	if !teacherExists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	courses, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teacher courses")
	}
	return courses, nil
}

// Update replaces mutable course fields, including ownership.
func (s *CourseService) Update(ctx context.Context, id int64, req models.UpdateCourseRequest) (*models.CourseDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	course := &models.Course{
		CourseID:      id,
		Title:         req.Title,
		Description:   req.Description,
		LevelID:       req.LevelID,
		Price:         req.Price,
		DurationHours: req.DurationHours,
		LanguageID:    req.LanguageID,
		CategoryID:    req.CategoryID,
		TeacherID:     req.TeacherID,
	}
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return s.Get(ctx, id)
}

// Delete removes a course and its dependent rows.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("course delete failed", zap.Int64("course_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}

// Structure returns the denormalized lesson and assignment rows of a course.
func (s *CourseService) Structure(ctx context.Context, id int64) ([]models.CourseStructureRow, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	rows, err := s.repo.Structure(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course structure")
	}
	return rows, nil
}
