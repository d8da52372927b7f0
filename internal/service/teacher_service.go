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

type teacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	FindProfile(ctx context.Context, id int64) (*models.TeacherProfile, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// TeacherService provides teacher profile use cases.
type TeacherService struct {
	repo      teacherRepository
	users     studentUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService instance.
func NewTeacherService(repo teacherRepository, users studentUserRepository, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TeacherService{repo: repo, users: users, validator: validate, logger: logger}
}

// Create attaches a teacher profile to an existing account.
func (s *TeacherService) Create(ctx context.Context, req models.CreateTeacherRequest) (*models.TeacherProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	if _, err := s.users.FindByID(ctx, req.TeacherID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}

	exists, err := s.repo.Exists(ctx, req.TeacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "teacher profile already exists")
	}

	teacher := &models.Teacher{
		TeacherID:       req.TeacherID,
		AcademicDegree:  req.AcademicDegree,
		ExperienceYears: req.ExperienceYears,
		Specialization:  req.Specialization,
		Bio:             req.Bio,
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}

	s.logger.Info("teacher profile created", zap.Int64("teacher_id", teacher.TeacherID))
	return s.Get(ctx, teacher.TeacherID)
}

// Get returns the teacher profile merged with user identity fields.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.TeacherProfile, error) {
	profile, err := s.repo.FindProfile(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return profile, nil
}

// Update changes teaching profile fields only.
func (s *TeacherService) Update(ctx context.Context, id int64, req models.UpdateTeacherRequest) (*models.TeacherProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	teacher := &models.Teacher{
		TeacherID:       id,
		AcademicDegree:  req.AcademicDegree,
		ExperienceYears: req.ExperienceYears,
		Specialization:  req.Specialization,
		Bio:             req.Bio,
	}
	if err := s.repo.Update(ctx, teacher); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher")
	}
	return s.Get(ctx, id)
}
