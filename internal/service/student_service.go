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

type studentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindProfile(ctx context.Context, id int64) (*models.StudentProfile, error)
	Update(ctx context.Context, student *models.Student) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type studentUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// StudentService provides student profile use cases.
type StudentService struct {
	repo      studentRepository
	users     studentUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(repo studentRepository, users studentUserRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{repo: repo, users: users, validator: validate, logger: logger}
}

// Create attaches a student profile to an existing account. A user may hold
// a teacher profile as well; only a duplicate student profile conflicts.
func (s *StudentService) Create(ctx context.Context, req models.CreateStudentRequest) (*models.StudentProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	if _, err := s.users.FindByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}

	exists, err := s.repo.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student profile already exists")
	}

	student := &models.Student{
		StudentID:      req.StudentID,
		BirthDate:      req.BirthDate,
		EducationLevel: req.EducationLevel,
		University:     req.University,
		Faculty:        req.Faculty,
		YearOfStudy:    req.YearOfStudy,
		Scholarship:    req.Scholarship,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	s.logger.Info("student profile created", zap.Int64("student_id", student.StudentID))
	return s.Get(ctx, student.StudentID)
}

// Get returns the student profile merged with user identity fields.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.StudentProfile, error) {
	profile, err := s.repo.FindProfile(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return profile, nil
}

// Update changes academic profile fields only.
func (s *StudentService) Update(ctx context.Context, id int64, req models.UpdateStudentRequest) (*models.StudentProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	student := &models.Student{
		StudentID:      id,
		BirthDate:      req.BirthDate,
		EducationLevel: req.EducationLevel,
		University:     req.University,
		Faculty:        req.Faculty,
		YearOfStudy:    req.YearOfStudy,
		Scholarship:    req.Scholarship,
	}
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return s.Get(ctx, id)
}
