package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
)

type dictionaryRepository interface {
	ListUserStatuses(ctx context.Context) ([]models.Dictionary, error)
	ListRoles(ctx context.Context) ([]models.Dictionary, error)
	ListCourseLevels(ctx context.Context) ([]models.Dictionary, error)
	ListAssignmentTypes(ctx context.Context) ([]models.Dictionary, error)
	ListEnrollmentStatuses(ctx context.Context) ([]models.Dictionary, error)
	ListLanguages(ctx context.Context) ([]models.Dictionary, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// DictionaryService reads the lookup tables.
type DictionaryService struct {
	repo   dictionaryRepository
	logger *zap.Logger
}

// NewDictionaryService constructs a DictionaryService instance.
func NewDictionaryService(repo dictionaryRepository, logger *zap.Logger) *DictionaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DictionaryService{repo: repo, logger: logger}
}

func wrapDictErr(err error) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list dictionary")
}

// UserStatuses lists the user status dictionary, id order.
func (s *DictionaryService) UserStatuses(ctx context.Context) ([]models.Dictionary, error) {
	entries, err := s.repo.ListUserStatuses(ctx)
	if err != nil {
		return nil, wrapDictErr(err)
	}
	return entries, nil
}

// Roles lists the role dictionary, id order.
func (s *DictionaryService) Roles(ctx context.Context) ([]models.Dictionary, error) {
	entries, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, wrapDictErr(err)
	}
	return entries, nil
}

// CourseLevels lists the course level dictionary, id order.
func (s *DictionaryService) CourseLevels(ctx context.Context) ([]models.Dictionary, error) {
	entries, err := s.repo.ListCourseLevels(ctx)
	if err != nil {
		return nil, wrapDictErr(err)
	}
	return entries, nil
}

// AssignmentTypes lists the assignment type dictionary, id order.
func (s *DictionaryService) AssignmentTypes(ctx context.Context) ([]models.Dictionary, error) {
	entries, err := s.repo.ListAssignmentTypes(ctx)
	if err != nil {
		return nil, wrapDictErr(err)
	}
	return entries, nil
}

// EnrollmentStatuses lists the enrollment status dictionary, id order.
func (s *DictionaryService) EnrollmentStatuses(ctx context.Context) ([]models.Dictionary, error) {
	entries, err := s.repo.ListEnrollmentStatuses(ctx)
	if err != nil {
		return nil, wrapDictErr(err)
	}
	return entries, nil
}

// Languages lists the language dictionary, id order.
func (s *DictionaryService) Languages(ctx context.Context) ([]models.Dictionary, error) {
	entries, err := s.repo.ListLanguages(ctx)
	if err != nil {
		return nil, wrapDictErr(err)
	}
	return entries, nil
}

// Categories lists categories ordered by name.
func (s *DictionaryService) Categories(ctx context.Context) ([]models.Category, error) {
	entries, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, wrapDictErr(err)
	}
	return entries, nil
}
