package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
)

const analyticsCacheKey = "analytics:platform:overview"

type analyticsRepository interface {
	CountCourses(ctx context.Context) (int, error)
	CountStudents(ctx context.Context) (int, error)
	AverageCoursePrice(ctx context.Context) (float64, error)
	CountAssignments(ctx context.Context) (int, error)
	TopTeachers(ctx context.Context) ([]models.TeacherRating, error)
	PopularCourses(ctx context.Context) ([]models.PopularCourse, error)
	CourseCompletionStats(ctx context.Context) ([]models.CourseCompletionStat, error)
	AssignmentStats(ctx context.Context) ([]models.AssignmentStat, error)
	RevenueByCategory(ctx context.Context) ([]models.CategoryRevenue, error)
	OverallCompletionRate(ctx context.Context) (float64, error)
	TeacherActivity(ctx context.Context) ([]models.TeacherActivity, error)
}

// AnalyticsService assembles the platform overview. Every slice degrades
// independently: a failing query logs a warning and leaves its zero value,
// the overview itself never fails.
type AnalyticsService struct {
	repo     analyticsRepository
	cache    *CacheService
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewAnalyticsService constructs an AnalyticsService instance.
func NewAnalyticsService(repo analyticsRepository, cache *CacheService, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: metrics, logger: logger}
}

// Overview returns the cached platform analytics payload, computing and
// caching it on a miss.
func (s *AnalyticsService) Overview(ctx context.Context) (*models.PlatformAnalytics, error) {
	var cached models.PlatformAnalytics
	if hit, _ := s.cache.Get(ctx, analyticsCacheKey, &cached); hit {
		return &cached, nil
	}

	overview := s.compute(ctx)

	if err := s.cache.Set(ctx, analyticsCacheKey, overview, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache analytics overview", zap.Error(err))
	}
	return overview, nil
}

// InvalidateCache drops the cached overview.
func (s *AnalyticsService) InvalidateCache(ctx context.Context) error {
	return s.cache.Invalidate(ctx, analyticsCacheKey)
}

func (s *AnalyticsService) compute(ctx context.Context) *models.PlatformAnalytics {
	overview := &models.PlatformAnalytics{
		TopTeachers:           []models.TeacherRating{},
		PopularCourses:        []models.PopularCourse{},
		CourseCompletionStats: []models.CourseCompletionStat{},
		AssignmentStats:       []models.AssignmentStat{},
		RevenueByCategory:     []models.CategoryRevenue{},
		TeacherActivity:       []models.TeacherActivity{},
	}

	s.slice("total_courses", func() error {
		v, err := s.repo.CountCourses(ctx)
		overview.TotalCourses = v
		return err
	})
	s.slice("total_students", func() error {
		v, err := s.repo.CountStudents(ctx)
		overview.TotalStudents = v
		return err
	})
	s.slice("average_course_price", func() error {
		v, err := s.repo.AverageCoursePrice(ctx)
		overview.AverageCoursePrice = v
		return err
	})
	s.slice("total_assignments", func() error {
		v, err := s.repo.CountAssignments(ctx)
		overview.TotalAssignments = v
		return err
	})
	s.slice("top_teachers", func() error {
		v, err := s.repo.TopTeachers(ctx)
		if v != nil {
			overview.TopTeachers = v
		}
		return err
	})
	s.slice("popular_courses", func() error {
		v, err := s.repo.PopularCourses(ctx)
		if v != nil {
			overview.PopularCourses = v
		}
		return err
	})
	s.slice("course_completion_stats", func() error {
		v, err := s.repo.CourseCompletionStats(ctx)
		if v != nil {
			overview.CourseCompletionStats = v
		}
		return err
	})
	s.slice("assignment_stats", func() error {
		v, err := s.repo.AssignmentStats(ctx)
		if v != nil {
			overview.AssignmentStats = v
		}
		return err
	})
	s.slice("revenue_by_category", func() error {
		v, err := s.repo.RevenueByCategory(ctx)
		if v != nil {
			overview.RevenueByCategory = v
		}
		return err
	})
	s.slice("overall_completion_rate", func() error {
		v, err := s.repo.OverallCompletionRate(ctx)
		overview.OverallCompletionRate = v
		return err
	})
	s.slice("teacher_activity", func() error {
		v, err := s.repo.TeacherActivity(ctx)
		if v != nil {
			overview.TeacherActivity = v
		}
		return err
	})

	return overview
}

func (s *AnalyticsService) slice(name string, fn func() error) {
	start := time.Now()
	err := fn()
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("analytics_"+name, time.Since(start))
	}
	if err != nil {
		s.logger.Warn("analytics slice failed", zap.String("slice", name), zap.Error(err))
	}
}
