package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/models"
	appErrors "github.com/coursehub/coursehub-api/pkg/errors"
)

type mockCacheRepo struct {
	entries map[string][]byte
	deleted []string
}

func (m *mockCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	payload, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = payload
	return nil
}

func (m *mockCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	for key := range m.entries {
		delete(m.entries, key)
	}
	return nil
}

type mockAnalyticsRepo struct {
	courseCount    int
	studentCount   int
	topTeachersErr error
	calls          map[string]int
}

func (m *mockAnalyticsRepo) record(name string) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

func (m *mockAnalyticsRepo) CountCourses(ctx context.Context) (int, error) {
	m.record("count_courses")
	return m.courseCount, nil
}

func (m *mockAnalyticsRepo) CountStudents(ctx context.Context) (int, error) {
	m.record("count_students")
	return m.studentCount, nil
}

func (m *mockAnalyticsRepo) AverageCoursePrice(ctx context.Context) (float64, error) {
	return 49.99, nil
}

func (m *mockAnalyticsRepo) CountAssignments(ctx context.Context) (int, error) {
	return 12, nil
}

func (m *mockAnalyticsRepo) TopTeachers(ctx context.Context) ([]models.TeacherRating, error) {
	if m.topTeachersErr != nil {
		return nil, m.topTeachersErr
	}
	return []models.TeacherRating{{TeacherID: 1, FirstName: "Ada", LastName: "Lovelace", AvgRating: 4.9, CourseCount: 3}}, nil
}

func (m *mockAnalyticsRepo) PopularCourses(ctx context.Context) ([]models.PopularCourse, error) {
	return []models.PopularCourse{{CourseID: 9, Title: "Go Basics", EnrollmentCount: 40}}, nil
}

func (m *mockAnalyticsRepo) CourseCompletionStats(ctx context.Context) ([]models.CourseCompletionStat, error) {
	return nil, nil
}

func (m *mockAnalyticsRepo) AssignmentStats(ctx context.Context) ([]models.AssignmentStat, error) {
	return nil, nil
}

func (m *mockAnalyticsRepo) RevenueByCategory(ctx context.Context) ([]models.CategoryRevenue, error) {
	return nil, nil
}

func (m *mockAnalyticsRepo) OverallCompletionRate(ctx context.Context) (float64, error) {
	return 61.5, nil
}

func (m *mockAnalyticsRepo) TeacherActivity(ctx context.Context) ([]models.TeacherActivity, error) {
	return nil, nil
}

func TestAnalyticsOverviewDegradesPerSlice(t *testing.T) {
	repo := &mockAnalyticsRepo{courseCount: 15, studentCount: 120, topTeachersErr: errors.New("query timeout")}
	svc := NewAnalyticsService(repo, nil, time.Minute, nil, zap.NewNop())

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15, overview.TotalCourses)
	assert.Equal(t, 120, overview.TotalStudents)
	assert.NotNil(t, overview.TopTeachers)
	assert.Empty(t, overview.TopTeachers)
	assert.Len(t, overview.PopularCourses, 1)
	assert.Equal(t, 61.5, overview.OverallCompletionRate)
}

func TestAnalyticsOverviewServedFromCacheOnSecondCall(t *testing.T) {
	repo := &mockAnalyticsRepo{courseCount: 15, studentCount: 120}
	cacheRepo := &mockCacheRepo{}
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := NewAnalyticsService(repo, cache, time.Minute, nil, zap.NewNop())

	first, err := svc.Overview(context.Background())
	require.NoError(t, err)
	second, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls["count_courses"])
	assert.Equal(t, first.TotalCourses, second.TotalCourses)
	assert.Contains(t, cacheRepo.entries, "analytics:platform:overview")
}

func TestAnalyticsInvalidateCacheForcesRecompute(t *testing.T) {
	repo := &mockAnalyticsRepo{courseCount: 15}
	cacheRepo := &mockCacheRepo{}
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := NewAnalyticsService(repo, cache, time.Minute, nil, zap.NewNop())

	_, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.InvalidateCache(context.Background()))

	_, err = svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls["count_courses"])
}

func TestAnalyticsOverviewWithoutCacheService(t *testing.T) {
	repo := &mockAnalyticsRepo{courseCount: 3}
	svc := NewAnalyticsService(repo, nil, time.Minute, nil, zap.NewNop())

	_, err := svc.Overview(context.Background())
	require.NoError(t, err)
	_, err = svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls["count_courses"])
}
