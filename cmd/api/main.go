package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/coursehub/coursehub-api/api/swagger"
	"github.com/coursehub/coursehub-api/internal/handler"
	"github.com/coursehub/coursehub-api/internal/repository"
	"github.com/coursehub/coursehub-api/internal/router"
	"github.com/coursehub/coursehub-api/internal/service"
	"github.com/coursehub/coursehub-api/pkg/cache"
	"github.com/coursehub/coursehub-api/pkg/config"
	"github.com/coursehub/coursehub-api/pkg/database"
	"github.com/coursehub/coursehub-api/pkg/export"
	"github.com/coursehub/coursehub-api/pkg/logger"
)

// @title CourseHub API
// @version 1.0.0
// @description Online course platform backend: accounts, catalog, enrollments, submissions, reviews, analytics and reports
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	// Redis is optional: without it the analytics cache degrades to a no-op.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, analytics caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsService := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	dictionaryRepo := repository.NewDictionaryRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	cacheService := service.NewCacheService(cacheRepo, metricsService, cfg.Analytics.CacheTTL, logr, cfg.Analytics.CacheEnabled)
	authService := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userService := service.NewUserService(userRepo, dictionaryRepo, validate, logr)
	studentService := service.NewStudentService(studentRepo, userRepo, validate, logr)
	teacherService := service.NewTeacherService(teacherRepo, userRepo, validate, logr)
	courseService := service.NewCourseService(courseRepo, teacherRepo, validate, logr)
	lessonService := service.NewLessonService(lessonRepo, courseRepo, validate, logr)
	assignmentService := service.NewAssignmentService(assignmentRepo, lessonRepo, validate, logr)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo, dictionaryRepo, validate, logr)
	submissionService := service.NewSubmissionService(submissionRepo, assignmentRepo, studentRepo, courseRepo, validate, logr)
	reviewService := service.NewReviewService(reviewRepo, enrollmentRepo, courseRepo, validate, logr)
	dictionaryService := service.NewDictionaryService(dictionaryRepo, logr)
	analyticsService := service.NewAnalyticsService(analyticsRepo, cacheService, cfg.Analytics.CacheTTL, metricsService, logr)

	pdfExporter := export.NewPDFExporter(cfg.Reports.FontPath, cfg.Reports.FontName)
	reportService := service.NewReportService(studentRepo, enrollmentRepo, submissionRepo, pdfExporter, logr)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Users:        handler.NewUserHandler(userService),
		Students:     handler.NewStudentHandler(studentService),
		Teachers:     handler.NewTeacherHandler(teacherService, courseService),
		Courses:      handler.NewCourseHandler(courseService, lessonService, enrollmentService, reviewService, analyticsService),
		Lessons:      handler.NewLessonHandler(lessonService, assignmentService),
		Assignments:  handler.NewAssignmentHandler(assignmentService, submissionService),
		Enrollments:  handler.NewEnrollmentHandler(enrollmentService),
		Submissions:  handler.NewSubmissionHandler(submissionService),
		Reviews:      handler.NewReviewHandler(reviewService),
		Dictionaries: handler.NewDictionaryHandler(dictionaryService),
		Reports:      handler.NewReportHandler(reportService),
	}

	r := router.New(cfg, logr, handlers, authService, metricsService)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
