package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/coursehub/coursehub-api/internal/handler"
	"github.com/coursehub/coursehub-api/internal/middleware"
	"github.com/coursehub/coursehub-api/internal/models"
	"github.com/coursehub/coursehub-api/internal/service"
	"github.com/coursehub/coursehub-api/pkg/config"
	"github.com/coursehub/coursehub-api/pkg/logger"
	corsmiddleware "github.com/coursehub/coursehub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/coursehub/coursehub-api/pkg/middleware/requestid"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Students     *handler.StudentHandler
	Teachers     *handler.TeacherHandler
	Courses      *handler.CourseHandler
	Lessons      *handler.LessonHandler
	Assignments  *handler.AssignmentHandler
	Enrollments  *handler.EnrollmentHandler
	Submissions  *handler.SubmissionHandler
	Reviews      *handler.ReviewHandler
	Dictionaries *handler.DictionaryHandler
	Reports      *handler.ReportHandler
}

// New assembles the gin engine: ambient middleware, ops endpoints, and the
// versioned API surface.
func New(cfg *config.Config, logr *zap.Logger, h Handlers, auth *service.AuthService, metrics *service.MetricsService) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	authed := middleware.JWT(auth)

	api.POST("/auth/login", h.Auth.Login)

	users := api.Group("/users")
	{
		users.POST("", h.Users.Create)
		users.GET("/list", h.Users.List)
		users.GET("/by-email/:email", h.Users.GetByEmail)
		users.GET("/:id", h.Users.Get)
		users.PUT("/:id", authed, middleware.RBAC(middleware.RoleSelf, models.RoleCodeAdmin), h.Users.Update)
		users.PUT("/:id/status", authed, middleware.RBAC(models.RoleCodeAdmin), h.Users.UpdateStatus)
		users.PUT("/:id/last-login", h.Users.TouchLastLogin)
		users.DELETE("/:id", authed, middleware.RBAC(models.RoleCodeAdmin), h.Users.Delete)
	}

	students := api.Group("/students")
	{
		students.POST("", h.Students.Create)
		students.GET("/:id", h.Students.Get)
		students.PUT("/:id", h.Students.Update)
		students.GET("/:id/courses", h.Enrollments.StudentCourses)
		students.GET("/:id/courses/:cid/submissions", h.Submissions.StudentCourseSubmissions)
	}

	teachers := api.Group("/teachers")
	{
		teachers.POST("", h.Teachers.Create)
		teachers.GET("/:id", h.Teachers.Get)
		teachers.PUT("/:id", h.Teachers.Update)
		teachers.GET("/:id/courses", h.Teachers.Courses)
	}

	courses := api.Group("/courses")
	{
		courses.POST("", h.Courses.Create)
		courses.GET("/list", h.Courses.List)
		courses.GET("/analytics", h.Courses.Analytics)
		courses.GET("/:id", h.Courses.Get)
		courses.PUT("/:id", h.Courses.Update)
		courses.DELETE("/:id", h.Courses.Delete)
		courses.GET("/:id/structure", h.Courses.Structure)
		courses.GET("/:id/students", h.Courses.Students)
		courses.GET("/:id/lessons", h.Courses.Lessons)
		courses.PUT("/:id/lessons/reorder", h.Lessons.Reorder)
		courses.GET("/:id/reviews", h.Courses.Reviews)
		courses.GET("/:id/rating", h.Courses.Rating)
	}

	lessons := api.Group("/lessons")
	{
		lessons.POST("", h.Lessons.Create)
		lessons.GET("/:id", h.Lessons.Get)
		lessons.PUT("/:id", h.Lessons.Update)
		lessons.DELETE("/:id", h.Lessons.Delete)
		lessons.GET("/:id/assignments", h.Lessons.Assignments)
	}

	assignments := api.Group("/assignments")
	{
		assignments.POST("", h.Assignments.Create)
		assignments.GET("/:id", h.Assignments.Get)
		assignments.PUT("/:id", h.Assignments.Update)
		assignments.DELETE("/:id", h.Assignments.Delete)
		assignments.GET("/:id/submissions", h.Assignments.Submissions)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.POST("", h.Enrollments.Create)
		enrollments.PUT("/students/:studentID/courses/:courseID/status", h.Enrollments.UpdateStatus)
		enrollments.PUT("/students/:studentID/courses/:courseID/complete", h.Enrollments.Complete)
		enrollments.GET("/:id/review", h.Reviews.GetByEnrollment)
		enrollments.PUT("/:id/review", h.Reviews.UpdateByEnrollment)
	}

	submissions := api.Group("/submissions")
	{
		submissions.POST("", h.Submissions.Create)
		submissions.POST("/files", h.Submissions.AttachFile)
		submissions.DELETE("/files/:fileID", h.Submissions.DeleteFile)
		submissions.GET("/:id", h.Submissions.Get)
		submissions.PUT("/:id/grade", h.Submissions.Grade)
		submissions.GET("/:id/files", h.Submissions.Files)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("", h.Reviews.Create)
		reviews.GET("/:id", h.Reviews.Get)
		reviews.PUT("/:id", h.Reviews.Update)
	}

	dictionaries := api.Group("/dictionaries")
	{
		dictionaries.GET("/user-statuses", h.Dictionaries.UserStatuses)
		dictionaries.GET("/roles", h.Dictionaries.Roles)
		dictionaries.GET("/course-levels", h.Dictionaries.CourseLevels)
		dictionaries.GET("/assignment-types", h.Dictionaries.AssignmentTypes)
		dictionaries.GET("/enrollment-statuses", h.Dictionaries.EnrollmentStatuses)
		dictionaries.GET("/languages", h.Dictionaries.Languages)
		dictionaries.GET("/categories", h.Dictionaries.Categories)
	}

	api.GET("/reports/students/:id", authed, middleware.RBAC(middleware.RoleSelf, models.RoleCodeAdmin), h.Reports.StudentReport)

	return r
}
