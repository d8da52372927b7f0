package models

import "time"

// CreateUserRequest is the account creation payload. Role and status are
// resolved to the student/active dictionary codes.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
}

// UpdateUserRequest updates identity fields only.
type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
}

// UpdateUserStatusRequest moves a user to another status.
type UpdateUserStatusRequest struct {
	StatusID int64 `json:"status_id" validate:"required,gt=0"`
}

// CreateStudentRequest attaches a student profile to an existing user.
type CreateStudentRequest struct {
	StudentID      int64      `json:"student_id" validate:"required,gt=0"`
	BirthDate      *time.Time `json:"birth_date"`
	EducationLevel string     `json:"education_level"`
	University     string     `json:"university"`
	Faculty        string     `json:"faculty"`
	YearOfStudy    *int       `json:"year_of_study" validate:"omitempty,gte=1"`
	Scholarship    bool       `json:"scholarship"`
}

// UpdateStudentRequest updates academic profile fields only.
type UpdateStudentRequest struct {
	BirthDate      *time.Time `json:"birth_date"`
	EducationLevel string     `json:"education_level"`
	University     string     `json:"university"`
	Faculty        string     `json:"faculty"`
	YearOfStudy    *int       `json:"year_of_study" validate:"omitempty,gte=1"`
	Scholarship    bool       `json:"scholarship"`
}

// CreateTeacherRequest attaches a teacher profile to an existing user.
type CreateTeacherRequest struct {
	TeacherID       int64  `json:"teacher_id" validate:"required,gt=0"`
	AcademicDegree  string `json:"academic_degree"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	Specialization  string `json:"specialization"`
	Bio             string `json:"bio"`
}

// UpdateTeacherRequest updates teaching profile fields only.
type UpdateTeacherRequest struct {
	AcademicDegree  string `json:"academic_degree"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	Specialization  string `json:"specialization"`
	Bio             string `json:"bio"`
}

// CreateCourseRequest is the catalog entry payload.
type CreateCourseRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	LevelID       int64   `json:"level_id" validate:"required,gt=0"`
	Price         float64 `json:"price" validate:"gte=0"`
	DurationHours *int    `json:"duration_hours" validate:"omitempty,gte=0"`
	LanguageID    int64   `json:"language_id" validate:"required,gt=0"`
	CategoryID    int64   `json:"category_id" validate:"required,gt=0"`
	TeacherID     int64   `json:"teacher_id" validate:"required,gt=0"`
}

// UpdateCourseRequest mirrors CreateCourseRequest for full updates.
type UpdateCourseRequest = CreateCourseRequest

// CreateLessonRequest adds a lesson to a course.
type CreateLessonRequest struct {
	CourseID        int64  `json:"course_id" validate:"required,gt=0"`
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content"`
	VideoURL        string `json:"video_url" validate:"omitempty,url"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,gte=0"`
	LessonOrder     int    `json:"lesson_order" validate:"required,gte=1"`
}

// UpdateLessonRequest updates lesson content and ordering.
type UpdateLessonRequest struct {
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content"`
	VideoURL        string `json:"video_url" validate:"omitempty,url"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,gte=0"`
	LessonOrder     int    `json:"lesson_order" validate:"required,gte=1"`
}

// ReorderLessonsRequest renumbers every lesson of a course in the given
// sequence.
type ReorderLessonsRequest struct {
	LessonIDs []int64 `json:"lesson_ids" validate:"required,min=1,dive,gt=0"`
}

// CreateAssignmentRequest adds an assignment to a lesson.
type CreateAssignmentRequest struct {
	LessonID    int64      `json:"lesson_id" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	MaxScore    int        `json:"max_score" validate:"required,gt=0"`
	TypeID      int64      `json:"type_id" validate:"required,gt=0"`
}

// UpdateAssignmentRequest updates assignment fields.
type UpdateAssignmentRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	MaxScore    int        `json:"max_score" validate:"required,gt=0"`
	TypeID      int64      `json:"type_id" validate:"required,gt=0"`
}

// CreateEnrollmentRequest enrolls a student in a course.
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"student_id" validate:"required,gt=0"`
	CourseID  int64 `json:"course_id" validate:"required,gt=0"`
}

// UpdateEnrollmentStatusRequest moves an enrollment to another status code.
type UpdateEnrollmentStatusRequest struct {
	StatusCode string `json:"status_code" validate:"required"`
}

// CompleteEnrollmentRequest finishes an enrollment with a grade.
type CompleteEnrollmentRequest struct {
	StatusCode string  `json:"status_code" validate:"required"`
	FinalGrade float64 `json:"final_grade" validate:"gte=0,lte=100"`
}

// CreateSubmissionRequest records a student's answer to an assignment.
type CreateSubmissionRequest struct {
	AssignmentID int64  `json:"assignment_id" validate:"required,gt=0"`
	StudentID    int64  `json:"student_id" validate:"required,gt=0"`
	Feedback     string `json:"feedback"`
}

// GradeSubmissionRequest records score and feedback.
type GradeSubmissionRequest struct {
	Score    int    `json:"score" validate:"gte=0"`
	Feedback string `json:"feedback"`
}

// CreateSubmissionFileRequest attaches an externally stored file by URL.
type CreateSubmissionFileRequest struct {
	SubmissionID int64  `json:"submission_id" validate:"required,gt=0"`
	FileURL      string `json:"file_url" validate:"required,url"`
}

// CreateReviewRequest attaches a review to an enrollment.
type CreateReviewRequest struct {
	EnrollmentID int64  `json:"enrollment_id" validate:"required,gt=0"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment"`
}

// UpdateReviewRequest replaces rating and comment.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}
