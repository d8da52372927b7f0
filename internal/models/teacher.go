package models

// Teacher extends a user with teaching attributes, sharing its primary key.
type Teacher struct {
	TeacherID       int64  `db:"teacher_id" json:"teacher_id"`
	AcademicDegree  string `db:"academic_degree" json:"academic_degree"`
	ExperienceYears *int   `db:"experience_years" json:"experience_years,omitempty"`
	Specialization  string `db:"specialization" json:"specialization"`
	Bio             string `db:"bio" json:"bio"`
}

// TeacherProfile merges user identity fields with the teacher profile.
type TeacherProfile struct {
	TeacherID       int64  `db:"teacher_id" json:"teacher_id"`
	Email           string `db:"email" json:"email"`
	FirstName       string `db:"first_name" json:"first_name"`
	LastName        string `db:"last_name" json:"last_name"`
	Phone           string `db:"phone" json:"phone"`
	AcademicDegree  string `db:"academic_degree" json:"academic_degree"`
	ExperienceYears *int   `db:"experience_years" json:"experience_years,omitempty"`
	Specialization  string `db:"specialization" json:"specialization"`
	Bio             string `db:"bio" json:"bio"`
}
