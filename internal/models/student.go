package models

import "time"

// Student extends a user with academic attributes, sharing its primary key.
type Student struct {
	StudentID      int64      `db:"student_id" json:"student_id"`
	BirthDate      *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	EducationLevel string     `db:"education_level" json:"education_level"`
	University     string     `db:"university" json:"university"`
	Faculty        string     `db:"faculty" json:"faculty"`
	YearOfStudy    *int       `db:"year_of_study" json:"year_of_study,omitempty"`
	Scholarship    bool       `db:"scholarship" json:"scholarship"`
}

// StudentProfile merges user identity fields with the student profile.
type StudentProfile struct {
	StudentID      int64      `db:"student_id" json:"student_id"`
	Email          string     `db:"email" json:"email"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	Phone          string     `db:"phone" json:"phone"`
	BirthDate      *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	EducationLevel string     `db:"education_level" json:"education_level"`
	University     string     `db:"university" json:"university"`
	Faculty        string     `db:"faculty" json:"faculty"`
	YearOfStudy    *int       `db:"year_of_study" json:"year_of_study,omitempty"`
	Scholarship    bool       `db:"scholarship" json:"scholarship"`
}
