package models

import "time"

// Assignment belongs to a lesson and references the assignment-type lookup.
type Assignment struct {
	AssignmentID int64      `db:"assignment_id" json:"assignment_id"`
	LessonID     int64      `db:"lesson_id" json:"lesson_id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	Deadline     *time.Time `db:"deadline" json:"deadline,omitempty"`
	MaxScore     int        `db:"max_score" json:"max_score"`
	TypeID       int64      `db:"type_id" json:"type_id"`
}

// AssignmentDetail joins an assignment with its type lookup.
type AssignmentDetail struct {
	Assignment
	TypeCode string `db:"type_code" json:"type_code"`
	TypeName string `db:"type_name" json:"type_name"`
}
