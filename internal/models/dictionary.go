package models

// Dictionary is a (code, name) lookup row. All lookup tables except
// categories share this shape.
type Dictionary struct {
	ID   int64  `db:"id" json:"id"`
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// Category is a lookup row identified by its unique name.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Dictionary codes the application resolves on user creation.
const (
	RoleCodeStudent = "student"
	RoleCodeTeacher = "teacher"
	RoleCodeAdmin   = "admin"

	UserStatusCodeActive = "active"
)
