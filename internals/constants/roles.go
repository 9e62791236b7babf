package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
	ErrOnlyTeachersCanAccess = "Only teachers may access %s."
	ErrOnlyStudentsCanAccess = "Only students may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	TeacherOnly = []string{
		RoleTeacher,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
