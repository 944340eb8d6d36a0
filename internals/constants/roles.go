package constants

import (
	"fmt"
	"strings"
)

const (
	RoleSuperAdmin        = "SuperAdmin"
	RoleAdmin             = "Admin"
	RoleProprietor        = "Proprietor"
	RoleTeacher           = "Teacher"
	RoleParent            = "Parent"
	RoleStudent           = "Student"
	RoleInspector         = "Inspector"
	RoleExamOfficer       = "ExamOfficer"
	RoleComplianceOfficer = "ComplianceOfficer"
)

// Template pesan error role
const (
	ErrInsufficientPermissions = "Insufficient permissions"
	ErrOnlySuperAdminCanAccess = "Only a super admin can access %s."
)

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleProprietor,
		RoleTeacher,
		RoleParent,
		RoleStudent,
		RoleInspector,
		RoleExamOfficer,
		RoleComplianceOfficer,
	}

	// roles an admin may hand out through invites or user creation
	AssignableRoles = []string{
		RoleAdmin,
		RoleProprietor,
		RoleTeacher,
		RoleParent,
		RoleStudent,
		RoleInspector,
		RoleExamOfficer,
		RoleComplianceOfficer,
	}

	SchoolManagers = []string{RoleAdmin, RoleProprietor}

	Staff = []string{
		RoleAdmin,
		RoleProprietor,
		RoleTeacher,
		RoleInspector,
		RoleExamOfficer,
		RoleComplianceOfficer,
	}

	Oversight = []string{
		RoleAdmin,
		RoleProprietor,
		RoleInspector,
		RoleComplianceOfficer,
	}
)

// ParseRole normalises a role string case-insensitively ("student" -> "Student").
func ParseRole(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, r := range AllRoles {
		if strings.EqualFold(r, s) {
			return r, true
		}
	}
	return "", false
}

func IsAssignable(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
