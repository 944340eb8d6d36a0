package constants

// Operation names a guarded action; Policy maps each one to the roles allowed to run it.
type Operation string

const (
	OpUsersRead   Operation = "users:read"
	OpUsersWrite  Operation = "users:write"
	OpUsersInvite Operation = "users:invite"

	OpSchoolsRead  Operation = "schools:read"
	OpSchoolsWrite Operation = "schools:write"

	OpStudentsRead   Operation = "students:read"
	OpStudentsWrite  Operation = "students:write"
	OpStudentsEnroll Operation = "students:enroll"

	OpTeachersRead  Operation = "teachers:read"
	OpTeachersWrite Operation = "teachers:write"

	OpParentsRead  Operation = "parents:read"
	OpParentsWrite Operation = "parents:write"

	OpClassesRead  Operation = "classes:read"
	OpClassesWrite Operation = "classes:write"

	OpFeesRead  Operation = "fees:read"
	OpFeesWrite Operation = "fees:write"

	OpNoticesRead  Operation = "notices:read"
	OpNoticesWrite Operation = "notices:write"

	OpAttendanceRead  Operation = "attendance:read"
	OpAttendanceWrite Operation = "attendance:write"

	OpBusesRead  Operation = "buses:read"
	OpBusesWrite Operation = "buses:write"

	OpDashboardRead Operation = "dashboard:read"

	OpAIAsk     Operation = "ai:ask"
	OpDocsRead  Operation = "docs:read"
	OpDocsWrite Operation = "docs:write"
)

func roles(rs ...[]string) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r...)
	}
	return out
}

// Policy is the single source of truth for role checks. SuperAdmin is implicit.
var Policy = map[Operation][]string{
	OpUsersRead:   Oversight,
	OpUsersWrite:  SchoolManagers,
	OpUsersInvite: SchoolManagers,

	OpSchoolsRead:  Oversight,
	OpSchoolsWrite: SchoolManagers,

	OpStudentsRead:   Staff,
	OpStudentsWrite:  SchoolManagers,
	OpStudentsEnroll: SchoolManagers,

	OpTeachersRead:  Oversight,
	OpTeachersWrite: SchoolManagers,

	OpParentsRead:  roles(SchoolManagers, []string{RoleTeacher}),
	OpParentsWrite: SchoolManagers,

	OpClassesRead:  roles(Staff, []string{RoleStudent, RoleParent}),
	OpClassesWrite: SchoolManagers,

	OpFeesRead:  roles(SchoolManagers, []string{RoleComplianceOfficer}),
	OpFeesWrite: SchoolManagers,

	OpNoticesRead:  AllRoles,
	OpNoticesWrite: roles(SchoolManagers, []string{RoleTeacher}),

	OpAttendanceRead:  roles(SchoolManagers, []string{RoleTeacher, RoleInspector}),
	OpAttendanceWrite: roles(SchoolManagers, []string{RoleTeacher}),

	OpBusesRead:  roles(SchoolManagers, []string{RoleTeacher, RoleParent}),
	OpBusesWrite: SchoolManagers,

	OpDashboardRead: Oversight,

	OpAIAsk:     AllRoles,
	OpDocsRead:  roles(SchoolManagers, []string{RoleTeacher}),
	OpDocsWrite: SchoolManagers,
}

// Allowed reports whether role may perform op. Unknown operations are denied.
func Allowed(op Operation, role string) bool {
	if role == RoleSuperAdmin {
		return true
	}
	for _, r := range Policy[op] {
		if r == role {
			return true
		}
	}
	return false
}
