package auth

const (
	PermEmployeesRead    = "employees.read"
	PermEmployeesWrite   = "employees.write"
	PermDepartmentsRead  = "departments.read"
	PermDepartmentsWrite = "departments.write"
	PermAttendanceRead   = "attendance.read"
	PermAttendanceWrite  = "attendance.write"
	PermLeaveRead        = "leave.read"
	PermLeaveWrite       = "leave.write"
	PermLeaveApprove     = "leave.approve"
	PermPayrollRead      = "payroll.read"
	PermPayrollWrite     = "payroll.write"
	PermDashboardRead    = "dashboard.read"
	PermUsersManage      = "users.manage"
)

var DefaultPermissions = []string{
	PermEmployeesRead,
	PermEmployeesWrite,
	PermDepartmentsRead,
	PermDepartmentsWrite,
	PermAttendanceRead,
	PermAttendanceWrite,
	PermLeaveRead,
	PermLeaveWrite,
	PermLeaveApprove,
	PermPayrollRead,
	PermPayrollWrite,
	PermDashboardRead,
	PermUsersManage,
}

// RolePermissions is the static grant table. "Read" grants for EMPLOYEE are
// narrowed to the caller's own records by the handlers.
var RolePermissions = map[UserRole][]string{
	RoleEmployee: {
		PermEmployeesRead,
		PermDepartmentsRead,
		PermAttendanceRead,
		PermLeaveRead,
		PermLeaveWrite,
		PermPayrollRead,
	},
	RoleManager: {
		PermEmployeesRead,
		PermDepartmentsRead,
		PermAttendanceRead,
		PermAttendanceWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermPayrollRead,
		PermDashboardRead,
	},
	RoleHR: {
		PermEmployeesRead,
		PermEmployeesWrite,
		PermDepartmentsRead,
		PermDepartmentsWrite,
		PermAttendanceRead,
		PermAttendanceWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermPayrollRead,
		PermPayrollWrite,
		PermDashboardRead,
	},
	RoleAdmin: DefaultPermissions,
}

func HasPermission(role UserRole, permission string) bool {
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}

// SeesAllEmployees reports whether role reads records beyond its own.
func SeesAllEmployees(role UserRole) bool {
	return role == RoleAdmin || role == RoleHR || role == RoleManager
}
