package access

type Role string

const (
	RoleHR             Role = "hr"
	RolePayrollOfficer Role = "payroll_officer"
	RoleViewer         Role = "viewer"
)

type Permission string

const (
	// Payroll
	PermissionPayrollView     Permission = "payroll.view"
	PermissionPayrollGenerate Permission = "payroll.generate"

	// Attendance
	PermissionAttendanceMark Permission = "attendance.mark"

	// Loans
	PermissionLoanRecordPayment Permission = "loan.record_payment"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleHR: {
		PermissionPayrollView,
		PermissionPayrollGenerate,
		PermissionAttendanceMark,
		PermissionLoanRecordPayment,
	},
	RolePayrollOfficer: {
		PermissionPayrollView,
		PermissionPayrollGenerate,
		PermissionLoanRecordPayment,
	},
	RoleViewer: {
		PermissionPayrollView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
