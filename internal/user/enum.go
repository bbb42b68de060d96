package user

const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// DashboardPath maps a role to the dashboard it may reach.
func DashboardPath(role string) string {
	switch role {
	case RoleAdmin:
		return "/admin-dashboard"
	case RoleStaff:
		return "/staff-dashboard"
	default:
		return "/student-dashboard"
	}
}
