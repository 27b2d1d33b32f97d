package rbac

const (
	RoleAdmin  = "ADMIN"
	RoleStaff  = "STAFF"
	RoleViewer = "VIEWER"
)

const (
	ResourcePayrollRun = "payroll_run"
	ResourceEmployee   = "employee"
)

const (
	ActionRead     = "read"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionSubmit   = "submit"
	ActionApprove  = "approve"
	ActionProcess  = "process"
	ActionVoid     = "void"
	ActionEstimate = "estimate"
)

// DefaultPolicies lets staff prepare runs while approving, processing and
// voiding stay with admins.
func DefaultPolicies() [][]string {
	return [][]string{
		{RoleAdmin, "*", "*"},

		{RoleStaff, ResourcePayrollRun, ActionRead},
		{RoleStaff, ResourcePayrollRun, ActionCreate},
		{RoleStaff, ResourcePayrollRun, ActionUpdate},
		{RoleStaff, ResourcePayrollRun, ActionSubmit},
		{RoleStaff, ResourceEmployee, ActionRead},
		{RoleStaff, ResourceEmployee, ActionEstimate},

		{RoleViewer, ResourcePayrollRun, ActionRead},
		{RoleViewer, ResourceEmployee, ActionRead},
	}
}

// DefaultGroupings lets staff inherit viewer grants.
func DefaultGroupings() [][]string {
	return [][]string{
		{RoleStaff, RoleViewer},
	}
}
