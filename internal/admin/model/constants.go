package model

// Collections
const (
	CollectionProjects    = "projects"
	CollectionCustomers   = "customers"
	CollectionDepartments = "departments"
	CollectionEmployees   = "employeeList"
	CollectionSalaries    = "salaryManagement"
	CollectionProducts    = "products"
	CollectionSuppliers   = "suppliers"
	CollectionReturns     = "returns"
	CollectionDocuments   = "documents"
	CollectionUserRoles   = "user_roles"
	CollectionActivity    = "activity_logs"
)

// Project statuses
const (
	ProjectPlanned    = "planned"
	ProjectInProgress = "in_progress"
	ProjectOnHold     = "on_hold"
	ProjectCompleted  = "completed"
	ProjectCancelled  = "cancelled"
)

// Employee statuses
const (
	EmployeeActive     = "active"
	EmployeeOnLeave    = "on_leave"
	EmployeeTerminated = "terminated"
)

// Customer statuses
const (
	CustomerLead     = "lead"
	CustomerActive   = "active"
	CustomerInactive = "inactive"
)

// Supplier and product statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Return statuses
const (
	ReturnPending  = "pending"
	ReturnApproved = "approved"
	ReturnRejected = "rejected"
	ReturnRefunded = "refunded"
)

// Salary statuses
const (
	SalaryPending = "pending"
	SalaryPaid    = "paid"
)

// Roles
const (
	RoleAdmin            = "admin"
	RoleHRManager        = "hr_manager"
	RoleAccountant       = "accountant"
	RoleInventoryManager = "inventory_manager"
	RoleSalesManager     = "sales_manager"
	RoleViewer           = "viewer"
)

// AllowedRoles defines which roles can be assigned through the API
var AllowedRoles = map[string]bool{
	RoleAdmin:            true,
	RoleHRManager:        true,
	RoleAccountant:       true,
	RoleInventoryManager: true,
	RoleSalesManager:     true,
	RoleViewer:           true,
}

// Activity operations
const (
	OpCreate       = "create"
	OpUpdate       = "update"
	OpDelete       = "delete"
	OpAdjustStock  = "adjust_stock"
	OpReturnStatus = "return_status"
	OpAddMilestone = "add_milestone"
	OpMilestone    = "update_milestone"
	OpPaySalary    = "pay_salary"
	OpAssignRole   = "assign_role"
	OpDeleteRole   = "delete_role"
)

// MonthLayout is the month key format used by payroll and monthly grouping.
const MonthLayout = "2006-01"

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)
