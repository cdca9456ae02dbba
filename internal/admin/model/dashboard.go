package model

import "github.com/shopspring/decimal"

type CountByKey struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type MonthlyBudget struct {
	Month  string          `json:"month"`
	Count  int             `json:"count"`
	Budget decimal.Decimal `json:"budget"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type InventoryDashboard struct {
	TotalProducts   int             `json:"total_products"`
	TotalUnits      int64           `json:"total_units"`
	StockValue      decimal.Decimal `json:"stock_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	LowStock        []*Product      `json:"low_stock"`
	Categories      []CountByKey    `json:"categories"`
	Suppliers       int             `json:"suppliers"`
	ActiveSuppliers int             `json:"active_suppliers"`
	PendingReturns  int             `json:"pending_returns"`
	ReturnedUnits   int64           `json:"returned_units"`
	RefundTotal     decimal.Decimal `json:"refund_total"`
}

type MilestoneRef struct {
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Milestone   Milestone `json:"milestone"`
}

type ProjectDashboard struct {
	TotalProjects       int             `json:"total_projects"`
	ActiveProjects      int             `json:"active_projects"`
	ByStatus            []CountByKey    `json:"by_status"`
	TotalBudget         decimal.Decimal `json:"total_budget"`
	TotalSpent          decimal.Decimal `json:"total_spent"`
	OverBudget          int             `json:"over_budget"`
	Monthly             []MonthlyBudget `json:"monthly"`
	MilestonesTotal     int             `json:"milestones_total"`
	MilestonesCompleted int             `json:"milestones_completed"`
	OverdueMilestones   []MilestoneRef  `json:"overdue_milestones"`
	UpcomingMilestones  []MilestoneRef  `json:"upcoming_milestones"`
}

type DepartmentHeadcount struct {
	DepartmentID string          `json:"department_id"`
	Name         string          `json:"name"`
	Headcount    int             `json:"headcount"`
	Budget       decimal.Decimal `json:"budget"`
}

type HRDashboard struct {
	TotalEmployees    int                   `json:"total_employees"`
	Active            int                   `json:"active"`
	OnLeave           int                   `json:"on_leave"`
	Terminated        int                   `json:"terminated"`
	Departments       []DepartmentHeadcount `json:"departments"`
	AverageBaseSalary decimal.Decimal       `json:"average_base_salary"`
	HiresByMonth      []MonthlyCount        `json:"hires_by_month"`
	Documents         int                   `json:"documents"`
}

type DepartmentPayroll struct {
	DepartmentID string          `json:"department_id"`
	Name         string          `json:"name"`
	Records      int             `json:"records"`
	NetPay       decimal.Decimal `json:"net_pay"`
}

type PayrollDashboard struct {
	Month           string              `json:"month"`
	Records         int                 `json:"records"`
	Paid            int                 `json:"paid"`
	Pending         int                 `json:"pending"`
	TotalAllowances decimal.Decimal     `json:"total_allowances"`
	TotalDeductions decimal.Decimal     `json:"total_deductions"`
	TotalNetPay     decimal.Decimal     `json:"total_net_pay"`
	ByDepartment    []DepartmentPayroll `json:"by_department"`
}

type CustomerDashboard struct {
	TotalCustomers int             `json:"total_customers"`
	ByStatus       []CountByKey    `json:"by_status"`
	NewByMonth     []MonthlyCount  `json:"new_by_month"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	TopCustomers   []*Customer     `json:"top_customers"`
}

type OverviewDashboard struct {
	Projects       int             `json:"projects"`
	ActiveProjects int             `json:"active_projects"`
	Employees      int             `json:"employees"`
	Departments    int             `json:"departments"`
	Customers      int             `json:"customers"`
	Suppliers      int             `json:"suppliers"`
	Products       int             `json:"products"`
	LowStock       int             `json:"low_stock"`
	PendingReturns int             `json:"pending_returns"`
	PayrollMonth   string          `json:"payroll_month"`
	PayrollNetPay  decimal.Decimal `json:"payroll_net_pay"`
}

type PayrollDashboardReq struct {
	Month string `query:"month" validate:"omitempty,month"`
}

func (r *PayrollDashboardReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
