package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PayItem struct {
	Name   string          `bson:"name" json:"name" validate:"required,max=100"`
	Amount decimal.Decimal `bson:"amount" json:"amount"`
}

type SalaryRecord struct {
	Base         `bson:",inline"`
	EmployeeID   string          `bson:"employee_id" json:"employee_id"`
	EmployeeName string          `bson:"employee_name,omitempty" json:"employee_name,omitempty"`
	DepartmentID string          `bson:"department_id,omitempty" json:"department_id,omitempty"`
	Month        string          `bson:"month" json:"month"`
	Allowances   []PayItem       `bson:"allowances" json:"allowances"`
	Deductions   []PayItem       `bson:"deductions" json:"deductions"`
	NetPay       decimal.Decimal `bson:"net_pay" json:"net_pay"`
	Status       string          `bson:"status" json:"status"`
	PaidAt       *time.Time      `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
}

func (s *SalaryRecord) StatusOrDefault() string {
	if s.Status == "" {
		return SalaryPending
	}
	return s.Status
}

// BaseSalaryItem is the allowance line a base salary is recorded under.
const BaseSalaryItem = "Base Salary"

type SalaryInput struct {
	EmployeeID   string          `json:"employee_id" validate:"required,max=50"`
	EmployeeName string          `json:"employee_name" validate:"omitempty,max=200"`
	DepartmentID string          `json:"department_id" validate:"omitempty,max=50"`
	Month        string          `json:"month" validate:"required,month"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Allowances   []PayItem       `json:"allowances" validate:"omitempty,max=50,dive"`
	Deductions   []PayItem       `json:"deductions" validate:"omitempty,max=50,dive"`
}

func (r *SalaryInput) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Month = strings.TrimSpace(r.Month)
	for i := range r.Allowances {
		r.Allowances[i].Name = strings.TrimSpace(r.Allowances[i].Name)
	}
	for i := range r.Deductions {
		r.Deductions[i].Name = strings.TrimSpace(r.Deductions[i].Name)
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.BaseSalary.IsNegative() {
		return badRequest("base_salary must not be negative")
	}
	for _, item := range append(append([]PayItem{}, r.Allowances...), r.Deductions...) {
		if item.Amount.IsNegative() {
			return badRequest("pay item '" + item.Name + "' must not be negative")
		}
	}
	return nil
}

// Apply copies the input onto s. A non-zero base salary becomes the first allowance line.
func (r *SalaryInput) Apply(s *SalaryRecord) {
	s.EmployeeID = r.EmployeeID
	s.EmployeeName = r.EmployeeName
	s.DepartmentID = r.DepartmentID
	s.Month = r.Month

	allowances := make([]PayItem, 0, len(r.Allowances)+1)
	if !r.BaseSalary.IsZero() {
		allowances = append(allowances, PayItem{Name: BaseSalaryItem, Amount: r.BaseSalary})
	}
	allowances = append(allowances, r.Allowances...)
	s.Allowances = allowances

	s.Deductions = r.Deductions
	if s.Deductions == nil {
		s.Deductions = []PayItem{}
	}
}
