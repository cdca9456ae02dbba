package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	Base         `bson:",inline"`
	EmployeeCode string          `bson:"employee_code,omitempty" json:"employee_code,omitempty"`
	FirstName    string          `bson:"first_name" json:"first_name"`
	LastName     string          `bson:"last_name" json:"last_name"`
	Email        string          `bson:"email" json:"email"`
	Phone        string          `bson:"phone,omitempty" json:"phone,omitempty"`
	DepartmentID string          `bson:"department_id,omitempty" json:"department_id,omitempty"`
	Department   string          `bson:"department,omitempty" json:"department,omitempty"`
	Position     string          `bson:"position,omitempty" json:"position,omitempty"`
	Status       string          `bson:"status" json:"status"`
	HireDate     time.Time       `bson:"hire_date" json:"hire_date"`
	BaseSalary   decimal.Decimal `bson:"base_salary" json:"base_salary"`
	Skills       []string        `bson:"skills,omitempty" json:"skills,omitempty"`
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

func (e *Employee) StatusOrDefault() string {
	if e.Status == "" {
		return EmployeeActive
	}
	return e.Status
}

type EmployeeInput struct {
	EmployeeCode string          `json:"employee_code" validate:"omitempty,max=50"`
	FirstName    string          `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string          `json:"last_name" validate:"omitempty,max=100"`
	Email        string          `json:"email" validate:"required,email,max=200"`
	Phone        string          `json:"phone" validate:"omitempty,max=50"`
	DepartmentID string          `json:"department_id" validate:"omitempty,max=50"`
	Department   string          `json:"department" validate:"omitempty,max=100"`
	Position     string          `json:"position" validate:"omitempty,max=100"`
	Status       string          `json:"status" validate:"omitempty,oneof=active on_leave terminated"`
	HireDate     time.Time       `json:"hire_date"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Skills       []string        `json:"skills" validate:"omitempty,max=50,dive,max=50"`
}

func (r *EmployeeInput) Validate() error {
	r.EmployeeCode = strings.ToUpper(strings.TrimSpace(r.EmployeeCode))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.DepartmentID = strings.TrimSpace(r.DepartmentID)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = EmployeeActive
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.BaseSalary.IsNegative() {
		return badRequest("base_salary must not be negative")
	}
	return nil
}

func (r *EmployeeInput) Apply(e *Employee) {
	e.EmployeeCode = r.EmployeeCode
	e.FirstName = r.FirstName
	e.LastName = r.LastName
	e.Email = r.Email
	e.Phone = r.Phone
	e.DepartmentID = r.DepartmentID
	e.Department = r.Department
	e.Position = r.Position
	e.Status = r.Status
	e.HireDate = r.HireDate
	e.BaseSalary = r.BaseSalary
	e.Skills = r.Skills
}
