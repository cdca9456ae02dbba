package model

import "strings"

// ListReq carries the query parameters accepted by every list endpoint.
// Collection specific filters that do not apply are ignored.
type ListReq struct {
	Q            string `query:"q" validate:"omitempty,max=100"`
	Sort         string `query:"sort" validate:"omitempty,max=50"`
	Status       string `query:"status" validate:"omitempty,max=50"`
	Category     string `query:"category" validate:"omitempty,max=100"`
	DepartmentID string `query:"department_id" validate:"omitempty,max=50"`
	CustomerID   string `query:"customer_id" validate:"omitempty,max=50"`
	SupplierID   string `query:"supplier_id" validate:"omitempty,max=50"`
	EmployeeID   string `query:"employee_id" validate:"omitempty,max=50"`
	ProductID    string `query:"product_id" validate:"omitempty,max=50"`
	Month        string `query:"month" validate:"omitempty,month"`
	LowStock     bool   `query:"low_stock"`

	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=500"`
}

func (r *ListReq) Validate() error {
	r.Q = strings.TrimSpace(r.Q)
	r.Sort = strings.TrimSpace(r.Sort)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.DepartmentID = strings.TrimSpace(r.DepartmentID)
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	r.SupplierID = strings.TrimSpace(r.SupplierID)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.Month = strings.TrimSpace(r.Month)

	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// Filter is an equality filter on stored field names.
type Filter map[string]any

// ListQuery is what a repository needs to serve one page of a collection.
type ListQuery struct {
	Filter       Filter
	Search       string
	SearchFields []string
	SortField    string
	SortDesc     bool
	Page         int
	Size         int
}
