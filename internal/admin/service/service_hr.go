package service

import (
	"context"
	"errors"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
)

var employeeList = listSpec{
	searchFields: []string{"first_name", "last_name", "email", "employee_code", "position"},
	sortFields:   []string{"first_name", "last_name", "email", "hire_date", "base_salary", "created_at"},
	filter: func(req model.ListReq) model.Filter {
		return eq("status", req.Status, "department_id", req.DepartmentID)
	},
}

var departmentList = listSpec{
	searchFields: []string{"name", "description"},
	sortFields:   []string{"name", "budget", "created_at"},
}

var documentList = listSpec{
	searchFields: []string{"title", "tags", "file_type"},
	sortFields:   []string{"title", "category", "size_bytes", "created_at"},
	filter: func(req model.ListReq) model.Filter {
		return eq("category", req.Category, "employee_id", req.EmployeeID)
	},
}

func (s *Service) ListEmployees(ctx context.Context, req model.ListReq) (*model.ListResp[model.Employee], error) {
	return list(ctx, s.Store.Employees, employeeList, req)
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return get(ctx, s.Store.Employees, id)
}

func (s *Service) CreateEmployee(ctx context.Context, callerID string, req model.EmployeeInput) (*model.Employee, error) {
	e := &model.Employee{}
	req.Apply(e)
	if err := s.fillDepartmentName(ctx, e); err != nil {
		return nil, err
	}
	return create(ctx, s, s.Store.Employees, callerID, e, e.FullName())
}

func (s *Service) UpdateEmployee(ctx context.Context, callerID, id string, req model.EmployeeInput) (*model.Employee, error) {
	return update(ctx, s, s.Store.Employees, callerID, id, model.OpUpdate, func(e *model.Employee) (string, error) {
		req.Apply(e)
		return e.FullName(), s.fillDepartmentName(ctx, e)
	})
}

func (s *Service) DeleteEmployee(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Employees, callerID, id)
}

// fillDepartmentName copies the department name onto the employee when only the id was given.
// An unknown department id is kept as is; references are not enforced.
func (s *Service) fillDepartmentName(ctx context.Context, e *model.Employee) error {
	if e.DepartmentID == "" || e.Department != "" {
		return nil
	}
	dep, err := s.Store.Departments.Get(ctx, e.DepartmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	e.Department = dep.Name
	return nil
}

func (s *Service) ListDepartments(ctx context.Context, req model.ListReq) (*model.ListResp[model.Department], error) {
	return list(ctx, s.Store.Departments, departmentList, req)
}

func (s *Service) GetDepartment(ctx context.Context, id string) (*model.Department, error) {
	return get(ctx, s.Store.Departments, id)
}

func (s *Service) CreateDepartment(ctx context.Context, callerID string, req model.DepartmentInput) (*model.Department, error) {
	d := &model.Department{}
	req.Apply(d)
	return create(ctx, s, s.Store.Departments, callerID, d, d.Name)
}

func (s *Service) UpdateDepartment(ctx context.Context, callerID, id string, req model.DepartmentInput) (*model.Department, error) {
	return update(ctx, s, s.Store.Departments, callerID, id, model.OpUpdate, func(d *model.Department) (string, error) {
		req.Apply(d)
		return d.Name, nil
	})
}

func (s *Service) DeleteDepartment(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Departments, callerID, id)
}

func (s *Service) ListDocuments(ctx context.Context, req model.ListReq) (*model.ListResp[model.FileDocument], error) {
	return list(ctx, s.Store.Documents, documentList, req)
}

func (s *Service) GetDocument(ctx context.Context, id string) (*model.FileDocument, error) {
	return get(ctx, s.Store.Documents, id)
}

// CreateDocument stores document metadata owned by the caller.
func (s *Service) CreateDocument(ctx context.Context, callerID string, req model.DocumentInput) (*model.FileDocument, error) {
	d := &model.FileDocument{OwnerID: callerID}
	req.Apply(d)
	return create(ctx, s, s.Store.Documents, callerID, d, d.Title)
}

func (s *Service) UpdateDocument(ctx context.Context, callerID, id string, req model.DocumentInput) (*model.FileDocument, error) {
	return update(ctx, s, s.Store.Documents, callerID, id, model.OpUpdate, func(d *model.FileDocument) (string, error) {
		req.Apply(d)
		return d.Title, nil
	})
}

func (s *Service) DeleteDocument(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Documents, callerID, id)
}
