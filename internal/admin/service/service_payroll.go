package service

import (
	"context"
	"errors"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
	"bizadmin/internal/admin/stats"
)

var salaryList = listSpec{
	searchFields: []string{"employee_name"},
	sortFields:   []string{"month", "employee_name", "net_pay", "status", "created_at"},
	filter: func(req model.ListReq) model.Filter {
		return eq("status", req.Status, "employee_id", req.EmployeeID, "department_id", req.DepartmentID, "month", req.Month)
	},
}

func (s *Service) ListSalaries(ctx context.Context, req model.ListReq) (*model.ListResp[model.SalaryRecord], error) {
	return list(ctx, s.Store.Salaries, salaryList, req)
}

func (s *Service) GetSalary(ctx context.Context, id string) (*model.SalaryRecord, error) {
	return get(ctx, s.Store.Salaries, id)
}

// CreateSalary records the pay of one employee for one month. An employee has at most
// one salary record per month.
func (s *Service) CreateSalary(ctx context.Context, callerID string, req model.SalaryInput) (*model.SalaryRecord, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}
	rec := &model.SalaryRecord{Status: model.SalaryPending}
	req.Apply(rec)
	if err := s.fillEmployee(ctx, rec); err != nil {
		return nil, err
	}
	if err := s.checkSalaryUnique(ctx, rec.EmployeeID, rec.Month, ""); err != nil {
		return nil, err
	}
	rec.NetPay = stats.NetPay(rec)
	return create(ctx, s, s.Store.Salaries, callerID, rec, rec.EmployeeID+" "+rec.Month)
}

// UpdateSalary replaces the pay lines of a pending record. Paid records are final.
func (s *Service) UpdateSalary(ctx context.Context, callerID, id string, req model.SalaryInput) (*model.SalaryRecord, error) {
	return update(ctx, s, s.Store.Salaries, callerID, id, model.OpUpdate, func(rec *model.SalaryRecord) (string, error) {
		if rec.StatusOrDefault() == model.SalaryPaid {
			return "", ErrConflict
		}
		if rec.EmployeeID != req.EmployeeID || rec.Month != req.Month {
			if err := s.checkSalaryUnique(ctx, req.EmployeeID, req.Month, rec.ID); err != nil {
				return "", err
			}
		}
		req.Apply(rec)
		if err := s.fillEmployee(ctx, rec); err != nil {
			return "", err
		}
		rec.NetPay = stats.NetPay(rec)
		return rec.EmployeeID + " " + rec.Month, nil
	})
}

func (s *Service) DeleteSalary(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Salaries, callerID, id)
}

// PaySalary marks a pending record paid, fixing its net pay at the time of payment.
func (s *Service) PaySalary(ctx context.Context, callerID, id string) (*model.SalaryRecord, error) {
	return update(ctx, s, s.Store.Salaries, callerID, id, model.OpPaySalary, func(rec *model.SalaryRecord) (string, error) {
		if rec.StatusOrDefault() == model.SalaryPaid {
			return "", ErrConflict
		}
		now := s.Now()
		rec.Status = model.SalaryPaid
		rec.PaidAt = &now
		rec.NetPay = stats.NetPay(rec)
		return rec.EmployeeID + " " + rec.Month + " " + rec.NetPay.StringFixed(2), nil
	})
}

func (s *Service) checkSalaryUnique(ctx context.Context, employeeID, month, exceptID string) error {
	existing, err := s.Store.Salaries.All(ctx, model.Filter{"employee_id": employeeID, "month": month})
	if err != nil {
		return err
	}
	for _, rec := range existing {
		if rec.ID != exceptID {
			return ErrConflict
		}
	}
	return nil
}

// fillEmployee copies name and department from the employee record when the request left them out.
func (s *Service) fillEmployee(ctx context.Context, rec *model.SalaryRecord) error {
	if rec.EmployeeName != "" && rec.DepartmentID != "" {
		return nil
	}
	emp, err := s.Store.Employees.Get(ctx, rec.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if rec.EmployeeName == "" {
		rec.EmployeeName = emp.FullName()
	}
	if rec.DepartmentID == "" {
		rec.DepartmentID = emp.DepartmentID
	}
	return nil
}
