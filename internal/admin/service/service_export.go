package service

import (
	"bytes"
	"context"

	"bizadmin/internal/admin/export"
	"bizadmin/internal/admin/model"
)

// Report is a rendered workbook ready to be downloaded.
type Report struct {
	FileName string
	Data     *bytes.Buffer
}

// ExportPayroll renders the salary records of one month, the current month when none is given.
func (s *Service) ExportPayroll(ctx context.Context, req model.PayrollDashboardReq) (*Report, error) {
	month := req.Month
	if month == "" {
		month = s.currentMonth()
	}
	records, err := s.Store.Salaries.All(ctx, model.Filter{"month": month})
	if err != nil {
		return nil, err
	}
	buf, err := export.Payroll(month, records)
	if err != nil {
		return nil, err
	}
	return &Report{FileName: export.FileName("payroll", month), Data: buf}, nil
}

func (s *Service) ExportInventory(ctx context.Context) (*Report, error) {
	products, err := s.Store.Products.All(ctx, nil)
	if err != nil {
		return nil, err
	}
	buf, err := export.Inventory(products)
	if err != nil {
		return nil, err
	}
	return &Report{FileName: export.FileName("inventory", s.Now().Format("2006-01-02")), Data: buf}, nil
}
