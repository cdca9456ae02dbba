package stats

import (
	"bizadmin/internal/admin/model"

	"github.com/shopspring/decimal"
)

// OverviewInput is everything the landing dashboard is computed from.
// Collections that only contribute a count are passed as counts.
type OverviewInput struct {
	Month       string
	Projects    []*model.Project
	Products    []*model.Product
	Returns     []*model.Return
	Salaries    []*model.SalaryRecord
	Employees   int
	Departments int
	Customers   int
	Suppliers   int
}

func Overview(in OverviewInput) model.OverviewDashboard {
	d := model.OverviewDashboard{
		Projects:      len(in.Projects),
		Employees:     in.Employees,
		Departments:   in.Departments,
		Customers:     in.Customers,
		Suppliers:     in.Suppliers,
		Products:      len(in.Products),
		LowStock:      len(LowStock(in.Products)),
		PayrollMonth:  in.Month,
		PayrollNetPay: decimal.Zero,
	}
	for _, p := range in.Projects {
		if IsActiveProject(p) {
			d.ActiveProjects++
		}
	}
	for _, r := range in.Returns {
		if r.StatusOrDefault() == model.ReturnPending {
			d.PendingReturns++
		}
	}
	for _, s := range in.Salaries {
		if s.Month == in.Month {
			d.PayrollNetPay = d.PayrollNetPay.Add(NetPay(s))
		}
	}
	return d
}
