package stats

import (
	"sort"

	"bizadmin/internal/admin/model"

	"github.com/shopspring/decimal"
)

// HR builds the headcount dashboard. Terminated employees are counted but excluded from
// department headcount and the salary average.
func HR(employees []*model.Employee, departments []*model.Department, documents int) model.HRDashboard {
	d := model.HRDashboard{
		TotalEmployees:    len(employees),
		AverageBaseSalary: decimal.Zero,
		Documents:         documents,
	}

	heads := make(map[string]*model.DepartmentHeadcount, len(departments))
	order := make([]string, 0, len(departments)+1)
	for _, dep := range departments {
		heads[dep.ID] = &model.DepartmentHeadcount{DepartmentID: dep.ID, Name: dep.Name, Budget: dep.Budget}
		order = append(order, dep.ID)
	}

	salaries := decimal.Zero
	current := 0
	for _, e := range employees {
		switch e.StatusOrDefault() {
		case model.EmployeeActive:
			d.Active++
		case model.EmployeeOnLeave:
			d.OnLeave++
		case model.EmployeeTerminated:
			d.Terminated++
			continue
		}
		current++
		salaries = salaries.Add(e.BaseSalary)

		h, ok := heads[e.DepartmentID]
		if !ok {
			h, ok = heads[unassigned]
			if !ok {
				h = &model.DepartmentHeadcount{DepartmentID: "", Name: unassigned, Budget: decimal.Zero}
				heads[unassigned] = h
				order = append(order, unassigned)
			}
		}
		h.Headcount++
	}

	if current > 0 {
		d.AverageBaseSalary = salaries.DivRound(decimal.NewFromInt(int64(current)), 2)
	}

	d.Departments = make([]model.DepartmentHeadcount, 0, len(order))
	for _, id := range order {
		d.Departments = append(d.Departments, *heads[id])
	}
	sort.SliceStable(d.Departments, func(i, j int) bool { return d.Departments[i].Headcount > d.Departments[j].Headcount })

	d.HiresByMonth = monthlyCounts(employees, func(e *model.Employee) string {
		if e.HireDate.IsZero() {
			return ""
		}
		return e.HireDate.Format(model.MonthLayout)
	})

	return d
}

// Payroll totals the salary records of one month. Records of other months are ignored.
func Payroll(month string, records []*model.SalaryRecord, departments []*model.Department) model.PayrollDashboard {
	d := model.PayrollDashboard{
		Month:           month,
		TotalAllowances: decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetPay:     decimal.Zero,
	}

	names := make(map[string]string, len(departments))
	for _, dep := range departments {
		names[dep.ID] = dep.Name
	}

	byDep := make(map[string]*model.DepartmentPayroll)
	for _, r := range records {
		if r.Month != month {
			continue
		}
		d.Records++
		if r.StatusOrDefault() == model.SalaryPaid {
			d.Paid++
		} else {
			d.Pending++
		}

		net := NetPay(r)
		d.TotalAllowances = d.TotalAllowances.Add(SumPayItems(r.Allowances))
		d.TotalDeductions = d.TotalDeductions.Add(SumPayItems(r.Deductions))
		d.TotalNetPay = d.TotalNetPay.Add(net)

		// unknown and empty department ids share one bucket
		key, depID := r.DepartmentID, r.DepartmentID
		name, ok := names[depID]
		if !ok {
			key, depID, name = unassigned, "", unassigned
		}
		dp, ok := byDep[key]
		if !ok {
			dp = &model.DepartmentPayroll{DepartmentID: depID, Name: name, NetPay: decimal.Zero}
			byDep[key] = dp
		}
		dp.Records++
		dp.NetPay = dp.NetPay.Add(net)
	}

	d.ByDepartment = make([]model.DepartmentPayroll, 0, len(byDep))
	for _, dp := range byDep {
		d.ByDepartment = append(d.ByDepartment, *dp)
	}
	sort.SliceStable(d.ByDepartment, func(i, j int) bool {
		a, b := d.ByDepartment[i], d.ByDepartment[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.DepartmentID < b.DepartmentID
	})

	return d
}

// Customers builds the customer dashboard with the topN customers by total purchases.
func Customers(customers []*model.Customer, topN int) model.CustomerDashboard {
	d := model.CustomerDashboard{
		TotalCustomers: len(customers),
		TotalPurchases: decimal.Zero,
	}
	for _, c := range customers {
		d.TotalPurchases = d.TotalPurchases.Add(c.TotalPurchases)
	}
	d.ByStatus = countBy(customers, func(c *model.Customer) string { return c.StatusOrDefault() })
	d.NewByMonth = monthlyCounts(customers, func(c *model.Customer) string {
		if c.CreatedAt.IsZero() {
			return ""
		}
		return c.CreatedAt.Format(model.MonthLayout)
	})

	ranked := make([]*model.Customer, len(customers))
	copy(ranked, customers)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalPurchases.GreaterThan(ranked[j].TotalPurchases) })
	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	d.TopCustomers = ranked

	return d
}
