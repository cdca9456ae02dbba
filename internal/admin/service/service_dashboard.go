package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"bizadmin/internal/admin/cache"
	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/stats"
)

const dashboardPrefix = "dashboard:"

// cached returns the dashboard stored under key, computing and storing it on a miss.
// A result computed across an invalidation is returned but not stored.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *Service, name, key string, compute func(ctx context.Context) (*T, error)) (*T, error) {
	data, err := s.Cache.Get(ctx, key)
	switch {
	case err == nil:
		var v T
		if jsonErr := json.Unmarshal(data, &v); jsonErr == nil {
			s.Metrics.ObserveCache(name, true)
			return &v, nil
		}
		slog.Warn("discarding unreadable cached dashboard", "key", key)
	case !errors.Is(err, cache.ErrMiss):
		slog.Warn("dashboard cache read failed", "key", key, "error", err)
	}
	s.Metrics.ObserveCache(name, false)

	gen := s.generation.Load()
	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	if s.generation.Load() != gen {
		return v, nil
	}
	if data, err := json.Marshal(v); err == nil {
		if err := s.Cache.Set(ctx, key, data, s.CacheTTL); err != nil {
			slog.Warn("dashboard cache write failed", "key", key, "error", err)
		}
	}
	return v, nil
}

func (s *Service) invalidateDashboards(ctx context.Context) {
	s.generation.Add(1)
	if err := s.Cache.DeletePrefix(ctx, dashboardPrefix); err != nil {
		slog.Warn("dashboard cache invalidation failed", "error", err)
	}
}

func (s *Service) currentMonth() string {
	return s.Now().Format(model.MonthLayout)
}

func (s *Service) InventoryDashboard(ctx context.Context) (*model.InventoryDashboard, error) {
	return cached(ctx, s, "inventory", dashboardPrefix+"inventory", func(ctx context.Context) (*model.InventoryDashboard, error) {
		products, err := s.Store.Products.All(ctx, nil)
		if err != nil {
			return nil, err
		}
		suppliers, err := s.Store.Suppliers.All(ctx, nil)
		if err != nil {
			return nil, err
		}
		returns, err := s.Store.Returns.All(ctx, nil)
		if err != nil {
			return nil, err
		}
		d := stats.Inventory(products, suppliers, returns)
		return &d, nil
	})
}

func (s *Service) ProjectDashboard(ctx context.Context) (*model.ProjectDashboard, error) {
	return cached(ctx, s, "projects", dashboardPrefix+"projects", func(ctx context.Context) (*model.ProjectDashboard, error) {
		projects, err := s.Store.Projects.All(ctx, nil)
		if err != nil {
			return nil, err
		}
		d := stats.Projects(projects, s.Now(), s.UpcomingWindow)
		return &d, nil
	})
}

func (s *Service) HRDashboard(ctx context.Context) (*model.HRDashboard, error) {
	return cached(ctx, s, "hr", dashboardPrefix+"hr", func(ctx context.Context) (*model.HRDashboard, error) {
		employees, err := s.Store.Employees.All(ctx, nil)
		if err != nil {
			return nil, err
		}
		departments, err := s.Store.Departments.All(ctx, nil)
		if err != nil {
			return nil, err
		}
		documents, err := s.Store.Documents.Count(ctx, nil)
		if err != nil {
			return nil, err
		}
		d := stats.HR(employees, departments, int(documents))
		return &d, nil
	})
}

// PayrollDashboard totals one month of salary records, the current month when none is given.
func (s *Service) PayrollDashboard(ctx context.Context, req model.PayrollDashboardReq) (*model.PayrollDashboard, error) {
	month := req.Month
	if month == "" {
		month = s.currentMonth()
	}
	return cached(ctx, s, "payroll", dashboardPrefix+"payroll:"+month, func(ctx context.Context) (*model.PayrollDashboard, error) {
		records, err := s.Store.Salaries.All(ctx, model.Filter{"month": month})
		if err != nil {
			return nil, err
		}
		departments, err := s.Store.Departments.All(ctx, nil)
		if err != nil {
			return nil, err
		}
		d := stats.Payroll(month, records, departments)
		return &d, nil
	})
}

func (s *Service) CustomerDashboard(ctx context.Context) (*model.CustomerDashboard, error) {
	return cached(ctx, s, "customers", dashboardPrefix+"customers", func(ctx context.Context) (*model.CustomerDashboard, error) {
		customers, err := s.Store.Customers.All(ctx, nil)
		if err != nil {
			return nil, err
		}
		d := stats.Customers(customers, topCustomers)
		return &d, nil
	})
}

func (s *Service) OverviewDashboard(ctx context.Context) (*model.OverviewDashboard, error) {
	return cached(ctx, s, "overview", dashboardPrefix+"overview", func(ctx context.Context) (*model.OverviewDashboard, error) {
		in := stats.OverviewInput{Month: s.currentMonth()}
		var err error

		if in.Projects, err = s.Store.Projects.All(ctx, nil); err != nil {
			return nil, err
		}
		if in.Products, err = s.Store.Products.All(ctx, nil); err != nil {
			return nil, err
		}
		if in.Returns, err = s.Store.Returns.All(ctx, nil); err != nil {
			return nil, err
		}
		if in.Salaries, err = s.Store.Salaries.All(ctx, model.Filter{"month": in.Month}); err != nil {
			return nil, err
		}

		counts := []struct {
			dst   *int
			count func(context.Context, model.Filter) (int64, error)
		}{
			{&in.Employees, s.Store.Employees.Count},
			{&in.Departments, s.Store.Departments.Count},
			{&in.Customers, s.Store.Customers.Count},
			{&in.Suppliers, s.Store.Suppliers.Count},
		}
		for _, c := range counts {
			n, err := c.count(ctx, nil)
			if err != nil {
				return nil, err
			}
			*c.dst = int(n)
		}

		d := stats.Overview(in)
		return &d, nil
	})
}
