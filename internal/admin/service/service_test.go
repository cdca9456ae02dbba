package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"bizadmin/internal/admin/cache"
	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
	"bizadmin/internal/admin/service"
	"bizadmin/internal/admin/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memCache is an in-process cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *memCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

func setID(id string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		if d, ok := args.Get(1).(model.Document); ok {
			d.Meta().ID = id
		}
	}
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("create project stamps caller and returns id", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		m.Projects.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
			return p.Name == "Warehouse revamp" && p.CreatedBy == "u1" && p.UpdatedBy == "u1" && p.Status == model.ProjectPlanned
		})).Run(setID("p1")).Return(nil)

		req := model.ProjectInput{Name: "  Warehouse revamp ", Budget: decimal.NewFromInt(1000)}
		require.NoError(t, req.Validate())

		p, err := svc.CreateProject(ctx, "u1", req)
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
		m.Projects.AssertExpectations(t)
	})

	t.Run("create project without caller is unauthorized", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		_, err := svc.CreateProject(ctx, "", model.ProjectInput{Name: "x"})
		assert.ErrorIs(t, err, service.ErrUnauthorized)
		m.Projects.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("duplicate key maps to conflict", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.Products.On("Insert", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		_, err := svc.CreateProduct(ctx, "u1", model.ProductInput{SKU: "A-1", Name: "Bolt"})
		assert.ErrorIs(t, err, service.ErrConflict)
	})
}

func TestListQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("list products passes filters search and sort", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		expected := model.ListQuery{
			Filter:       model.Filter{"status": "active", "category": "tools"},
			Search:       "drill",
			SearchFields: []string{"name", "sku"},
			SortField:    "unit_price",
			SortDesc:     true,
			Page:         2,
			Size:         10,
		}
		m.Products.On("List", mock.Anything, expected).Return([]*model.Product{{Name: "Drill"}}, int64(11), nil)

		req := model.ListReq{Q: "drill", Status: "Active", Category: "TOOLS", Sort: "-unit_price", Page: 2, Size: 10}
		require.NoError(t, req.Validate())

		resp, err := svc.ListProducts(ctx, req)
		require.NoError(t, err)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, int64(11), resp.TotalCount)
		assert.Equal(t, 2, resp.Page)
		m.Products.AssertExpectations(t)
	})

	t.Run("unsupported sort field is a bad request", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		req := model.ListReq{Sort: "password"}
		require.NoError(t, req.Validate())

		_, err := svc.ListEmployees(ctx, req)
		var detail *model.ErrorDetail
		require.True(t, errors.As(err, &detail))
		assert.Equal(t, "bad_request", detail.Code)
	})

	t.Run("low stock list keeps search and sort", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		expected := model.ListQuery{
			Filter:       model.Filter{"$expr": repository.FieldsAtMost("current_stock", "min_stock_level")},
			Search:       "widget",
			SearchFields: []string{"name", "sku"},
			SortField:    "current_stock",
			SortDesc:     true,
			Page:         1,
			Size:         model.DefaultPageSize,
		}
		m.Products.On("List", mock.Anything, expected).Return([]*model.Product{
			{Name: "widget", CurrentStock: 3, MinStockLevel: 5},
		}, int64(1), nil)

		req := model.ListReq{LowStock: true, Q: "widget", Sort: "-current_stock"}
		require.NoError(t, req.Validate())

		resp, err := svc.ListProducts(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "widget", resp.Data[0].Name)
		assert.Equal(t, int64(1), resp.TotalCount)
		m.Products.AssertExpectations(t)
		m.Products.AssertNotCalled(t, "All", mock.Anything, mock.Anything)
	})
}

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("adjust stock returns updated product", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.Products.On("Increment", mock.Anything, "prod1", "current_stock", int64(-4), "u1").
			Return(&model.Product{SKU: "A-1", CurrentStock: 6, MinStockLevel: 2}, nil)

		p, err := svc.AdjustStock(ctx, "u1", "prod1", model.StockAdjustReq{Delta: -4, Reason: "sold"})
		require.NoError(t, err)
		assert.Equal(t, int64(6), p.CurrentStock)
	})

	t.Run("stock below zero is refused", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.Products.On("Increment", mock.Anything, "prod1", "current_stock", int64(-40), "u1").Return(nil, repository.ErrConstraint)

		_, err := svc.AdjustStock(ctx, "u1", "prod1", model.StockAdjustReq{Delta: -40})
		assert.ErrorIs(t, err, service.ErrInsufficientStock)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.Products.On("Increment", mock.Anything, "nope", "current_stock", int64(1), "u1").Return(nil, repository.ErrNotFound)

		_, err := svc.AdjustStock(ctx, "u1", "nope", model.StockAdjustReq{Delta: 1})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestSetReturnStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("approve with restock adds quantity back once", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		ret := &model.Return{ProductID: "prod1", Quantity: 3, Status: model.ReturnPending}
		ret.ID = "r1"
		m.Returns.On("Get", mock.Anything, "r1").Return(ret, nil)
		m.Products.On("Increment", mock.Anything, "prod1", "current_stock", int64(3), "u1").
			Return(&model.Product{CurrentStock: 13}, nil).Once()
		m.Returns.On("Replace", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.SetReturnStatus(ctx, "u1", "r1", model.ReturnStatusReq{Status: model.ReturnApproved, Restock: true})
		require.NoError(t, err)
		assert.True(t, got.Restocked)
		assert.Equal(t, model.ReturnApproved, got.Status)

		// the same return is refunded later, restock requested again
		got, err = svc.SetReturnStatus(ctx, "u1", "r1", model.ReturnStatusReq{Status: model.ReturnRefunded, Restock: true})
		require.NoError(t, err)
		assert.Equal(t, model.ReturnRefunded, got.Status)
		m.Products.AssertNumberOfCalls(t, "Increment", 1)
	})

	t.Run("status change without restock leaves stock alone", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		m.Returns.On("Get", mock.Anything, "r2").Return(&model.Return{ProductID: "prod1", Quantity: 3}, nil)
		m.Returns.On("Replace", mock.Anything, mock.MatchedBy(func(r *model.Return) bool {
			return r.Status == model.ReturnRejected && !r.Restocked && r.UpdatedBy == "u1"
		})).Return(nil)

		_, err := svc.SetReturnStatus(ctx, "u1", "r2", model.ReturnStatusReq{Status: model.ReturnRejected})
		require.NoError(t, err)
		m.Products.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.Returns.AssertExpectations(t)
	})

	t.Run("restock of a missing product is a bad request", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		m.Returns.On("Get", mock.Anything, "r3").Return(&model.Return{ProductID: "gone", Quantity: 1}, nil)
		m.Products.On("Increment", mock.Anything, "gone", "current_stock", int64(1), "u1").Return(nil, repository.ErrNotFound)

		_, err := svc.SetReturnStatus(ctx, "u1", "r3", model.ReturnStatusReq{Status: model.ReturnApproved, Restock: true})
		var detail *model.ErrorDetail
		assert.True(t, errors.As(err, &detail))
		m.Returns.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})
}

func TestMilestones(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	t.Run("add milestone assigns an id", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.Projects.On("Get", mock.Anything, "p1").Return(&model.Project{Name: "P"}, nil)
		m.Projects.On("Replace", mock.Anything, mock.Anything).Return(nil)

		p, err := svc.AddMilestone(ctx, "u1", "p1", model.MilestoneInput{Title: "Kickoff", DueDate: due})
		require.NoError(t, err)
		require.Len(t, p.Milestones, 1)
		assert.Len(t, p.Milestones[0].ID, 24)
		assert.False(t, p.Milestones[0].Completed)
	})

	t.Run("complete then reopen milestone", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		project := &model.Project{Milestones: []model.Milestone{{ID: "m1", Title: "Kickoff", DueDate: due}}}
		m.Projects.On("Get", mock.Anything, "p1").Return(project, nil)
		m.Projects.On("Replace", mock.Anything, mock.Anything).Return(nil)

		p, err := svc.SetMilestoneCompletion(ctx, "u1", "p1", "m1", model.MilestoneUpdateReq{Completed: true})
		require.NoError(t, err)
		assert.True(t, p.Milestones[0].Completed)
		require.NotNil(t, p.Milestones[0].CompletedAt)
		assert.Equal(t, testutil.FixedNow, *p.Milestones[0].CompletedAt)

		p, err = svc.SetMilestoneCompletion(ctx, "u1", "p1", "m1", model.MilestoneUpdateReq{Completed: false})
		require.NoError(t, err)
		assert.False(t, p.Milestones[0].Completed)
		assert.Nil(t, p.Milestones[0].CompletedAt)
	})

	t.Run("unknown milestone is not found", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.Projects.On("Get", mock.Anything, "p1").Return(&model.Project{}, nil)

		_, err := svc.SetMilestoneCompletion(ctx, "u1", "p1", "missing", model.MilestoneUpdateReq{Completed: true})
		assert.ErrorIs(t, err, service.ErrNotFound)
		m.Projects.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})
}

func TestSalaries(t *testing.T) {
	ctx := context.Background()

	t.Run("create salary computes net pay and fills employee", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		m.Employees.On("Get", mock.Anything, "e1").Return(&model.Employee{FirstName: "Ada", LastName: "Lovelace", DepartmentID: "d1"}, nil)
		m.Salaries.On("All", mock.Anything, model.Filter{"employee_id": "e1", "month": "2026-10"}).Return([]*model.SalaryRecord{}, nil)
		m.Salaries.On("Insert", mock.Anything, mock.Anything).Run(setID("s1")).Return(nil)

		req := model.SalaryInput{
			EmployeeID: "e1",
			Month:      "2026-10",
			BaseSalary: decimal.NewFromInt(3000),
			Allowances: []model.PayItem{{Name: "Bonus", Amount: decimal.NewFromInt(200)}},
			Deductions: []model.PayItem{{Name: "Tax", Amount: decimal.NewFromInt(500)}},
		}
		require.NoError(t, req.Validate())

		rec, err := svc.CreateSalary(ctx, "u1", req)
		require.NoError(t, err)
		assert.Equal(t, "s1", rec.ID)
		assert.Equal(t, "Ada Lovelace", rec.EmployeeName)
		assert.Equal(t, "d1", rec.DepartmentID)
		assert.Equal(t, model.BaseSalaryItem, rec.Allowances[0].Name)
		assert.Equal(t, model.SalaryPending, rec.Status)
		assert.True(t, rec.NetPay.Equal(decimal.NewFromInt(2700)), rec.NetPay.String())
	})

	t.Run("second record for the same month is a conflict", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		existing := &model.SalaryRecord{EmployeeID: "e1", Month: "2026-10"}
		existing.ID = "s0"
		m.Salaries.On("All", mock.Anything, model.Filter{"employee_id": "e1", "month": "2026-10"}).Return([]*model.SalaryRecord{existing}, nil)

		_, err := svc.CreateSalary(ctx, "u1", model.SalaryInput{EmployeeID: "e1", EmployeeName: "Ada", DepartmentID: "d1", Month: "2026-10"})
		assert.ErrorIs(t, err, service.ErrConflict)
		m.Salaries.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("pay salary marks it paid once", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		rec := &model.SalaryRecord{
			EmployeeID: "e1",
			Month:      "2026-10",
			Allowances: []model.PayItem{{Name: "Base Salary", Amount: decimal.NewFromInt(1000)}},
			Deductions: []model.PayItem{{Name: "Tax", Amount: decimal.NewFromInt(100)}},
		}
		m.Salaries.On("Get", mock.Anything, "s1").Return(rec, nil)
		m.Salaries.On("Replace", mock.Anything, mock.Anything).Return(nil)

		paid, err := svc.PaySalary(ctx, "u1", "s1")
		require.NoError(t, err)
		assert.Equal(t, model.SalaryPaid, paid.Status)
		assert.True(t, paid.NetPay.Equal(decimal.NewFromInt(900)))
		require.NotNil(t, paid.PaidAt)

		_, err = svc.PaySalary(ctx, "u1", "s1")
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("paid salary cannot be edited", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.Salaries.On("Get", mock.Anything, "s1").Return(&model.SalaryRecord{EmployeeID: "e1", Month: "2026-10", Status: model.SalaryPaid}, nil)

		_, err := svc.UpdateSalary(ctx, "u1", "s1", model.SalaryInput{EmployeeID: "e1", Month: "2026-10"})
		assert.ErrorIs(t, err, service.ErrConflict)
	})
}

func TestDashboardCache(t *testing.T) {
	ctx := context.Background()

	t.Run("second read is served from cache until a write", func(t *testing.T) {
		m := testutil.NewMocks()
		c := newMemCache()
		svc := testutil.NewService(m, service.Options{Cache: c})

		m.Products.On("All", mock.Anything, mock.Anything).Return([]*model.Product{
			{SKU: "A", CurrentStock: 1, MinStockLevel: 5, UnitPrice: decimal.NewFromInt(2)},
			{SKU: "B", CurrentStock: 10, MinStockLevel: 5, UnitPrice: decimal.NewFromInt(3)},
		}, nil)
		m.Suppliers.On("All", mock.Anything, mock.Anything).Return([]*model.Supplier{}, nil)
		m.Returns.On("All", mock.Anything, mock.Anything).Return([]*model.Return{}, nil)

		first, err := svc.InventoryDashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.LowStockCount)

		second, err := svc.InventoryDashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.LowStockCount, second.LowStockCount)
		assert.True(t, first.StockValue.Equal(second.StockValue))
		m.Products.AssertNumberOfCalls(t, "All", 1)
		assert.Equal(t, 1, c.Len())

		m.Products.On("Increment", mock.Anything, "prod1", "current_stock", int64(1), "u1").Return(&model.Product{}, nil)
		_, err = svc.AdjustStock(ctx, "u1", "prod1", model.StockAdjustReq{Delta: 1})
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())

		_, err = svc.InventoryDashboard(ctx)
		require.NoError(t, err)
		m.Products.AssertNumberOfCalls(t, "All", 2)
	})

	t.Run("payroll dashboard defaults to the current month", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		m.Salaries.On("All", mock.Anything, model.Filter{"month": "2026-10"}).Return([]*model.SalaryRecord{
			{Month: "2026-10", Allowances: []model.PayItem{{Name: "Base Salary", Amount: decimal.NewFromInt(500)}}},
		}, nil)
		m.Departments.On("All", mock.Anything, mock.Anything).Return([]*model.Department{}, nil)

		d, err := svc.PayrollDashboard(ctx, model.PayrollDashboardReq{})
		require.NoError(t, err)
		assert.Equal(t, "2026-10", d.Month)
		assert.Equal(t, 1, d.Records)
		assert.True(t, d.TotalNetPay.Equal(decimal.NewFromInt(500)))
	})

	t.Run("overview combines counts and lists", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		m.Projects.On("All", mock.Anything, mock.Anything).Return([]*model.Project{{Status: model.ProjectInProgress}, {Status: model.ProjectCompleted}}, nil)
		m.Products.On("All", mock.Anything, mock.Anything).Return([]*model.Product{{CurrentStock: 0, MinStockLevel: 1}}, nil)
		m.Returns.On("All", mock.Anything, mock.Anything).Return([]*model.Return{{}}, nil)
		m.Salaries.On("All", mock.Anything, model.Filter{"month": "2026-10"}).Return([]*model.SalaryRecord{}, nil)
		m.Employees.On("Count", mock.Anything, mock.Anything).Return(int64(12), nil)
		m.Departments.On("Count", mock.Anything, mock.Anything).Return(int64(3), nil)
		m.Customers.On("Count", mock.Anything, mock.Anything).Return(int64(40), nil)
		m.Suppliers.On("Count", mock.Anything, mock.Anything).Return(int64(5), nil)

		d, err := svc.OverviewDashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, d.Projects)
		assert.Equal(t, 1, d.ActiveProjects)
		assert.Equal(t, 1, d.LowStock)
		assert.Equal(t, 1, d.PendingReturns)
		assert.Equal(t, 12, d.Employees)
		assert.Equal(t, 3, d.Departments)
		assert.Equal(t, 40, d.Customers)
		assert.Equal(t, 5, d.Suppliers)
		assert.Equal(t, "2026-10", d.PayrollMonth)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.Customers.On("All", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := svc.CustomerDashboard(ctx)
		assert.EqualError(t, err, "connection reset")
	})
}

func TestUserRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("me lists roles and permissions", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.UserRoles.On("FindUserRoles", mock.Anything, model.UserRoleFilter{UserID: "u1"}).
			Return([]*model.UserRole{{UserID: "u1", Role: model.RoleInventoryManager}}, nil)

		resp, err := svc.GetUserRolesMe(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{model.RoleInventoryManager}, resp.Roles)
		assert.Equal(t, []string{"dashboard.overview", "inventory.*"}, resp.Permissions)
	})

	t.Run("assign role records caller", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.UserRoles.On("UpsertUserRole", mock.Anything, mock.MatchedBy(func(r *model.UserRole) bool {
			return r.UserID == "u2" && r.Role == model.RoleViewer && r.CreatedBy == "admin1"
		})).Return(nil)

		err := svc.AssignUserRole(ctx, "admin1", model.AssignUserRoleReq{UserID: "u2", Role: model.RoleViewer})
		require.NoError(t, err)
		m.UserRoles.AssertExpectations(t)
	})

	t.Run("admin cannot drop own admin role", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		err := svc.DeleteUserRole(ctx, "admin1", model.DeleteUserRoleReq{UserID: "admin1", Role: model.RoleAdmin})
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("deleting a missing assignment is not found", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		m.UserRoles.On("DeleteUserRole", mock.Anything, "u2", model.RoleViewer).Return(repository.ErrNotFound)

		err := svc.DeleteUserRole(ctx, "admin1", model.DeleteUserRoleReq{UserID: "u2", Role: model.RoleViewer})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("bootstrap admin is a no-op without user", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		require.NoError(t, svc.BootstrapAdmin(ctx, ""))
		m.UserRoles.AssertNotCalled(t, "UpsertUserRole", mock.Anything, mock.Anything)
	})
}

func TestUpdateReturn(t *testing.T) {
	ctx := context.Background()
	returned := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	t.Run("update without return date keeps the stored date", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})

		ret := &model.Return{ProductID: "prod1", Quantity: 2, ReturnDate: returned}
		ret.ID = "r1"
		m.Returns.On("Get", mock.Anything, "r1").Return(ret, nil)
		m.Returns.On("Replace", mock.Anything, mock.MatchedBy(func(r *model.Return) bool {
			return r.ReturnDate.Equal(returned) && r.Reason == "damaged"
		})).Return(nil)

		got, err := svc.UpdateReturn(ctx, "u1", "r1", model.ReturnInput{ProductID: "prod1", Quantity: 2, Reason: "damaged"})
		require.NoError(t, err)
		assert.True(t, got.ReturnDate.Equal(returned))
		m.Returns.AssertExpectations(t)
	})

	t.Run("update with return date replaces it", func(t *testing.T) {
		m := testutil.NewMocks()
		svc := testutil.NewService(m, service.Options{})
		moved := returned.AddDate(0, 0, 2)

		ret := &model.Return{ProductID: "prod1", Quantity: 2, ReturnDate: returned}
		ret.ID = "r1"
		m.Returns.On("Get", mock.Anything, "r1").Return(ret, nil)
		m.Returns.On("Replace", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.UpdateReturn(ctx, "u1", "r1", model.ReturnInput{ProductID: "prod1", Quantity: 2, ReturnDate: moved})
		require.NoError(t, err)
		assert.True(t, got.ReturnDate.Equal(moved))
	})
}
