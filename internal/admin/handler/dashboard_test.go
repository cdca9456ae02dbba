package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"bizadmin/internal/admin/export"
	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardsAPI(t *testing.T) {
	t.Run("overview counts every area and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("viewer_1")
		m.Projects.On("All", mock.Anything, mock.Anything).Return([]*model.Project{{Status: model.ProjectInProgress}, {Status: model.ProjectCompleted}}, nil)
		m.Products.On("All", mock.Anything, mock.Anything).Return([]*model.Product{{CurrentStock: 1, MinStockLevel: 5}}, nil)
		m.Returns.On("All", mock.Anything, mock.Anything).Return([]*model.Return{{}}, nil)
		m.Salaries.On("All", mock.Anything, model.Filter{"month": "2026-10"}).Return([]*model.SalaryRecord{}, nil)
		m.Employees.On("Count", mock.Anything, mock.Anything).Return(int64(12), nil)
		m.Departments.On("Count", mock.Anything, mock.Anything).Return(int64(3), nil)
		m.Customers.On("Count", mock.Anything, mock.Anything).Return(int64(7), nil)
		m.Suppliers.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/dashboards/overview", nil, testutil.Caller("viewer_1"))
		assert.Equal(t, http.StatusOK, rec.Code)

		var d model.OverviewDashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.Equal(t, 2, d.Projects)
		assert.Equal(t, 1, d.ActiveProjects)
		assert.Equal(t, 12, d.Employees)
		assert.Equal(t, 1, d.LowStock)
		assert.Equal(t, 1, d.PendingReturns)
		assert.Equal(t, "2026-10", d.PayrollMonth)
	})

	t.Run("inventory dashboard low stock count and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")

		products := make([]*model.Product, 0, 5)
		for i := int64(0); i < 5; i++ {
			// stock 0..4 against a minimum of 2: three products at or below it
			products = append(products, &model.Product{SKU: string(rune('A' + i)), CurrentStock: i, MinStockLevel: 2})
		}
		m.Products.On("All", mock.Anything, mock.Anything).Return(products, nil)
		m.Suppliers.On("All", mock.Anything, mock.Anything).Return([]*model.Supplier{{Name: "Acme"}}, nil)
		m.Returns.On("All", mock.Anything, mock.Anything).Return([]*model.Return{}, nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/dashboards/inventory", nil, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusOK, rec.Code)

		var d model.InventoryDashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.Equal(t, 5, d.TotalProducts)
		assert.Equal(t, 3, d.LowStockCount)
		assert.Len(t, d.LowStock, 3)
		assert.Equal(t, 1, d.OutOfStockCount)
	})

	t.Run("projects dashboard groups by month and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("sales_1")
		m.Projects.On("All", mock.Anything, mock.Anything).Return([]*model.Project{
			{Name: "A", Budget: decimal.NewFromInt(100), StartDate: testutil.FixedNow},
			{Name: "B", Budget: decimal.NewFromInt(50), StartDate: testutil.FixedNow},
		}, nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/dashboards/projects", nil, testutil.Caller("sales_1"))
		assert.Equal(t, http.StatusOK, rec.Code)

		var d model.ProjectDashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		require.Len(t, d.Monthly, 1)
		assert.Equal(t, "2026-10", d.Monthly[0].Month)
		assert.Equal(t, 2, d.Monthly[0].Count)
		assert.True(t, d.Monthly[0].Budget.Equal(decimal.NewFromInt(150)))
	})

	t.Run("payroll dashboard invalid month and return 400", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("acc_1")

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/dashboards/payroll?month=2026-1", nil, testutil.Caller("acc_1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("hr dashboard forbidden and return 403", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Deny("inv_1")

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/dashboards/hr", nil, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("export inventory workbook and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")
		m.Products.On("All", mock.Anything, mock.Anything).Return([]*model.Product{{SKU: "A", Name: "Bolt"}}, nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/exports/inventory", nil, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "inventory-2026-10-15.xlsx")
		assert.NotZero(t, rec.Body.Len())
	})

	t.Run("export payroll for month and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("acc_1")
		m.Salaries.On("All", mock.Anything, model.Filter{"month": "2026-08"}).Return([]*model.SalaryRecord{}, nil)

		rec := testutil.PerformRequest(e, http.MethodGet, "/api/v1/exports/payroll?month=2026-08", nil, testutil.Caller("acc_1"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "payroll-2026-08.xlsx")
	})
}
