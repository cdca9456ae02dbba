package handler_test

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
	"bizadmin/internal/admin/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdjustStockAPI(t *testing.T) {
	apiPath := "/api/v1/products/prod1/stock"

	t.Run("adjust stock success and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")
		m.Products.On("Increment", mock.Anything, "prod1", "current_stock", int64(-2), "inv_1").
			Return(&model.Product{SKU: "A-1", CurrentStock: 8, MinStockLevel: 3}, nil)

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, map[string]any{"delta": -2, "reason": "damaged"}, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusOK, rec.Code)

		var p model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, int64(8), p.CurrentStock)
	})

	t.Run("adjust stock below zero and return 409", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")
		m.Products.On("Increment", mock.Anything, "prod1", "current_stock", int64(-50), "inv_1").Return(nil, repository.ErrConstraint)

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, map[string]any{"delta": -50}, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "insufficient_stock", resp.Error.Code)
	})

	t.Run("adjust stock zero delta and return 400", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, map[string]any{"delta": 0}, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("adjust stock out of range delta and return 400", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")

		for _, delta := range []int64{math.MinInt64, -1_000_000_001, 1_000_000_001} {
			rec := testutil.PerformRequest(e, http.MethodPost, apiPath, map[string]any{"delta": delta}, testutil.Caller("inv_1"))
			assert.Equal(t, http.StatusBadRequest, rec.Code, "delta %d", delta)
		}
		m.Products.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("adjust stock malformed body and return 400", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")

		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, map[string]any{"delta": "many"}, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductsAPI(t *testing.T) {
	apiPath := "/api/v1/products"

	t.Run("list low stock products with search and sort and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")
		m.Products.On("List", mock.Anything, mock.MatchedBy(func(q model.ListQuery) bool {
			_, lowStock := q.Filter["$expr"]
			return lowStock && q.Filter["category"] == "tools" &&
				q.Search == "widget" && q.SortField == "current_stock" && q.SortDesc
		})).Return([]*model.Product{
			{SKU: "C", Name: "Widget XL", CurrentStock: 2, MinStockLevel: 4},
			{SKU: "A", Name: "Widget", CurrentStock: 0, MinStockLevel: 1},
		}, int64(2), nil)

		rec := testutil.PerformRequest(e, http.MethodGet, apiPath+"?low_stock=true&category=tools&q=widget&sort=-current_stock", nil, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp model.ListResp[model.Product]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.TotalCount)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "C", resp.Data[0].SKU)
		m.Products.AssertExpectations(t)
	})

	t.Run("create product duplicate sku and return 409", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")
		m.Products.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
			return p.SKU == "A-1" && p.Status == model.StatusActive
		})).Return(repository.ErrDuplicate)

		body := map[string]any{"sku": " a-1 ", "name": "Bolt", "current_stock": 5, "min_stock_level": 1}
		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, body, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		m.Products.AssertExpectations(t)
	})

	t.Run("create product negative stock and return 400", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")

		body := map[string]any{"sku": "A-1", "name": "Bolt", "current_stock": -1}
		rec := testutil.PerformRequest(e, http.MethodPost, apiPath, body, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update product success and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")
		existing := &model.Product{SKU: "A-1", Name: "Bolt"}
		existing.ID = "prod1"
		existing.CreatedBy = "someone"
		m.Products.On("Get", mock.Anything, "prod1").Return(existing, nil)
		m.Products.On("Replace", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
			return p.ID == "prod1" && p.Name == "Hex bolt" && p.CreatedBy == "someone" && p.UpdatedBy == "inv_1"
		})).Return(nil)

		body := map[string]any{"sku": "A-1", "name": "Hex bolt", "current_stock": 5, "min_stock_level": 1}
		rec := testutil.PerformRequest(e, http.MethodPut, apiPath+"/prod1", body, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusOK, rec.Code)
		m.Products.AssertExpectations(t)
	})
}

func TestReturnStatusAPI(t *testing.T) {
	apiPath := "/api/v1/returns/r1/status"

	t.Run("approve with restock success and return 200", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")
		m.Returns.On("Get", mock.Anything, "r1").Return(&model.Return{ProductID: "prod1", Quantity: 4}, nil)
		m.Products.On("Increment", mock.Anything, "prod1", "current_stock", int64(4), "inv_1").Return(&model.Product{}, nil)
		m.Returns.On("Replace", mock.Anything, mock.Anything).Return(nil)

		rec := testutil.PerformRequest(e, http.MethodPut, apiPath, map[string]any{"status": "approved", "restock": true}, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusOK, rec.Code)

		var ret model.Return
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ret))
		assert.True(t, ret.Restocked)
		assert.Equal(t, model.ReturnApproved, ret.Status)
	})

	t.Run("reject with restock and return 400", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")

		rec := testutil.PerformRequest(e, http.MethodPut, apiPath, map[string]any{"status": "rejected", "restock": true}, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.Returns.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("unknown status and return 400", func(t *testing.T) {
		m := testutil.NewMocks()
		e := testutil.SetupServerWithMiddleware(m)
		m.Allow("inv_1")

		rec := testutil.PerformRequest(e, http.MethodPut, apiPath, map[string]any{"status": "lost"}, testutil.Caller("inv_1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
