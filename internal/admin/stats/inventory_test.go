package stats

import (
	"testing"

	"bizadmin/internal/admin/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func product(sku string, stock, min int64) *model.Product {
	return &model.Product{SKU: sku, CurrentStock: stock, MinStockLevel: min}
}

func TestLowStock(t *testing.T) {
	t.Run("returns exactly the products at or below the minimum", func(t *testing.T) {
		products := []*model.Product{
			product("A", 10, 5),
			product("B", 5, 5),
			product("C", 0, 1),
			product("D", 6, 5),
			product("E", 2, 3),
		}

		low := LowStock(products)
		assert.Len(t, low, 3)
		assert.Equal(t, "B", low[0].SKU)
		assert.Equal(t, "C", low[1].SKU)
		assert.Equal(t, "E", low[2].SKU)
	})

	t.Run("zero minimum with zero stock is low", func(t *testing.T) {
		low := LowStock([]*model.Product{product("A", 0, 0)})
		assert.Len(t, low, 1)
	})

	t.Run("empty input returns empty slice", func(t *testing.T) {
		low := LowStock(nil)
		assert.NotNil(t, low)
		assert.Empty(t, low)
	})
}

func TestInventory(t *testing.T) {
	products := []*model.Product{
		{SKU: "A", Category: "tools", CurrentStock: 10, MinStockLevel: 2, CostPrice: decimal.NewFromFloat(1.5)},
		{SKU: "B", Category: "tools", CurrentStock: 0, MinStockLevel: 2, UnitPrice: decimal.NewFromInt(4)},
		{SKU: "C", CurrentStock: 3, MinStockLevel: 1, UnitPrice: decimal.NewFromInt(2)},
	}
	suppliers := []*model.Supplier{{Name: "s1"}, {Name: "s2", Status: model.StatusInactive}}
	returns := []*model.Return{
		{Quantity: 2},
		{Quantity: 1, Status: model.ReturnRefunded, RefundAmount: decimal.NewFromInt(7)},
		{Quantity: 9, Status: model.ReturnRejected, RefundAmount: decimal.NewFromInt(100)},
	}

	d := Inventory(products, suppliers, returns)

	assert.Equal(t, 3, d.TotalProducts)
	assert.Equal(t, int64(13), d.TotalUnits)
	assert.True(t, decimal.NewFromInt(21).Equal(d.StockValue), d.StockValue.String())
	assert.Equal(t, 1, d.LowStockCount)
	assert.Equal(t, 1, d.OutOfStockCount)
	assert.Equal(t, []model.CountByKey{{Key: "tools", Count: 2}, {Key: "uncategorized", Count: 1}}, d.Categories)
	assert.Equal(t, 2, d.Suppliers)
	assert.Equal(t, 1, d.ActiveSuppliers)
	assert.Equal(t, 1, d.PendingReturns)
	assert.Equal(t, int64(3), d.ReturnedUnits)
	assert.True(t, decimal.NewFromInt(7).Equal(d.RefundTotal))
}
