package stats

import (
	"sort"

	"bizadmin/internal/admin/model"

	"github.com/shopspring/decimal"
)

// LowStock returns the products whose current stock is at or below their minimum level,
// in input order.
func LowStock(products []*model.Product) []*model.Product {
	out := make([]*model.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// OutOfStock returns the products with no stock left.
func OutOfStock(products []*model.Product) []*model.Product {
	out := make([]*model.Product, 0)
	for _, p := range products {
		if p.CurrentStock <= 0 {
			out = append(out, p)
		}
	}
	return out
}

func Inventory(products []*model.Product, suppliers []*model.Supplier, returns []*model.Return) model.InventoryDashboard {
	d := model.InventoryDashboard{
		TotalProducts: len(products),
		StockValue:    decimal.Zero,
		RefundTotal:   decimal.Zero,
		Suppliers:     len(suppliers),
	}

	for _, p := range products {
		if p.CurrentStock > 0 {
			d.TotalUnits += p.CurrentStock
		}
		d.StockValue = d.StockValue.Add(p.StockValue())
	}

	d.LowStock = LowStock(products)
	d.LowStockCount = len(d.LowStock)
	d.OutOfStockCount = len(OutOfStock(products))

	d.Categories = countBy(products, func(p *model.Product) string { return p.CategoryOrDefault() })
	sort.SliceStable(d.Categories, func(i, j int) bool { return d.Categories[i].Count > d.Categories[j].Count })

	for _, s := range suppliers {
		if s.StatusOrDefault() == model.StatusActive {
			d.ActiveSuppliers++
		}
	}

	for _, r := range returns {
		switch r.StatusOrDefault() {
		case model.ReturnPending:
			d.PendingReturns++
		case model.ReturnRejected:
			continue
		}
		d.ReturnedUnits += r.Quantity
		if r.StatusOrDefault() == model.ReturnRefunded {
			d.RefundTotal = d.RefundTotal.Add(r.RefundAmount)
		}
	}

	return d
}
