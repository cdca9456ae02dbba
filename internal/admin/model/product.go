package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	Base          `bson:",inline"`
	SKU           string          `bson:"sku" json:"sku"`
	Name          string          `bson:"name" json:"name"`
	Category      string          `bson:"category,omitempty" json:"category,omitempty"`
	SupplierID    string          `bson:"supplier_id,omitempty" json:"supplier_id,omitempty"`
	Unit          string          `bson:"unit,omitempty" json:"unit,omitempty"`
	UnitPrice     decimal.Decimal `bson:"unit_price" json:"unit_price"`
	CostPrice     decimal.Decimal `bson:"cost_price" json:"cost_price"`
	CurrentStock  int64           `bson:"current_stock" json:"current_stock"`
	MinStockLevel int64           `bson:"min_stock_level" json:"min_stock_level"`
	Status        string          `bson:"status" json:"status"`
}

// IsLowStock reports whether the product is at or below its minimum stock level.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStockLevel
}

// StockValue is current stock valued at cost, falling back to unit price when no cost is recorded.
func (p *Product) StockValue() decimal.Decimal {
	price := p.CostPrice
	if price.IsZero() {
		price = p.UnitPrice
	}
	if p.CurrentStock <= 0 {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(p.CurrentStock))
}

func (p *Product) CategoryOrDefault() string {
	if p.Category == "" {
		return "uncategorized"
	}
	return p.Category
}

type ProductInput struct {
	SKU           string          `json:"sku" validate:"required,min=1,max=64"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	SupplierID    string          `json:"supplier_id" validate:"omitempty,max=50"`
	Unit          string          `json:"unit" validate:"omitempty,max=20"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	CurrentStock  int64           `json:"current_stock" validate:"gte=0"`
	MinStockLevel int64           `json:"min_stock_level" validate:"gte=0"`
	Status        string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *ProductInput) Validate() error {
	r.SKU = strings.ToUpper(strings.TrimSpace(r.SKU))
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = StatusActive
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.UnitPrice.IsNegative() || r.CostPrice.IsNegative() {
		return badRequest("prices must not be negative")
	}
	return nil
}

func (r *ProductInput) Apply(p *Product) {
	p.SKU = r.SKU
	p.Name = r.Name
	p.Category = r.Category
	p.SupplierID = r.SupplierID
	p.Unit = r.Unit
	p.UnitPrice = r.UnitPrice
	p.CostPrice = r.CostPrice
	p.CurrentStock = r.CurrentStock
	p.MinStockLevel = r.MinStockLevel
	p.Status = r.Status
}

type StockAdjustReq struct {
	Delta  int64  `json:"delta" validate:"required,min=-1000000000,max=1000000000"`
	Reason string `json:"reason" validate:"omitempty,max=200"`
}

func (r *StockAdjustReq) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
