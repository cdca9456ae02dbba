package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
)

// ErrInsufficientStock is returned when a stock adjustment would take stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

const stockField = "current_stock"

var supplierList = listSpec{
	searchFields: []string{"name", "contact_name", "email", "categories"},
	sortFields:   []string{"name", "rating", "created_at"},
	filter: func(req model.ListReq) model.Filter {
		return eq("status", req.Status, "categories", req.Category)
	},
}

var productList = listSpec{
	searchFields: []string{"name", "sku"},
	sortFields:   []string{"name", "sku", "category", "unit_price", "current_stock", "created_at"},
	filter: func(req model.ListReq) model.Filter {
		f := eq("status", req.Status, "category", req.Category, "supplier_id", req.SupplierID)
		if req.LowStock {
			// compares two fields of the same document
			f["$expr"] = repository.FieldsAtMost(stockField, "min_stock_level")
		}
		return f
	},
}

var returnList = listSpec{
	searchFields: []string{"product_name", "reason"},
	sortFields:   []string{"return_date", "quantity", "refund_amount", "status", "created_at"},
	filter: func(req model.ListReq) model.Filter {
		return eq("status", req.Status, "product_id", req.ProductID, "customer_id", req.CustomerID)
	},
}

func (s *Service) ListSuppliers(ctx context.Context, req model.ListReq) (*model.ListResp[model.Supplier], error) {
	return list(ctx, s.Store.Suppliers, supplierList, req)
}

func (s *Service) GetSupplier(ctx context.Context, id string) (*model.Supplier, error) {
	return get(ctx, s.Store.Suppliers, id)
}

func (s *Service) CreateSupplier(ctx context.Context, callerID string, req model.SupplierInput) (*model.Supplier, error) {
	sup := &model.Supplier{}
	req.Apply(sup)
	return create(ctx, s, s.Store.Suppliers, callerID, sup, sup.Name)
}

func (s *Service) UpdateSupplier(ctx context.Context, callerID, id string, req model.SupplierInput) (*model.Supplier, error) {
	return update(ctx, s, s.Store.Suppliers, callerID, id, model.OpUpdate, func(sup *model.Supplier) (string, error) {
		req.Apply(sup)
		return sup.Name, nil
	})
}

func (s *Service) DeleteSupplier(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Suppliers, callerID, id)
}

func (s *Service) ListProducts(ctx context.Context, req model.ListReq) (*model.ListResp[model.Product], error) {
	return list(ctx, s.Store.Products, productList, req)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return get(ctx, s.Store.Products, id)
}

func (s *Service) CreateProduct(ctx context.Context, callerID string, req model.ProductInput) (*model.Product, error) {
	p := &model.Product{}
	req.Apply(p)
	return create(ctx, s, s.Store.Products, callerID, p, p.SKU)
}

func (s *Service) UpdateProduct(ctx context.Context, callerID, id string, req model.ProductInput) (*model.Product, error) {
	return update(ctx, s, s.Store.Products, callerID, id, model.OpUpdate, func(p *model.Product) (string, error) {
		req.Apply(p)
		return p.SKU, nil
	})
}

func (s *Service) DeleteProduct(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Products, callerID, id)
}

// AdjustStock adds delta (negative to remove) to the product stock. Stock never goes below zero.
func (s *Service) AdjustStock(ctx context.Context, callerID, id string, req model.StockAdjustReq) (*model.Product, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	p, err := s.Store.Products.Increment(ctx, id, stockField, req.Delta, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return nil, ErrInsufficientStock
		}
		return nil, mapRepoErr(err)
	}

	summary := fmt.Sprintf("%+d", req.Delta)
	if req.Reason != "" {
		summary += " (" + req.Reason + ")"
	}
	s.afterWrite(ctx, model.OpAdjustStock, s.Store.Products.Name(), id, callerID, summary)
	if p.IsLowStock() {
		slog.Info("product at or below minimum stock level", "product_id", id, "sku", p.SKU, "current_stock", p.CurrentStock, "min_stock_level", p.MinStockLevel)
	}
	return p, nil
}

func (s *Service) ListReturns(ctx context.Context, req model.ListReq) (*model.ListResp[model.Return], error) {
	return list(ctx, s.Store.Returns, returnList, req)
}

func (s *Service) GetReturn(ctx context.Context, id string) (*model.Return, error) {
	return get(ctx, s.Store.Returns, id)
}

func (s *Service) CreateReturn(ctx context.Context, callerID string, req model.ReturnInput) (*model.Return, error) {
	ret := &model.Return{Status: model.ReturnPending}
	req.Apply(ret)
	if ret.ReturnDate.IsZero() {
		ret.ReturnDate = s.Now()
	}
	if ret.ProductName == "" {
		if p, err := s.Store.Products.Get(ctx, ret.ProductID); err == nil {
			ret.ProductName = p.Name
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return create(ctx, s, s.Store.Returns, callerID, ret, fmt.Sprintf("%d x %s", ret.Quantity, ret.ProductID))
}

func (s *Service) UpdateReturn(ctx context.Context, callerID, id string, req model.ReturnInput) (*model.Return, error) {
	return update(ctx, s, s.Store.Returns, callerID, id, model.OpUpdate, func(ret *model.Return) (string, error) {
		if ret.Restocked && (req.Quantity != ret.Quantity || req.ProductID != ret.ProductID) {
			return "", &model.ErrorDetail{Code: "bad_request", Message: "product and quantity of a restocked return cannot change"}
		}
		req.Apply(ret)
		return fmt.Sprintf("%d x %s", ret.Quantity, ret.ProductID), nil
	})
}

func (s *Service) DeleteReturn(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Returns, callerID, id)
}

// SetReturnStatus moves a return to a new status. With restock the returned quantity is
// added back to the product, at most once per return.
func (s *Service) SetReturnStatus(ctx context.Context, callerID, id string, req model.ReturnStatusReq) (*model.Return, error) {
	return update(ctx, s, s.Store.Returns, callerID, id, model.OpReturnStatus, func(ret *model.Return) (string, error) {
		summary := ret.StatusOrDefault() + " -> " + req.Status
		if req.Restock && !ret.Restocked {
			if _, err := s.Store.Products.Increment(ctx, ret.ProductID, stockField, ret.Quantity, callerID); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return "", &model.ErrorDetail{Code: "bad_request", Message: "product of the return does not exist"}
				}
				return "", err
			}
			ret.Restocked = true
			summary += fmt.Sprintf(", restocked %d", ret.Quantity)
		}
		ret.Status = req.Status
		return summary, nil
	})
}
