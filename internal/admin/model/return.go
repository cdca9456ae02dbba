package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Return struct {
	Base         `bson:",inline"`
	ProductID    string          `bson:"product_id" json:"product_id"`
	ProductName  string          `bson:"product_name,omitempty" json:"product_name,omitempty"`
	CustomerID   string          `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	Quantity     int64           `bson:"quantity" json:"quantity"`
	Reason       string          `bson:"reason,omitempty" json:"reason,omitempty"`
	Status       string          `bson:"status" json:"status"`
	RefundAmount decimal.Decimal `bson:"refund_amount" json:"refund_amount"`
	Restocked    bool            `bson:"restocked" json:"restocked"`
	ReturnDate   time.Time       `bson:"return_date" json:"return_date"`
}

func (r *Return) StatusOrDefault() string {
	if r.Status == "" {
		return ReturnPending
	}
	return r.Status
}

type ReturnInput struct {
	ProductID    string          `json:"product_id" validate:"required,max=50"`
	ProductName  string          `json:"product_name" validate:"omitempty,max=200"`
	CustomerID   string          `json:"customer_id" validate:"omitempty,max=50"`
	Quantity     int64           `json:"quantity" validate:"required,gt=0"`
	Reason       string          `json:"reason" validate:"omitempty,max=500"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	ReturnDate   time.Time       `json:"return_date"`
}

func (r *ReturnInput) Validate() error {
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	r.Reason = strings.TrimSpace(r.Reason)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.RefundAmount.IsNegative() {
		return badRequest("refund_amount must not be negative")
	}
	return nil
}

// Apply copies the input onto ret. Status and restock state are changed through ReturnStatusReq only.
// A zero return date keeps the stored one.
func (r *ReturnInput) Apply(ret *Return) {
	ret.ProductID = r.ProductID
	ret.ProductName = r.ProductName
	ret.CustomerID = r.CustomerID
	ret.Quantity = r.Quantity
	ret.Reason = r.Reason
	ret.RefundAmount = r.RefundAmount
	if !r.ReturnDate.IsZero() {
		ret.ReturnDate = r.ReturnDate
	}
}

type ReturnStatusReq struct {
	Status  string `json:"status" validate:"required,oneof=pending approved rejected refunded"`
	Restock bool   `json:"restock"`
}

func (r *ReturnStatusReq) Validate() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Restock && r.Status != ReturnApproved && r.Status != ReturnRefunded {
		return badRequest("restock is only allowed when approving or refunding a return")
	}
	return nil
}
