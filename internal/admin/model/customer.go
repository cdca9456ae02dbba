package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Customer struct {
	Base           `bson:",inline"`
	Name           string          `bson:"name" json:"name"`
	Company        string          `bson:"company,omitempty" json:"company,omitempty"`
	Email          string          `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string          `bson:"address,omitempty" json:"address,omitempty"`
	Status         string          `bson:"status" json:"status"`
	TotalPurchases decimal.Decimal `bson:"total_purchases" json:"total_purchases"`
}

func (c *Customer) StatusOrDefault() string {
	if c.Status == "" {
		return CustomerActive
	}
	return c.Status
}

type CustomerInput struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Company        string          `json:"company" validate:"omitempty,max=200"`
	Email          string          `json:"email" validate:"omitempty,email,max=200"`
	Phone          string          `json:"phone" validate:"omitempty,max=50"`
	Address        string          `json:"address" validate:"omitempty,max=500"`
	Status         string          `json:"status" validate:"omitempty,oneof=lead active inactive"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
}

func (r *CustomerInput) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = CustomerActive
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.TotalPurchases.IsNegative() {
		return badRequest("total_purchases must not be negative")
	}
	return nil
}

func (r *CustomerInput) Apply(c *Customer) {
	c.Name = r.Name
	c.Company = r.Company
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.Status = r.Status
	c.TotalPurchases = r.TotalPurchases
}
