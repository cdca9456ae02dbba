package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Department struct {
	Base        `bson:",inline"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	HeadID      string          `bson:"head_id,omitempty" json:"head_id,omitempty"`
	Budget      decimal.Decimal `bson:"budget" json:"budget"`
}

type DepartmentInput struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"omitempty,max=1000"`
	HeadID      string          `json:"head_id" validate:"omitempty,max=50"`
	Budget      decimal.Decimal `json:"budget"`
}

func (r *DepartmentInput) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.HeadID = strings.TrimSpace(r.HeadID)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Budget.IsNegative() {
		return badRequest("budget must not be negative")
	}
	return nil
}

func (r *DepartmentInput) Apply(d *Department) {
	d.Name = r.Name
	d.Description = r.Description
	d.HeadID = r.HeadID
	d.Budget = r.Budget
}
