package model

import "strings"

type Supplier struct {
	Base        `bson:",inline"`
	Name        string   `bson:"name" json:"name"`
	ContactName string   `bson:"contact_name,omitempty" json:"contact_name,omitempty"`
	Email       string   `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string   `bson:"address,omitempty" json:"address,omitempty"`
	Categories  []string `bson:"categories,omitempty" json:"categories,omitempty"`
	Rating      float64  `bson:"rating" json:"rating"`
	Status      string   `bson:"status" json:"status"`
}

func (s *Supplier) StatusOrDefault() string {
	if s.Status == "" {
		return StatusActive
	}
	return s.Status
}

type SupplierInput struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	ContactName string   `json:"contact_name" validate:"omitempty,max=200"`
	Email       string   `json:"email" validate:"omitempty,email,max=200"`
	Phone       string   `json:"phone" validate:"omitempty,max=50"`
	Address     string   `json:"address" validate:"omitempty,max=500"`
	Categories  []string `json:"categories" validate:"omitempty,max=50,dive,max=100"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *SupplierInput) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = StatusActive
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

func (r *SupplierInput) Apply(s *Supplier) {
	s.Name = r.Name
	s.ContactName = r.ContactName
	s.Email = r.Email
	s.Phone = r.Phone
	s.Address = r.Address
	s.Categories = r.Categories
	s.Rating = r.Rating
	s.Status = r.Status
}
