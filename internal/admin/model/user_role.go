package model

import (
	"strings"
	"time"
)

type UserRole struct {
	ID        string    `bson:"_id,omitempty" json:"-"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

type UserRoleFilter struct {
	UserID string
	Role   string
}

type AssignUserRoleReq struct {
	UserID string `json:"user_id" validate:"required,min=1,max=50"`
	Role   string `json:"role" validate:"required,min=1,max=50"`
}

func (r *AssignUserRoleReq) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedRoles[r.Role] {
		return badRequest("invalid role: must be one of [admin, hr_manager, accountant, inventory_manager, sales_manager, viewer]")
	}
	return nil
}

type DeleteUserRoleReq struct {
	UserID string `query:"user_id" validate:"required,min=1,max=50"`
	Role   string `query:"role" validate:"required,min=1,max=50"`
}

func (r *DeleteUserRoleReq) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type GetUserRolesReq struct {
	UserID string `query:"user_id" validate:"omitempty,max=50"`
	Role   string `query:"role" validate:"omitempty,max=50"`
}

func (r *GetUserRolesReq) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type MyRolesResp struct {
	UserID      string   `json:"user_id"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}
