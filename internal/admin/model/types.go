package model

import "time"

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

// Base carries the identity and audit fields shared by every stored document.
// Soft-deleted documents keep DeletedAt and are hidden from reads.
type Base struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}

func (b *Base) Meta() *Base { return b }

// Document is implemented by every entity through the embedded Base.
type Document interface {
	Meta() *Base
}

// ListResp is the paginated envelope returned by list endpoints
type ListResp[T any] struct {
	Data       []*T  `json:"data"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"total_count"`
}

type StatusResp struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}
