package model

import (
	"strings"
	"time"
)

// ActivityLog is an append-only audit record of a write made through the console.
type ActivityLog struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Operation  string    `bson:"operation" json:"operation"`
	Collection string    `bson:"collection" json:"collection"`
	DocumentID string    `bson:"document_id,omitempty" json:"document_id,omitempty"`
	CallerID   string    `bson:"caller_id" json:"caller_id"`
	Summary    string    `bson:"summary,omitempty" json:"summary,omitempty"`
	RequestID  string    `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

type GetActivityLogsReq struct {
	Collection string     `query:"collection" validate:"omitempty,max=50"`
	DocumentID string     `query:"document_id" validate:"omitempty,max=50"`
	CallerID   string     `query:"caller_id" validate:"omitempty,max=50"`
	StartTime  *time.Time `query:"start_time"`
	EndTime    *time.Time `query:"end_time"`

	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=1000"`
}

func (r *GetActivityLogsReq) Validate() error {
	r.Collection = strings.TrimSpace(r.Collection)
	r.DocumentID = strings.TrimSpace(r.DocumentID)
	r.CallerID = strings.TrimSpace(r.CallerID)

	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = 100
	}
	if r.Size > 1000 {
		r.Size = 1000
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.StartTime != nil && r.EndTime != nil && r.EndTime.Before(*r.StartTime) {
		return badRequest("end_time must not be before start_time")
	}
	return nil
}

type GetActivityLogsResp struct {
	Data       []*ActivityLog `json:"data"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalCount int64          `json:"total_count"`
}
