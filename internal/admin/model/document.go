package model

import "strings"

// FileDocument is a stored company document (contract, payslip, certificate, ...).
// Only metadata and a link to the file are kept.
type FileDocument struct {
	Base       `bson:",inline"`
	Title      string   `bson:"title" json:"title"`
	Category   string   `bson:"category,omitempty" json:"category,omitempty"`
	EmployeeID string   `bson:"employee_id,omitempty" json:"employee_id,omitempty"`
	OwnerID    string   `bson:"owner_id,omitempty" json:"owner_id,omitempty"`
	FileURL    string   `bson:"file_url" json:"file_url"`
	FileType   string   `bson:"file_type,omitempty" json:"file_type,omitempty"`
	SizeBytes  int64    `bson:"size_bytes" json:"size_bytes"`
	Tags       []string `bson:"tags,omitempty" json:"tags,omitempty"`
}

type DocumentInput struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Category   string   `json:"category" validate:"omitempty,max=100"`
	EmployeeID string   `json:"employee_id" validate:"omitempty,max=50"`
	FileURL    string   `json:"file_url" validate:"required,url,max=2000"`
	FileType   string   `json:"file_type" validate:"omitempty,max=50"`
	SizeBytes  int64    `json:"size_bytes" validate:"gte=0"`
	Tags       []string `json:"tags" validate:"omitempty,max=50,dive,max=50"`
}

func (r *DocumentInput) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.FileURL = strings.TrimSpace(r.FileURL)
	r.FileType = strings.ToLower(strings.TrimSpace(r.FileType))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// Apply copies the input onto d. OwnerID is set from the caller by the service.
func (r *DocumentInput) Apply(d *FileDocument) {
	d.Title = r.Title
	d.Category = r.Category
	d.EmployeeID = r.EmployeeID
	d.FileURL = r.FileURL
	d.FileType = r.FileType
	d.SizeBytes = r.SizeBytes
	d.Tags = r.Tags
}
