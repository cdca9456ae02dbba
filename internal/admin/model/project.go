package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	Base         `bson:",inline"`
	Name         string          `bson:"name" json:"name"`
	Description  string          `bson:"description,omitempty" json:"description,omitempty"`
	CustomerID   string          `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	CustomerName string          `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	Manager      string          `bson:"manager,omitempty" json:"manager,omitempty"`
	Status       string          `bson:"status" json:"status"`
	Budget       decimal.Decimal `bson:"budget" json:"budget"`
	Spent        decimal.Decimal `bson:"spent" json:"spent"`
	StartDate    time.Time       `bson:"start_date" json:"start_date"`
	EndDate      *time.Time      `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Deadline     *time.Time      `bson:"deadline,omitempty" json:"deadline,omitempty"`
	TeamMembers  []string        `bson:"team_members,omitempty" json:"team_members,omitempty"`
	Tags         []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	Milestones   []Milestone     `bson:"milestones,omitempty" json:"milestones,omitempty"`
}

type Milestone struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	DueDate     time.Time  `bson:"due_date" json:"due_date"`
	Completed   bool       `bson:"completed" json:"completed"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// StatusOrDefault returns the stored status, planned when missing.
func (p *Project) StatusOrDefault() string {
	if p.Status == "" {
		return ProjectPlanned
	}
	return p.Status
}

// MonthKey is the month a project is bucketed under: its start date, else its creation date.
func (p *Project) MonthKey() string {
	if !p.StartDate.IsZero() {
		return p.StartDate.Format(MonthLayout)
	}
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt.Format(MonthLayout)
	}
	return ""
}

type ProjectInput struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description" validate:"omitempty,max=2000"`
	CustomerID   string          `json:"customer_id" validate:"omitempty,max=50"`
	CustomerName string          `json:"customer_name" validate:"omitempty,max=200"`
	Manager      string          `json:"manager" validate:"omitempty,max=100"`
	Status       string          `json:"status" validate:"omitempty,oneof=planned in_progress on_hold completed cancelled"`
	Budget       decimal.Decimal `json:"budget"`
	Spent        decimal.Decimal `json:"spent"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
	Deadline     *time.Time      `json:"deadline"`
	TeamMembers  []string        `json:"team_members" validate:"omitempty,max=100,dive,max=100"`
	Tags         []string        `json:"tags" validate:"omitempty,max=50,dive,max=50"`
}

func (r *ProjectInput) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	r.Manager = strings.TrimSpace(r.Manager)
	if r.Status == "" {
		r.Status = ProjectPlanned
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Budget.IsNegative() || r.Spent.IsNegative() {
		return badRequest("budget and spent must not be negative")
	}
	if r.EndDate != nil && !r.StartDate.IsZero() && r.EndDate.Before(r.StartDate) {
		return badRequest("end_date must not be before start_date")
	}
	return nil
}

// Apply copies the input onto p, leaving identity, audit fields and milestones untouched.
func (r *ProjectInput) Apply(p *Project) {
	p.Name = r.Name
	p.Description = r.Description
	p.CustomerID = r.CustomerID
	p.CustomerName = r.CustomerName
	p.Manager = r.Manager
	p.Status = r.Status
	p.Budget = r.Budget
	p.Spent = r.Spent
	p.StartDate = r.StartDate
	p.EndDate = r.EndDate
	p.Deadline = r.Deadline
	p.TeamMembers = r.TeamMembers
	p.Tags = r.Tags
}

type MilestoneInput struct {
	Title   string    `json:"title" validate:"required,min=1,max=200"`
	DueDate time.Time `json:"due_date" validate:"required"`
}

func (r *MilestoneInput) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type MilestoneUpdateReq struct {
	Completed bool `json:"completed"`
}
