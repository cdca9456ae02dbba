package repository

import (
	"context"
	"errors"

	"bizadmin/internal/admin/model"
)

var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
	// ErrConstraint is returned when a guarded update would break an invariant (e.g. negative stock)
	ErrConstraint = errors.New("constraint violated")
)

// Collection is a schema-less collection of one entity type.
// Soft-deleted documents are invisible to every read.
type Collection[T any] interface {
	// Name of the underlying collection
	Name() string
	// One page of documents matching the query plus the total match count
	List(ctx context.Context, q model.ListQuery) ([]*T, int64, error)
	// Every document matching the filter (used by dashboards)
	All(ctx context.Context, filter model.Filter) ([]*T, error)
	Count(ctx context.Context, filter model.Filter) (int64, error)
	Get(ctx context.Context, id string) (*T, error)
	// Insert assigns an id when missing and stamps created/updated times
	Insert(ctx context.Context, doc *T) error
	// Replace overwrites the stored document with the same id
	Replace(ctx context.Context, doc *T) error
	SoftDelete(ctx context.Context, id, deletedBy string) error
	// Increment adds delta to an integer field, refusing to take it below zero
	Increment(ctx context.Context, id, field string, delta int64, updatedBy string) (*T, error)
}

type UserRoleRepository interface {
	// Create the role assignment if it does not exist yet
	UpsertUserRole(ctx context.Context, role *model.UserRole) error
	DeleteUserRole(ctx context.Context, userID, role string) error
	FindUserRoles(ctx context.Context, filter model.UserRoleFilter) ([]*model.UserRole, error)
	// Check if user has ANY of the specified roles
	HasAnyRole(ctx context.Context, userID string, roles []string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

// ActivityRepository stores the append-only activity log
type ActivityRepository interface {
	CreateActivity(ctx context.Context, entry *model.ActivityLog) error
	FindActivity(ctx context.Context, req model.GetActivityLogsReq) ([]*model.ActivityLog, int64, error)
	EnsureIndexes(ctx context.Context) error
}

// Store groups every repository the console uses.
type Store struct {
	Projects    Collection[model.Project]
	Employees   Collection[model.Employee]
	Departments Collection[model.Department]
	Customers   Collection[model.Customer]
	Suppliers   Collection[model.Supplier]
	Products    Collection[model.Product]
	Returns     Collection[model.Return]
	Salaries    Collection[model.SalaryRecord]
	Documents   Collection[model.FileDocument]
	UserRoles   UserRoleRepository
	Activity    ActivityRepository
}
