// Package testutil provides testify mocks of the repositories and an echo server
// wired the same way as cmd/server for HTTP tests.
package testutil

import (
	"context"

	"bizadmin/internal/admin/model"

	"github.com/stretchr/testify/mock"
)

// MockCollection is a testify mock of repository.Collection.
type MockCollection[T any] struct {
	mock.Mock
	CollName string
}

func (m *MockCollection[T]) Name() string {
	return m.CollName
}

func (m *MockCollection[T]) List(ctx context.Context, q model.ListQuery) ([]*T, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*T), args.Get(1).(int64), args.Error(2)
}

func (m *MockCollection[T]) All(ctx context.Context, filter model.Filter) ([]*T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *MockCollection[T]) Count(ctx context.Context, filter model.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCollection[T]) Insert(ctx context.Context, doc *T) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockCollection[T]) Replace(ctx context.Context, doc *T) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockCollection[T]) SoftDelete(ctx context.Context, id, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func (m *MockCollection[T]) Increment(ctx context.Context, id, field string, delta int64, updatedBy string) (*T, error) {
	args := m.Called(ctx, id, field, delta, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// MockUserRoleRepository is a testify mock of repository.UserRoleRepository.
type MockUserRoleRepository struct {
	mock.Mock
}

func (m *MockUserRoleRepository) UpsertUserRole(ctx context.Context, role *model.UserRole) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockUserRoleRepository) DeleteUserRole(ctx context.Context, userID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRoleRepository) FindUserRoles(ctx context.Context, filter model.UserRoleFilter) ([]*model.UserRole, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserRole), args.Error(1)
}

func (m *MockUserRoleRepository) HasAnyRole(ctx context.Context, userID string, roles []string) (bool, error) {
	args := m.Called(ctx, userID, roles)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRoleRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockActivityRepository is a testify mock of repository.ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CreateActivity(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) FindActivity(ctx context.Context, req model.GetActivityLogsReq) ([]*model.ActivityLog, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.ActivityLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
