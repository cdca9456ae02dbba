package testutil

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"time"

	"bizadmin/internal/admin/handler"
	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
	"bizadmin/internal/admin/router"
	"bizadmin/internal/admin/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

// FixedNow is the clock of services built by NewService.
var FixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// Mocks holds one mock per repository of a repository.Store.
type Mocks struct {
	Projects    *MockCollection[model.Project]
	Employees   *MockCollection[model.Employee]
	Departments *MockCollection[model.Department]
	Customers   *MockCollection[model.Customer]
	Suppliers   *MockCollection[model.Supplier]
	Products    *MockCollection[model.Product]
	Returns     *MockCollection[model.Return]
	Salaries    *MockCollection[model.SalaryRecord]
	Documents   *MockCollection[model.FileDocument]
	UserRoles   *MockUserRoleRepository
	Activity    *MockActivityRepository
}

// NewMocks returns fresh mocks. Activity entries are written in the background,
// so CreateActivity is always allowed.
func NewMocks() *Mocks {
	m := &Mocks{
		Projects:    &MockCollection[model.Project]{CollName: model.CollectionProjects},
		Employees:   &MockCollection[model.Employee]{CollName: model.CollectionEmployees},
		Departments: &MockCollection[model.Department]{CollName: model.CollectionDepartments},
		Customers:   &MockCollection[model.Customer]{CollName: model.CollectionCustomers},
		Suppliers:   &MockCollection[model.Supplier]{CollName: model.CollectionSuppliers},
		Products:    &MockCollection[model.Product]{CollName: model.CollectionProducts},
		Returns:     &MockCollection[model.Return]{CollName: model.CollectionReturns},
		Salaries:    &MockCollection[model.SalaryRecord]{CollName: model.CollectionSalaries},
		Documents:   &MockCollection[model.FileDocument]{CollName: model.CollectionDocuments},
		UserRoles:   new(MockUserRoleRepository),
		Activity:    new(MockActivityRepository),
	}
	m.Activity.On("CreateActivity", mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}

func (m *Mocks) Store() *repository.Store {
	return &repository.Store{
		Projects:    m.Projects,
		Employees:   m.Employees,
		Departments: m.Departments,
		Customers:   m.Customers,
		Suppliers:   m.Suppliers,
		Products:    m.Products,
		Returns:     m.Returns,
		Salaries:    m.Salaries,
		Documents:   m.Documents,
		UserRoles:   m.UserRoles,
		Activity:    m.Activity,
	}
}

// Allow makes the RBAC check pass for userID.
func (m *Mocks) Allow(userID string) {
	m.UserRoles.On("HasAnyRole", mock.Anything, userID, mock.Anything).Return(true, nil)
}

// Deny makes the RBAC check fail for userID.
func (m *Mocks) Deny(userID string) {
	m.UserRoles.On("HasAnyRole", mock.Anything, userID, mock.Anything).Return(false, nil)
}

// NewService builds a service over the mocks with a fixed clock and no cache.
func NewService(m *Mocks, opts service.Options) *service.Service {
	svc := service.NewService(m.Store(), opts)
	svc.Now = func() time.Time { return FixedNow }
	return svc
}

func SetupServer() *echo.Echo {
	e := echo.New()
	return e
}

// SetupServerWithMiddleware returns an echo server with every route and the RBAC
// middleware mounted over the mocks.
func SetupServerWithMiddleware(m *Mocks) *echo.Echo {
	e := SetupServer()
	svc := NewService(m, service.Options{})
	router.RegisterRoutes(e, handler.NewHandler(svc), svc.Policy, m.UserRoles, nil)
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Caller is the header set of a request made by userID.
func Caller(userID string) map[string]string {
	return map[string]string{"x-user-id": userID}
}
