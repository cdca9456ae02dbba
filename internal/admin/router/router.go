package router

import (
	"bizadmin/internal/admin/handler"
	"bizadmin/internal/admin/metrics"
	"bizadmin/internal/admin/policy"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes mounts the console API on e. m may be nil when metrics are disabled.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, policyEngine *policy.Engine, repo policy.RoleChecker, m *metrics.Metrics) {
	// Enable CORS for the browser dashboard
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID, "x-user-id"},
		ExposeHeaders: []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
	}))

	if m != nil {
		e.Use(m.Middleware())
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	rbacMiddleware := handler.NewRBACMiddleware(policyEngine, repo)
	v1.Use(rbacMiddleware.Middleware())

	// Sales
	v1.GET("/projects", h.ListProjects)
	v1.GET("/projects/:id", h.GetProject)
	v1.POST("/projects", h.CreateProject)
	v1.PUT("/projects/:id", h.UpdateProject)
	v1.DELETE("/projects/:id", h.DeleteProject)
	v1.POST("/projects/:id/milestones", h.AddMilestone)
	v1.PUT("/projects/:id/milestones/:milestoneId", h.UpdateMilestone)

	v1.GET("/customers", h.ListCustomers)
	v1.GET("/customers/:id", h.GetCustomer)
	v1.POST("/customers", h.CreateCustomer)
	v1.PUT("/customers/:id", h.UpdateCustomer)
	v1.DELETE("/customers/:id", h.DeleteCustomer)

	// HR
	v1.GET("/employees", h.ListEmployees)
	v1.GET("/employees/:id", h.GetEmployee)
	v1.POST("/employees", h.CreateEmployee)
	v1.PUT("/employees/:id", h.UpdateEmployee)
	v1.DELETE("/employees/:id", h.DeleteEmployee)

	v1.GET("/departments", h.ListDepartments)
	v1.GET("/departments/:id", h.GetDepartment)
	v1.POST("/departments", h.CreateDepartment)
	v1.PUT("/departments/:id", h.UpdateDepartment)
	v1.DELETE("/departments/:id", h.DeleteDepartment)

	v1.GET("/documents", h.ListDocuments)
	v1.GET("/documents/:id", h.GetDocument)
	v1.POST("/documents", h.CreateDocument)
	v1.PUT("/documents/:id", h.UpdateDocument)
	v1.DELETE("/documents/:id", h.DeleteDocument)

	// Inventory
	v1.GET("/suppliers", h.ListSuppliers)
	v1.GET("/suppliers/:id", h.GetSupplier)
	v1.POST("/suppliers", h.CreateSupplier)
	v1.PUT("/suppliers/:id", h.UpdateSupplier)
	v1.DELETE("/suppliers/:id", h.DeleteSupplier)

	v1.GET("/products", h.ListProducts)
	v1.GET("/products/:id", h.GetProduct)
	v1.POST("/products", h.CreateProduct)
	v1.PUT("/products/:id", h.UpdateProduct)
	v1.DELETE("/products/:id", h.DeleteProduct)
	v1.POST("/products/:id/stock", h.AdjustStock)

	v1.GET("/returns", h.ListReturns)
	v1.GET("/returns/:id", h.GetReturn)
	v1.POST("/returns", h.CreateReturn)
	v1.PUT("/returns/:id", h.UpdateReturn)
	v1.DELETE("/returns/:id", h.DeleteReturn)
	v1.PUT("/returns/:id/status", h.SetReturnStatus)

	// Payroll
	v1.GET("/salaries", h.ListSalaries)
	v1.GET("/salaries/:id", h.GetSalary)
	v1.POST("/salaries", h.CreateSalary)
	v1.PUT("/salaries/:id", h.UpdateSalary)
	v1.DELETE("/salaries/:id", h.DeleteSalary)
	v1.POST("/salaries/:id/pay", h.PaySalary)

	// Dashboards and reports
	v1.GET("/dashboards/overview", h.GetOverviewDashboard)
	v1.GET("/dashboards/inventory", h.GetInventoryDashboard)
	v1.GET("/dashboards/projects", h.GetProjectDashboard)
	v1.GET("/dashboards/hr", h.GetHRDashboard)
	v1.GET("/dashboards/payroll", h.GetPayrollDashboard)
	v1.GET("/dashboards/customers", h.GetCustomerDashboard)
	v1.GET("/exports/payroll", h.ExportPayroll)
	v1.GET("/exports/inventory", h.ExportInventory)

	// Access control
	v1.GET("/user_roles/me", h.GetUserRolesMe)
	v1.GET("/user_roles", h.GetUserRoles)
	v1.POST("/user_roles", h.PostUserRoles)
	v1.DELETE("/user_roles", h.DeleteUserRoles)
	v1.GET("/activity_logs", h.GetActivityLogs)
}
