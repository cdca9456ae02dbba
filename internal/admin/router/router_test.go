package router_test

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"bizadmin/internal/admin/handler"
	"bizadmin/internal/admin/metrics"
	"bizadmin/internal/admin/policy"
	"bizadmin/internal/admin/router"
	"bizadmin/internal/admin/service"
	"bizadmin/internal/admin/testutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryRouteHasPolicy(t *testing.T) {
	m := testutil.NewMocks()
	svc := testutil.NewService(m, service.Options{})

	e := echo.New()
	router.RegisterRoutes(e, handler.NewHandler(svc), svc.Policy, m.UserRoles, nil)

	registered := make([]string, 0)
	for _, r := range e.Routes() {
		// group middleware registers catch-all not-found routes
		if !strings.HasPrefix(r.Path, "/api/v1/") || strings.HasSuffix(r.Path, "*") {
			continue
		}
		registered = append(registered, policy.RouteKey(r.Method, r.Path))
	}
	sort.Strings(registered)

	assert.Equal(t, svc.Policy.Routes(), registered)
}

func TestMetricsEndpoint(t *testing.T) {
	m := testutil.NewMocks()
	svc := testutil.NewService(m, service.Options{})

	e := echo.New()
	router.RegisterRoutes(e, handler.NewHandler(svc), svc.Policy, m.UserRoles, metrics.New())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/health"`)
}
