package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(proposalTransitions.WithLabelValues("pending", "rejected"))
	ProposalTransition("pending", "rejected")
	if got := testutil.ToFloat64(proposalTransitions.WithLabelValues("pending", "rejected")); got != before+1 {
		t.Fatalf("transitions = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(vehiclesDeactivated)
	VehiclesDeactivated(3)
	if got := testutil.ToFloat64(vehiclesDeactivated); got != before+3 {
		t.Fatalf("deactivated = %v, want %v", got, before+3)
	}
}

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/api/proposals/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/metrics", echo.WrapHandler(Handler()))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/proposals/:id", "204"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proposals/abc", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/proposals/:id", "204")); got != before+1 {
		t.Fatalf("requests = %v, want %v", got, before+1)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "autogiro_http_requests_total") {
		t.Fatalf("exposition missing http counter")
	}
}
