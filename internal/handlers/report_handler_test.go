package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"billwise/internal/models"
	"billwise/internal/services"
)

type mockReportService struct {
	dashboardFn func(userID string, now time.Time) (*services.Dashboard, error)
	seriesFn    func(userID string, months int, now time.Time) ([]services.MonthlyPoint, error)
	statementFn func(userID string, from, to time.Time) ([]models.Transaction, error)
}

func (m *mockReportService) GetDashboard(userID string, now time.Time) (*services.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(userID, now)
	}
	return &services.Dashboard{}, nil
}

func (m *mockReportService) GetMonthlySeries(userID string, months int, now time.Time) ([]services.MonthlyPoint, error) {
	if m.seriesFn != nil {
		return m.seriesFn(userID, months, now)
	}
	return nil, nil
}

func (m *mockReportService) GetStatementRows(userID string, from, to time.Time) ([]models.Transaction, error) {
	if m.statementFn != nil {
		return m.statementFn(userID, from, to)
	}
	return nil, nil
}

func setupReportRouter(svc services.ReportServicer) *gin.Engine {
	handler := NewReportHandler(svc)
	r := gin.New()
	g := r.Group("/reports", injectUserID("user-1"))
	g.GET("/dashboard", handler.GetDashboard)
	g.GET("/monthly", handler.GetMonthlySeries)
	g.GET("/statement", handler.GetStatement)
	return r
}

func TestReportHandler_GetStatement(t *testing.T) {
	t.Run("bare date to covers the whole day", func(t *testing.T) {
		var gotTo time.Time
		svc := &mockReportService{
			statementFn: func(_ string, _, to time.Time) ([]models.Transaction, error) {
				gotTo = to
				return nil, nil
			},
		}
		r := setupReportRouter(svc)

		rec := doRequest(r, "GET", "/reports/statement?from=2024-03-01&to=2024-03-15", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		want := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
		if !gotTo.Equal(want) {
			t.Errorf("expected to=%v, got %v", want, gotTo)
		}
	})

	t.Run("explicit midnight timestamp is taken as given", func(t *testing.T) {
		var gotTo time.Time
		svc := &mockReportService{
			statementFn: func(_ string, _, to time.Time) ([]models.Transaction, error) {
				gotTo = to
				return nil, nil
			},
		}
		r := setupReportRouter(svc)

		rec := doRequest(r, "GET", "/reports/statement?from=2024-03-01&to=2024-03-15T00:00:00Z", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
		if !gotTo.Equal(want) {
			t.Errorf("expected to=%v, got %v", want, gotTo)
		}
	})

	t.Run("sets csv headers", func(t *testing.T) {
		r := setupReportRouter(&mockReportService{})

		rec := doRequest(r, "GET", "/reports/statement?from=2024-03-01&to=2024-03-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("expected text/csv, got %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "statement_2024-03-01_2024-03-31.csv") {
			t.Errorf("unexpected disposition %q", cd)
		}
	})

	t.Run("rejects to before from", func(t *testing.T) {
		r := setupReportRouter(&mockReportService{})

		rec := doRequest(r, "GET", "/reports/statement?from=2024-03-15&to=2024-03-01", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		r := setupReportRouter(&mockReportService{})

		rec := doRequest(r, "GET", "/reports/statement?from=yesterday&to=2024-03-31", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReportHandler_GetMonthlySeries(t *testing.T) {
	t.Run("passes the requested month count", func(t *testing.T) {
		var gotMonths int
		svc := &mockReportService{
			seriesFn: func(_ string, months int, _ time.Time) ([]services.MonthlyPoint, error) {
				gotMonths = months
				return []services.MonthlyPoint{}, nil
			},
		}
		r := setupReportRouter(svc)

		rec := doRequest(r, "GET", "/reports/monthly?months=12", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonths != 12 {
			t.Errorf("expected months=12, got %d", gotMonths)
		}
	})

	t.Run("rejects non-numeric months", func(t *testing.T) {
		r := setupReportRouter(&mockReportService{})

		rec := doRequest(r, "GET", "/reports/monthly?months=six", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
