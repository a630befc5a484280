package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "billwise/internal/errors"
	"billwise/internal/export"
	"billwise/internal/services"
)

// ReportHandler serves derived, read-only figures.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDashboard returns the headline figures
// @Summary     Get dashboard
// @Description Get the all-time balance, current-month income and expenses, and current-month spending by category
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Dashboard "Dashboard figures"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.reportService.GetDashboard(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetMonthlySeries returns the income/expense series
// @Summary     Get monthly series
// @Description Get income, expense and net totals per calendar month for the last N months, oldest first
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of months (default 6, max 24)"
// @Success     200 {array} services.MonthlyPoint "Monthly points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlySeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := 0
	if v := c.Query("months"); v != "" {
		months, err = strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid months"))
			return
		}
	}

	series, err := h.reportService.GetMonthlySeries(userID, months, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

// GetStatement streams a CSV statement
// @Summary     Download statement
// @Description Download the user's ledger entries between two dates as a CSV statement grouped by month
// @Tags        reports
// @Accept      json
// @Produce     text/csv
// @Security    BearerAuth
// @Param       from query string true "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to   query string true "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {string} string "CSV statement"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/statement [get]
func (h *ReportHandler) GetStatement(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, _, err := parseFlexibleTime(c.Query("from"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from date, use RFC3339 or YYYY-MM-DD"))
		return
	}
	to, toDateOnly, err := parseFlexibleTime(c.Query("to"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to date, use RFC3339 or YYYY-MM-DD"))
		return
	}
	if to.Before(from) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must not be before from"))
		return
	}

	// A bare YYYY-MM-DD "to" means the whole of that day. An explicit
	// RFC3339 timestamp is taken as given, midnight included.
	if toDateOnly {
		to = to.AddDate(0, 0, 1).Add(-time.Second)
	}

	rows, err := h.reportService.GetStatementRows(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := "statement_" + from.Format("2006-01-02") + "_" + to.Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := export.WriteStatement(c.Writer, rows); err != nil {
		// Headers are already out; the truncated body is all we can signal.
		_ = c.Error(err)
	}
}
