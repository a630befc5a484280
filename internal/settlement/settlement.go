// Package settlement derives the per-cycle status of a mandate from its
// persisted facts. Status is never stored: it is recomputed from
// LastPaidDate and SkippedMonths against the supplied clock, so a new
// calendar month implicitly resets every mandate to its derived state.
package settlement

import (
	"time"

	"billwise/internal/cycle"
	"billwise/internal/models"
)

// Status is the derived settlement state of a mandate for one cycle.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusSkipped Status = "skipped"
	StatusPending Status = "pending"
)

// PaidInCycle reports whether the mandate's last payment falls in the same
// calendar month and year as now. A payment never counts for any month other
// than the one containing its date.
func PaidInCycle(m *models.Mandate, now time.Time) bool {
	if m.LastPaidDate == nil {
		return false
	}
	return cycle.SameMonth(*m.LastPaidDate, now)
}

// SkippedInCycle reports whether the mandate's skip set contains the month
// key of now.
func SkippedInCycle(m *models.Mandate, now time.Time) bool {
	return cycle.Contains(m.SkippedMonths, cycle.Key(now))
}

// Classify returns exactly one of Paid, Skipped, or Pending for the cycle
// containing now. Paid dominates Skipped: a mandate skipped earlier in the
// month and paid later reports Paid, and the stale skip key is inert.
func Classify(m *models.Mandate, now time.Time) Status {
	if PaidInCycle(m, now) {
		return StatusPaid
	}
	if SkippedInCycle(m, now) {
		return StatusSkipped
	}
	return StatusPending
}

// Summary aggregates a mandate set for one cycle. The three partitions are
// disjoint and exhaustive: every mandate is counted exactly once.
type Summary struct {
	TotalPaid          int64 `json:"total_paid"`
	ProjectedRemaining int64 `json:"projected_remaining"`
	PaidCount          int   `json:"paid_count"`
	SkippedCount       int   `json:"skipped_count"`
	UnpaidCount        int   `json:"unpaid_count"`
}

// Summarize computes cycle totals over mandates as of now. Skipped mandates
// contribute to neither total.
func Summarize(mandates []models.Mandate, now time.Time) Summary {
	var s Summary
	for i := range mandates {
		switch Classify(&mandates[i], now) {
		case StatusPaid:
			s.PaidCount++
			s.TotalPaid += mandates[i].Amount
		case StatusSkipped:
			s.SkippedCount++
		default:
			s.UnpaidCount++
			s.ProjectedRemaining += mandates[i].Amount
		}
	}
	return s
}
