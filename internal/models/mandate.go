package models

import "time"

// Mandate represents a recurring monthly payment obligation. Its settlement
// state for the current cycle is never stored; it is derived from
// LastPaidDate and SkippedMonths (see the settlement package).
type Mandate struct {
	Base
	UserID   string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string   `gorm:"not null" json:"name"`
	Category Category `gorm:"not null" json:"category"`
	// Amount is the current expected amount in paise. Each payment rebases
	// it to the amount actually paid.
	Amount int64 `gorm:"type:bigint;not null" json:"amount"`
	// DueDay is the day of the month the payment is nominally due.
	// Informational only; it does not affect settlement.
	DueDay int `gorm:"not null;default:1" json:"due_day"`

	// Settlement facts, mutated only by the mandate service.
	LastPaidDate        *time.Time `json:"last_paid_date,omitempty"`
	LinkedTransactionID *string    `gorm:"type:uuid" json:"linked_transaction_id,omitempty"`
	SkippedMonths       []string   `gorm:"serializer:json" json:"skipped_months,omitempty"`
}
