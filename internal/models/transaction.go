package models

import "time"

// TransactionType represents the direction of a ledger entry.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single ledger entry. An entry may be referenced
// by at most one mandate's LinkedTransactionID; the entry itself carries no
// back-reference.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Category    Category        `gorm:"not null" json:"category"`
	Date        time.Time       `gorm:"not null" json:"date"`
}
