package models

// Budget is a monthly spending cap for one expense category. The cap is
// compared against the current calendar month's expense entries in that
// category; nothing about the comparison is stored.
type Budget struct {
	Base
	UserID   string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Category Category `gorm:"not null" json:"category"`
	// MonthlyLimit is the cap in paise.
	MonthlyLimit int64 `gorm:"type:bigint;not null" json:"monthly_limit"`
}
