package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"billwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestMandate creates a pending mandate with the given amount (in paise).
func CreateTestMandate(t *testing.T, db *gorm.DB, userID string, amount int64) *models.Mandate {
	t.Helper()

	mandate := &models.Mandate{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Mandate %d", nextID()),
		Category: models.CategoryUtilities,
		Amount:   amount,
		DueDay:   1,
	}
	if err := db.Create(mandate).Error; err != nil {
		t.Fatalf("failed to create test mandate: %v", err)
	}
	return mandate
}

// CreateTestTransaction creates a ledger entry of the given type and amount
// (in paise) dated at the given time.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	category := models.CategoryOther
	if txType == models.TransactionTypeIncome {
		category = models.CategorySalary
	}

	tx := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
