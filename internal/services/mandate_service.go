package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"billwise/internal/cycle"
	apperrors "billwise/internal/errors"
	"billwise/internal/models"
	"billwise/internal/settlement"
)

// mandateService owns all writes to mandates and to the ledger entries they
// create. Settlement state is never stored; callers derive it through the
// settlement package.
type mandateService struct {
	db *gorm.DB
}

// NewMandateService creates a new MandateServicer.
func NewMandateService(db *gorm.DB) MandateServicer {
	return &mandateService{db: db}
}

// CreateMandate creates a new recurring mandate in its initial state:
// no payment recorded, no linked transaction, no skipped months.
func (s *mandateService) CreateMandate(userID, name string, category models.Category, amount int64, dueDay int) (*models.Mandate, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !category.IsExpense() {
		return nil, apperrors.ErrInvalidCategory
	}
	if dueDay < 1 || dueDay > 31 {
		dueDay = 1
	}

	mandate := &models.Mandate{
		UserID:   userID,
		Name:     name,
		Category: category,
		Amount:   amount,
		DueDay:   dueDay,
	}

	if err := s.db.Create(mandate).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return mandate, nil
}

// GetUserMandates returns the user's mandates with their derived status for
// the cycle containing now, plus the cycle summary. sortBy is a display hint
// only (name, amount or due_day); it is never persisted.
func (s *mandateService) GetUserMandates(userID, sortBy string, now time.Time) (*MandateList, error) {
	var mandates []models.Mandate
	if err := s.db.Where("user_id = ?", userID).Find(&mandates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	switch sortBy {
	case "amount":
		sort.SliceStable(mandates, func(i, j int) bool { return mandates[i].Amount > mandates[j].Amount })
	case "due_day":
		sort.SliceStable(mandates, func(i, j int) bool { return mandates[i].DueDay < mandates[j].DueDay })
	default:
		sort.SliceStable(mandates, func(i, j int) bool { return mandates[i].Name < mandates[j].Name })
	}

	views := make([]MandateView, 0, len(mandates))
	for i := range mandates {
		views = append(views, MandateView{
			Mandate: mandates[i],
			Status:  settlement.Classify(&mandates[i], now),
		})
	}

	return &MandateList{
		Mandates: views,
		Summary:  settlement.Summarize(mandates, now),
	}, nil
}

// GetMandateByID retrieves a mandate by ID for a specific user.
func (s *mandateService) GetMandateByID(userID, mandateID string) (*models.Mandate, error) {
	var mandate models.Mandate
	if err := s.db.Where("id = ? AND user_id = ?", mandateID, userID).First(&mandate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMandateNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &mandate, nil
}

// UpdateMandate edits a mandate's descriptive fields. Settlement facts
// (last paid date, linked transaction, skipped months) are not editable here.
func (s *mandateService) UpdateMandate(userID, mandateID, name string, category *models.Category, amount *int64, dueDay *int) (*models.Mandate, error) {
	mandate, err := s.GetMandateByID(userID, mandateID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if category != nil {
		if !category.IsExpense() {
			return nil, apperrors.ErrInvalidCategory
		}
		updates["category"] = *category
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if dueDay != nil {
		if *dueDay < 1 || *dueDay > 31 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due day must be between 1 and 31")
		}
		updates["due_day"] = *dueDay
	}

	if len(updates) > 0 {
		if err := s.db.Model(mandate).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return mandate, nil
}

// DeleteMandate soft-deletes a mandate. A linked transaction, if any,
// survives: the ledger entry records a payment that really happened.
func (s *mandateService) DeleteMandate(userID, mandateID string) error {
	mandate, err := s.GetMandateByID(userID, mandateID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(mandate).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Pay settles a mandate for the cycle containing now. In a single store
// transaction it creates the ledger entry and updates the mandate's
// settlement facts; on failure neither is applied. The confirmed amount
// rebases the mandate's expected amount, so future cycles project what was
// actually paid. Pay is not idempotent: every successful call creates
// exactly one new ledger entry.
func (s *mandateService) Pay(userID, mandateID string, confirmedAmount int64, now time.Time) (*models.Mandate, error) {
	if confirmedAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "confirmed amount must be greater than zero")
	}

	mandate, err := s.GetMandateByID(userID, mandateID)
	if err != nil {
		return nil, err
	}

	entry := &models.Transaction{
		UserID:      userID,
		Type:        models.TransactionTypeExpense,
		Amount:      confirmedAmount,
		Description: "Payment for " + mandate.Name,
		Category:    mandate.Category,
		Date:        now,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.Mandate{}).
			Where("id = ? AND user_id = ?", mandate.ID, userID).
			Updates(map[string]interface{}{
				"last_paid_date":        now,
				"amount":                confirmedAmount,
				"linked_transaction_id": entry.ID,
			}).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreTxFailed, err)
	}

	mandate.LastPaidDate = &now
	mandate.Amount = confirmedAmount
	mandate.LinkedTransactionID = &entry.ID
	return mandate, nil
}

// Reset undoes the current payment: it clears the mandate's payment facts
// and deletes the linked ledger entry, atomically. With no link, only the
// mandate fields are cleared. The amount stays at whatever the last Pay set
// it to. Afterwards the mandate classifies from its skip record alone.
func (s *mandateService) Reset(userID, mandateID string) (*models.Mandate, error) {
	mandate, err := s.GetMandateByID(userID, mandateID)
	if err != nil {
		return nil, err
	}

	linkedID := mandate.LinkedTransactionID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Mandate{}).
			Where("id = ? AND user_id = ?", mandate.ID, userID).
			Updates(map[string]interface{}{
				"last_paid_date":        nil,
				"linked_transaction_id": nil,
			}).Error; err != nil {
			return err
		}
		if linkedID != nil {
			// A dangling link (entry already deleted from the ledger
			// directly) deletes zero rows, which is fine.
			if err := tx.Where("id = ? AND user_id = ?", *linkedID, userID).
				Delete(&models.Transaction{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreTxFailed, err)
	}

	mandate.LastPaidDate = nil
	mandate.LinkedTransactionID = nil
	return mandate, nil
}

// Skip records the cycle containing now as skipped. Calling it again in the
// same cycle is a no-op; the skip set never holds duplicates. A skip does
// not displace a payment: if the mandate is already paid this cycle it keeps
// classifying as paid, and the skip key sits inert.
func (s *mandateService) Skip(userID, mandateID string, now time.Time) (*models.Mandate, error) {
	mandate, err := s.GetMandateByID(userID, mandateID)
	if err != nil {
		return nil, err
	}

	key := cycle.Key(now)
	if cycle.Contains(mandate.SkippedMonths, key) {
		return mandate, nil
	}

	updated := cycle.Add(mandate.SkippedMonths, key)
	if err := s.db.Model(mandate).Update("skipped_months", updated).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	mandate.SkippedMonths = updated
	return mandate, nil
}

// Unskip removes the current cycle's key from the skip set if present.
// Safe to call regardless of classification.
func (s *mandateService) Unskip(userID, mandateID string, now time.Time) (*models.Mandate, error) {
	mandate, err := s.GetMandateByID(userID, mandateID)
	if err != nil {
		return nil, err
	}

	key := cycle.Key(now)
	if !cycle.Contains(mandate.SkippedMonths, key) {
		return mandate, nil
	}

	updated := cycle.Remove(mandate.SkippedMonths, key)
	if err := s.db.Model(mandate).Update("skipped_months", updated).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	mandate.SkippedMonths = updated
	return mandate, nil
}
