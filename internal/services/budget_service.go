package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"billwise/internal/cycle"
	apperrors "billwise/internal/errors"
	"billwise/internal/models"
)

// budgetService manages per-category monthly spending caps.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// categoryTaken reports whether the user already has a live budget for the
// category, excluding excludeID (empty for creation).
func (s *budgetService) categoryTaken(userID string, category models.Category, excludeID string) (bool, error) {
	q := s.db.Model(&models.Budget{}).Where("user_id = ? AND category = ?", userID, category)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// CreateBudget creates a monthly spending cap for an expense category.
// Each category can carry at most one budget per user.
func (s *budgetService) CreateBudget(userID string, category models.Category, monthlyLimit int64) (*models.Budget, error) {
	if !category.IsExpense() {
		return nil, apperrors.ErrInvalidCategory
	}
	if monthlyLimit <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly limit must be greater than zero")
	}

	taken, err := s.categoryTaken(userID, category, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateBudget
	}

	budget := &models.Budget{
		UserID:       userID,
		Category:     category,
		MonthlyLimit: monthlyLimit,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// GetUserBudgets returns the user's budgets with spending for the cycle
// containing now, ordered by category name. Spent sums only expense entries
// dated inside the cycle; income entries and other months never count.
func (s *budgetService) GetUserBudgets(userID string, now time.Time) ([]BudgetStatus, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sort.SliceStable(budgets, func(i, j int) bool { return budgets[i].Category < budgets[j].Category })

	start, end := cycle.Window(now)
	var rows []struct {
		Category models.Category
		Total    int64
	}
	err := s.db.Model(&models.Transaction{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date BETWEEN ? AND ?",
			userID, models.TransactionTypeExpense, start, end).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spending := make(map[models.Category]int64, len(rows))
	for _, r := range rows {
		spending[r.Category] = r.Total
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spending[b.Category]
		var percentage float64
		if b.MonthlyLimit > 0 {
			percentage = float64(spent) / float64(b.MonthlyLimit) * 100
		}
		statuses = append(statuses, BudgetStatus{
			Budget:     b,
			Spent:      spent,
			Remaining:  b.MonthlyLimit - spent,
			Percentage: percentage,
		})
	}
	return statuses, nil
}

// GetBudgetByID retrieves a budget by ID for a specific user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget changes a budget's category or monthly limit. Moving to a
// category that already carries a budget is rejected.
func (s *budgetService) UpdateBudget(userID, budgetID string, category *models.Category, monthlyLimit *int64) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if category != nil {
		if !category.IsExpense() {
			return nil, apperrors.ErrInvalidCategory
		}
		taken, err := s.categoryTaken(userID, *category, budget.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrDuplicateBudget
		}
		updates["category"] = *category
	}
	if monthlyLimit != nil {
		if *monthlyLimit <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly limit must be greater than zero")
		}
		updates["monthly_limit"] = *monthlyLimit
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}

// DeleteBudget soft-deletes a budget. Ledger entries are untouched; the cap
// simply stops being reported.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
