package services

import (
	"time"

	"gorm.io/gorm"

	"billwise/internal/cycle"
	apperrors "billwise/internal/errors"
	"billwise/internal/models"
)

// reportService derives presentation figures from the ledger. It never
// writes; all mutation goes through the mandate and transaction services.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

func (s *reportService) sumAmount(userID string, txType models.TransactionType, from, to *time.Time) (int64, error) {
	q := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, txType)
	if from != nil && to != nil {
		q = q.Where("date BETWEEN ? AND ?", *from, *to)
	}

	var total int64
	if err := q.Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GetDashboard returns the all-time balance, the current month's income and
// expenses, and the current month's spending broken down by category.
func (s *reportService) GetDashboard(userID string, now time.Time) (*Dashboard, error) {
	totalIncome, err := s.sumAmount(userID, models.TransactionTypeIncome, nil, nil)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.sumAmount(userID, models.TransactionTypeExpense, nil, nil)
	if err != nil {
		return nil, err
	}

	start, end := cycle.Window(now)
	monthlyIncome, err := s.sumAmount(userID, models.TransactionTypeIncome, &start, &end)
	if err != nil {
		return nil, err
	}
	monthlyExpenses, err := s.sumAmount(userID, models.TransactionTypeExpense, &start, &end)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Category models.Category
		Total    int64
	}
	err = s.db.Model(&models.Transaction{}).
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

	return &Dashboard{
		Balance:            totalIncome - totalExpenses,
		MonthlyIncome:      monthlyIncome,
		MonthlyExpenses:    monthlyExpenses,
		SpendingByCategory: spending,
	}, nil
}

// GetMonthlySeries returns income/expense totals for the last months calendar
// months ending with the month containing now, oldest first.
func (s *reportService) GetMonthlySeries(userID string, months int, now time.Time) ([]MonthlyPoint, error) {
	if months < 1 {
		months = 6
	}
	if months > 24 {
		months = 24
	}

	// Anchor on the first of the month so AddDate never skips short months.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	series := make([]MonthlyPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		start, end := cycle.Window(m)

		income, err := s.sumAmount(userID, models.TransactionTypeIncome, &start, &end)
		if err != nil {
			return nil, err
		}
		expenses, err := s.sumAmount(userID, models.TransactionTypeExpense, &start, &end)
		if err != nil {
			return nil, err
		}

		series = append(series, MonthlyPoint{
			Month:    cycle.Key(m),
			Income:   income,
			Expenses: expenses,
			Net:      income - expenses,
		})
	}
	return series, nil
}

// GetStatementRows returns the user's ledger entries between from and to,
// oldest first, for statement export.
func (s *reportService) GetStatementRows(userID string, from, to time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
