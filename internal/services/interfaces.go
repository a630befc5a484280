package services

import (
	"context"
	"time"

	"billwise/internal/models"
	"billwise/internal/pagination"
	"billwise/internal/settlement"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// MandateView pairs a mandate with its derived status for the current cycle.
type MandateView struct {
	models.Mandate
	Status settlement.Status `json:"status"`
}

// MandateList is the presentation shape for a user's full mandate set.
type MandateList struct {
	Mandates []MandateView      `json:"mandates"`
	Summary  settlement.Summary `json:"summary"`
}

// MandateServicer is the reconciliation engine plus mandate CRUD. Pay, Reset,
// Skip and Unskip are the only writers of a mandate's settlement facts; every
// other caller treats them as read-only.
type MandateServicer interface {
	CreateMandate(userID, name string, category models.Category, amount int64, dueDay int) (*models.Mandate, error)
	GetUserMandates(userID, sortBy string, now time.Time) (*MandateList, error)
	GetMandateByID(userID, mandateID string) (*models.Mandate, error)
	UpdateMandate(userID, mandateID, name string, category *models.Category, amount *int64, dueDay *int) (*models.Mandate, error)
	DeleteMandate(userID, mandateID string) error

	Pay(userID, mandateID string, confirmedAmount int64, now time.Time) (*models.Mandate, error)
	Reset(userID, mandateID string) (*models.Mandate, error)
	Skip(userID, mandateID string, now time.Time) (*models.Mandate, error)
	Unskip(userID, mandateID string, now time.Time) (*models.Mandate, error)
}

// TransactionFilter holds optional filter parameters for listing ledger entries.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *models.Category
}

// TransactionServicer defines the contract for ledger-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, txType models.TransactionType, amount int64, description string, category models.Category, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetStatus pairs a budget with the current month's spending in its
// category. Spent counts only expense entries dated inside the cycle
// containing now; Remaining goes negative once the cap is blown.
type BudgetStatus struct {
	models.Budget
	Spent      int64   `json:"spent"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetServicer manages per-category monthly spending caps. At most one
// budget exists per user and category.
type BudgetServicer interface {
	CreateBudget(userID string, category models.Category, monthlyLimit int64) (*models.Budget, error)
	GetUserBudgets(userID string, now time.Time) ([]BudgetStatus, error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, category *models.Category, monthlyLimit *int64) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// Dashboard contains the headline figures for the current month.
type Dashboard struct {
	Balance            int64                     `json:"balance"`
	MonthlyIncome      int64                     `json:"monthly_income"`
	MonthlyExpenses    int64                     `json:"monthly_expenses"`
	SpendingByCategory map[models.Category]int64 `json:"spending_by_category"`
}

// MonthlyPoint is one month of the income/expense series.
type MonthlyPoint struct {
	Month    string `json:"month"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Net      int64  `json:"net"`
}

// ReportServicer derives read-only figures from already-reconciled data.
type ReportServicer interface {
	GetDashboard(userID string, now time.Time) (*Dashboard, error)
	GetMonthlySeries(userID string, months int, now time.Time) ([]MonthlyPoint, error)
	GetStatementRows(userID string, from, to time.Time) ([]models.Transaction, error)
}

// Advice is structured saving advice generated from spending data.
type Advice struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// AdviceServicer generates personalized saving advice.
type AdviceServicer interface {
	GetAdvice(ctx context.Context, userID string, now time.Time) (*Advice, error)
}

// AuditServicer records mutations for traceability.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
