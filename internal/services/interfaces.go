package services

import (
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SaveBudget(userID uint, amount string) (*models.Budget, error)
	GetBudget(userID uint) (*models.Budget, error)
}

// Summary contains the aggregate report for a user's ledger.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	TotalSavings float64 `json:"total_savings"`
}

// TransactionServicer defines the contract for transaction-related business
// logic. AddTransaction takes raw string inputs; parsing and validation are
// part of the operation's contract. The returned bool reports whether the
// expense pushed the current month past the monthly budget — a non-blocking
// warning, the transaction is recorded either way.
type TransactionServicer interface {
	AddTransaction(userID uint, date, category, txnType, amount, description string) (*models.Transaction, bool, error)
	GetUserTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	Summarize(userID uint) (*Summary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
