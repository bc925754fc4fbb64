package services

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db            *gorm.DB
	budgetService BudgetServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, budgetService BudgetServicer) TransactionServicer {
	return &transactionService{
		db:            db,
		budgetService: budgetService,
	}
}

// AddTransaction records a new income or expense entry. All inputs arrive as
// raw strings and are validated here: date must be YYYY-MM-DD, amount a
// non-negative decimal, category and type members of their closed sets.
//
// When the entry is an expense and the user has a monthly budget, the user's
// expenses dated inside the current wall-clock month are summed; if adding
// this amount would exceed the budget, the returned bool is true. The check
// always uses "now", not the new entry's own month, so a backdated expense
// still counts against the current month's total. The transaction is
// persisted regardless of the warning.
func (s *transactionService) AddTransaction(
	userID uint,
	date, category, txnType, amount, description string,
) (*models.Transaction, bool, error) {
	date = strings.TrimSpace(date)
	category = strings.TrimSpace(category)
	txnType = strings.TrimSpace(txnType)
	amount = strings.TrimSpace(amount)

	if date == "" || category == "" || txnType == "" || amount == "" {
		return nil, false, apperrors.ErrMissingField
	}

	parsedType, ok := models.ParseTransactionType(txnType)
	if !ok {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown transaction type: "+txnType)
	}

	parsedCategory, ok := models.ParseCategory(category)
	if !ok {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown category: "+category)
	}

	parsedDate, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return nil, false, apperrors.ErrInvalidDate
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, false, apperrors.ErrInvalidAmount
	}

	warning := false
	if parsedType == models.TransactionTypeExpense {
		warning, err = s.exceedsMonthlyBudget(userID, value)
		if err != nil {
			return nil, false, err
		}
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Date:        parsedDate,
		Category:    parsedCategory,
		Type:        parsedType,
		Amount:      value,
		Description: description,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, warning, nil
}

// exceedsMonthlyBudget reports whether adding an expense of the given amount
// would push the user's current-month expense total past their budget.
// A user without a budget never gets a warning.
func (s *transactionService) exceedsMonthlyBudget(userID uint, amount float64) (bool, error) {
	budget, err := s.budgetService.GetBudget(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			return false, nil
		}
		return false, err
	}

	// Dates are stored as UTC midnights, so the month window must be built
	// in UTC as well or boundary days slip out of range on non-UTC hosts.
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var spent float64
	err = s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?",
			userID, models.TransactionTypeExpense, monthStart, monthEnd).
		Scan(&spent).Error
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return spent+amount > budget.MonthlyBudget, nil
}

// GetUserTransactions returns the user's transactions in insertion order.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Summarize computes the user's aggregate report: total income, total
// expenses, and savings as the difference. Missing sums count as zero, so a
// user with no transactions gets an all-zero report.
func (s *transactionService) Summarize(userID uint) (*Summary, error) {
	sumByType := func(txnType models.TransactionType) (float64, error) {
		var total float64
		err := s.db.Model(&models.Transaction{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND type = ?", userID, txnType).
			Scan(&total).Error
		if err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return total, nil
	}

	income, err := sumByType(models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	expense, err := sumByType(models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		TotalSavings: income - expense,
	}, nil
}
