package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SaveBudget sets the user's monthly budget. The amount arrives as a raw
// string; it must parse as a non-negative decimal. A user has at most one
// budget row — saving again replaces the stored value.
func (s *budgetService) SaveBudget(userID uint, amount string) (*models.Budget, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, apperrors.ErrMissingField
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, apperrors.ErrInvalidAmount
	}

	var budget models.Budget
	err = s.db.Where("user_id = ?", userID).First(&budget).Error
	switch {
	case err == nil:
		budget.MonthlyBudget = value
		if err := s.db.Model(&budget).Update("monthly_budget", value).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{UserID: userID, MonthlyBudget: value}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &budget, nil
}

// GetBudget returns the user's budget, or ErrBudgetNotFound if none was ever set.
func (s *budgetService) GetBudget(userID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("user_id = ?", userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}
