package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// ParseTransactionType validates a raw type string.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return TransactionType(s), true
	}
	return "", false
}

// Category represents a transaction category. The set is closed; the store
// itself does not enforce it, validation happens at the API boundary and in
// the service layer.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryShopping  Category = "Shopping"
	CategoryUtilities Category = "Utilities"
	CategoryOthers    Category = "Others"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryUtilities,
	CategoryOthers,
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if Category(s) == c {
			return c, true
		}
	}
	return "", false
}

// Transaction represents a single income or expense entry in a user's ledger.
// Transactions are append-only: they are never updated or deleted.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Category    Category        `gorm:"not null" json:"category"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `json:"description"`
}
