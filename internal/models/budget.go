package models

// Budget represents a user's monthly spending ceiling. At most one row per
// user; saving again replaces the stored value. The budget is only used for
// a non-blocking warning when an expense pushes the current month over it.
type Budget struct {
	Base
	UserID        uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	MonthlyBudget float64 `gorm:"not null" json:"monthly_budget"`
}
