package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithName(t, db, username)
}

// CreateTestUserWithName creates a user with the given username. The
// password is always "password123".
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction of the given type and amount,
// dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, txnType models.TransactionType, amount float64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, userID, txnType, amount, time.Now())
}

// CreateTestTransactionOn creates a transaction with an explicit date.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, userID uint, txnType models.TransactionType, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:      userID,
		Date:        date,
		Category:    models.CategoryOthers,
		Type:        txnType,
		Amount:      amount,
		Description: fmt.Sprintf("test transaction %d", nextID()),
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

// CreateTestBudget creates a monthly budget for the given user.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, monthlyBudget float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:        userID,
		MonthlyBudget: monthlyBudget,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
