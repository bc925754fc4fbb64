package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	addTransactionFn      func(userID uint, date, category, txnType, amount, description string) (*models.Transaction, bool, error)
	getUserTransactionsFn func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	summarizeFn           func(userID uint) (*services.Summary, error)
}

func (m *mockTransactionService) AddTransaction(userID uint, date, category, txnType, amount, description string) (*models.Transaction, bool, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(userID, date, category, txnType, amount, description)
	}
	return &models.Transaction{}, false, nil
}

func (m *mockTransactionService) GetUserTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 50, 0)
	return &resp, nil
}

func (m *mockTransactionService) Summarize(userID uint) (*services.Summary, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(userID)
	}
	return &services.Summary{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.GetUserTransactions)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			addTransactionFn: func(userID uint, date, category, txnType, amount, description string) (*models.Transaction, bool, error) {
				parsed, _ := time.Parse(time.DateOnly, date)
				return &models.Transaction{
					Base:        models.Base{ID: 1},
					UserID:      userID,
					Date:        parsed,
					Category:    models.Category(category),
					Type:        models.TransactionType(txnType),
					Amount:      42.5,
					Description: description,
				}, false, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2025-03-15","category":"Food","type":"Expense","amount":"42.5","description":"groceries"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if _, ok := result["budget_warning"]; ok {
			t.Error("expected no budget_warning field when within budget")
		}
		txn := result["transaction"].(map[string]interface{})
		if txn["category"] != "Food" {
			t.Errorf("expected category Food, got %v", txn["category"])
		}
	})

	t.Run("includes warning when budget exceeded", func(t *testing.T) {
		svc := &mockTransactionService{
			addTransactionFn: func(userID uint, _, _, _, _, _ string) (*models.Transaction, bool, error) {
				return &models.Transaction{Base: models.Base{ID: 2}, UserID: userID}, true, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2025-03-15","category":"Shopping","type":"Expense","amount":"950"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 despite warning, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["budget_warning"] != true {
			t.Error("expected budget_warning to be true")
		}
		if result["warning"] == nil {
			t.Error("expected a warning message")
		}
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2025-03-15","category":"Gambling","type":"Expense","amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2025-03-15","category":"Food","type":"Transfer","amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("propagates service errors", func(t *testing.T) {
		svc := &mockTransactionService{
			addTransactionFn: func(_ uint, _, _, _, _, _ string) (*models.Transaction, bool, error) {
				return nil, false, apperrors.ErrInvalidAmount
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2025-03-15","category":"Food","type":"Expense","amount":"abc"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})
}

func TestTransactionHandler_GetUserTransactions(t *testing.T) {
	t.Run("returns the user's page", func(t *testing.T) {
		svc := &mockTransactionService{
			getUserTransactionsFn: func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				page.Defaults()
				resp := pagination.NewPageResponse([]models.Transaction{
					{Base: models.Base{ID: 1}, UserID: userID, Type: models.TransactionTypeIncome, Amount: 100},
					{Base: models.Base{ID: 2}, UserID: userID, Type: models.TransactionTypeExpense, Amount: 40},
				}, page.Page, page.PageSize, 2)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(data))
		}
		if result["total_items"].(float64) != 2 {
			t.Errorf("expected total_items 2, got %v", result["total_items"])
		}
	})

	t.Run("returns 400 on bad pagination", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?page=-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
