package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fintrack/internal/models"
)

func today() string {
	return time.Now().Format(time.DateOnly)
}

func TestTransactionFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "alice", "wonderland1")

	// Record an income and an expense.
	rec := app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"date":%q,"category":"Others","type":"Income","amount":"3000","description":"salary"}`, today()),
		token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("income create failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"date":%q,"category":"Food","type":"Expense","amount":"500","description":"groceries"}`, today()),
		token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expense create failed: %d %s", rec.Code, rec.Body.String())
	}

	// Listing returns both, in insertion order.
	rec = app.request("GET", "/api/v1/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["type"] != "Income" {
		t.Errorf("expected first listed transaction to be the income, got %v", first["type"])
	}

	// The report reflects both.
	rec = app.request("GET", "/api/v1/report", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("report failed: %d %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)["report"].(map[string]interface{})
	if report["total_income"].(float64) != 3000 {
		t.Errorf("expected total_income 3000, got %v", report["total_income"])
	}
	if report["total_expense"].(float64) != 500 {
		t.Errorf("expected total_expense 500, got %v", report["total_expense"])
	}
	if report["total_savings"].(float64) != 2500 {
		t.Errorf("expected total_savings 2500, got %v", report["total_savings"])
	}
}

func TestInvalidTransactionInputs(t *testing.T) {
	app := setupApp(t)
	token, userID := app.registerUser(t, "bob", "builder-pw")

	cases := []struct {
		name string
		body string
		code string
	}{
		{"bad amount", fmt.Sprintf(`{"date":%q,"category":"Food","type":"Expense","amount":"abc"}`, today()), "INVALID_AMOUNT"},
		{"negative amount", fmt.Sprintf(`{"date":%q,"category":"Food","type":"Expense","amount":"-10"}`, today()), "INVALID_AMOUNT"},
		{"bad date", `{"date":"03/15/2025","category":"Food","type":"Expense","amount":"10"}`, "INVALID_DATE"},
		{"missing date", `{"category":"Food","type":"Expense","amount":"10"}`, "MISSING_FIELD"},
		{"missing amount", fmt.Sprintf(`{"date":%q,"category":"Food","type":"Expense"}`, today()), "MISSING_FIELD"},
		{"unknown category", fmt.Sprintf(`{"date":%q,"category":"Gambling","type":"Expense","amount":"10"}`, today()), "INVALID_INPUT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/transactions", tc.body, token)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			result := parseJSON(t, rec)
			errObj := result["error"].(map[string]interface{})
			if errObj["code"] != tc.code {
				t.Errorf("expected code %s, got %v", tc.code, errObj["code"])
			}
		})
	}

	// None of the rejected inputs may have persisted a row.
	var count int64
	app.DB.Model(&models.Transaction{}).Where("user_id = ?", uint(userID)).Count(&count)
	if count != 0 {
		t.Errorf("expected no transactions persisted, got %d", count)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	app := setupApp(t)
	tokenA, _ := app.registerUser(t, "alice", "wonderland1")
	tokenB, _ := app.registerUser(t, "bob", "builder-pw")

	rec := app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"date":%q,"category":"Shopping","type":"Expense","amount":"75"}`, today()), tokenA)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/transactions", "", tokenB)
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 0 {
		t.Errorf("expected bob to see no transactions, got %v", result["total_items"])
	}

	rec = app.request("GET", "/api/v1/report", "", tokenB)
	report := parseJSON(t, rec)["report"].(map[string]interface{})
	if report["total_expense"].(float64) != 0 {
		t.Errorf("expected bob's report to be empty, got %v", report["total_expense"])
	}
}
