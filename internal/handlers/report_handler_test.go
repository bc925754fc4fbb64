package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/report", injectUserID(1), handler.GetReport)
	return r
}

func TestReportHandler_GetReport(t *testing.T) {
	t.Run("returns the summary", func(t *testing.T) {
		svc := &mockTransactionService{
			summarizeFn: func(_ uint) (*services.Summary, error) {
				return &services.Summary{
					TotalIncome:  3000.0,
					TotalExpense: 500.0,
					TotalSavings: 2500.0,
				}, nil
			},
		}
		handler := NewReportHandler(svc)
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/report", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		report := result["report"].(map[string]interface{})
		if report["total_income"].(float64) != 3000.0 {
			t.Errorf("expected total_income 3000, got %v", report["total_income"])
		}
		if report["total_expense"].(float64) != 500.0 {
			t.Errorf("expected total_expense 500, got %v", report["total_expense"])
		}
		if report["total_savings"].(float64) != 2500.0 {
			t.Errorf("expected total_savings 2500, got %v", report["total_savings"])
		}
	})

	t.Run("returns all zeros for an empty ledger", func(t *testing.T) {
		svc := &mockTransactionService{
			summarizeFn: func(_ uint) (*services.Summary, error) {
				return &services.Summary{}, nil
			},
		}
		handler := NewReportHandler(svc)
		r := setupReportRouter(handler)

		rec := doRequest(r, "GET", "/report", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		report := result["report"].(map[string]interface{})
		for _, key := range []string{"total_income", "total_expense", "total_savings"} {
			if report[key].(float64) != 0 {
				t.Errorf("expected %s to be 0, got %v", key, report[key])
			}
		}
	})
}
