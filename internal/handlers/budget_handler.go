package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SaveBudgetRequest represents the request payload for setting the monthly
// budget. The amount is a raw string; the service parses it.
type SaveBudgetRequest struct {
	MonthlyBudget string `json:"monthly_budget"`
}

// BudgetResponse represents a budget in the response
type BudgetResponse struct {
	UserID        uint    `json:"user_id"`
	MonthlyBudget float64 `json:"monthly_budget"`
}

// SaveBudget sets or replaces the authenticated user's monthly budget
// @Summary     Set monthly budget
// @Description Set the monthly budget for the authenticated user, replacing any previous value
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveBudgetRequest true "Budget amount"
// @Success     200 {object} BudgetResponse "Budget saved"
// @Failure     400 {object} ErrorResponse "Missing or invalid amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [put]
func (h *BudgetHandler) SaveBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.SaveBudget(userID, req.MonthlyBudget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SAVE_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"monthly_budget": budget.MonthlyBudget})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudget returns the authenticated user's monthly budget
// @Summary     Get monthly budget
// @Description Get the monthly budget for the authenticated user
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} BudgetResponse "Budget"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No budget set"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}
