package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// ReportHandler handles report requests.
type ReportHandler struct {
	transactionService services.TransactionServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(transactionService services.TransactionServicer) *ReportHandler {
	return &ReportHandler{transactionService: transactionService}
}

// GetReport returns the aggregate financial report for the authenticated
// user. The report is recomputed fresh on every request.
// @Summary     Get financial report
// @Description Get total income, total expenses, and total savings for the authenticated user
// @Tags        report
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Summary "Aggregate report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.Summarize(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": summary})
}
