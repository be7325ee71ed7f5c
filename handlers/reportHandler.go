package handlers

import (
	"RehabCare/middlewares"
	"RehabCare/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetExpenseReport returns the per-type and per-date expense rollup over an
// optional date range.
func (h *ReportHandler) GetExpenseReport(c *gin.Context) {
	report, err := h.service.ExpenseReport(c, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		middlewares.HttpError(c, "failed to build expense report", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, report, http.StatusOK)
}
