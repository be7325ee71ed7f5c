package handlers

import (
	"RehabCare/models"
	"RehabCare/services"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// GetBills returns the derived bill list, optionally filtered by free-text
// search and an inclusive date range.
func (h *BillingHandler) GetBills(c *gin.Context) {
	filter := services.BillFilter{
		Search:    c.Query("search"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	bills, err := h.service.GetBills(c, filter)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, bills)
}

// GetPatientSummaries returns one aggregate billing row per patient.
func (h *BillingHandler) GetPatientSummaries(c *gin.Context) {
	filter := services.BillFilter{
		Search:    c.Query("search"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	summaries, err := h.service.GetPatientSummaries(c, filter)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, summaries)
}

// GenerateBills derives the bills for one patient.
func (h *BillingHandler) GenerateBills(c *gin.Context) {
	var payload struct {
		PatientID string `json:"patient_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	bills, err := h.service.GenerateForPatient(c, payload.PatientID)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, bills)
}

// RecordPayment records a payment against an expense.
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.RecordPayment(c, &payment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, payment)
}

func (h *BillingHandler) GetPayments(c *gin.Context) {
	payments, err := h.service.GetPayments(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, payments)
}
