package handlers

import (
	"RehabCare/models"
	"RehabCare/services"

	"github.com/gin-gonic/gin"
)

type ExpenseTypeHandler struct {
	service *services.ExpenseTypeService
}

func NewExpenseTypeHandler(service *services.ExpenseTypeService) *ExpenseTypeHandler {
	return &ExpenseTypeHandler{service: service}
}

func (h *ExpenseTypeHandler) CreateExpenseType(c *gin.Context) {
	var expenseType models.ExpenseType
	if err := c.ShouldBindJSON(&expenseType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &expenseType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, expenseType)
}

func (h *ExpenseTypeHandler) GetAllExpenseTypes(c *gin.Context) {
	expenseTypes, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, expenseTypes)
}
