package handlers

import (
	"RehabCare/models"
	"RehabCare/services"

	"github.com/gin-gonic/gin"
)

type ExpenseGroupHandler struct {
	service *services.ExpenseGroupService
}

func NewExpenseGroupHandler(service *services.ExpenseGroupService) *ExpenseGroupHandler {
	return &ExpenseGroupHandler{service: service}
}

func (h *ExpenseGroupHandler) CreateExpenseGroup(c *gin.Context) {
	var group models.ExpenseGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &group); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, group)
}

func (h *ExpenseGroupHandler) GetExpenseGroupByID(c *gin.Context) {
	id := c.Param("id")
	group, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if group == nil {
		c.JSON(404, gin.H{"error": "Expense group not found"})
		return
	}
	c.JSON(200, group)
}

func (h *ExpenseGroupHandler) GetAllExpenseGroups(c *gin.Context) {
	groups, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, groups)
}

func (h *ExpenseGroupHandler) GetExpenseGroupsByPatient(c *gin.Context) {
	patientID := c.Param("patient_id")
	groups, err := h.service.GetByPatient(c, patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, groups)
}

func (h *ExpenseGroupHandler) DeleteExpenseGroup(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Expense group deleted; member expenses were ungrouped"})
}
