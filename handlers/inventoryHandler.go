package handlers

import (
	"RehabCare/models"
	"RehabCare/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) CreateMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, medicine)
}

func (h *InventoryHandler) GetMedicineByID(c *gin.Context) {
	id := c.Param("id")
	medicine, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if medicine == nil {
		c.JSON(404, gin.H{"error": "Medicine not found"})
		return
	}
	c.JSON(200, medicine)
}

func (h *InventoryHandler) GetAllMedicines(c *gin.Context) {
	statuses, err := h.service.Statuses(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, statuses)
}

func (h *InventoryHandler) UpdateMedicine(c *gin.Context) {
	id := c.Param("id")
	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	medicine.ID = id
	if err := h.service.Update(c, &medicine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, medicine)
}

func (h *InventoryHandler) DeleteMedicine(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Medicine deleted"})
}

// RestockMedicine applies a restock event to one medicine.
func (h *InventoryHandler) RestockMedicine(c *gin.Context) {
	id := c.Param("id")
	var record models.RestockRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	medicine, err := h.service.Restock(c, id, record)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, medicine)
}

func (h *InventoryHandler) GetInventoryAlerts(c *gin.Context) {
	alerts, err := h.service.Alerts(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, alerts)
}

func (h *InventoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, categories)
}

// CreateCategory admits a new category name after the case-insensitive
// duplicate check.
func (h *InventoryHandler) CreateCategory(c *gin.Context) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateCategory(c, payload.Name); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, gin.H{"name": payload.Name})
}
