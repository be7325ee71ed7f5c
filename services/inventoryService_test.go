package services

import (
	"testing"
	"time"

	"RehabCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inventoryToday = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestClassifyMedicine_ExpiryBuckets(t *testing.T) {
	tests := []struct {
		name       string
		expiryDate string
		want       string
		wantDays   *int
	}{
		{"no expiry date is always active", "", ExpiryActive, nil},
		{"expired five days ago", "2024-03-10", ExpiryExpired, intPtr(-5)},
		{"expires in ten days", "2024-03-25", ExpiryNear, intPtr(10)},
		{"expires in sixty days", "2024-05-14", ExpiryActive, intPtr(60)},
		{"expires today", "2024-03-15", ExpiryNear, intPtr(0)},
		{"expires in exactly thirty days", "2024-04-14", ExpiryNear, intPtr(30)},
		{"expires in thirty-one days", "2024-04-15", ExpiryActive, intPtr(31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			medicine := models.Medicine{ID: "m1", Name: "Paracetamol 500mg", Stock: 100, MinStockLevel: 20, ExpiryDate: tt.expiryDate}
			status := ClassifyMedicine(medicine, inventoryToday)
			assert.Equal(t, tt.want, status.ExpiryStatus)
			if tt.wantDays == nil {
				assert.Nil(t, status.DaysUntilExpiry)
			} else {
				require.NotNil(t, status.DaysUntilExpiry)
				assert.Equal(t, *tt.wantDays, *status.DaysUntilExpiry)
			}
		})
	}
}

func TestClassifyMedicine_StockFlags(t *testing.T) {
	// Below the configured threshold.
	status := ClassifyMedicine(models.Medicine{Stock: 8, MinStockLevel: 20}, inventoryToday)
	assert.True(t, status.LowStock)
	assert.True(t, status.CriticalStock)

	// Default threshold of 20 applies when none is configured.
	status = ClassifyMedicine(models.Medicine{Stock: 15}, inventoryToday)
	assert.True(t, status.LowStock)
	assert.False(t, status.CriticalStock)

	status = ClassifyMedicine(models.Medicine{Stock: 25}, inventoryToday)
	assert.False(t, status.LowStock)
	assert.False(t, status.CriticalStock)

	// Low stock is flagged independently of the expiry bucket.
	status = ClassifyMedicine(models.Medicine{Stock: 3, MinStockLevel: 10, ExpiryDate: "2024-03-01"}, inventoryToday)
	assert.Equal(t, ExpiryExpired, status.ExpiryStatus)
	assert.True(t, status.LowStock)
}

func TestBuildInventoryAlerts(t *testing.T) {
	medicines := []models.Medicine{
		{ID: "m1", Name: "Ibuprofen 400mg", Stock: 8, MinStockLevel: 20, ExpiryDate: "2024-03-01"},
		{ID: "m2", Name: "Amoxicillin 250mg", Stock: 75, MinStockLevel: 30, ExpiryDate: "2024-04-01"},
		{ID: "m3", Name: "Rehabilitation Belt", Stock: 12, MinStockLevel: 5},
		{ID: "m4", Name: "Surgical Gloves", Stock: 2, MinStockLevel: 10},
	}

	alerts := BuildInventoryAlerts(medicines, inventoryToday)

	require.Len(t, alerts.Expired, 1)
	assert.Equal(t, "m1", alerts.Expired[0].Medicine.ID)

	require.Len(t, alerts.NearExpiry, 1)
	assert.Equal(t, "m2", alerts.NearExpiry[0].Medicine.ID)

	require.Len(t, alerts.LowStock, 2)
	assert.Equal(t, "m1", alerts.LowStock[0].Medicine.ID)
	assert.Equal(t, "m4", alerts.LowStock[1].Medicine.ID)
	assert.True(t, alerts.LowStock[1].CriticalStock)
}

func intPtr(v int) *int {
	return &v
}
