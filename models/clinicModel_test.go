package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRestock(t *testing.T) {
	medicine := Medicine{
		ID:          "m1",
		Name:        "Insulin Injection",
		Price:       25.0,
		Stock:       3,
		ExpiryDate:  "2024-03-20",
		BatchNumber: "BN005",
	}

	medicine.ApplyRestock(RestockRecord{
		ID:        "r1",
		Quantity:  10,
		UnitPrice: 5.00,
	})

	assert.Equal(t, 13, medicine.Stock)
	assert.Equal(t, 5.00, medicine.Price)
	require.Len(t, medicine.RestockHistory, 1)

	// Expiry and batch survive a restock that does not supply them.
	assert.Equal(t, "2024-03-20", medicine.ExpiryDate)
	assert.Equal(t, "BN005", medicine.BatchNumber)
}

func TestApplyRestock_OverwritesExpiryAndBatchWhenSupplied(t *testing.T) {
	medicine := Medicine{ID: "m1", Stock: 5, ExpiryDate: "2024-03-20", BatchNumber: "BN005"}

	medicine.ApplyRestock(RestockRecord{ID: "r1", Quantity: 20, UnitPrice: 4.50, ExpiryDate: "2025-01-31", BatchNumber: "BN009"})
	medicine.ApplyRestock(RestockRecord{ID: "r2", Quantity: 5, UnitPrice: 4.75})

	assert.Equal(t, 30, medicine.Stock)
	// Price tracks the latest restock.
	assert.Equal(t, 4.75, medicine.Price)
	assert.Equal(t, "2025-01-31", medicine.ExpiryDate)
	assert.Equal(t, "BN009", medicine.BatchNumber)
	assert.Len(t, medicine.RestockHistory, 2)
}

func TestEffectiveMinStockLevel(t *testing.T) {
	assert.Equal(t, DefaultMinStockLevel, (&Medicine{}).EffectiveMinStockLevel())
	assert.Equal(t, 50, (&Medicine{MinStockLevel: 50}).EffectiveMinStockLevel())
}
