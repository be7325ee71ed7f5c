package services

import (
	"testing"

	"RehabCare/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeExpenseAmounts(t *testing.T) {
	expense := models.Expense{Quantity: 4, UnitPrice: 12.5, PaidAmount: 0}
	ComputeExpenseAmounts(&expense)
	assert.Equal(t, 50.0, expense.TotalAmount)
	assert.False(t, expense.IsPaid)

	// Editing quantity or unit price re-derives the total.
	expense.Quantity = 3
	expense.UnitPrice = 10
	ComputeExpenseAmounts(&expense)
	assert.Equal(t, 30.0, expense.TotalAmount)

	expense.PaidAmount = 30
	ComputeExpenseAmounts(&expense)
	assert.True(t, expense.IsPaid)
}

func TestComputeExpenseAmounts_ZeroTotalIsNeverPaid(t *testing.T) {
	expense := models.Expense{Quantity: 1, UnitPrice: 0, PaidAmount: 0}
	ComputeExpenseAmounts(&expense)
	assert.Equal(t, 0.0, expense.TotalAmount)
	assert.False(t, expense.IsPaid)
}

func TestBuildExpenseReport(t *testing.T) {
	expenses := []models.Expense{
		{ExpenseTypeName: "Medicine", Date: "2024-03-15", TotalAmount: 100, PaidAmount: 100},
		{ExpenseTypeName: "Medicine", Date: "2024-03-16", TotalAmount: 50, PaidAmount: 0},
		{ExpenseTypeName: "Rehab Session", Date: "2024-03-15", TotalAmount: 200, PaidAmount: 80},
		{ExpenseTypeName: "Lab Test", Date: "2024-02-01", TotalAmount: 75, PaidAmount: 75},
	}

	report := BuildExpenseReport(expenses, "2024-03-01", "")
	assert.Equal(t, 350.0, report.TotalAmount)
	assert.Equal(t, 180.0, report.PaidAmount)

	// Largest type first.
	assert.Len(t, report.ByType, 2)
	assert.Equal(t, "Rehab Session", report.ByType[0].ExpenseTypeName)
	assert.Equal(t, "Medicine", report.ByType[1].ExpenseTypeName)
	assert.Equal(t, 2, report.ByType[1].Count)
	assert.Equal(t, 150.0, report.ByType[1].TotalAmount)

	// Newest date first.
	assert.Len(t, report.ByDate, 2)
	assert.Equal(t, "2024-03-16", report.ByDate[0].Date)
	assert.Equal(t, 300.0, report.ByDate[1].TotalAmount)
}
