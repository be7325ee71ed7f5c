package utils

import (
	"testing"

	"RehabCare/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePatientData(t *testing.T) {
	patient := models.Patient{
		Name:               "Asha Verma",
		RegistrationNumber: "REG-001",
		Age:                34,
		Gender:             "Female",
		StartDate:          "2024-01-10",
		IsActive:           true,
	}
	assert.NoError(t, ValidatePatientData(patient))

	patient.Gender = "Unknown"
	assert.Error(t, ValidatePatientData(patient))

	patient.Gender = "Female"
	patient.EndDate = "2024-06-01"
	assert.ErrorIs(t, ValidatePatientData(patient), ErrActivePatientEndDate)

	patient.IsActive = false
	assert.NoError(t, ValidatePatientData(patient))
}

func TestValidateExpenseData(t *testing.T) {
	expense := models.Expense{
		PatientID:     "p1",
		ExpenseTypeID: "et-medicine",
		Description:   "Paracetamol 500mg",
		Date:          "2024-03-15",
		Quantity:      2,
		UnitPrice:     2.5,
	}
	assert.NoError(t, ValidateExpenseData(expense))

	expense.Quantity = 0
	assert.Error(t, ValidateExpenseData(expense))

	expense.Quantity = 2
	expense.PaidAmount = 10
	assert.ErrorIs(t, ValidateExpenseData(expense), ErrPaidExceedsTotal)

	expense.PaidAmount = 0
	expense.Date = "15-03-2024"
	assert.Error(t, ValidateExpenseData(expense))
}

func TestValidateRestockData(t *testing.T) {
	assert.NoError(t, ValidateRestockData(models.RestockRecord{Quantity: 10, UnitPrice: 5.0}))
	assert.Error(t, ValidateRestockData(models.RestockRecord{Quantity: 0, UnitPrice: 5.0}))
	assert.Error(t, ValidateRestockData(models.RestockRecord{Quantity: 10, UnitPrice: 0}))
	assert.Error(t, ValidateRestockData(models.RestockRecord{Quantity: -3, UnitPrice: 5.0}))
}

func TestValidateExpenseGroupData(t *testing.T) {
	group := models.ExpenseGroup{
		PatientID: "p1",
		Name:      "November 2025 Rehab",
		Date:      "2025-11-01",
	}
	assert.NoError(t, ValidateExpenseGroupData(group))

	group.Name = ""
	assert.Error(t, ValidateExpenseGroupData(group))

	group.Name = "November 2025 Rehab"
	group.PatientID = ""
	assert.Error(t, ValidateExpenseGroupData(group))
}

func TestValidatePaymentData(t *testing.T) {
	payment := models.Payment{
		PatientID: "p1",
		ExpenseID: "e1",
		Amount:    50,
		Date:      "2024-03-15",
		Method:    "UPI",
	}
	assert.NoError(t, ValidatePaymentData(payment))

	payment.Method = "Barter"
	assert.Error(t, ValidatePaymentData(payment))

	payment.Method = "Cash"
	payment.Amount = 0
	assert.Error(t, ValidatePaymentData(payment))
}
