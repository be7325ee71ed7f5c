package services

import (
	"testing"

	"RehabCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		name        string
		totalAmount float64
		paidAmount  float64
		want        string
	}{
		{"nothing paid", 200, 0, StatusPending},
		{"partially paid", 200, 50, StatusPartial},
		{"fully paid", 200, 200, StatusPaid},
		{"overpaid", 200, 200.01, StatusAdvance},
		{"zero-amount bill is pending, not paid", 0, 0, StatusPending},
		{"advance on zero-amount bill", 0, 10, StatusAdvance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentStatus(tt.totalAmount, tt.paidAmount))
		})
	}
}

func TestBuildBills_GroupsByRegistrationAndDate(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", Name: "Asha Verma", RegistrationNumber: "REG-001"},
	}
	expenses := []models.Expense{
		{ID: "e1", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-15", TotalAmount: 50, PaidAmount: 50},
		{ID: "e2", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-15", TotalAmount: 150, PaidAmount: 0},
	}

	bills := BuildBills(expenses, patients, BillFilter{})
	require.Len(t, bills, 1)

	bill := bills[0]
	assert.Equal(t, "REG-001-2024-03-15", bill.ID)
	assert.Equal(t, "Asha Verma", bill.PatientName)
	assert.Equal(t, "2024-03-15", bill.BillDate)
	assert.Len(t, bill.Expenses, 2)
	assert.Equal(t, 200.0, bill.TotalAmount)
	assert.Equal(t, 50.0, bill.PaidAmount)
	assert.Equal(t, StatusPartial, bill.Status)
}

func TestBuildBills_SeparatesDatesAndPatients(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", Name: "Asha Verma", RegistrationNumber: "REG-001"},
		{ID: "p2", Name: "Ravi Nair", RegistrationNumber: "REG-002"},
	}
	expenses := []models.Expense{
		{ID: "e1", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-15", TotalAmount: 100},
		{ID: "e2", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-16", TotalAmount: 100},
		{ID: "e3", PatientID: "p2", RegistrationNumber: "REG-002", Date: "2024-03-15", TotalAmount: 100},
	}

	bills := BuildBills(expenses, patients, BillFilter{})
	require.Len(t, bills, 3)

	// Newest first; the two same-date bills keep their first-seen order.
	assert.Equal(t, "REG-001-2024-03-16", bills[0].ID)
	assert.Equal(t, "REG-001-2024-03-15", bills[1].ID)
	assert.Equal(t, "REG-002-2024-03-15", bills[2].ID)
}

func TestBuildBills_IsIdempotent(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", Name: "Asha Verma", RegistrationNumber: "REG-001"},
		{ID: "p2", Name: "Ravi Nair", RegistrationNumber: "REG-002"},
	}
	expenses := []models.Expense{
		{ID: "e1", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-15", TotalAmount: 100, PaidAmount: 40},
		{ID: "e2", PatientID: "p2", RegistrationNumber: "REG-002", Date: "2024-03-14", TotalAmount: 60, PaidAmount: 60},
		{ID: "e3", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-15", TotalAmount: 25, PaidAmount: 0},
	}

	first := BuildBills(expenses, patients, BillFilter{})
	second := BuildBills(expenses, patients, BillFilter{})
	assert.Equal(t, first, second)
}

func TestBuildBills_SearchFilter(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", Name: "Asha Verma", RegistrationNumber: "REG-001"},
		{ID: "p2", Name: "Ravi Nair", RegistrationNumber: "REG-002"},
	}
	expenses := []models.Expense{
		{ID: "e1", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-15", TotalAmount: 100},
		{ID: "e2", PatientID: "p2", RegistrationNumber: "REG-002", Date: "2024-03-15", TotalAmount: 100},
	}

	byName := BuildBills(expenses, patients, BillFilter{Search: "asha"})
	require.Len(t, byName, 1)
	assert.Equal(t, "REG-001", byName[0].RegistrationNumber)

	byRegistration := BuildBills(expenses, patients, BillFilter{Search: "reg-002"})
	require.Len(t, byRegistration, 1)
	assert.Equal(t, "Ravi Nair", byRegistration[0].PatientName)

	none := BuildBills(expenses, patients, BillFilter{Search: "zzz"})
	assert.Empty(t, none)
}

func TestBuildBills_DateRangeFilterIsInclusive(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", Name: "Asha Verma", RegistrationNumber: "REG-001"},
	}
	expenses := []models.Expense{
		{ID: "e1", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-14", TotalAmount: 10},
		{ID: "e2", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-15", TotalAmount: 20},
		{ID: "e3", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-16", TotalAmount: 30},
	}

	bounded := BuildBills(expenses, patients, BillFilter{StartDate: "2024-03-15", EndDate: "2024-03-16"})
	require.Len(t, bounded, 2)
	assert.Equal(t, "2024-03-16", bounded[0].BillDate)
	assert.Equal(t, "2024-03-15", bounded[1].BillDate)

	openStart := BuildBills(expenses, patients, BillFilter{EndDate: "2024-03-14"})
	require.Len(t, openStart, 1)
	assert.Equal(t, "2024-03-14", openStart[0].BillDate)

	openEnd := BuildBills(expenses, patients, BillFilter{StartDate: "2024-03-16"})
	require.Len(t, openEnd, 1)
	assert.Equal(t, "2024-03-16", openEnd[0].BillDate)
}

func TestSummarizePatients(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", Name: "Asha Verma", RegistrationNumber: "REG-001"},
		{ID: "p2", Name: "Ravi Nair", RegistrationNumber: "REG-002"},
	}
	expenses := []models.Expense{
		{ID: "e1", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-15", TotalAmount: 100, PaidAmount: 100},
		{ID: "e2", PatientID: "p1", RegistrationNumber: "REG-001", Date: "2024-03-20", TotalAmount: 300, PaidAmount: 0},
		{ID: "e3", PatientID: "p2", RegistrationNumber: "REG-002", Date: "2024-03-18", TotalAmount: 50, PaidAmount: 50},
	}

	summaries := SummarizePatients(BuildBills(expenses, patients, BillFilter{}))
	require.Len(t, summaries, 2)

	byID := make(map[string]PatientBillingSummary)
	for _, summary := range summaries {
		byID[summary.PatientID] = summary
	}

	asha := byID["p1"]
	assert.Equal(t, 2, asha.TotalBills)
	assert.Equal(t, 400.0, asha.TotalAmount)
	assert.Equal(t, 100.0, asha.PaidAmount)
	assert.Equal(t, 300.0, asha.PendingAmount)
	assert.Equal(t, "2024-03-20", asha.LastBillDate)
	// One bill is paid and one pending, but the aggregate is partial.
	assert.Equal(t, StatusPartial, asha.Status)

	ravi := byID["p2"]
	assert.Equal(t, 1, ravi.TotalBills)
	assert.Equal(t, 0.0, ravi.PendingAmount)
	assert.Equal(t, StatusPaid, ravi.Status)
}
