package services

import (
	"RehabCare/models"
	"RehabCare/repositories"
	"RehabCare/utils"
	"context"
	"errors"
	"sort"
	"strings"
)

// Payment status values derived from (totalAmount, paidAmount).
const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
	StatusAdvance = "advance"
)

// Bill is a read-time grouping of one patient's expenses sharing a date. It
// is never persisted; it is re-derived from the expense collection on every
// request.
type Bill struct {
	ID                 string           `json:"id"`
	PatientID          string           `json:"patient_id"`
	PatientName        string           `json:"patient_name"`
	RegistrationNumber string           `json:"registration_number"`
	BillDate           string           `json:"bill_date"`
	Expenses           []models.Expense `json:"expenses"`
	TotalAmount        float64          `json:"total_amount"`
	PaidAmount         float64          `json:"paid_amount"`
	Status             string           `json:"status"`
}

// PatientBillingSummary rolls a patient's bills up into one aggregate row.
type PatientBillingSummary struct {
	PatientID          string  `json:"patient_id"`
	PatientName        string  `json:"patient_name"`
	RegistrationNumber string  `json:"registration_number"`
	TotalBills         int     `json:"total_bills"`
	TotalAmount        float64 `json:"total_amount"`
	PaidAmount         float64 `json:"paid_amount"`
	PendingAmount      float64 `json:"pending_amount"`
	LastBillDate       string  `json:"last_bill_date"`
	Status             string  `json:"status"`
}

// BillFilter narrows the expense collection before aggregation. Search
// matches case-insensitively against patient name and registration number;
// an absent date bound leaves that side unconstrained.
type BillFilter struct {
	Search    string
	StartDate string
	EndDate   string
}

// PaymentStatus derives the four-way payment status. The zero check on paid
// comes first so a zero-amount bill resolves to pending, not paid.
func PaymentStatus(totalAmount, paidAmount float64) string {
	switch {
	case paidAmount == 0:
		return StatusPending
	case paidAmount > totalAmount:
		return StatusAdvance
	case paidAmount == totalAmount:
		return StatusPaid
	default:
		return StatusPartial
	}
}

// BuildBills groups expenses into bills keyed on registration number plus
// date, sums their amounts, derives each bill's status and returns the bills
// newest-first. The sort is stable: same-date bills keep their first-seen
// order, so repeated derivations over an unchanged collection are identical.
func BuildBills(expenses []models.Expense, patients []models.Patient, filter BillFilter) []Bill {
	nameByRegistration := make(map[string]string, len(patients))
	idByRegistration := make(map[string]string, len(patients))
	for _, patient := range patients {
		nameByRegistration[patient.RegistrationNumber] = patient.Name
		idByRegistration[patient.RegistrationNumber] = patient.ID
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	billByKey := make(map[string]*Bill)
	var order []string
	for _, expense := range expenses {
		if !withinRange(expense.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		if search != "" {
			name := strings.ToLower(nameByRegistration[expense.RegistrationNumber])
			registration := strings.ToLower(expense.RegistrationNumber)
			if !strings.Contains(name, search) && !strings.Contains(registration, search) {
				continue
			}
		}

		key := expense.RegistrationNumber + "-" + expense.Date
		bill, ok := billByKey[key]
		if !ok {
			bill = &Bill{
				ID:                 key,
				PatientID:          idByRegistration[expense.RegistrationNumber],
				PatientName:        nameByRegistration[expense.RegistrationNumber],
				RegistrationNumber: expense.RegistrationNumber,
				BillDate:           expense.Date,
			}
			if bill.PatientID == "" {
				// Orphaned expense: the owning patient was deleted. The bill
				// still renders from the denormalized fields.
				bill.PatientID = expense.PatientID
			}
			billByKey[key] = bill
			order = append(order, key)
		}
		bill.Expenses = append(bill.Expenses, expense)
		bill.TotalAmount += expense.TotalAmount
		bill.PaidAmount += expense.PaidAmount
	}

	bills := make([]Bill, 0, len(order))
	for _, key := range order {
		bill := billByKey[key]
		bill.Status = PaymentStatus(bill.TotalAmount, bill.PaidAmount)
		bills = append(bills, *bill)
	}

	// Dates are YYYY-MM-DD, so lexicographic order is chronological.
	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].BillDate > bills[j].BillDate
	})

	return bills
}

// SummarizePatients rolls bills up one more level to a per-patient summary.
// The summary status is derived from the patient's aggregate totals,
// independent of the individual bill statuses.
func SummarizePatients(bills []Bill) []PatientBillingSummary {
	summaryByPatient := make(map[string]*PatientBillingSummary)
	var order []string
	for _, bill := range bills {
		summary, ok := summaryByPatient[bill.PatientID]
		if !ok {
			summary = &PatientBillingSummary{
				PatientID:          bill.PatientID,
				PatientName:        bill.PatientName,
				RegistrationNumber: bill.RegistrationNumber,
			}
			summaryByPatient[bill.PatientID] = summary
			order = append(order, bill.PatientID)
		}
		summary.TotalBills++
		summary.TotalAmount += bill.TotalAmount
		summary.PaidAmount += bill.PaidAmount
		summary.PendingAmount += bill.TotalAmount - bill.PaidAmount
		if bill.BillDate > summary.LastBillDate {
			summary.LastBillDate = bill.BillDate
		}
	}

	summaries := make([]PatientBillingSummary, 0, len(order))
	for _, patientID := range order {
		summary := summaryByPatient[patientID]
		summary.Status = PaymentStatus(summary.TotalAmount, summary.PaidAmount)
		summaries = append(summaries, *summary)
	}
	return summaries
}

// withinRange reports whether date falls inside [start, end]; empty bounds
// are unconstrained.
func withinRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

type BillingService struct {
	expenseRepo *repositories.ExpenseRepository
	patientRepo *repositories.PatientRepository
	paymentRepo *repositories.PaymentRepository
}

func NewBillingService(expenseRepo *repositories.ExpenseRepository, patientRepo *repositories.PatientRepository, paymentRepo *repositories.PaymentRepository) *BillingService {
	return &BillingService{expenseRepo: expenseRepo, patientRepo: patientRepo, paymentRepo: paymentRepo}
}

// GetBills derives the filtered bill list from the current expense collection.
func (s *BillingService) GetBills(ctx context.Context, filter BillFilter) ([]Bill, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := s.patientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildBills(expenses, patients, filter), nil
}

// GetPatientSummaries derives per-patient billing summaries.
func (s *BillingService) GetPatientSummaries(ctx context.Context, filter BillFilter) ([]PatientBillingSummary, error) {
	bills, err := s.GetBills(ctx, filter)
	if err != nil {
		return nil, err
	}
	return SummarizePatients(bills), nil
}

// GenerateForPatient derives the bills for a single patient.
func (s *BillingService) GenerateForPatient(ctx context.Context, patientID string) ([]Bill, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient not found")
	}

	expenses, err := s.expenseRepo.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return BuildBills(expenses, []models.Patient{*patient}, BillFilter{}), nil
}

// RecordPayment validates and persists a payment against an expense.
func (s *BillingService) RecordPayment(ctx context.Context, payment *models.Payment) error {
	if err := utils.ValidatePaymentData(*payment); err != nil {
		return err
	}
	return s.paymentRepo.Create(ctx, payment)
}

// GetPayments returns all recorded payments.
func (s *BillingService) GetPayments(ctx context.Context) ([]models.Payment, error) {
	return s.paymentRepo.GetAll(ctx)
}
