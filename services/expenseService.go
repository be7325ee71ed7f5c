package services

import (
	"RehabCare/models"
	"RehabCare/repositories"
	"RehabCare/utils"
	"context"
	"errors"
)

type ExpenseService struct {
	expenseRepo     *repositories.ExpenseRepository
	patientRepo     *repositories.PatientRepository
	expenseTypeRepo *repositories.ExpenseTypeRepository
}

func NewExpenseService(expenseRepo *repositories.ExpenseRepository, patientRepo *repositories.PatientRepository, expenseTypeRepo *repositories.ExpenseTypeRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:     expenseRepo,
		patientRepo:     patientRepo,
		expenseTypeRepo: expenseTypeRepo,
	}
}

// Create validates the expense against its owning patient and expense type,
// fills the denormalized fields and recomputes the derived amounts.
func (s *ExpenseService) Create(ctx context.Context, expense *models.Expense) error {
	if err := s.prepare(ctx, expense); err != nil {
		return err
	}
	return s.expenseRepo.Create(ctx, expense)
}

// Update revalidates and recomputes the derived amounts, keeping the
// totalAmount invariant after every mutation.
func (s *ExpenseService) Update(ctx context.Context, expense *models.Expense) error {
	if err := s.prepare(ctx, expense); err != nil {
		return err
	}
	return s.expenseRepo.Update(ctx, expense)
}

func (s *ExpenseService) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	return s.expenseRepo.GetByID(ctx, id)
}

func (s *ExpenseService) GetAll(ctx context.Context) ([]models.Expense, error) {
	return s.expenseRepo.GetAll(ctx)
}

func (s *ExpenseService) GetByPatient(ctx context.Context, patientID string) ([]models.Expense, error) {
	return s.expenseRepo.GetByPatient(ctx, patientID)
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.expenseRepo.Delete(ctx, id)
}

// prepare runs the shared create/update pipeline: payload validation, patient
// and expense type resolution, registration number check, derived fields.
func (s *ExpenseService) prepare(ctx context.Context, expense *models.Expense) error {
	if err := utils.ValidateExpenseData(*expense); err != nil {
		return err
	}

	patient, err := s.patientRepo.GetByID(ctx, expense.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return errors.New("patient not found")
	}
	if expense.RegistrationNumber != "" && expense.RegistrationNumber != patient.RegistrationNumber {
		return errors.New("registration number does not match patient")
	}
	expense.RegistrationNumber = patient.RegistrationNumber

	expenseType, err := s.expenseTypeRepo.GetByID(ctx, expense.ExpenseTypeID)
	if err != nil {
		return err
	}
	if expenseType == nil {
		return errors.New("expense type not found")
	}
	expense.ExpenseTypeName = expenseType.Name

	ComputeExpenseAmounts(expense)
	return nil
}

// ComputeExpenseAmounts re-derives totalAmount from quantity and unit price
// and the paid flag from the amounts. Runs on every create and update.
func ComputeExpenseAmounts(expense *models.Expense) {
	expense.TotalAmount = float64(expense.Quantity) * expense.UnitPrice
	expense.IsPaid = expense.TotalAmount > 0 && expense.PaidAmount >= expense.TotalAmount
}
