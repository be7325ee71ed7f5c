package repositories

import (
	"RehabCare/cache"
	"RehabCare/database"
	"RehabCare/models"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	cache       *cache.Cache
	expenseRepo *ExpenseRepository
}

func NewPaymentRepository(cache *cache.Cache, expenseRepo *ExpenseRepository) *PaymentRepository {
	return &PaymentRepository{cache: cache, expenseRepo: expenseRepo}
}

// Create records a payment against an expense. The payment row and the
// expense's paid-amount update are committed together by the expense
// repository's transaction.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.Date == "" {
		payment.Date = time.Now().Format("2006-01-02")
	}
	return r.expenseRepo.ApplyPayment(ctx, payment)
}

func (r *PaymentRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payments []models.Payment
	if err := database.DB.Order("date DESC, created_at ASC").
		Find(&payments, "patient_id = ?", patientID).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments for patient: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payments []models.Payment
	if err := database.DB.Order("date DESC, created_at ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all payments: %w", err)
	}
	return payments, nil
}
