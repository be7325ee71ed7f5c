package repositories

import (
	"RehabCare/cache"
	"RehabCare/database"
	"RehabCare/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExpenseCacheExpiry = 7 * 24 * time.Hour
)

type ExpenseRepository struct {
	cache *cache.Cache
}

func NewExpenseRepository(cache *cache.Cache) *ExpenseRepository {
	return &ExpenseRepository{cache: cache}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	return withLock(ctx, fmt.Sprintf("expense_lock:%s", expense.ID), func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(expense).Error; err != nil {
				return fmt.Errorf("failed to create expense: %w", err)
			}
			if expense.ExpenseGroupID != "" {
				if err := adjustGroupTotals(tx, expense.ExpenseGroupID, expense.TotalAmount, expense.PaidAmount); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		if expense.ExpenseGroupID != "" {
			if err := r.invalidateGroup(ctx, expense.ExpenseGroupID); err != nil {
				return err
			}
		}
		return r.invalidate(ctx, expense.ID, expense.PatientID)
	})
}

// adjustGroupTotals shifts a group's cached totals by the given deltas.
func adjustGroupTotals(tx *gorm.DB, groupID string, totalDelta, paidDelta float64) error {
	result := tx.Model(&models.ExpenseGroup{}).
		Where("id = ?", groupID).
		Updates(map[string]interface{}{
			"total_amount": gorm.Expr("total_amount + ?", totalDelta),
			"paid_amount":  gorm.Expr("paid_amount + ?", paidDelta),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to adjust expense group totals: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("expense group not found")
	}
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getExpenseCacheKey(id)
	cachedExpense, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var expense models.Expense
		if err := json.Unmarshal([]byte(cachedExpense), &expense); err == nil {
			return &expense, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get expense from cache: %v", err)
	}

	var expense models.Expense
	err = database.DB.First(&expense, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	expenseJSON, err := json.Marshal(expense)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expense: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, expenseJSON, ExpenseCacheExpiry); err != nil {
		log.Printf("Failed to set expense in cache: %v", err)
	}

	return &expense, nil
}

func (r *ExpenseRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "expenses_cache"
	cachedExpenses, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var expenses []models.Expense
		if err := json.Unmarshal([]byte(cachedExpenses), &expenses); err == nil {
			return expenses, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get expenses from cache: %v", err)
	}

	var expenses []models.Expense
	if err := database.DB.Order("date DESC, created_at ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get all expenses: %w", err)
	}

	expensesJSON, err := json.Marshal(expenses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expenses: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, expensesJSON, ExpenseCacheExpiry); err != nil {
		log.Printf("Failed to set expenses in cache: %v", err)
	}

	return expenses, nil
}

func (r *ExpenseRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var expenses []models.Expense
	if err := database.DB.Order("date DESC, created_at ASC").
		Find(&expenses, "patient_id = ?", patientID).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses for patient: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) GetByGroup(ctx context.Context, groupID string) ([]models.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var expenses []models.Expense
	if err := database.DB.Order("date DESC, created_at ASC").
		Find(&expenses, "expense_group_id = ?", groupID).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses for group: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	return withLock(ctx, fmt.Sprintf("expense_lock:%s", expense.ID), func() error {
		var existing models.Expense
		if err := database.DB.First(&existing, "id = ?", expense.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("expense not found")
			}
			return fmt.Errorf("failed to find expense: %w", err)
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(expense).Error; err != nil {
				return fmt.Errorf("failed to update expense: %w", err)
			}
			// Keep cached group totals in step with the member's new amounts,
			// including moves between groups.
			switch {
			case existing.ExpenseGroupID == expense.ExpenseGroupID && expense.ExpenseGroupID != "":
				return adjustGroupTotals(tx, expense.ExpenseGroupID,
					expense.TotalAmount-existing.TotalAmount,
					expense.PaidAmount-existing.PaidAmount)
			case existing.ExpenseGroupID != expense.ExpenseGroupID:
				if existing.ExpenseGroupID != "" {
					if err := adjustGroupTotals(tx, existing.ExpenseGroupID, -existing.TotalAmount, -existing.PaidAmount); err != nil {
						return err
					}
				}
				if expense.ExpenseGroupID != "" {
					return adjustGroupTotals(tx, expense.ExpenseGroupID, expense.TotalAmount, expense.PaidAmount)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, groupID := range []string{existing.ExpenseGroupID, expense.ExpenseGroupID} {
			if groupID != "" {
				if err := r.invalidateGroup(ctx, groupID); err != nil {
					return err
				}
			}
		}
		return r.invalidate(ctx, expense.ID, expense.PatientID)
	})
}

// Delete removes an expense. When the expense belongs to an expense group the
// group's cached totals are decremented and the membership dropped in the same
// transaction, so the group stays consistent with its remaining members.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("expense_lock:%s", id), func() error {
		var expense models.Expense
		if err := database.DB.First(&expense, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("expense not found")
			}
			return fmt.Errorf("failed to find expense: %w", err)
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if expense.ExpenseGroupID != "" {
				if err := adjustGroupTotals(tx, expense.ExpenseGroupID, -expense.TotalAmount, -expense.PaidAmount); err != nil {
					return err
				}
			}
			if err := tx.Delete(&models.Expense{}, "id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		if expense.ExpenseGroupID != "" {
			if err := r.invalidateGroup(ctx, expense.ExpenseGroupID); err != nil {
				return err
			}
		}
		return r.invalidate(ctx, id, expense.PatientID)
	})
}

// ApplyPayment raises an expense's paid amount inside a transaction and
// re-derives its paid flag. The payment record itself is persisted by the
// payment repository in the same transaction.
func (r *ExpenseRepository) ApplyPayment(ctx context.Context, payment *models.Payment) error {
	return withLock(ctx, fmt.Sprintf("expense_lock:%s", payment.ExpenseID), func() error {
		var patientID string

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var expense models.Expense
			if err := tx.First(&expense, "id = ?", payment.ExpenseID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("expense not found")
				}
				return fmt.Errorf("failed to find expense: %w", err)
			}
			if expense.PatientID != payment.PatientID {
				return errors.New("payment patient does not match expense patient")
			}
			if expense.PaidAmount+payment.Amount > expense.TotalAmount {
				return errors.New("payment exceeds outstanding balance")
			}

			expense.PaidAmount += payment.Amount
			expense.IsPaid = expense.PaidAmount >= expense.TotalAmount
			patientID = expense.PatientID

			if err := tx.Save(&expense).Error; err != nil {
				return fmt.Errorf("failed to update expense payment: %w", err)
			}
			if err := tx.Create(payment).Error; err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		return r.invalidate(ctx, payment.ExpenseID, patientID)
	})
}

func (r *ExpenseRepository) invalidate(ctx context.Context, id, patientID string) error {
	if err := r.cache.Delete(ctx, r.getExpenseCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete expense cache: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "expenses_cache"); err != nil {
		return fmt.Errorf("failed to delete all expenses cache: %w", err)
	}
	if err := r.cache.Delete(ctx, fmt.Sprintf("patient_cache:%s", patientID)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache")
}

func (r *ExpenseRepository) invalidateGroup(ctx context.Context, groupID string) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("expense_group_cache:%s", groupID)); err != nil {
		return fmt.Errorf("failed to delete expense group cache: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "expense_groups_cache"); err != nil {
		return fmt.Errorf("failed to delete all expense groups cache: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) getExpenseCacheKey(id string) string {
	return fmt.Sprintf("expense_cache:%s", id)
}
