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
	ExpenseGroupCacheExpiry = 7 * 24 * time.Hour
)

type ExpenseGroupRepository struct {
	cache *cache.Cache
}

func NewExpenseGroupRepository(cache *cache.Cache) *ExpenseGroupRepository {
	return &ExpenseGroupRepository{cache: cache}
}

func (r *ExpenseGroupRepository) Create(ctx context.Context, group *models.ExpenseGroup) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}

	return withLock(ctx, fmt.Sprintf("expense_group_lock:%s", group.ID), func() error {
		if err := database.DB.Create(group).Error; err != nil {
			return fmt.Errorf("failed to create expense group: %w", err)
		}
		return r.invalidate(ctx, group.ID)
	})
}

func (r *ExpenseGroupRepository) GetByID(ctx context.Context, id string) (*models.ExpenseGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getGroupCacheKey(id)
	cachedGroup, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var group models.ExpenseGroup
		if err := json.Unmarshal([]byte(cachedGroup), &group); err == nil {
			return &group, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get expense group from cache: %v", err)
	}

	var group models.ExpenseGroup
	err = database.DB.First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense group: %w", err)
	}

	if err := r.loadMemberIDs(&group); err != nil {
		return nil, err
	}

	groupJSON, err := json.Marshal(group)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expense group: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, groupJSON, ExpenseGroupCacheExpiry); err != nil {
		log.Printf("Failed to set expense group in cache: %v", err)
	}

	return &group, nil
}

func (r *ExpenseGroupRepository) GetAll(ctx context.Context) ([]models.ExpenseGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "expense_groups_cache"
	cachedGroups, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var groups []models.ExpenseGroup
		if err := json.Unmarshal([]byte(cachedGroups), &groups); err == nil {
			return groups, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get expense groups from cache: %v", err)
	}

	var groups []models.ExpenseGroup
	if err := database.DB.Order("date DESC, created_at ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to get all expense groups: %w", err)
	}
	for i := range groups {
		if err := r.loadMemberIDs(&groups[i]); err != nil {
			return nil, err
		}
	}

	groupsJSON, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expense groups: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, groupsJSON, ExpenseGroupCacheExpiry); err != nil {
		log.Printf("Failed to set expense groups in cache: %v", err)
	}

	return groups, nil
}

func (r *ExpenseGroupRepository) GetByPatient(ctx context.Context, patientID string) ([]models.ExpenseGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var groups []models.ExpenseGroup
	if err := database.DB.Order("date DESC, created_at ASC").
		Find(&groups, "patient_id = ?", patientID).Error; err != nil {
		return nil, fmt.Errorf("failed to get expense groups for patient: %w", err)
	}
	for i := range groups {
		if err := r.loadMemberIDs(&groups[i]); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// Delete removes the group and detaches its member expenses in one
// transaction. Member expenses are never deleted with the group.
func (r *ExpenseGroupRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("expense_group_lock:%s", id), func() error {
		var group models.ExpenseGroup
		if err := database.DB.First(&group, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("expense group not found")
			}
			return fmt.Errorf("failed to find expense group: %w", err)
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Expense{}).
				Where("expense_group_id = ?", id).
				Update("expense_group_id", "").Error; err != nil {
				return fmt.Errorf("failed to detach group expenses: %w", err)
			}
			if err := tx.Delete(&models.ExpenseGroup{}, "id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to delete expense group: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		if err := r.cache.DeleteAll(ctx, "expenses_cache"); err != nil {
			return fmt.Errorf("failed to delete all expenses cache: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *ExpenseGroupRepository) loadMemberIDs(group *models.ExpenseGroup) error {
	var expenseIDs []string
	if err := database.DB.Model(&models.Expense{}).
		Where("expense_group_id = ?", group.ID).
		Pluck("id", &expenseIDs).Error; err != nil {
		return fmt.Errorf("failed to load group member ids: %w", err)
	}
	group.ExpenseIDs = expenseIDs
	return nil
}

func (r *ExpenseGroupRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getGroupCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete expense group cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "expense_groups_cache")
}

func (r *ExpenseGroupRepository) getGroupCacheKey(id string) string {
	return fmt.Sprintf("expense_group_cache:%s", id)
}
