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
	ExpenseTypeCacheExpiry = 7 * 24 * time.Hour
)

type ExpenseTypeRepository struct {
	cache *cache.Cache
}

func NewExpenseTypeRepository(cache *cache.Cache) *ExpenseTypeRepository {
	return &ExpenseTypeRepository{cache: cache}
}

func (r *ExpenseTypeRepository) Create(ctx context.Context, expenseType *models.ExpenseType) error {
	if expenseType.ID == "" {
		expenseType.ID = uuid.New().String()
	}

	return withLock(ctx, fmt.Sprintf("expense_type_lock:%s", expenseType.ID), func() error {
		if err := database.DB.Create(expenseType).Error; err != nil {
			return fmt.Errorf("failed to create expense type: %w", err)
		}
		return r.cache.Delete(ctx, "expense_types_cache")
	})
}

func (r *ExpenseTypeRepository) GetByID(ctx context.Context, id string) (*models.ExpenseType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var expenseType models.ExpenseType
	err := database.DB.First(&expenseType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense type: %w", err)
	}
	return &expenseType, nil
}

func (r *ExpenseTypeRepository) GetAll(ctx context.Context) ([]models.ExpenseType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "expense_types_cache"
	cachedTypes, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var expenseTypes []models.ExpenseType
		if err := json.Unmarshal([]byte(cachedTypes), &expenseTypes); err == nil {
			return expenseTypes, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get expense types from cache: %v", err)
	}

	var expenseTypes []models.ExpenseType
	if err := database.DB.Order("name ASC").Find(&expenseTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all expense types: %w", err)
	}

	typesJSON, err := json.Marshal(expenseTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expense types: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, typesJSON, ExpenseTypeCacheExpiry); err != nil {
		log.Printf("Failed to set expense types in cache: %v", err)
	}

	return expenseTypes, nil
}
