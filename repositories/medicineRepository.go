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
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MedicineCacheExpiry = 7 * 24 * time.Hour
)

type MedicineRepository struct {
	cache *cache.Cache
}

func NewMedicineRepository(cache *cache.Cache) *MedicineRepository {
	return &MedicineRepository{cache: cache}
}

func (r *MedicineRepository) Create(ctx context.Context, medicine *models.Medicine) error {
	if medicine.ID == "" {
		medicine.ID = uuid.New().String()
	}
	if medicine.DateAdded == "" {
		medicine.DateAdded = time.Now().Format("2006-01-02")
	}

	return withLock(ctx, fmt.Sprintf("medicine_lock:%s", medicine.ID), func() error {
		if err := database.DB.Create(medicine).Error; err != nil {
			return fmt.Errorf("failed to create medicine: %w", err)
		}
		return r.invalidate(ctx, medicine.ID)
	})
}

func (r *MedicineRepository) GetByID(ctx context.Context, id string) (*models.Medicine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getMedicineCacheKey(id)
	cachedMedicine, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var medicine models.Medicine
		if err := json.Unmarshal([]byte(cachedMedicine), &medicine); err == nil {
			return &medicine, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get medicine from cache: %v", err)
	}

	var medicine models.Medicine
	err = database.DB.
		Preload("RestockHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&medicine, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}

	medicineJSON, err := json.Marshal(medicine)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal medicine: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, medicineJSON, MedicineCacheExpiry); err != nil {
		log.Printf("Failed to set medicine in cache: %v", err)
	}

	return &medicine, nil
}

func (r *MedicineRepository) GetAll(ctx context.Context) ([]models.Medicine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "medicines_cache"
	cachedMedicines, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var medicines []models.Medicine
		if err := json.Unmarshal([]byte(cachedMedicines), &medicines); err == nil {
			return medicines, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get medicines from cache: %v", err)
	}

	var medicines []models.Medicine
	if err := database.DB.
		Preload("RestockHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("name ASC").
		Find(&medicines).Error; err != nil {
		return nil, fmt.Errorf("failed to get all medicines: %w", err)
	}

	medicinesJSON, err := json.Marshal(medicines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal medicines: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, medicinesJSON, MedicineCacheExpiry); err != nil {
		log.Printf("Failed to set medicines in cache: %v", err)
	}

	return medicines, nil
}

func (r *MedicineRepository) Update(ctx context.Context, medicine *models.Medicine) error {
	return withLock(ctx, fmt.Sprintf("medicine_lock:%s", medicine.ID), func() error {
		var existing models.Medicine
		if err := database.DB.First(&existing, "id = ?", medicine.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("medicine not found")
			}
			return fmt.Errorf("failed to find medicine: %w", err)
		}

		if err := database.DB.Save(medicine).Error; err != nil {
			return fmt.Errorf("failed to update medicine: %w", err)
		}
		return r.invalidate(ctx, medicine.ID)
	})
}

func (r *MedicineRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("medicine_lock:%s", id), func() error {
		result := database.DB.Delete(&models.Medicine{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete medicine: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.New("medicine not found")
		}
		return r.invalidate(ctx, id)
	})
}

// Restock appends an immutable restock record and applies the stock, price,
// expiry and batch updates to the medicine in one transaction. Either the
// whole restock lands or none of it does.
func (r *MedicineRepository) Restock(ctx context.Context, medicineID string, record models.RestockRecord) (*models.Medicine, error) {
	record.ID = uuid.New().String()
	record.MedicineID = medicineID
	if record.Date == "" {
		record.Date = time.Now().Format("2006-01-02")
	}

	var restocked models.Medicine
	err := withLock(ctx, fmt.Sprintf("medicine_lock:%s", medicineID), func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var medicine models.Medicine
			if err := tx.First(&medicine, "id = ?", medicineID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("medicine not found")
				}
				return fmt.Errorf("failed to find medicine: %w", err)
			}

			medicine.ApplyRestock(record)

			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to create restock record: %w", err)
			}
			if err := tx.Model(&models.Medicine{}).
				Where("id = ?", medicineID).
				Updates(map[string]interface{}{
					"stock":        medicine.Stock,
					"price":        medicine.Price,
					"expiry_date":  medicine.ExpiryDate,
					"batch_number": medicine.BatchNumber,
				}).Error; err != nil {
				return fmt.Errorf("failed to update medicine: %w", err)
			}

			restocked = medicine
			return nil
		})
		if err != nil {
			return err
		}
		return r.invalidate(ctx, medicineID)
	})
	if err != nil {
		return nil, err
	}
	return &restocked, nil
}

// CategoryExists reports whether a category with the given name already
// exists, ignoring case, so "Pain Relief" and "pain relief" are one category.
func (r *MedicineRepository) CategoryExists(ctx context.Context, category string) (bool, error) {
	var count int64
	if err := database.DB.Model(&models.Medicine{}).
		Where("LOWER(category) = ?", strings.ToLower(category)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return count > 0, nil
}

// GetCategories returns the distinct category names in use.
func (r *MedicineRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := database.DB.Model(&models.Medicine{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (r *MedicineRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getMedicineCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete medicine cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "medicines_cache")
}

func (r *MedicineRepository) getMedicineCacheKey(id string) string {
	return fmt.Sprintf("medicine_cache:%s", id)
}
