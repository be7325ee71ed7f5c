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
	PatientCacheExpiry = 7 * 24 * time.Hour
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}

	return withLock(ctx, fmt.Sprintf("patient_lock:%s", patient.ID), func() error {
		var count int64
		if err := database.DB.Model(&models.Patient{}).
			Where("registration_number = ?", patient.RegistrationNumber).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check registration number: %w", err)
		}
		if count > 0 {
			return errors.New("registration number already exists")
		}

		if err := database.DB.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return r.invalidate(ctx, patient.ID)
	})
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	r.cachePatient(ctx, cacheKey, &patient)
	return &patient, nil
}

// GetByRegistrationNumber looks a patient up by its alternate key.
func (r *PatientRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var patient models.Patient
	err := database.DB.First(&patient, "registration_number = ?", registrationNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient by registration number: %w", err)
	}
	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "patients_cache"
	cachedPatients, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	if err := database.DB.Order("created_at DESC").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return withLock(ctx, fmt.Sprintf("patient_lock:%s", patient.ID), func() error {
		var existing models.Patient
		if err := database.DB.First(&existing, "id = ?", patient.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("patient not found")
			}
			return fmt.Errorf("failed to find patient: %w", err)
		}

		if err := database.DB.Save(patient).Error; err != nil {
			return fmt.Errorf("failed to update patient: %w", err)
		}
		return r.invalidate(ctx, patient.ID)
	})
}

// Delete removes the patient record only. Expenses referencing the patient are
// intentionally left in place; orphaning is policy, not an oversight.
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("patient_lock:%s", id), func() error {
		result := database.DB.Delete(&models.Patient{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete patient: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.New("patient not found")
		}
		return r.invalidate(ctx, id)
	})
}

func (r *PatientRepository) cachePatient(ctx context.Context, cacheKey string, patient *models.Patient) {
	patientJSON, err := json.Marshal(patient)
	if err != nil {
		log.Printf("Failed to marshal patient: %v", err)
		return
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}
}

func (r *PatientRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache")
}

func (r *PatientRepository) getPatientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
