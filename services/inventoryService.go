package services

import (
	"RehabCare/models"
	"RehabCare/repositories"
	"RehabCare/utils"
	"context"
	"errors"
	"time"
)

// Expiry buckets computed against the current date.
const (
	ExpiryActive     = "active"
	ExpiryNear       = "near-expiry"
	ExpiryExpired    = "expired"
	NearExpiryWindow = 30 // days
	CriticalStock    = 10
)

// MedicineStatus pairs a medicine with its derived freshness and stock flags.
type MedicineStatus struct {
	Medicine        models.Medicine `json:"medicine"`
	ExpiryStatus    string          `json:"expiry_status"`
	DaysUntilExpiry *int            `json:"days_until_expiry,omitempty"`
	LowStock        bool            `json:"low_stock"`
	CriticalStock   bool            `json:"critical_stock"`
}

// InventoryAlerts is the stock/expiry report served by the alerts endpoint.
type InventoryAlerts struct {
	Expired    []MedicineStatus `json:"expired"`
	NearExpiry []MedicineStatus `json:"near_expiry"`
	LowStock   []MedicineStatus `json:"low_stock"`
}

// ClassifyMedicine derives the expiry bucket and stock flags for a medicine
// as of today. A medicine without an expiry date is always active; low stock
// is a cross-cutting flag, independent of the expiry bucket.
func ClassifyMedicine(medicine models.Medicine, today time.Time) MedicineStatus {
	status := MedicineStatus{
		Medicine:      medicine,
		ExpiryStatus:  ExpiryActive,
		LowStock:      medicine.Stock < medicine.EffectiveMinStockLevel(),
		CriticalStock: medicine.Stock < CriticalStock,
	}

	if medicine.ExpiryDate == "" {
		return status
	}
	expiry, err := time.Parse(utils.DateLayout, medicine.ExpiryDate)
	if err != nil {
		return status
	}

	days := daysBetween(today, expiry)
	status.DaysUntilExpiry = &days
	switch {
	case days < 0:
		status.ExpiryStatus = ExpiryExpired
	case days <= NearExpiryWindow:
		status.ExpiryStatus = ExpiryNear
	}
	return status
}

// BuildInventoryAlerts classifies every medicine and buckets the ones that
// need attention.
func BuildInventoryAlerts(medicines []models.Medicine, today time.Time) InventoryAlerts {
	var alerts InventoryAlerts
	for _, medicine := range medicines {
		status := ClassifyMedicine(medicine, today)
		switch status.ExpiryStatus {
		case ExpiryExpired:
			alerts.Expired = append(alerts.Expired, status)
		case ExpiryNear:
			alerts.NearExpiry = append(alerts.NearExpiry, status)
		}
		if status.LowStock {
			alerts.LowStock = append(alerts.LowStock, status)
		}
	}
	return alerts
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

type InventoryService struct {
	repository *repositories.MedicineRepository
}

func NewInventoryService(repository *repositories.MedicineRepository) *InventoryService {
	return &InventoryService{repository: repository}
}

// Create adds a medicine. A new category is only admitted when no existing
// category matches it case-insensitively.
func (s *InventoryService) Create(ctx context.Context, medicine *models.Medicine) error {
	if err := utils.ValidateMedicineData(*medicine); err != nil {
		return err
	}
	return s.repository.Create(ctx, medicine)
}

// CreateCategory checks the case-insensitive uniqueness rule for a new
// category name.
func (s *InventoryService) CreateCategory(ctx context.Context, category string) error {
	if category == "" {
		return errors.New("category name is required")
	}
	exists, err := s.repository.CategoryExists(ctx, category)
	if err != nil {
		return err
	}
	if exists {
		return errors.New("category already exists")
	}
	return nil
}

func (s *InventoryService) GetByID(ctx context.Context, id string) (*models.Medicine, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *InventoryService) GetAll(ctx context.Context) ([]models.Medicine, error) {
	return s.repository.GetAll(ctx)
}

func (s *InventoryService) GetCategories(ctx context.Context) ([]string, error) {
	return s.repository.GetCategories(ctx)
}

func (s *InventoryService) Update(ctx context.Context, medicine *models.Medicine) error {
	if err := utils.ValidateMedicineData(*medicine); err != nil {
		return err
	}
	return s.repository.Update(ctx, medicine)
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

// Restock validates the restock payload and applies it atomically. A failed
// validation mutates nothing.
func (s *InventoryService) Restock(ctx context.Context, medicineID string, record models.RestockRecord) (*models.Medicine, error) {
	if err := utils.ValidateRestockData(record); err != nil {
		return nil, err
	}
	return s.repository.Restock(ctx, medicineID, record)
}

// Alerts derives the expired/near-expiry/low-stock report as of now.
func (s *InventoryService) Alerts(ctx context.Context) (InventoryAlerts, error) {
	medicines, err := s.repository.GetAll(ctx)
	if err != nil {
		return InventoryAlerts{}, err
	}
	return BuildInventoryAlerts(medicines, time.Now()), nil
}

// Statuses classifies every medicine for listing views.
func (s *InventoryService) Statuses(ctx context.Context) ([]MedicineStatus, error) {
	medicines, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	statuses := make([]MedicineStatus, 0, len(medicines))
	for _, medicine := range medicines {
		statuses = append(statuses, ClassifyMedicine(medicine, time.Now()))
	}
	return statuses, nil
}
