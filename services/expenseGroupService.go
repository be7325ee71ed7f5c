package services

import (
	"RehabCare/models"
	"RehabCare/repositories"
	"RehabCare/utils"
	"context"
	"errors"
)

type ExpenseGroupService struct {
	groupRepo   *repositories.ExpenseGroupRepository
	patientRepo *repositories.PatientRepository
}

func NewExpenseGroupService(groupRepo *repositories.ExpenseGroupRepository, patientRepo *repositories.PatientRepository) *ExpenseGroupService {
	return &ExpenseGroupService{groupRepo: groupRepo, patientRepo: patientRepo}
}

// Create adds a named batch for one patient. The group starts without member
// expenses; its initial totals come from the caller and grow as expenses are
// attached.
func (s *ExpenseGroupService) Create(ctx context.Context, group *models.ExpenseGroup) error {
	if err := utils.ValidateExpenseGroupData(*group); err != nil {
		return err
	}
	patient, err := s.patientRepo.GetByID(ctx, group.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return errors.New("patient not found")
	}
	return s.groupRepo.Create(ctx, group)
}

func (s *ExpenseGroupService) GetByID(ctx context.Context, id string) (*models.ExpenseGroup, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *ExpenseGroupService) GetAll(ctx context.Context) ([]models.ExpenseGroup, error) {
	return s.groupRepo.GetAll(ctx)
}

func (s *ExpenseGroupService) GetByPatient(ctx context.Context, patientID string) ([]models.ExpenseGroup, error) {
	return s.groupRepo.GetByPatient(ctx, patientID)
}

// Delete removes the group and ungroups its members; member expenses survive.
func (s *ExpenseGroupService) Delete(ctx context.Context, id string) error {
	return s.groupRepo.Delete(ctx, id)
}
