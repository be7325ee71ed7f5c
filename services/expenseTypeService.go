package services

import (
	"RehabCare/models"
	"RehabCare/repositories"
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ExpenseTypeService struct {
	repository *repositories.ExpenseTypeRepository
}

func NewExpenseTypeService(repository *repositories.ExpenseTypeRepository) *ExpenseTypeService {
	return &ExpenseTypeService{repository: repository}
}

func (s *ExpenseTypeService) Create(ctx context.Context, expenseType *models.ExpenseType) error {
	if err := validation.Validate(expenseType.Name, validation.Required, validation.Length(2, 50)); err != nil {
		return errors.New("expense type name is required")
	}
	return s.repository.Create(ctx, expenseType)
}

func (s *ExpenseTypeService) GetAll(ctx context.Context) ([]models.ExpenseType, error) {
	return s.repository.GetAll(ctx)
}
