package utils

import (
	"RehabCare/models"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation errors
var (
	ErrActivePatientEndDate = errors.New("an active patient cannot have an end date")
	ErrPaidExceedsTotal     = errors.New("paid amount cannot exceed total amount")
)

// DateLayout is the wire format for all clinic dates.
const DateLayout = "2006-01-02"

// ValidatePatientData validates a patient payload using ozzo-validation.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&patient.RegistrationNumber, validation.Required),
		validation.Field(&patient.Age, validation.Min(0), validation.Max(130)),
		validation.Field(&patient.Gender, validation.Required, validation.In("Male", "Female", "Other")),
		validation.Field(&patient.StartDate, validation.Required, validation.By(validateDate)),
		validation.Field(&patient.EndDate, validation.By(validateOptionalDate)),
	)
	if err != nil {
		return err
	}
	if patient.IsActive && patient.EndDate != "" {
		return ErrActivePatientEndDate
	}
	return nil
}

// ValidateExpenseData validates an expense payload. The derived TotalAmount is
// not validated here; it is recomputed by the service on every write.
func ValidateExpenseData(expense models.Expense) error {
	err := validation.ValidateStruct(&expense,
		validation.Field(&expense.PatientID, validation.Required),
		validation.Field(&expense.ExpenseTypeID, validation.Required),
		validation.Field(&expense.Description, validation.Required),
		validation.Field(&expense.Date, validation.Required, validation.By(validateDate)),
		validation.Field(&expense.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&expense.UnitPrice, validation.Min(0.0)),
		validation.Field(&expense.PaidAmount, validation.Min(0.0)),
	)
	if err != nil {
		return err
	}
	if expense.PaidAmount > float64(expense.Quantity)*expense.UnitPrice {
		return ErrPaidExceedsTotal
	}
	return nil
}

// ValidateExpenseGroupData validates an expense group payload.
func ValidateExpenseGroupData(group models.ExpenseGroup) error {
	return validation.ValidateStruct(&group,
		validation.Field(&group.PatientID, validation.Required),
		validation.Field(&group.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&group.Date, validation.Required, validation.By(validateDate)),
		validation.Field(&group.TotalAmount, validation.Min(0.0)),
		validation.Field(&group.PaidAmount, validation.Min(0.0)),
	)
}

// ValidateMedicineData validates a medicine payload.
func ValidateMedicineData(medicine models.Medicine) error {
	return validation.ValidateStruct(&medicine,
		validation.Field(&medicine.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&medicine.Category, validation.Required),
		validation.Field(&medicine.Price, validation.Min(0.0)),
		validation.Field(&medicine.Stock, validation.Min(0)),
		validation.Field(&medicine.MinStockLevel, validation.Min(0)),
		validation.Field(&medicine.ExpiryDate, validation.By(validateOptionalDate)),
	)
}

// ValidateRestockData validates a restock payload. Quantity and unit price
// must both be strictly positive; a rejected restock mutates nothing.
func ValidateRestockData(record models.RestockRecord) error {
	return validation.ValidateStruct(&record,
		validation.Field(&record.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&record.UnitPrice, validation.Required, validation.Min(0.01)),
		validation.Field(&record.ExpiryDate, validation.By(validateOptionalDate)),
	)
}

// ValidatePaymentData validates a payment payload.
func ValidatePaymentData(payment models.Payment) error {
	return validation.ValidateStruct(&payment,
		validation.Field(&payment.PatientID, validation.Required),
		validation.Field(&payment.ExpenseID, validation.Required),
		validation.Field(&payment.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&payment.Date, validation.Required, validation.By(validateDate)),
		validation.Field(&payment.Method, validation.Required, validation.In("Cash", "Card", "UPI", "Insurance")),
	)
}

// validateDate checks the YYYY-MM-DD wire format.
func validateDate(value interface{}) error {
	date, _ := value.(string)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errors.New("must be a valid date in YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalDate accepts an empty string or a valid date.
func validateOptionalDate(value interface{}) error {
	date, _ := value.(string)
	if date == "" {
		return nil
	}
	return validateDate(value)
}
