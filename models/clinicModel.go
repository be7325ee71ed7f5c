package models

import (
	"time"

	"gorm.io/gorm"
)

// Patient model
type Patient struct {
	ID                 string         `gorm:"primaryKey;column:id" json:"id"`
	Name               string         `gorm:"column:name;not null;index" json:"name"`
	RegistrationNumber string         `gorm:"column:registration_number;unique;not null;index" json:"registration_number"`
	Age                int            `gorm:"column:age;not null" json:"age"`
	Gender             string         `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	Contact            string         `gorm:"column:contact" json:"contact"`
	StartDate          string         `gorm:"column:start_date;not null" json:"start_date"`
	EndDate            string         `gorm:"column:end_date" json:"end_date,omitempty"`
	IsActive           bool           `gorm:"column:is_active;not null" json:"is_active"`
	RehabProgram       string         `gorm:"column:rehab_program" json:"rehab_program,omitempty"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Expenses           []Expense      `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:NO ACTION" json:"-"`
	ExpenseGroups      []ExpenseGroup `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:NO ACTION" json:"-"`
	Payments           []Payment      `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:NO ACTION" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// ExpenseType model holds static reference data seeded at startup.
type ExpenseType struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"column:name;unique;not null" json:"name"`
	Description string `gorm:"column:description" json:"description"`
}

func (ExpenseType) TableName() string {
	return "expense_type"
}

// Expense model. RegistrationNumber and ExpenseTypeName are denormalized
// copies validated against their owners at write time. TotalAmount is always
// Quantity * UnitPrice.
type Expense struct {
	ID                 string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID          string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	RegistrationNumber string    `gorm:"column:registration_number;not null;index" json:"registration_number"`
	ExpenseTypeID      string    `gorm:"column:expense_type_id;not null" json:"expense_type_id"`
	ExpenseTypeName    string    `gorm:"column:expense_type_name;not null" json:"expense_type_name"`
	Date               string    `gorm:"column:date;not null;index" json:"date"`
	Description        string    `gorm:"column:description;not null" json:"description"`
	Quantity           int       `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice          float64   `gorm:"column:unit_price;not null" json:"unit_price"`
	TotalAmount        float64   `gorm:"column:total_amount;not null" json:"total_amount"`
	PaidAmount         float64   `gorm:"column:paid_amount" json:"paid_amount"`
	IsPaid             bool      `gorm:"column:is_paid" json:"is_paid"`
	MedicineID         string    `gorm:"column:medicine_id;index" json:"medicine_id,omitempty"`
	ExpenseGroupID     string    `gorm:"column:expense_group_id;index" json:"expense_group_id,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Expense) TableName() string {
	return "expense"
}

// ExpenseGroup model. TotalAmount and PaidAmount are cached sums over the
// member expenses and are adjusted in the same transaction that removes a
// member. Members reference the group through Expense.ExpenseGroupID.
type ExpenseGroup struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID   string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Date        string    `gorm:"column:date;not null" json:"date"`
	TotalAmount float64   `gorm:"column:total_amount" json:"total_amount"`
	PaidAmount  float64   `gorm:"column:paid_amount" json:"paid_amount"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Expenses    []Expense `gorm:"foreignKey:ExpenseGroupID;references:ID;constraint:OnDelete:NO ACTION" json:"-"`
	ExpenseIDs  []string  `gorm:"-" json:"expense_ids"`
}

func (ExpenseGroup) TableName() string {
	return "expense_group"
}

// Medicine model. Price always reflects the most recent restock's unit price
// once any restock has occurred.
type Medicine struct {
	ID             string          `gorm:"primaryKey;column:id" json:"id"`
	Name           string          `gorm:"column:name;not null;index" json:"name"`
	Category       string          `gorm:"column:category;not null;index" json:"category"`
	Price          float64         `gorm:"column:price;not null" json:"price"`
	Stock          int             `gorm:"column:stock;not null;check:stock >= 0" json:"stock"`
	MinStockLevel  int             `gorm:"column:min_stock_level" json:"min_stock_level"`
	ExpiryDate     string          `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	BatchNumber    string          `gorm:"column:batch_number" json:"batch_number,omitempty"`
	DateAdded      string          `gorm:"column:date_added;not null" json:"date_added"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	RestockHistory []RestockRecord `gorm:"foreignKey:MedicineID;references:ID" json:"restock_history"`
}

func (Medicine) TableName() string {
	return "medicine"
}

// DefaultMinStockLevel is the reorder threshold used when none is configured.
const DefaultMinStockLevel = 20

// EffectiveMinStockLevel returns the configured reorder threshold, falling
// back to the default when unset.
func (m *Medicine) EffectiveMinStockLevel() int {
	if m.MinStockLevel <= 0 {
		return DefaultMinStockLevel
	}
	return m.MinStockLevel
}

// ApplyRestock applies a restock event to the medicine as one logical unit:
// stock grows by the restocked quantity, price snaps to the latest unit price,
// expiry date and batch number are overwritten only when the record supplies
// them, and the record is appended to the history. Callers persist the result
// inside a single transaction so a restock is all-or-nothing.
func (m *Medicine) ApplyRestock(record RestockRecord) {
	m.Stock += record.Quantity
	m.Price = record.UnitPrice
	if record.ExpiryDate != "" {
		m.ExpiryDate = record.ExpiryDate
	}
	if record.BatchNumber != "" {
		m.BatchNumber = record.BatchNumber
	}
	m.RestockHistory = append(m.RestockHistory, record)
}

// RestockRecord model. Append-only: records are never edited or deleted.
type RestockRecord struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	MedicineID  string    `gorm:"column:medicine_id;not null;index" json:"medicine_id"`
	Date        string    `gorm:"column:date;not null" json:"date"`
	Quantity    int       `gorm:"column:quantity;not null;check:quantity > 0" json:"quantity"`
	UnitPrice   float64   `gorm:"column:unit_price;not null" json:"unit_price"`
	ExpiryDate  string    `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	BatchNumber string    `gorm:"column:batch_number" json:"batch_number,omitempty"`
	Notes       string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RestockRecord) TableName() string {
	return "restock_record"
}

// Payment model
type Payment struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	ExpenseID string    `gorm:"column:expense_id;not null;index" json:"expense_id"`
	Amount    float64   `gorm:"column:amount;not null" json:"amount"`
	Date      string    `gorm:"column:date;not null" json:"date"`
	Method    string    `gorm:"column:method;check:method IN ('Cash', 'Card', 'UPI', 'Insurance');not null" json:"method"`
	Notes     string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string {
	return "payment"
}

// SeedExpenseTypes inserts the built-in expense categories if they are missing.
func SeedExpenseTypes(db *gorm.DB) error {
	expenseTypes := []ExpenseType{
		{ID: "et-medicine", Name: "Medicine", Description: "Medicines dispensed from inventory"},
		{ID: "et-rehab-session", Name: "Rehab Session", Description: "Individual rehabilitation session"},
		{ID: "et-consultation", Name: "Consultation", Description: "Doctor consultation"},
		{ID: "et-lab-test", Name: "Lab Test", Description: "Laboratory investigation"},
		{ID: "et-accommodation", Name: "Accommodation", Description: "In-patient stay charges"},
	}
	for _, expenseType := range expenseTypes {
		if err := db.Where(ExpenseType{Name: expenseType.Name}).FirstOrCreate(&expenseType).Error; err != nil {
			return err
		}
	}
	return nil
}
