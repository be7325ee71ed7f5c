package controllers

import (
	"RehabCare/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers every resource route under the API base path.
func SetupClinicRoutes(api *gin.RouterGroup, patientHandler *handlers.PatientHandler, expenseTypeHandler *handlers.ExpenseTypeHandler, expenseHandler *handlers.ExpenseHandler, expenseGroupHandler *handlers.ExpenseGroupHandler, billingHandler *handlers.BillingHandler, inventoryHandler *handlers.InventoryHandler, reportHandler *handlers.ReportHandler) {
	api.POST("/patients", patientHandler.CreatePatient)
	api.GET("/patients", patientHandler.GetAllPatients)
	api.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	api.GET("/patients/registration/:registration_number", patientHandler.GetPatientByRegistration)
	api.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	api.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
	api.GET("/patients/:patient_id/expenses", expenseHandler.GetExpensesByPatient)
	api.GET("/patients/:patient_id/expense_groups", expenseGroupHandler.GetExpenseGroupsByPatient)

	api.POST("/expense_types", expenseTypeHandler.CreateExpenseType)
	api.GET("/expense_types", expenseTypeHandler.GetAllExpenseTypes)

	api.POST("/expenses", expenseHandler.CreateExpense)
	api.GET("/expenses", expenseHandler.GetAllExpenses)
	api.GET("/expenses/:id", expenseHandler.GetExpenseByID)
	api.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	api.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	api.POST("/expense_groups", expenseGroupHandler.CreateExpenseGroup)
	api.GET("/expense_groups", expenseGroupHandler.GetAllExpenseGroups)
	api.GET("/expense_groups/:id", expenseGroupHandler.GetExpenseGroupByID)
	api.DELETE("/expense_groups/:id", expenseGroupHandler.DeleteExpenseGroup)

	api.GET("/billing", billingHandler.GetBills)
	api.GET("/billing/patients", billingHandler.GetPatientSummaries)
	api.GET("/billing/payments", billingHandler.GetPayments)
	api.POST("/billing/generate", billingHandler.GenerateBills)
	api.POST("/billing/payment", billingHandler.RecordPayment)

	api.POST("/inventory", inventoryHandler.CreateMedicine)
	api.GET("/inventory", inventoryHandler.GetAllMedicines)
	api.GET("/inventory/alerts", inventoryHandler.GetInventoryAlerts)
	api.GET("/inventory/categories", inventoryHandler.GetCategories)
	api.POST("/inventory/categories", inventoryHandler.CreateCategory)
	api.GET("/inventory/:id", inventoryHandler.GetMedicineByID)
	api.PUT("/inventory/:id", inventoryHandler.UpdateMedicine)
	api.DELETE("/inventory/:id", inventoryHandler.DeleteMedicine)
	api.POST("/inventory/:id/restock", inventoryHandler.RestockMedicine)

	api.GET("/reports/expenses", reportHandler.GetExpenseReport)
}
