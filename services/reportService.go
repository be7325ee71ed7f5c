package services

import (
	"RehabCare/models"
	"RehabCare/repositories"
	"context"
	"sort"
)

// TypeTotal aggregates expenses per expense type.
type TypeTotal struct {
	ExpenseTypeName string  `json:"expense_type_name"`
	Count           int     `json:"count"`
	TotalAmount     float64 `json:"total_amount"`
	PaidAmount      float64 `json:"paid_amount"`
}

// DateTotal aggregates expenses per calendar date.
type DateTotal struct {
	Date        string  `json:"date"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
}

// ExpenseReport is the per-type and per-date rollup served by the reports
// endpoint.
type ExpenseReport struct {
	ByType      []TypeTotal `json:"by_type"`
	ByDate      []DateTotal `json:"by_date"`
	TotalAmount float64     `json:"total_amount"`
	PaidAmount  float64     `json:"paid_amount"`
}

// BuildExpenseReport aggregates the expense collection over an optional
// inclusive date range.
func BuildExpenseReport(expenses []models.Expense, startDate, endDate string) ExpenseReport {
	byType := make(map[string]*TypeTotal)
	byDate := make(map[string]*DateTotal)
	var report ExpenseReport

	for _, expense := range expenses {
		if !withinRange(expense.Date, startDate, endDate) {
			continue
		}

		typeTotal, ok := byType[expense.ExpenseTypeName]
		if !ok {
			typeTotal = &TypeTotal{ExpenseTypeName: expense.ExpenseTypeName}
			byType[expense.ExpenseTypeName] = typeTotal
		}
		typeTotal.Count++
		typeTotal.TotalAmount += expense.TotalAmount
		typeTotal.PaidAmount += expense.PaidAmount

		dateTotal, ok := byDate[expense.Date]
		if !ok {
			dateTotal = &DateTotal{Date: expense.Date}
			byDate[expense.Date] = dateTotal
		}
		dateTotal.TotalAmount += expense.TotalAmount
		dateTotal.PaidAmount += expense.PaidAmount

		report.TotalAmount += expense.TotalAmount
		report.PaidAmount += expense.PaidAmount
	}

	for _, typeTotal := range byType {
		report.ByType = append(report.ByType, *typeTotal)
	}
	sort.Slice(report.ByType, func(i, j int) bool {
		if report.ByType[i].TotalAmount != report.ByType[j].TotalAmount {
			return report.ByType[i].TotalAmount > report.ByType[j].TotalAmount
		}
		return report.ByType[i].ExpenseTypeName < report.ByType[j].ExpenseTypeName
	})

	for _, dateTotal := range byDate {
		report.ByDate = append(report.ByDate, *dateTotal)
	}
	sort.Slice(report.ByDate, func(i, j int) bool {
		return report.ByDate[i].Date > report.ByDate[j].Date
	})

	return report
}

type ReportService struct {
	expenseRepo *repositories.ExpenseRepository
}

func NewReportService(expenseRepo *repositories.ExpenseRepository) *ReportService {
	return &ReportService{expenseRepo: expenseRepo}
}

// ExpenseReport derives the rollup from the current expense collection.
func (s *ReportService) ExpenseReport(ctx context.Context, startDate, endDate string) (ExpenseReport, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return ExpenseReport{}, err
	}
	return BuildExpenseReport(expenses, startDate, endDate), nil
}
