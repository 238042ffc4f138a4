package models

import (
	"errors"
	"strings"

	"github.com/budtrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single expense booked against a budget.
type Expense struct {
	DefaultModel
	Budget      Budget    `json:"-"`
	BudgetID    uuid.UUID `gorm:"uniqueIndex:expense_budget_id_name"`
	Name        string    `gorm:"uniqueIndex:expense_budget_id_name"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        types.Date
}

var ErrExpenseNameNotUnique = errors.New("the expense name must be unique for the budget")

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Description = strings.TrimSpace(e.Description)

	return nil
}

// ExpenseOfBudget returns the expense with the name booked against the
// budget or an error wrapping ErrResourceNotFound.
func ExpenseOfBudget(db *gorm.DB, budget Budget, name string) (Expense, error) {
	var expense Expense
	err := db.Where(&Expense{BudgetID: budget.ID, Name: name}).First(&expense).Error
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// ExpensesOfBudget returns all expenses booked against the budget.
func ExpensesOfBudget(db *gorm.DB, budget Budget) ([]Expense, error) {
	var expenses []Expense
	err := db.Where(&Expense{BudgetID: budget.ID}).Order("name ASC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
