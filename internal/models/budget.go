package models

import (
	"errors"
	"strings"

	"github.com/budtrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a spending plan of a user for a period of time.
type Budget struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"uniqueIndex:budget_user_id_name"`
	Name        string    `gorm:"uniqueIndex:budget_user_id_name"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate   types.Date
	EndDate     types.Date
	Currency    string

	Expenses []Expense `gorm:"constraint:OnDelete:CASCADE"`
}

var ErrBudgetNameNotUnique = errors.New("the budget name must be unique for the user")

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)

	return nil
}

// BudgetsOfUser returns all budgets owned by the user.
func BudgetsOfUser(db *gorm.DB, user User) ([]Budget, error) {
	var budgets []Budget
	err := db.Where(&Budget{UserID: user.ID}).Order("name ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// BudgetOfUser returns the budget with the name owned by the user or an
// error wrapping ErrResourceNotFound.
func BudgetOfUser(db *gorm.DB, user User, name string) (Budget, error) {
	var budget Budget
	err := db.Where(&Budget{UserID: user.ID, Name: name}).First(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}
