package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// User owns budgets. Both the name and the email address identify a user
// uniquely, the name doubles as the URL key.
type User struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Email    string `gorm:"uniqueIndex"`
	Password string

	Budgets []Budget `gorm:"constraint:OnDelete:CASCADE"`
}

var (
	ErrUserNameNotUnique  = errors.New("the user name is already in use")
	ErrUserEmailNotUnique = errors.New("the email address is already in use")
)

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	return nil
}

// UserByName returns the user with the name or an error wrapping
// ErrResourceNotFound.
func UserByName(db *gorm.DB, name string) (User, error) {
	var user User
	err := db.Where(&User{Name: name}).First(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}
