package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is a single expense record owned by a user
type Expense struct {
	gorm.Model
	UserID   uint      `gorm:"not null;index" json:"userId"`
	Icon     string    `gorm:"not null" json:"icon"`
	Category string    `gorm:"not null" json:"category"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Date     time.Time `gorm:"not null;index" json:"date"`

	// Relation - omit in JSON
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Expense) TableName() string {
	return "expenses"
}
