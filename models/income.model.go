package models

import (
	"time"

	"gorm.io/gorm"
)

// Income is a single income record owned by a user
type Income struct {
	gorm.Model
	UserID uint      `gorm:"not null;index" json:"userId"`
	Icon   string    `gorm:"not null" json:"icon"`
	Source string    `gorm:"not null" json:"source"`
	Amount float64   `gorm:"not null" json:"amount"`
	Date   time.Time `gorm:"not null;index" json:"date"`

	// Relation - omit in JSON
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Income) TableName() string {
	return "incomes"
}
