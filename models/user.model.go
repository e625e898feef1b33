package models

import (
	"gorm.io/gorm"
)

// AuthProvider identifies how the account was created
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
	AuthProviderGithub AuthProvider = "github"
)

type User struct {
	gorm.Model
	FullName     string       `gorm:"not null" json:"fullName"`
	Email        string       `gorm:"unique;not null" json:"email"`
	Password     string       `gorm:"not null" json:"-"`
	ProfileImage string       `gorm:"default:''" json:"profileImageURL"`
	AuthProvider AuthProvider `gorm:"type:varchar(20);default:'local'" json:"authProvider"`
}
