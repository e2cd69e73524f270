package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent  = "STUDENT"
	RoleProvider = "PROVIDER"
)

type User struct {
	gorm.Model
	Name      string     `gorm:"default:''"`
	Email     string     `gorm:"unique;not null"`
	Phone     string     `gorm:"default:''"`
	Location  string     `gorm:"default:''"`
	Role      string     `gorm:"default:'STUDENT'"` // STUDENT or PROVIDER
	Password  string     `gorm:"not null" json:"-"`
	LastLogin *time.Time `gorm:"default:NULL"`
	IsDeleted bool       `gorm:"default:false"`
}
