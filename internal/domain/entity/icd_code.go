package entity

import (
	"time"

	"gorm.io/gorm"
)

// IcdCode represents an inland container depot from the master table
type IcdCode struct {
	ID          uint
	Code        string
	Name        string
	CustomHouse string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}
