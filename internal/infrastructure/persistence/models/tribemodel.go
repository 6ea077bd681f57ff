package models

import (
	"time"

	"rolehub/internal/shared/constants"
)

// TribeModel represents the database persistence model for tribes.
type TribeModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:255;uniqueIndex:idx_tribe_name"`
	Description string `gorm:"size:500"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (TribeModel) TableName() string {
	return constants.TableTribes
}
