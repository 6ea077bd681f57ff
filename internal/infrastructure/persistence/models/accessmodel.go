package models

import (
	"time"

	"gorm.io/gorm"

	"rolehub/internal/shared/constants"
)

// AccessModel represents the database persistence model for accesses.
type AccessModel struct {
	ID          uint   `gorm:"primarykey"`
	SystemID    uint   `gorm:"not null;index:idx_access_system"`
	RoleName    string `gorm:"not null;size:255;index:idx_access_role_name"`
	Criticality string `gorm:"size:50"`
	Description string `gorm:"size:1000"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (AccessModel) TableName() string {
	return constants.TableAccesses
}
