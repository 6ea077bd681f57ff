package models

import (
	"time"

	"gorm.io/gorm"

	"rolehub/internal/shared/constants"
)

// RoleModelModel represents the database persistence model for role models.
type RoleModelModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:255;uniqueIndex:idx_role_model_name"`
	Description string `gorm:"size:1000"`
	Author      string `gorm:"size:255"`
	Version     string `gorm:"not null;size:50;default:1.0"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (RoleModelModel) TableName() string {
	return constants.TableRoleModels
}
