package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rolehub/internal/shared/constants"
)

// RoleProfileModel represents the database persistence model for role profiles.
type RoleProfileModel struct {
	ID          uint           `gorm:"primarykey"`
	RoleModelID uint           `gorm:"not null;index:idx_role_profile_model"`
	Name        string         `gorm:"not null;size:255"`
	Description string         `gorm:"size:1000"`
	Criteria    datatypes.JSON `gorm:"type:json"` // criteria document, interpreted by the matcher
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (RoleProfileModel) TableName() string {
	return constants.TableRoleProfiles
}
