package models

import (
	"time"

	"gorm.io/gorm"

	"rolehub/internal/shared/constants"
)

// ApplicationSystemModel represents the database persistence model for
// application systems.
type ApplicationSystemModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:255;uniqueIndex:idx_system_name"`
	Code        string `gorm:"size:50"`
	Description string `gorm:"size:1000"`
	Criticality string `gorm:"size:50;index:idx_system_criticality"`
	SystemType  string `gorm:"size:20;index:idx_system_type"` // IT, Business
	OwnerID     *uint  `gorm:"index:idx_system_owner"` // employee responsible for the system
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (ApplicationSystemModel) TableName() string {
	return constants.TableSystems
}
