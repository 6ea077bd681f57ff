package models

import (
	"time"

	"gorm.io/gorm"

	"rolehub/internal/shared/constants"
)

// PositionModel represents the database persistence model for positions.
type PositionModel struct {
	ID             uint   `gorm:"primarykey"`
	Title          string `gorm:"not null;size:255;uniqueIndex:idx_position_title"`
	Code           string `gorm:"size:50"`
	HierarchyLevel int    `gorm:"not null;default:0"`
	Description    string `gorm:"size:500"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (PositionModel) TableName() string {
	return constants.TablePositions
}
