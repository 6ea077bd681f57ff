package models

import (
	"time"

	"gorm.io/gorm"

	"rolehub/internal/shared/constants"
)

// OrgUnitModel represents the database persistence model for organizational units.
type OrgUnitModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255;index:idx_org_unit_name"`
	Code      string `gorm:"size:50"`
	UnitType  string `gorm:"not null;size:20;index:idx_org_unit_type"` // block, department, directorate, division
	ParentID  *uint  `gorm:"index:idx_org_unit_parent"`
	Level     int    `gorm:"not null;default:0"`
	Path      string `gorm:"size:1000"` // materialized ancestor chain, e.g. /1/4/9
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (OrgUnitModel) TableName() string {
	return constants.TableOrgUnits
}
