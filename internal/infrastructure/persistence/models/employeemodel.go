package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rolehub/internal/shared/constants"
)

// EmployeeModel represents the database persistence model for employees.
type EmployeeModel struct {
	ID                  uint    `gorm:"primarykey"`
	EmployeeNumber      *string `gorm:"size:32;uniqueIndex:idx_employee_number"` // nullable, employees without a number must not collide
	FullName            string  `gorm:"not null;size:255;index:idx_employee_full_name"`
	OrgUnitID           uint    `gorm:"not null;index:idx_employee_org_unit"`
	PositionID          uint    `gorm:"not null;index:idx_employee_position"`
	ProfileID           uint    `gorm:"not null;index:idx_employee_profile"`
	EmployeeTypeID      uint    `gorm:"not null;index:idx_employee_type"`
	AgileTeamID         *uint   `gorm:"index:idx_employee_agile_team"`
	TeamRoleID          *uint
	TechStack           datatypes.JSON `gorm:"type:json"` // list of technology tags
	Skills              datatypes.JSON `gorm:"type:json"` // list of skill tags
	ExperienceYears     *int
	CompanyTenureMonths *int
	Email               string `gorm:"size:255"`
	Phone               string `gorm:"size:50"`
	Status              string `gorm:"not null;size:20;default:active;index:idx_employee_status"` // active, inactive, terminated
	HireDate            *time.Time
	TerminationDate     *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}

// BeforeCreate hook for GORM.
func (m *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "active"
	}
	return nil
}
