package models

import (
	"time"

	"rolehub/internal/shared/constants"
)

// EmployeeProfileModel represents the database persistence model for the
// employee profile reference catalog.
type EmployeeProfileModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255;uniqueIndex:idx_employee_profile_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (EmployeeProfileModel) TableName() string {
	return constants.TableEmployeeProfiles
}
