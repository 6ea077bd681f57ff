package models

import (
	"time"

	"rolehub/internal/shared/constants"
)

// EmployeeTypeModel represents the database persistence model for the
// employee type reference catalog.
type EmployeeTypeModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255;uniqueIndex:idx_employee_type_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (EmployeeTypeModel) TableName() string {
	return constants.TableEmployeeTypes
}
