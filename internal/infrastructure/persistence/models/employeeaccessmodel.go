package models

import (
	"time"

	"gorm.io/gorm"

	"rolehub/internal/shared/constants"
)

// EmployeeAccessModel represents the database persistence model for
// granted accesses. The unique index on (employee_id, access_id) enforces
// the one-grant-per-pair invariant at the store level, so concurrent
// reconciliation runs cannot create duplicates.
type EmployeeAccessModel struct {
	ID             uint   `gorm:"primarykey"`
	EmployeeID     uint   `gorm:"not null;uniqueIndex:idx_employee_access_pair;index:idx_employee_access_employee"`
	AccessID       uint   `gorm:"not null;uniqueIndex:idx_employee_access_pair;index:idx_employee_access_access"`
	AssignmentType string `gorm:"not null;size:20;index:idx_employee_access_type"` // auto_role, manual_request
	RoleProfileID  *uint  `gorm:"index:idx_employee_access_profile"`               // provenance, auto_role only
	AssignedAt     time.Time
	LastUsed       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM.
func (EmployeeAccessModel) TableName() string {
	return constants.TableEmployeeAccesses
}

// BeforeCreate hook for GORM.
func (m *EmployeeAccessModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignedAt.IsZero() {
		m.AssignedAt = time.Now()
	}
	return nil
}
