package access

import (
	"fmt"
	"time"
)

// AssignmentType records how an employee acquired an access.
type AssignmentType string

const (
	// AssignmentAutoRole marks grants produced by role profile reconciliation.
	AssignmentAutoRole AssignmentType = "auto_role"
	// AssignmentManualRequest marks grants created by an explicit request.
	AssignmentManualRequest AssignmentType = "manual_request"
)

// IsValid reports whether t is a known assignment type.
func (t AssignmentType) IsValid() bool {
	return t == AssignmentAutoRole || t == AssignmentManualRequest
}

// EmployeeAccess links an employee to a granted access. There is at most
// one row per (employee, access) pair. RoleProfileID is set only for
// auto_role grants whose provenance is a specific profile.
type EmployeeAccess struct {
	id             uint
	employeeID     uint
	accessID       uint
	assignmentType AssignmentType
	roleProfileID  *uint
	assignedAt     time.Time
	lastUsed       *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewEmployeeAccess(employeeID, accessID uint, assignmentType AssignmentType, roleProfileID *uint) (*EmployeeAccess, error) {
	if employeeID == 0 || accessID == 0 {
		return nil, fmt.Errorf("employee and access are required")
	}
	if !assignmentType.IsValid() {
		return nil, fmt.Errorf("invalid assignment type: %s", assignmentType)
	}
	if assignmentType != AssignmentAutoRole && roleProfileID != nil {
		return nil, fmt.Errorf("role profile provenance is only valid for auto_role grants")
	}

	now := time.Now()
	return &EmployeeAccess{
		employeeID:     employeeID,
		accessID:       accessID,
		assignmentType: assignmentType,
		roleProfileID:  roleProfileID,
		assignedAt:     now,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructEmployeeAccess rebuilds an EmployeeAccess from storage.
func ReconstructEmployeeAccess(
	id, employeeID, accessID uint,
	assignmentType AssignmentType,
	roleProfileID *uint,
	assignedAt time.Time,
	lastUsed *time.Time,
	createdAt, updatedAt time.Time,
) *EmployeeAccess {
	return &EmployeeAccess{
		id:             id,
		employeeID:     employeeID,
		accessID:       accessID,
		assignmentType: assignmentType,
		roleProfileID:  roleProfileID,
		assignedAt:     assignedAt,
		lastUsed:       lastUsed,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (ea *EmployeeAccess) ID() uint                       { return ea.id }
func (ea *EmployeeAccess) EmployeeID() uint               { return ea.employeeID }
func (ea *EmployeeAccess) AccessID() uint                 { return ea.accessID }
func (ea *EmployeeAccess) AssignmentType() AssignmentType { return ea.assignmentType }
func (ea *EmployeeAccess) RoleProfileID() *uint           { return ea.roleProfileID }
func (ea *EmployeeAccess) AssignedAt() time.Time          { return ea.assignedAt }
func (ea *EmployeeAccess) LastUsed() *time.Time           { return ea.lastUsed }
func (ea *EmployeeAccess) CreatedAt() time.Time           { return ea.createdAt }
func (ea *EmployeeAccess) UpdatedAt() time.Time           { return ea.updatedAt }

// SetID sets the assignment ID (only for persistence layer use)
func (ea *EmployeeAccess) SetID(id uint) { ea.id = id }

// Touch records a use of the granted access.
func (ea *EmployeeAccess) Touch() {
	now := time.Now()
	ea.lastUsed = &now
	ea.updatedAt = now
}
