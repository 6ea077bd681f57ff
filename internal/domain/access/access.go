package access

import (
	"fmt"
	"time"
)

// Access is a grantable entitlement within an application system. RoleName
// is the role or permission label as the owning system knows it.
type Access struct {
	id          uint
	systemID    uint
	roleName    string
	criticality string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAccess(systemID uint, roleName, criticality, description string) (*Access, error) {
	if systemID == 0 {
		return nil, fmt.Errorf("application system is required")
	}
	if roleName == "" {
		return nil, fmt.Errorf("role name is required")
	}

	now := time.Now()
	return &Access{
		systemID:    systemID,
		roleName:    roleName,
		criticality: criticality,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructAccess rebuilds an Access from storage.
func ReconstructAccess(
	id, systemID uint,
	roleName, criticality, description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Access {
	return &Access{
		id:          id,
		systemID:    systemID,
		roleName:    roleName,
		criticality: criticality,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (a *Access) ID() uint             { return a.id }
func (a *Access) SystemID() uint       { return a.systemID }
func (a *Access) RoleName() string     { return a.roleName }
func (a *Access) Criticality() string  { return a.criticality }
func (a *Access) Description() string  { return a.description }
func (a *Access) IsActive() bool       { return a.isActive }
func (a *Access) CreatedAt() time.Time { return a.createdAt }
func (a *Access) UpdatedAt() time.Time { return a.updatedAt }

// SetID sets the access ID (only for persistence layer use)
func (a *Access) SetID(id uint) { a.id = id }

func (a *Access) Update(roleName, criticality, description string) error {
	if roleName == "" {
		return fmt.Errorf("role name is required")
	}
	a.roleName = roleName
	a.criticality = criticality
	a.description = description
	a.updatedAt = time.Now()
	return nil
}

func (a *Access) Deactivate() {
	a.isActive = false
	a.updatedAt = time.Now()
}
