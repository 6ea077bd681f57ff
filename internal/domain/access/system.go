// Package access models application systems, the accesses (entitlements)
// they expose and the assignment of accesses to employees.
package access

import (
	"fmt"
	"time"
)

// SystemType classifies an application system.
type SystemType string

const (
	SystemTypeIT       SystemType = "IT"
	SystemTypeBusiness SystemType = "Business"
)

// IsValid reports whether t is a known system type.
func (t SystemType) IsValid() bool {
	return t == SystemTypeIT || t == SystemTypeBusiness
}

// ApplicationSystem is a system that exposes grantable accesses.
type ApplicationSystem struct {
	id          uint
	name        string
	code        string
	description string
	criticality string
	systemType  SystemType
	ownerID     *uint
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewApplicationSystem(name, code, description, criticality string, systemType SystemType, ownerID *uint) (*ApplicationSystem, error) {
	if name == "" {
		return nil, fmt.Errorf("system name is required")
	}
	if systemType != "" && !systemType.IsValid() {
		return nil, fmt.Errorf("invalid system type: %s", systemType)
	}

	now := time.Now()
	return &ApplicationSystem{
		name:        name,
		code:        code,
		description: description,
		criticality: criticality,
		systemType:  systemType,
		ownerID:     ownerID,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructApplicationSystem rebuilds an ApplicationSystem from storage.
func ReconstructApplicationSystem(
	id uint,
	name, code, description, criticality string,
	systemType SystemType,
	ownerID *uint,
	isActive bool,
	createdAt, updatedAt time.Time,
) *ApplicationSystem {
	return &ApplicationSystem{
		id:          id,
		name:        name,
		code:        code,
		description: description,
		criticality: criticality,
		systemType:  systemType,
		ownerID:     ownerID,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *ApplicationSystem) ID() uint               { return s.id }
func (s *ApplicationSystem) Name() string           { return s.name }
func (s *ApplicationSystem) Code() string           { return s.code }
func (s *ApplicationSystem) Description() string    { return s.description }
func (s *ApplicationSystem) Criticality() string    { return s.criticality }
func (s *ApplicationSystem) SystemType() SystemType { return s.systemType }
func (s *ApplicationSystem) OwnerID() *uint         { return s.ownerID }
func (s *ApplicationSystem) IsActive() bool         { return s.isActive }
func (s *ApplicationSystem) CreatedAt() time.Time   { return s.createdAt }
func (s *ApplicationSystem) UpdatedAt() time.Time   { return s.updatedAt }

// SetID sets the system ID (only for persistence layer use)
func (s *ApplicationSystem) SetID(id uint) { s.id = id }

func (s *ApplicationSystem) Update(name, code, description, criticality string, systemType SystemType, ownerID *uint) error {
	if name == "" {
		return fmt.Errorf("system name is required")
	}
	if systemType != "" && !systemType.IsValid() {
		return fmt.Errorf("invalid system type: %s", systemType)
	}
	s.name = name
	s.code = code
	s.description = description
	s.criticality = criticality
	s.systemType = systemType
	s.ownerID = ownerID
	s.updatedAt = time.Now()
	return nil
}

func (s *ApplicationSystem) Deactivate() {
	s.isActive = false
	s.updatedAt = time.Now()
}
