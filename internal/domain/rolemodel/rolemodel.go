package rolemodel

import (
	"fmt"
	"time"
)

// DefaultModelVersion is stamped on role models created without an
// explicit version.
const DefaultModelVersion = "1.0"

// RoleModel groups role profiles for one slice of the organization.
type RoleModel struct {
	id          uint
	name        string
	description string
	author      string
	version     string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoleModel(name, description, author, version string) (*RoleModel, error) {
	if name == "" {
		return nil, fmt.Errorf("role model name is required")
	}
	if version == "" {
		version = DefaultModelVersion
	}

	now := time.Now()
	return &RoleModel{
		name:        name,
		description: description,
		author:      author,
		version:     version,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructRoleModel rebuilds a RoleModel from storage.
func ReconstructRoleModel(id uint, name, description, author, version string, isActive bool, createdAt, updatedAt time.Time) *RoleModel {
	return &RoleModel{
		id:          id,
		name:        name,
		description: description,
		author:      author,
		version:     version,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (m *RoleModel) ID() uint             { return m.id }
func (m *RoleModel) Name() string         { return m.name }
func (m *RoleModel) Description() string  { return m.description }
func (m *RoleModel) Author() string       { return m.author }
func (m *RoleModel) Version() string      { return m.version }
func (m *RoleModel) IsActive() bool       { return m.isActive }
func (m *RoleModel) CreatedAt() time.Time { return m.createdAt }
func (m *RoleModel) UpdatedAt() time.Time { return m.updatedAt }

// SetID sets the role model ID (only for persistence layer use)
func (m *RoleModel) SetID(id uint) { m.id = id }

// Update changes the mutable attributes. An empty version keeps the
// current one.
func (m *RoleModel) Update(name, description, version string) error {
	if name == "" {
		return fmt.Errorf("role model name is required")
	}
	m.name = name
	m.description = description
	if version != "" {
		m.version = version
	}
	m.updatedAt = time.Now()
	return nil
}

func (m *RoleModel) Deactivate() {
	m.isActive = false
	m.updatedAt = time.Now()
}

// RoleProfile is a named criteria document within a role model. The
// accesses it confers are declared through ProfileAccess links.
type RoleProfile struct {
	id          uint
	roleModelID uint
	name        string
	description string
	criteria    Criteria
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoleProfile(roleModelID uint, name, description string, criteria Criteria) (*RoleProfile, error) {
	if roleModelID == 0 {
		return nil, fmt.Errorf("role model is required")
	}
	if name == "" {
		return nil, fmt.Errorf("profile name is required")
	}

	now := time.Now()
	return &RoleProfile{
		roleModelID: roleModelID,
		name:        name,
		description: description,
		criteria:    criteria,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructRoleProfile rebuilds a RoleProfile from storage.
func ReconstructRoleProfile(id, roleModelID uint, name, description string, criteria Criteria, createdAt, updatedAt time.Time) *RoleProfile {
	return &RoleProfile{
		id:          id,
		roleModelID: roleModelID,
		name:        name,
		description: description,
		criteria:    criteria,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *RoleProfile) ID() uint             { return p.id }
func (p *RoleProfile) RoleModelID() uint    { return p.roleModelID }
func (p *RoleProfile) Name() string         { return p.name }
func (p *RoleProfile) Description() string  { return p.description }
func (p *RoleProfile) Criteria() Criteria   { return p.criteria }
func (p *RoleProfile) CreatedAt() time.Time { return p.createdAt }
func (p *RoleProfile) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the profile ID (only for persistence layer use)
func (p *RoleProfile) SetID(id uint) { p.id = id }

func (p *RoleProfile) Update(name, description string, criteria Criteria) error {
	if name == "" {
		return fmt.Errorf("profile name is required")
	}
	p.name = name
	p.description = description
	p.criteria = criteria
	p.updatedAt = time.Now()
	return nil
}

// ProfileAccess declares that a profile confers an access. Set semantics,
// at most one link per (profile, access) pair.
type ProfileAccess struct {
	id            uint
	roleProfileID uint
	accessID      uint
	createdAt     time.Time
}

func NewProfileAccess(roleProfileID, accessID uint) (*ProfileAccess, error) {
	if roleProfileID == 0 || accessID == 0 {
		return nil, fmt.Errorf("profile and access are required")
	}
	return &ProfileAccess{
		roleProfileID: roleProfileID,
		accessID:      accessID,
		createdAt:     time.Now(),
	}, nil
}

// ReconstructProfileAccess rebuilds a ProfileAccess from storage.
func ReconstructProfileAccess(id, roleProfileID, accessID uint, createdAt time.Time) *ProfileAccess {
	return &ProfileAccess{
		id:            id,
		roleProfileID: roleProfileID,
		accessID:      accessID,
		createdAt:     createdAt,
	}
}

func (pa *ProfileAccess) ID() uint             { return pa.id }
func (pa *ProfileAccess) RoleProfileID() uint  { return pa.roleProfileID }
func (pa *ProfileAccess) AccessID() uint       { return pa.accessID }
func (pa *ProfileAccess) CreatedAt() time.Time { return pa.createdAt }

// SetID sets the link ID (only for persistence layer use)
func (pa *ProfileAccess) SetID(id uint) { pa.id = id }
