// Package organization holds the org-structure reference data: the unit
// tree, positions, and the agile team hierarchy. The criteria evaluator
// matches employees against these records but never mutates them.
package organization

import (
	"fmt"
	"time"
)

// UnitType is the level tag of an organizational unit.
type UnitType string

const (
	UnitTypeBlock       UnitType = "block"
	UnitTypeDepartment  UnitType = "department"
	UnitTypeDirectorate UnitType = "directorate"
	UnitTypeDivision    UnitType = "division"
)

// IsValid reports whether the unit type is one of the known levels.
func (t UnitType) IsValid() bool {
	switch t {
	case UnitTypeBlock, UnitTypeDepartment, UnitTypeDirectorate, UnitTypeDivision:
		return true
	}
	return false
}

// OrgUnit is a node in the organizational tree.
type OrgUnit struct {
	id        uint
	name      string
	code      string
	unitType  UnitType
	parentID  *uint
	level     int
	path      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewOrgUnit(name, code string, unitType UnitType, parentID *uint, level int) (*OrgUnit, error) {
	if name == "" {
		return nil, fmt.Errorf("org unit name is required")
	}
	if !unitType.IsValid() {
		return nil, fmt.Errorf("invalid unit type: %s", unitType)
	}
	if level < 1 {
		return nil, fmt.Errorf("level must be >= 1")
	}

	now := time.Now()
	return &OrgUnit{
		name:      name,
		code:      code,
		unitType:  unitType,
		parentID:  parentID,
		level:     level,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOrgUnit(id uint, name, code string, unitType UnitType, parentID *uint, level int, path string, isActive bool, createdAt, updatedAt time.Time) *OrgUnit {
	return &OrgUnit{
		id:        id,
		name:      name,
		code:      code,
		unitType:  unitType,
		parentID:  parentID,
		level:     level,
		path:      path,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *OrgUnit) ID() uint             { return u.id }
func (u *OrgUnit) Name() string         { return u.name }
func (u *OrgUnit) Code() string         { return u.code }
func (u *OrgUnit) UnitType() UnitType   { return u.unitType }
func (u *OrgUnit) ParentID() *uint      { return u.parentID }
func (u *OrgUnit) Level() int           { return u.level }
func (u *OrgUnit) Path() string         { return u.path }
func (u *OrgUnit) IsActive() bool       { return u.isActive }
func (u *OrgUnit) CreatedAt() time.Time { return u.createdAt }
func (u *OrgUnit) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the unit ID (only for persistence layer use)
func (u *OrgUnit) SetID(id uint) { u.id = id }

// SetPath records the materialized tree path, e.g. "/1/5/12".
func (u *OrgUnit) SetPath(path string) {
	u.path = path
	u.updatedAt = time.Now()
}

func (u *OrgUnit) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("org unit name is required")
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

func (u *OrgUnit) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}
