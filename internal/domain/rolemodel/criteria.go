// Package rolemodel holds role models, their profiles and the criteria
// documents that select which employees a profile applies to.
package rolemodel

import (
	"encoding/json"
)

// Criteria is a profile's matching document. Each known key holds a list
// of categorical values matched OR-within-key and AND-across-keys.
// AllEmployees true overrides every other key. A document with no known
// keys set matches nobody, not everybody.
//
// Unknown keys are carried through Extra so externally authored documents
// survive a read-modify-write cycle untouched.
type Criteria struct {
	EmployeeProfiles []string
	Positions        []string
	OrgUnitsType     []string
	EmployeeTypes    []string
	AllEmployees     bool

	Extra map[string]json.RawMessage
}

const (
	keyEmployeeProfiles = "employee_profiles"
	keyPositions        = "positions"
	keyOrgUnitsType     = "org_units_type"
	keyEmployeeTypes    = "employee_types"
	keyAllEmployees     = "all_employees"
)

// IsEmpty reports whether no known clause is present. An empty document
// matches zero employees.
func (c Criteria) IsEmpty() bool {
	return !c.AllEmployees &&
		len(c.EmployeeProfiles) == 0 &&
		len(c.Positions) == 0 &&
		len(c.OrgUnitsType) == 0 &&
		len(c.EmployeeTypes) == 0
}

// EmployeeAttributes are the categorical attributes criteria match against.
type EmployeeAttributes struct {
	ProfileName   string
	PositionTitle string
	OrgUnitType   string
	TypeName      string
}

// Matches evaluates the document against one employee's attributes.
func (c Criteria) Matches(attrs EmployeeAttributes) bool {
	if c.AllEmployees {
		return true
	}
	if c.IsEmpty() {
		return false
	}
	if len(c.EmployeeProfiles) > 0 && !contains(c.EmployeeProfiles, attrs.ProfileName) {
		return false
	}
	if len(c.Positions) > 0 && !contains(c.Positions, attrs.PositionTitle) {
		return false
	}
	if len(c.OrgUnitsType) > 0 && !contains(c.OrgUnitsType, attrs.OrgUnitType) {
		return false
	}
	if len(c.EmployeeTypes) > 0 && !contains(c.EmployeeTypes, attrs.TypeName) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// UnmarshalJSON tolerates unknown keys and malformed known keys: anything
// that does not decode into the expected shape is kept in Extra verbatim.
func (c *Criteria) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Criteria{}
	for key, value := range raw {
		switch key {
		case keyEmployeeProfiles:
			if !decodeStringList(value, &c.EmployeeProfiles) {
				c.putExtra(key, value)
			}
		case keyPositions:
			if !decodeStringList(value, &c.Positions) {
				c.putExtra(key, value)
			}
		case keyOrgUnitsType:
			if !decodeStringList(value, &c.OrgUnitsType) {
				c.putExtra(key, value)
			}
		case keyEmployeeTypes:
			if !decodeStringList(value, &c.EmployeeTypes) {
				c.putExtra(key, value)
			}
		case keyAllEmployees:
			if err := json.Unmarshal(value, &c.AllEmployees); err != nil {
				c.putExtra(key, value)
			}
		default:
			c.putExtra(key, value)
		}
	}
	return nil
}

// MarshalJSON writes only the keys that are present, plus any preserved
// unknown keys.
func (c Criteria) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 5+len(c.Extra))
	if len(c.EmployeeProfiles) > 0 {
		out[keyEmployeeProfiles] = c.EmployeeProfiles
	}
	if len(c.Positions) > 0 {
		out[keyPositions] = c.Positions
	}
	if len(c.OrgUnitsType) > 0 {
		out[keyOrgUnitsType] = c.OrgUnitsType
	}
	if len(c.EmployeeTypes) > 0 {
		out[keyEmployeeTypes] = c.EmployeeTypes
	}
	if c.AllEmployees {
		out[keyAllEmployees] = true
	}
	for key, value := range c.Extra {
		out[key] = value
	}
	return json.Marshal(out)
}

func (c *Criteria) putExtra(key string, value json.RawMessage) {
	if c.Extra == nil {
		c.Extra = make(map[string]json.RawMessage)
	}
	c.Extra[key] = value
}

func decodeStringList(data json.RawMessage, dst *[]string) bool {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return false
	}
	*dst = list
	return true
}
