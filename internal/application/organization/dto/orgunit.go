// Package dto provides data transfer objects for the organization context.
package dto

import (
	"rolehub/internal/domain/organization"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// OrgUnitDTO represents the data transfer object for organizational units.
type OrgUnitDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	UnitType  string `json:"unit_type"` // block, department, directorate, division
	ParentID  *uint  `json:"parent_id,omitempty"`
	Level     int    `json:"level"`
	Path      string `json:"path,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToOrgUnitDTO converts a domain org unit to DTO.
func ToOrgUnitDTO(unit *organization.OrgUnit) *OrgUnitDTO {
	if unit == nil {
		return nil
	}
	return &OrgUnitDTO{
		ID:        unit.ID(),
		Name:      unit.Name(),
		Code:      unit.Code(),
		UnitType:  string(unit.UnitType()),
		ParentID:  unit.ParentID(),
		Level:     unit.Level(),
		Path:      unit.Path(),
		IsActive:  unit.IsActive(),
		CreatedAt: unit.CreatedAt().Format(timeLayout),
		UpdatedAt: unit.UpdatedAt().Format(timeLayout),
	}
}

// ToOrgUnitDTOs converts a list of domain org units to DTOs.
func ToOrgUnitDTOs(units []*organization.OrgUnit) []*OrgUnitDTO {
	dtos := make([]*OrgUnitDTO, 0, len(units))
	for _, unit := range units {
		dtos = append(dtos, ToOrgUnitDTO(unit))
	}
	return dtos
}

// CreateOrgUnitRequest carries the payload for creating an org unit.
type CreateOrgUnitRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Code     string `json:"code" binding:"max=50"`
	UnitType string `json:"unit_type" binding:"required,oneof=block department directorate division"`
	ParentID *uint  `json:"parent_id"`
}

// UpdateOrgUnitRequest carries the payload for renaming an org unit.
type UpdateOrgUnitRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}
