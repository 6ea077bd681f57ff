// Package dto provides data transfer objects for the access context.
package dto

import (
	"rolehub/internal/domain/access"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// ApplicationSystemDTO represents the data transfer object for application systems.
type ApplicationSystemDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	Criticality string `json:"criticality,omitempty"`
	SystemType  string `json:"system_type,omitempty"`
	OwnerID     *uint  `json:"owner_id,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToApplicationSystemDTO converts a domain application system to DTO.
func ToApplicationSystemDTO(sys *access.ApplicationSystem) *ApplicationSystemDTO {
	if sys == nil {
		return nil
	}
	return &ApplicationSystemDTO{
		ID:          sys.ID(),
		Name:        sys.Name(),
		Code:        sys.Code(),
		Description: sys.Description(),
		Criticality: sys.Criticality(),
		SystemType:  string(sys.SystemType()),
		OwnerID:     sys.OwnerID(),
		IsActive:    sys.IsActive(),
		CreatedAt:   sys.CreatedAt().Format(timeLayout),
		UpdatedAt:   sys.UpdatedAt().Format(timeLayout),
	}
}

// ToApplicationSystemDTOs converts a list of domain application systems to DTOs.
func ToApplicationSystemDTOs(systems []*access.ApplicationSystem) []*ApplicationSystemDTO {
	dtos := make([]*ApplicationSystemDTO, 0, len(systems))
	for _, sys := range systems {
		dtos = append(dtos, ToApplicationSystemDTO(sys))
	}
	return dtos
}

// CreateSystemRequest carries the payload for creating an application system.
type CreateSystemRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Code        string `json:"code" binding:"max=50"`
	Description string `json:"description" binding:"max=1000"`
	Criticality string `json:"criticality" binding:"max=50"`
	SystemType  string `json:"system_type" binding:"omitempty,oneof=IT Business"`
	OwnerID     *uint  `json:"owner_id"`
}

// UpdateSystemRequest carries the payload for updating an application system.
type UpdateSystemRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Code        string `json:"code" binding:"max=50"`
	Description string `json:"description" binding:"max=1000"`
	Criticality string `json:"criticality" binding:"max=50"`
	SystemType  string `json:"system_type" binding:"omitempty,oneof=IT Business"`
	OwnerID     *uint  `json:"owner_id"`
}
