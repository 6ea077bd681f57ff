package dto

import (
	"rolehub/internal/domain/access"
)

// AccessDTO represents the data transfer object for accesses.
type AccessDTO struct {
	ID          uint   `json:"id"`
	SystemID    uint   `json:"system_id"`
	RoleName    string `json:"role_name"`
	Criticality string `json:"criticality,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToAccessDTO converts a domain access to DTO.
func ToAccessDTO(a *access.Access) *AccessDTO {
	if a == nil {
		return nil
	}
	return &AccessDTO{
		ID:          a.ID(),
		SystemID:    a.SystemID(),
		RoleName:    a.RoleName(),
		Criticality: a.Criticality(),
		Description: a.Description(),
		IsActive:    a.IsActive(),
		CreatedAt:   a.CreatedAt().Format(timeLayout),
		UpdatedAt:   a.UpdatedAt().Format(timeLayout),
	}
}

// ToAccessDTOs converts a list of domain accesses to DTOs.
func ToAccessDTOs(list []*access.Access) []*AccessDTO {
	dtos := make([]*AccessDTO, 0, len(list))
	for _, a := range list {
		dtos = append(dtos, ToAccessDTO(a))
	}
	return dtos
}

// CreateAccessRequest carries the payload for creating an access.
type CreateAccessRequest struct {
	SystemID    uint   `json:"system_id" binding:"required"`
	RoleName    string `json:"role_name" binding:"required,max=255"`
	Criticality string `json:"criticality" binding:"max=50"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateAccessRequest carries the payload for updating an access.
type UpdateAccessRequest struct {
	RoleName    string `json:"role_name" binding:"required,max=255"`
	Criticality string `json:"criticality" binding:"max=50"`
	Description string `json:"description" binding:"max=1000"`
}
