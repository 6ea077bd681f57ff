package dto

import (
	"rolehub/internal/domain/rolemodel"
)

// RoleProfileDTO represents a role profile in API responses. Criteria is
// emitted in its wire form, unknown keys included.
type RoleProfileDTO struct {
	ID          uint               `json:"id"`
	RoleModelID uint               `json:"role_model_id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Criteria    rolemodel.Criteria `json:"criteria"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// CreateRoleProfileRequest represents the payload for creating a profile.
type CreateRoleProfileRequest struct {
	Name        string             `json:"name" binding:"required,min=1,max=255"`
	Description string             `json:"description" binding:"max=1000"`
	Criteria    rolemodel.Criteria `json:"criteria"`
}

// UpdateRoleProfileRequest represents the payload for updating a profile.
type UpdateRoleProfileRequest struct {
	Name        string             `json:"name" binding:"required,min=1,max=255"`
	Description string             `json:"description" binding:"max=1000"`
	Criteria    rolemodel.Criteria `json:"criteria"`
}

// ProfileAccessDTO represents a profile-to-access link.
type ProfileAccessDTO struct {
	ID            uint   `json:"id"`
	RoleProfileID uint   `json:"role_profile_id"`
	AccessID      uint   `json:"access_id"`
	CreatedAt     string `json:"created_at"`
}

// LinkAccessRequest represents the payload for linking an access to a profile.
type LinkAccessRequest struct {
	AccessID uint `json:"access_id" binding:"required"`
}

// ToRoleProfileDTO converts a domain profile to DTO.
func ToRoleProfileDTO(p *rolemodel.RoleProfile) *RoleProfileDTO {
	return &RoleProfileDTO{
		ID:          p.ID(),
		RoleModelID: p.RoleModelID(),
		Name:        p.Name(),
		Description: p.Description(),
		Criteria:    p.Criteria(),
		CreatedAt:   formatTime(p.CreatedAt()),
		UpdatedAt:   formatTime(p.UpdatedAt()),
	}
}

// ToRoleProfileDTOs converts a list of domain profiles to DTOs.
func ToRoleProfileDTOs(list []*rolemodel.RoleProfile) []*RoleProfileDTO {
	dtos := make([]*RoleProfileDTO, 0, len(list))
	for _, p := range list {
		dtos = append(dtos, ToRoleProfileDTO(p))
	}
	return dtos
}

// ToProfileAccessDTO converts a domain profile-access link to DTO.
func ToProfileAccessDTO(pa *rolemodel.ProfileAccess) *ProfileAccessDTO {
	return &ProfileAccessDTO{
		ID:            pa.ID(),
		RoleProfileID: pa.RoleProfileID(),
		AccessID:      pa.AccessID(),
		CreatedAt:     formatTime(pa.CreatedAt()),
	}
}

// ToProfileAccessDTOs converts a list of links to DTOs.
func ToProfileAccessDTOs(list []*rolemodel.ProfileAccess) []*ProfileAccessDTO {
	dtos := make([]*ProfileAccessDTO, 0, len(list))
	for _, pa := range list {
		dtos = append(dtos, ToProfileAccessDTO(pa))
	}
	return dtos
}
