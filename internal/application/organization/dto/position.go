package dto

import (
	"rolehub/internal/domain/organization"
)

// PositionDTO represents the data transfer object for positions.
type PositionDTO struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Code           string `json:"code,omitempty"`
	HierarchyLevel int    `json:"hierarchy_level"`
	Description    string `json:"description,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ToPositionDTO converts a domain position to DTO.
func ToPositionDTO(position *organization.Position) *PositionDTO {
	if position == nil {
		return nil
	}
	return &PositionDTO{
		ID:             position.ID(),
		Title:          position.Title(),
		Code:           position.Code(),
		HierarchyLevel: position.HierarchyLevel(),
		Description:    position.Description(),
		IsActive:       position.IsActive(),
		CreatedAt:      position.CreatedAt().Format(timeLayout),
		UpdatedAt:      position.UpdatedAt().Format(timeLayout),
	}
}

// ToPositionDTOs converts a list of domain positions to DTOs.
func ToPositionDTOs(positions []*organization.Position) []*PositionDTO {
	dtos := make([]*PositionDTO, 0, len(positions))
	for _, position := range positions {
		dtos = append(dtos, ToPositionDTO(position))
	}
	return dtos
}

// CreatePositionRequest carries the payload for creating a position.
type CreatePositionRequest struct {
	Title          string `json:"title" binding:"required,max=255"`
	Code           string `json:"code" binding:"max=50"`
	HierarchyLevel int    `json:"hierarchy_level" binding:"min=0"`
	Description    string `json:"description" binding:"max=500"`
}

// UpdatePositionRequest carries the payload for updating a position.
type UpdatePositionRequest struct {
	Title          string `json:"title" binding:"required,max=255"`
	Code           string `json:"code" binding:"max=50"`
	HierarchyLevel int    `json:"hierarchy_level" binding:"min=0"`
	Description    string `json:"description" binding:"max=500"`
}
