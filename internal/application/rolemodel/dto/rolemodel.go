package dto

import (
	"time"

	"rolehub/internal/domain/rolemodel"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// RoleModelDTO represents a role model in API responses.
type RoleModelDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Version     string `json:"version"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateRoleModelRequest represents the payload for creating a role model.
type CreateRoleModelRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Author      string `json:"author" binding:"max=255"`
	Version     string `json:"version" binding:"max=50"`
}

// UpdateRoleModelRequest represents the payload for updating a role model.
type UpdateRoleModelRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Version     string `json:"version" binding:"max=50"`
}

// ToRoleModelDTO converts a domain role model to DTO.
func ToRoleModelDTO(m *rolemodel.RoleModel) *RoleModelDTO {
	return &RoleModelDTO{
		ID:          m.ID(),
		Name:        m.Name(),
		Description: m.Description(),
		Author:      m.Author(),
		Version:     m.Version(),
		IsActive:    m.IsActive(),
		CreatedAt:   m.CreatedAt().Format(timeLayout),
		UpdatedAt:   m.UpdatedAt().Format(timeLayout),
	}
}

// ToRoleModelDTOs converts a list of domain role models to DTOs.
func ToRoleModelDTOs(list []*rolemodel.RoleModel) []*RoleModelDTO {
	dtos := make([]*RoleModelDTO, 0, len(list))
	for _, m := range list {
		dtos = append(dtos, ToRoleModelDTO(m))
	}
	return dtos
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}
