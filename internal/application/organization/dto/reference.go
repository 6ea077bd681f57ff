package dto

import (
	"rolehub/internal/domain/organization"
)

// NamedRefDTO represents one entry of a flat reference catalog.
type NamedRefDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ToNamedRefDTO converts a domain reference entry to DTO.
func ToNamedRefDTO(ref *organization.NamedRef) *NamedRefDTO {
	if ref == nil {
		return nil
	}
	return &NamedRefDTO{
		ID:        ref.ID(),
		Name:      ref.Name(),
		CreatedAt: ref.CreatedAt().Format(timeLayout),
	}
}

// ToNamedRefDTOs converts a list of domain reference entries to DTOs.
func ToNamedRefDTOs(refs []*organization.NamedRef) []*NamedRefDTO {
	dtos := make([]*NamedRefDTO, 0, len(refs))
	for _, ref := range refs {
		dtos = append(dtos, ToNamedRefDTO(ref))
	}
	return dtos
}

// CreateNamedRefRequest carries the payload for creating a catalog entry.
type CreateNamedRefRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}
