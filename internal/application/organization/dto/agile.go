package dto

import (
	"rolehub/internal/domain/organization"
)

// TribeDTO represents the data transfer object for tribes.
type TribeDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

// ToTribeDTO converts a domain tribe to DTO.
func ToTribeDTO(tribe *organization.Tribe) *TribeDTO {
	if tribe == nil {
		return nil
	}
	return &TribeDTO{
		ID:          tribe.ID(),
		Name:        tribe.Name(),
		Description: tribe.Description(),
		IsActive:    tribe.IsActive(),
		CreatedAt:   tribe.CreatedAt().Format(timeLayout),
	}
}

// ToTribeDTOs converts a list of domain tribes to DTOs.
func ToTribeDTOs(tribes []*organization.Tribe) []*TribeDTO {
	dtos := make([]*TribeDTO, 0, len(tribes))
	for _, tribe := range tribes {
		dtos = append(dtos, ToTribeDTO(tribe))
	}
	return dtos
}

// ProductDTO represents the data transfer object for products.
type ProductDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	TribeID     uint   `json:"tribe_id"`
	ProductType string `json:"product_type,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

// ToProductDTO converts a domain product to DTO.
func ToProductDTO(product *organization.Product) *ProductDTO {
	if product == nil {
		return nil
	}
	return &ProductDTO{
		ID:          product.ID(),
		Name:        product.Name(),
		TribeID:     product.TribeID(),
		ProductType: product.ProductType(),
		IsActive:    product.IsActive(),
		CreatedAt:   product.CreatedAt().Format(timeLayout),
	}
}

// ToProductDTOs converts a list of domain products to DTOs.
func ToProductDTOs(products []*organization.Product) []*ProductDTO {
	dtos := make([]*ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, ToProductDTO(product))
	}
	return dtos
}

// AgileTeamDTO represents the data transfer object for agile teams.
type AgileTeamDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ProductID uint   `json:"product_id"`
	TeamType  string `json:"team_type"` // Change, Run
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// ToAgileTeamDTO converts a domain agile team to DTO.
func ToAgileTeamDTO(team *organization.AgileTeam) *AgileTeamDTO {
	if team == nil {
		return nil
	}
	return &AgileTeamDTO{
		ID:        team.ID(),
		Name:      team.Name(),
		ProductID: team.ProductID(),
		TeamType:  string(team.TeamType()),
		IsActive:  team.IsActive(),
		CreatedAt: team.CreatedAt().Format(timeLayout),
	}
}

// ToAgileTeamDTOs converts a list of domain agile teams to DTOs.
func ToAgileTeamDTOs(teams []*organization.AgileTeam) []*AgileTeamDTO {
	dtos := make([]*AgileTeamDTO, 0, len(teams))
	for _, team := range teams {
		dtos = append(dtos, ToAgileTeamDTO(team))
	}
	return dtos
}

// CreateTribeRequest carries the payload for creating a tribe.
type CreateTribeRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=500"`
}

// CreateProductRequest carries the payload for creating a product.
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	TribeID     uint   `json:"tribe_id" binding:"required"`
	ProductType string `json:"product_type" binding:"max=50"`
}

// CreateAgileTeamRequest carries the payload for creating an agile team.
type CreateAgileTeamRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	ProductID uint   `json:"product_id" binding:"required"`
	TeamType  string `json:"team_type" binding:"required,oneof=Change Run"`
}
