package services

import (
	"context"
	"errors"

	"rolehub/internal/application/organization/dto"
	"rolehub/internal/domain/organization"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// AgileService manages the tribe, product and agile team hierarchy.
type AgileService struct {
	repo   organization.AgileRepository
	logger logger.Interface
}

// NewAgileService creates a new agile hierarchy service.
func NewAgileService(repo organization.AgileRepository, log logger.Interface) *AgileService {
	return &AgileService{
		repo:   repo,
		logger: log,
	}
}

// CreateTribe creates a new tribe.
func (s *AgileService) CreateTribe(ctx context.Context, req dto.CreateTribeRequest) (*dto.TribeDTO, error) {
	tribe, err := organization.NewTribe(req.Name, req.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.CreateTribe(ctx, tribe); err != nil {
		if errors.Is(err, organization.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("tribe name already exists")
		}
		s.logger.Errorw("failed to create tribe", "name", req.Name, "error", err)
		return nil, apperrors.NewInternalError("failed to create tribe")
	}

	return dto.ToTribeDTO(tribe), nil
}

// ListTribes retrieves tribes with their total count.
func (s *AgileService) ListTribes(ctx context.Context, page, size int) ([]*dto.TribeDTO, int64, error) {
	tribes, total, err := s.repo.ListTribes(ctx, page, size)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list tribes")
	}
	return dto.ToTribeDTOs(tribes), total, nil
}

// CreateProduct creates a new product within a tribe.
func (s *AgileService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductDTO, error) {
	product, err := organization.NewProduct(req.Name, req.TribeID, req.ProductType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, organization.ErrTribeNotFound) {
			return nil, apperrors.NewNotFoundError("tribe not found")
		}
		s.logger.Errorw("failed to create product", "name", req.Name, "error", err)
		return nil, apperrors.NewInternalError("failed to create product")
	}

	return dto.ToProductDTO(product), nil
}

// ListProducts retrieves products, optionally narrowed to a tribe.
func (s *AgileService) ListProducts(ctx context.Context, tribeID *uint) ([]*dto.ProductDTO, error) {
	products, err := s.repo.ListProducts(ctx, tribeID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list products")
	}
	return dto.ToProductDTOs(products), nil
}

// CreateAgileTeam creates a new agile team within a product.
func (s *AgileService) CreateAgileTeam(ctx context.Context, req dto.CreateAgileTeamRequest) (*dto.AgileTeamDTO, error) {
	team, err := organization.NewAgileTeam(req.Name, req.ProductID, organization.TeamType(req.TeamType))
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.CreateAgileTeam(ctx, team); err != nil {
		if errors.Is(err, organization.ErrProductNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		s.logger.Errorw("failed to create agile team", "name", req.Name, "error", err)
		return nil, apperrors.NewInternalError("failed to create agile team")
	}

	return dto.ToAgileTeamDTO(team), nil
}

// ListAgileTeams retrieves agile teams, optionally narrowed to a product.
func (s *AgileService) ListAgileTeams(ctx context.Context, productID *uint) ([]*dto.AgileTeamDTO, error) {
	teams, err := s.repo.ListAgileTeams(ctx, productID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list agile teams")
	}
	return dto.ToAgileTeamDTOs(teams), nil
}
