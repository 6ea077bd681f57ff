package services

import (
	"context"
	"errors"

	"rolehub/internal/application/organization/dto"
	"rolehub/internal/domain/organization"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// PositionService manages the position catalog.
type PositionService struct {
	repo   organization.PositionRepository
	logger logger.Interface
}

// NewPositionService creates a new position service.
func NewPositionService(repo organization.PositionRepository, log logger.Interface) *PositionService {
	return &PositionService{
		repo:   repo,
		logger: log,
	}
}

// Create creates a new position.
func (s *PositionService) Create(ctx context.Context, req dto.CreatePositionRequest) (*dto.PositionDTO, error) {
	position, err := organization.NewPosition(req.Title, req.Code, req.HierarchyLevel, req.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, position); err != nil {
		if errors.Is(err, organization.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("position title already exists")
		}
		s.logger.Errorw("failed to create position", "title", req.Title, "error", err)
		return nil, apperrors.NewInternalError("failed to create position")
	}

	return dto.ToPositionDTO(position), nil
}

// Get retrieves one position.
func (s *PositionService) Get(ctx context.Context, id uint) (*dto.PositionDTO, error) {
	position, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, organization.ErrPositionNotFound) {
			return nil, apperrors.NewNotFoundError("position not found")
		}
		return nil, apperrors.NewInternalError("failed to get position")
	}
	return dto.ToPositionDTO(position), nil
}

// List retrieves positions matching the filter with their total count.
func (s *PositionService) List(ctx context.Context, filter organization.PositionFilter) ([]*dto.PositionDTO, int64, error) {
	positions, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list positions")
	}
	return dto.ToPositionDTOs(positions), total, nil
}

// Update updates a position.
func (s *PositionService) Update(ctx context.Context, id uint, req dto.UpdatePositionRequest) (*dto.PositionDTO, error) {
	position, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, organization.ErrPositionNotFound) {
			return nil, apperrors.NewNotFoundError("position not found")
		}
		return nil, apperrors.NewInternalError("failed to get position")
	}

	if err := position.Update(req.Title, req.Code, req.HierarchyLevel, req.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, position); err != nil {
		if errors.Is(err, organization.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("position title already exists")
		}
		s.logger.Errorw("failed to update position", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update position")
	}

	return dto.ToPositionDTO(position), nil
}
