// Package services implements the access application services.
package services

import (
	"context"
	"errors"

	"rolehub/internal/application/access/dto"
	"rolehub/internal/domain/access"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// SystemService manages application systems.
type SystemService struct {
	repo   access.SystemRepository
	logger logger.Interface
}

// NewSystemService creates a new application system service.
func NewSystemService(repo access.SystemRepository, log logger.Interface) *SystemService {
	return &SystemService{
		repo:   repo,
		logger: log,
	}
}

// Create creates a new application system.
func (s *SystemService) Create(ctx context.Context, req dto.CreateSystemRequest) (*dto.ApplicationSystemDTO, error) {
	sys, err := access.NewApplicationSystem(req.Name, req.Code, req.Description, req.Criticality, access.SystemType(req.SystemType), req.OwnerID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, sys); err != nil {
		if errors.Is(err, access.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("application system name already exists")
		}
		s.logger.Errorw("failed to create application system", "name", req.Name, "error", err)
		return nil, apperrors.NewInternalError("failed to create application system")
	}

	return dto.ToApplicationSystemDTO(sys), nil
}

// Get retrieves one application system.
func (s *SystemService) Get(ctx context.Context, id uint) (*dto.ApplicationSystemDTO, error) {
	sys, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, access.ErrSystemNotFound) {
			return nil, apperrors.NewNotFoundError("application system not found")
		}
		return nil, apperrors.NewInternalError("failed to get application system")
	}
	return dto.ToApplicationSystemDTO(sys), nil
}

// List retrieves application systems matching the filter with their total count.
func (s *SystemService) List(ctx context.Context, filter access.SystemFilter) ([]*dto.ApplicationSystemDTO, int64, error) {
	systems, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list application systems")
	}
	return dto.ToApplicationSystemDTOs(systems), total, nil
}

// Update updates an application system.
func (s *SystemService) Update(ctx context.Context, id uint, req dto.UpdateSystemRequest) (*dto.ApplicationSystemDTO, error) {
	sys, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, access.ErrSystemNotFound) {
			return nil, apperrors.NewNotFoundError("application system not found")
		}
		return nil, apperrors.NewInternalError("failed to get application system")
	}

	if err := sys.Update(req.Name, req.Code, req.Description, req.Criticality, access.SystemType(req.SystemType), req.OwnerID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, sys); err != nil {
		if errors.Is(err, access.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("application system name already exists")
		}
		s.logger.Errorw("failed to update application system", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update application system")
	}

	return dto.ToApplicationSystemDTO(sys), nil
}

// Delete removes an application system that no longer exposes accesses.
func (s *SystemService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, access.ErrSystemNotFound):
			return apperrors.NewNotFoundError("application system not found")
		case errors.Is(err, access.ErrSystemHasAccesses):
			return apperrors.NewConflictError("application system still exposes accesses")
		default:
			s.logger.Errorw("failed to delete application system", "id", id, "error", err)
			return apperrors.NewInternalError("failed to delete application system")
		}
	}
	return nil
}
