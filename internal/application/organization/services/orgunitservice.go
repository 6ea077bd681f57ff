// Package services implements the organization application services.
package services

import (
	"context"
	"errors"

	"rolehub/internal/application/organization/dto"
	"rolehub/internal/domain/organization"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// OrgUnitService manages the organizational unit tree.
type OrgUnitService struct {
	repo   organization.OrgUnitRepository
	logger logger.Interface
}

// NewOrgUnitService creates a new org unit service.
func NewOrgUnitService(repo organization.OrgUnitRepository, log logger.Interface) *OrgUnitService {
	return &OrgUnitService{
		repo:   repo,
		logger: log,
	}
}

// Create creates a new org unit under the optional parent.
func (s *OrgUnitService) Create(ctx context.Context, req dto.CreateOrgUnitRequest) (*dto.OrgUnitDTO, error) {
	level := 0
	path := ""
	if req.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, organization.ErrOrgUnitNotFound) {
				return nil, apperrors.NewNotFoundError("parent org unit not found")
			}
			return nil, apperrors.NewInternalError("failed to resolve parent org unit")
		}
		level = parent.Level() + 1
		path = parent.Path()
	}

	unit, err := organization.NewOrgUnit(req.Name, req.Code, organization.UnitType(req.UnitType), req.ParentID, level)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, unit); err != nil {
		if errors.Is(err, organization.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("org unit name already exists")
		}
		s.logger.Errorw("failed to create org unit", "name", req.Name, "error", err)
		return nil, apperrors.NewInternalError("failed to create org unit")
	}

	unit.SetPath(utils.AppendPath(path, unit.ID()))
	if err := s.repo.Update(ctx, unit); err != nil {
		s.logger.Errorw("failed to persist org unit path", "id", unit.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to create org unit")
	}

	return dto.ToOrgUnitDTO(unit), nil
}

// Get retrieves one org unit.
func (s *OrgUnitService) Get(ctx context.Context, id uint) (*dto.OrgUnitDTO, error) {
	unit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, organization.ErrOrgUnitNotFound) {
			return nil, apperrors.NewNotFoundError("org unit not found")
		}
		return nil, apperrors.NewInternalError("failed to get org unit")
	}
	return dto.ToOrgUnitDTO(unit), nil
}

// List retrieves org units matching the filter with their total count.
func (s *OrgUnitService) List(ctx context.Context, filter organization.OrgUnitFilter) ([]*dto.OrgUnitDTO, int64, error) {
	units, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list org units")
	}
	return dto.ToOrgUnitDTOs(units), total, nil
}

// Rename renames an org unit.
func (s *OrgUnitService) Rename(ctx context.Context, id uint, req dto.UpdateOrgUnitRequest) (*dto.OrgUnitDTO, error) {
	unit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, organization.ErrOrgUnitNotFound) {
			return nil, apperrors.NewNotFoundError("org unit not found")
		}
		return nil, apperrors.NewInternalError("failed to get org unit")
	}

	if err := unit.Rename(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, unit); err != nil {
		if errors.Is(err, organization.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("org unit name already exists")
		}
		s.logger.Errorw("failed to update org unit", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update org unit")
	}

	return dto.ToOrgUnitDTO(unit), nil
}

// Delete removes an org unit that has no children and no members.
func (s *OrgUnitService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, organization.ErrOrgUnitNotFound):
			return apperrors.NewNotFoundError("org unit not found")
		case errors.Is(err, organization.ErrOrgUnitHasChilds):
			return apperrors.NewConflictError("org unit still has child units")
		case errors.Is(err, organization.ErrOrgUnitHasMembers):
			return apperrors.NewConflictError("org unit still has members")
		default:
			s.logger.Errorw("failed to delete org unit", "id", id, "error", err)
			return apperrors.NewInternalError("failed to delete org unit")
		}
	}
	return nil
}
