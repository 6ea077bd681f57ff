package services

import (
	"context"
	"errors"

	"rolehub/internal/application/access/dto"
	"rolehub/internal/domain/access"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// AccessService manages the accesses application systems expose.
type AccessService struct {
	repo   access.AccessRepository
	logger logger.Interface
}

// NewAccessService creates a new access service.
func NewAccessService(repo access.AccessRepository, log logger.Interface) *AccessService {
	return &AccessService{
		repo:   repo,
		logger: log,
	}
}

// Create creates a new access under an application system.
func (s *AccessService) Create(ctx context.Context, req dto.CreateAccessRequest) (*dto.AccessDTO, error) {
	a, err := access.NewAccess(req.SystemID, req.RoleName, req.Criticality, req.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, a); err != nil {
		switch {
		case errors.Is(err, access.ErrSystemNotFound):
			return nil, apperrors.NewNotFoundError("application system not found")
		case errors.Is(err, access.ErrDuplicateName):
			return nil, apperrors.NewConflictError("access name already exists")
		default:
			s.logger.Errorw("failed to create access", "role_name", req.RoleName, "error", err)
			return nil, apperrors.NewInternalError("failed to create access")
		}
	}

	return dto.ToAccessDTO(a), nil
}

// Get retrieves one access.
func (s *AccessService) Get(ctx context.Context, id uint) (*dto.AccessDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, access.ErrAccessNotFound) {
			return nil, apperrors.NewNotFoundError("access not found")
		}
		return nil, apperrors.NewInternalError("failed to get access")
	}
	return dto.ToAccessDTO(a), nil
}

// List retrieves accesses matching the filter with their total count.
func (s *AccessService) List(ctx context.Context, filter access.AccessFilter) ([]*dto.AccessDTO, int64, error) {
	list, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list accesses")
	}
	return dto.ToAccessDTOs(list), total, nil
}

// Update updates an access.
func (s *AccessService) Update(ctx context.Context, id uint, req dto.UpdateAccessRequest) (*dto.AccessDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, access.ErrAccessNotFound) {
			return nil, apperrors.NewNotFoundError("access not found")
		}
		return nil, apperrors.NewInternalError("failed to get access")
	}

	if err := a.Update(req.RoleName, req.Criticality, req.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, access.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("access name already exists")
		}
		s.logger.Errorw("failed to update access", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update access")
	}

	return dto.ToAccessDTO(a), nil
}

// Delete removes an access along with its grants and profile links.
func (s *AccessService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, access.ErrAccessNotFound) {
			return apperrors.NewNotFoundError("access not found")
		}
		s.logger.Errorw("failed to delete access", "id", id, "error", err)
		return apperrors.NewInternalError("failed to delete access")
	}
	return nil
}
