package services

import (
	"context"
	"errors"

	"rolehub/internal/application/organization/dto"
	"rolehub/internal/domain/organization"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// ReferenceService manages the flat reference catalogs: employee profiles,
// employee types and team roles.
type ReferenceService struct {
	repo   organization.ReferenceRepository
	logger logger.Interface
}

// NewReferenceService creates a new reference catalog service.
func NewReferenceService(repo organization.ReferenceRepository, log logger.Interface) *ReferenceService {
	return &ReferenceService{
		repo:   repo,
		logger: log,
	}
}

// Create adds an entry to one of the catalogs.
func (s *ReferenceService) Create(ctx context.Context, kind organization.RefKind, req dto.CreateNamedRefRequest) (*dto.NamedRefDTO, error) {
	ref, err := organization.NewNamedRef(req.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, kind, ref); err != nil {
		if errors.Is(err, organization.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("name already exists")
		}
		s.logger.Errorw("failed to create reference entry", "kind", kind, "name", req.Name, "error", err)
		return nil, apperrors.NewInternalError("failed to create reference entry")
	}

	return dto.ToNamedRefDTO(ref), nil
}

// Get retrieves one catalog entry.
func (s *ReferenceService) Get(ctx context.Context, kind organization.RefKind, id uint) (*dto.NamedRefDTO, error) {
	ref, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, organization.ErrRefNotFound) {
			return nil, apperrors.NewNotFoundError("reference entry not found")
		}
		return nil, apperrors.NewInternalError("failed to get reference entry")
	}
	return dto.ToNamedRefDTO(ref), nil
}

// ListAll retrieves the whole catalog for a kind.
func (s *ReferenceService) ListAll(ctx context.Context, kind organization.RefKind) ([]*dto.NamedRefDTO, error) {
	refs, err := s.repo.ListAll(ctx, kind)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reference entries")
	}
	return dto.ToNamedRefDTOs(refs), nil
}
