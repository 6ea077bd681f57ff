package services

import (
	"context"
	"errors"

	"rolehub/internal/application/rolemodel/dto"
	"rolehub/internal/domain/access"
	"rolehub/internal/domain/rolemodel"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// RoleModelService manages role models, their profiles and the access
// links each profile declares.
type RoleModelService struct {
	models   rolemodel.RoleModelRepository
	profiles rolemodel.ProfileRepository
	links    rolemodel.ProfileAccessRepository
	accesses access.AccessRepository
	logger   logger.Interface
}

// NewRoleModelService creates a new role model service.
func NewRoleModelService(
	models rolemodel.RoleModelRepository,
	profiles rolemodel.ProfileRepository,
	links rolemodel.ProfileAccessRepository,
	accesses access.AccessRepository,
	log logger.Interface,
) *RoleModelService {
	return &RoleModelService{
		models:   models,
		profiles: profiles,
		links:    links,
		accesses: accesses,
		logger:   log,
	}
}

// CreateRoleModel creates a new role model with a unique name.
func (s *RoleModelService) CreateRoleModel(ctx context.Context, req dto.CreateRoleModelRequest) (*dto.RoleModelDTO, error) {
	model, err := rolemodel.NewRoleModel(req.Name, req.Description, req.Author, req.Version)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.models.Create(ctx, model); err != nil {
		if errors.Is(err, rolemodel.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("role model with this name already exists")
		}
		s.logger.Errorw("failed to create role model", "name", req.Name, "error", err)
		return nil, apperrors.NewInternalError("failed to create role model")
	}

	return dto.ToRoleModelDTO(model), nil
}

// GetRoleModel retrieves a role model by ID.
func (s *RoleModelService) GetRoleModel(ctx context.Context, id uint) (*dto.RoleModelDTO, error) {
	model, err := s.models.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rolemodel.ErrRoleModelNotFound) {
			return nil, apperrors.NewNotFoundError("role model not found")
		}
		return nil, apperrors.NewInternalError("failed to get role model")
	}

	return dto.ToRoleModelDTO(model), nil
}

// ListRoleModels retrieves role models matching the filter.
func (s *RoleModelService) ListRoleModels(ctx context.Context, filter rolemodel.Filter) ([]*dto.RoleModelDTO, int64, error) {
	list, total, err := s.models.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list role models")
	}

	return dto.ToRoleModelDTOs(list), total, nil
}

// UpdateRoleModel updates a role model's name and description.
func (s *RoleModelService) UpdateRoleModel(ctx context.Context, id uint, req dto.UpdateRoleModelRequest) (*dto.RoleModelDTO, error) {
	model, err := s.models.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rolemodel.ErrRoleModelNotFound) {
			return nil, apperrors.NewNotFoundError("role model not found")
		}
		return nil, apperrors.NewInternalError("failed to get role model")
	}

	if err := model.Update(req.Name, req.Description, req.Version); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.models.Update(ctx, model); err != nil {
		if errors.Is(err, rolemodel.ErrDuplicateName) {
			return nil, apperrors.NewConflictError("role model with this name already exists")
		}
		s.logger.Errorw("failed to update role model", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update role model")
	}

	return dto.ToRoleModelDTO(model), nil
}

// DeleteRoleModel removes a role model along with its profiles and links.
func (s *RoleModelService) DeleteRoleModel(ctx context.Context, id uint) error {
	if err := s.models.Delete(ctx, id); err != nil {
		if errors.Is(err, rolemodel.ErrRoleModelNotFound) {
			return apperrors.NewNotFoundError("role model not found")
		}
		s.logger.Errorw("failed to delete role model", "id", id, "error", err)
		return apperrors.NewInternalError("failed to delete role model")
	}

	return nil
}

// CreateProfile adds a profile to an existing role model.
func (s *RoleModelService) CreateProfile(ctx context.Context, roleModelID uint, req dto.CreateRoleProfileRequest) (*dto.RoleProfileDTO, error) {
	profile, err := rolemodel.NewRoleProfile(roleModelID, req.Name, req.Description, req.Criteria)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, rolemodel.ErrRoleModelNotFound) {
			return nil, apperrors.NewNotFoundError("role model not found")
		}
		s.logger.Errorw("failed to create role profile", "role_model_id", roleModelID, "error", err)
		return nil, apperrors.NewInternalError("failed to create role profile")
	}

	return dto.ToRoleProfileDTO(profile), nil
}

// GetProfile retrieves a role profile by ID.
func (s *RoleModelService) GetProfile(ctx context.Context, id uint) (*dto.RoleProfileDTO, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rolemodel.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("role profile not found")
		}
		return nil, apperrors.NewInternalError("failed to get role profile")
	}

	return dto.ToRoleProfileDTO(profile), nil
}

// ListProfiles retrieves all profiles of a role model.
func (s *RoleModelService) ListProfiles(ctx context.Context, roleModelID uint) ([]*dto.RoleProfileDTO, error) {
	if _, err := s.models.GetByID(ctx, roleModelID); err != nil {
		if errors.Is(err, rolemodel.ErrRoleModelNotFound) {
			return nil, apperrors.NewNotFoundError("role model not found")
		}
		return nil, apperrors.NewInternalError("failed to get role model")
	}

	list, err := s.profiles.ListByRoleModel(ctx, roleModelID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list role profiles")
	}

	return dto.ToRoleProfileDTOs(list), nil
}

// UpdateProfile updates a profile's name, description and criteria.
func (s *RoleModelService) UpdateProfile(ctx context.Context, id uint, req dto.UpdateRoleProfileRequest) (*dto.RoleProfileDTO, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rolemodel.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("role profile not found")
		}
		return nil, apperrors.NewInternalError("failed to get role profile")
	}

	if err := profile.Update(req.Name, req.Description, req.Criteria); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		s.logger.Errorw("failed to update role profile", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update role profile")
	}

	return dto.ToRoleProfileDTO(profile), nil
}

// DeleteProfile removes a profile and its access links. Grants already
// created from the profile stay in place.
func (s *RoleModelService) DeleteProfile(ctx context.Context, id uint) error {
	if err := s.profiles.Delete(ctx, id); err != nil {
		if errors.Is(err, rolemodel.ErrProfileNotFound) {
			return apperrors.NewNotFoundError("role profile not found")
		}
		s.logger.Errorw("failed to delete role profile", "id", id, "error", err)
		return apperrors.NewInternalError("failed to delete role profile")
	}

	return nil
}

// LinkAccess declares an access on a profile.
func (s *RoleModelService) LinkAccess(ctx context.Context, roleProfileID uint, req dto.LinkAccessRequest) (*dto.ProfileAccessDTO, error) {
	if _, err := s.profiles.GetByID(ctx, roleProfileID); err != nil {
		if errors.Is(err, rolemodel.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("role profile not found")
		}
		return nil, apperrors.NewInternalError("failed to get role profile")
	}
	if _, err := s.accesses.GetByID(ctx, req.AccessID); err != nil {
		if errors.Is(err, access.ErrAccessNotFound) {
			return nil, apperrors.NewNotFoundError("access not found")
		}
		return nil, apperrors.NewInternalError("failed to get access")
	}

	link, err := rolemodel.NewProfileAccess(roleProfileID, req.AccessID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.links.Create(ctx, link); err != nil {
		if errors.Is(err, rolemodel.ErrDuplicateLink) {
			return nil, apperrors.NewConflictError("access is already linked to this profile")
		}
		s.logger.Errorw("failed to link access", "role_profile_id", roleProfileID, "access_id", req.AccessID, "error", err)
		return nil, apperrors.NewInternalError("failed to link access")
	}

	return dto.ToProfileAccessDTO(link), nil
}

// ListProfileAccesses retrieves the access links a profile declares.
func (s *RoleModelService) ListProfileAccesses(ctx context.Context, roleProfileID uint) ([]*dto.ProfileAccessDTO, error) {
	if _, err := s.profiles.GetByID(ctx, roleProfileID); err != nil {
		if errors.Is(err, rolemodel.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("role profile not found")
		}
		return nil, apperrors.NewInternalError("failed to get role profile")
	}

	list, err := s.links.ListByProfile(ctx, roleProfileID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list profile accesses")
	}

	return dto.ToProfileAccessDTOs(list), nil
}

// UnlinkAccess removes an access declaration from a profile.
func (s *RoleModelService) UnlinkAccess(ctx context.Context, roleProfileID, accessID uint) error {
	if err := s.links.Delete(ctx, roleProfileID, accessID); err != nil {
		if errors.Is(err, rolemodel.ErrProfileAccessNotFound) {
			return apperrors.NewNotFoundError("access is not linked to this profile")
		}
		s.logger.Errorw("failed to unlink access", "role_profile_id", roleProfileID, "access_id", accessID, "error", err)
		return apperrors.NewInternalError("failed to unlink access")
	}

	return nil
}
