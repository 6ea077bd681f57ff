package services

import (
	"context"
	"errors"

	"rolehub/internal/application/rolemodel/dto"
	"rolehub/internal/domain/rolemodel"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// MatchingService previews which employees a profile's criteria select,
// before any grants are written. Count and list run the same predicate,
// so the reported count always agrees with the pages.
type MatchingService struct {
	profiles rolemodel.ProfileRepository
	matcher  rolemodel.EmployeeMatcher
	logger   logger.Interface
}

// NewMatchingService creates a new matching service.
func NewMatchingService(
	profiles rolemodel.ProfileRepository,
	matcher rolemodel.EmployeeMatcher,
	log logger.Interface,
) *MatchingService {
	return &MatchingService{
		profiles: profiles,
		matcher:  matcher,
		logger:   log,
	}
}

// CountMatching counts employees matched by a profile's criteria.
func (s *MatchingService) CountMatching(ctx context.Context, roleProfileID uint) (*dto.MatchCountDTO, error) {
	profile, err := s.getProfile(ctx, roleProfileID)
	if err != nil {
		return nil, err
	}

	count, err := s.matcher.CountMatching(ctx, profile.Criteria())
	if err != nil {
		s.logger.Errorw("failed to count matching employees", "role_profile_id", roleProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to count matching employees")
	}

	return &dto.MatchCountDTO{MatchedEmployeesCount: count}, nil
}

// ListMatching retrieves one page of employees matched by a profile's
// criteria, ordered by full name. Pages past the end are empty, not an
// error.
func (s *MatchingService) ListMatching(ctx context.Context, roleProfileID uint, page, size int) ([]*dto.MatchedEmployeeDTO, int64, error) {
	p, err := utils.ValidatePagination(page, size)
	if err != nil {
		return nil, 0, err
	}

	profile, err := s.getProfile(ctx, roleProfileID)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.matcher.CountMatching(ctx, profile.Criteria())
	if err != nil {
		s.logger.Errorw("failed to count matching employees", "role_profile_id", roleProfileID, "error", err)
		return nil, 0, apperrors.NewInternalError("failed to count matching employees")
	}

	matched, err := s.matcher.ListMatching(ctx, profile.Criteria(), p.Page, p.Size)
	if err != nil {
		s.logger.Errorw("failed to list matching employees", "role_profile_id", roleProfileID, "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list matching employees")
	}

	return dto.ToMatchedEmployeeDTOs(matched), total, nil
}

func (s *MatchingService) getProfile(ctx context.Context, id uint) (*rolemodel.RoleProfile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rolemodel.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("role profile not found")
		}
		return nil, apperrors.NewInternalError("failed to get role profile")
	}
	return profile, nil
}
