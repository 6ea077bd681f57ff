package services

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"rolehub/internal/application/rolemodel/dto"
	"rolehub/internal/domain/access"
	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/shared/config"
	"rolehub/internal/shared/constants"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// StatsService aggregates profile reach and grant usage. Per-profile
// counts in a model report fan out concurrently; the totals sum matches
// per profile, so an employee matched by several profiles is counted once
// per profile, not once overall.
type StatsService struct {
	models      rolemodel.RoleModelRepository
	profiles    rolemodel.ProfileRepository
	links       rolemodel.ProfileAccessRepository
	matcher     rolemodel.EmployeeMatcher
	assignments access.AssignmentRepository
	cfg         config.StatsConfig
	logger      logger.Interface
}

// NewStatsService creates a new statistics service.
func NewStatsService(
	models rolemodel.RoleModelRepository,
	profiles rolemodel.ProfileRepository,
	links rolemodel.ProfileAccessRepository,
	matcher rolemodel.EmployeeMatcher,
	assignments access.AssignmentRepository,
	cfg config.StatsConfig,
	log logger.Interface,
) *StatsService {
	if cfg.OveruseThreshold <= 0 {
		cfg.OveruseThreshold = constants.DefaultOveruseThreshold
	}
	return &StatsService{
		models:      models,
		profiles:    profiles,
		links:       links,
		matcher:     matcher,
		assignments: assignments,
		cfg:         cfg,
		logger:      log,
	}
}

// ProfileSummary reports how many employees a profile matches and how
// many accesses it declares.
func (s *StatsService) ProfileSummary(ctx context.Context, roleProfileID uint) (*dto.ProfileSummaryDTO, error) {
	profile, err := s.profiles.GetByID(ctx, roleProfileID)
	if err != nil {
		if errors.Is(err, rolemodel.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("role profile not found")
		}
		return nil, apperrors.NewInternalError("failed to get role profile")
	}

	matched, err := s.matcher.CountMatching(ctx, profile.Criteria())
	if err != nil {
		s.logger.Errorw("failed to count matching employees", "role_profile_id", roleProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to count matching employees")
	}

	accesses, err := s.links.CountByProfile(ctx, roleProfileID)
	if err != nil {
		s.logger.Errorw("failed to count profile accesses", "role_profile_id", roleProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to count profile accesses")
	}

	return &dto.ProfileSummaryDTO{
		RoleProfileID:         roleProfileID,
		Name:                  profile.Name(),
		MatchedEmployeesCount: matched,
		AccessesCount:         accesses,
	}, nil
}

// ModelStats aggregates coverage over every profile of a role model.
// total_employees_covered is the sum of per-profile match counts, so
// overlapping profiles count an employee more than once; each profile's
// coverage percentage is its share of that sum.
func (s *StatsService) ModelStats(ctx context.Context, roleModelID uint) (*dto.ModelStatsDTO, error) {
	if _, err := s.models.GetByID(ctx, roleModelID); err != nil {
		if errors.Is(err, rolemodel.ErrRoleModelNotFound) {
			return nil, apperrors.NewNotFoundError("role model not found")
		}
		return nil, apperrors.NewInternalError("failed to get role model")
	}

	profiles, err := s.profiles.ListByRoleModel(ctx, roleModelID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list role profiles")
	}

	summaries := make([]*dto.ProfileCoverageDTO, len(profiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.StatsConcurrency)
	for i, profile := range profiles {
		g.Go(func() error {
			matched, err := s.matcher.CountMatching(gctx, profile.Criteria())
			if err != nil {
				return err
			}
			accesses, err := s.links.CountByProfile(gctx, profile.ID())
			if err != nil {
				return err
			}
			summaries[i] = &dto.ProfileCoverageDTO{
				RoleProfileID:         profile.ID(),
				Name:                  profile.Name(),
				MatchedEmployeesCount: matched,
				AccessesCount:         accesses,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to aggregate model stats", "role_model_id", roleModelID, "error", err)
		return nil, apperrors.NewInternalError("failed to aggregate model stats")
	}

	stats := &dto.ModelStatsDTO{
		RoleModelID:     roleModelID,
		TotalProfiles:   int64(len(profiles)),
		ProfilesSummary: summaries,
	}
	for _, summary := range summaries {
		stats.TotalEmployeesCovered += summary.MatchedEmployeesCount
		stats.TotalAccessesAssigned += summary.AccessesCount
	}
	for _, summary := range summaries {
		summary.CoveragePercentage = coverage(summary.MatchedEmployeesCount, stats.TotalEmployeesCovered)
	}

	return stats, nil
}

// AccessStats aggregates grant usage over the whole access catalog.
func (s *StatsService) AccessStats(ctx context.Context) (*dto.AccessStatsDTO, error) {
	summary, err := s.assignments.UsageSummary(ctx, s.cfg.OveruseThreshold)
	if err != nil {
		s.logger.Errorw("failed to aggregate access stats", "error", err)
		return nil, apperrors.NewInternalError("failed to aggregate access stats")
	}

	return &dto.AccessStatsDTO{
		TotalAccesses:    summary.TotalAccesses,
		TotalAssignments: summary.TotalAssignments,
		UnusedAccesses:   summary.UnusedAccesses,
		OverusedAccesses: summary.OverusedAccesses,
		ByAssignmentType: summary.ByAssignmentType,
		ByCriticality:    summary.ByCriticality,
		BySystemType:     summary.BySystemType,
	}, nil
}

// coverage returns the share of covered as a percentage rounded to one
// decimal place, 0.0 when the denominator is zero.
func coverage(matched, covered int64) float64 {
	if covered == 0 {
		return 0.0
	}
	return math.Round(float64(matched)/float64(covered)*1000) / 10
}
