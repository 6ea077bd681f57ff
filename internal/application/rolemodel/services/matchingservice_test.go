package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/infrastructure/repository"
	"rolehub/internal/shared/config"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

func newMatchingService(t *testing.T, f *statsFixture) *MatchingService {
	log := logger.NewLogger()
	return NewMatchingService(
		f.profiles,
		repository.NewEmployeeMatcher(f.db, log),
		log,
	)
}

func TestMatchingService_CountMatching(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, config.StatsConfig{})
	service := newMatchingService(t, f)

	f.seedCatalog(t, "Developer", 2)
	modelID := f.seedModel(t, "Engineering")
	profileID := f.seedProfile(t, modelID, "Backend", rolemodel.Criteria{EmployeeProfiles: []string{"Developer"}}, 0)

	result, err := service.CountMatching(ctx, profileID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.MatchedEmployeesCount)

	t.Run("unknown profile is not found", func(t *testing.T) {
		_, err := service.CountMatching(ctx, 404)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestMatchingService_ListMatching(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, config.StatsConfig{})
	service := newMatchingService(t, f)

	f.seedCatalog(t, "Developer", 3)
	modelID := f.seedModel(t, "Engineering")
	profileID := f.seedProfile(t, modelID, "Backend", rolemodel.Criteria{AllEmployees: true}, 0)

	t.Run("lists one page with the full count", func(t *testing.T) {
		list, total, err := service.ListMatching(ctx, profileID, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, list, 2)
	})

	t.Run("rejects out-of-range pagination", func(t *testing.T) {
		_, _, err := service.ListMatching(ctx, profileID, 0, 10)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

		_, _, err = service.ListMatching(ctx, profileID, 1, 0)
		require.Error(t, err)
	})
}
