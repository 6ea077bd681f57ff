package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rolehub/internal/application/rolemodel/dto"
	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/infrastructure/repository"
	"rolehub/internal/shared/config"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

func newRoleModelService(f *statsFixture) *RoleModelService {
	log := logger.NewLogger()
	return NewRoleModelService(
		f.models,
		f.profiles,
		f.links,
		repository.NewAccessRepository(f.db, log),
		log,
	)
}

func TestRoleModelService_CreateRoleModel(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, config.StatsConfig{})
	service := newRoleModelService(f)

	created, err := service.CreateRoleModel(ctx, dto.CreateRoleModelRequest{Name: "Engineering", Description: "dev roles"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Engineering", created.Name)
	assert.Equal(t, rolemodel.DefaultModelVersion, created.Version)
	assert.True(t, created.IsActive)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := service.CreateRoleModel(ctx, dto.CreateRoleModelRequest{Name: "Engineering"})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := service.CreateRoleModel(ctx, dto.CreateRoleModelRequest{Name: ""})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})
}

func TestRoleModelService_Profiles(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, config.StatsConfig{})
	service := newRoleModelService(f)

	model, err := service.CreateRoleModel(ctx, dto.CreateRoleModelRequest{Name: "Engineering"})
	require.NoError(t, err)

	criteria := rolemodel.Criteria{Positions: []string{"Backend Developer"}}
	profile, err := service.CreateProfile(ctx, model.ID, dto.CreateRoleProfileRequest{
		Name:     "Backend",
		Criteria: criteria,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ID, profile.RoleModelID)
	assert.Equal(t, []string{"Backend Developer"}, profile.Criteria.Positions)

	t.Run("update replaces the criteria document", func(t *testing.T) {
		updated, err := service.UpdateProfile(ctx, profile.ID, dto.UpdateRoleProfileRequest{
			Name:     "Backend",
			Criteria: rolemodel.Criteria{AllEmployees: true},
		})
		require.NoError(t, err)
		assert.True(t, updated.Criteria.AllEmployees)
		assert.Empty(t, updated.Criteria.Positions)
	})

	t.Run("list by role model", func(t *testing.T) {
		list, err := service.ListProfiles(ctx, model.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("delete removes the profile", func(t *testing.T) {
		require.NoError(t, service.DeleteProfile(ctx, profile.ID))

		_, err := service.GetProfile(ctx, profile.ID)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestRoleModelService_LinkAccess(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, config.StatsConfig{})
	service := newRoleModelService(f)

	model, err := service.CreateRoleModel(ctx, dto.CreateRoleModelRequest{Name: "Engineering"})
	require.NoError(t, err)
	profile, err := service.CreateProfile(ctx, model.ID, dto.CreateRoleProfileRequest{Name: "Backend"})
	require.NoError(t, err)

	accessModel := models.AccessModel{SystemID: 1, RoleName: "repo-write", IsActive: true}
	require.NoError(t, f.db.Create(&accessModel).Error)

	link, err := service.LinkAccess(ctx, profile.ID, dto.LinkAccessRequest{AccessID: accessModel.ID})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, link.RoleProfileID)
	assert.Equal(t, accessModel.ID, link.AccessID)

	t.Run("duplicate link conflicts", func(t *testing.T) {
		_, err := service.LinkAccess(ctx, profile.ID, dto.LinkAccessRequest{AccessID: accessModel.ID})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("unknown access is not found", func(t *testing.T) {
		_, err := service.LinkAccess(ctx, profile.ID, dto.LinkAccessRequest{AccessID: 999})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("unlink twice reports not found", func(t *testing.T) {
		require.NoError(t, service.UnlinkAccess(ctx, profile.ID, accessModel.ID))

		err := service.UnlinkAccess(ctx, profile.ID, accessModel.ID)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})
}
