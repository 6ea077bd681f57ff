package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rolehub/internal/application/access/dto"
	"rolehub/internal/domain/access"
	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/infrastructure/repository"
	"rolehub/internal/shared/db"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

type reconcilerFixture struct {
	db      *gorm.DB
	service *ReconcilerService
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.RoleModelModel{},
		&models.EmployeeModel{},
		&models.AccessModel{},
		&models.RoleProfileModel{},
		&models.ProfileAccessModel{},
		&models.EmployeeAccessModel{},
	)
	require.NoError(t, err)

	// seedProfile creates profiles under role_model_id 1; the repository
	// verifies that parent row exists before inserting.
	require.NoError(t, database.Create(&models.RoleModelModel{Name: "Test Model", Version: "1.0", IsActive: true}).Error)

	log := logger.NewLogger()
	service := NewReconcilerService(
		repository.NewAssignmentRepository(database, log),
		repository.NewEmployeeRepository(database, log),
		repository.NewAccessRepository(database, log),
		repository.NewRoleProfileRepository(database, log),
		repository.NewProfileAccessRepository(database, log),
		repository.NewEmployeeMatcher(database, log),
		db.NewTransactionManager(database),
		log,
	)
	return &reconcilerFixture{db: database, service: service}
}

func (f *reconcilerFixture) seedEmployees(t *testing.T, count int) []uint {
	ids := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		number := fmt.Sprintf("E-%03d", i+1)
		m := models.EmployeeModel{
			EmployeeNumber: &number,
			FullName:       fmt.Sprintf("Employee %d", i+1),
			OrgUnitID:      1,
			PositionID:     1,
			ProfileID:      1,
			EmployeeTypeID: 1,
		}
		require.NoError(t, f.db.Create(&m).Error)
		ids = append(ids, m.ID)
	}
	return ids
}

func (f *reconcilerFixture) seedAccesses(t *testing.T, count int) []uint {
	ids := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		m := models.AccessModel{SystemID: 1, RoleName: fmt.Sprintf("access-%d", i+1), IsActive: true}
		require.NoError(t, f.db.Create(&m).Error)
		ids = append(ids, m.ID)
	}
	return ids
}

func (f *reconcilerFixture) seedProfile(t *testing.T, criteria rolemodel.Criteria, accessIDs []uint) uint {
	profile, err := rolemodel.NewRoleProfile(1, "Test Profile", "", criteria)
	require.NoError(t, err)

	log := logger.NewLogger()
	profiles := repository.NewRoleProfileRepository(f.db, log)
	require.NoError(t, profiles.Create(context.Background(), profile))

	links := repository.NewProfileAccessRepository(f.db, log)
	for _, accessID := range accessIDs {
		link, err := rolemodel.NewProfileAccess(profile.ID(), accessID)
		require.NoError(t, err)
		require.NoError(t, links.Create(context.Background(), link))
	}
	return profile.ID()
}

func (f *reconcilerFixture) grantCount(t *testing.T) int64 {
	var total int64
	require.NoError(t, f.db.Model(&models.EmployeeAccessModel{}).Count(&total).Error)
	return total
}

func TestReconcilerService_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("grants the cross product", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 2)
		accessIDs := f.seedAccesses(t, 3)

		result, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    employeeIDs,
			AccessIDs:      accessIDs,
			AssignmentType: "manual_request",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(6), result.Created)
		assert.Equal(t, int64(0), result.Skipped)
		assert.Equal(t, int64(6), f.grantCount(t))
	})

	t.Run("rerun skips everything", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 2)
		accessIDs := f.seedAccesses(t, 2)

		req := dto.BulkAssignRequest{
			EmployeeIDs:    employeeIDs,
			AccessIDs:      accessIDs,
			AssignmentType: "manual_request",
		}
		_, err := f.service.Assign(ctx, req)
		require.NoError(t, err)

		result, err := f.service.Assign(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Created)
		assert.Equal(t, int64(4), result.Skipped)
		assert.Equal(t, int64(4), f.grantCount(t))
	})

	t.Run("repeated ids count once", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 1)
		accessIDs := f.seedAccesses(t, 2)

		result, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    []uint{employeeIDs[0], employeeIDs[0], employeeIDs[0]},
			AccessIDs:      append(accessIDs, accessIDs[0]),
			AssignmentType: "manual_request",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Created)
		assert.Equal(t, int64(0), result.Skipped)
		assert.Equal(t, int64(2), f.grantCount(t))
	})

	t.Run("one missing employee aborts the whole call", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 1)
		accessIDs := f.seedAccesses(t, 2)

		_, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    append(employeeIDs, 999),
			AccessIDs:      accessIDs,
			AssignmentType: "manual_request",
		})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
		assert.Contains(t, appErr.Message, "999")

		assert.Equal(t, int64(0), f.grantCount(t), "no partial writes on validation failure")
	})

	t.Run("one missing access aborts the whole call", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 2)
		accessIDs := f.seedAccesses(t, 1)

		_, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    employeeIDs,
			AccessIDs:      append(accessIDs, 555),
			AssignmentType: "manual_request",
		})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
		assert.Equal(t, int64(0), f.grantCount(t))
	})

	t.Run("provenance requires auto_role", func(t *testing.T) {
		f := newReconcilerFixture(t)
		profileID := uint(1)

		_, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    []uint{1},
			AccessIDs:      []uint{1},
			AssignmentType: "manual_request",
			RoleProfileID:  &profileID,
		})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("unknown role profile aborts", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 1)
		accessIDs := f.seedAccesses(t, 1)
		missing := uint(42)

		_, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    employeeIDs,
			AccessIDs:      accessIDs,
			AssignmentType: "auto_role",
			RoleProfileID:  &missing,
		})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestReconcilerService_AssignSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the grant", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 1)
		accessIDs := f.seedAccesses(t, 1)

		grant, err := f.service.AssignSingle(ctx, dto.AssignRequest{
			EmployeeID:     employeeIDs[0],
			AccessID:       accessIDs[0],
			AssignmentType: "manual_request",
		})
		require.NoError(t, err)
		assert.Equal(t, employeeIDs[0], grant.EmployeeID)
		assert.Equal(t, accessIDs[0], grant.AccessID)
		assert.Equal(t, "manual_request", grant.AssignmentType)
		assert.Equal(t, int64(1), f.grantCount(t))
	})

	t.Run("existing pair is a conflict", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 1)
		accessIDs := f.seedAccesses(t, 1)

		req := dto.AssignRequest{
			EmployeeID:     employeeIDs[0],
			AccessID:       accessIDs[0],
			AssignmentType: "manual_request",
		}
		_, err := f.service.AssignSingle(ctx, req)
		require.NoError(t, err)

		_, err = f.service.AssignSingle(ctx, req)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
		assert.Equal(t, int64(1), f.grantCount(t))
	})

	t.Run("missing employee aborts", func(t *testing.T) {
		f := newReconcilerFixture(t)
		accessIDs := f.seedAccesses(t, 1)

		_, err := f.service.AssignSingle(ctx, dto.AssignRequest{
			EmployeeID:     999,
			AccessID:       accessIDs[0],
			AssignmentType: "manual_request",
		})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
		assert.Zero(t, f.grantCount(t))
	})

	t.Run("profile provenance requires auto_role", func(t *testing.T) {
		f := newReconcilerFixture(t)
		profileID := uint(1)

		_, err := f.service.AssignSingle(ctx, dto.AssignRequest{
			EmployeeID:     1,
			AccessID:       1,
			AssignmentType: "manual_request",
			RoleProfileID:  &profileID,
		})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})
}

func TestReconcilerService_AssignFromProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("grants matched employees the declared accesses", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 3)
		accessIDs := f.seedAccesses(t, 2)
		profileID := f.seedProfile(t, rolemodel.Criteria{AllEmployees: true}, accessIDs)

		result, err := f.service.AssignFromProfile(ctx, profileID)
		require.NoError(t, err)
		assert.Equal(t, int64(6), result.Created)
		assert.Equal(t, int64(0), result.Skipped)

		grants, total, err := f.service.ListAssignments(ctx, access.AssignmentFilter{RoleProfileID: &profileID, Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(len(employeeIDs)*len(accessIDs)), total)
		for _, grant := range grants {
			assert.Equal(t, "auto_role", grant.AssignmentType)
		}
	})

	t.Run("rerun after manual grant only fills the gaps", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 2)
		accessIDs := f.seedAccesses(t, 1)
		profileID := f.seedProfile(t, rolemodel.Criteria{AllEmployees: true}, accessIDs)

		_, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    employeeIDs[:1],
			AccessIDs:      accessIDs,
			AssignmentType: "manual_request",
		})
		require.NoError(t, err)

		result, err := f.service.AssignFromProfile(ctx, profileID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Created)
		assert.Equal(t, int64(1), result.Skipped)

		// the pre-existing manual grant keeps its type
		manual := access.AssignmentManualRequest
		_, total, err := f.service.ListAssignments(ctx, access.AssignmentFilter{AssignmentType: &manual, Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("profile matching nobody succeeds with zeros", func(t *testing.T) {
		f := newReconcilerFixture(t)
		accessIDs := f.seedAccesses(t, 2)
		profileID := f.seedProfile(t, rolemodel.Criteria{}, accessIDs)

		result, err := f.service.AssignFromProfile(ctx, profileID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Created)
		assert.Equal(t, int64(0), result.Skipped)
	})

	t.Run("profile without accesses succeeds with zeros", func(t *testing.T) {
		f := newReconcilerFixture(t)
		f.seedEmployees(t, 2)
		profileID := f.seedProfile(t, rolemodel.Criteria{AllEmployees: true}, nil)

		result, err := f.service.AssignFromProfile(ctx, profileID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Created)
		assert.Equal(t, int64(0), result.Skipped)
	})

	t.Run("unknown profile is not found", func(t *testing.T) {
		f := newReconcilerFixture(t)

		_, err := f.service.AssignFromProfile(ctx, 123)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestReconcilerService_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("bulk revoke reports the removed count", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 2)
		accessIDs := f.seedAccesses(t, 2)

		_, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    employeeIDs,
			AccessIDs:      accessIDs,
			AssignmentType: "manual_request",
		})
		require.NoError(t, err)

		reason := "offboarding"
		result, err := f.service.RevokeBulk(ctx, dto.BulkRevokeRequest{
			EmployeeIDs: employeeIDs[:1],
			AccessIDs:   accessIDs,
			Reason:      &reason,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Revoked)
		assert.Equal(t, int64(2), f.grantCount(t))
	})

	t.Run("single revoke is idempotent", func(t *testing.T) {
		f := newReconcilerFixture(t)
		employeeIDs := f.seedEmployees(t, 1)
		accessIDs := f.seedAccesses(t, 1)

		_, err := f.service.Assign(ctx, dto.BulkAssignRequest{
			EmployeeIDs:    employeeIDs,
			AccessIDs:      accessIDs,
			AssignmentType: "manual_request",
		})
		require.NoError(t, err)

		grants, _, err := f.service.ListAssignments(ctx, access.AssignmentFilter{Page: 1, Size: 50})
		require.NoError(t, err)
		require.Len(t, grants, 1)

		revoked, err := f.service.RevokeSingle(ctx, grants[0].ID)
		require.NoError(t, err)
		assert.True(t, revoked)

		revoked, err = f.service.RevokeSingle(ctx, grants[0].ID)
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
