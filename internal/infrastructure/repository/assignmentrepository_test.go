package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rolehub/internal/domain/access"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/logger"
)

func setupAssignmentDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ApplicationSystemModel{}, &models.AccessModel{}, &models.EmployeeAccessModel{})
	require.NoError(t, err)

	sys := models.ApplicationSystemModel{Name: "git", SystemType: "IT", IsActive: true}
	require.NoError(t, db.Create(&sys).Error)

	return db
}

func seedAccesses(t *testing.T, db *gorm.DB, count int) []uint {
	ids := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		m := models.AccessModel{SystemID: 1, RoleName: fmt.Sprintf("access-%d", i+1), IsActive: true}
		require.NoError(t, db.Create(&m).Error)
		ids = append(ids, m.ID)
	}
	return ids
}

func countGrants(t *testing.T, db *gorm.DB) int64 {
	var total int64
	require.NoError(t, db.Model(&models.EmployeeAccessModel{}).Count(&total).Error)
	return total
}

func TestAssignmentRepository_BulkAssign(t *testing.T) {
	db := setupAssignmentDB(t)
	repo := NewAssignmentRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("creates the full cross product", func(t *testing.T) {
		created, err := repo.BulkAssign(ctx, []uint{1, 2}, []uint{10, 11}, access.AssignmentManualRequest, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(4), created)
		assert.Equal(t, int64(4), countGrants(t, db))
	})

	t.Run("rerun creates nothing", func(t *testing.T) {
		created, err := repo.BulkAssign(ctx, []uint{1, 2}, []uint{10, 11}, access.AssignmentManualRequest, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), created)
		assert.Equal(t, int64(4), countGrants(t, db))
	})

	t.Run("partial overlap creates only the new pairs", func(t *testing.T) {
		created, err := repo.BulkAssign(ctx, []uint{1, 2, 3}, []uint{10, 11}, access.AssignmentManualRequest, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), created)
		assert.Equal(t, int64(6), countGrants(t, db))
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		created, err := repo.BulkAssign(ctx, []uint{}, []uint{10}, access.AssignmentManualRequest, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), created)
	})

	t.Run("records role profile provenance", func(t *testing.T) {
		profileID := uint(7)
		created, err := repo.BulkAssign(ctx, []uint{9}, []uint{10}, access.AssignmentAutoRole, &profileID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created)

		grant, err := repo.GetByPair(ctx, 9, 10)
		require.NoError(t, err)
		require.NotNil(t, grant.RoleProfileID())
		assert.Equal(t, profileID, *grant.RoleProfileID())
		assert.Equal(t, access.AssignmentAutoRole, grant.AssignmentType())
		assert.False(t, grant.AssignedAt().IsZero())
	})

	t.Run("existing grant is not overwritten", func(t *testing.T) {
		created, err := repo.BulkAssign(ctx, []uint{1}, []uint{10}, access.AssignmentAutoRole, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), created)

		grant, err := repo.GetByPair(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, access.AssignmentManualRequest, grant.AssignmentType())
	})
}

func TestAssignmentRepository_BulkRevoke(t *testing.T) {
	db := setupAssignmentDB(t)
	repo := NewAssignmentRepository(db, logger.NewLogger())
	ctx := context.Background()

	_, err := repo.BulkAssign(ctx, []uint{1, 2, 3}, []uint{10, 11}, access.AssignmentManualRequest, nil)
	require.NoError(t, err)

	t.Run("revokes only the requested cross product", func(t *testing.T) {
		revoked, err := repo.BulkRevoke(ctx, []uint{1, 2}, []uint{10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), revoked)
		assert.Equal(t, int64(4), countGrants(t, db))
	})

	t.Run("repeat revoke removes nothing", func(t *testing.T) {
		revoked, err := repo.BulkRevoke(ctx, []uint{1, 2}, []uint{10})
		require.NoError(t, err)
		assert.Equal(t, int64(0), revoked)
	})

	t.Run("pairs without grants count zero", func(t *testing.T) {
		revoked, err := repo.BulkRevoke(ctx, []uint{99}, []uint{10, 11})
		require.NoError(t, err)
		assert.Equal(t, int64(0), revoked)
	})
}

func TestAssignmentRepository_Delete(t *testing.T) {
	db := setupAssignmentDB(t)
	repo := NewAssignmentRepository(db, logger.NewLogger())
	ctx := context.Background()

	_, err := repo.BulkAssign(ctx, []uint{1}, []uint{10}, access.AssignmentManualRequest, nil)
	require.NoError(t, err)

	grant, err := repo.GetByPair(ctx, 1, 10)
	require.NoError(t, err)

	err = repo.Delete(ctx, grant.ID())
	assert.NoError(t, err)

	err = repo.Delete(ctx, grant.ID())
	assert.ErrorIs(t, err, access.ErrAssignmentNotFound)

	_, err = repo.GetByPair(ctx, 1, 10)
	assert.ErrorIs(t, err, access.ErrAssignmentNotFound)
}

func TestAssignmentRepository_List(t *testing.T) {
	db := setupAssignmentDB(t)
	repo := NewAssignmentRepository(db, logger.NewLogger())
	ctx := context.Background()

	profileID := uint(5)
	_, err := repo.BulkAssign(ctx, []uint{1, 2}, []uint{10}, access.AssignmentAutoRole, &profileID)
	require.NoError(t, err)
	_, err = repo.BulkAssign(ctx, []uint{1}, []uint{11, 12}, access.AssignmentManualRequest, nil)
	require.NoError(t, err)

	t.Run("filter by employee", func(t *testing.T) {
		employeeID := uint(1)
		list, total, err := repo.List(ctx, access.AssignmentFilter{EmployeeID: &employeeID, Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, list, 3)
	})

	t.Run("filter by assignment type", func(t *testing.T) {
		autoRole := access.AssignmentAutoRole
		list, total, err := repo.List(ctx, access.AssignmentFilter{AssignmentType: &autoRole, Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, grant := range list {
			assert.Equal(t, access.AssignmentAutoRole, grant.AssignmentType())
		}
	})

	t.Run("filter by role profile", func(t *testing.T) {
		_, total, err := repo.List(ctx, access.AssignmentFilter{RoleProfileID: &profileID, Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("pagination keeps the total", func(t *testing.T) {
		list, total, err := repo.List(ctx, access.AssignmentFilter{Page: 1, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, list, 2)
	})

	t.Run("filter by system", func(t *testing.T) {
		sys := models.ApplicationSystemModel{Name: "jira", SystemType: "Business", IsActive: true}
		require.NoError(t, db.Create(&sys).Error)
		a := models.AccessModel{SystemID: sys.ID, RoleName: "jira-admin", IsActive: true}
		require.NoError(t, db.Create(&a).Error)
		_, err := repo.BulkAssign(ctx, []uint{3}, []uint{a.ID}, access.AssignmentManualRequest, nil)
		require.NoError(t, err)

		list, total, err := repo.List(ctx, access.AssignmentFilter{SystemID: &sys.ID, Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, a.ID, list[0].AccessID())
	})
}

func TestAssignmentRepository_UsageSummary(t *testing.T) {
	db := setupAssignmentDB(t)
	repo := NewAssignmentRepository(db, logger.NewLogger())
	ctx := context.Background()

	accessIDs := seedAccesses(t, db, 4)

	// accessIDs[0] held by three employees, accessIDs[1] by one, the
	// last two by nobody.
	_, err := repo.BulkAssign(ctx, []uint{1, 2, 3}, accessIDs[:1], access.AssignmentManualRequest, nil)
	require.NoError(t, err)
	_, err = repo.BulkAssign(ctx, []uint{1}, accessIDs[1:2], access.AssignmentAutoRole, nil)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.AccessModel{}).
		Where("id = ?", accessIDs[0]).
		Update("criticality", "high").Error)

	summary, err := repo.UsageSummary(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.TotalAccesses)
	assert.Equal(t, int64(4), summary.TotalAssignments)
	assert.Equal(t, int64(2), summary.UnusedAccesses)
	assert.Equal(t, int64(1), summary.OverusedAccesses)
	assert.Equal(t, map[string]int64{"manual_request": 3, "auto_role": 1}, summary.ByAssignmentType)
	assert.Equal(t, map[string]int64{"high": 3, "unspecified": 1}, summary.ByCriticality)
	assert.Equal(t, map[string]int64{"IT": 4}, summary.BySystemType)

	t.Run("threshold is strict", func(t *testing.T) {
		summary, err := repo.UsageSummary(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.OverusedAccesses)
	})

	t.Run("empty store reports zeros", func(t *testing.T) {
		empty := setupAssignmentDB(t)
		emptyRepo := NewAssignmentRepository(empty, logger.NewLogger())

		summary, err := emptyRepo.UsageSummary(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.TotalAccesses)
		assert.Equal(t, int64(0), summary.TotalAssignments)
		assert.Equal(t, int64(0), summary.UnusedAccesses)
		assert.Equal(t, int64(0), summary.OverusedAccesses)
		assert.Empty(t, summary.ByAssignmentType)
	})
}
