package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rolehub/internal/domain/access"
	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/infrastructure/repository"
	"rolehub/internal/shared/config"
	"rolehub/internal/shared/logger"
)

type statsFixture struct {
	db          *gorm.DB
	models      rolemodel.RoleModelRepository
	profiles    rolemodel.ProfileRepository
	links       rolemodel.ProfileAccessRepository
	assignments access.AssignmentRepository
	service     *StatsService
}

func newStatsFixture(t *testing.T, cfg config.StatsConfig) *statsFixture {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.EmployeeProfileModel{},
		&models.PositionModel{},
		&models.OrgUnitModel{},
		&models.EmployeeModel{},
		&models.ApplicationSystemModel{},
		&models.AccessModel{},
		&models.RoleModelModel{},
		&models.RoleProfileModel{},
		&models.ProfileAccessModel{},
		&models.EmployeeAccessModel{},
	)
	require.NoError(t, err)

	// seedCatalog's employees reference position 1 and org unit 1, and
	// ListMatching joins both tables for the summary columns.
	require.NoError(t, database.Create(&models.PositionModel{Title: "Backend Developer", IsActive: true}).Error)
	require.NoError(t, database.Create(&models.OrgUnitModel{Name: "Platform Division", UnitType: "division", IsActive: true}).Error)

	log := logger.NewLogger()
	f := &statsFixture{
		db:          database,
		models:      repository.NewRoleModelRepository(database, log),
		profiles:    repository.NewRoleProfileRepository(database, log),
		links:       repository.NewProfileAccessRepository(database, log),
		assignments: repository.NewAssignmentRepository(database, log),
	}
	f.service = NewStatsService(
		f.models,
		f.profiles,
		f.links,
		repository.NewEmployeeMatcher(database, log),
		f.assignments,
		cfg,
		log,
	)
	return f
}

// seedCatalog creates one employee profile catalog entry plus the given
// number of employees holding it.
func (f *statsFixture) seedCatalog(t *testing.T, profileName string, employees int) {
	catalog := models.EmployeeProfileModel{Name: profileName}
	require.NoError(t, f.db.Create(&catalog).Error)

	for i := 0; i < employees; i++ {
		number := fmt.Sprintf("%s-%d", profileName, i+1)
		m := models.EmployeeModel{
			EmployeeNumber: &number,
			FullName:       fmt.Sprintf("%s %d", profileName, i+1),
			OrgUnitID:      1,
			PositionID:     1,
			ProfileID:      catalog.ID,
			EmployeeTypeID: 1,
		}
		require.NoError(t, f.db.Create(&m).Error)
	}
}

func (f *statsFixture) seedModel(t *testing.T, name string) uint {
	m, err := rolemodel.NewRoleModel(name, "", "", "")
	require.NoError(t, err)
	require.NoError(t, f.models.Create(context.Background(), m))
	return m.ID()
}

func (f *statsFixture) seedProfile(t *testing.T, roleModelID uint, name string, criteria rolemodel.Criteria, accessCount int) uint {
	profile, err := rolemodel.NewRoleProfile(roleModelID, name, "", criteria)
	require.NoError(t, err)
	require.NoError(t, f.profiles.Create(context.Background(), profile))

	for i := 0; i < accessCount; i++ {
		am := models.AccessModel{SystemID: 1, RoleName: fmt.Sprintf("%s-access-%d", name, i+1), IsActive: true}
		require.NoError(t, f.db.Create(&am).Error)
		link, err := rolemodel.NewProfileAccess(profile.ID(), am.ID)
		require.NoError(t, err)
		require.NoError(t, f.links.Create(context.Background(), link))
	}
	return profile.ID()
}

func TestStatsService_ProfileSummary(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, config.StatsConfig{})

	f.seedCatalog(t, "Developer", 3)
	modelID := f.seedModel(t, "Engineering")
	profileID := f.seedProfile(t, modelID, "Backend", rolemodel.Criteria{EmployeeProfiles: []string{"Developer"}}, 2)

	summary, err := f.service.ProfileSummary(ctx, profileID)
	require.NoError(t, err)
	assert.Equal(t, profileID, summary.RoleProfileID)
	assert.Equal(t, "Backend", summary.Name)
	assert.Equal(t, int64(3), summary.MatchedEmployeesCount)
	assert.Equal(t, int64(2), summary.AccessesCount)

	t.Run("unknown profile is not found", func(t *testing.T) {
		_, err := f.service.ProfileSummary(ctx, 999)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestStatsService_ModelStats(t *testing.T) {
	ctx := context.Background()

	t.Run("totals sum per profile", func(t *testing.T) {
		f := newStatsFixture(t, config.StatsConfig{})
		f.seedCatalog(t, "Developer", 2)
		f.seedCatalog(t, "Analyst", 1)

		modelID := f.seedModel(t, "Engineering")
		f.seedProfile(t, modelID, "Developers", rolemodel.Criteria{EmployeeProfiles: []string{"Developer"}}, 2)
		f.seedProfile(t, modelID, "Analysts", rolemodel.Criteria{EmployeeProfiles: []string{"Analyst"}}, 1)

		stats, err := f.service.ModelStats(ctx, modelID)
		require.NoError(t, err)
		assert.Equal(t, modelID, stats.RoleModelID)
		assert.Equal(t, int64(2), stats.TotalProfiles)
		assert.Equal(t, int64(3), stats.TotalEmployeesCovered)
		assert.Equal(t, int64(3), stats.TotalAccessesAssigned)

		require.Len(t, stats.ProfilesSummary, 2)
		byName := map[string]float64{}
		for _, summary := range stats.ProfilesSummary {
			byName[summary.Name] = summary.CoveragePercentage
		}
		assert.InDelta(t, 66.7, byName["Developers"], 0.001)
		assert.InDelta(t, 33.3, byName["Analysts"], 0.001)
	})

	t.Run("overlapping profiles count employees per profile", func(t *testing.T) {
		f := newStatsFixture(t, config.StatsConfig{})
		f.seedCatalog(t, "Developer", 2)

		modelID := f.seedModel(t, "Engineering")
		f.seedProfile(t, modelID, "Everyone A", rolemodel.Criteria{AllEmployees: true}, 0)
		f.seedProfile(t, modelID, "Everyone B", rolemodel.Criteria{AllEmployees: true}, 0)

		stats, err := f.service.ModelStats(ctx, modelID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.TotalEmployeesCovered)
		for _, summary := range stats.ProfilesSummary {
			assert.InDelta(t, 50.0, summary.CoveragePercentage, 0.001)
		}
	})

	t.Run("nothing covered yields zero percentages", func(t *testing.T) {
		f := newStatsFixture(t, config.StatsConfig{})
		modelID := f.seedModel(t, "Empty")
		f.seedProfile(t, modelID, "Nobody", rolemodel.Criteria{}, 1)

		stats, err := f.service.ModelStats(ctx, modelID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalEmployeesCovered)
		require.Len(t, stats.ProfilesSummary, 1)
		assert.Equal(t, 0.0, stats.ProfilesSummary[0].CoveragePercentage)
	})

	t.Run("model without profiles reports zeros", func(t *testing.T) {
		f := newStatsFixture(t, config.StatsConfig{})
		modelID := f.seedModel(t, "Bare")

		stats, err := f.service.ModelStats(ctx, modelID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalProfiles)
		assert.Equal(t, int64(0), stats.TotalEmployeesCovered)
		assert.Empty(t, stats.ProfilesSummary)
	})

	t.Run("unknown model is not found", func(t *testing.T) {
		f := newStatsFixture(t, config.StatsConfig{})
		_, err := f.service.ModelStats(ctx, 777)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestStatsService_AccessStats(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, config.StatsConfig{OveruseThreshold: 1})

	sys := models.ApplicationSystemModel{Name: "git", SystemType: "IT", IsActive: true}
	require.NoError(t, f.db.Create(&sys).Error)

	accesses := make([]uint, 0, 2)
	for i := 0; i < 2; i++ {
		m := models.AccessModel{SystemID: sys.ID, RoleName: fmt.Sprintf("access-%d", i+1), Criticality: "high", IsActive: true}
		require.NoError(t, f.db.Create(&m).Error)
		accesses = append(accesses, m.ID)
	}

	_, err := f.assignments.BulkAssign(ctx, []uint{1, 2}, accesses[:1], access.AssignmentManualRequest, nil)
	require.NoError(t, err)

	stats, err := f.service.AccessStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalAccesses)
	assert.Equal(t, int64(2), stats.TotalAssignments)
	assert.Equal(t, int64(1), stats.UnusedAccesses)
	assert.Equal(t, int64(1), stats.OverusedAccesses)
	assert.Equal(t, map[string]int64{"manual_request": 2}, stats.ByAssignmentType)
	assert.Equal(t, map[string]int64{"high": 2}, stats.ByCriticality)
	assert.Equal(t, map[string]int64{"IT": 2}, stats.BySystemType)
}

func TestCoverage(t *testing.T) {
	assert.Equal(t, 0.0, coverage(0, 0))
	assert.Equal(t, 0.0, coverage(5, 0))
	assert.Equal(t, 100.0, coverage(5, 5))
	assert.InDelta(t, 33.3, coverage(1, 3), 0.001)
	assert.InDelta(t, 66.7, coverage(2, 3), 0.001)
	assert.InDelta(t, 0.1, coverage(1, 1000), 0.001)
}
