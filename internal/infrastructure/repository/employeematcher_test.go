package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/logger"
)

// setupMatcherDB seeds a small org:
//
//	Alice  Developer  Backend Developer  division    Staff
//	Bob    Developer  QA Engineer        division    Staff
//	Carol  Analyst    Backend Developer  department  Contractor
//	Dave   Analyst    QA Engineer        department  Staff
//
// plus a soft-deleted Developer that must never match.
func setupMatcherDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.EmployeeProfileModel{},
		&models.EmployeeTypeModel{},
		&models.PositionModel{},
		&models.OrgUnitModel{},
		&models.EmployeeModel{},
	)
	require.NoError(t, err)

	profiles := []models.EmployeeProfileModel{{Name: "Developer"}, {Name: "Analyst"}}
	require.NoError(t, db.Create(&profiles).Error)
	types := []models.EmployeeTypeModel{{Name: "Staff"}, {Name: "Contractor"}}
	require.NoError(t, db.Create(&types).Error)
	positions := []models.PositionModel{{Title: "Backend Developer"}, {Title: "QA Engineer"}}
	require.NoError(t, db.Create(&positions).Error)
	units := []models.OrgUnitModel{
		{Name: "Platform Division", UnitType: "division"},
		{Name: "Retail Department", UnitType: "department"},
	}
	require.NoError(t, db.Create(&units).Error)

	employees := []models.EmployeeModel{
		{EmployeeNumber: numberPtr("E-001"), FullName: "Alice Adams", OrgUnitID: units[0].ID, PositionID: positions[0].ID, ProfileID: profiles[0].ID, EmployeeTypeID: types[0].ID},
		{EmployeeNumber: numberPtr("E-002"), FullName: "Bob Brown", OrgUnitID: units[0].ID, PositionID: positions[1].ID, ProfileID: profiles[0].ID, EmployeeTypeID: types[0].ID},
		{EmployeeNumber: numberPtr("E-003"), FullName: "Carol Clark", OrgUnitID: units[1].ID, PositionID: positions[0].ID, ProfileID: profiles[1].ID, EmployeeTypeID: types[1].ID},
		{EmployeeNumber: numberPtr("E-004"), FullName: "Dave Dunn", OrgUnitID: units[1].ID, PositionID: positions[1].ID, ProfileID: profiles[1].ID, EmployeeTypeID: types[0].ID},
	}
	require.NoError(t, db.Create(&employees).Error)

	gone := models.EmployeeModel{EmployeeNumber: numberPtr("E-005"), FullName: "Eve Evans", OrgUnitID: units[0].ID, PositionID: positions[0].ID, ProfileID: profiles[0].ID, EmployeeTypeID: types[0].ID}
	require.NoError(t, db.Create(&gone).Error)
	require.NoError(t, db.Delete(&gone).Error)

	return db
}

func TestEmployeeMatcher_CountMatching(t *testing.T) {
	db := setupMatcherDB(t)
	matcher := NewEmployeeMatcher(db, logger.NewLogger())
	ctx := context.Background()

	tests := []struct {
		name     string
		criteria rolemodel.Criteria
		want     int64
	}{
		{
			name:     "all_employees matches everyone alive",
			criteria: rolemodel.Criteria{AllEmployees: true},
			want:     4,
		},
		{
			name:     "all_employees overrides other clauses",
			criteria: rolemodel.Criteria{AllEmployees: true, Positions: []string{"QA Engineer"}},
			want:     4,
		},
		{
			name:     "empty criteria matches nobody",
			criteria: rolemodel.Criteria{},
			want:     0,
		},
		{
			name:     "single profile",
			criteria: rolemodel.Criteria{EmployeeProfiles: []string{"Developer"}},
			want:     2,
		},
		{
			name:     "values within a key are alternatives",
			criteria: rolemodel.Criteria{Positions: []string{"Backend Developer", "QA Engineer"}},
			want:     4,
		},
		{
			name: "keys combine conjunctively",
			criteria: rolemodel.Criteria{
				EmployeeProfiles: []string{"Developer"},
				Positions:        []string{"Backend Developer"},
			},
			want: 1,
		},
		{
			name: "conjunction with no intersection",
			criteria: rolemodel.Criteria{
				EmployeeProfiles: []string{"Analyst"},
				OrgUnitsType:     []string{"division"},
			},
			want: 0,
		},
		{
			name:     "org unit type clause",
			criteria: rolemodel.Criteria{OrgUnitsType: []string{"division"}},
			want:     2,
		},
		{
			name:     "employee type clause",
			criteria: rolemodel.Criteria{EmployeeTypes: []string{"Contractor"}},
			want:     1,
		},
		{
			name:     "unknown catalog values match nothing",
			criteria: rolemodel.Criteria{Positions: []string{"Astronaut"}},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := matcher.CountMatching(ctx, tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestEmployeeMatcher_ListMatching(t *testing.T) {
	db := setupMatcherDB(t)
	matcher := NewEmployeeMatcher(db, logger.NewLogger())
	ctx := context.Background()

	criteria := rolemodel.Criteria{EmployeeProfiles: []string{"Developer"}}

	t.Run("rows carry the display attributes", func(t *testing.T) {
		rows, err := matcher.ListMatching(ctx, criteria, 1, 50)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Alice Adams", rows[0].FullName)
		assert.Equal(t, "E-001", rows[0].EmployeeNumber)
		assert.Equal(t, "Backend Developer", rows[0].PositionTitle)
		assert.Equal(t, "Platform Division", rows[0].OrgUnitName)
		assert.Equal(t, "Bob Brown", rows[1].FullName)
	})

	t.Run("pages agree with the count", func(t *testing.T) {
		count, err := matcher.CountMatching(ctx, criteria)
		require.NoError(t, err)
		require.Equal(t, int64(2), count)

		var seen []string
		for page := 1; page <= 2; page++ {
			rows, err := matcher.ListMatching(ctx, criteria, page, 1)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			seen = append(seen, rows[0].FullName)
		}
		assert.Equal(t, []string{"Alice Adams", "Bob Brown"}, seen)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		rows, err := matcher.ListMatching(ctx, criteria, 3, 50)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("empty criteria lists nobody", func(t *testing.T) {
		rows, err := matcher.ListMatching(ctx, rolemodel.Criteria{}, 1, 50)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestEmployeeMatcher_MatchingIDs(t *testing.T) {
	db := setupMatcherDB(t)
	matcher := NewEmployeeMatcher(db, logger.NewLogger())
	ctx := context.Background()

	ids, err := matcher.MatchingIDs(ctx, rolemodel.Criteria{OrgUnitsType: []string{"department"}})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	ids, err = matcher.MatchingIDs(ctx, rolemodel.Criteria{})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestEmployeeMatcher_TotalEmployees(t *testing.T) {
	db := setupMatcherDB(t)
	matcher := NewEmployeeMatcher(db, logger.NewLogger())

	total, err := matcher.TotalEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}
