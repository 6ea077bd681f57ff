package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rolehub/internal/domain/employee"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/logger"
)

func setupEmployeeDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.EmployeeModel{}, &models.EmployeeAccessModel{})
	require.NoError(t, err)

	return db
}

func createTestEmployee(t *testing.T, fullName, number string) *employee.Employee {
	emp, err := employee.NewEmployee(fullName, 1, 1, 1, 1)
	require.NoError(t, err)
	if number != "" {
		emp.SetEmployeeNumber(number)
	}
	return emp
}

func numberPtr(number string) *string {
	return &number
}

func TestEmployeeRepository_Create(t *testing.T) {
	db := setupEmployeeDB(t)
	repo := NewEmployeeRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("create backfills the id", func(t *testing.T) {
		emp := createTestEmployee(t, "Alice Adams", "E-100")
		err := repo.Create(ctx, emp)
		require.NoError(t, err)
		assert.NotZero(t, emp.ID())

		found, err := repo.GetByID(ctx, emp.ID())
		require.NoError(t, err)
		assert.Equal(t, "Alice Adams", found.FullName())
		assert.Equal(t, employee.StatusActive, found.Status())
	})

	t.Run("duplicate employee number fails", func(t *testing.T) {
		emp := createTestEmployee(t, "Bob Brown", "E-100")
		err := repo.Create(ctx, emp)
		assert.ErrorIs(t, err, employee.ErrDuplicateEmployeeNumber)
	})

	t.Run("absent numbers never collide", func(t *testing.T) {
		first := createTestEmployee(t, "Carol Clark", "")
		require.NoError(t, repo.Create(ctx, first))

		second := createTestEmployee(t, "Dave Dunn", "")
		require.NoError(t, repo.Create(ctx, second))

		found, err := repo.GetByID(ctx, second.ID())
		require.NoError(t, err)
		assert.Empty(t, found.EmployeeNumber())
	})

	t.Run("lookup by number", func(t *testing.T) {
		found, err := repo.GetByEmployeeNumber(ctx, "E-100")
		require.NoError(t, err)
		assert.Equal(t, "Alice Adams", found.FullName())

		_, err = repo.GetByEmployeeNumber(ctx, "E-999")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestEmployeeRepository_ExistingIDs(t *testing.T) {
	db := setupEmployeeDB(t)
	repo := NewEmployeeRepository(db, logger.NewLogger())
	ctx := context.Background()

	first := createTestEmployee(t, "Alice Adams", "E-001")
	require.NoError(t, repo.Create(ctx, first))
	second := createTestEmployee(t, "Bob Brown", "E-002")
	require.NoError(t, repo.Create(ctx, second))

	existing, err := repo.ExistingIDs(ctx, []uint{first.ID(), second.ID(), 999})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{first.ID(), second.ID()}, existing)

	existing, err = repo.ExistingIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, existing)

	t.Run("soft-deleted employees no longer exist", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.ID()))

		existing, err := repo.ExistingIDs(ctx, []uint{first.ID(), second.ID()})
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{first.ID()}, existing)
	})
}

func TestEmployeeRepository_List(t *testing.T) {
	db := setupEmployeeDB(t)
	repo := NewEmployeeRepository(db, logger.NewLogger())
	ctx := context.Background()

	names := []string{"Carol Clark", "Alice Adams", "Bob Brown"}
	for i, name := range names {
		emp := createTestEmployee(t, name, fmt.Sprintf("E-%d", i+1))
		require.NoError(t, repo.Create(ctx, emp))
	}
	retired := createTestEmployee(t, "Dave Dunn", "E-9")
	require.NoError(t, repo.Create(ctx, retired))
	require.NoError(t, retired.ChangeStatus(employee.StatusInactive, nil))
	require.NoError(t, repo.Update(ctx, retired))

	t.Run("ordered by full name", func(t *testing.T) {
		list, total, err := repo.List(ctx, employee.Filter{Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, list, 4)
		assert.Equal(t, "Alice Adams", list[0].FullName())
		assert.Equal(t, "Bob Brown", list[1].FullName())
	})

	t.Run("filter by status", func(t *testing.T) {
		inactive := employee.StatusInactive
		list, total, err := repo.List(ctx, employee.Filter{Status: &inactive, Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "Dave Dunn", list[0].FullName())
	})

	t.Run("search by name fragment", func(t *testing.T) {
		_, total, err := repo.List(ctx, employee.Filter{Search: "ali", Page: 1, Size: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func TestEmployeeRepository_Update(t *testing.T) {
	db := setupEmployeeDB(t)
	repo := NewEmployeeRepository(db, logger.NewLogger())
	ctx := context.Background()

	emp := createTestEmployee(t, "Alice Adams", "E-001")
	require.NoError(t, repo.Create(ctx, emp))

	require.NoError(t, emp.Rename("Alice Atkins"))
	emp.SetContacts("alice@example.com", "")
	require.NoError(t, repo.Update(ctx, emp))

	found, err := repo.GetByID(ctx, emp.ID())
	require.NoError(t, err)
	assert.Equal(t, "Alice Atkins", found.FullName())
	assert.Equal(t, "alice@example.com", found.Email())

	t.Run("missing employee is not found", func(t *testing.T) {
		ghost := createTestEmployee(t, "Ghost", "E-404")
		ghost.SetID(404)
		err := repo.Update(ctx, ghost)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestEmployeeRepository_Delete(t *testing.T) {
	db := setupEmployeeDB(t)
	repo := NewEmployeeRepository(db, logger.NewLogger())
	ctx := context.Background()

	emp := createTestEmployee(t, "Alice Adams", "E-001")
	require.NoError(t, repo.Create(ctx, emp))
	grant := models.EmployeeAccessModel{EmployeeID: emp.ID(), AccessID: 1, AssignmentType: "manual_request"}
	require.NoError(t, db.Create(&grant).Error)

	require.NoError(t, repo.Delete(ctx, emp.ID()))

	_, err := repo.GetByID(ctx, emp.ID())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	var grants int64
	require.NoError(t, db.Model(&models.EmployeeAccessModel{}).Where("employee_id = ?", emp.ID()).Count(&grants).Error)
	assert.Zero(t, grants)

	err = repo.Delete(ctx, emp.ID())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_CountByStatus(t *testing.T) {
	db := setupEmployeeDB(t)
	repo := NewEmployeeRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Empty(t, counts)
	})

	for i, name := range []string{"Alice Adams", "Bob Brown", "Carol Clark"} {
		emp := createTestEmployee(t, name, fmt.Sprintf("E-%d", i+1))
		require.NoError(t, repo.Create(ctx, emp))
	}
	retired := createTestEmployee(t, "Dave Dunn", "E-9")
	require.NoError(t, repo.Create(ctx, retired))
	require.NoError(t, retired.ChangeStatus(employee.StatusInactive, nil))
	require.NoError(t, repo.Update(ctx, retired))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[employee.Status]int64{
		employee.StatusActive:   3,
		employee.StatusInactive: 1,
	}, counts)
}
