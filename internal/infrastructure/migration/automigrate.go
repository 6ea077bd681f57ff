package migration

import (
	"rolehub/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order, so
// foreign keys resolve when the schema is created from scratch.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrgUnitModel{},
		&models.PositionModel{},
		&models.EmployeeProfileModel{},
		&models.EmployeeTypeModel{},
		&models.TeamRoleModel{},
		&models.TribeModel{},
		&models.ProductModel{},
		&models.AgileTeamModel{},
		&models.EmployeeModel{},
		&models.ApplicationSystemModel{},
		&models.AccessModel{},
		&models.RoleModelModel{},
		&models.RoleProfileModel{},
		&models.ProfileAccessModel{},
		&models.EmployeeAccessModel{},
	}
}
