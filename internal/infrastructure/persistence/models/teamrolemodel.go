package models

import (
	"time"

	"rolehub/internal/shared/constants"
)

// TeamRoleModel represents the database persistence model for the agile
// team role reference catalog.
type TeamRoleModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255;uniqueIndex:idx_team_role_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (TeamRoleModel) TableName() string {
	return constants.TableTeamRoles
}
