package models

import (
	"time"

	"rolehub/internal/shared/constants"
)

// AgileTeamModel represents the database persistence model for agile teams.
type AgileTeamModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255;index:idx_agile_team_name"`
	ProductID uint   `gorm:"not null;index:idx_agile_team_product"`
	TeamType  string `gorm:"not null;size:20;default:Change"` // Change, Run
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (AgileTeamModel) TableName() string {
	return constants.TableAgileTeams
}
