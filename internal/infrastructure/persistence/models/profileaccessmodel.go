package models

import (
	"time"

	"rolehub/internal/shared/constants"
)

// ProfileAccessModel represents the database persistence model for the
// accesses a role profile declares. The unique index keeps the link a set.
type ProfileAccessModel struct {
	ID            uint `gorm:"primarykey"`
	RoleProfileID uint `gorm:"not null;uniqueIndex:idx_profile_access_pair;index:idx_profile_access_profile"`
	AccessID      uint `gorm:"not null;uniqueIndex:idx_profile_access_pair;index:idx_profile_access_access"`
	CreatedAt     time.Time
}

// TableName specifies the table name for GORM.
func (ProfileAccessModel) TableName() string {
	return constants.TableProfileAccesses
}
