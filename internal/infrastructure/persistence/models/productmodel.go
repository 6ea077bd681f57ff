package models

import (
	"time"

	"rolehub/internal/shared/constants"
)

// ProductModel represents the database persistence model for products.
type ProductModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:255;index:idx_product_name"`
	TribeID     uint   `gorm:"not null;index:idx_product_tribe"`
	ProductType string `gorm:"size:50"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (ProductModel) TableName() string {
	return constants.TableProducts
}
