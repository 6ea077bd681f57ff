package db

import (
	"gorm.io/gorm"
)

// ActiveOnly filters reference-data rows on their is_active flag.
//
// Example usage:
//
//	db.Model(&PositionModel{}).Scopes(db.ActiveOnly()).Find(&results)
func ActiveOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// Paginate applies offset/limit for a 1-based page number.
//
// Example usage:
//
//	db.Model(&EmployeeModel{}).Scopes(db.Paginate(page, size)).Find(&results)
func Paginate(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * size).Limit(size)
	}
}
