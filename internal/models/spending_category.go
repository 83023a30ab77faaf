package models

// DefaultCategoryIcon is assigned to user-created categories.
const DefaultCategoryIcon = "category"

// SpendingCategory is a named bucket expenses and budget limits point at.
// System categories are seeded on initialization and cannot be renamed.
type SpendingCategory struct {
	Base
	Name               string `gorm:"not null;uniqueIndex" json:"name"`
	Icon               string `gorm:"not null" json:"icon"`
	IsSystem           bool   `gorm:"not null" json:"is_system"`
	IsEssentialDefault bool   `gorm:"not null" json:"is_essential_default"`
}
