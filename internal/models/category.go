package models

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	DashboardID uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// CategoryPriority is one member's personal importance rating for a category.
// The triple (user, category, dashboard) is unique: creating a second rating
// for the same triple must fail, updating a missing one must fail.
type CategoryPriority struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_priority_user_category_dashboard"`
	CategoryID  uint      `gorm:"not null;uniqueIndex:uidx_priority_user_category_dashboard"`
	DashboardID uint      `gorm:"not null;uniqueIndex:uidx_priority_user_category_dashboard"`
	Priority    int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}
