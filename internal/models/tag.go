package models

import "time"

type Tag struct {
	ID          uint      `gorm:"primaryKey"`
	DashboardID uint      `gorm:"not null;index"`
	Name        string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}
