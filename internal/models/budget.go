package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID          uint            `gorm:"primaryKey"`
	DashboardID uint            `gorm:"not null;index"`
	Title       string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time
}
