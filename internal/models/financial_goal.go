package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FinancialGoal struct {
	ID           uint            `gorm:"primaryKey"`
	DashboardID  uint            `gorm:"not null;index"`
	Title        string          `gorm:"not null"`
	TargetAmount decimal.Decimal `gorm:"type:numeric;not null"`
	TargetDate   time.Time       `gorm:"type:date"`
	Achieved     bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time
}
