package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RecordTypeIncome  = "income"
	RecordTypeExpense = "expense"
)

// KnownRecordType reports whether recordType is income or expense.
func KnownRecordType(recordType string) bool {
	return recordType == RecordTypeIncome || recordType == RecordTypeExpense
}

type FinancialRecord struct {
	ID          uint  `gorm:"primaryKey"`
	DashboardID uint  `gorm:"not null;index"`
	UserID      uint  `gorm:"not null;index"`
	CategoryID  *uint `gorm:"index"`
	Title       string
	Amount      decimal.Decimal `gorm:"type:numeric;not null"`
	Type        string          `gorm:"not null"`
	RecordedAt  time.Time       `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time
	Tags        []Tag `gorm:"many2many:record_tags"`
}
