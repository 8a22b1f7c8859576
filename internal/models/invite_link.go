package models

import "time"

// InviteLink is a time-limited token granting viewer access on redemption.
// A dashboard holds at most one link at a time: creating a new one deletes
// the predecessor outright.
type InviteLink struct {
	ID          uint      `gorm:"primaryKey"`
	DashboardID uint      `gorm:"not null;index"`
	Token       string    `gorm:"uniqueIndex;not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// Expired reports whether the link's expiry has passed at the given instant.
func (link InviteLink) Expired(now time.Time) bool {
	return !link.ExpiresAt.After(now)
}
