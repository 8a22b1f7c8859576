package models

import "time"

// Demographic roles describe who a member is, not what they may do. They feed
// the category priority weighting and nothing else.
const (
	RoleEntrepreneur = "entrepreneur"
	RoleEmployee     = "employee"
	RoleRetiree      = "retiree"
	RoleHousemaker   = "housemaker"
	RoleStudent      = "student"
	RoleChild        = "child"
	RoleNone         = "none"
)

var knownRoles = map[string]struct{}{
	RoleEntrepreneur: {},
	RoleEmployee:     {},
	RoleRetiree:      {},
	RoleHousemaker:   {},
	RoleStudent:      {},
	RoleChild:        {},
	RoleNone:         {},
}

// KnownRole reports whether role is one of the catalog values.
func KnownRole(role string) bool {
	_, ok := knownRoles[role]
	return ok
}

// DashboardRole holds a member's demographic role on a dashboard, one row per
// (user, dashboard) pair.
type DashboardRole struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_role_user_dashboard"`
	DashboardID uint      `gorm:"not null;uniqueIndex:uidx_role_user_dashboard"`
	Role        string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}
