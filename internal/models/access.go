package models

import "time"

// Access levels form a total order: viewer < editor < owner.
const (
	AccessViewer = "viewer"
	AccessEditor = "editor"
	AccessOwner  = "owner"
)

var accessLevelRank = map[string]int{
	AccessViewer: 1,
	AccessEditor: 2,
	AccessOwner:  3,
}

// KnownAccessLevel reports whether level is one of the catalog values.
func KnownAccessLevel(level string) bool {
	_, ok := accessLevelRank[level]
	return ok
}

// AccessLevelAtLeast reports whether level satisfies the required level
// under the fixed viewer < editor < owner order. Unknown levels never satisfy
// anything.
func AccessLevelAtLeast(level string, required string) bool {
	levelRank, ok := accessLevelRank[level]
	if !ok {
		return false
	}
	requiredRank, ok := accessLevelRank[required]
	if !ok {
		return false
	}
	return levelRank >= requiredRank
}

// DashboardAccess holds a member's access level on a dashboard. The unique
// index on (user_id, dashboard_id) is what makes grant an upsert rather than
// an append.
type DashboardAccess struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_access_user_dashboard"`
	DashboardID uint      `gorm:"not null;uniqueIndex:uidx_access_user_dashboard"`
	Level       string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}
