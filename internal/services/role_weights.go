package services

import (
	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/shopspring/decimal"
)

// roleWeights is the single auditable table mapping demographic roles to
// their fixed weighting constants. The weighting engine refuses to run for a
// member whose role is missing from a dashboard, so every catalog role must
// appear here.
var roleWeights = map[string]decimal.Decimal{
	models.RoleEntrepreneur: decimal.RequireFromString("0.8"),
	models.RoleEmployee:     decimal.RequireFromString("0.7"),
	models.RoleRetiree:      decimal.RequireFromString("0.5"),
	models.RoleHousemaker:   decimal.RequireFromString("0.4"),
	models.RoleStudent:      decimal.RequireFromString("0.3"),
	models.RoleChild:        decimal.RequireFromString("0.2"),
	models.RoleNone:         decimal.RequireFromString("0.1"),
}

// RoleWeight returns the fixed weighting constant for a demographic role.
func RoleWeight(role string) (decimal.Decimal, bool) {
	weight, ok := roleWeights[role]
	return weight, ok
}
