package db

import (
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccessRepository struct {
	database *gorm.DB
}

func NewAccessRepository(database *gorm.DB) *AccessRepository {
	return &AccessRepository{database: database}
}

// UpsertAccess writes the single access row for the (user, dashboard) pair in
// one statement. The unique index turns concurrent grants into last-writer-wins
// instead of duplicate rows.
func (repo *AccessRepository) UpsertAccess(userID uint, dashboardID uint, level string) error {
	access := models.DashboardAccess{
		UserID:      userID,
		DashboardID: dashboardID,
		Level:       level,
		CreatedAt:   time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "dashboard_id"}},
		DoUpdates: clause.Assignments(map[string]any{"level": level, "updated_at": time.Now()}),
	}).Create(&access).Error
}

func (repo *AccessRepository) FindAccess(userID uint, dashboardID uint) (models.DashboardAccess, error) {
	var access models.DashboardAccess
	if err := repo.database.
		Where("user_id = ? AND dashboard_id = ?", userID, dashboardID).
		First(&access).Error; err != nil {
		return models.DashboardAccess{}, err
	}
	return access, nil
}

func (repo *AccessRepository) ListAccessByUser(userID uint) ([]models.DashboardAccess, error) {
	grants := make([]models.DashboardAccess, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

func (repo *AccessRepository) ListAccessByDashboard(dashboardID uint) ([]models.DashboardAccess, error) {
	grants := make([]models.DashboardAccess, 0)
	if err := repo.database.
		Where("dashboard_id = ?", dashboardID).
		Order("created_at ASC").
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

// UpsertRole mirrors UpsertAccess for the demographic role row.
func (repo *AccessRepository) UpsertRole(userID uint, dashboardID uint, role string) error {
	assignment := models.DashboardRole{
		UserID:      userID,
		DashboardID: dashboardID,
		Role:        role,
		CreatedAt:   time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "dashboard_id"}},
		DoUpdates: clause.Assignments(map[string]any{"role": role, "updated_at": time.Now()}),
	}).Create(&assignment).Error
}

func (repo *AccessRepository) FindRole(userID uint, dashboardID uint) (models.DashboardRole, error) {
	var assignment models.DashboardRole
	if err := repo.database.
		Where("user_id = ? AND dashboard_id = ?", userID, dashboardID).
		First(&assignment).Error; err != nil {
		return models.DashboardRole{}, err
	}
	return assignment, nil
}

// RemoveMemberRows deletes the member's access grant and role assignment for
// the dashboard in one transaction.
func (repo *AccessRepository) RemoveMemberRows(userID uint, dashboardID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND dashboard_id = ?", userID, dashboardID).
			Delete(&models.DashboardAccess{}).Error; err != nil {
			return err
		}
		return tx.
			Where("user_id = ? AND dashboard_id = ?", userID, dashboardID).
			Delete(&models.DashboardRole{}).Error
	})
}
