package db

import (
	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	database *gorm.DB
}

func NewDashboardRepository(database *gorm.DB) *DashboardRepository {
	return &DashboardRepository{database: database}
}

func (repo *DashboardRepository) FindByID(dashboardID uint) (models.Dashboard, error) {
	var dashboard models.Dashboard
	if err := repo.database.First(&dashboard, dashboardID).Error; err != nil {
		return models.Dashboard{}, err
	}
	return dashboard, nil
}

func (repo *DashboardRepository) ListByCreator(creatorID uint) ([]models.Dashboard, error) {
	dashboards := make([]models.Dashboard, 0)
	if err := repo.database.
		Where("creator_id = ?", creatorID).
		Order("created_at ASC").
		Find(&dashboards).Error; err != nil {
		return nil, err
	}
	return dashboards, nil
}

func (repo *DashboardRepository) ListByIDs(dashboardIDs []uint) ([]models.Dashboard, error) {
	dashboards := make([]models.Dashboard, 0)
	if len(dashboardIDs) == 0 {
		return dashboards, nil
	}
	if err := repo.database.
		Where("id IN ?", dashboardIDs).
		Order("created_at ASC").
		Find(&dashboards).Error; err != nil {
		return nil, err
	}
	return dashboards, nil
}

// CreateWithOwnerAccess creates the dashboard and the creator's owner grant in
// one transaction so a dashboard can never exist without its owner row.
func (repo *DashboardRepository) CreateWithOwnerAccess(dashboard *models.Dashboard) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dashboard).Error; err != nil {
			return err
		}
		access := models.DashboardAccess{
			UserID:      dashboard.CreatorID,
			DashboardID: dashboard.ID,
			Level:       models.AccessOwner,
			CreatedAt:   dashboard.CreatedAt,
		}
		return tx.Create(&access).Error
	})
}

func (repo *DashboardRepository) Update(dashboard *models.Dashboard) error {
	return repo.database.Save(dashboard).Error
}

// Delete removes the dashboard row; sqlite foreign keys cascade the grants,
// roles, budgets, records, goals, tags and invite links.
func (repo *DashboardRepository) Delete(dashboardID uint) error {
	return repo.database.Delete(&models.Dashboard{}, dashboardID).Error
}
