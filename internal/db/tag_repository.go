package db

import (
	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type TagRepository struct {
	database *gorm.DB
}

func NewTagRepository(database *gorm.DB) *TagRepository {
	return &TagRepository{database: database}
}

func (repo *TagRepository) Create(tag *models.Tag) error {
	return repo.database.Create(tag).Error
}

func (repo *TagRepository) FindByIDForDashboard(tagID uint, dashboardID uint) (models.Tag, error) {
	var tag models.Tag
	if err := repo.database.
		Where("id = ? AND dashboard_id = ?", tagID, dashboardID).
		First(&tag).Error; err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func (repo *TagRepository) ListByDashboard(dashboardID uint) ([]models.Tag, error) {
	tags := make([]models.Tag, 0)
	if err := repo.database.
		Where("dashboard_id = ?", dashboardID).
		Order("name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (repo *TagRepository) ListByIDsForDashboard(tagIDs []uint, dashboardID uint) ([]models.Tag, error) {
	tags := make([]models.Tag, 0)
	if len(tagIDs) == 0 {
		return tags, nil
	}
	if err := repo.database.
		Where("id IN ? AND dashboard_id = ?", tagIDs, dashboardID).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (repo *TagRepository) Delete(tagID uint, dashboardID uint) error {
	return repo.database.
		Where("id = ? AND dashboard_id = ?", tagID, dashboardID).
		Delete(&models.Tag{}).Error
}
