package db

import (
	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	database *gorm.DB
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{database: database}
}

func (repo *CategoryRepository) Create(category *models.Category) error {
	return repo.database.Create(category).Error
}

func (repo *CategoryRepository) FindByIDForDashboard(categoryID uint, dashboardID uint) (models.Category, error) {
	var category models.Category
	if err := repo.database.
		Where("id = ? AND dashboard_id = ?", categoryID, dashboardID).
		First(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (repo *CategoryRepository) ListByDashboard(dashboardID uint) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := repo.database.
		Where("dashboard_id = ?", dashboardID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *CategoryRepository) Update(category *models.Category) error {
	return repo.database.Save(category).Error
}

func (repo *CategoryRepository) Delete(categoryID uint, dashboardID uint) error {
	return repo.database.
		Where("id = ? AND dashboard_id = ?", categoryID, dashboardID).
		Delete(&models.Category{}).Error
}
