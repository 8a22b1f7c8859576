package db

import (
	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type CategoryPriorityRepository struct {
	database *gorm.DB
}

func NewCategoryPriorityRepository(database *gorm.DB) *CategoryPriorityRepository {
	return &CategoryPriorityRepository{database: database}
}

func (repo *CategoryPriorityRepository) Create(priority *models.CategoryPriority) error {
	return repo.database.Create(priority).Error
}

func (repo *CategoryPriorityRepository) FindByTriple(userID uint, categoryID uint, dashboardID uint) (models.CategoryPriority, error) {
	var priority models.CategoryPriority
	if err := repo.database.
		Where("user_id = ? AND category_id = ? AND dashboard_id = ?", userID, categoryID, dashboardID).
		First(&priority).Error; err != nil {
		return models.CategoryPriority{}, err
	}
	return priority, nil
}

func (repo *CategoryPriorityRepository) ExistsByTriple(userID uint, categoryID uint, dashboardID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.CategoryPriority{}).
		Where("user_id = ? AND category_id = ? AND dashboard_id = ?", userID, categoryID, dashboardID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CategoryPriorityRepository) UpdatePriority(priorityID uint, priority int) error {
	return repo.database.Model(&models.CategoryPriority{}).
		Where("id = ?", priorityID).
		Update("priority", priority).Error
}

func (repo *CategoryPriorityRepository) ListByCategory(categoryID uint, dashboardID uint) ([]models.CategoryPriority, error) {
	priorities := make([]models.CategoryPriority, 0)
	if err := repo.database.
		Where("category_id = ? AND dashboard_id = ?", categoryID, dashboardID).
		Order("user_id ASC").
		Find(&priorities).Error; err != nil {
		return nil, err
	}
	return priorities, nil
}

func (repo *CategoryPriorityRepository) ListByUserAndDashboard(userID uint, dashboardID uint) ([]models.CategoryPriority, error) {
	priorities := make([]models.CategoryPriority, 0)
	if err := repo.database.
		Where("user_id = ? AND dashboard_id = ?", userID, dashboardID).
		Order("category_id ASC").
		Find(&priorities).Error; err != nil {
		return nil, err
	}
	return priorities, nil
}
