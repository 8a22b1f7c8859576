package db

import (
	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) Create(goal *models.FinancialGoal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) FindByIDForDashboard(goalID uint, dashboardID uint) (models.FinancialGoal, error) {
	var goal models.FinancialGoal
	if err := repo.database.
		Where("id = ? AND dashboard_id = ?", goalID, dashboardID).
		First(&goal).Error; err != nil {
		return models.FinancialGoal{}, err
	}
	return goal, nil
}

func (repo *GoalRepository) ListByDashboard(dashboardID uint) ([]models.FinancialGoal, error) {
	goals := make([]models.FinancialGoal, 0)
	if err := repo.database.
		Where("dashboard_id = ?", dashboardID).
		Order("target_date ASC, id ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) Update(goal *models.FinancialGoal) error {
	return repo.database.Save(goal).Error
}

func (repo *GoalRepository) Delete(goalID uint, dashboardID uint) error {
	return repo.database.
		Where("id = ? AND dashboard_id = ?", goalID, dashboardID).
		Delete(&models.FinancialGoal{}).Error
}
