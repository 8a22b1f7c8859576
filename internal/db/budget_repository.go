package db

import (
	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	database *gorm.DB
}

func NewBudgetRepository(database *gorm.DB) *BudgetRepository {
	return &BudgetRepository{database: database}
}

func (repo *BudgetRepository) Create(budget *models.Budget) error {
	return repo.database.Create(budget).Error
}

func (repo *BudgetRepository) FindByIDForDashboard(budgetID uint, dashboardID uint) (models.Budget, error) {
	var budget models.Budget
	if err := repo.database.
		Where("id = ? AND dashboard_id = ?", budgetID, dashboardID).
		First(&budget).Error; err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

func (repo *BudgetRepository) ListByDashboard(dashboardID uint) ([]models.Budget, error) {
	budgets := make([]models.Budget, 0)
	if err := repo.database.
		Where("dashboard_id = ?", dashboardID).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (repo *BudgetRepository) Update(budget *models.Budget) error {
	return repo.database.Save(budget).Error
}

func (repo *BudgetRepository) Delete(budgetID uint, dashboardID uint) error {
	return repo.database.
		Where("id = ? AND dashboard_id = ?", budgetID, dashboardID).
		Delete(&models.Budget{}).Error
}
