package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetRepository interface {
	Create(budget *models.Budget) error
	FindByIDForDashboard(budgetID uint, dashboardID uint) (models.Budget, error)
	ListByDashboard(dashboardID uint) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(budgetID uint, dashboardID uint) error
}

type BudgetService struct {
	budgets BudgetRepository
	access  *AccessService
}

func NewBudgetService(budgets BudgetRepository, access *AccessService) *BudgetService {
	return &BudgetService{budgets: budgets, access: access}
}

func (service *BudgetService) Create(requesterID uint, dashboardID uint, title string, amount decimal.Decimal) (models.Budget, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.Budget{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Budget{}, fmt.Errorf("%w: empty budget title", ErrInvalidArgument)
	}
	if amount.IsNegative() {
		return models.Budget{}, fmt.Errorf("%w: negative budget amount", ErrInvalidArgument)
	}

	budget := models.Budget{DashboardID: dashboardID, Title: title, Amount: amount}
	if err := service.budgets.Create(&budget); err != nil {
		return models.Budget{}, fmt.Errorf("create budget: %w", err)
	}
	return budget, nil
}

func (service *BudgetService) List(requesterID uint, dashboardID uint) ([]models.Budget, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return nil, err
	}
	budgets, err := service.budgets.ListByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

func (service *BudgetService) Update(requesterID uint, dashboardID uint, budgetID uint, title string, amount decimal.Decimal) (models.Budget, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.Budget{}, err
	}
	budget, err := service.budgets.FindByIDForDashboard(budgetID, dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Budget{}, fmt.Errorf("%w: budget %d", ErrNotFound, budgetID)
		}
		return models.Budget{}, fmt.Errorf("find budget: %w", err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return models.Budget{}, fmt.Errorf("%w: empty budget title", ErrInvalidArgument)
	}
	if amount.IsNegative() {
		return models.Budget{}, fmt.Errorf("%w: negative budget amount", ErrInvalidArgument)
	}
	budget.Title = title
	budget.Amount = amount
	if err := service.budgets.Update(&budget); err != nil {
		return models.Budget{}, fmt.Errorf("update budget: %w", err)
	}
	return budget, nil
}

func (service *BudgetService) Delete(requesterID uint, dashboardID uint, budgetID uint) error {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return err
	}
	if _, err := service.budgets.FindByIDForDashboard(budgetID, dashboardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: budget %d", ErrNotFound, budgetID)
		}
		return fmt.Errorf("find budget: %w", err)
	}
	if err := service.budgets.Delete(budgetID, dashboardID); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
