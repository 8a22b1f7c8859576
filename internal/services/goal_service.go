package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalRepository interface {
	Create(goal *models.FinancialGoal) error
	FindByIDForDashboard(goalID uint, dashboardID uint) (models.FinancialGoal, error)
	ListByDashboard(dashboardID uint) ([]models.FinancialGoal, error)
	Update(goal *models.FinancialGoal) error
	Delete(goalID uint, dashboardID uint) error
}

type GoalService struct {
	goals  GoalRepository
	access *AccessService
}

func NewGoalService(goals GoalRepository, access *AccessService) *GoalService {
	return &GoalService{goals: goals, access: access}
}

func (service *GoalService) Create(requesterID uint, dashboardID uint, title string, targetAmount decimal.Decimal, targetDate time.Time) (models.FinancialGoal, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.FinancialGoal{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return models.FinancialGoal{}, fmt.Errorf("%w: empty goal title", ErrInvalidArgument)
	}
	if !targetAmount.IsPositive() {
		return models.FinancialGoal{}, fmt.Errorf("%w: goal amount must be positive", ErrInvalidArgument)
	}

	goal := models.FinancialGoal{
		DashboardID:  dashboardID,
		Title:        title,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
	}
	if err := service.goals.Create(&goal); err != nil {
		return models.FinancialGoal{}, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

func (service *GoalService) List(requesterID uint, dashboardID uint) ([]models.FinancialGoal, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return nil, err
	}
	goals, err := service.goals.ListByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (service *GoalService) Update(requesterID uint, dashboardID uint, goalID uint, title string, targetAmount decimal.Decimal, targetDate time.Time, achieved bool) (models.FinancialGoal, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.FinancialGoal{}, err
	}
	goal, err := service.goals.FindByIDForDashboard(goalID, dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FinancialGoal{}, fmt.Errorf("%w: goal %d", ErrNotFound, goalID)
		}
		return models.FinancialGoal{}, fmt.Errorf("find goal: %w", err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return models.FinancialGoal{}, fmt.Errorf("%w: empty goal title", ErrInvalidArgument)
	}
	if !targetAmount.IsPositive() {
		return models.FinancialGoal{}, fmt.Errorf("%w: goal amount must be positive", ErrInvalidArgument)
	}
	goal.Title = title
	goal.TargetAmount = targetAmount
	goal.TargetDate = targetDate
	goal.Achieved = achieved
	if err := service.goals.Update(&goal); err != nil {
		return models.FinancialGoal{}, fmt.Errorf("update goal: %w", err)
	}
	return goal, nil
}

func (service *GoalService) Delete(requesterID uint, dashboardID uint, goalID uint) error {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return err
	}
	if _, err := service.goals.FindByIDForDashboard(goalID, dashboardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: goal %d", ErrNotFound, goalID)
		}
		return fmt.Errorf("find goal: %w", err)
	}
	if err := service.goals.Delete(goalID, dashboardID); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}
