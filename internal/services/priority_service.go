package services

import (
	"errors"
	"fmt"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CategoryPriorityRepository interface {
	Create(priority *models.CategoryPriority) error
	FindByTriple(userID uint, categoryID uint, dashboardID uint) (models.CategoryPriority, error)
	ExistsByTriple(userID uint, categoryID uint, dashboardID uint) (bool, error)
	UpdatePriority(priorityID uint, priority int) error
	ListByCategory(categoryID uint, dashboardID uint) ([]models.CategoryPriority, error)
	ListByUserAndDashboard(userID uint, dashboardID uint) ([]models.CategoryPriority, error)
}

type CategoryFinder interface {
	FindByIDForDashboard(categoryID uint, dashboardID uint) (models.Category, error)
}

type IncomeSource interface {
	SumIncomeByUser(userID uint, dashboardID uint) (decimal.Decimal, error)
	SumIncomeTotal(dashboardID uint) (decimal.Decimal, error)
}

// PriorityService stores members' personal category priorities and computes
// the blended dashboard-wide score.
type PriorityService struct {
	priorities CategoryPriorityRepository
	categories CategoryFinder
	incomes    IncomeSource
	access     *AccessService
}

func NewPriorityService(priorities CategoryPriorityRepository, categories CategoryFinder, incomes IncomeSource, access *AccessService) *PriorityService {
	return &PriorityService{
		priorities: priorities,
		categories: categories,
		incomes:    incomes,
		access:     access,
	}
}

var priorityWeightHalf = decimal.RequireFromString("0.5")

// CalculateCategoryPriority blends every member's personal priority for the
// category into one score. Each member's vote is weighted by the 50/50 mix of
// their role weight and their share of the dashboard's income; the result is
// the weighted average rounded half-up to two decimal places at the final
// division only, so intermediate values carry full precision.
//
// A member who rated the category but has no demographic role assigned fails
// the whole calculation: a silent skip would quietly misweight everyone else.
func (service *PriorityService) CalculateCategoryPriority(requesterID uint, categoryID uint, dashboardID uint) (decimal.Decimal, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return decimal.Zero, err
	}
	if err := service.requireCategory(categoryID, dashboardID); err != nil {
		return decimal.Zero, err
	}

	priorities, err := service.priorities.ListByCategory(categoryID, dashboardID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("list category priorities: %w", err)
	}
	if len(priorities) == 0 {
		return decimal.Zero.Round(2), nil
	}

	totalIncome, err := service.incomes.SumIncomeTotal(dashboardID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum dashboard income: %w", err)
	}

	totalPriority := decimal.Zero
	totalWeight := decimal.Zero
	for _, priority := range priorities {
		role, err := service.access.ResolveRole(priority.UserID, dashboardID)
		if err != nil {
			return decimal.Zero, err
		}
		roleWeight, ok := RoleWeight(role)
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: weight for role %q", ErrNotFound, role)
		}

		incomeWeight := decimal.Zero
		if totalIncome.IsPositive() {
			userIncome, err := service.incomes.SumIncomeByUser(priority.UserID, dashboardID)
			if err != nil {
				return decimal.Zero, fmt.Errorf("sum member income: %w", err)
			}
			incomeWeight = userIncome.Div(totalIncome)
		}

		combinedWeight := priorityWeightHalf.Mul(roleWeight).Add(priorityWeightHalf.Mul(incomeWeight))
		totalPriority = totalPriority.Add(decimal.NewFromInt(int64(priority.Priority)).Mul(combinedWeight))
		totalWeight = totalWeight.Add(combinedWeight)
	}

	if totalWeight.IsZero() {
		return decimal.Zero.Round(2), nil
	}
	return totalPriority.DivRound(totalWeight, 2), nil
}

// SetCategoryPriority records the acting user's personal priority for the
// category. A second rating for the same triple fails with ErrAlreadyExists.
func (service *PriorityService) SetCategoryPriority(userID uint, categoryID uint, dashboardID uint, priority int) (models.CategoryPriority, error) {
	if err := service.access.CheckAccess(userID, dashboardID, models.AccessViewer); err != nil {
		return models.CategoryPriority{}, err
	}
	if err := service.requireCategory(categoryID, dashboardID); err != nil {
		return models.CategoryPriority{}, err
	}
	if priority <= 0 {
		return models.CategoryPriority{}, fmt.Errorf("%w: priority must be positive", ErrInvalidArgument)
	}

	exists, err := service.priorities.ExistsByTriple(userID, categoryID, dashboardID)
	if err != nil {
		return models.CategoryPriority{}, fmt.Errorf("check category priority: %w", err)
	}
	if exists {
		return models.CategoryPriority{}, fmt.Errorf("%w: priority for user %d, category %d", ErrAlreadyExists, userID, categoryID)
	}

	row := models.CategoryPriority{
		UserID:      userID,
		CategoryID:  categoryID,
		DashboardID: dashboardID,
		Priority:    priority,
	}
	if err := service.priorities.Create(&row); err != nil {
		return models.CategoryPriority{}, fmt.Errorf("create category priority: %w", err)
	}
	return row, nil
}

// UpdateCategoryPriority changes the acting user's existing rating; a missing
// triple fails with ErrNotFound.
func (service *PriorityService) UpdateCategoryPriority(userID uint, categoryID uint, dashboardID uint, priority int) (models.CategoryPriority, error) {
	if err := service.access.CheckAccess(userID, dashboardID, models.AccessViewer); err != nil {
		return models.CategoryPriority{}, err
	}
	if priority <= 0 {
		return models.CategoryPriority{}, fmt.Errorf("%w: priority must be positive", ErrInvalidArgument)
	}

	row, err := service.priorities.FindByTriple(userID, categoryID, dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CategoryPriority{}, fmt.Errorf("%w: priority for user %d, category %d", ErrNotFound, userID, categoryID)
		}
		return models.CategoryPriority{}, fmt.Errorf("find category priority: %w", err)
	}
	if err := service.priorities.UpdatePriority(row.ID, priority); err != nil {
		return models.CategoryPriority{}, fmt.Errorf("update category priority: %w", err)
	}
	row.Priority = priority
	return row, nil
}

// ListCategoryPriorities returns every member's rating for the category.
func (service *PriorityService) ListCategoryPriorities(requesterID uint, categoryID uint, dashboardID uint) ([]models.CategoryPriority, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return nil, err
	}
	if err := service.requireCategory(categoryID, dashboardID); err != nil {
		return nil, err
	}
	priorities, err := service.priorities.ListByCategory(categoryID, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list category priorities: %w", err)
	}
	return priorities, nil
}

// ListUserPriorities returns the acting user's own ratings across the
// dashboard.
func (service *PriorityService) ListUserPriorities(userID uint, dashboardID uint) ([]models.CategoryPriority, error) {
	if err := service.access.CheckAccess(userID, dashboardID, models.AccessViewer); err != nil {
		return nil, err
	}
	priorities, err := service.priorities.ListByUserAndDashboard(userID, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list user priorities: %w", err)
	}
	return priorities, nil
}

func (service *PriorityService) requireCategory(categoryID uint, dashboardID uint) error {
	if _, err := service.categories.FindByIDForDashboard(categoryID, dashboardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d on dashboard %d", ErrNotFound, categoryID, dashboardID)
		}
		return fmt.Errorf("find category: %w", err)
	}
	return nil
}
