package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	FindByIDForDashboard(categoryID uint, dashboardID uint) (models.Category, error)
	ListByDashboard(dashboardID uint) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(categoryID uint, dashboardID uint) error
}

type CategoryService struct {
	categories CategoryRepository
	access     *AccessService
}

func NewCategoryService(categories CategoryRepository, access *AccessService) *CategoryService {
	return &CategoryService{categories: categories, access: access}
}

func (service *CategoryService) Create(requesterID uint, dashboardID uint, name string, description string) (models.Category, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.Category{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, fmt.Errorf("%w: empty category name", ErrInvalidArgument)
	}

	category := models.Category{
		DashboardID: dashboardID,
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := service.categories.Create(&category); err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (service *CategoryService) Get(requesterID uint, dashboardID uint, categoryID uint) (models.Category, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return models.Category{}, err
	}
	category, err := service.categories.FindByIDForDashboard(categoryID, dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return models.Category{}, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

func (service *CategoryService) List(requesterID uint, dashboardID uint) ([]models.Category, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return nil, err
	}
	categories, err := service.categories.ListByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (service *CategoryService) Update(requesterID uint, dashboardID uint, categoryID uint, name string, description string) (models.Category, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.Category{}, err
	}
	category, err := service.categories.FindByIDForDashboard(categoryID, dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return models.Category{}, fmt.Errorf("find category: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, fmt.Errorf("%w: empty category name", ErrInvalidArgument)
	}
	category.Name = name
	category.Description = strings.TrimSpace(description)
	if err := service.categories.Update(&category); err != nil {
		return models.Category{}, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (service *CategoryService) Delete(requesterID uint, dashboardID uint, categoryID uint) error {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return err
	}
	if _, err := service.categories.FindByIDForDashboard(categoryID, dashboardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return fmt.Errorf("find category: %w", err)
	}
	if err := service.categories.Delete(categoryID, dashboardID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
