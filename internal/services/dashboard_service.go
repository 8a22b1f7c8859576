package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type DashboardRepository interface {
	FindByID(dashboardID uint) (models.Dashboard, error)
	ListByCreator(creatorID uint) ([]models.Dashboard, error)
	ListByIDs(dashboardIDs []uint) ([]models.Dashboard, error)
	CreateWithOwnerAccess(dashboard *models.Dashboard) error
	Update(dashboard *models.Dashboard) error
	Delete(dashboardID uint) error
}

type DashboardService struct {
	dashboards DashboardRepository
	access     *AccessService
}

func NewDashboardService(dashboards DashboardRepository, access *AccessService) *DashboardService {
	return &DashboardService{dashboards: dashboards, access: access}
}

// Create makes the acting user the dashboard's creator and grants them the
// owner access row in the same transaction.
func (service *DashboardService) Create(creatorID uint, title string, description string) (models.Dashboard, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Dashboard{}, fmt.Errorf("%w: empty dashboard title", ErrInvalidArgument)
	}

	dashboard := models.Dashboard{
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatorID:   creatorID,
		CreatedAt:   time.Now(),
	}
	if err := service.dashboards.CreateWithOwnerAccess(&dashboard); err != nil {
		return models.Dashboard{}, fmt.Errorf("create dashboard: %w", err)
	}
	return dashboard, nil
}

// Get returns the dashboard when the requester holds at least viewer access.
func (service *DashboardService) Get(requesterID uint, dashboardID uint) (models.Dashboard, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return models.Dashboard{}, err
	}
	dashboard, err := service.dashboards.FindByID(dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Dashboard{}, fmt.Errorf("%w: dashboard %d", ErrNotFound, dashboardID)
		}
		return models.Dashboard{}, fmt.Errorf("find dashboard: %w", err)
	}
	return dashboard, nil
}

// Update changes the title or description; editor access required.
func (service *DashboardService) Update(requesterID uint, dashboardID uint, title string, description string) (models.Dashboard, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.Dashboard{}, err
	}
	dashboard, err := service.dashboards.FindByID(dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Dashboard{}, fmt.Errorf("%w: dashboard %d", ErrNotFound, dashboardID)
		}
		return models.Dashboard{}, fmt.Errorf("find dashboard: %w", err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return models.Dashboard{}, fmt.Errorf("%w: empty dashboard title", ErrInvalidArgument)
	}
	dashboard.Title = title
	dashboard.Description = strings.TrimSpace(description)
	if err := service.dashboards.Update(&dashboard); err != nil {
		return models.Dashboard{}, fmt.Errorf("update dashboard: %w", err)
	}
	return dashboard, nil
}

// Delete removes the dashboard and everything scoped to it; owner access
// required.
func (service *DashboardService) Delete(requesterID uint, dashboardID uint) error {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessOwner); err != nil {
		return err
	}
	if _, err := service.dashboards.FindByID(dashboardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: dashboard %d", ErrNotFound, dashboardID)
		}
		return fmt.Errorf("find dashboard: %w", err)
	}
	if err := service.dashboards.Delete(dashboardID); err != nil {
		return fmt.Errorf("delete dashboard: %w", err)
	}
	return nil
}

// ListOwned returns dashboards the user created.
func (service *DashboardService) ListOwned(userID uint) ([]models.Dashboard, error) {
	dashboards, err := service.dashboards.ListByCreator(userID)
	if err != nil {
		return nil, fmt.Errorf("list owned dashboards: %w", err)
	}
	return dashboards, nil
}

// ListShared returns dashboards the user can access but did not create:
// the accessible set minus the owned set.
func (service *DashboardService) ListShared(userID uint) ([]models.Dashboard, error) {
	accessibleIDs, err := service.access.AccessibleDashboardIDs(userID)
	if err != nil {
		return nil, err
	}

	sharedIDs := make([]uint, 0, len(accessibleIDs))
	for _, dashboardID := range accessibleIDs {
		dashboard, err := service.dashboards.FindByID(dashboardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("find dashboard: %w", err)
		}
		if dashboard.CreatorID != userID {
			sharedIDs = append(sharedIDs, dashboardID)
		}
	}
	return service.dashboards.ListByIDs(sharedIDs)
}
