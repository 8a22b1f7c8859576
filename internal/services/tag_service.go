package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	FindByIDForDashboard(tagID uint, dashboardID uint) (models.Tag, error)
	ListByDashboard(dashboardID uint) ([]models.Tag, error)
	ListByIDsForDashboard(tagIDs []uint, dashboardID uint) ([]models.Tag, error)
	Delete(tagID uint, dashboardID uint) error
}

type TagService struct {
	tags   TagRepository
	access *AccessService
}

func NewTagService(tags TagRepository, access *AccessService) *TagService {
	return &TagService{tags: tags, access: access}
}

func (service *TagService) Create(requesterID uint, dashboardID uint, name string) (models.Tag, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.Tag{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Tag{}, fmt.Errorf("%w: empty tag name", ErrInvalidArgument)
	}

	tag := models.Tag{DashboardID: dashboardID, Name: name}
	if err := service.tags.Create(&tag); err != nil {
		return models.Tag{}, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (service *TagService) List(requesterID uint, dashboardID uint) ([]models.Tag, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return nil, err
	}
	tags, err := service.tags.ListByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (service *TagService) Delete(requesterID uint, dashboardID uint, tagID uint) error {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return err
	}
	if _, err := service.tags.FindByIDForDashboard(tagID, dashboardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: tag %d", ErrNotFound, tagID)
		}
		return fmt.Errorf("find tag: %w", err)
	}
	if err := service.tags.Delete(tagID, dashboardID); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
