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

type RecordRepository interface {
	Create(record *models.FinancialRecord) error
	FindByIDForDashboard(recordID uint, dashboardID uint) (models.FinancialRecord, error)
	ListByDashboard(dashboardID uint) ([]models.FinancialRecord, error)
	Update(record *models.FinancialRecord) error
	ReplaceTags(record *models.FinancialRecord, tags []models.Tag) error
	Delete(recordID uint, dashboardID uint) error
}

type TagFinder interface {
	ListByIDsForDashboard(tagIDs []uint, dashboardID uint) ([]models.Tag, error)
}

// RecordInput carries the caller-supplied fields of a financial record.
type RecordInput struct {
	Title      string
	Amount     decimal.Decimal
	Type       string
	CategoryID *uint
	RecordedAt time.Time
	TagIDs     []uint
}

type RecordService struct {
	records    RecordRepository
	categories CategoryFinder
	tags       TagFinder
	access     *AccessService
}

func NewRecordService(records RecordRepository, categories CategoryFinder, tags TagFinder, access *AccessService) *RecordService {
	return &RecordService{
		records:    records,
		categories: categories,
		tags:       tags,
		access:     access,
	}
}

func (service *RecordService) Create(requesterID uint, dashboardID uint, input RecordInput) (models.FinancialRecord, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.FinancialRecord{}, err
	}
	if err := service.validateInput(dashboardID, &input); err != nil {
		return models.FinancialRecord{}, err
	}

	record := models.FinancialRecord{
		DashboardID: dashboardID,
		UserID:      requesterID,
		CategoryID:  input.CategoryID,
		Title:       strings.TrimSpace(input.Title),
		Amount:      input.Amount,
		Type:        input.Type,
		RecordedAt:  input.RecordedAt,
	}
	if err := service.records.Create(&record); err != nil {
		return models.FinancialRecord{}, fmt.Errorf("create record: %w", err)
	}
	if len(input.TagIDs) > 0 {
		if err := service.attachTags(&record, dashboardID, input.TagIDs); err != nil {
			return models.FinancialRecord{}, err
		}
	}
	return record, nil
}

func (service *RecordService) Get(requesterID uint, dashboardID uint, recordID uint) (models.FinancialRecord, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return models.FinancialRecord{}, err
	}
	return service.find(recordID, dashboardID)
}

func (service *RecordService) List(requesterID uint, dashboardID uint) ([]models.FinancialRecord, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return nil, err
	}
	records, err := service.records.ListByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (service *RecordService) Update(requesterID uint, dashboardID uint, recordID uint, input RecordInput) (models.FinancialRecord, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.FinancialRecord{}, err
	}
	record, err := service.find(recordID, dashboardID)
	if err != nil {
		return models.FinancialRecord{}, err
	}
	if err := service.validateInput(dashboardID, &input); err != nil {
		return models.FinancialRecord{}, err
	}

	record.Title = strings.TrimSpace(input.Title)
	record.Amount = input.Amount
	record.Type = input.Type
	record.CategoryID = input.CategoryID
	record.RecordedAt = input.RecordedAt
	if err := service.records.Update(&record); err != nil {
		return models.FinancialRecord{}, fmt.Errorf("update record: %w", err)
	}
	if err := service.attachTags(&record, dashboardID, input.TagIDs); err != nil {
		return models.FinancialRecord{}, err
	}
	return record, nil
}

func (service *RecordService) Delete(requesterID uint, dashboardID uint, recordID uint) error {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return err
	}
	if _, err := service.find(recordID, dashboardID); err != nil {
		return err
	}
	if err := service.records.Delete(recordID, dashboardID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func (service *RecordService) find(recordID uint, dashboardID uint) (models.FinancialRecord, error) {
	record, err := service.records.FindByIDForDashboard(recordID, dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FinancialRecord{}, fmt.Errorf("%w: record %d", ErrNotFound, recordID)
		}
		return models.FinancialRecord{}, fmt.Errorf("find record: %w", err)
	}
	return record, nil
}

func (service *RecordService) validateInput(dashboardID uint, input *RecordInput) error {
	if !models.KnownRecordType(input.Type) {
		return fmt.Errorf("%w: record type %q", ErrInvalidArgument, input.Type)
	}
	if input.RecordedAt.IsZero() {
		input.RecordedAt = time.Now()
	}
	if input.CategoryID != nil {
		if _, err := service.categories.FindByIDForDashboard(*input.CategoryID, dashboardID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: category %d", ErrNotFound, *input.CategoryID)
			}
			return fmt.Errorf("find category: %w", err)
		}
	}
	return nil
}

func (service *RecordService) attachTags(record *models.FinancialRecord, dashboardID uint, tagIDs []uint) error {
	tags, err := service.tags.ListByIDsForDashboard(tagIDs, dashboardID)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}
	if len(tags) != len(tagIDs) {
		return fmt.Errorf("%w: one or more tags", ErrNotFound)
	}
	if err := service.records.ReplaceTags(record, tags); err != nil {
		return fmt.Errorf("attach tags: %w", err)
	}
	record.Tags = tags
	return nil
}
