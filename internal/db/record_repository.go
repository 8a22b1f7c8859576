package db

import (
	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

func (repo *RecordRepository) Create(record *models.FinancialRecord) error {
	return repo.database.Create(record).Error
}

func (repo *RecordRepository) FindByIDForDashboard(recordID uint, dashboardID uint) (models.FinancialRecord, error) {
	var record models.FinancialRecord
	if err := repo.database.
		Preload("Tags").
		Where("id = ? AND dashboard_id = ?", recordID, dashboardID).
		First(&record).Error; err != nil {
		return models.FinancialRecord{}, err
	}
	return record, nil
}

func (repo *RecordRepository) ListByDashboard(dashboardID uint) ([]models.FinancialRecord, error) {
	records := make([]models.FinancialRecord, 0)
	if err := repo.database.
		Preload("Tags").
		Where("dashboard_id = ?", dashboardID).
		Order("recorded_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) Update(record *models.FinancialRecord) error {
	return repo.database.Save(record).Error
}

func (repo *RecordRepository) ReplaceTags(record *models.FinancialRecord, tags []models.Tag) error {
	return repo.database.Model(record).Association("Tags").Replace(tags)
}

func (repo *RecordRepository) Delete(recordID uint, dashboardID uint) error {
	return repo.database.
		Where("id = ? AND dashboard_id = ?", recordID, dashboardID).
		Delete(&models.FinancialRecord{}).Error
}

// SumIncomeByUser totals one member's income records on the dashboard. The
// amounts are summed in decimal space rather than with SQL SUM so the weighting
// engine never sees binary floating point.
func (repo *RecordRepository) SumIncomeByUser(userID uint, dashboardID uint) (decimal.Decimal, error) {
	return repo.sumIncome(repo.database.
		Where("user_id = ? AND dashboard_id = ? AND type = ?", userID, dashboardID, models.RecordTypeIncome))
}

// SumIncomeTotal totals income records across all members of the dashboard.
func (repo *RecordRepository) SumIncomeTotal(dashboardID uint) (decimal.Decimal, error) {
	return repo.sumIncome(repo.database.
		Where("dashboard_id = ? AND type = ?", dashboardID, models.RecordTypeIncome))
}

func (repo *RecordRepository) sumIncome(query *gorm.DB) (decimal.Decimal, error) {
	amounts := make([]decimal.Decimal, 0)
	if err := query.Model(&models.FinancialRecord{}).Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total, nil
}
