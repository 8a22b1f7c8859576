package db

import (
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type InviteLinkRepository struct {
	database *gorm.DB
}

func NewInviteLinkRepository(database *gorm.DB) *InviteLinkRepository {
	return &InviteLinkRepository{database: database}
}

// CreateReplacing hard-deletes any links the dashboard already has and inserts
// the new one, keeping the one-link-per-dashboard invariant transactional.
func (repo *InviteLinkRepository) CreateReplacing(link *models.InviteLink) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("dashboard_id = ?", link.DashboardID).
			Delete(&models.InviteLink{}).Error; err != nil {
			return err
		}
		return tx.Create(link).Error
	})
}

func (repo *InviteLinkRepository) FindByToken(token string) (models.InviteLink, error) {
	var link models.InviteLink
	if err := repo.database.
		Where("token = ?", token).
		First(&link).Error; err != nil {
		return models.InviteLink{}, err
	}
	return link, nil
}

func (repo *InviteLinkRepository) FindActiveByToken(token string) (models.InviteLink, error) {
	var link models.InviteLink
	if err := repo.database.
		Where("token = ? AND active = ?", token, true).
		First(&link).Error; err != nil {
		return models.InviteLink{}, err
	}
	return link, nil
}

func (repo *InviteLinkRepository) FindByDashboard(dashboardID uint) (models.InviteLink, error) {
	var link models.InviteLink
	if err := repo.database.
		Where("dashboard_id = ?", dashboardID).
		First(&link).Error; err != nil {
		return models.InviteLink{}, err
	}
	return link, nil
}

func (repo *InviteLinkRepository) SetActive(linkID uint, active bool) error {
	return repo.database.Model(&models.InviteLink{}).
		Where("id = ?", linkID).
		Updates(map[string]any{"active": active, "updated_at": time.Now()}).Error
}

func (repo *InviteLinkRepository) ListExpiredActive(now time.Time) ([]models.InviteLink, error) {
	links := make([]models.InviteLink, 0)
	if err := repo.database.
		Where("active = ? AND expires_at < ?", true, now).
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// RotateToken swaps in a fresh token and expiry, guarded on the previous
// expiry so two concurrent sweeps cannot rotate the same link twice.
func (repo *InviteLinkRepository) RotateToken(linkID uint, previousExpiry time.Time, token string, expiresAt time.Time) (bool, error) {
	result := repo.database.Model(&models.InviteLink{}).
		Where("id = ? AND expires_at = ?", linkID, previousExpiry).
		Updates(map[string]any{
			"token":      token,
			"expires_at": expiresAt,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
