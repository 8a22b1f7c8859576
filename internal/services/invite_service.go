package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/Pocten/budget-planner-backend-sub000/internal/security"
	"gorm.io/gorm"
)

type InviteLinkRepository interface {
	CreateReplacing(link *models.InviteLink) error
	FindByToken(token string) (models.InviteLink, error)
	FindActiveByToken(token string) (models.InviteLink, error)
	FindByDashboard(dashboardID uint) (models.InviteLink, error)
	SetActive(linkID uint, active bool) error
	ListExpiredActive(now time.Time) ([]models.InviteLink, error)
	RotateToken(linkID uint, previousExpiry time.Time, token string, expiresAt time.Time) (bool, error)
}

// InviteService manages the single invite link a dashboard may hold and the
// periodic sweep that rotates expired ones.
//
// Rotation deserves a note: an active link whose expiry has passed is NOT
// deactivated by the sweep. It gets a fresh token and a fresh expiry and stays
// active, so an unredeemed invite capability survives indefinitely unless a
// member deactivates it. Redeeming an expired link between sweeps still fails.
type InviteService struct {
	links           InviteLinkRepository
	access          *AccessService
	linkLifetime    time.Duration
	refreshInterval time.Duration
}

func NewInviteService(links InviteLinkRepository, access *AccessService, linkLifetime time.Duration, refreshInterval time.Duration) *InviteService {
	return &InviteService{
		links:           links,
		access:          access,
		linkLifetime:    linkLifetime,
		refreshInterval: refreshInterval,
	}
}

// Create mints a fresh invite link for the dashboard, superseding any prior
// link outright. The requester needs at least editor access.
func (service *InviteService) Create(requesterID uint, dashboardID uint) (models.InviteLink, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return models.InviteLink{}, err
	}

	token, err := security.InviteToken()
	if err != nil {
		return models.InviteLink{}, fmt.Errorf("generate invite token: %w", err)
	}

	now := time.Now()
	link := models.InviteLink{
		DashboardID: dashboardID,
		Token:       token,
		ExpiresAt:   now.Add(service.linkLifetime),
		Active:      true,
		CreatedAt:   now,
	}
	if err := service.links.CreateReplacing(&link); err != nil {
		return models.InviteLink{}, fmt.Errorf("create invite link: %w", err)
	}
	return link, nil
}

// Get returns the dashboard's current invite link, if any. The requester
// needs at least viewer access.
func (service *InviteService) Get(requesterID uint, dashboardID uint) (models.InviteLink, error) {
	if err := service.access.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return models.InviteLink{}, err
	}
	link, err := service.links.FindByDashboard(dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.InviteLink{}, fmt.Errorf("%w: invite link for dashboard %d", ErrNotFound, dashboardID)
		}
		return models.InviteLink{}, fmt.Errorf("find invite link: %w", err)
	}
	return link, nil
}

// Activate flips the link's active flag on.
func (service *InviteService) Activate(token string) error {
	return service.setActive(token, true)
}

// Deactivate flips the link's active flag off, which is the only way an
// issued link ever stops being redeemable short of being superseded.
func (service *InviteService) Deactivate(token string) error {
	return service.setActive(token, false)
}

func (service *InviteService) setActive(token string, active bool) error {
	link, err := service.links.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invite link", ErrNotFound)
		}
		return fmt.Errorf("find invite link: %w", err)
	}
	if err := service.links.SetActive(link.ID, active); err != nil {
		return fmt.Errorf("update invite link: %w", err)
	}
	return nil
}

// Use redeems an active invite link for the acting user: a viewer grant plus
// the none role on the link's dashboard. An expired-but-active link fails with
// ErrLinkExpired and is left untouched; only the background sweep rotates it.
func (service *InviteService) Use(token string, userID uint) (models.InviteLink, error) {
	link, err := service.links.FindActiveByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.InviteLink{}, fmt.Errorf("%w: active invite link", ErrNotFound)
		}
		return models.InviteLink{}, fmt.Errorf("find invite link: %w", err)
	}

	if link.Expired(time.Now()) {
		return models.InviteLink{}, fmt.Errorf("%w: token expired at %s", ErrLinkExpired, link.ExpiresAt.Format(time.RFC3339))
	}

	if err := service.access.GrantAccess(userID, link.DashboardID, models.AccessViewer); err != nil {
		return models.InviteLink{}, err
	}
	if err := service.access.AssignRole(userID, link.DashboardID, models.RoleNone); err != nil {
		return models.InviteLink{}, err
	}
	return link, nil
}

// RefreshExpired rotates every active link whose expiry has passed: new
// token, new lifetime, still active. Returns how many links were rotated.
func (service *InviteService) RefreshExpired(now time.Time) (int, error) {
	expired, err := service.links.ListExpiredActive(now)
	if err != nil {
		return 0, fmt.Errorf("list expired invite links: %w", err)
	}

	rotated := 0
	for _, link := range expired {
		token, err := security.InviteToken()
		if err != nil {
			return rotated, fmt.Errorf("generate invite token: %w", err)
		}
		// The previous expiry guards the update; a concurrent sweep that
		// already rotated this link leaves nothing for us to do.
		changed, err := service.links.RotateToken(link.ID, link.ExpiresAt, token, now.Add(service.linkLifetime))
		if err != nil {
			return rotated, fmt.Errorf("rotate invite link %d: %w", link.ID, err)
		}
		if changed {
			rotated++
		}
	}
	return rotated, nil
}

// Start runs the refresh sweep on a fixed interval until the context is
// cancelled.
func (service *InviteService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.refreshInterval)
	go func() {
		defer ticker.Stop()

		service.sweep()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.sweep()
			}
		}
	}()
}

func (service *InviteService) sweep() {
	rotated, err := service.RefreshExpired(time.Now())
	if err != nil {
		log.Printf("invite links: refresh sweep failed: %v", err)
		return
	}
	if rotated > 0 {
		log.Printf("invite links: rotated %d expired link(s)", rotated)
	}
}
