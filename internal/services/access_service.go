package services

import (
	"errors"
	"fmt"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"gorm.io/gorm"
)

type AccessRepository interface {
	UpsertAccess(userID uint, dashboardID uint, level string) error
	FindAccess(userID uint, dashboardID uint) (models.DashboardAccess, error)
	ListAccessByUser(userID uint) ([]models.DashboardAccess, error)
	ListAccessByDashboard(dashboardID uint) ([]models.DashboardAccess, error)
	UpsertRole(userID uint, dashboardID uint, role string) error
	FindRole(userID uint, dashboardID uint) (models.DashboardRole, error)
	RemoveMemberRows(userID uint, dashboardID uint) error
}

type UserDirectory interface {
	FindByID(userID uint) (models.User, error)
	FindByNameOrEmail(nameOrEmail string) (models.User, error)
}

type DashboardDirectory interface {
	FindByID(dashboardID uint) (models.Dashboard, error)
}

// AccessService is the single source of truth for who may do what on a
// dashboard. Every acting user is an explicit argument; nothing here reads
// ambient request state.
type AccessService struct {
	access     AccessRepository
	users      UserDirectory
	dashboards DashboardDirectory
}

func NewAccessService(access AccessRepository, users UserDirectory, dashboards DashboardDirectory) *AccessService {
	return &AccessService{
		access:     access,
		users:      users,
		dashboards: dashboards,
	}
}

// Member is one dashboard membership row joined with its user and optional
// demographic role.
type Member struct {
	UserID uint
	Name   string
	Email  string
	Level  string
	Role   string
}

// GrantAccess writes the single access row for the pair, overwriting any
// prior level.
func (service *AccessService) GrantAccess(userID uint, dashboardID uint, level string) error {
	if !models.KnownAccessLevel(level) {
		return fmt.Errorf("%w: access level %q", ErrNotFound, level)
	}
	if err := service.requireUser(userID); err != nil {
		return err
	}
	if err := service.requireDashboard(dashboardID); err != nil {
		return err
	}
	if err := service.access.UpsertAccess(userID, dashboardID, level); err != nil {
		return fmt.Errorf("grant access: %w", err)
	}
	return nil
}

// CheckAccess fails with ErrAccessDenied unless the user holds an access row
// on the dashboard whose level satisfies required. Absence of a row and an
// insufficient level are deliberately indistinguishable to the caller.
func (service *AccessService) CheckAccess(userID uint, dashboardID uint, required string) error {
	access, err := service.access.FindAccess(userID, dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d on dashboard %d requires %s", ErrAccessDenied, userID, dashboardID, required)
		}
		return fmt.Errorf("check access: %w", err)
	}
	if !models.AccessLevelAtLeast(access.Level, required) {
		return fmt.Errorf("%w: user %d on dashboard %d requires %s", ErrAccessDenied, userID, dashboardID, required)
	}
	return nil
}

// AssignRole writes the single role row for the pair, mirroring the access
// grant upsert.
func (service *AccessService) AssignRole(userID uint, dashboardID uint, role string) error {
	if !models.KnownRole(role) {
		return fmt.Errorf("%w: role %q", ErrNotFound, role)
	}
	if err := service.requireUser(userID); err != nil {
		return err
	}
	if err := service.requireDashboard(dashboardID); err != nil {
		return err
	}
	if err := service.access.UpsertRole(userID, dashboardID, role); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

// ResolveRole returns the user's demographic role on the dashboard, failing
// with ErrNotFound when none has been assigned.
func (service *AccessService) ResolveRole(userID uint, dashboardID uint) (string, error) {
	assignment, err := service.access.FindRole(userID, dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: role for user %d on dashboard %d", ErrNotFound, userID, dashboardID)
		}
		return "", fmt.Errorf("resolve role: %w", err)
	}
	return assignment.Role, nil
}

// AccessibleDashboardIDs returns every dashboard the user holds any access
// row on, at any level.
func (service *AccessService) AccessibleDashboardIDs(userID uint) ([]uint, error) {
	grants, err := service.access.ListAccessByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list accessible dashboards: %w", err)
	}
	ids := make([]uint, 0, len(grants))
	for _, grant := range grants {
		ids = append(ids, grant.DashboardID)
	}
	return ids, nil
}

// AddMember grants viewer access to the user identified by name or email.
// The requester needs at least editor access.
func (service *AccessService) AddMember(requesterID uint, dashboardID uint, nameOrEmail string) (Member, error) {
	if err := service.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return Member{}, err
	}
	target, err := service.findUserByHandle(nameOrEmail)
	if err != nil {
		return Member{}, err
	}
	if err := service.access.UpsertAccess(target.ID, dashboardID, models.AccessViewer); err != nil {
		return Member{}, fmt.Errorf("add member: %w", err)
	}
	return Member{UserID: target.ID, Name: target.Name, Email: target.Email, Level: models.AccessViewer}, nil
}

// ChangeAccessLevel sets a member's level. Only an owner may do this, and the
// dashboard creator's own owner grant can never be lowered; that invariant is
// the one thing standing between a shared dashboard and lock-out.
func (service *AccessService) ChangeAccessLevel(requesterID uint, dashboardID uint, nameOrEmail string, newLevel string) error {
	if !models.KnownAccessLevel(newLevel) {
		return fmt.Errorf("%w: access level %q", ErrNotFound, newLevel)
	}
	if err := service.CheckAccess(requesterID, dashboardID, models.AccessOwner); err != nil {
		return err
	}
	target, err := service.findUserByHandle(nameOrEmail)
	if err != nil {
		return err
	}
	dashboard, err := service.dashboards.FindByID(dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: dashboard %d", ErrNotFound, dashboardID)
		}
		return fmt.Errorf("change access level: %w", err)
	}
	if target.ID == dashboard.CreatorID && newLevel != models.AccessOwner {
		return fmt.Errorf("%w: creator access is immutable", ErrAccessDenied)
	}
	if err := service.access.UpsertAccess(target.ID, dashboardID, newLevel); err != nil {
		return fmt.Errorf("change access level: %w", err)
	}
	return nil
}

// RemoveMember deletes the target's access and role rows. The requester needs
// at least editor access; the creator cannot be removed.
func (service *AccessService) RemoveMember(requesterID uint, dashboardID uint, nameOrEmail string) error {
	if err := service.CheckAccess(requesterID, dashboardID, models.AccessEditor); err != nil {
		return err
	}
	target, err := service.findUserByHandle(nameOrEmail)
	if err != nil {
		return err
	}
	dashboard, err := service.dashboards.FindByID(dashboardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: dashboard %d", ErrNotFound, dashboardID)
		}
		return fmt.Errorf("remove member: %w", err)
	}
	if target.ID == dashboard.CreatorID {
		return fmt.Errorf("%w: creator cannot be removed", ErrAccessDenied)
	}
	if _, err := service.access.FindAccess(target.ID, dashboardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: member %q on dashboard %d", ErrNotFound, nameOrEmail, dashboardID)
		}
		return fmt.Errorf("remove member: %w", err)
	}
	if err := service.access.RemoveMemberRows(target.ID, dashboardID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

// ListMembers returns every member of the dashboard with their level and any
// assigned role. The requester needs at least viewer access.
func (service *AccessService) ListMembers(requesterID uint, dashboardID uint) ([]Member, error) {
	if err := service.CheckAccess(requesterID, dashboardID, models.AccessViewer); err != nil {
		return nil, err
	}
	grants, err := service.access.ListAccessByDashboard(dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]Member, 0, len(grants))
	for _, grant := range grants {
		user, err := service.users.FindByID(grant.UserID)
		if err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		member := Member{UserID: user.ID, Name: user.Name, Email: user.Email, Level: grant.Level}
		if assignment, err := service.access.FindRole(grant.UserID, dashboardID); err == nil {
			member.Role = assignment.Role
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("list members: %w", err)
		}
		members = append(members, member)
	}
	return members, nil
}

func (service *AccessService) requireUser(userID uint) error {
	if _, err := service.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return fmt.Errorf("find user: %w", err)
	}
	return nil
}

func (service *AccessService) requireDashboard(dashboardID uint) error {
	if _, err := service.dashboards.FindByID(dashboardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: dashboard %d", ErrNotFound, dashboardID)
		}
		return fmt.Errorf("find dashboard: %w", err)
	}
	return nil
}

func (service *AccessService) findUserByHandle(nameOrEmail string) (models.User, error) {
	normalized := normalizeHandle(nameOrEmail)
	if normalized == "" {
		return models.User{}, fmt.Errorf("%w: empty user handle", ErrInvalidArgument)
	}
	user, err := service.users.FindByNameOrEmail(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: user %q", ErrNotFound, nameOrEmail)
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
