package services

import (
	"sort"
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type pairKey struct {
	userID      uint
	dashboardID uint
}

type fakeAccessRepo struct {
	accesses map[pairKey]models.DashboardAccess
	roles    map[pairKey]models.DashboardRole
	nextID   uint
}

func newFakeAccessRepo() *fakeAccessRepo {
	return &fakeAccessRepo{
		accesses: make(map[pairKey]models.DashboardAccess),
		roles:    make(map[pairKey]models.DashboardRole),
	}
}

func (repo *fakeAccessRepo) UpsertAccess(userID uint, dashboardID uint, level string) error {
	key := pairKey{userID, dashboardID}
	row, ok := repo.accesses[key]
	if !ok {
		repo.nextID++
		row = models.DashboardAccess{ID: repo.nextID, UserID: userID, DashboardID: dashboardID}
	}
	row.Level = level
	repo.accesses[key] = row
	return nil
}

func (repo *fakeAccessRepo) FindAccess(userID uint, dashboardID uint) (models.DashboardAccess, error) {
	row, ok := repo.accesses[pairKey{userID, dashboardID}]
	if !ok {
		return models.DashboardAccess{}, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (repo *fakeAccessRepo) ListAccessByUser(userID uint) ([]models.DashboardAccess, error) {
	rows := make([]models.DashboardAccess, 0)
	for _, row := range repo.accesses {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DashboardID < rows[j].DashboardID })
	return rows, nil
}

func (repo *fakeAccessRepo) ListAccessByDashboard(dashboardID uint) ([]models.DashboardAccess, error) {
	rows := make([]models.DashboardAccess, 0)
	for _, row := range repo.accesses {
		if row.DashboardID == dashboardID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	return rows, nil
}

func (repo *fakeAccessRepo) UpsertRole(userID uint, dashboardID uint, role string) error {
	key := pairKey{userID, dashboardID}
	row, ok := repo.roles[key]
	if !ok {
		repo.nextID++
		row = models.DashboardRole{ID: repo.nextID, UserID: userID, DashboardID: dashboardID}
	}
	row.Role = role
	repo.roles[key] = row
	return nil
}

func (repo *fakeAccessRepo) FindRole(userID uint, dashboardID uint) (models.DashboardRole, error) {
	row, ok := repo.roles[pairKey{userID, dashboardID}]
	if !ok {
		return models.DashboardRole{}, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (repo *fakeAccessRepo) RemoveMemberRows(userID uint, dashboardID uint) error {
	delete(repo.accesses, pairKey{userID, dashboardID})
	delete(repo.roles, pairKey{userID, dashboardID})
	return nil
}

type fakeUserDirectory struct {
	users map[uint]models.User
}

func newFakeUserDirectory(users ...models.User) *fakeUserDirectory {
	directory := &fakeUserDirectory{users: make(map[uint]models.User)}
	for _, user := range users {
		directory.users[user.ID] = user
	}
	return directory
}

func (directory *fakeUserDirectory) FindByID(userID uint) (models.User, error) {
	user, ok := directory.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (directory *fakeUserDirectory) FindByNameOrEmail(nameOrEmail string) (models.User, error) {
	for _, user := range directory.users {
		if user.Name == nameOrEmail || user.Email == nameOrEmail {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (directory *fakeUserDirectory) ExistsByName(name string) (bool, error) {
	for _, user := range directory.users {
		if user.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (directory *fakeUserDirectory) ExistsByEmail(email string) (bool, error) {
	for _, user := range directory.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (directory *fakeUserDirectory) Create(user *models.User) error {
	user.ID = uint(len(directory.users) + 1)
	directory.users[user.ID] = *user
	return nil
}

type fakeDashboardRepo struct {
	dashboards map[uint]models.Dashboard
	access     *fakeAccessRepo
	nextID     uint
}

func newFakeDashboardRepo(access *fakeAccessRepo, dashboards ...models.Dashboard) *fakeDashboardRepo {
	repo := &fakeDashboardRepo{dashboards: make(map[uint]models.Dashboard), access: access}
	for _, dashboard := range dashboards {
		repo.dashboards[dashboard.ID] = dashboard
		if dashboard.ID > repo.nextID {
			repo.nextID = dashboard.ID
		}
	}
	return repo
}

func (repo *fakeDashboardRepo) FindByID(dashboardID uint) (models.Dashboard, error) {
	dashboard, ok := repo.dashboards[dashboardID]
	if !ok {
		return models.Dashboard{}, gorm.ErrRecordNotFound
	}
	return dashboard, nil
}

func (repo *fakeDashboardRepo) ListByCreator(creatorID uint) ([]models.Dashboard, error) {
	dashboards := make([]models.Dashboard, 0)
	for _, dashboard := range repo.dashboards {
		if dashboard.CreatorID == creatorID {
			dashboards = append(dashboards, dashboard)
		}
	}
	sort.Slice(dashboards, func(i, j int) bool { return dashboards[i].ID < dashboards[j].ID })
	return dashboards, nil
}

func (repo *fakeDashboardRepo) ListByIDs(dashboardIDs []uint) ([]models.Dashboard, error) {
	dashboards := make([]models.Dashboard, 0)
	for _, dashboardID := range dashboardIDs {
		if dashboard, ok := repo.dashboards[dashboardID]; ok {
			dashboards = append(dashboards, dashboard)
		}
	}
	return dashboards, nil
}

func (repo *fakeDashboardRepo) CreateWithOwnerAccess(dashboard *models.Dashboard) error {
	repo.nextID++
	dashboard.ID = repo.nextID
	repo.dashboards[dashboard.ID] = *dashboard
	return repo.access.UpsertAccess(dashboard.CreatorID, dashboard.ID, models.AccessOwner)
}

func (repo *fakeDashboardRepo) Update(dashboard *models.Dashboard) error {
	repo.dashboards[dashboard.ID] = *dashboard
	return nil
}

func (repo *fakeDashboardRepo) Delete(dashboardID uint) error {
	delete(repo.dashboards, dashboardID)
	return nil
}

type fakeInviteLinkRepo struct {
	links  map[uint]models.InviteLink
	nextID uint
}

func newFakeInviteLinkRepo() *fakeInviteLinkRepo {
	return &fakeInviteLinkRepo{links: make(map[uint]models.InviteLink)}
}

func (repo *fakeInviteLinkRepo) CreateReplacing(link *models.InviteLink) error {
	for id, existing := range repo.links {
		if existing.DashboardID == link.DashboardID {
			delete(repo.links, id)
		}
	}
	repo.nextID++
	link.ID = repo.nextID
	repo.links[link.ID] = *link
	return nil
}

func (repo *fakeInviteLinkRepo) FindByToken(token string) (models.InviteLink, error) {
	for _, link := range repo.links {
		if link.Token == token {
			return link, nil
		}
	}
	return models.InviteLink{}, gorm.ErrRecordNotFound
}

func (repo *fakeInviteLinkRepo) FindActiveByToken(token string) (models.InviteLink, error) {
	for _, link := range repo.links {
		if link.Token == token && link.Active {
			return link, nil
		}
	}
	return models.InviteLink{}, gorm.ErrRecordNotFound
}

func (repo *fakeInviteLinkRepo) FindByDashboard(dashboardID uint) (models.InviteLink, error) {
	for _, link := range repo.links {
		if link.DashboardID == dashboardID {
			return link, nil
		}
	}
	return models.InviteLink{}, gorm.ErrRecordNotFound
}

func (repo *fakeInviteLinkRepo) SetActive(linkID uint, active bool) error {
	link, ok := repo.links[linkID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	link.Active = active
	repo.links[linkID] = link
	return nil
}

func (repo *fakeInviteLinkRepo) ListExpiredActive(now time.Time) ([]models.InviteLink, error) {
	links := make([]models.InviteLink, 0)
	for _, link := range repo.links {
		if link.Active && link.ExpiresAt.Before(now) {
			links = append(links, link)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

func (repo *fakeInviteLinkRepo) RotateToken(linkID uint, previousExpiry time.Time, token string, expiresAt time.Time) (bool, error) {
	link, ok := repo.links[linkID]
	if !ok || !link.ExpiresAt.Equal(previousExpiry) {
		return false, nil
	}
	link.Token = token
	link.ExpiresAt = expiresAt
	repo.links[linkID] = link
	return true, nil
}

type tripleKey struct {
	userID      uint
	categoryID  uint
	dashboardID uint
}

type fakePriorityRepo struct {
	priorities map[tripleKey]models.CategoryPriority
	nextID     uint
}

func newFakePriorityRepo() *fakePriorityRepo {
	return &fakePriorityRepo{priorities: make(map[tripleKey]models.CategoryPriority)}
}

func (repo *fakePriorityRepo) Create(priority *models.CategoryPriority) error {
	repo.nextID++
	priority.ID = repo.nextID
	repo.priorities[tripleKey{priority.UserID, priority.CategoryID, priority.DashboardID}] = *priority
	return nil
}

func (repo *fakePriorityRepo) FindByTriple(userID uint, categoryID uint, dashboardID uint) (models.CategoryPriority, error) {
	row, ok := repo.priorities[tripleKey{userID, categoryID, dashboardID}]
	if !ok {
		return models.CategoryPriority{}, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (repo *fakePriorityRepo) ExistsByTriple(userID uint, categoryID uint, dashboardID uint) (bool, error) {
	_, ok := repo.priorities[tripleKey{userID, categoryID, dashboardID}]
	return ok, nil
}

func (repo *fakePriorityRepo) UpdatePriority(priorityID uint, priority int) error {
	for key, row := range repo.priorities {
		if row.ID == priorityID {
			row.Priority = priority
			repo.priorities[key] = row
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (repo *fakePriorityRepo) ListByCategory(categoryID uint, dashboardID uint) ([]models.CategoryPriority, error) {
	rows := make([]models.CategoryPriority, 0)
	for _, row := range repo.priorities {
		if row.CategoryID == categoryID && row.DashboardID == dashboardID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	return rows, nil
}

func (repo *fakePriorityRepo) ListByUserAndDashboard(userID uint, dashboardID uint) ([]models.CategoryPriority, error) {
	rows := make([]models.CategoryPriority, 0)
	for _, row := range repo.priorities {
		if row.UserID == userID && row.DashboardID == dashboardID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CategoryID < rows[j].CategoryID })
	return rows, nil
}

type fakeCategoryFinder struct {
	categories map[uint]models.Category
}

func newFakeCategoryFinder(categories ...models.Category) *fakeCategoryFinder {
	finder := &fakeCategoryFinder{categories: make(map[uint]models.Category)}
	for _, category := range categories {
		finder.categories[category.ID] = category
	}
	return finder
}

func (finder *fakeCategoryFinder) FindByIDForDashboard(categoryID uint, dashboardID uint) (models.Category, error) {
	category, ok := finder.categories[categoryID]
	if !ok || category.DashboardID != dashboardID {
		return models.Category{}, gorm.ErrRecordNotFound
	}
	return category, nil
}

type fakeIncomeSource struct {
	byUser map[uint]decimal.Decimal
}

func newFakeIncomeSource(byUser map[uint]decimal.Decimal) *fakeIncomeSource {
	if byUser == nil {
		byUser = make(map[uint]decimal.Decimal)
	}
	return &fakeIncomeSource{byUser: byUser}
}

func (source *fakeIncomeSource) SumIncomeByUser(userID uint, dashboardID uint) (decimal.Decimal, error) {
	income, ok := source.byUser[userID]
	if !ok {
		return decimal.Zero, nil
	}
	return income, nil
}

func (source *fakeIncomeSource) SumIncomeTotal(dashboardID uint) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, income := range source.byUser {
		total = total.Add(income)
	}
	return total, nil
}
