package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Dashboards  *DashboardRepository
	Access      *AccessRepository
	InviteLinks *InviteLinkRepository
	Categories  *CategoryRepository
	Priorities  *CategoryPriorityRepository
	Records     *RecordRepository
	Budgets     *BudgetRepository
	Goals       *GoalRepository
	Tags        *TagRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Dashboards:  NewDashboardRepository(database),
		Access:      NewAccessRepository(database),
		InviteLinks: NewInviteLinkRepository(database),
		Categories:  NewCategoryRepository(database),
		Priorities:  NewCategoryPriorityRepository(database),
		Records:     NewRecordRepository(database),
		Budgets:     NewBudgetRepository(database),
		Goals:       NewGoalRepository(database),
		Tags:        NewTagRepository(database),
	}
}
