package api

import (
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
	"github.com/Pocten/budget-planner-backend-sub000/internal/services"
)

// View types shape the JSON surface; models stay storage-only and the
// password hash never leaves the server.

type UserView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(user models.User) UserView {
	return UserView{ID: user.ID, Name: user.Name, Email: user.Email, CreatedAt: user.CreatedAt}
}

type DashboardView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatorID   uint      `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func newDashboardView(dashboard models.Dashboard) DashboardView {
	return DashboardView{
		ID:          dashboard.ID,
		Title:       dashboard.Title,
		Description: dashboard.Description,
		CreatorID:   dashboard.CreatorID,
		CreatedAt:   dashboard.CreatedAt,
	}
}

func newDashboardViews(dashboards []models.Dashboard) []DashboardView {
	views := make([]DashboardView, 0, len(dashboards))
	for _, dashboard := range dashboards {
		views = append(views, newDashboardView(dashboard))
	}
	return views
}

type MemberView struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Level  string `json:"access_level"`
	Role   string `json:"role,omitempty"`
}

func newMemberView(member services.Member) MemberView {
	return MemberView{
		UserID: member.UserID,
		Name:   member.Name,
		Email:  member.Email,
		Level:  member.Level,
		Role:   member.Role,
	}
}

type InviteLinkView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Active    bool      `json:"active"`
}

func newInviteLinkView(link models.InviteLink) InviteLinkView {
	return InviteLinkView{Token: link.Token, ExpiresAt: link.ExpiresAt, Active: link.Active}
}

type CategoryView struct {
	ID          uint   `json:"id"`
	DashboardID uint   `json:"dashboard_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func newCategoryView(category models.Category) CategoryView {
	return CategoryView{
		ID:          category.ID,
		DashboardID: category.DashboardID,
		Name:        category.Name,
		Description: category.Description,
	}
}

type PriorityView struct {
	ID         uint `json:"id"`
	UserID     uint `json:"user_id"`
	CategoryID uint `json:"category_id"`
	Priority   int  `json:"priority"`
}

func newPriorityView(priority models.CategoryPriority) PriorityView {
	return PriorityView{
		ID:         priority.ID,
		UserID:     priority.UserID,
		CategoryID: priority.CategoryID,
		Priority:   priority.Priority,
	}
}

func newPriorityViews(priorities []models.CategoryPriority) []PriorityView {
	views := make([]PriorityView, 0, len(priorities))
	for _, priority := range priorities {
		views = append(views, newPriorityView(priority))
	}
	return views
}

type RecordView struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	CategoryID *uint     `json:"category_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	Amount     string    `json:"amount"`
	Type       string    `json:"type"`
	RecordedAt time.Time `json:"recorded_at"`
	TagIDs     []uint    `json:"tag_ids,omitempty"`
}

func newRecordView(record models.FinancialRecord) RecordView {
	view := RecordView{
		ID:         record.ID,
		UserID:     record.UserID,
		CategoryID: record.CategoryID,
		Title:      record.Title,
		Amount:     record.Amount.String(),
		Type:       record.Type,
		RecordedAt: record.RecordedAt,
	}
	for _, tag := range record.Tags {
		view.TagIDs = append(view.TagIDs, tag.ID)
	}
	return view
}

type BudgetView struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Amount string `json:"amount"`
}

func newBudgetView(budget models.Budget) BudgetView {
	return BudgetView{ID: budget.ID, Title: budget.Title, Amount: budget.Amount.String()}
}

type GoalView struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	TargetAmount string    `json:"target_amount"`
	TargetDate   time.Time `json:"target_date"`
	Achieved     bool      `json:"achieved"`
}

func newGoalView(goal models.FinancialGoal) GoalView {
	return GoalView{
		ID:           goal.ID,
		Title:        goal.Title,
		TargetAmount: goal.TargetAmount.String(),
		TargetDate:   goal.TargetDate,
		Achieved:     goal.Achieved,
	}
}

type TagView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newTagView(tag models.Tag) TagView {
	return TagView{ID: tag.ID, Name: tag.Name}
}
