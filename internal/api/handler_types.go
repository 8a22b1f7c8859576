package api

import (
	"time"

	"github.com/Pocten/budget-planner-backend-sub000/internal/services"
)

type Handler struct {
	auth       *services.AuthService
	dashboards *services.DashboardService
	access     *services.AccessService
	invites    *services.InviteService
	categories *services.CategoryService
	records    *services.RecordService
	budgets    *services.BudgetService
	goals      *services.GoalService
	tags       *services.TagService
	priorities *services.PriorityService

	secretKey    []byte
	authTokenTTL time.Duration
}

type HandlerConfig struct {
	Auth       *services.AuthService
	Dashboards *services.DashboardService
	Access     *services.AccessService
	Invites    *services.InviteService
	Categories *services.CategoryService
	Records    *services.RecordService
	Budgets    *services.BudgetService
	Goals      *services.GoalService
	Tags       *services.TagService
	Priorities *services.PriorityService

	SecretKey    []byte
	AuthTokenTTL time.Duration
}

func NewHandler(config HandlerConfig) *Handler {
	return &Handler{
		auth:         config.Auth,
		dashboards:   config.Dashboards,
		access:       config.Access,
		invites:      config.Invites,
		categories:   config.Categories,
		records:      config.Records,
		budgets:      config.Budgets,
		goals:        config.Goals,
		tags:         config.Tags,
		priorities:   config.Priorities,
		secretKey:    config.SecretKey,
		authTokenTTL: config.AuthTokenTTL,
	}
}
