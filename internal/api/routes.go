package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/me", handler.Me)

	inviteLinks := api.Group("/invite-links", handler.AuthRequired)
	inviteLinks.Post("/:token/activate", handler.ActivateInviteLink)
	inviteLinks.Post("/:token/deactivate", handler.DeactivateInviteLink)
	inviteLinks.Post("/:token/use", handler.UseInviteLink)

	dashboards := api.Group("/dashboards", handler.AuthRequired)
	dashboards.Post("", handler.CreateDashboard)
	dashboards.Get("", handler.ListDashboards)
	dashboards.Get("/shared", handler.ListSharedDashboards)
	dashboards.Get("/:dashboardId", handler.GetDashboard)
	dashboards.Put("/:dashboardId", handler.UpdateDashboard)
	dashboards.Delete("/:dashboardId", handler.DeleteDashboard)

	dashboards.Get("/:dashboardId/members", handler.ListMembers)
	dashboards.Post("/:dashboardId/members", handler.AddMember)
	dashboards.Put("/:dashboardId/members/access", handler.ChangeAccessLevel)
	dashboards.Delete("/:dashboardId/members", handler.RemoveMember)
	dashboards.Post("/:dashboardId/role", handler.AssignRole)

	dashboards.Post("/:dashboardId/invite-link", handler.CreateInviteLink)
	dashboards.Get("/:dashboardId/invite-link", handler.GetInviteLink)

	dashboards.Post("/:dashboardId/categories", handler.CreateCategory)
	dashboards.Get("/:dashboardId/categories", handler.ListCategories)
	dashboards.Get("/:dashboardId/categories/:categoryId", handler.GetCategory)
	dashboards.Put("/:dashboardId/categories/:categoryId", handler.UpdateCategory)
	dashboards.Delete("/:dashboardId/categories/:categoryId", handler.DeleteCategory)

	dashboards.Post("/:dashboardId/categories/:categoryId/priority", handler.SetCategoryPriority)
	dashboards.Put("/:dashboardId/categories/:categoryId/priority", handler.UpdateCategoryPriority)
	dashboards.Get("/:dashboardId/categories/:categoryId/priorities", handler.ListCategoryPriorities)
	dashboards.Get("/:dashboardId/categories/:categoryId/priorities/calculate", handler.CalculateCategoryPriority)
	dashboards.Get("/:dashboardId/priorities", handler.ListUserPriorities)

	dashboards.Post("/:dashboardId/records", handler.CreateRecord)
	dashboards.Get("/:dashboardId/records", handler.ListRecords)
	dashboards.Get("/:dashboardId/records/:recordId", handler.GetRecord)
	dashboards.Put("/:dashboardId/records/:recordId", handler.UpdateRecord)
	dashboards.Delete("/:dashboardId/records/:recordId", handler.DeleteRecord)

	dashboards.Post("/:dashboardId/budgets", handler.CreateBudget)
	dashboards.Get("/:dashboardId/budgets", handler.ListBudgets)
	dashboards.Put("/:dashboardId/budgets/:budgetId", handler.UpdateBudget)
	dashboards.Delete("/:dashboardId/budgets/:budgetId", handler.DeleteBudget)

	dashboards.Post("/:dashboardId/goals", handler.CreateGoal)
	dashboards.Get("/:dashboardId/goals", handler.ListGoals)
	dashboards.Put("/:dashboardId/goals/:goalId", handler.UpdateGoal)
	dashboards.Delete("/:dashboardId/goals/:goalId", handler.DeleteGoal)

	dashboards.Post("/:dashboardId/tags", handler.CreateTag)
	dashboards.Get("/:dashboardId/tags", handler.ListTags)
	dashboards.Delete("/:dashboardId/tags/:tagId", handler.DeleteTag)
}
