package api

import (
	"github.com/gofiber/fiber/v2"
)

type dashboardInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (handler *Handler) CreateDashboard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var input dashboardInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	dashboard, err := handler.dashboards.Create(userID, input.Title, input.Description)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newDashboardView(dashboard))
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	dashboard, err := handler.dashboards.Get(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newDashboardView(dashboard))
}

func (handler *Handler) UpdateDashboard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input dashboardInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	dashboard, err := handler.dashboards.Update(userID, dashboardID, input.Title, input.Description)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newDashboardView(dashboard))
}

func (handler *Handler) DeleteDashboard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.dashboards.Delete(userID, dashboardID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ListDashboards(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboards, err := handler.dashboards.ListOwned(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newDashboardViews(dashboards))
}

func (handler *Handler) ListSharedDashboards(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboards, err := handler.dashboards.ListShared(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newDashboardViews(dashboards))
}
