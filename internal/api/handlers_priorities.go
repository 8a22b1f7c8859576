package api

import (
	"github.com/gofiber/fiber/v2"
)

type priorityInput struct {
	Priority int `json:"priority"`
}

// SetCategoryPriority records the acting user's rating for the category;
// rating the same category twice is a conflict.
func (handler *Handler) SetCategoryPriority(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input priorityInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	priority, err := handler.priorities.SetCategoryPriority(userID, categoryID, dashboardID, input.Priority)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newPriorityView(priority))
}

func (handler *Handler) UpdateCategoryPriority(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input priorityInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	priority, err := handler.priorities.UpdateCategoryPriority(userID, categoryID, dashboardID, input.Priority)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newPriorityView(priority))
}

func (handler *Handler) ListCategoryPriorities(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	priorities, err := handler.priorities.ListCategoryPriorities(userID, categoryID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newPriorityViews(priorities))
}

func (handler *Handler) ListUserPriorities(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	priorities, err := handler.priorities.ListUserPriorities(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newPriorityViews(priorities))
}

// CalculateCategoryPriority returns the dashboard-wide blended score for the
// category, a two-decimal string.
func (handler *Handler) CalculateCategoryPriority(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := handler.priorities.CalculateCategoryPriority(userID, categoryID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"category_id": categoryID, "priority": result.StringFixed(2)})
}
