package api

import (
	"github.com/gofiber/fiber/v2"
)

type categoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (handler *Handler) CreateCategory(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input categoryInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category, err := handler.categories.Create(userID, dashboardID, input.Name, input.Description)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newCategoryView(category))
}

func (handler *Handler) GetCategory(c *fiber.Ctx) error {
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

	category, err := handler.categories.Get(userID, dashboardID, categoryID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newCategoryView(category))
}

func (handler *Handler) ListCategories(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	categories, err := handler.categories.List(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}
	return c.JSON(views)
}

func (handler *Handler) UpdateCategory(c *fiber.Ctx) error {
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
	var input categoryInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category, err := handler.categories.Update(userID, dashboardID, categoryID, input.Name, input.Description)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newCategoryView(category))
}

func (handler *Handler) DeleteCategory(c *fiber.Ctx) error {
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

	if err := handler.categories.Delete(userID, dashboardID, categoryID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
