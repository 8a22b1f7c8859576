package api

import (
	"github.com/gofiber/fiber/v2"
)

type tagInput struct {
	Name string `json:"name"`
}

func (handler *Handler) CreateTag(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input tagInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	tag, err := handler.tags.Create(userID, dashboardID, input.Name)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newTagView(tag))
}

func (handler *Handler) ListTags(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	tags, err := handler.tags.List(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	views := make([]TagView, 0, len(tags))
	for _, tag := range tags {
		views = append(views, newTagView(tag))
	}
	return c.JSON(views)
}

func (handler *Handler) DeleteTag(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.tags.Delete(userID, dashboardID, tagID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
