package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
)

type memberInput struct {
	User string `json:"user"`
}

type accessLevelInput struct {
	User  string `json:"user"`
	Level string `json:"access_level"`
}

type roleInput struct {
	Role string `json:"role"`
}

func (handler *Handler) ListMembers(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	members, err := handler.access.ListMembers(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	views := make([]MemberView, 0, len(members))
	for _, member := range members {
		views = append(views, newMemberView(member))
	}
	return c.JSON(views)
}

// AddMember grants viewer access to the user named in the body by name or
// email.
func (handler *Handler) AddMember(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input memberInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	member, err := handler.access.AddMember(userID, dashboardID, input.User)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newMemberView(member))
}

func (handler *Handler) ChangeAccessLevel(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input accessLevelInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.access.ChangeAccessLevel(userID, dashboardID, input.User, input.Level); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) RemoveMember(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input memberInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.access.RemoveMember(userID, dashboardID, input.User); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignRole sets the acting user's demographic role on the dashboard.
func (handler *Handler) AssignRole(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input roleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.access.CheckAccess(userID, dashboardID, models.AccessViewer); err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.access.AssignRole(userID, dashboardID, input.Role); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
