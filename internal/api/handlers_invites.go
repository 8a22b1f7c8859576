package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateInviteLink(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	link, err := handler.invites.Create(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newInviteLinkView(link))
}

func (handler *Handler) GetInviteLink(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	link, err := handler.invites.Get(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newInviteLinkView(link))
}

func (handler *Handler) ActivateInviteLink(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))
	if token == "" {
		return apiError(c, fiber.StatusBadRequest, "missing token")
	}
	if err := handler.invites.Activate(token); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeactivateInviteLink(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))
	if token == "" {
		return apiError(c, fiber.StatusBadRequest, "missing token")
	}
	if err := handler.invites.Deactivate(token); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// UseInviteLink redeems the token for the acting user, granting viewer access
// on the link's dashboard.
func (handler *Handler) UseInviteLink(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	token := strings.TrimSpace(c.Params("token"))
	if token == "" {
		return apiError(c, fiber.StatusBadRequest, "missing token")
	}

	link, err := handler.invites.Use(token, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"dashboard_id": link.DashboardID})
}
