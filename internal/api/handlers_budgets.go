package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type budgetInput struct {
	Title  string `json:"title"`
	Amount string `json:"amount"`
}

func (handler *Handler) CreateBudget(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input budgetInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid amount")
	}

	budget, err := handler.budgets.Create(userID, dashboardID, input.Title, amount)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newBudgetView(budget))
}

func (handler *Handler) ListBudgets(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	budgets, err := handler.budgets.List(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	views := make([]BudgetView, 0, len(budgets))
	for _, budget := range budgets {
		views = append(views, newBudgetView(budget))
	}
	return c.JSON(views)
}

func (handler *Handler) UpdateBudget(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	budgetID, err := parseIDParam(c, "budgetId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input budgetInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid amount")
	}

	budget, err := handler.budgets.Update(userID, dashboardID, budgetID, input.Title, amount)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newBudgetView(budget))
}

func (handler *Handler) DeleteBudget(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	budgetID, err := parseIDParam(c, "budgetId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.budgets.Delete(userID, dashboardID, budgetID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
