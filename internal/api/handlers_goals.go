package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type goalInput struct {
	Title        string    `json:"title"`
	TargetAmount string    `json:"target_amount"`
	TargetDate   time.Time `json:"target_date"`
	Achieved     bool      `json:"achieved"`
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input goalInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	targetAmount, err := decimal.NewFromString(input.TargetAmount)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid target amount")
	}

	goal, err := handler.goals.Create(userID, dashboardID, input.Title, targetAmount, input.TargetDate)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newGoalView(goal))
}

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	goals, err := handler.goals.List(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	views := make([]GoalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, newGoalView(goal))
	}
	return c.JSON(views)
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	goalID, err := parseIDParam(c, "goalId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input goalInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	targetAmount, err := decimal.NewFromString(input.TargetAmount)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid target amount")
	}

	goal, err := handler.goals.Update(userID, dashboardID, goalID, input.Title, targetAmount, input.TargetDate, input.Achieved)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newGoalView(goal))
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	goalID, err := parseIDParam(c, "goalId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.goals.Delete(userID, dashboardID, goalID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
