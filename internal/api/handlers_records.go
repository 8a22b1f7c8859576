package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Pocten/budget-planner-backend-sub000/internal/services"
)

type recordInput struct {
	Title      string    `json:"title"`
	Amount     string    `json:"amount"`
	Type       string    `json:"type"`
	CategoryID *uint     `json:"category_id"`
	RecordedAt time.Time `json:"recorded_at"`
	TagIDs     []uint    `json:"tag_ids"`
}

func (input recordInput) toService() (services.RecordInput, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return services.RecordInput{}, err
	}
	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	return services.RecordInput{
		Title:      input.Title,
		Amount:     amount,
		Type:       input.Type,
		CategoryID: input.CategoryID,
		RecordedAt: recordedAt,
		TagIDs:     input.TagIDs,
	}, nil
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input recordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	serviceInput, err := input.toService()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid amount")
	}

	record, err := handler.records.Create(userID, dashboardID, serviceInput)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newRecordView(record))
}

func (handler *Handler) GetRecord(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	recordID, err := parseIDParam(c, "recordId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	record, err := handler.records.Get(userID, dashboardID, recordID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newRecordView(record))
}

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	records, err := handler.records.List(userID, dashboardID)
	if err != nil {
		return respondServiceError(c, err)
	}
	views := make([]RecordView, 0, len(records))
	for _, record := range records {
		views = append(views, newRecordView(record))
	}
	return c.JSON(views)
}

func (handler *Handler) UpdateRecord(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	recordID, err := parseIDParam(c, "recordId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input recordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	serviceInput, err := input.toService()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid amount")
	}

	record, err := handler.records.Update(userID, dashboardID, recordID, serviceInput)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(newRecordView(record))
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dashboardID, err := parseIDParam(c, "dashboardId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	recordID, err := parseIDParam(c, "recordId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.records.Delete(userID, dashboardID, recordID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
