package controllers

import (
	"gate-app/middleware"
	"gate-app/repositories"
	"gate-app/services"
	"gate-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type EntryLogController struct {
	Service *services.EntryLogService
}

func NewEntryLogController(service *services.EntryLogService) *EntryLogController {
	return &EntryLogController{Service: service}
}

func (c *EntryLogController) BulkEntry(ctx *fiber.Ctx) error {
	var req services.BulkEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	results, err := c.Service.BulkEntry(req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Bulk entry processed",
		"data":    results,
	})
}

func (c *EntryLogController) BulkExit(ctx *fiber.Ctx) error {
	var req services.BulkExitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	results, err := c.Service.BulkExit(req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Bulk exit processed",
		"data":    results,
	})
}

func (c *EntryLogController) CancelLog(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.CancelLog(int64(id), middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Entry log cancelled successfully",
	})
}

func (c *EntryLogController) GetAllLogs(ctx *fiber.Ctx) error {
	filter := repositories.EntryLogFilter{
		Status:   ctx.Query("status"),
		DateFrom: ctx.Query("date_from"),
		DateTo:   ctx.Query("date_to"),
	}

	logs, err := c.Service.ListLogs(filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    logs,
		"total":   len(logs),
	})
}

func (c *EntryLogController) CreateLabour(ctx *fiber.Ctx) error {
	var req services.SaveLabourRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	labour, err := c.Service.CreateLabour(req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Labour created successfully",
		"data":    labour,
	})
}

func (c *EntryLogController) UpdateLabour(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req services.SaveLabourRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	labour, err := c.Service.UpdateLabour(int64(id), req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Labour updated successfully",
		"data":    labour,
	})
}

func (c *EntryLogController) GetAllLabours(ctx *fiber.Ctx) error {
	labours, err := c.Service.ListLabours(ctx.Query("active") == "true")
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    labours,
		"total":   len(labours),
	})
}
