package controllers

import (
	"gate-app/middleware"
	"gate-app/services"
	"gate-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type InspectionController struct {
	Service *services.InspectionService
}

func NewInspectionController(service *services.InspectionService) *InspectionController {
	return &InspectionController{Service: service}
}

func (c *InspectionController) SaveArrivalSlip(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req services.ArrivalSlipRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slip, err := c.Service.SaveArrivalSlip(int64(itemID), req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Arrival slip saved successfully",
		"data":    slip,
	})
}

func (c *InspectionController) SubmitArrivalSlip(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.SubmitArrivalSlip(int64(itemID), middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Arrival slip submitted successfully",
	})
}

func (c *InspectionController) CreateInspection(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req services.CreateInspectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inspection, err := c.Service.CreateInspection(int64(itemID), req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Inspection created successfully",
		"data":    inspection,
	})
}

func (c *InspectionController) GetInspection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	inspection, err := c.Service.GetInspection(int64(id))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    inspection,
	})
}

func (c *InspectionController) GetAllInspections(ctx *fiber.Ctx) error {
	inspections, err := c.Service.ListInspections(ctx.Query("status"))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    inspections,
		"total":   len(inspections),
	})
}

func (c *InspectionController) SaveParameterResults(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req struct {
		Results []services.ParameterResultInput `json:"results" validate:"required,min=1"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Service.SaveParameterResults(int64(id), req.Results, middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Parameter results saved successfully",
	})
}

func (c *InspectionController) SubmitInspection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.SubmitInspection(int64(id), middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inspection submitted successfully",
	})
}

func (c *InspectionController) ChemistApprove(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req struct {
		Remarks string `json:"remarks"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Service.ChemistApprove(int64(id), req.Remarks, middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Chemist approval recorded successfully",
	})
}

func (c *InspectionController) QAMApprove(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req struct {
		FinalStatus string `json:"final_status" validate:"required"`
		Remarks     string `json:"remarks"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Service.QAMApprove(int64(id), req.FinalStatus, req.Remarks, middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "QA manager approval recorded successfully",
	})
}

func (c *InspectionController) RejectInspection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req struct {
		Remarks string `json:"remarks"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Service.Reject(int64(id), req.Remarks, middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inspection rejected successfully",
	})
}

func (c *InspectionController) MarkCompleted(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.MarkCompleted(int64(id), middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inspection completed successfully",
	})
}
