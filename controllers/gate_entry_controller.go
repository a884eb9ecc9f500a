package controllers

import (
	"gate-app/config"
	"gate-app/middleware"
	"gate-app/repositories"
	"gate-app/sap"
	"gate-app/services"
	"gate-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type GateEntryController struct {
	Service *services.GateEntryService
}

func NewGateEntryController(service *services.GateEntryService) *GateEntryController {
	return &GateEntryController{Service: service}
}

func (c *GateEntryController) CreateEntry(ctx *fiber.Ctx) error {
	var req services.CreateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := c.Service.CreateEntry(req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Gate entry created successfully",
		"data":    entry,
	})
}

func (c *GateEntryController) GetEntry(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	entry, err := c.Service.GetEntry(int64(id))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    entry,
	})
}

func (c *GateEntryController) GetAllEntries(ctx *fiber.Ctx) error {
	filter := repositories.ListEntryFilter{
		EntryType: ctx.Query("entry_type"),
		Status:    ctx.Query("status"),
		DateFrom:  ctx.Query("date_from"),
		DateTo:    ctx.Query("date_to"),
	}

	entries, err := c.Service.ListEntries(filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    entries,
		"total":   len(entries),
	})
}

func (c *GateEntryController) SubmitSecurityCheck(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req services.SecurityCheckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Service.SubmitSecurityCheck(int64(id), req, middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Security check submitted successfully",
	})
}

func (c *GateEntryController) RecordWeighment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req services.WeighmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Service.RecordWeighment(int64(id), req, middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Weighment recorded successfully",
	})
}

func (c *GateEntryController) SaveTypeDetail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req services.EntryDetailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Service.SaveTypeDetail(int64(id), req, middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Entry detail saved successfully",
	})
}

func (c *GateEntryController) ApproveConstruction(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req struct {
		SecurityApproval string `json:"security_approval" validate:"required"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Service.ApproveConstruction(int64(id), req.SecurityApproval, middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Construction approval recorded successfully",
	})
}

func (c *GateEntryController) ReceivePO(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req services.ReceivePORequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	receipt, err := c.Service.ReceivePO(int64(id), req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "PO received successfully",
		"data":    receipt,
	})
}

func (c *GateEntryController) CompleteEntry(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.CompleteEntry(int64(id), middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Gate entry completed successfully",
	})
}

func (c *GateEntryController) CancelEntry(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.CancelEntry(int64(id), middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Gate entry cancelled successfully",
	})
}

// GetOpenPOs reads open purchase orders for a supplier straight from the
// company's ERP read replica.
func (c *GateEntryController) GetOpenPOs(ctx *fiber.Ctx) error {
	companyCode := ctx.Query("company_code")
	supplierCode := ctx.Query("supplier_code")
	if companyCode == "" || supplierCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "company_code and supplier_code are required",
		})
	}

	company, ok := config.SAPCompanyByCode(companyCode)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no SAP company registered for " + companyCode,
		})
	}

	pos, err := sap.FetchOpenPOs(company, supplierCode)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    pos,
		"total":   len(pos),
	})
}
