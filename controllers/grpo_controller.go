package controllers

import (
	"fmt"
	"gate-app/config"
	"gate-app/middleware"
	"gate-app/services"
	"gate-app/utils"
	"os"
	"path/filepath"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GRPOController struct {
	Service *services.GRPOService
}

func NewGRPOController(service *services.GRPOService) *GRPOController {
	return &GRPOController{Service: service}
}

func (c *GRPOController) PostGRPO(ctx *fiber.Ctx) error {
	entryID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var req services.PostGRPORequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	posting, err := c.Service.PostGRPO(int64(entryID), req, middleware.UserID(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "GRPO posted successfully",
		"data":    posting,
	})
}

func (c *GRPOController) GetPosting(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	posting, err := c.Service.GetPosting(int64(id))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    posting,
	})
}

func (c *GRPOController) GetAllPostings(ctx *fiber.Ctx) error {
	postings, err := c.Service.ListPostings(ctx.Query("status"))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    postings,
		"total":   len(postings),
	})
}

// UploadAttachment stores the file locally, registers it, and then drives it
// through upload and link. Registration survives even if the remote step
// fails, so the attachment can be retried.
func (c *GRPOController) UploadAttachment(ctx *fiber.Ctx) error {
	postingID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	if err := os.MkdirAll(config.AttachmentDir, 0o755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	storedName := fmt.Sprintf("%s_%s", uuid.NewString(), fileHeader.Filename)
	storedPath := filepath.Join(config.AttachmentDir, storedName)
	if err := ctx.SaveFile(fileHeader, storedPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := middleware.UserID(ctx)
	attachment, err := c.Service.AddAttachment(int64(postingID), services.AddAttachmentRequest{
		FileName: fileHeader.Filename,
		FilePath: storedPath,
	}, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.Service.ProcessAttachment(attachment.ID, userID); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Attachment uploaded and linked successfully",
		"data":    attachment,
	})
}

func (c *GRPOController) RetryAttachment(ctx *fiber.Ctx) error {
	attachmentID, err := ctx.ParamsInt("attachmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.ProcessAttachment(int64(attachmentID), middleware.UserID(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attachment linked successfully",
	})
}
