package utils

import (
	"errors"
	"gate-app/models"
	"gate-app/sap"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InsertLog(db *gorm.DB, log models.IntegrationLog) {
	db.Create(&log)
}

// ErrorResponse maps the domain error taxonomy to HTTP categories. SAP
// failures keep their class visible instead of collapsing into a generic 500.
func ErrorResponse(ctx *fiber.Ctx, err error) error {
	var (
		validationErr *models.ValidationError
		transitionErr *models.InvalidTransitionError
		lockedErr     *models.LockedEntryError
		blockedErr    *models.CompletionBlockedError
		notFoundErr   *models.NotFoundError
		conflictErr   *models.ConflictError
		sapConnErr    *sap.ConnectionError
		sapValidErr   *sap.ValidationError
		sapDataErr    *sap.DataError
	)

	switch {
	case errors.As(err, &validationErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "category": "validation", "error": err.Error()})
	case errors.As(err, &notFoundErr), errors.Is(err, gorm.ErrRecordNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "category": "not_found", "error": err.Error()})
	case errors.As(err, &transitionErr):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false, "category": "invalid_transition", "error": err.Error()})
	case errors.As(err, &lockedErr):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false, "category": "locked", "error": err.Error()})
	case errors.As(err, &blockedErr):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false, "category": "completion_blocked", "error": err.Error()})
	case errors.As(err, &conflictErr):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false, "category": "conflict", "error": err.Error()})
	case errors.As(err, &sapConnErr):
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false, "category": "upstream_unavailable", "error": err.Error()})
	case errors.As(err, &sapValidErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "category": "upstream_rejected", "error": err.Error()})
	case errors.As(err, &sapDataErr):
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false, "category": "upstream_data", "error": err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "category": "internal", "error": err.Error()})
	}
}
