package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"
	"gate-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupGRPORoutes(app *fiber.App, controller *controllers.GRPOController, auth *middleware.AuthMiddlewareStruct) {
	api := app.Group(config.MAIN_ROUTES+"/grpo", auth.Handler())

	api.Get("/", controller.GetAllPostings)
	api.Get("/:id", controller.GetPosting)
	api.Post("/:id/attachments", auth.CheckRole(models.RoleStore), controller.UploadAttachment)
	api.Post("/attachments/:attachmentId/retry", auth.CheckRole(models.RoleStore), controller.RetryAttachment)

	entries := app.Group(config.MAIN_ROUTES+"/gate-entries", auth.Handler())
	entries.Post("/:id/grpo", auth.CheckRole(models.RoleStore), controller.PostGRPO)
}
