package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"
	"gate-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupEntryLogRoutes(app *fiber.App, controller *controllers.EntryLogController, auth *middleware.AuthMiddlewareStruct) {
	api := app.Group(config.MAIN_ROUTES+"/entry-logs", auth.Handler())

	api.Get("/", controller.GetAllLogs)
	api.Post("/bulk-entry", auth.CheckRole(models.RoleSecurity), controller.BulkEntry)
	api.Post("/bulk-exit", auth.CheckRole(models.RoleSecurity), controller.BulkExit)
	api.Post("/:id/cancel", auth.CheckRole(models.RoleSecurity), controller.CancelLog)

	labours := app.Group(config.MAIN_ROUTES+"/labours", auth.Handler())
	labours.Get("/", controller.GetAllLabours)
	labours.Post("/", auth.CheckRole(models.RoleSecurity), controller.CreateLabour)
	labours.Put("/:id", auth.CheckRole(models.RoleSecurity), controller.UpdateLabour)
}
