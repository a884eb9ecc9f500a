package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App, controller *controllers.ReportController, auth *middleware.AuthMiddlewareStruct) {
	api := app.Group(config.MAIN_ROUTES+"/reports", auth.Handler())

	api.Get("/gate-register", controller.ExportGateRegister)
	api.Get("/qc-register", controller.ExportQCRegister)
}
