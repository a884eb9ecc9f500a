package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"
	"gate-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupQCParameterRoutes(app *fiber.App, controller *controllers.QCParameterController, auth *middleware.AuthMiddlewareStruct) {
	api := app.Group(config.MAIN_ROUTES+"/qc-parameters", auth.Handler())

	api.Get("/", controller.GetParameters)
	api.Post("/", auth.CheckRole(models.RoleQAManager), controller.CreateParameter)
	api.Post("/upload", auth.CheckRole(models.RoleQAManager), controller.CreateParametersFromExcel)
	api.Put("/:id", auth.CheckRole(models.RoleQAManager), controller.UpdateParameter)
	api.Post("/:id/deactivate", auth.CheckRole(models.RoleQAManager), controller.DeactivateParameter)
}
