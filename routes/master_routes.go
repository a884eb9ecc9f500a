package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"
	"gate-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupMasterRoutes(app *fiber.App, controller *controllers.MasterController, auth *middleware.AuthMiddlewareStruct) {
	manage := auth.CheckRole(models.RoleStore)

	suppliers := app.Group(config.MAIN_ROUTES+"/suppliers", auth.Handler())
	suppliers.Get("/", controller.GetAllSuppliers)
	suppliers.Post("/", manage, controller.CreateSupplier)
	suppliers.Put("/:id", manage, controller.UpdateSupplier)
	suppliers.Delete("/:id", manage, controller.DeleteSupplier)

	transporters := app.Group(config.MAIN_ROUTES+"/transporters", auth.Handler())
	transporters.Get("/", controller.GetAllTransporters)
	transporters.Post("/", manage, controller.CreateTransporter)
	transporters.Put("/:id", manage, controller.UpdateTransporter)
	transporters.Delete("/:id", manage, controller.DeleteTransporter)

	vehicles := app.Group(config.MAIN_ROUTES+"/vehicles", auth.Handler())
	vehicles.Get("/", controller.GetAllVehicles)
	vehicles.Post("/", manage, controller.CreateVehicle)
	vehicles.Delete("/:id", manage, controller.DeleteVehicle)

	drivers := app.Group(config.MAIN_ROUTES+"/drivers", auth.Handler())
	drivers.Get("/", controller.GetAllDrivers)
	drivers.Post("/", manage, controller.CreateDriver)
	drivers.Delete("/:id", manage, controller.DeleteDriver)

	departments := app.Group(config.MAIN_ROUTES+"/departments", auth.Handler())
	departments.Get("/", controller.GetAllDepartments)
	departments.Post("/", manage, controller.CreateDepartment)
	departments.Delete("/:id", manage, controller.DeleteDepartment)

	materialTypes := app.Group(config.MAIN_ROUTES+"/material-types", auth.Handler())
	materialTypes.Get("/", controller.GetAllMaterialTypes)
	materialTypes.Post("/", manage, controller.CreateMaterialType)
	materialTypes.Delete("/:id", manage, controller.DeleteMaterialType)
}
