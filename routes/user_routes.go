package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"
	"gate-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, controller *controllers.UserController, auth *middleware.AuthMiddlewareStruct) {
	api := app.Group(config.MAIN_ROUTES+"/users", auth.Handler())

	api.Get("/profile", controller.GetProfile)
	api.Get("/", auth.CheckRole(models.RoleAdmin), controller.GetAllUsers)
	api.Get("/:id", auth.CheckRole(models.RoleAdmin), controller.GetUserByID)
	api.Post("/", auth.CheckRole(models.RoleAdmin), controller.CreateUser)
	api.Put("/:id", auth.CheckRole(models.RoleAdmin), controller.UpdateUser)
	api.Delete("/:id", auth.CheckRole(models.RoleAdmin), controller.DeleteUser)
}
