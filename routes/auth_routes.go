package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, controller *controllers.AuthController, auth *middleware.AuthMiddlewareStruct) {
	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", controller.Login)

	protected := app.Group(config.MAIN_ROUTES+"/auth", auth.Handler())
	protected.Post("/logout", controller.Logout)
	protected.Get("/check", controller.IsLoggedIn)
}
