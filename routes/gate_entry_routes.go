package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"
	"gate-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupGateEntryRoutes(app *fiber.App, controller *controllers.GateEntryController, auth *middleware.AuthMiddlewareStruct) {
	api := app.Group(config.MAIN_ROUTES+"/gate-entries", auth.Handler())

	api.Post("/", auth.CheckRole(models.RoleSecurity, models.RoleStore), controller.CreateEntry)
	api.Get("/", controller.GetAllEntries)
	api.Get("/open-pos", auth.CheckRole(models.RoleStore), controller.GetOpenPOs)
	api.Get("/:id", controller.GetEntry)
	api.Post("/:id/security-check", auth.CheckRole(models.RoleSecurity), controller.SubmitSecurityCheck)
	api.Post("/:id/weighment", auth.CheckRole(models.RoleSecurity, models.RoleStore), controller.RecordWeighment)
	api.Post("/:id/detail", auth.CheckRole(models.RoleSecurity, models.RoleStore), controller.SaveTypeDetail)
	api.Post("/:id/construction-approval", auth.CheckRole(models.RoleSecurity), controller.ApproveConstruction)
	api.Post("/:id/po-receipts", auth.CheckRole(models.RoleStore), controller.ReceivePO)
	api.Post("/:id/complete", auth.CheckRole(models.RoleSecurity, models.RoleStore), controller.CompleteEntry)
	api.Post("/:id/cancel", auth.CheckRole(models.RoleAdmin), controller.CancelEntry)
}
