package routes

import (
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/middleware"
	"gate-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupInspectionRoutes(app *fiber.App, controller *controllers.InspectionController, auth *middleware.AuthMiddlewareStruct) {
	api := app.Group(config.MAIN_ROUTES+"/inspections", auth.Handler())

	api.Get("/", controller.GetAllInspections)
	api.Get("/:id", controller.GetInspection)
	api.Post("/:id/results", auth.CheckRole(models.RoleQAChemist), controller.SaveParameterResults)
	api.Post("/:id/submit", auth.CheckRole(models.RoleQAChemist), controller.SubmitInspection)
	api.Post("/:id/chemist-approve", auth.CheckRole(models.RoleQAChemist), controller.ChemistApprove)
	api.Post("/:id/qam-approve", auth.CheckRole(models.RoleQAManager), controller.QAMApprove)
	api.Post("/:id/reject", auth.CheckRole(models.RoleQAChemist, models.RoleQAManager), controller.RejectInspection)
	api.Post("/:id/complete", auth.CheckRole(models.RoleQAManager), controller.MarkCompleted)

	items := app.Group(config.MAIN_ROUTES+"/po-items", auth.Handler())
	items.Post("/:itemId/arrival-slip", auth.CheckRole(models.RoleStore), controller.SaveArrivalSlip)
	items.Post("/:itemId/arrival-slip/submit", auth.CheckRole(models.RoleStore), controller.SubmitArrivalSlip)
	items.Post("/:itemId/inspection", auth.CheckRole(models.RoleQAChemist), controller.CreateInspection)
}
