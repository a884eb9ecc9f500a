package main

import (
	"fmt"
	"gate-app/config"
	"gate-app/controllers"
	"gate-app/controllers/idgen"
	"gate-app/database"
	"gate-app/middleware"
	"gate-app/migration"
	"gate-app/repositories"
	"gate-app/routes"
	"gate-app/sap"
	seed "gate-app/seeder"
	"gate-app/services"
	"log"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	if err := config.LoadSAPRegistry(); err != nil {
		log.Fatalf("Failed to load SAP registry: %v", err)
	}

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	seed.RunSeeders(db)

	registry := sap.NewRegistry(config.SAPCompanies())
	notifier := services.NewNotifier()

	entryRepo := repositories.NewGateEntryRepository(db)
	inspectionRepo := repositories.NewInspectionRepository(db)
	grpoRepo := repositories.NewGRPORepository(db)
	entryLogRepo := repositories.NewEntryLogRepository(db)

	entryService := services.NewGateEntryService(entryRepo, notifier)
	inspectionService := services.NewInspectionService(inspectionRepo, entryRepo, notifier)
	grpoService := services.NewGRPOService(grpoRepo, entryRepo, func(companyCode string) (services.SAPGateway, error) {
		return registry.Client(companyCode)
	}, notifier)
	entryLogService := services.NewEntryLogService(entryLogRepo)

	auth := middleware.NewAuthMiddleware(db)

	app := fiber.New()
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, controllers.NewAuthController(db), auth)
	routes.SetupUserRoutes(app, controllers.NewUserController(db), auth)
	routes.SetupGateEntryRoutes(app, controllers.NewGateEntryController(entryService), auth)
	routes.SetupInspectionRoutes(app, controllers.NewInspectionController(inspectionService), auth)
	routes.SetupGRPORoutes(app, controllers.NewGRPOController(grpoService), auth)
	routes.SetupEntryLogRoutes(app, controllers.NewEntryLogController(entryLogService), auth)
	routes.SetupMasterRoutes(app, controllers.NewMasterController(db), auth)
	routes.SetupQCParameterRoutes(app, controllers.NewQCParameterController(db), auth)
	routes.SetupReportRoutes(app, controllers.NewReportController(entryService, inspectionService), auth)

	log.Printf("Gate entry service listening on port %s", config.APP_PORT)
	if err := app.Listen(fmt.Sprintf(":%s", config.APP_PORT)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
