package migration

import (
	"gate-app/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// auth
		&models.User{},
		&models.UserSession{},

		// masters
		&models.Supplier{},
		&models.Transporter{},
		&models.VehicleMaster{},
		&models.DriverMaster{},
		&models.Department{},
		&models.MaterialType{},
		&models.MaterialCategory{},
		&models.Labour{},
		&models.QCParameterMaster{},
		&models.NumberSequence{},

		// gate entry lifecycle
		&models.VehicleEntry{},
		&models.SecurityCheck{},
		&models.Weighment{},
		&models.DailyNeedEntry{},
		&models.MaintenanceEntry{},
		&models.ConstructionEntry{},
		&models.EntryLog{},

		// PO receiving and QC
		&models.POReceipt{},
		&models.POItemReceipt{},
		&models.MaterialArrivalSlip{},
		&models.RawMaterialInspection{},
		&models.InspectionParameterResult{},

		// SAP integration
		&models.GRPOPosting{},
		&models.GRPOLinePosting{},
		&models.GRPOAttachment{},
		&models.IntegrationLog{},
	)
}
