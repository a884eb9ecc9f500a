package controllers

import (
	"errors"
	"gate-app/middleware"
	"gate-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MasterController serves the reference masters used by gate entries.
type MasterController struct {
	DB *gorm.DB
}

func NewMasterController(DB *gorm.DB) *MasterController {
	return &MasterController{DB: DB}
}

// Supplier

func (c *MasterController) CreateSupplier(ctx *fiber.Ctx) error {
	var input struct {
		SupplierCode string `json:"supplier_code" validate:"required"`
		SupplierName string `json:"supplier_name" validate:"required"`
		CompanyCode  string `json:"company_code"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supplier := models.Supplier{
		SupplierCode: input.SupplierCode,
		SupplierName: input.SupplierName,
		CompanyCode:  input.CompanyCode,
		CreatedBy:    middleware.UserID(ctx),
	}
	if err := c.DB.Create(&supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Supplier created successfully",
		"data":    supplier,
	})
}

func (c *MasterController) GetAllSuppliers(ctx *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := c.DB.Order("supplier_code").Find(&suppliers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    suppliers,
		"total":   len(suppliers),
	})
}

func (c *MasterController) UpdateSupplier(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var supplier models.Supplier
	if err := c.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctx.BodyParser(&supplier); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	supplier.UpdatedBy = middleware.UserID(ctx)
	if err := c.DB.Save(&supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Supplier updated successfully",
	})
}

func (c *MasterController) DeleteSupplier(ctx *fiber.Ctx) error {
	return c.deleteMaster(ctx, &models.Supplier{}, "Supplier")
}

// Transporter

func (c *MasterController) CreateTransporter(ctx *fiber.Ctx) error {
	var input struct {
		TransporterCode    string `json:"transporter_code" validate:"required"`
		TransporterName    string `json:"transporter_name" validate:"required"`
		TransporterAddress string `json:"transporter_address"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	transporter := models.Transporter{
		TransporterCode:    input.TransporterCode,
		TransporterName:    input.TransporterName,
		TransporterAddress: input.TransporterAddress,
		CreatedBy:          middleware.UserID(ctx),
	}
	if err := c.DB.Create(&transporter).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Transporter created successfully",
		"data":    transporter,
	})
}

func (c *MasterController) GetAllTransporters(ctx *fiber.Ctx) error {
	var transporters []models.Transporter
	if err := c.DB.Order("transporter_code").Find(&transporters).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    transporters,
		"total":   len(transporters),
	})
}

func (c *MasterController) UpdateTransporter(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var transporter models.Transporter
	if err := c.DB.First(&transporter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transporter not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctx.BodyParser(&transporter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	transporter.UpdatedBy = middleware.UserID(ctx)
	if err := c.DB.Save(&transporter).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Transporter updated successfully",
	})
}

func (c *MasterController) DeleteTransporter(ctx *fiber.Ctx) error {
	return c.deleteMaster(ctx, &models.Transporter{}, "Transporter")
}

// Vehicle

func (c *MasterController) CreateVehicle(ctx *fiber.Ctx) error {
	var input struct {
		VehicleNo   string `json:"vehicle_no" validate:"required"`
		VehicleType string `json:"vehicle_type"`
		Description string `json:"vehicle_description"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vehicle := models.VehicleMaster{
		VehicleNo:   input.VehicleNo,
		VehicleType: input.VehicleType,
		Description: input.Description,
		CreatedBy:   middleware.UserID(ctx),
	}
	if err := c.DB.Create(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Vehicle created successfully",
		"data":    vehicle,
	})
}

func (c *MasterController) GetAllVehicles(ctx *fiber.Ctx) error {
	var vehicles []models.VehicleMaster
	if err := c.DB.Order("vehicle_no").Find(&vehicles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    vehicles,
		"total":   len(vehicles),
	})
}

func (c *MasterController) DeleteVehicle(ctx *fiber.Ctx) error {
	return c.deleteMaster(ctx, &models.VehicleMaster{}, "Vehicle")
}

// Driver

func (c *MasterController) CreateDriver(ctx *fiber.Ctx) error {
	var input struct {
		Name          string `json:"driver_name" validate:"required"`
		LicenseNo     string `json:"license_no" validate:"required"`
		Phone         string `json:"phone"`
		TransporterId int    `json:"transporter_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	driver := models.DriverMaster{
		Name:          input.Name,
		LicenseNo:     input.LicenseNo,
		Phone:         input.Phone,
		TransporterId: input.TransporterId,
		CreatedBy:     middleware.UserID(ctx),
	}
	if err := c.DB.Create(&driver).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Driver created successfully",
		"data":    driver,
	})
}

func (c *MasterController) GetAllDrivers(ctx *fiber.Ctx) error {
	var drivers []models.DriverMaster
	if err := c.DB.Order("name").Find(&drivers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    drivers,
		"total":   len(drivers),
	})
}

func (c *MasterController) DeleteDriver(ctx *fiber.Ctx) error {
	return c.deleteMaster(ctx, &models.DriverMaster{}, "Driver")
}

// Department

func (c *MasterController) CreateDepartment(ctx *fiber.Ctx) error {
	var input struct {
		DepartmentCode string `json:"department_code" validate:"required"`
		DepartmentName string `json:"department_name" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	department := models.Department{
		DepartmentCode: input.DepartmentCode,
		DepartmentName: input.DepartmentName,
		CreatedBy:      middleware.UserID(ctx),
	}
	if err := c.DB.Create(&department).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Department created successfully",
		"data":    department,
	})
}

func (c *MasterController) GetAllDepartments(ctx *fiber.Ctx) error {
	var departments []models.Department
	if err := c.DB.Order("department_code").Find(&departments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    departments,
		"total":   len(departments),
	})
}

func (c *MasterController) DeleteDepartment(ctx *fiber.Ctx) error {
	return c.deleteMaster(ctx, &models.Department{}, "Department")
}

// Material types

func (c *MasterController) CreateMaterialType(ctx *fiber.Ctx) error {
	var input struct {
		TypeCode string `json:"type_code" validate:"required"`
		TypeName string `json:"type_name" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	materialType := models.MaterialType{
		TypeCode:  input.TypeCode,
		TypeName:  input.TypeName,
		CreatedBy: middleware.UserID(ctx),
	}
	if err := c.DB.Create(&materialType).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Material type created successfully",
		"data":    materialType,
	})
}

func (c *MasterController) GetAllMaterialTypes(ctx *fiber.Ctx) error {
	var materialTypes []models.MaterialType
	if err := c.DB.Order("type_code").Find(&materialTypes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    materialTypes,
		"total":   len(materialTypes),
	})
}

func (c *MasterController) DeleteMaterialType(ctx *fiber.Ctx) error {
	return c.deleteMaster(ctx, &models.MaterialType{}, "Material type")
}

func (c *MasterController) deleteMaster(ctx *fiber.Ctx, model interface{}, label string) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	result := c.DB.Delete(model, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": label + " not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": label + " deleted successfully"})
}
