package controllers

import (
	"errors"
	"fmt"
	"gate-app/middleware"
	"gate-app/models"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// QCParameterController maintains the per-material-type inspection checklist.
type QCParameterController struct {
	DB *gorm.DB
}

func NewQCParameterController(DB *gorm.DB) *QCParameterController {
	return &QCParameterController{DB: DB}
}

func (c *QCParameterController) CreateParameter(ctx *fiber.Ctx) error {
	var input struct {
		MaterialTypeId int      `json:"material_type_id" validate:"required"`
		ParameterName  string   `json:"parameter_name" validate:"required"`
		ParameterType  string   `json:"parameter_type" validate:"required"`
		Uom            string   `json:"uom"`
		MinValue       *float64 `json:"min_value"`
		MaxValue       *float64 `json:"max_value"`
		SortOrder      int      `json:"sort_order"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	switch input.ParameterType {
	case models.ParameterTypeNumeric, models.ParameterTypeText, models.ParameterTypeBool:
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parameter_type must be NUMERIC, TEXT or BOOL"})
	}

	parameter := models.QCParameterMaster{
		MaterialTypeId: input.MaterialTypeId,
		ParameterName:  input.ParameterName,
		ParameterType:  input.ParameterType,
		Uom:            input.Uom,
		MinValue:       input.MinValue,
		MaxValue:       input.MaxValue,
		SortOrder:      input.SortOrder,
		IsActive:       true,
		CreatedBy:      middleware.UserID(ctx),
	}
	if err := c.DB.Create(&parameter).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "QC parameter created successfully",
		"data":    parameter,
	})
}

func (c *QCParameterController) GetParameters(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.QCParameterMaster{})
	if materialTypeID := ctx.QueryInt("material_type_id"); materialTypeID > 0 {
		q = q.Where("material_type_id = ?", materialTypeID)
	}

	var parameters []models.QCParameterMaster
	if err := q.Order("material_type_id, sort_order").Find(&parameters).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    parameters,
		"total":   len(parameters),
	})
}

func (c *QCParameterController) UpdateParameter(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var parameter models.QCParameterMaster
	if err := c.DB.First(&parameter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QC parameter not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := ctx.BodyParser(&parameter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	parameter.UpdatedBy = middleware.UserID(ctx)
	if err := c.DB.Save(&parameter).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "QC parameter updated successfully",
	})
}

// DeactivateParameter retires a checklist item. Existing inspections keep
// their seeded copy of it.
func (c *QCParameterController) DeactivateParameter(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	result := c.DB.Model(&models.QCParameterMaster{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_by": middleware.UserID(ctx),
		})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QC parameter not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "QC parameter deactivated successfully",
	})
}

type ParameterUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	ErrorCount    int      `json:"error_count"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateParametersFromExcel bulk-loads the checklist from a spreadsheet with
// columns: material_type_id, parameter_name, parameter_type, uom, min_value,
// max_value, sort_order.
func (c *QCParameterController) CreateParametersFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}
	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := ParameterUploadResult{
		TotalRows:     len(rows) - 1,
		ErrorMessages: []string{},
	}
	userID := middleware.UserID(ctx)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 3 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("row %d: material_type_id, parameter_name and parameter_type are required", rowNum))
			continue
		}

		materialTypeID, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("row %d: invalid material_type_id", rowNum))
			continue
		}

		parameter := models.QCParameterMaster{
			MaterialTypeId: materialTypeID,
			ParameterName:  strings.TrimSpace(row[1]),
			ParameterType:  strings.ToUpper(strings.TrimSpace(row[2])),
			IsActive:       true,
			CreatedBy:      userID,
		}
		switch parameter.ParameterType {
		case models.ParameterTypeNumeric, models.ParameterTypeText, models.ParameterTypeBool:
		default:
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("row %d: invalid parameter_type %s", rowNum, parameter.ParameterType))
			continue
		}

		if len(row) > 3 {
			parameter.Uom = strings.TrimSpace(row[3])
		}
		if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
			if err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("row %d: invalid min_value", rowNum))
				continue
			}
			parameter.MinValue = &v
		}
		if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
			if err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("row %d: invalid max_value", rowNum))
				continue
			}
			parameter.MaxValue = &v
		}
		if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
			v, err := strconv.Atoi(strings.TrimSpace(row[6]))
			if err == nil {
				parameter.SortOrder = v
			}
		}

		if err := tx.Create(&parameter).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("row %d: %s", rowNum, err.Error()))
			continue
		}
		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit import",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "QC parameters imported",
		"data":    result,
	})
}
