package controllers

import (
	"fmt"
	"gate-app/repositories"
	"gate-app/services"
	"gate-app/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ReportController renders the gate register and QC register as spreadsheets.
type ReportController struct {
	EntryService      *services.GateEntryService
	InspectionService *services.InspectionService
}

func NewReportController(entryService *services.GateEntryService, inspectionService *services.InspectionService) *ReportController {
	return &ReportController{EntryService: entryService, InspectionService: inspectionService}
}

func (c *ReportController) ExportGateRegister(ctx *fiber.Ctx) error {
	filter := repositories.ListEntryFilter{
		EntryType: ctx.Query("entry_type"),
		Status:    ctx.Query("status"),
		DateFrom:  ctx.Query("date_from"),
		DateTo:    ctx.Query("date_to"),
	}

	entries, err := c.EntryService.ListEntries(filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Entry No")
	f.SetCellValue(sheet, "B1", "Entry Type")
	f.SetCellValue(sheet, "C1", "Status")
	f.SetCellValue(sheet, "D1", "Vehicle No")
	f.SetCellValue(sheet, "E1", "Driver")
	f.SetCellValue(sheet, "F1", "Supplier")
	f.SetCellValue(sheet, "G1", "Net Weight")
	f.SetCellValue(sheet, "H1", "Created At")

	for i, entry := range entries {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.EntryNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.EntryType)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.Status)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.VehicleNo)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), entry.DriverName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), entry.SupplierCode)
		if entry.Weighment != nil {
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), entry.Weighment.NetWeight)
		}
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), entry.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="gate_register.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}

func (c *ReportController) ExportQCRegister(ctx *fiber.Ctx) error {
	inspections, err := c.InspectionService.ListInspections(ctx.Query("status"))
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Report No")
	f.SetCellValue(sheet, "B1", "Internal Lot No")
	f.SetCellValue(sheet, "C1", "Status")
	f.SetCellValue(sheet, "D1", "Final Status")
	f.SetCellValue(sheet, "E1", "Chemist At")
	f.SetCellValue(sheet, "F1", "QAM At")

	for i, inspection := range inspections {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), inspection.ReportNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), inspection.InternalLotNo)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), inspection.Status)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), inspection.FinalStatus)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), inspection.QaChemistAt)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), inspection.QamAt)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="qc_register.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}
