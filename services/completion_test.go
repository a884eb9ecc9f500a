package services

import (
	"testing"

	"gate-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedCheck() *models.SecurityCheck {
	return &models.SecurityCheck{IsSubmitted: true}
}

func requireBlocked(t *testing.T, err error, reason string) {
	t.Helper()
	var blocked *models.CompletionBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, reason, blocked.Reason)
}

func TestEvaluateCompletionUnknownType(t *testing.T) {
	err := EvaluateCompletion(&models.VehicleEntry{EntryType: "VISITOR"})
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "entry_type", validationErr.Field)
}

func TestEvaluateCompletionSecurityCheck(t *testing.T) {
	for _, entryType := range []string{
		models.EntryTypeRawMaterial, models.EntryTypeDailyNeed,
		models.EntryTypeMaintenance, models.EntryTypeConstruction,
	} {
		entry := &models.VehicleEntry{EntryType: entryType}
		requireBlocked(t, EvaluateCompletion(entry), "security check not recorded")

		entry.SecurityCheck = &models.SecurityCheck{IsSubmitted: false}
		requireBlocked(t, EvaluateCompletion(entry), "security check not submitted")
	}
}

func TestEvaluateRawMaterialCompletion(t *testing.T) {
	entry := &models.VehicleEntry{
		EntryType:     models.EntryTypeRawMaterial,
		SecurityCheck: submittedCheck(),
	}
	requireBlocked(t, EvaluateCompletion(entry), "weighment not recorded")

	entry.Weighment = &models.Weighment{GrossWeight: 10000, TareWeight: 4000}
	requireBlocked(t, EvaluateCompletion(entry), "no PO items received")

	entry.POReceipts = []models.POReceipt{{
		PONumber: "4500001234",
		Items: []models.POItemReceipt{
			{ItemCode: "RM-SOLV-01"},
		},
	}}
	requireBlocked(t, EvaluateCompletion(entry), "QC pending for item RM-SOLV-01 on PO 4500001234: no inspection")

	entry.POReceipts[0].Items[0].Inspection = &models.RawMaterialInspection{FinalStatus: models.FinalStatusPending}
	requireBlocked(t, EvaluateCompletion(entry), "QC pending for item RM-SOLV-01 on PO 4500001234: final status PENDING")

	entry.POReceipts[0].Items[0].Inspection.FinalStatus = models.FinalStatusHold
	requireBlocked(t, EvaluateCompletion(entry), "QC pending for item RM-SOLV-01 on PO 4500001234: final status HOLD")

	entry.POReceipts[0].Items[0].Inspection.FinalStatus = models.FinalStatusAccepted
	assert.NoError(t, EvaluateCompletion(entry))

	// A rejected item is terminal too, rejection does not hold the vehicle.
	entry.POReceipts[0].Items[0].Inspection.FinalStatus = models.FinalStatusRejected
	assert.NoError(t, EvaluateCompletion(entry))
}

func TestEvaluateRawMaterialCompletionScansEveryItem(t *testing.T) {
	entry := &models.VehicleEntry{
		EntryType:     models.EntryTypeRawMaterial,
		SecurityCheck: submittedCheck(),
		Weighment:     &models.Weighment{},
		POReceipts: []models.POReceipt{
			{
				PONumber: "4500001234",
				Items: []models.POItemReceipt{
					{ItemCode: "RM-A", Inspection: &models.RawMaterialInspection{FinalStatus: models.FinalStatusAccepted}},
				},
			},
			{
				PONumber: "4500005678",
				Items: []models.POItemReceipt{
					{ItemCode: "RM-B", Inspection: &models.RawMaterialInspection{FinalStatus: models.FinalStatusPending}},
				},
			},
		},
	}
	requireBlocked(t, EvaluateCompletion(entry), "QC pending for item RM-B on PO 4500005678: final status PENDING")
}

func TestEvaluateDailyNeedCompletion(t *testing.T) {
	entry := &models.VehicleEntry{
		EntryType:     models.EntryTypeDailyNeed,
		SecurityCheck: submittedCheck(),
	}
	requireBlocked(t, EvaluateCompletion(entry), "daily need details not recorded")

	entry.DailyNeedEntry = &models.DailyNeedEntry{ItemDesc: "Canteen vegetables"}
	assert.NoError(t, EvaluateCompletion(entry))
}

func TestEvaluateMaintenanceCompletion(t *testing.T) {
	entry := &models.VehicleEntry{
		EntryType:     models.EntryTypeMaintenance,
		SecurityCheck: submittedCheck(),
	}
	requireBlocked(t, EvaluateCompletion(entry), "maintenance details not recorded")

	entry.MaintenanceEntry = &models.MaintenanceEntry{WorkOrderNo: "WO-1001"}
	assert.NoError(t, EvaluateCompletion(entry))
}

func TestEvaluateConstructionCompletion(t *testing.T) {
	entry := &models.VehicleEntry{
		EntryType:     models.EntryTypeConstruction,
		SecurityCheck: submittedCheck(),
	}
	requireBlocked(t, EvaluateCompletion(entry), "construction details not recorded")

	entry.ConstructionEntry = &models.ConstructionEntry{SecurityApproval: models.SecurityApprovalPending}
	requireBlocked(t, EvaluateCompletion(entry), "construction security approval is PENDING")

	entry.ConstructionEntry.SecurityApproval = models.SecurityApprovalRejected
	requireBlocked(t, EvaluateCompletion(entry), "construction security approval is REJECTED")

	entry.ConstructionEntry.SecurityApproval = models.SecurityApprovalApproved
	requireBlocked(t, EvaluateCompletion(entry), "site engineer not set")

	entry.ConstructionEntry.SiteEngineer = "R. Mehta"
	requireBlocked(t, EvaluateCompletion(entry), "material category not set")

	entry.ConstructionEntry.MaterialCategory = "Cement"
	requireBlocked(t, EvaluateCompletion(entry), "contractor name not set")

	entry.ConstructionEntry.ContractorName = "BuildWell Infra"
	assert.NoError(t, EvaluateCompletion(entry))
}

func TestEvaluateConstructionCompletionWhitespaceOnly(t *testing.T) {
	entry := &models.VehicleEntry{
		EntryType:     models.EntryTypeConstruction,
		SecurityCheck: submittedCheck(),
		ConstructionEntry: &models.ConstructionEntry{
			SecurityApproval: models.SecurityApprovalApproved,
			SiteEngineer:     "   ",
			MaterialCategory: "Cement",
			ContractorName:   "BuildWell Infra",
		},
	}
	requireBlocked(t, EvaluateCompletion(entry), "site engineer not set")
}

func TestAllItemsTerminal(t *testing.T) {
	entry := &models.VehicleEntry{EntryType: models.EntryTypeRawMaterial}
	assert.False(t, AllItemsTerminal(entry), "no items is never terminal")

	entry.POReceipts = []models.POReceipt{{
		Items: []models.POItemReceipt{
			{Inspection: &models.RawMaterialInspection{FinalStatus: models.FinalStatusAccepted}},
			{Inspection: &models.RawMaterialInspection{FinalStatus: models.FinalStatusRejected}},
		},
	}}
	assert.True(t, AllItemsTerminal(entry))

	entry.POReceipts = append(entry.POReceipts, models.POReceipt{
		Items: []models.POItemReceipt{
			{Inspection: &models.RawMaterialInspection{FinalStatus: models.FinalStatusPending}},
		},
	})
	assert.False(t, AllItemsTerminal(entry))

	entry.POReceipts[1].Items[0].Inspection = nil
	assert.False(t, AllItemsTerminal(entry))
}
