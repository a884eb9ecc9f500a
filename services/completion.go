package services

import (
	"fmt"
	"gate-app/models"
	"strings"
)

// Per-entry-type completion rules. Each rule is a pure function over a fully
// preloaded entry and reports the first unmet precondition, never a generic
// failure. The rules stay independent per type: the predicates differ in
// arity and the error text must name the blocker.

func EvaluateCompletion(entry *models.VehicleEntry) error {
	switch entry.EntryType {
	case models.EntryTypeRawMaterial:
		return evaluateRawMaterialCompletion(entry)
	case models.EntryTypeDailyNeed:
		return evaluateDailyNeedCompletion(entry)
	case models.EntryTypeMaintenance:
		return evaluateMaintenanceCompletion(entry)
	case models.EntryTypeConstruction:
		return evaluateConstructionCompletion(entry)
	default:
		return &models.ValidationError{Field: "entry_type", Detail: "unknown entry type " + entry.EntryType}
	}
}

func securityCheckSubmitted(entry *models.VehicleEntry) error {
	if entry.SecurityCheck == nil {
		return &models.CompletionBlockedError{Reason: "security check not recorded"}
	}
	if !entry.SecurityCheck.IsSubmitted {
		return &models.CompletionBlockedError{Reason: "security check not submitted"}
	}
	return nil
}

func evaluateRawMaterialCompletion(entry *models.VehicleEntry) error {
	if err := securityCheckSubmitted(entry); err != nil {
		return err
	}
	if entry.Weighment == nil {
		return &models.CompletionBlockedError{Reason: "weighment not recorded"}
	}

	itemCount := 0
	for _, po := range entry.POReceipts {
		for _, item := range po.Items {
			itemCount++
			if item.Inspection == nil {
				return &models.CompletionBlockedError{
					Reason: fmt.Sprintf("QC pending for item %s on PO %s: no inspection", item.ItemCode, po.PONumber),
				}
			}
			if !models.TerminalOutcome(item.Inspection.FinalStatus) {
				return &models.CompletionBlockedError{
					Reason: fmt.Sprintf("QC pending for item %s on PO %s: final status %s",
						item.ItemCode, po.PONumber, item.Inspection.FinalStatus),
				}
			}
		}
	}
	if itemCount == 0 {
		return &models.CompletionBlockedError{Reason: "no PO items received"}
	}
	return nil
}

func evaluateDailyNeedCompletion(entry *models.VehicleEntry) error {
	if err := securityCheckSubmitted(entry); err != nil {
		return err
	}
	if entry.DailyNeedEntry == nil {
		return &models.CompletionBlockedError{Reason: "daily need details not recorded"}
	}
	return nil
}

func evaluateMaintenanceCompletion(entry *models.VehicleEntry) error {
	if err := securityCheckSubmitted(entry); err != nil {
		return err
	}
	if entry.MaintenanceEntry == nil {
		return &models.CompletionBlockedError{Reason: "maintenance details not recorded"}
	}
	return nil
}

func evaluateConstructionCompletion(entry *models.VehicleEntry) error {
	if err := securityCheckSubmitted(entry); err != nil {
		return err
	}
	detail := entry.ConstructionEntry
	if detail == nil {
		return &models.CompletionBlockedError{Reason: "construction details not recorded"}
	}
	if detail.SecurityApproval != models.SecurityApprovalApproved {
		return &models.CompletionBlockedError{
			Reason: "construction security approval is " + detail.SecurityApproval,
		}
	}
	if strings.TrimSpace(detail.SiteEngineer) == "" {
		return &models.CompletionBlockedError{Reason: "site engineer not set"}
	}
	if strings.TrimSpace(detail.MaterialCategory) == "" {
		return &models.CompletionBlockedError{Reason: "material category not set"}
	}
	if strings.TrimSpace(detail.ContractorName) == "" {
		return &models.CompletionBlockedError{Reason: "contractor name not set"}
	}
	return nil
}

// AllItemsTerminal reports whether every received PO item of the entry has
// reached a terminal QC outcome. A single terminal item is necessary but
// never sufficient, the whole entry is scanned.
func AllItemsTerminal(entry *models.VehicleEntry) bool {
	itemCount := 0
	for _, po := range entry.POReceipts {
		for _, item := range po.Items {
			itemCount++
			if item.Inspection == nil || !models.TerminalOutcome(item.Inspection.FinalStatus) {
				return false
			}
		}
	}
	return itemCount > 0
}
