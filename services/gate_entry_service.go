package services

import (
	"fmt"
	"gate-app/models"
	"gate-app/repositories"
	"strings"
	"time"

	"gorm.io/gorm"
)

const timestampLayout = "2006-01-02 15:04:05"

type GateEntryService struct {
	repo     *repositories.GateEntryRepository
	notifier *Notifier
}

func NewGateEntryService(repo *repositories.GateEntryRepository, notifier *Notifier) *GateEntryService {
	return &GateEntryService{repo: repo, notifier: notifier}
}

type CreateEntryRequest struct {
	EntryType     string `json:"entry_type" validate:"required"`
	VehicleNo     string `json:"vehicle_no" validate:"required"`
	DriverName    string `json:"driver_name"`
	TransporterId int    `json:"transporter_id"`
	SupplierCode  string `json:"supplier_code"`
	DepartmentId  int    `json:"department_id"`
	CompanyCode   string `json:"company_code"`
	Remarks       string `json:"remarks"`
}

func (s *GateEntryService) CreateEntry(req CreateEntryRequest, userID int) (*models.VehicleEntry, error) {
	if !models.ValidEntryType(req.EntryType) {
		return nil, &models.ValidationError{Field: "entry_type", Detail: "unknown entry type " + req.EntryType}
	}
	if req.EntryType == models.EntryTypeRawMaterial && strings.TrimSpace(req.SupplierCode) == "" {
		return nil, &models.ValidationError{Field: "supplier_code", Detail: "required for raw material entries"}
	}

	var entry *models.VehicleEntry
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		entryNo, err := NextSequenceNumber(tx, EntryNoPrefix, time.Now())
		if err != nil {
			return err
		}

		entry = &models.VehicleEntry{
			EntryNo:       entryNo,
			EntryType:     req.EntryType,
			Status:        models.EntryStatusDraft,
			VehicleNo:     req.VehicleNo,
			DriverName:    req.DriverName,
			TransporterId: req.TransporterId,
			SupplierCode:  req.SupplierCode,
			DepartmentId:  req.DepartmentId,
			CompanyCode:   req.CompanyCode,
			Remarks:       req.Remarks,
			CreatedBy:     userID,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(Event{
		Name:    EventEntryCreated,
		Subject: entry.EntryNo,
		Detail: map[string]string{
			"entry_type": entry.EntryType,
			"vehicle_no": entry.VehicleNo,
		},
	})
	return entry, nil
}

func (s *GateEntryService) GetEntry(id int64) (*models.VehicleEntry, error) {
	return s.repo.GetByID(s.repo.DB(), id)
}

func (s *GateEntryService) ListEntries(filter repositories.ListEntryFilter) ([]models.VehicleEntry, error) {
	return s.repo.List(filter)
}

type SecurityCheckRequest struct {
	GatePassNo  string `json:"gate_pass_no"`
	DocumentsOk bool   `json:"documents_ok"`
	SealIntact  bool   `json:"seal_intact"`
	Remarks     string `json:"remarks"`
}

// SubmitSecurityCheck records the security check and moves a DRAFT entry into
// IN_PROGRESS. Resubmission of an already submitted check is rejected.
func (s *GateEntryService) SubmitSecurityCheck(entryID int64, req SecurityCheckRequest, userID int) error {
	var entryNo string
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.GetByID(tx, entryID)
		if err != nil {
			return err
		}
		if entry.IsLocked {
			return &models.LockedEntryError{Entity: "gate entry", ID: entryID}
		}
		if entry.SecurityCheck != nil && entry.SecurityCheck.IsSubmitted {
			return &models.ConflictError{Detail: "security check already submitted"}
		}
		entryNo = entry.EntryNo

		check := models.SecurityCheck{
			VehicleEntryId: entryID,
			GatePassNo:     req.GatePassNo,
			DocumentsOk:    req.DocumentsOk,
			SealIntact:     req.SealIntact,
			Remarks:        req.Remarks,
			IsSubmitted:    true,
			SubmittedBy:    userID,
			SubmittedAt:    time.Now().Format(timestampLayout),
			CreatedBy:      userID,
		}
		if entry.SecurityCheck != nil {
			check.ID = entry.SecurityCheck.ID
			check.CreatedBy = entry.SecurityCheck.CreatedBy
			check.UpdatedBy = userID
			if err := tx.Save(&check).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(&check).Error; err != nil {
				return err
			}
		}

		if entry.Status == models.EntryStatusDraft {
			return s.repo.TransitionStatus(tx, entryID, models.EntryStatusDraft, models.EntryStatusInProgress)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(Event{
		Name:    EventSecuritySubmitted,
		Subject: entryNo,
		Detail:  map[string]string{"gate_pass_no": req.GatePassNo},
	})
	return nil
}

type WeighmentRequest struct {
	GrossWeight   float64 `json:"gross_weight" validate:"required,gt=0"`
	TareWeight    float64 `json:"tare_weight" validate:"gte=0"`
	WeighbridgeNo string  `json:"weighbridge_no"`
}

// RecordWeighment captures gross/tare for a raw-material entry. Net weight is
// derived in the model hook.
func (s *GateEntryService) RecordWeighment(entryID int64, req WeighmentRequest, userID int) error {
	if req.TareWeight >= req.GrossWeight {
		return &models.ValidationError{Field: "tare_weight", Detail: "must be less than gross weight"}
	}

	var entryNo string
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.GetByID(tx, entryID)
		if err != nil {
			return err
		}
		if entry.IsLocked {
			return &models.LockedEntryError{Entity: "gate entry", ID: entryID}
		}
		if entry.EntryType != models.EntryTypeRawMaterial {
			return &models.ValidationError{Field: "entry_type", Detail: "weighment applies to raw material entries only"}
		}
		entryNo = entry.EntryNo

		weighment := models.Weighment{
			VehicleEntryId: entryID,
			GrossWeight:    req.GrossWeight,
			TareWeight:     req.TareWeight,
			WeighbridgeNo:  req.WeighbridgeNo,
			WeighedBy:      userID,
			CreatedBy:      userID,
		}
		if entry.Weighment != nil {
			weighment.ID = entry.Weighment.ID
			weighment.CreatedBy = entry.Weighment.CreatedBy
			weighment.UpdatedBy = userID
			return tx.Save(&weighment).Error
		}
		return tx.Create(&weighment).Error
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(Event{
		Name:    EventWeighmentRecorded,
		Subject: entryNo,
		Detail:  map[string]string{"weighbridge_no": req.WeighbridgeNo},
	})
	return nil
}

type EntryDetailRequest struct {
	// Daily need
	ItemDesc     string `json:"item_desc"`
	Quantity     string `json:"quantity"`
	ReceiverName string `json:"receiver_name"`
	// Maintenance
	WorkOrderNo string `json:"work_order_no"`
	Purpose     string `json:"purpose"`
	// Shared / construction
	DepartmentId     int    `json:"department_id"`
	ContractorName   string `json:"contractor_name"`
	SiteEngineer     string `json:"site_engineer"`
	MaterialCategory string `json:"material_category"`
}

// SaveTypeDetail upserts the entry-type specific detail row.
func (s *GateEntryService) SaveTypeDetail(entryID int64, req EntryDetailRequest, userID int) error {
	return s.repo.DB().Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.GetByID(tx, entryID)
		if err != nil {
			return err
		}
		if entry.IsLocked {
			return &models.LockedEntryError{Entity: "gate entry", ID: entryID}
		}

		switch entry.EntryType {
		case models.EntryTypeDailyNeed:
			detail := models.DailyNeedEntry{
				VehicleEntryId: entryID,
				ItemDesc:       req.ItemDesc,
				Quantity:       req.Quantity,
				DepartmentId:   req.DepartmentId,
				ReceiverName:   req.ReceiverName,
				CreatedBy:      userID,
			}
			if entry.DailyNeedEntry != nil {
				detail.ID = entry.DailyNeedEntry.ID
				detail.CreatedBy = entry.DailyNeedEntry.CreatedBy
				detail.UpdatedBy = userID
				return tx.Save(&detail).Error
			}
			return tx.Create(&detail).Error

		case models.EntryTypeMaintenance:
			detail := models.MaintenanceEntry{
				VehicleEntryId: entryID,
				WorkOrderNo:    req.WorkOrderNo,
				ContractorName: req.ContractorName,
				Purpose:        req.Purpose,
				DepartmentId:   req.DepartmentId,
				CreatedBy:      userID,
			}
			if entry.MaintenanceEntry != nil {
				detail.ID = entry.MaintenanceEntry.ID
				detail.CreatedBy = entry.MaintenanceEntry.CreatedBy
				detail.UpdatedBy = userID
				return tx.Save(&detail).Error
			}
			return tx.Create(&detail).Error

		case models.EntryTypeConstruction:
			detail := models.ConstructionEntry{
				VehicleEntryId:   entryID,
				ContractorName:   req.ContractorName,
				SiteEngineer:     req.SiteEngineer,
				MaterialCategory: req.MaterialCategory,
				SecurityApproval: models.SecurityApprovalPending,
				CreatedBy:        userID,
			}
			if entry.ConstructionEntry != nil {
				detail.ID = entry.ConstructionEntry.ID
				detail.CreatedBy = entry.ConstructionEntry.CreatedBy
				detail.SecurityApproval = entry.ConstructionEntry.SecurityApproval
				detail.UpdatedBy = userID
				return tx.Save(&detail).Error
			}
			return tx.Create(&detail).Error

		default:
			return &models.ValidationError{Field: "entry_type", Detail: "raw material entries have no type detail"}
		}
	})
}

// ApproveConstruction sets the construction security approval outcome.
func (s *GateEntryService) ApproveConstruction(entryID int64, approval string, userID int) error {
	if approval != models.SecurityApprovalApproved && approval != models.SecurityApprovalRejected {
		return &models.ValidationError{Field: "security_approval", Detail: "must be APPROVED or REJECTED"}
	}
	return s.repo.DB().Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.GetByID(tx, entryID)
		if err != nil {
			return err
		}
		if entry.IsLocked {
			return &models.LockedEntryError{Entity: "gate entry", ID: entryID}
		}
		if entry.ConstructionEntry == nil {
			return &models.NotFoundError{Entity: "construction detail"}
		}
		return tx.Model(&models.ConstructionEntry{}).
			Where("id = ?", entry.ConstructionEntry.ID).
			Updates(map[string]interface{}{
				"security_approval": approval,
				"approved_by":       userID,
				"updated_by":        userID,
			}).Error
	})
}

type ReceivePOItem struct {
	ItemCode    string  `json:"item_code" validate:"required"`
	ItemName    string  `json:"item_name"`
	Uom         string  `json:"uom"`
	WhsCode     string  `json:"whs_code"`
	UnitPrice   float64 `json:"unit_price"`
	TaxCode     string  `json:"tax_code"`
	BaseLine    int     `json:"base_line"`
	OrderedQty  float64 `json:"ordered_qty" validate:"required,gt=0"`
	ReceivedQty float64 `json:"received_qty" validate:"required"`
}

type ReceivePORequest struct {
	PONumber  string          `json:"po_number" validate:"required"`
	DocEntry  int             `json:"doc_entry"`
	InvoiceNo string          `json:"invoice_no"`
	Items     []ReceivePOItem `json:"items" validate:"required,min=1"`
}

// ReceivePO records goods received against one purchase order. Header and all
// item rows are one atomic unit: every quantity is validated against the
// over-receipt tolerance before anything is persisted.
func (s *GateEntryService) ReceivePO(entryID int64, req ReceivePORequest, userID int) (*models.POReceipt, error) {
	for _, item := range req.Items {
		if err := models.ValidateReceivedQty(item.OrderedQty, item.ReceivedQty); err != nil {
			return nil, err
		}
	}

	var receipt *models.POReceipt
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.GetByID(tx, entryID)
		if err != nil {
			return err
		}
		if entry.IsLocked {
			return &models.LockedEntryError{Entity: "gate entry", ID: entryID}
		}
		if entry.EntryType != models.EntryTypeRawMaterial {
			return &models.ValidationError{Field: "entry_type", Detail: "PO receipts apply to raw material entries only"}
		}
		for _, po := range entry.POReceipts {
			if po.PONumber == req.PONumber {
				return &models.ConflictError{Detail: fmt.Sprintf("PO %s already received on this entry", req.PONumber)}
			}
		}

		receipt = &models.POReceipt{
			VehicleEntryId: entryID,
			PONumber:       req.PONumber,
			SupplierCode:   entry.SupplierCode,
			DocEntry:       req.DocEntry,
			InvoiceNo:      req.InvoiceNo,
			CreatedBy:      userID,
		}
		if err := tx.Create(receipt).Error; err != nil {
			return err
		}

		for _, item := range req.Items {
			row := models.POItemReceipt{
				POReceiptId: receipt.ID,
				ItemCode:    item.ItemCode,
				ItemName:    item.ItemName,
				Uom:         item.Uom,
				WhsCode:     item.WhsCode,
				UnitPrice:   item.UnitPrice,
				TaxCode:     item.TaxCode,
				BaseLine:    item.BaseLine,
				OrderedQty:  item.OrderedQty,
				ReceivedQty: item.ReceivedQty,
				CreatedBy:   userID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if entry.Status == models.EntryStatusInProgress {
			return s.repo.TransitionStatus(tx, entryID, models.EntryStatusInProgress, models.EntryStatusQCPending)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// CompleteEntry evaluates the per-type completion rules, walks the remaining
// status transitions and locks the entry, all in one transaction. Nothing is
// ever partially locked.
func (s *GateEntryService) CompleteEntry(entryID int64, userID int) error {
	var entryNo string
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.GetByID(tx, entryID)
		if err != nil {
			return err
		}
		if entry.IsLocked {
			return &models.LockedEntryError{Entity: "gate entry", ID: entryID}
		}
		entryNo = entry.EntryNo

		if err := EvaluateCompletion(entry); err != nil {
			return err
		}

		steps := statusPathToCompleted(entry.Status)
		if steps == nil {
			return &models.InvalidTransitionError{From: entry.Status, To: models.EntryStatusCompleted}
		}
		current := entry.Status
		for _, next := range steps {
			if err := s.repo.TransitionStatus(tx, entryID, current, next); err != nil {
				return err
			}
			current = next
		}

		return s.repo.Lock(tx, entryID, userID)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(Event{
		Name:    EventEntryCompleted,
		Subject: entryNo,
		Detail:  map[string]string{"entry_id": fmt.Sprintf("%d", entryID)},
	})
	return nil
}

// statusPathToCompleted returns the validated transition chain from the
// current status up to COMPLETED, or nil when no chain exists.
func statusPathToCompleted(from string) []string {
	chain := []string{
		models.EntryStatusInProgress,
		models.EntryStatusQCPending,
		models.EntryStatusQCCompleted,
		models.EntryStatusCompleted,
	}
	if from == models.EntryStatusDraft {
		return chain
	}
	for i, st := range chain {
		if st == from {
			return chain[i+1:]
		}
	}
	return nil
}

// CancelEntry is the administrative override. It bypasses the transition
// whitelist but never a lock.
func (s *GateEntryService) CancelEntry(entryID int64, userID int) error {
	return s.repo.DB().Transaction(func(tx *gorm.DB) error {
		return s.repo.GuardedUpdate(tx, entryID, map[string]interface{}{
			"status":     models.EntryStatusCancelled,
			"updated_by": userID,
		})
	})
}
