package services

import (
	"fmt"
	"gate-app/models"
	"gate-app/repositories"
	"time"

	"gorm.io/gorm"
)

type InspectionService struct {
	repo      *repositories.InspectionRepository
	entryRepo *repositories.GateEntryRepository
	notifier  *Notifier
}

func NewInspectionService(repo *repositories.InspectionRepository, entryRepo *repositories.GateEntryRepository, notifier *Notifier) *InspectionService {
	return &InspectionService{repo: repo, entryRepo: entryRepo, notifier: notifier}
}

type ArrivalSlipRequest struct {
	TransporterName string `json:"transporter_name"`
	LrNo            string `json:"lr_no"`
	ChallanNo       string `json:"challan_no"`
	BatchNo         string `json:"batch_no"`
	Remarks         string `json:"remarks"`
}

// SaveArrivalSlip upserts the arrival slip for a PO item while it is still a
// draft.
func (s *InspectionService) SaveArrivalSlip(poItemReceiptID int64, req ArrivalSlipRequest, userID int) (*models.MaterialArrivalSlip, error) {
	var slip *models.MaterialArrivalSlip
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.GetPOItem(tx, poItemReceiptID)
		if err != nil {
			return err
		}
		if item.ArrivalSlip != nil && item.ArrivalSlip.IsSubmitted {
			return &models.ConflictError{Detail: "arrival slip already submitted"}
		}

		slip = &models.MaterialArrivalSlip{
			POItemReceiptId: poItemReceiptID,
			Status:          models.ArrivalSlipStatusDraft,
			TransporterName: req.TransporterName,
			LrNo:            req.LrNo,
			ChallanNo:       req.ChallanNo,
			BatchNo:         req.BatchNo,
			Remarks:         req.Remarks,
			CreatedBy:       userID,
		}
		if item.ArrivalSlip != nil {
			slip.ID = item.ArrivalSlip.ID
			slip.CreatedBy = item.ArrivalSlip.CreatedBy
			slip.UpdatedBy = userID
			return tx.Save(slip).Error
		}
		return tx.Create(slip).Error
	})
	if err != nil {
		return nil, err
	}
	return slip, nil
}

// SubmitArrivalSlip marks the slip SUBMITTED with actor and timestamp in one
// write. A submitted slip is what makes the item eligible for inspection.
func (s *InspectionService) SubmitArrivalSlip(poItemReceiptID int64, userID int) error {
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.GetPOItem(tx, poItemReceiptID)
		if err != nil {
			return err
		}
		if item.ArrivalSlip == nil {
			return &models.NotFoundError{Entity: "arrival slip"}
		}
		if item.ArrivalSlip.IsSubmitted {
			return &models.ConflictError{Detail: "arrival slip already submitted"}
		}

		return tx.Model(&models.MaterialArrivalSlip{}).
			Where("id = ? AND is_submitted = ?", item.ArrivalSlip.ID, false).
			Updates(map[string]interface{}{
				"status":       models.ArrivalSlipStatusSubmitted,
				"is_submitted": true,
				"submitted_by": userID,
				"submitted_at": time.Now().Format(timestampLayout),
				"updated_by":   userID,
			}).Error
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(Event{
		Name:    EventArrivalSlipSubmitted,
		Subject: fmt.Sprintf("PO item %d", poItemReceiptID),
	})
	return nil
}

type CreateInspectionRequest struct {
	MaterialTypeId int     `json:"material_type_id" validate:"required"`
	SampleQty      float64 `json:"sample_qty"`
}

// CreateInspection opens the QC record for a PO item: the parameter checklist
// is seeded from the material-type master and the report/lot numbers are
// taken from the day's locked sequence.
func (s *InspectionService) CreateInspection(poItemReceiptID int64, req CreateInspectionRequest, userID int) (*models.RawMaterialInspection, error) {
	var inspection *models.RawMaterialInspection
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.GetPOItem(tx, poItemReceiptID)
		if err != nil {
			return err
		}
		if item.Inspection != nil {
			return &models.ConflictError{Detail: "inspection already exists for this item"}
		}
		if item.ArrivalSlip == nil || !item.ArrivalSlip.IsSubmitted {
			return &models.ValidationError{Field: "arrival_slip", Detail: "arrival slip must be submitted before inspection"}
		}

		now := time.Now()
		reportNo, err := NextSequenceNumber(tx, ReportNoPrefix, now)
		if err != nil {
			return err
		}
		lotNo, err := NextSequenceNumber(tx, LotNoPrefix, now)
		if err != nil {
			return err
		}

		inspection = &models.RawMaterialInspection{
			POItemReceiptId: poItemReceiptID,
			MaterialTypeId:  req.MaterialTypeId,
			ReportNo:        reportNo,
			InternalLotNo:   lotNo,
			Status:          models.InspectionStatusDraft,
			FinalStatus:     models.FinalStatusPending,
			SampleQty:       req.SampleQty,
			CreatedBy:       userID,
		}
		if err := tx.Create(inspection).Error; err != nil {
			return err
		}

		masters, err := s.repo.ActiveParameters(tx, req.MaterialTypeId)
		if err != nil {
			return err
		}
		for _, m := range masters {
			result := models.InspectionParameterResult{
				InspectionId:  inspection.ID,
				ParameterName: m.ParameterName,
				ParameterType: m.ParameterType,
				Uom:           m.Uom,
				MinValue:      m.MinValue,
				MaxValue:      m.MaxValue,
				CreatedBy:     userID,
			}
			if err := tx.Create(&result).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inspection, nil
}

type ParameterResultInput struct {
	ParameterResultId uint     `json:"parameter_result_id" validate:"required"`
	ResultNumeric     *float64 `json:"result_numeric"`
	ResultText        string   `json:"result_text"`
}

// SaveParameterResults records measured values. Spec conformance is derived
// in the model hook, the caller cannot override it.
func (s *InspectionService) SaveParameterResults(inspectionID int64, inputs []ParameterResultInput, userID int) error {
	return s.repo.DB().Transaction(func(tx *gorm.DB) error {
		inspection, err := s.repo.GetByID(tx, inspectionID)
		if err != nil {
			return err
		}
		if inspection.IsLocked {
			return &models.LockedEntryError{Entity: "inspection", ID: inspectionID}
		}
		if inspection.Status != models.InspectionStatusDraft && inspection.Status != models.InspectionStatusSubmitted {
			return &models.ValidationError{Field: "status", Detail: "results can only be recorded before approval starts"}
		}

		byID := make(map[uint]models.InspectionParameterResult, len(inspection.Parameters))
		for _, p := range inspection.Parameters {
			byID[p.ID] = p
		}
		for _, in := range inputs {
			row, ok := byID[in.ParameterResultId]
			if !ok {
				return &models.NotFoundError{Entity: "inspection parameter"}
			}
			row.ResultNumeric = in.ResultNumeric
			row.ResultText = in.ResultText
			row.UpdatedBy = userID
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SubmitInspection moves DRAFT to SUBMITTED.
func (s *InspectionService) SubmitInspection(inspectionID int64, userID int) error {
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		return s.repo.GuardedTransition(tx, inspectionID,
			models.InspectionStatusDraft, models.InspectionStatusSubmitted,
			map[string]interface{}{
				"submitted_by": userID,
				"submitted_at": time.Now().Format(timestampLayout),
				"updated_by":   userID,
			})
	})
	if err != nil {
		return err
	}
	s.notifyStage(inspectionID, models.InspectionStatusSubmitted)
	return nil
}

// ChemistApprove is the first approval stage. Actor, timestamp, remarks and
// the status move are one write.
func (s *InspectionService) ChemistApprove(inspectionID int64, remarks string, userID int) error {
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		return s.repo.GuardedTransition(tx, inspectionID,
			models.InspectionStatusSubmitted, models.InspectionStatusChemistApproved,
			map[string]interface{}{
				"qa_chemist_id":      userID,
				"qa_chemist_remarks": remarks,
				"qa_chemist_at":      time.Now().Format(timestampLayout),
				"updated_by":         userID,
			})
	})
	if err != nil {
		return err
	}
	s.notifyStage(inspectionID, models.InspectionStatusChemistApproved)
	return nil
}

// QAMApprove is the second, terminal approval stage. It requires the
// authoritative final status, locks the inspection, and re-evaluates whether
// the parent entry's QC is now complete.
func (s *InspectionService) QAMApprove(inspectionID int64, finalStatus, remarks string, userID int) error {
	switch finalStatus {
	case models.FinalStatusAccepted, models.FinalStatusRejected, models.FinalStatusHold:
	default:
		return &models.ValidationError{Field: "final_status", Detail: "must be ACCEPTED, REJECTED or HOLD"}
	}

	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		if err := s.repo.GuardedTransition(tx, inspectionID,
			models.InspectionStatusChemistApproved, models.InspectionStatusQAMApproved,
			map[string]interface{}{
				"final_status": finalStatus,
				"qam_id":       userID,
				"qam_remarks":  remarks,
				"qam_at":       time.Now().Format(timestampLayout),
				"is_locked":    true,
				"updated_by":   userID,
			}); err != nil {
			return err
		}
		if models.TerminalOutcome(finalStatus) {
			return s.reevaluateEntryQC(tx, inspectionID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifyStage(inspectionID, models.InspectionStatusQAMApproved)
	return nil
}

// Reject terminates the inspection from either pre-terminal stage, locking it
// with final status REJECTED.
func (s *InspectionService) Reject(inspectionID int64, remarks string, userID int) error {
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		inspection, err := s.repo.GetByID(tx, inspectionID)
		if err != nil {
			return err
		}
		if err := s.repo.GuardedTransition(tx, inspectionID,
			inspection.Status, models.InspectionStatusRejected,
			map[string]interface{}{
				"final_status": models.FinalStatusRejected,
				"qam_id":       userID,
				"qam_remarks":  remarks,
				"qam_at":       time.Now().Format(timestampLayout),
				"is_locked":    true,
				"updated_by":   userID,
			}); err != nil {
			return err
		}
		return s.reevaluateEntryQC(tx, inspectionID)
	})
	if err != nil {
		return err
	}
	s.notifyStage(inspectionID, models.InspectionStatusRejected)
	return nil
}

// MarkCompleted is the bookkeeping step after QAM approval. Only the status
// moves, every other field stays frozen by the lock.
func (s *InspectionService) MarkCompleted(inspectionID int64, userID int) error {
	return s.repo.DB().Transaction(func(tx *gorm.DB) error {
		inspection, err := s.repo.GetByID(tx, inspectionID)
		if err != nil {
			return err
		}
		if err := models.ValidateInspectionTransition(inspection.Status, models.InspectionStatusCompleted); err != nil {
			return err
		}
		res := tx.Model(&models.RawMaterialInspection{}).
			Where("id = ? AND status = ?", inspectionID, models.InspectionStatusQAMApproved).
			Update("status", models.InspectionStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &models.InvalidTransitionError{From: inspection.Status, To: models.InspectionStatusCompleted}
		}
		return nil
	})
}

func (s *InspectionService) GetInspection(id int64) (*models.RawMaterialInspection, error) {
	return s.repo.GetByID(s.repo.DB(), id)
}

func (s *InspectionService) ListInspections(status string) ([]models.RawMaterialInspection, error) {
	return s.repo.List(status)
}

// reevaluateEntryQC checks whether every PO item of the inspection's parent
// entry now carries a terminal outcome, and if so drives the entry from
// QC_PENDING to QC_COMPLETED. One terminal item is never enough on its own.
func (s *InspectionService) reevaluateEntryQC(tx *gorm.DB, inspectionID int64) error {
	inspection, err := s.repo.GetByID(tx, inspectionID)
	if err != nil {
		return err
	}
	entryID, err := s.repo.EntryForPOItem(tx, inspection.POItemReceiptId)
	if err != nil {
		return err
	}
	entry, err := s.entryRepo.GetByID(tx, entryID)
	if err != nil {
		return err
	}

	if entry.Status == models.EntryStatusQCPending && AllItemsTerminal(entry) {
		return s.entryRepo.TransitionStatus(tx, entryID, models.EntryStatusQCPending, models.EntryStatusQCCompleted)
	}
	return nil
}

func (s *InspectionService) notifyStage(inspectionID int64, stage string) {
	s.notifier.Notify(Event{
		Name:    EventInspectionStage,
		Subject: fmt.Sprintf("inspection %d", inspectionID),
		Detail:  map[string]string{"stage": stage},
	})
}
