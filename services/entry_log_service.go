package services

import (
	"gate-app/models"
	"gate-app/repositories"
	"gate-app/types"
	"time"

	"gorm.io/gorm"
)

// Bulk entry skip reasons reported back per labour.
const (
	SkipReasonAlreadyInside = "Already inside"
	SkipReasonUnknownLabour = "Labour not found or inactive"
	SkipReasonNotInside     = "Not inside"
)

type EntryLogService struct {
	repo *repositories.EntryLogRepository
}

func NewEntryLogService(repo *repositories.EntryLogRepository) *EntryLogService {
	return &EntryLogService{repo: repo}
}

type BulkEntryRequest struct {
	LabourIds []types.SnowflakeID `json:"labour_ids" validate:"required,min=1"`
	Purpose   string              `json:"purpose"`
	GateNo    string              `json:"gate_no"`
}

// BulkEntryResult reports the per-labour outcome of a bulk operation. Skipped
// labours never block the rest of the batch.
type BulkEntryResult struct {
	LabourId   types.SnowflakeID `json:"labour_id"`
	LabourCode string            `json:"labour_code"`
	Created    bool              `json:"created"`
	SkipReason string            `json:"skip_reason,omitempty"`
}

// BulkEntry records gate-in for a batch of labours. Eligibility is decided
// against one snapshot of labours and open logs taken at the start, and every
// eligible labour is persisted even when others in the batch are skipped.
func (s *EntryLogService) BulkEntry(req BulkEntryRequest, userID int) ([]BulkEntryResult, error) {
	results := make([]BulkEntryResult, 0, len(req.LabourIds))
	now := time.Now().Format(timestampLayout)

	ids := make([]int64, len(req.LabourIds))
	for i, sid := range req.LabourIds {
		ids[i] = int64(sid)
	}

	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		labours, err := s.repo.LaboursByIDs(tx, ids)
		if err != nil {
			return err
		}
		open, err := s.repo.OpenLogsByLabourIDs(tx, ids)
		if err != nil {
			return err
		}

		for _, sid := range req.LabourIds {
			id := int64(sid)
			labour, ok := labours[id]
			if !ok || !labour.IsActive {
				results = append(results, BulkEntryResult{LabourId: sid, SkipReason: SkipReasonUnknownLabour})
				continue
			}
			if _, inside := open[id]; inside {
				results = append(results, BulkEntryResult{LabourId: sid, LabourCode: labour.LabourCode, SkipReason: SkipReasonAlreadyInside})
				continue
			}
			log := models.EntryLog{
				PersonType: models.PersonTypeLabour,
				LabourId:   id,
				Status:     models.EntryLogStatusIn,
				Purpose:    req.Purpose,
				GateNo:     req.GateNo,
				InAt:       now,
				CreatedBy:  userID,
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
			results = append(results, BulkEntryResult{LabourId: sid, LabourCode: labour.LabourCode, Created: true})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

type BulkExitRequest struct {
	LabourIds []types.SnowflakeID `json:"labour_ids" validate:"required,min=1"`
}

// BulkExit closes the open IN log of each labour in the batch. Labours with
// no open log are skipped, not failed.
func (s *EntryLogService) BulkExit(req BulkExitRequest, userID int) ([]BulkEntryResult, error) {
	results := make([]BulkEntryResult, 0, len(req.LabourIds))
	now := time.Now().Format(timestampLayout)

	ids := make([]int64, len(req.LabourIds))
	for i, sid := range req.LabourIds {
		ids[i] = int64(sid)
	}

	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		labours, err := s.repo.LaboursByIDs(tx, ids)
		if err != nil {
			return err
		}
		open, err := s.repo.OpenLogsByLabourIDs(tx, ids)
		if err != nil {
			return err
		}

		for _, sid := range req.LabourIds {
			id := int64(sid)
			labour, known := labours[id]
			log, inside := open[id]
			if !inside {
				r := BulkEntryResult{LabourId: sid, SkipReason: SkipReasonNotInside}
				if known {
					r.LabourCode = labour.LabourCode
				}
				results = append(results, r)
				continue
			}
			err := tx.Model(&models.EntryLog{}).
				Where("id = ? AND status = ?", log.ID, models.EntryLogStatusIn).
				Updates(map[string]interface{}{
					"status":     models.EntryLogStatusOut,
					"out_at":     now,
					"updated_by": userID,
				}).Error
			if err != nil {
				return err
			}
			r := BulkEntryResult{LabourId: sid, Created: true}
			if known {
				r.LabourCode = labour.LabourCode
			}
			results = append(results, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CancelLog voids a mistaken entry log without recording an exit.
func (s *EntryLogService) CancelLog(id int64, userID int) error {
	res := s.repo.DB().Model(&models.EntryLog{}).
		Where("id = ? AND status = ?", id, models.EntryLogStatusIn).
		Updates(map[string]interface{}{
			"status":     models.EntryLogStatusCancelled,
			"updated_by": userID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "entry log"}
	}
	return nil
}

func (s *EntryLogService) ListLogs(filter repositories.EntryLogFilter) ([]models.EntryLog, error) {
	return s.repo.ListLogs(filter)
}

type SaveLabourRequest struct {
	LabourCode     string `json:"labour_code" validate:"required"`
	Name           string `json:"name" validate:"required"`
	ContractorName string `json:"contractor_name"`
	Phone          string `json:"phone"`
	IsActive       *bool  `json:"is_active"`
}

func (s *EntryLogService) CreateLabour(req SaveLabourRequest, userID int) (*models.Labour, error) {
	labour := models.Labour{
		LabourCode:     req.LabourCode,
		Name:           req.Name,
		ContractorName: req.ContractorName,
		Phone:          req.Phone,
		IsActive:       true,
		CreatedBy:      userID,
	}
	if req.IsActive != nil {
		labour.IsActive = *req.IsActive
	}
	if err := s.repo.DB().Create(&labour).Error; err != nil {
		return nil, err
	}
	return &labour, nil
}

func (s *EntryLogService) UpdateLabour(id int64, req SaveLabourRequest, userID int) (*models.Labour, error) {
	labour, err := s.repo.GetLabour(id)
	if err != nil {
		return nil, err
	}
	labour.LabourCode = req.LabourCode
	labour.Name = req.Name
	labour.ContractorName = req.ContractorName
	labour.Phone = req.Phone
	if req.IsActive != nil {
		labour.IsActive = *req.IsActive
	}
	labour.UpdatedBy = userID
	if err := s.repo.DB().Save(labour).Error; err != nil {
		return nil, err
	}
	return labour, nil
}

func (s *EntryLogService) ListLabours(activeOnly bool) ([]models.Labour, error) {
	return s.repo.ListLabours(activeOnly)
}
