package repositories

import (
	"errors"
	"gate-app/models"

	"gorm.io/gorm"
)

type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) DB() *gorm.DB {
	return r.db
}

func (r *InspectionRepository) GetByID(tx *gorm.DB, id int64) (*models.RawMaterialInspection, error) {
	var inspection models.RawMaterialInspection
	err := tx.Preload("Parameters").First(&inspection, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "inspection"}
		}
		return nil, err
	}
	return &inspection, nil
}

func (r *InspectionRepository) GetPOItem(tx *gorm.DB, id int64) (*models.POItemReceipt, error) {
	var item models.POItemReceipt
	err := tx.Preload("ArrivalSlip").Preload("Inspection").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "PO item receipt"}
		}
		return nil, err
	}
	return &item, nil
}

func (r *InspectionRepository) List(status string) ([]models.RawMaterialInspection, error) {
	q := r.db.Model(&models.RawMaterialInspection{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var inspections []models.RawMaterialInspection
	if err := q.Order("created_at desc").Find(&inspections).Error; err != nil {
		return nil, err
	}
	return inspections, nil
}

// ActiveParameters loads the checklist definition for a material type.
func (r *InspectionRepository) ActiveParameters(tx *gorm.DB, materialTypeID int) ([]models.QCParameterMaster, error) {
	var params []models.QCParameterMaster
	err := tx.Where("material_type_id = ? AND is_active = ?", materialTypeID, true).
		Order("sort_order asc").
		Find(&params).Error
	return params, err
}

// GuardedTransition applies one approval step as a single conditional UPDATE:
// the status change, the actor fields and the lock test all ride on the same
// statement, so a half-applied approval cannot exist.
func (r *InspectionRepository) GuardedTransition(tx *gorm.DB, id int64, oldStatus, newStatus string, updates map[string]interface{}) error {
	if err := models.ValidateInspectionTransition(oldStatus, newStatus); err != nil {
		return err
	}

	updates["status"] = newStatus
	res := tx.Model(&models.RawMaterialInspection{}).
		Where("id = ? AND is_locked = ? AND status = ?", id, false, oldStatus).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var inspection models.RawMaterialInspection
		if err := tx.Select("id", "status", "is_locked").First(&inspection, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "inspection"}
			}
			return err
		}
		if inspection.IsLocked {
			return &models.LockedEntryError{Entity: "inspection", ID: id}
		}
		return &models.InvalidTransitionError{From: inspection.Status, To: newStatus}
	}
	return nil
}

// EntryForPOItem walks up from a PO item to its gate entry id.
func (r *InspectionRepository) EntryForPOItem(tx *gorm.DB, poItemReceiptID int64) (int64, error) {
	var receipt models.POReceipt
	err := tx.Select("po_receipts.id", "po_receipts.vehicle_entry_id").
		Joins("INNER JOIN po_item_receipts ON po_item_receipts.po_receipt_id = po_receipts.id").
		Where("po_item_receipts.id = ?", poItemReceiptID).
		First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &models.NotFoundError{Entity: "PO receipt"}
		}
		return 0, err
	}
	return receipt.VehicleEntryId, nil
}
