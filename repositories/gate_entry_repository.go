package repositories

import (
	"errors"
	"gate-app/models"

	"gorm.io/gorm"
)

type GateEntryRepository struct {
	db *gorm.DB
}

func NewGateEntryRepository(db *gorm.DB) *GateEntryRepository {
	return &GateEntryRepository{db: db}
}

func (r *GateEntryRepository) DB() *gorm.DB {
	return r.db
}

// GetByID loads an entry with every owned relation, so the completion rules
// can run over one consistent snapshot.
func (r *GateEntryRepository) GetByID(tx *gorm.DB, id int64) (*models.VehicleEntry, error) {
	var entry models.VehicleEntry
	err := tx.
		Preload("SecurityCheck").
		Preload("Weighment").
		Preload("DailyNeedEntry").
		Preload("MaintenanceEntry").
		Preload("ConstructionEntry").
		Preload("POReceipts").
		Preload("POReceipts.Items").
		Preload("POReceipts.Items.ArrivalSlip").
		Preload("POReceipts.Items.Inspection").
		First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "gate entry"}
		}
		return nil, err
	}
	return &entry, nil
}

type ListEntryFilter struct {
	EntryType string
	Status    string
	DateFrom  string
	DateTo    string
}

func (r *GateEntryRepository) List(filter ListEntryFilter) ([]models.VehicleEntry, error) {
	q := r.db.Model(&models.VehicleEntry{}).Preload("Weighment")
	if filter.EntryType != "" {
		q = q.Where("entry_type = ?", filter.EntryType)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		q = q.Where("created_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("created_at <= ?", filter.DateTo)
	}

	var entries []models.VehicleEntry
	if err := q.Order("created_at desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GuardedUpdate applies field updates only while the entry is unlocked. The
// lock test and the write are one conditional UPDATE, so there is no window
// between reading the flag and writing.
func (r *GateEntryRepository) GuardedUpdate(tx *gorm.DB, id int64, updates map[string]interface{}) error {
	res := tx.Model(&models.VehicleEntry{}).
		Where("id = ? AND is_locked = ?", id, false).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.VehicleEntry{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return &models.NotFoundError{Entity: "gate entry"}
		}
		return &models.LockedEntryError{Entity: "gate entry", ID: id}
	}
	return nil
}

// TransitionStatus validates the transition against the whitelist and then
// applies it with the same conditional-update lock guard, also requiring the
// status column still to hold the expected old value.
func (r *GateEntryRepository) TransitionStatus(tx *gorm.DB, id int64, oldStatus, newStatus string) error {
	if err := models.ValidateEntryTransition(oldStatus, newStatus); err != nil {
		return err
	}

	res := tx.Model(&models.VehicleEntry{}).
		Where("id = ? AND is_locked = ? AND status = ?", id, false, oldStatus).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var entry models.VehicleEntry
		if err := tx.Select("id", "status", "is_locked").First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "gate entry"}
			}
			return err
		}
		if entry.IsLocked {
			return &models.LockedEntryError{Entity: "gate entry", ID: id}
		}
		return &models.InvalidTransitionError{From: entry.Status, To: newStatus}
	}
	return nil
}

// Lock sets the immutability flag and stamps the actor in the same guarded
// statement. Once set no code path clears it.
func (r *GateEntryRepository) Lock(tx *gorm.DB, id int64, userID int) error {
	res := tx.Model(&models.VehicleEntry{}).
		Where("id = ? AND is_locked = ?", id, false).
		Updates(map[string]interface{}{
			"is_locked":  true,
			"updated_by": userID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &models.LockedEntryError{Entity: "gate entry", ID: id}
	}
	return nil
}
