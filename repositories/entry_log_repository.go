package repositories

import (
	"errors"
	"gate-app/models"

	"gorm.io/gorm"
)

type EntryLogRepository struct {
	db *gorm.DB
}

func NewEntryLogRepository(db *gorm.DB) *EntryLogRepository {
	return &EntryLogRepository{db: db}
}

func (r *EntryLogRepository) DB() *gorm.DB {
	return r.db
}

// LaboursByIDs fetches the requested labours in one query.
func (r *EntryLogRepository) LaboursByIDs(tx *gorm.DB, ids []int64) (map[int64]models.Labour, error) {
	var labours []models.Labour
	if err := tx.Where("id IN ?", ids).Find(&labours).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]models.Labour, len(labours))
	for _, l := range labours {
		out[l.ID] = l
	}
	return out, nil
}

// OpenLogsByLabourIDs fetches every IN log for the requested labours in one
// query, keyed by labour id.
func (r *EntryLogRepository) OpenLogsByLabourIDs(tx *gorm.DB, ids []int64) (map[int64]models.EntryLog, error) {
	var logs []models.EntryLog
	err := tx.Where("labour_id IN ? AND status = ?", ids, models.EntryLogStatusIn).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int64]models.EntryLog, len(logs))
	for _, l := range logs {
		out[l.LabourId] = l
	}
	return out, nil
}

func (r *EntryLogRepository) GetLabour(id int64) (*models.Labour, error) {
	var labour models.Labour
	if err := r.db.First(&labour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "labour"}
		}
		return nil, err
	}
	return &labour, nil
}

func (r *EntryLogRepository) ListLabours(activeOnly bool) ([]models.Labour, error) {
	q := r.db.Model(&models.Labour{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var labours []models.Labour
	if err := q.Order("labour_code").Find(&labours).Error; err != nil {
		return nil, err
	}
	return labours, nil
}

type EntryLogFilter struct {
	Status   string
	DateFrom string
	DateTo   string
}

func (r *EntryLogRepository) ListLogs(filter EntryLogFilter) ([]models.EntryLog, error) {
	q := r.db.Model(&models.EntryLog{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		q = q.Where("in_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("in_at <= ?", filter.DateTo)
	}
	var logs []models.EntryLog
	if err := q.Order("in_at desc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
