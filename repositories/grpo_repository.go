package repositories

import (
	"errors"
	"gate-app/models"

	"gorm.io/gorm"
)

type GRPORepository struct {
	db *gorm.DB
}

func NewGRPORepository(db *gorm.DB) *GRPORepository {
	return &GRPORepository{db: db}
}

func (r *GRPORepository) DB() *gorm.DB {
	return r.db
}

func (r *GRPORepository) GetByID(tx *gorm.DB, id int64) (*models.GRPOPosting, error) {
	var posting models.GRPOPosting
	err := tx.Preload("Lines").Preload("Attachments").First(&posting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "GRPO posting"}
		}
		return nil, err
	}
	return &posting, nil
}

// FindForPair returns the posting record for an (entry, PO receipt) pair when
// one exists. Re-attempts reuse this record until it reaches POSTED.
func (r *GRPORepository) FindForPair(tx *gorm.DB, entryID, poReceiptID int64) (*models.GRPOPosting, error) {
	var posting models.GRPOPosting
	err := tx.Where("vehicle_entry_id = ? AND po_receipt_id = ?", entryID, poReceiptID).
		First(&posting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &posting, nil
}

func (r *GRPORepository) GetAttachment(tx *gorm.DB, id int64) (*models.GRPOAttachment, error) {
	var attachment models.GRPOAttachment
	err := tx.First(&attachment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "GRPO attachment"}
		}
		return nil, err
	}
	return &attachment, nil
}

func (r *GRPORepository) List(status string) ([]models.GRPOPosting, error) {
	q := r.db.Model(&models.GRPOPosting{}).Preload("Lines").Preload("Attachments")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var postings []models.GRPOPosting
	if err := q.Order("created_at desc").Find(&postings).Error; err != nil {
		return nil, err
	}
	return postings, nil
}

// FailedAttachments lists attachments awaiting a retry.
func (r *GRPORepository) FailedAttachments() ([]models.GRPOAttachment, error) {
	var attachments []models.GRPOAttachment
	err := r.db.Where("status = ?", models.AttachmentStatusFailed).Find(&attachments).Error
	return attachments, err
}
