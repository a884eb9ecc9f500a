package services

import (
	"errors"
	"fmt"
	"gate-app/models"
	"gate-app/repositories"
	"gate-app/sap"
	"gate-app/types"
	"gate-app/utils"
	"time"

	"gorm.io/gorm"
)

// SAPGateway is the slice of the SAP client the GRPO pipeline needs.
type SAPGateway interface {
	PostGRPO(doc sap.GRPODocument) (*sap.GRPOResult, error)
	UploadAttachment(filePath string) (int, error)
	LinkAttachment(docEntry, absoluteEntry int) error
}

// GatewayProvider resolves the SAP gateway for a company code.
type GatewayProvider func(companyCode string) (SAPGateway, error)

type GRPOService struct {
	repo      *repositories.GRPORepository
	entryRepo *repositories.GateEntryRepository
	gateway   GatewayProvider
	notifier  *Notifier
}

func NewGRPOService(repo *repositories.GRPORepository, entryRepo *repositories.GateEntryRepository, gateway GatewayProvider, notifier *Notifier) *GRPOService {
	return &GRPOService{repo: repo, entryRepo: entryRepo, gateway: gateway, notifier: notifier}
}

type PostGRPOItem struct {
	POItemReceiptId types.SnowflakeID `json:"po_item_receipt_id" validate:"required"`
	AcceptedQty     float64           `json:"accepted_qty"`
}

type PostGRPORequest struct {
	POReceiptId types.SnowflakeID `json:"po_receipt_id" validate:"required"`
	Comments    string            `json:"comments"`
	Items       []PostGRPOItem    `json:"items" validate:"required,min=1"`
}

// PostGRPO posts one PO receipt's accepted quantities to SAP. Local quantity
// persistence, the idempotency guard and document building happen in one
// transaction before the remote call; the remote outcome is then recorded
// durably whether it succeeded or failed.
func (s *GRPOService) PostGRPO(entryID int64, req PostGRPORequest, userID int) (*models.GRPOPosting, error) {
	var (
		posting *models.GRPOPosting
		doc     sap.GRPODocument
		lines   []models.GRPOLinePosting
		company string
	)

	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		entry, err := s.entryRepo.GetByID(tx, entryID)
		if err != nil {
			return err
		}
		if entry.Status != models.EntryStatusCompleted && entry.Status != models.EntryStatusQCCompleted {
			return &models.ValidationError{
				Field:  "status",
				Detail: "GRPO can only be posted for QC_COMPLETED or COMPLETED entries",
			}
		}
		company = entry.CompanyCode

		var receipt *models.POReceipt
		for i := range entry.POReceipts {
			if entry.POReceipts[i].ID == int64(req.POReceiptId) {
				receipt = &entry.POReceipts[i]
				break
			}
		}
		if receipt == nil {
			return &models.NotFoundError{Entity: "PO receipt"}
		}

		existing, err := s.repo.FindForPair(tx, entryID, int64(req.POReceiptId))
		if err != nil {
			return err
		}
		if err := validateRepost(existing, receipt.PONumber); err != nil {
			return err
		}

		// Persist accepted/rejected on every item before the remote call.
		itemsByID := make(map[int64]*models.POItemReceipt, len(receipt.Items))
		for i := range receipt.Items {
			itemsByID[receipt.Items[i].ID] = &receipt.Items[i]
		}
		for _, in := range req.Items {
			item, ok := itemsByID[int64(in.POItemReceiptId)]
			if !ok {
				return &models.NotFoundError{Entity: "PO item receipt"}
			}
			if in.AcceptedQty < 0 || in.AcceptedQty > item.ReceivedQty {
				return &models.ValidationError{
					Field:  "accepted_qty",
					Detail: fmt.Sprintf("must be between 0 and received quantity for item %s", item.ItemCode),
				}
			}
			item.AcceptedQty = in.AcceptedQty
			item.UpdatedBy = userID
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		doc, lines = BuildGRPODocument(receipt, req.Comments)
		if len(doc.DocumentLines) == 0 {
			return &models.ValidationError{Field: "items", Detail: "No accepted quantities to post"}
		}

		if existing != nil {
			posting = existing
			posting.CompanyCode = company
			posting.Status = models.GRPOStatusPending
			posting.ErrorCategory = ""
			posting.ErrorMessage = ""
			posting.UpdatedBy = userID
			return tx.Save(posting).Error
		}
		posting = &models.GRPOPosting{
			VehicleEntryId: entryID,
			POReceiptId:    int64(req.POReceiptId),
			CompanyCode:    company,
			Status:         models.GRPOStatusPending,
			CreatedBy:      userID,
		}
		return tx.Create(posting).Error
	})
	if err != nil {
		return nil, err
	}

	gateway, err := s.gateway(company)
	if err != nil {
		s.markFailed(posting.ID, company, err)
		return nil, err
	}

	result, err := gateway.PostGRPO(doc)
	if err != nil {
		// Durable failure first, then surface the original error.
		s.markFailed(posting.ID, company, err)
		s.notifier.Notify(Event{
			Name:    EventGRPOFailed,
			Subject: fmt.Sprintf("posting %d", posting.ID),
			Detail:  map[string]string{"company_code": company, "error": err.Error()},
		})
		return nil, err
	}

	err = s.repo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GRPOPosting{}).
			Where("id = ?", posting.ID).
			Updates(map[string]interface{}{
				"status":         models.GRPOStatusPosted,
				"sap_doc_entry":  result.DocEntry,
				"sap_doc_num":    result.DocNum,
				"sap_doc_total":  result.DocTotal,
				"error_category": "",
				"error_message":  "",
				"posted_by":      userID,
				"posted_at":      time.Now().Format(timestampLayout),
			}).Error; err != nil {
			return err
		}
		for _, line := range lines {
			line.GRPOPostingId = posting.ID
			line.CreatedBy = userID
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InsertLog(s.repo.DB(), models.IntegrationLog{
		CompanyCode: company,
		ProcessName: "GRPO_POST",
		RecordKey:   fmt.Sprintf("%d", posting.ID),
		LogLevel:    "INFO",
		Message:     fmt.Sprintf("posted GRPO DocEntry=%d DocNum=%d", result.DocEntry, result.DocNum),
	})
	s.notifier.Notify(Event{
		Name:    EventGRPOPosted,
		Subject: fmt.Sprintf("posting %d", posting.ID),
		Detail: map[string]string{
			"company_code": company,
			"doc_num":      fmt.Sprintf("%d", result.DocNum),
		},
	})

	return s.repo.GetByID(s.repo.DB(), posting.ID)
}

// validateRepost is the idempotency guard: PENDING and FAILED records are
// reused for another attempt, but once a remote document exists (POSTED, or
// PARTIALLY_POSTED with attachment evidence still missing) a second post is
// rejected.
func validateRepost(existing *models.GRPOPosting, poNumber string) error {
	if existing == nil {
		return nil
	}
	switch existing.Status {
	case models.GRPOStatusPosted, models.GRPOStatusPartiallyPosted:
		return &models.ConflictError{Detail: fmt.Sprintf("GRPO already posted for PO %s", poNumber)}
	}
	return nil
}

// BuildGRPODocument renders the remote document from a receipt's accepted
// quantities. Items without accepted quantity are omitted entirely, and PO
// linkage fields ride on each line when the receipt knows its base document.
func BuildGRPODocument(receipt *models.POReceipt, comments string) (sap.GRPODocument, []models.GRPOLinePosting) {
	doc := sap.GRPODocument{
		CardCode: receipt.SupplierCode,
		Comments: comments,
	}
	var lines []models.GRPOLinePosting

	for _, item := range receipt.Items {
		if item.AcceptedQty <= 0 {
			continue
		}
		line := sap.DocumentLine{
			ItemCode:      item.ItemCode,
			Quantity:      item.AcceptedQty,
			UnitPrice:     item.UnitPrice,
			TaxCode:       item.TaxCode,
			WarehouseCode: item.WhsCode,
		}
		baseLine := item.BaseLine
		if receipt.DocEntry > 0 {
			line.BaseType = sap.BaseTypePurchaseOrder
			line.BaseEntry = receipt.DocEntry
			line.BaseLine = &baseLine
		}
		doc.DocumentLines = append(doc.DocumentLines, line)

		lines = append(lines, models.GRPOLinePosting{
			POItemReceiptId: item.ID,
			ItemCode:        item.ItemCode,
			PostedQty:       item.AcceptedQty,
			BaseEntry:       receipt.DocEntry,
			BaseLine:        item.BaseLine,
		})
	}
	return doc, lines
}

// markFailed persists the failure class and message on the posting record so
// the failure is visible and retryable, not just an in-flight error.
func (s *GRPOService) markFailed(postingID int64, company string, cause error) {
	category := ClassifySAPError(cause)
	s.repo.DB().Model(&models.GRPOPosting{}).
		Where("id = ?", postingID).
		Updates(map[string]interface{}{
			"status":         models.GRPOStatusFailed,
			"error_category": category,
			"error_message":  cause.Error(),
		})
	utils.InsertLog(s.repo.DB(), models.IntegrationLog{
		CompanyCode: company,
		ProcessName: "GRPO_POST",
		RecordKey:   fmt.Sprintf("%d", postingID),
		LogLevel:    "ERROR",
		Message:     cause.Error(),
	})
}

// ClassifySAPError maps a SAP failure to its persisted category.
func ClassifySAPError(err error) string {
	var (
		connErr  *sap.ConnectionError
		validErr *sap.ValidationError
		dataErr  *sap.DataError
	)
	switch {
	case errors.As(err, &connErr):
		return "connection"
	case errors.As(err, &validErr):
		return "validation"
	case errors.As(err, &dataErr):
		return "data"
	default:
		return "internal"
	}
}

type AddAttachmentRequest struct {
	FileName string `json:"file_name" validate:"required"`
	FilePath string `json:"file_path" validate:"required"`
}

// AddAttachment registers a stored file against a posting, pending upload.
func (s *GRPOService) AddAttachment(postingID int64, req AddAttachmentRequest, userID int) (*models.GRPOAttachment, error) {
	var attachment *models.GRPOAttachment
	err := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.GetByID(tx, postingID); err != nil {
			return err
		}
		attachment = &models.GRPOAttachment{
			GRPOPostingId: postingID,
			FileName:      req.FileName,
			FilePath:      req.FilePath,
			Status:        models.AttachmentStatusPending,
			UploadedBy:    userID,
			CreatedBy:     userID,
		}
		return tx.Create(attachment).Error
	})
	if err != nil {
		return nil, err
	}
	return attachment, nil
}

// PlanAttachmentWork decides what remote work one attachment run still owes.
// An attachment already LINKED rejects further attempts; one that already
// holds a remote reference from an earlier run skips the upload and only owes
// the link, so no duplicate remote artifacts are ever created.
func PlanAttachmentWork(attachment *models.GRPOAttachment, posting *models.GRPOPosting) (uploadNeeded bool, err error) {
	if attachment.Status == models.AttachmentStatusLinked {
		return false, &models.ConflictError{Detail: "attachment already linked"}
	}
	if posting.Status != models.GRPOStatusPosted && posting.Status != models.GRPOStatusPartiallyPosted {
		return false, &models.ValidationError{Field: "posting", Detail: "attachments can only be linked to a posted GRPO"}
	}
	if posting.SapDocEntry == 0 {
		return false, &models.ValidationError{Field: "posting", Detail: "attachments can only be linked to a posted GRPO"}
	}
	return attachment.SapAbsoluteEntry == 0, nil
}

// ProcessAttachment drives one attachment through upload and link, doing only
// the remote work PlanAttachmentWork says is still owed.
func (s *GRPOService) ProcessAttachment(attachmentID int64, userID int) error {
	attachment, err := s.repo.GetAttachment(s.repo.DB(), attachmentID)
	if err != nil {
		return err
	}
	posting, err := s.repo.GetByID(s.repo.DB(), attachment.GRPOPostingId)
	if err != nil {
		return err
	}
	uploadNeeded, err := PlanAttachmentWork(attachment, posting)
	if err != nil {
		return err
	}

	gateway, err := s.gateway(posting.CompanyCode)
	if err != nil {
		return err
	}

	if uploadNeeded {
		absoluteEntry, err := gateway.UploadAttachment(attachment.FilePath)
		if err != nil {
			s.failAttachment(attachment, posting.CompanyCode, err)
			return err
		}
		attachment.SapAbsoluteEntry = absoluteEntry
		// The remote reference must survive a later link failure.
		if err := s.repo.DB().Model(&models.GRPOAttachment{}).
			Where("id = ?", attachment.ID).
			Updates(map[string]interface{}{
				"status":             models.AttachmentStatusUploaded,
				"sap_absolute_entry": absoluteEntry,
				"error_message":      "",
				"updated_by":         userID,
			}).Error; err != nil {
			return err
		}
	}

	if err := gateway.LinkAttachment(posting.SapDocEntry, attachment.SapAbsoluteEntry); err != nil {
		s.failAttachment(attachment, posting.CompanyCode, err)
		return err
	}

	if err := s.repo.DB().Model(&models.GRPOAttachment{}).
		Where("id = ?", attachment.ID).
		Updates(map[string]interface{}{
			"status":        models.AttachmentStatusLinked,
			"error_message": "",
			"updated_by":    userID,
		}).Error; err != nil {
		return err
	}

	// Once no attachment is left FAILED the posting's evidence is complete
	// again.
	var failedLeft int64
	s.repo.DB().Model(&models.GRPOAttachment{}).
		Where("grpo_posting_id = ? AND status = ?", posting.ID, models.AttachmentStatusFailed).
		Count(&failedLeft)
	if failedLeft == 0 {
		s.repo.DB().Model(&models.GRPOPosting{}).
			Where("id = ? AND status = ?", posting.ID, models.GRPOStatusPartiallyPosted).
			Update("status", models.GRPOStatusPosted)
	}
	return nil
}

// failAttachment records the failure on the attachment and demotes a POSTED
// posting to PARTIALLY_POSTED: the document exists in SAP but its attachment
// evidence is incomplete until a retry succeeds.
func (s *GRPOService) failAttachment(attachment *models.GRPOAttachment, company string, cause error) {
	s.repo.DB().Model(&models.GRPOAttachment{}).
		Where("id = ?", attachment.ID).
		Updates(map[string]interface{}{
			"status":             models.AttachmentStatusFailed,
			"sap_absolute_entry": attachment.SapAbsoluteEntry,
			"error_message":      cause.Error(),
		})
	s.repo.DB().Model(&models.GRPOPosting{}).
		Where("id = ? AND status = ?", attachment.GRPOPostingId, models.GRPOStatusPosted).
		Update("status", models.GRPOStatusPartiallyPosted)
	utils.InsertLog(s.repo.DB(), models.IntegrationLog{
		CompanyCode: company,
		ProcessName: "GRPO_ATTACHMENT",
		RecordKey:   fmt.Sprintf("%d", attachment.ID),
		LogLevel:    "ERROR",
		Message:     cause.Error(),
	})
}

func (s *GRPOService) GetPosting(id int64) (*models.GRPOPosting, error) {
	return s.repo.GetByID(s.repo.DB(), id)
}

func (s *GRPOService) ListPostings(status string) ([]models.GRPOPosting, error) {
	return s.repo.List(status)
}

// RetryFailed re-drives every FAILED posting and attachment, used by the
// retry job. Postings marked FAILED keep their persisted request state, so a
// retry simply replays the post with the already accepted quantities.
func (s *GRPOService) RetryFailed(userID int) (retried, failed int) {
	postings, err := s.repo.List(models.GRPOStatusFailed)
	if err != nil {
		return 0, 0
	}
	for _, p := range postings {
		items := make([]PostGRPOItem, 0)
		var receipt models.POReceipt
		if err := s.repo.DB().Preload("Items").First(&receipt, p.POReceiptId).Error; err != nil {
			failed++
			continue
		}
		for _, item := range receipt.Items {
			items = append(items, PostGRPOItem{POItemReceiptId: types.SnowflakeID(item.ID), AcceptedQty: item.AcceptedQty})
		}
		if _, err := s.PostGRPO(p.VehicleEntryId, PostGRPORequest{
			POReceiptId: types.SnowflakeID(p.POReceiptId),
			Items:       items,
		}, userID); err != nil {
			failed++
			continue
		}
		retried++
	}

	attachments, err := s.repo.FailedAttachments()
	if err != nil {
		return retried, failed
	}
	for _, a := range attachments {
		if err := s.ProcessAttachment(a.ID, userID); err != nil {
			failed++
			continue
		}
		retried++
	}
	return retried, failed
}
