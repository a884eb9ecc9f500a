package models

import (
	"gate-app/controllers/idgen"

	"gorm.io/gorm"
)

// GRPO posting statuses
const (
	GRPOStatusPending         = "PENDING"
	GRPOStatusPosted          = "POSTED"
	GRPOStatusFailed          = "FAILED"
	GRPOStatusPartiallyPosted = "PARTIALLY_POSTED"
)

// GRPO attachment statuses
const (
	AttachmentStatusPending  = "PENDING"
	AttachmentStatusUploaded = "UPLOADED"
	AttachmentStatusLinked   = "LINKED"
	AttachmentStatusFailed   = "FAILED"
)

// GRPOPosting is one posting attempt of a PO receipt's accepted quantities.
// At most one record exists per (entry, PO receipt) pair; re-attempts reuse
// the same record until it is POSTED.
type GRPOPosting struct {
	gorm.Model
	ID             int64   `json:"id" gorm:"primary_key"`
	VehicleEntryId int64   `json:"vehicle_entry_id" gorm:"index:idx_grpo_entry_po,unique"`
	POReceiptId    int64   `json:"po_receipt_id" gorm:"index:idx_grpo_entry_po,unique"`
	CompanyCode    string  `json:"company_code"`
	Status         string  `json:"status" gorm:"default:'PENDING'"`
	SapDocEntry    int     `json:"sap_doc_entry"`
	SapDocNum      int     `json:"sap_doc_num"`
	SapDocTotal    float64 `json:"sap_doc_total"`
	ErrorCategory  string  `json:"error_category"`
	ErrorMessage   string  `json:"error_message"`
	PostedBy       int     `json:"posted_by"`
	PostedAt       string  `json:"posted_at"`
	CreatedBy      int
	UpdatedBy      int

	Lines       []GRPOLinePosting `gorm:"foreignKey:GRPOPostingId;references:ID" json:"lines"`
	Attachments []GRPOAttachment  `gorm:"foreignKey:GRPOPostingId;references:ID" json:"attachments"`
}

func (g *GRPOPosting) BeforeCreate(tx *gorm.DB) (err error) {
	g.ID = idgen.GenerateID()
	return
}

// GRPOLinePosting records the SAP base-document linkage of one posted line.
type GRPOLinePosting struct {
	gorm.Model
	GRPOPostingId   int64   `json:"grpo_posting_id" gorm:"index"`
	POItemReceiptId int64   `json:"po_item_receipt_id"`
	ItemCode        string  `json:"item_code"`
	PostedQty       float64 `json:"posted_qty"`
	BaseEntry       int     `json:"base_entry"`
	BaseLine        int     `json:"base_line"`
	CreatedBy       int
}

type GRPOAttachment struct {
	gorm.Model
	ID               int64  `json:"id" gorm:"primary_key"`
	GRPOPostingId    int64  `json:"grpo_posting_id" gorm:"index"`
	FileName         string `json:"file_name"`
	FilePath         string `json:"file_path"`
	Status           string `json:"status" gorm:"default:'PENDING'"`
	SapAbsoluteEntry int    `json:"sap_absolute_entry"`
	ErrorMessage     string `json:"error_message"`
	UploadedBy       int    `json:"uploaded_by"`
	CreatedBy        int
	UpdatedBy        int
}

func (a *GRPOAttachment) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = idgen.GenerateID()
	return
}
