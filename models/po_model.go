package models

import (
	"gate-app/controllers/idgen"

	"gorm.io/gorm"
)

// OverReceiptTolerance is the fixed over-receipt factor: received quantity may
// exceed the ordered quantity by at most 10%.
const OverReceiptTolerance = 1.10

type POReceipt struct {
	gorm.Model
	ID             int64  `json:"id" gorm:"primary_key"`
	VehicleEntryId int64  `json:"vehicle_entry_id" gorm:"index:idx_po_receipt_entry_po,unique"`
	PONumber       string `json:"po_number" gorm:"index:idx_po_receipt_entry_po,unique"`
	SupplierCode   string `json:"supplier_code"`
	SupplierName   string `json:"supplier_name"`
	DocEntry       int    `json:"doc_entry"`
	InvoiceNo      string `json:"invoice_no"`
	CreatedBy      int
	UpdatedBy      int

	Items []POItemReceipt `gorm:"foreignKey:POReceiptId;references:ID" json:"items"`
}

func (p *POReceipt) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = idgen.GenerateID()
	return
}

type POItemReceipt struct {
	gorm.Model
	ID          int64   `json:"id" gorm:"primary_key"`
	POReceiptId int64   `json:"po_receipt_id" gorm:"index"`
	ItemCode    string  `json:"item_code"`
	ItemName    string  `json:"item_name"`
	Uom         string  `json:"uom"`
	WhsCode     string  `json:"whs_code"`
	UnitPrice   float64 `json:"unit_price"`
	TaxCode     string  `json:"tax_code"`
	BaseLine    int     `json:"base_line"`
	OrderedQty  float64 `json:"ordered_qty"`
	ReceivedQty float64 `json:"received_qty"`
	AcceptedQty float64 `json:"accepted_qty"`
	RejectedQty float64 `json:"rejected_qty"`
	ShortQty    float64 `json:"short_qty"`
	CreatedBy   int
	UpdatedBy   int

	ArrivalSlip *MaterialArrivalSlip   `gorm:"foreignKey:POItemReceiptId;references:ID" json:"arrival_slip"`
	Inspection  *RawMaterialInspection `gorm:"foreignKey:POItemReceiptId;references:ID" json:"inspection"`
}

func (i *POItemReceipt) BeforeCreate(tx *gorm.DB) (err error) {
	i.ID = idgen.GenerateID()
	i.Recalculate()
	return
}

// Derived quantities are recomputed on every save and never accepted from the
// caller.
func (i *POItemReceipt) BeforeSave(tx *gorm.DB) (err error) {
	i.Recalculate()
	return
}

func (i *POItemReceipt) Recalculate() {
	i.ShortQty = i.OrderedQty - i.ReceivedQty
	i.RejectedQty = i.ReceivedQty - i.AcceptedQty
}

// ValidateReceivedQty enforces the fixed over-receipt tolerance before any
// item row is persisted.
func ValidateReceivedQty(orderedQty, receivedQty float64) error {
	if receivedQty <= 0 {
		return &ValidationError{Field: "received_qty", Detail: "must be greater than zero"}
	}
	if receivedQty > orderedQty*OverReceiptTolerance {
		return &ValidationError{
			Field:  "received_qty",
			Detail: "exceeds 110% of ordered quantity",
		}
	}
	return nil
}

// Arrival slip statuses
const (
	ArrivalSlipStatusDraft     = "DRAFT"
	ArrivalSlipStatusSubmitted = "SUBMITTED"
	ArrivalSlipStatusRejected  = "REJECTED"
)

type MaterialArrivalSlip struct {
	gorm.Model
	ID              int64  `json:"id" gorm:"primary_key"`
	POItemReceiptId int64  `json:"po_item_receipt_id" gorm:"uniqueIndex"`
	Status          string `json:"status" gorm:"default:'DRAFT'"`
	IsSubmitted     bool   `json:"is_submitted" gorm:"default:false"`
	TransporterName string `json:"transporter_name"`
	LrNo            string `json:"lr_no"`
	ChallanNo       string `json:"challan_no"`
	BatchNo         string `json:"batch_no"`
	Remarks         string `json:"remarks"`
	SubmittedBy     int    `json:"submitted_by"`
	SubmittedAt     string `json:"submitted_at"`
	CreatedBy       int
	UpdatedBy       int
}

func (s *MaterialArrivalSlip) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = idgen.GenerateID()
	return
}
