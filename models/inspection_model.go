package models

import (
	"gate-app/controllers/idgen"

	"gorm.io/gorm"
)

// Inspection workflow statuses
const (
	InspectionStatusDraft           = "DRAFT"
	InspectionStatusSubmitted       = "SUBMITTED"
	InspectionStatusChemistApproved = "QA_CHEMIST_APPROVED"
	InspectionStatusQAMApproved     = "QAM_APPROVED"
	InspectionStatusCompleted       = "COMPLETED"
	InspectionStatusRejected        = "REJECTED"
)

// Final QC outcomes
const (
	FinalStatusPending  = "PENDING"
	FinalStatusAccepted = "ACCEPTED"
	FinalStatusRejected = "REJECTED"
	FinalStatusHold     = "HOLD"
)

var allowedInspectionTransitions = map[string][]string{
	InspectionStatusDraft:           {InspectionStatusSubmitted},
	InspectionStatusSubmitted:       {InspectionStatusChemistApproved, InspectionStatusRejected},
	InspectionStatusChemistApproved: {InspectionStatusQAMApproved, InspectionStatusRejected},
	InspectionStatusQAMApproved:     {InspectionStatusCompleted},
	InspectionStatusCompleted:       {},
	InspectionStatusRejected:        {},
}

// ValidateInspectionTransition enforces the two-stage approval chain.
func ValidateInspectionTransition(oldStatus, newStatus string) error {
	successors, ok := allowedInspectionTransitions[oldStatus]
	if !ok {
		return &InvalidTransitionError{From: oldStatus, To: newStatus}
	}
	for _, s := range successors {
		if s == newStatus {
			return nil
		}
	}
	return &InvalidTransitionError{From: oldStatus, To: newStatus}
}

// TerminalOutcome reports whether the inspection has reached a terminal
// per-item QC outcome that no longer blocks gate completion.
func TerminalOutcome(finalStatus string) bool {
	return finalStatus == FinalStatusAccepted || finalStatus == FinalStatusRejected
}

// QC parameter kinds
const (
	ParameterTypeNumeric = "NUMERIC"
	ParameterTypeText    = "TEXT"
	ParameterTypeBool    = "BOOL"
)

// QCParameterMaster is the per-material-type checklist definition. Inspection
// parameter rows are seeded from it at inspection creation.
type QCParameterMaster struct {
	gorm.Model
	MaterialTypeId int      `json:"material_type_id" gorm:"index"`
	ParameterName  string   `json:"parameter_name"`
	ParameterType  string   `json:"parameter_type" gorm:"default:'NUMERIC'"`
	Uom            string   `json:"uom"`
	MinValue       *float64 `json:"min_value"`
	MaxValue       *float64 `json:"max_value"`
	SortOrder      int      `json:"sort_order"`
	IsActive       bool     `json:"is_active" gorm:"default:true"`
	CreatedBy      int
	UpdatedBy      int
}

type RawMaterialInspection struct {
	gorm.Model
	ID              int64  `json:"id" gorm:"primary_key"`
	POItemReceiptId int64  `json:"po_item_receipt_id" gorm:"uniqueIndex"`
	MaterialTypeId  int    `json:"material_type_id"`
	ReportNo        string `json:"report_no" gorm:"unique"`
	InternalLotNo   string `json:"internal_lot_no" gorm:"unique"`
	Status          string `json:"status" gorm:"default:'DRAFT'"`
	FinalStatus     string `json:"final_status" gorm:"default:'PENDING'"`
	IsLocked        bool   `json:"is_locked" gorm:"default:false"`

	SampleQty        float64 `json:"sample_qty"`
	QaChemistId      int     `json:"qa_chemist_id"`
	QaChemistRemarks string  `json:"qa_chemist_remarks"`
	QaChemistAt      string  `json:"qa_chemist_at"`
	QamId            int     `json:"qam_id"`
	QamRemarks       string  `json:"qam_remarks"`
	QamAt            string  `json:"qam_at"`
	SubmittedBy      int     `json:"submitted_by"`
	SubmittedAt      string  `json:"submitted_at"`
	CreatedBy        int
	UpdatedBy        int

	Parameters []InspectionParameterResult `gorm:"foreignKey:InspectionId;references:ID" json:"parameters"`
}

func (i *RawMaterialInspection) BeforeCreate(tx *gorm.DB) (err error) {
	i.ID = idgen.GenerateID()
	return
}

type InspectionParameterResult struct {
	gorm.Model
	InspectionId  int64    `json:"inspection_id" gorm:"index"`
	ParameterName string   `json:"parameter_name"`
	ParameterType string   `json:"parameter_type"`
	Uom           string   `json:"uom"`
	MinValue      *float64 `json:"min_value"`
	MaxValue      *float64 `json:"max_value"`
	ResultNumeric *float64 `json:"result_numeric"`
	ResultText    string   `json:"result_text"`
	IsWithinSpec  *bool    `json:"is_within_spec"`
	CreatedBy     int
	UpdatedBy     int
}

// Spec conformance is a pure derivation, recomputed on every save and never
// manually overridable.
func (r *InspectionParameterResult) BeforeSave(tx *gorm.DB) (err error) {
	r.DeriveWithinSpec()
	return
}

func (r *InspectionParameterResult) DeriveWithinSpec() {
	if r.ParameterType != ParameterTypeNumeric || r.ResultNumeric == nil ||
		r.MinValue == nil || r.MaxValue == nil {
		r.IsWithinSpec = nil
		return
	}
	within := *r.ResultNumeric >= *r.MinValue && *r.ResultNumeric <= *r.MaxValue
	r.IsWithinSpec = &within
}

// NumberSequence backs per-day report/lot numbering. The row for a
// (prefix, date) pair is locked FOR UPDATE while the next value is taken, so
// two inspections created in the same instant can never share a number.
type NumberSequence struct {
	gorm.Model
	Prefix    string `json:"prefix" gorm:"index:idx_seq_prefix_date,unique"`
	DateKey   string `json:"date_key" gorm:"index:idx_seq_prefix_date,unique"`
	LastValue int    `json:"last_value"`
}
