package models

import (
	"gate-app/controllers/idgen"

	"gorm.io/gorm"
)

// Entry types
const (
	EntryTypeRawMaterial  = "RAW_MATERIAL"
	EntryTypeDailyNeed    = "DAILY_NEED"
	EntryTypeMaintenance  = "MAINTENANCE"
	EntryTypeConstruction = "CONSTRUCTION"
)

// Gate entry lifecycle statuses
const (
	EntryStatusDraft       = "DRAFT"
	EntryStatusInProgress  = "IN_PROGRESS"
	EntryStatusQCPending   = "QC_PENDING"
	EntryStatusQCCompleted = "QC_COMPLETED"
	EntryStatusCompleted   = "COMPLETED"
	EntryStatusCancelled   = "CANCELLED"
)

// allowedEntryTransitions is the fixed successor table. CANCELLED is not in
// the table, it is only reachable through the explicit cancel operation.
var allowedEntryTransitions = map[string][]string{
	EntryStatusDraft:       {EntryStatusInProgress},
	EntryStatusInProgress:  {EntryStatusQCPending},
	EntryStatusQCPending:   {EntryStatusQCCompleted},
	EntryStatusQCCompleted: {EntryStatusCompleted},
	EntryStatusCompleted:   {},
	EntryStatusCancelled:   {},
}

// ValidateEntryTransition rejects every status change not in the whitelist.
// Must be called before any persisted status write.
func ValidateEntryTransition(oldStatus, newStatus string) error {
	successors, ok := allowedEntryTransitions[oldStatus]
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

// ValidEntryType reports whether t is one of the fixed entry types.
func ValidEntryType(t string) bool {
	switch t {
	case EntryTypeRawMaterial, EntryTypeDailyNeed, EntryTypeMaintenance, EntryTypeConstruction:
		return true
	}
	return false
}

type VehicleEntry struct {
	gorm.Model
	ID            int64  `json:"id" gorm:"primary_key"`
	EntryNo       string `json:"entry_no" gorm:"unique"`
	EntryType     string `json:"entry_type"`
	Status        string `json:"status" gorm:"default:'DRAFT'"`
	IsLocked      bool   `json:"is_locked" gorm:"default:false"`
	VehicleNo     string `json:"vehicle_no"`
	DriverName    string `json:"driver_name"`
	TransporterId int    `json:"transporter_id"`
	SupplierCode  string `json:"supplier_code"`
	DepartmentId  int    `json:"department_id"`
	Remarks       string `json:"remarks"`
	CompanyCode   string `json:"company_code"`
	CreatedBy     int
	UpdatedBy     int

	// Relations
	SecurityCheck     *SecurityCheck     `gorm:"foreignKey:VehicleEntryId;references:ID" json:"security_check"`
	Weighment         *Weighment         `gorm:"foreignKey:VehicleEntryId;references:ID" json:"weighment"`
	DailyNeedEntry    *DailyNeedEntry    `gorm:"foreignKey:VehicleEntryId;references:ID" json:"daily_need_entry"`
	MaintenanceEntry  *MaintenanceEntry  `gorm:"foreignKey:VehicleEntryId;references:ID" json:"maintenance_entry"`
	ConstructionEntry *ConstructionEntry `gorm:"foreignKey:VehicleEntryId;references:ID" json:"construction_entry"`
	POReceipts        []POReceipt        `gorm:"foreignKey:VehicleEntryId;references:ID" json:"po_receipts"`
}

func (e *VehicleEntry) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = idgen.GenerateID()
	return
}

type SecurityCheck struct {
	gorm.Model
	VehicleEntryId int64  `json:"vehicle_entry_id" gorm:"uniqueIndex"`
	GatePassNo     string `json:"gate_pass_no"`
	DocumentsOk    bool   `json:"documents_ok"`
	SealIntact     bool   `json:"seal_intact"`
	Remarks        string `json:"remarks"`
	IsSubmitted    bool   `json:"is_submitted" gorm:"default:false"`
	SubmittedBy    int    `json:"submitted_by"`
	SubmittedAt    string `json:"submitted_at"`
	CreatedBy      int
	UpdatedBy      int
}

type Weighment struct {
	gorm.Model
	VehicleEntryId int64   `json:"vehicle_entry_id" gorm:"uniqueIndex"`
	GrossWeight    float64 `json:"gross_weight"`
	TareWeight     float64 `json:"tare_weight"`
	NetWeight      float64 `json:"net_weight"`
	WeighbridgeNo  string  `json:"weighbridge_no"`
	WeighedBy      int     `json:"weighed_by"`
	CreatedBy      int
	UpdatedBy      int
}

// Net weight is derived, never accepted from the caller.
func (w *Weighment) BeforeSave(tx *gorm.DB) (err error) {
	w.NetWeight = w.GrossWeight - w.TareWeight
	return
}

type DailyNeedEntry struct {
	gorm.Model
	VehicleEntryId int64  `json:"vehicle_entry_id" gorm:"uniqueIndex"`
	ItemDesc       string `json:"item_desc"`
	Quantity       string `json:"quantity"`
	DepartmentId   int    `json:"department_id"`
	ReceiverName   string `json:"receiver_name"`
	CreatedBy      int
	UpdatedBy      int
}

type MaintenanceEntry struct {
	gorm.Model
	VehicleEntryId int64  `json:"vehicle_entry_id" gorm:"uniqueIndex"`
	WorkOrderNo    string `json:"work_order_no"`
	ContractorName string `json:"contractor_name"`
	Purpose        string `json:"purpose"`
	DepartmentId   int    `json:"department_id"`
	CreatedBy      int
	UpdatedBy      int
}

// Construction security approval values
const (
	SecurityApprovalPending  = "PENDING"
	SecurityApprovalApproved = "APPROVED"
	SecurityApprovalRejected = "REJECTED"
)

type ConstructionEntry struct {
	gorm.Model
	VehicleEntryId   int64  `json:"vehicle_entry_id" gorm:"uniqueIndex"`
	ContractorName   string `json:"contractor_name"`
	SiteEngineer     string `json:"site_engineer"`
	MaterialCategory string `json:"material_category"`
	SecurityApproval string `json:"security_approval" gorm:"default:'PENDING'"`
	ApprovedBy       int    `json:"approved_by"`
	CreatedBy        int
	UpdatedBy        int
}
