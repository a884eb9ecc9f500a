package models

import (
	"gate-app/controllers/idgen"

	"gorm.io/gorm"
)

// Person gate-in statuses
const (
	EntryLogStatusIn        = "IN"
	EntryLogStatusOut       = "OUT"
	EntryLogStatusCancelled = "CANCELLED"
)

// Person kinds
const (
	PersonTypeLabour  = "LABOUR"
	PersonTypeVisitor = "VISITOR"
)

type Labour struct {
	gorm.Model
	ID             int64  `json:"id" gorm:"primary_key"`
	LabourCode     string `json:"labour_code" gorm:"unique"`
	Name           string `json:"name"`
	ContractorName string `json:"contractor_name"`
	Phone          string `json:"phone"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`
	CreatedBy      int
	UpdatedBy      int
}

func (l *Labour) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = idgen.GenerateID()
	return
}

// EntryLog tracks one person being inside the facility. A person can never
// hold two simultaneous IN rows.
type EntryLog struct {
	gorm.Model
	ID         int64  `json:"id" gorm:"primary_key"`
	PersonType string `json:"person_type" gorm:"default:'LABOUR'"`
	LabourId   int64  `json:"labour_id" gorm:"index"`
	Status     string `json:"status" gorm:"default:'IN'"`
	Purpose    string `json:"purpose"`
	GateNo     string `json:"gate_no"`
	InAt       string `json:"in_at"`
	OutAt      string `json:"out_at"`
	CreatedBy  int
	UpdatedBy  int
}

func (e *EntryLog) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = idgen.GenerateID()
	return
}
