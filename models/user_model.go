package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique"`
	Role      string `json:"role"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// Workflow roles checked by the QC approval chain.
const (
	RoleSecurity  = "security"
	RoleStore     = "store"
	RoleQAChemist = "qa_chemist"
	RoleQAManager = "qa_manager"
	RoleAdmin     = "admin"
)

type UserSession struct {
	gorm.Model
	UserId         uint      `json:"user_id" gorm:"index"`
	SessionId      string    `json:"session_id" gorm:"unique"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
