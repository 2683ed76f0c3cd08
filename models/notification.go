package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification type constants
const (
	NotificationTypeVerificationRequest = "admin_verification_request"
	NotificationTypeRequestCreated      = "service_request_created"
	NotificationTypeRequestUpdated      = "service_request_updated"
)

// Notification roles
const (
	NotificationRoleUser         = "user"
	NotificationRoleProfessional = "professional"
	NotificationRoleSuperAdmin   = "super_admin"
)

// Notification is a typed event record scoped per role
type Notification struct {
	gorm.Model
	Role    string         `json:"role" gorm:"index;not null"`
	UserID  *uint          `json:"user_id" gorm:"index"`
	Type    string         `json:"type" gorm:"not null"`
	Title   string         `json:"title" gorm:"not null"`
	Message string         `json:"message"`
	Data    datatypes.JSON `json:"data"`
	IsRead  bool           `json:"is_read" gorm:"default:false"`
	ReadAt  *time.Time     `json:"read_at"`
}
