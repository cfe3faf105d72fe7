package models

import (
	"time"

	"github.com/google/uuid"
)

// StaffMember is an HR record for the staff admin pages.
type StaffMember struct {
	BaseModel
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `gorm:"uniqueIndex" json:"phone"`
	Role      string     `json:"role"`
	BranchID  *uuid.UUID `gorm:"type:uuid" json:"branch_id"`
	Branch    *Branch    `json:"branch,omitempty"`
	HiredAt   *time.Time `json:"hired_at"`
	IsActive  bool       `json:"is_active"`
}
