package models

import (
	"github.com/google/uuid"
)

// Branch is a physical location. Its VAT and service charge rates feed the
// POS totals pipeline and are read-only to the pricing engine.
type Branch struct {
	BaseModel
	Name                 string        `json:"name"`
	Code                 string        `gorm:"uniqueIndex" json:"code"`
	AddressLine          string        `json:"address_line"`
	City                 string        `json:"city"`
	ContactPhone         string        `json:"contact_phone"`
	VATPercent           float64       `json:"vat_percent"`
	ServiceChargePercent float64       `json:"service_charge_percent"`
	Currency             string        `json:"currency"`
	IsActive             bool          `json:"is_active"`
	Tables               []DiningTable `json:"tables,omitempty"`
}

// DiningTable is a seat assignment target for dine-in orders.
type DiningTable struct {
	BaseModel
	BranchID uuid.UUID `gorm:"type:uuid;index" json:"branch_id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	IsActive bool      `json:"is_active"`
}
