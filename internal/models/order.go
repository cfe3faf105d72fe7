package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusOpen      = "open"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Order is a persisted, fully priced POS order. Monetary columns are written
// once at submission from the pricing engine's breakdown.
type Order struct {
	BaseModel
	OrderNumber         string      `gorm:"uniqueIndex" json:"order_number"`
	BranchID            uuid.UUID   `gorm:"type:uuid;index" json:"branch_id"`
	Branch              *Branch     `json:"branch,omitempty"`
	CustomerID          *uuid.UUID  `gorm:"type:uuid" json:"customer_id"`
	Customer            *Customer   `json:"customer,omitempty"`
	TableID             *uuid.UUID  `gorm:"type:uuid" json:"table_id"`
	OrderType           string      `json:"order_type"`
	Status              string      `json:"status"`
	PlacedAt            time.Time   `json:"placed_at"`
	Subtotal            float64     `json:"subtotal"`
	LineDiscountTotal   float64     `json:"line_discount_total"`
	BillDiscountPercent float64     `json:"bill_discount_percent"`
	BillDiscountAmount  float64     `json:"bill_discount_amount"`
	ServiceCharge       float64     `json:"service_charge"`
	Tax                 float64     `json:"tax"`
	GrandTotal          float64     `json:"grand_total"`
	Currency            string      `json:"currency"`
	PaymentMethod       string      `json:"payment_method"`
	PaymentStatus       string      `json:"payment_status"`
	PaidAt              *time.Time  `json:"paid_at"`
	Notes               string      `json:"notes"`
	Items               []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID         uuid.UUID           `gorm:"type:uuid;index" json:"order_id"`
	MenuItemID      *uuid.UUID          `gorm:"type:uuid" json:"menu_item_id"`
	MenuItemSizeID  *uuid.UUID          `gorm:"type:uuid" json:"menu_item_size_id"`
	ItemName        string              `json:"item_name"`
	SizeName        string              `json:"size_name"`
	Quantity        int                 `json:"quantity"`
	BasePrice       float64             `json:"base_price"`
	ModifiersExtra  float64             `json:"modifiers_extra"`
	LineTotal       float64             `json:"line_total"`
	DiscountPercent float64             `json:"discount_percent"`
	DiscountAmount  float64             `json:"discount_amount"`
	LineNet         float64             `json:"line_net"`
	Notes           string              `json:"notes"`
	Modifiers       []OrderItemModifier `json:"modifiers,omitempty"`
}

type OrderItemModifier struct {
	BaseModel
	OrderItemID uuid.UUID  `gorm:"type:uuid;index" json:"order_item_id"`
	ModifierID  *uuid.UUID `gorm:"type:uuid" json:"modifier_id"`
	Name        string     `json:"name"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
}
