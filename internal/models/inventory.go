package models

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	BaseModel
	BranchID     uuid.UUID `gorm:"type:uuid;index" json:"branch_id"`
	Branch       *Branch   `json:"branch,omitempty"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
	ReorderLevel float64   `json:"reorder_level"`
	CostPrice    float64   `json:"cost_price"`
}

// StockMovement records every manual quantity adjustment.
type StockMovement struct {
	BaseModel
	InventoryItemID uuid.UUID `gorm:"type:uuid;index" json:"inventory_item_id"`
	Delta           float64   `json:"delta"`
	Reason          string    `json:"reason"`
	OccurredAt      time.Time `json:"occurred_at"`
}
