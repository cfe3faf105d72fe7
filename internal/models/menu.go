package models

import (
	"github.com/google/uuid"
)

type Category struct {
	BaseModel
	Name         string     `json:"name"`
	DisplayOrder int        `json:"display_order"`
	IsActive     bool       `json:"is_active"`
	Items        []MenuItem `json:"items,omitempty"`
}

// MenuItem is catalog reference data. When AllowSizes is set the item is sold
// only through one of its sizes and the size price overrides DefaultPrice.
type MenuItem struct {
	BaseModel
	Name         string         `json:"name"`
	Code         string         `gorm:"uniqueIndex" json:"code"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid" json:"category_id"`
	Category     *Category      `json:"category,omitempty"`
	Description  string         `json:"description"`
	DefaultPrice float64        `json:"default_price"`
	AllowSizes   bool           `json:"allow_sizes"`
	Image        string         `json:"image"`
	IsActive     bool           `json:"is_active"`
	Sizes        []MenuItemSize `json:"sizes,omitempty"`
}

type MenuItemSize struct {
	BaseModel
	MenuItemID   uuid.UUID `gorm:"type:uuid;index" json:"menu_item_id"`
	SizeName     string    `json:"size_name"`
	Price        float64   `json:"price"`
	DisplayOrder int       `json:"display_order"`
}

// Modifier is an add-on that may be attached to any order line. Lines
// snapshot ExtraPrice at add-time, so edits here never reprice open carts.
type Modifier struct {
	BaseModel
	Name       string  `json:"name"`
	ExtraPrice float64 `json:"extra_price"`
	IsActive   bool    `json:"is_active"`
}
