package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/lazzat/internal/models"
	"github.com/example/lazzat/internal/utils"
)

// InventoryHandler manages per-branch inventory items.
type InventoryHandler struct {
	db *gorm.DB
}

// NewInventoryHandler constructs InventoryHandler.
func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{db: db}
}

// ListInventory returns paginated inventory items with optional filters.
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.InventoryItem{})

	if v := c.Query("branch_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("branch_id = ?", id)
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", q, q)
	}
	if c.Query("low_stock") == "true" {
		query = query.Where("quantity <= reorder_level")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var items []models.InventoryItem
	if err := query.Limit(pg.Limit).Offset(pg.Offset).Order("name asc").
		Find(&items).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetInventoryItem returns a single inventory item by ID.
func (h *InventoryHandler) GetInventoryItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.InventoryItem
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "inventory item not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// CreateInventoryItem persists a new inventory item.
func (h *InventoryHandler) CreateInventoryItem(c *fiber.Ctx) error {
	var payload models.InventoryItem
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateInventoryItem updates an existing inventory item.
func (h *InventoryHandler) UpdateInventoryItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.InventoryItem
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "inventory item not found")
		}
		return err
	}

	var payload models.InventoryItem
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = item.ID
	if err := h.db.Model(&item).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// DeleteInventoryItem removes an inventory item and its movements.
func (h *InventoryHandler) DeleteInventoryItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("inventory_item_id = ?", id).Delete(&models.StockMovement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.InventoryItem{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type stockAdjustRequest struct {
	Delta  float64 `json:"delta"`
	Reason string  `json:"reason"`
}

// AdjustStock applies a manual quantity adjustment and records the movement.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req stockAdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Delta == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "delta must not be zero")
	}

	var item models.InventoryItem
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "inventory item not found")
		}
		return err
	}

	if item.Quantity+req.Delta < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "adjustment would make quantity negative")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).
			Update("quantity", gorm.Expr("quantity + ?", req.Delta)).Error; err != nil {
			return err
		}
		movement := models.StockMovement{
			InventoryItemID: item.ID,
			Delta:           req.Delta,
			Reason:          req.Reason,
			OccurredAt:      time.Now(),
		}
		return tx.Create(&movement).Error
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}
