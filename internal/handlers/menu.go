package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/lazzat/internal/models"
	"github.com/example/lazzat/internal/utils"
)

// MenuHandler manages categories, menu items and modifiers.
type MenuHandler struct {
	db *gorm.DB
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(db *gorm.DB) *MenuHandler {
	return &MenuHandler{db: db}
}

// ListCategories returns paginated categories.
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	var categories []models.Category
	var total int64

	if err := h.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return err
	}

	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).
		Order("display_order asc, created_at desc").
		Find(&categories).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetCategory returns a single category by ID.
func (h *MenuHandler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var category models.Category
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": category})
}

// CreateCategory persists a new category.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateCategory updates an existing category.
func (h *MenuHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var category models.Category
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = category.ID
	if err := h.db.Model(&category).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": category})
}

// DeleteCategory removes a category by ID.
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type menuItemSizeRequest struct {
	SizeName     string  `json:"size_name"`
	Price        float64 `json:"price"`
	DisplayOrder int     `json:"display_order"`
}

type menuItemRequest struct {
	Name         string                `json:"name"`
	Code         string                `json:"code"`
	CategoryID   string                `json:"category_id"`
	Description  string                `json:"description"`
	DefaultPrice float64               `json:"default_price"`
	AllowSizes   bool                  `json:"allow_sizes"`
	Image        string                `json:"image"`
	IsActive     bool                  `json:"is_active"`
	Sizes        []menuItemSizeRequest `json:"sizes"`
}

// ListMenuItems returns paginated menu items with optional filters.
func (h *MenuHandler) ListMenuItems(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.MenuItem{})

	if v := c.Query("category_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("category_id = ?", id)
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", q, q)
	}
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var items []models.MenuItem
	if err := query.Preload("Sizes").Preload("Category").
		Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").
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

// GetMenuItem loads a menu item with its sizes.
func (h *MenuHandler) GetMenuItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.MenuItem
	if err := h.db.Preload("Sizes").Preload("Category").
		First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "menu item not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// CreateMenuItem handles menu item creation with embedded sizes.
func (h *MenuHandler) CreateMenuItem(c *fiber.Ctx) error {
	var req menuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	item, err := buildMenuItemFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Create(&item).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

// UpdateMenuItem updates a menu item and replaces its sizes.
func (h *MenuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.MenuItem
	if err := h.db.Preload("Sizes").First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "menu item not found")
		}
		return err
	}

	var req menuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	item, err := buildMenuItemFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	item.ID = existing.ID

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		item.CreatedAt = existing.CreatedAt

		// Replace dependent sizes; open carts keep their snapshotted prices.
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.MenuItemSize{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&existing).Omit("ID", "CreatedAt").Updates(item).Error; err != nil {
			return err
		}

		if len(item.Sizes) > 0 {
			for i := range item.Sizes {
				item.Sizes[i].MenuItemID = item.ID
			}
			if err := tx.Create(&item.Sizes).Error; err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// DeleteMenuItem removes a menu item and its sizes.
func (h *MenuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.MenuItemSize{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MenuItem{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func buildMenuItemFromRequest(req menuItemRequest) (models.MenuItem, error) {
	item := models.MenuItem{
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		DefaultPrice: req.DefaultPrice,
		AllowSizes:   req.AllowSizes,
		Image:        req.Image,
		IsActive:     req.IsActive,
	}

	if req.DefaultPrice < 0 {
		return item, fiber.NewError(fiber.StatusBadRequest, "default_price must not be negative")
	}

	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return item, fiber.NewError(fiber.StatusBadRequest, "invalid category_id")
		}
		item.CategoryID = &id
	}

	for _, s := range req.Sizes {
		if s.Price < 0 {
			return item, fiber.NewError(fiber.StatusBadRequest, "size price must not be negative")
		}
		item.Sizes = append(item.Sizes, models.MenuItemSize{
			SizeName:     s.SizeName,
			Price:        s.Price,
			DisplayOrder: s.DisplayOrder,
		})
	}

	if req.AllowSizes && len(item.Sizes) == 0 {
		return item, fiber.NewError(fiber.StatusBadRequest, "allow_sizes requires at least one size")
	}

	return item, nil
}

// ListModifiers returns paginated modifiers.
func (h *MenuHandler) ListModifiers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Modifier{})

	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var modifiers []models.Modifier
	if err := query.Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&modifiers).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    modifiers,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetModifier returns a single modifier by ID.
func (h *MenuHandler) GetModifier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var modifier models.Modifier
	if err := h.db.First(&modifier, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "modifier not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": modifier})
}

// CreateModifier persists a new modifier.
func (h *MenuHandler) CreateModifier(c *fiber.Ctx) error {
	var payload models.Modifier
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.ExtraPrice < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "extra_price must not be negative")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateModifier updates an existing modifier.
func (h *MenuHandler) UpdateModifier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var modifier models.Modifier
	if err := h.db.First(&modifier, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "modifier not found")
		}
		return err
	}

	var payload models.Modifier
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.ExtraPrice < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "extra_price must not be negative")
	}

	payload.ID = modifier.ID
	if err := h.db.Model(&modifier).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": modifier})
}

// DeleteModifier removes a modifier by ID.
func (h *MenuHandler) DeleteModifier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Modifier{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
