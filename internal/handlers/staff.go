package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/lazzat/internal/models"
	"github.com/example/lazzat/internal/utils"
)

// StaffHandler manages staff member records.
type StaffHandler struct {
	db *gorm.DB
}

// NewStaffHandler constructs StaffHandler.
func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// ListStaff returns paginated staff members with optional filters.
func (h *StaffHandler) ListStaff(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.StaffMember{})

	if v := c.Query("branch_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("branch_id = ?", id)
		}
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?", q, q, q)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var staff []models.StaffMember
	if err := query.Preload("Branch").Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").
		Find(&staff).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    staff,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetStaffMember returns a single staff member by ID.
func (h *StaffHandler) GetStaffMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var member models.StaffMember
	if err := h.db.Preload("Branch").First(&member, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "staff member not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// CreateStaffMember persists a new staff member.
func (h *StaffHandler) CreateStaffMember(c *fiber.Ctx) error {
	var payload models.StaffMember
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateStaffMember updates an existing staff member.
func (h *StaffHandler) UpdateStaffMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var member models.StaffMember
	if err := h.db.First(&member, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "staff member not found")
		}
		return err
	}

	var payload models.StaffMember
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = member.ID
	if err := h.db.Model(&member).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// DeleteStaffMember removes a staff member by ID.
func (h *StaffHandler) DeleteStaffMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.StaffMember{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
