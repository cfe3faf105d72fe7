package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/lazzat/internal/models"
	"github.com/example/lazzat/internal/utils"
)

// BranchHandler manages branches and their dining tables.
type BranchHandler struct {
	db *gorm.DB
}

// NewBranchHandler constructs BranchHandler.
func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{db: db}
}

// ListBranches returns paginated branches.
func (h *BranchHandler) ListBranches(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Branch{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR city ILIKE ?", q, q)
	}
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var branches []models.Branch
	if err := query.Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&branches).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    branches,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetBranch returns a single branch with its tables.
func (h *BranchHandler) GetBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var branch models.Branch
	if err := h.db.Preload("Tables").First(&branch, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": branch})
}

// CreateBranch persists a new branch. Tax and service charge rates are
// validated here; the pricing engine only ever sees valid rates.
func (h *BranchHandler) CreateBranch(c *fiber.Ctx) error {
	var payload models.Branch
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validateBranchRates(payload); err != nil {
		return err
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateBranch updates an existing branch.
func (h *BranchHandler) UpdateBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var branch models.Branch
	if err := h.db.First(&branch, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}
		return err
	}

	var payload models.Branch
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validateBranchRates(payload); err != nil {
		return err
	}

	payload.ID = branch.ID
	if err := h.db.Model(&branch).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": branch})
}

// DeleteBranch removes a branch and its tables.
func (h *BranchHandler) DeleteBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("branch_id = ?", id).Delete(&models.DiningTable{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Branch{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func validateBranchRates(b models.Branch) error {
	if b.VATPercent < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "vat_percent must not be negative")
	}
	if b.ServiceChargePercent < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "service_charge_percent must not be negative")
	}
	return nil
}

// ListTables returns the dining tables of a branch.
func (h *BranchHandler) ListTables(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var tables []models.DiningTable
	if err := h.db.Where("branch_id = ?", branchID).Order("name asc").
		Find(&tables).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": tables})
}

// CreateTable adds a dining table to a branch.
func (h *BranchHandler) CreateTable(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var payload models.DiningTable
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BranchID = branchID

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateTable updates a dining table.
func (h *BranchHandler) UpdateTable(c *fiber.Ctx) error {
	tableID, err := uuid.Parse(c.Params("tableId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var table models.DiningTable
	if err := h.db.First(&table, "id = ?", tableID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "table not found")
		}
		return err
	}

	var payload models.DiningTable
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	payload.ID = table.ID
	payload.BranchID = table.BranchID
	if err := h.db.Model(&table).Updates(payload).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": table})
}

// DeleteTable removes a dining table.
func (h *BranchHandler) DeleteTable(c *fiber.Ctx) error {
	tableID, err := uuid.Parse(c.Params("tableId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.DiningTable{}, "id = ?", tableID).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
