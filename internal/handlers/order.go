package handlers

import (
	"errors"
	"log"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/lazzat/internal/models"
	"github.com/example/lazzat/internal/services"
	"github.com/example/lazzat/internal/utils"
)

// OrderHandler turns priced carts into persisted orders and tracks payment.
type OrderHandler struct {
	db        *gorm.DB
	submitter *services.OrderSubmitter
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, submitter *services.OrderSubmitter) *OrderHandler {
	return &OrderHandler{db: db, submitter: submitter}
}

type createOrderRequest struct {
	cartRequest
	GrandTotal float64 `json:"grand_total"`
	Notes      string  `json:"notes"`
}

// CreateOrder reprices the cart server-side and persists it. The client may
// send the total it displayed; a mismatch is logged but the server-side
// number always wins.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Lines) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "order must have at least one line")
	}

	branch, cart, err := buildCart(h.db, req.cartRequest)
	if err != nil {
		return err
	}

	order, err := h.submitter.Submit(branch, cart, req.Notes)
	if err != nil {
		var submitErr *services.SubmitError
		if errors.As(err, &submitErr) {
			log.Printf("[Order] submission failed at %s: %v", submitErr.Step, submitErr.Err)
			resp := fiber.Map{
				"success":     false,
				"error":       "order submission failed",
				"failed_step": submitErr.Step,
			}
			if order != nil {
				resp["order_id"] = order.ID
			}
			return c.Status(fiber.StatusInternalServerError).JSON(resp)
		}
		return err
	}

	if req.GrandTotal != 0 && math.Abs(req.GrandTotal-order.GrandTotal) > 0.005 {
		log.Printf("[Order] client total %.2f disagrees with server total %.2f for %s",
			req.GrandTotal, order.GrandTotal, order.OrderNumber)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

type payOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// PayOrder records payment for an open order and completes it.
func (h *OrderHandler) PayOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req payOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "payment_method is required")
	}

	order, err := h.submitter.Pay(id, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		case errors.Is(err, services.ErrAlreadyPaid):
			return fiber.NewError(fiber.StatusConflict, "order already paid")
		}
		var submitErr *services.SubmitError
		if errors.As(err, &submitErr) {
			log.Printf("[Order] payment failed at %s: %v", submitErr.Step, submitErr.Err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success":     false,
				"error":       "payment failed",
				"failed_step": submitErr.Step,
			})
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// ListOrders returns paginated orders with optional filters.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if v := c.Query("branch_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("branch_id = ?", id)
		}
	}
	if orderType := c.Query("order_type"); orderType != "" {
		query = query.Where("order_type = ?", orderType)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("order_number ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").Limit(pg.Limit).Offset(pg.Offset).
		Order("placed_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetOrder returns a single order with its lines, modifiers and relations.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items.Modifiers").Preload("Customer").Preload("Branch").
		First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}
