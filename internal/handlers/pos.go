package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/lazzat/internal/models"
	"github.com/example/lazzat/internal/pos"
)

// POSHandler prices carts against the live catalog without persisting
// anything.
type POSHandler struct {
	db *gorm.DB
}

// NewPOSHandler constructs POSHandler.
func NewPOSHandler(db *gorm.DB) *POSHandler {
	return &POSHandler{db: db}
}

type cartModifierRequest struct {
	ModifierID string `json:"modifier_id"`
	Quantity   int    `json:"quantity"`
}

type cartLineRequest struct {
	MenuItemID      string                `json:"menu_item_id"`
	MenuItemSizeID  string                `json:"menu_item_size_id"`
	Quantity        int                   `json:"quantity"`
	DiscountPercent float64               `json:"discount_percent"`
	Notes           string                `json:"notes"`
	Modifiers       []cartModifierRequest `json:"modifiers"`
}

type cartRequest struct {
	BranchID            string            `json:"branch_id"`
	OrderType           string            `json:"order_type"`
	TableID             string            `json:"table_id"`
	CustomerID          string            `json:"customer_id"`
	BillDiscountPercent float64           `json:"bill_discount_percent"`
	Lines               []cartLineRequest `json:"lines"`
}

// quoteLine carries a cart line plus its computed amounts, which exist only
// as methods on the line itself.
type quoteLine struct {
	pos.OrderLine
	ModifiersExtra float64 `json:"modifiers_extra"`
	EffectivePrice float64 `json:"effective_price"`
	LineTotal      float64 `json:"line_total"`
	DiscountAmount float64 `json:"discount_amount"`
	LineNet        float64 `json:"line_net"`
}

// Quote prices a cart and returns the totals breakdown without creating an
// order.
func (h *POSHandler) Quote(c *fiber.Ctx) error {
	var req cartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	branch, cart, err := buildCart(h.db, req)
	if err != nil {
		return err
	}

	tax := pos.TaxConfig{
		VATPercent:           branch.VATPercent,
		ServiceChargePercent: branch.ServiceChargePercent,
	}
	totals := cart.Totals(tax)

	lines := cart.Lines()
	quoted := make([]quoteLine, 0, len(lines))
	for _, l := range lines {
		quoted = append(quoted, quoteLine{
			OrderLine:      l,
			ModifiersExtra: l.ModifiersExtra(),
			EffectivePrice: l.EffectivePrice(),
			LineTotal:      l.LineTotal(),
			DiscountAmount: l.DiscountAmount(),
			LineNet:        l.LineNet(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order_type": cart.OrderType(),
			"currency":   branch.Currency,
			"lines":      quoted,
			"totals":     totals,
		},
	})
}

// buildCart loads the branch and the active catalog, then replays the
// requested lines through the cart so every selection is validated and
// priced the same way the POS screen does it.
func buildCart(db *gorm.DB, req cartRequest) (models.Branch, *pos.Cart, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return models.Branch{}, nil, fiber.NewError(fiber.StatusBadRequest, "invalid branch_id")
	}

	var branch models.Branch
	if err := db.First(&branch, "id = ? AND is_active = ?", branchID, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.Branch{}, nil, fiber.NewError(fiber.StatusNotFound, "branch not found")
		}
		return models.Branch{}, nil, err
	}

	var items []models.MenuItem
	if err := db.Preload("Sizes").Where("is_active = ?", true).Find(&items).Error; err != nil {
		return models.Branch{}, nil, err
	}
	var modifiers []models.Modifier
	if err := db.Where("is_active = ?", true).Find(&modifiers).Error; err != nil {
		return models.Branch{}, nil, err
	}

	orderType, err := parseOrderType(req.OrderType)
	if err != nil {
		return models.Branch{}, nil, err
	}

	cart := pos.NewCart(pos.NewCatalog(items, modifiers), orderType)

	if req.TableID != "" {
		tableID, err := uuid.Parse(req.TableID)
		if err != nil {
			return models.Branch{}, nil, fiber.NewError(fiber.StatusBadRequest, "invalid table_id")
		}
		cart.SetTable(&tableID)
	}
	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return models.Branch{}, nil, fiber.NewError(fiber.StatusBadRequest, "invalid customer_id")
		}
		cart.SetCustomer(&customerID)
	}

	for i, lr := range req.Lines {
		addReq, err := buildAddLineRequest(lr)
		if err != nil {
			return models.Branch{}, nil, err
		}
		line, err := cart.AddLine(addReq)
		if err != nil {
			return models.Branch{}, nil, posError(i, err)
		}
		if lr.DiscountPercent != 0 {
			if err := cart.ApplyLineDiscount(line.ID, lr.DiscountPercent); err != nil {
				return models.Branch{}, nil, posError(i, err)
			}
		}
	}

	if err := cart.SetBillDiscount(req.BillDiscountPercent); err != nil {
		return models.Branch{}, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return branch, cart, nil
}

func buildAddLineRequest(lr cartLineRequest) (pos.AddLineRequest, error) {
	itemID, err := uuid.Parse(lr.MenuItemID)
	if err != nil {
		return pos.AddLineRequest{}, fiber.NewError(fiber.StatusBadRequest, "invalid menu_item_id")
	}

	addReq := pos.AddLineRequest{
		MenuItemID: itemID,
		Quantity:   lr.Quantity,
		Notes:      lr.Notes,
	}
	if addReq.Quantity == 0 {
		addReq.Quantity = 1
	}

	if lr.MenuItemSizeID != "" {
		sizeID, err := uuid.Parse(lr.MenuItemSizeID)
		if err != nil {
			return pos.AddLineRequest{}, fiber.NewError(fiber.StatusBadRequest, "invalid menu_item_size_id")
		}
		addReq.MenuItemSizeID = &sizeID
	}

	for _, mr := range lr.Modifiers {
		modID, err := uuid.Parse(mr.ModifierID)
		if err != nil {
			return pos.AddLineRequest{}, fiber.NewError(fiber.StatusBadRequest, "invalid modifier_id")
		}
		quantity := mr.Quantity
		if quantity == 0 {
			quantity = 1
		}
		addReq.Modifiers = append(addReq.Modifiers, pos.ModifierRequest{
			ModifierID: modID,
			Quantity:   quantity,
		})
	}

	return addReq, nil
}

func parseOrderType(s string) (pos.OrderType, error) {
	switch pos.OrderType(s) {
	case pos.DineIn, pos.Takeaway, pos.Delivery:
		return pos.OrderType(s), nil
	case "":
		return pos.DineIn, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "order_type must be dine_in, takeaway or delivery")
}

// posError maps cart validation failures to 400s; anything else bubbles up
// as a server error.
func posError(lineIndex int, err error) error {
	if pos.IsValidationError(err) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("line %d: %v", lineIndex+1, err))
	}
	return err
}
