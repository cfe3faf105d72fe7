package pos

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderType distinguishes how an order will be fulfilled.
type OrderType string

const (
	DineIn   OrderType = "dine_in"
	Takeaway OrderType = "takeaway"
	Delivery OrderType = "delivery"
)

// LineModifier is a modifier attached to a line, with its unit price
// snapshotted at add-time.
type LineModifier struct {
	ModifierID uuid.UUID `json:"modifier_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
}

// OrderLine is one cart entry. The monetary fields are methods rather than
// stored values so they can never drift from quantity, base price, modifiers
// or discount.
type OrderLine struct {
	ID              uuid.UUID      `json:"id"`
	MenuItemID      uuid.UUID      `json:"menu_item_id"`
	MenuItemSizeID  *uuid.UUID     `json:"menu_item_size_id,omitempty"`
	ItemName        string         `json:"item_name"`
	SizeName        string         `json:"size_name,omitempty"`
	Quantity        int            `json:"quantity"`
	BasePrice       float64        `json:"base_price"`
	Modifiers       []LineModifier `json:"modifiers,omitempty"`
	DiscountPercent float64        `json:"discount_percent"`
	Notes           string         `json:"notes,omitempty"`
}

// ModifiersExtra is the summed modifier surcharge for one unit of the line.
func (l OrderLine) ModifiersExtra() float64 {
	var extra float64
	for _, m := range l.Modifiers {
		extra += m.UnitPrice * float64(m.Quantity)
	}
	return extra
}

// EffectivePrice is the per-unit price including modifiers.
func (l OrderLine) EffectivePrice() float64 {
	return l.BasePrice + l.ModifiersExtra()
}

// LineTotal is the pre-discount total for the line.
func (l OrderLine) LineTotal() float64 {
	return l.EffectivePrice() * float64(l.Quantity)
}

// DiscountAmount is computed off the pre-discount line total, so reapplying a
// discount replaces the previous one instead of stacking.
func (l OrderLine) DiscountAmount() float64 {
	return l.LineTotal() * l.DiscountPercent / 100
}

// LineNet is the line total after its own discount.
func (l OrderLine) LineNet() float64 {
	return l.LineTotal() - l.DiscountAmount()
}

// Cart holds the order being built during a POS session. One cart is edited
// by one operator at a time; all mutations are synchronous.
type Cart struct {
	catalog             *Catalog
	lines               []OrderLine
	billDiscountPercent float64
	orderType           OrderType
	tableID             *uuid.UUID
	customerID          *uuid.UUID
}

// NewCart starts an empty cart pricing against the given catalog snapshot.
func NewCart(catalog *Catalog, orderType OrderType) *Cart {
	return &Cart{catalog: catalog, orderType: orderType}
}

// ModifierRequest selects a modifier by ID when adding a line.
type ModifierRequest struct {
	ModifierID uuid.UUID `json:"modifier_id"`
	Quantity   int       `json:"quantity"`
}

// AddLineRequest describes a line to add to the cart.
type AddLineRequest struct {
	MenuItemID     uuid.UUID
	MenuItemSizeID *uuid.UUID
	Modifiers      []ModifierRequest
	Quantity       int
	Notes          string
}

// AddLine validates the selection against the catalog, snapshots current
// prices into a new line and appends it. Items sold by size require an
// explicit size choice; there is no auto-selection. Validation runs in full
// before the cart is touched, so a failed add changes nothing.
func (c *Cart) AddLine(req AddLineRequest) (OrderLine, error) {
	if req.Quantity < 1 {
		return OrderLine{}, ErrInvalidQuantity
	}

	item, ok := c.catalog.MenuItem(req.MenuItemID)
	if !ok {
		return OrderLine{}, fmt.Errorf("menu item %s: %w", req.MenuItemID, ErrInvalidSelection)
	}

	basePrice := item.DefaultPrice
	var sizeName string
	if req.MenuItemSizeID != nil {
		size, found := findSize(item, *req.MenuItemSizeID)
		if !found {
			return OrderLine{}, fmt.Errorf("size %s of %q: %w", *req.MenuItemSizeID, item.Name, ErrInvalidSelection)
		}
		basePrice = size.Price
		sizeName = size.SizeName
	} else if item.AllowSizes {
		return OrderLine{}, fmt.Errorf("item %q is sold by size: %w", item.Name, ErrInvalidSelection)
	}

	var mods []LineModifier
	for _, mr := range req.Modifiers {
		if mr.Quantity < 1 {
			return OrderLine{}, ErrInvalidQuantity
		}
		mod, found := c.catalog.Modifier(mr.ModifierID)
		if !found {
			return OrderLine{}, fmt.Errorf("modifier %s: %w", mr.ModifierID, ErrUnknownModifier)
		}
		mods = append(mods, LineModifier{
			ModifierID: mod.ID,
			Name:       mod.Name,
			Quantity:   mr.Quantity,
			UnitPrice:  mod.ExtraPrice,
		})
	}

	line := OrderLine{
		ID:             uuid.New(),
		MenuItemID:     item.ID,
		MenuItemSizeID: req.MenuItemSizeID,
		ItemName:       item.Name,
		SizeName:       sizeName,
		Quantity:       req.Quantity,
		BasePrice:      basePrice,
		Modifiers:      mods,
		Notes:          req.Notes,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// UpdateLineQuantity adjusts a line's quantity by delta, flooring at 1.
// Removing a line goes through RemoveLine, never through a quantity of zero.
func (c *Cart) UpdateLineQuantity(lineID uuid.UUID, delta int) error {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			quantity := c.lines[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// ApplyLineDiscount sets a line's discount percent. The percent replaces any
// previous value; out-of-range values are rejected, not clamped.
func (c *Cart) ApplyLineDiscount(lineID uuid.UUID, percent float64) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].DiscountPercent = percent
			return nil
		}
	}
	return ErrLineNotFound
}

// SetBillDiscount sets the whole-cart discount applied after per-line
// discounts.
func (c *Cart) SetBillDiscount(percent float64) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	c.billDiscountPercent = percent
	return nil
}

// RemoveLine deletes a line from the cart.
func (c *Cart) RemoveLine(lineID uuid.UUID) error {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Clear resets the cart for the next order. The order type persists across
// clears; table and customer do not.
func (c *Cart) Clear() {
	c.lines = nil
	c.billDiscountPercent = 0
	c.tableID = nil
	c.customerID = nil
}

// SetOrderType switches the fulfilment type. Leaving dine-in drops the table
// assignment, since only dine-in orders have one.
func (c *Cart) SetOrderType(orderType OrderType) {
	c.orderType = orderType
	if orderType != DineIn {
		c.tableID = nil
	}
}

// SetTable assigns a table; only meaningful for dine-in orders.
func (c *Cart) SetTable(tableID *uuid.UUID) {
	c.tableID = tableID
}

// SetCustomer attaches an optional customer to the order.
func (c *Cart) SetCustomer(customerID *uuid.UUID) {
	c.customerID = customerID
}

// Lines returns the cart lines in insertion order. The slice is a copy;
// mutate the cart through its methods only.
func (c *Cart) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Line returns a single line by ID.
func (c *Cart) Line(lineID uuid.UUID) (OrderLine, error) {
	for _, l := range c.lines {
		if l.ID == lineID {
			return l, nil
		}
	}
	return OrderLine{}, ErrLineNotFound
}

// BillDiscountPercent returns the current whole-cart discount percent.
func (c *Cart) BillDiscountPercent() float64 {
	return c.billDiscountPercent
}

// OrderType returns the cart's fulfilment type.
func (c *Cart) OrderType() OrderType {
	return c.orderType
}

// TableID returns the assigned table, if any.
func (c *Cart) TableID() *uuid.UUID {
	return c.tableID
}

// CustomerID returns the attached customer, if any.
func (c *Cart) CustomerID() *uuid.UUID {
	return c.customerID
}
