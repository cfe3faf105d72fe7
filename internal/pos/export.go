package pos

import "github.com/google/uuid"

// ExportModifier is a modifier reference in the submission payload.
type ExportModifier struct {
	ModifierID uuid.UUID `json:"modifier_id"`
	Quantity   int       `json:"quantity"`
}

// ExportLine is one line of the submission payload.
type ExportLine struct {
	MenuItemID      uuid.UUID        `json:"menu_item_id"`
	MenuItemSizeID  *uuid.UUID       `json:"menu_item_size_id,omitempty"`
	Quantity        int              `json:"quantity"`
	DiscountPercent float64          `json:"discount_percent"`
	Notes           string           `json:"notes,omitempty"`
	Modifiers       []ExportModifier `json:"modifiers,omitempty"`
}

// OrderExport is the payload handed to the order submission collaborator.
type OrderExport struct {
	OrderType           OrderType    `json:"order_type"`
	TableID             *uuid.UUID   `json:"table_id,omitempty"`
	CustomerID          *uuid.UUID   `json:"customer_id,omitempty"`
	BillDiscountPercent float64      `json:"bill_discount_percent"`
	Lines               []ExportLine `json:"lines"`
	GrandTotal          float64      `json:"grand_total"`
}

// Export snapshots the cart into a submission payload. It only reads cart
// state, so repeated calls without intervening mutations yield identical
// output.
func (c *Cart) Export(tax TaxConfig) OrderExport {
	export := OrderExport{
		OrderType:           c.orderType,
		TableID:             copyID(c.tableID),
		CustomerID:          copyID(c.customerID),
		BillDiscountPercent: c.billDiscountPercent,
		Lines:               make([]ExportLine, 0, len(c.lines)),
		GrandTotal:          c.Totals(tax).GrandTotal,
	}
	for _, l := range c.lines {
		line := ExportLine{
			MenuItemID:      l.MenuItemID,
			MenuItemSizeID:  copyID(l.MenuItemSizeID),
			Quantity:        l.Quantity,
			DiscountPercent: l.DiscountPercent,
			Notes:           l.Notes,
		}
		for _, m := range l.Modifiers {
			line.Modifiers = append(line.Modifiers, ExportModifier{
				ModifierID: m.ModifierID,
				Quantity:   m.Quantity,
			})
		}
		export.Lines = append(export.Lines, line)
	}
	return export
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
