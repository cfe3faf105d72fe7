package pos

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/example/lazzat/internal/models"
)

type catalogFixture struct {
	catalog *Catalog
	burger  models.MenuItem // flat-priced item, 8.00
	pizza   models.MenuItem // sold by size: Small 10.00, Large 14.50
	cheese  models.Modifier // +1.50
	bacon   models.Modifier // +2.00
}

func newCatalogFixture() catalogFixture {
	burger := models.MenuItem{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Burger",
		Code:         "BRG",
		DefaultPrice: 8.00,
		IsActive:     true,
	}
	pizza := models.MenuItem{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Pizza",
		Code:       "PZA",
		AllowSizes: true,
		IsActive:   true,
		Sizes: []models.MenuItemSize{
			{BaseModel: models.BaseModel{ID: uuid.New()}, SizeName: "Small", Price: 10.00},
			{BaseModel: models.BaseModel{ID: uuid.New()}, SizeName: "Large", Price: 14.50},
		},
	}
	cheese := models.Modifier{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Extra Cheese",
		ExtraPrice: 1.50,
		IsActive:   true,
	}
	bacon := models.Modifier{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Bacon",
		ExtraPrice: 2.00,
		IsActive:   true,
	}

	return catalogFixture{
		catalog: NewCatalog(
			[]models.MenuItem{burger, pizza},
			[]models.Modifier{cheese, bacon},
		),
		burger: burger,
		pizza:  pizza,
		cheese: cheese,
		bacon:  bacon,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAddLineDefaultPrice(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)

	line, err := cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	if line.BasePrice != 8.00 {
		t.Errorf("BasePrice = %v, want 8.00", line.BasePrice)
	}
	if !approx(line.LineTotal(), 24.00) {
		t.Errorf("LineTotal = %v, want 24.00", line.LineTotal())
	}
	if line.DiscountPercent != 0 {
		t.Errorf("new line DiscountPercent = %v, want 0", line.DiscountPercent)
	}
	if got := len(cart.Lines()); got != 1 {
		t.Errorf("cart has %d lines, want 1", got)
	}
}

func TestAddLineSizePrice(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)
	large := fx.pizza.Sizes[1]

	line, err := cart.AddLine(AddLineRequest{
		MenuItemID:     fx.pizza.ID,
		MenuItemSizeID: &large.ID,
		Quantity:       1,
	})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	if line.BasePrice != 14.50 {
		t.Errorf("BasePrice = %v, want size price 14.50", line.BasePrice)
	}
	if line.SizeName != "Large" {
		t.Errorf("SizeName = %q, want %q", line.SizeName, "Large")
	}
}

func TestAddLineSelectionErrors(t *testing.T) {
	fx := newCatalogFixture()
	strayID := uuid.New()

	tests := []struct {
		name string
		req  AddLineRequest
		want error
	}{
		{
			name: "unknown item",
			req:  AddLineRequest{MenuItemID: strayID, Quantity: 1},
			want: ErrInvalidSelection,
		},
		{
			name: "sized item without a size",
			req:  AddLineRequest{MenuItemID: fx.pizza.ID, Quantity: 1},
			want: ErrInvalidSelection,
		},
		{
			name: "size not on the item",
			req:  AddLineRequest{MenuItemID: fx.burger.ID, MenuItemSizeID: &strayID, Quantity: 1},
			want: ErrInvalidSelection,
		},
		{
			name: "unknown modifier",
			req: AddLineRequest{
				MenuItemID: fx.burger.ID,
				Quantity:   1,
				Modifiers:  []ModifierRequest{{ModifierID: strayID, Quantity: 1}},
			},
			want: ErrUnknownModifier,
		},
		{
			name: "zero quantity",
			req:  AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 0},
			want: ErrInvalidQuantity,
		},
		{
			name: "zero modifier quantity",
			req: AddLineRequest{
				MenuItemID: fx.burger.ID,
				Quantity:   1,
				Modifiers:  []ModifierRequest{{ModifierID: fx.cheese.ID, Quantity: 0}},
			},
			want: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart(fx.catalog, Takeaway)
			if _, err := cart.AddLine(tt.req); !errors.Is(err, tt.want) {
				t.Errorf("AddLine error = %v, want %v", err, tt.want)
			}
			if got := len(cart.Lines()); got != 0 {
				t.Errorf("rejected add left %d lines in the cart", got)
			}
		})
	}
}

func TestAddLineModifierPricing(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)

	line, err := cart.AddLine(AddLineRequest{
		MenuItemID: fx.burger.ID,
		Quantity:   1,
		Modifiers:  []ModifierRequest{{ModifierID: fx.cheese.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	if !approx(line.ModifiersExtra(), 3.00) {
		t.Errorf("ModifiersExtra = %v, want 3.00", line.ModifiersExtra())
	}
	if !approx(line.EffectivePrice(), 11.00) {
		t.Errorf("EffectivePrice = %v, want 11.00", line.EffectivePrice())
	}
	if !approx(line.LineTotal(), 11.00) {
		t.Errorf("LineTotal = %v, want 11.00", line.LineTotal())
	}
}

func TestUpdateLineQuantityFloor(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)
	line, _ := cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 5})

	if err := cart.UpdateLineQuantity(line.ID, -100); err != nil {
		t.Fatalf("UpdateLineQuantity: %v", err)
	}
	got, _ := cart.Line(line.ID)
	if got.Quantity != 1 {
		t.Errorf("Quantity = %d, want floor of 1", got.Quantity)
	}

	if err := cart.UpdateLineQuantity(line.ID, 2); err != nil {
		t.Fatalf("UpdateLineQuantity: %v", err)
	}
	got, _ = cart.Line(line.ID)
	if got.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", got.Quantity)
	}
	if !approx(got.LineTotal(), 24.00) {
		t.Errorf("LineTotal = %v, want 24.00 after quantity change", got.LineTotal())
	}

	if err := cart.UpdateLineQuantity(uuid.New(), 1); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("unknown line error = %v, want ErrLineNotFound", err)
	}
}

func TestApplyLineDiscountReplaces(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)
	// 8.00 x 10 = 80.00 line total
	line, _ := cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 10})

	if err := cart.ApplyLineDiscount(line.ID, 10); err != nil {
		t.Fatalf("ApplyLineDiscount: %v", err)
	}
	got, _ := cart.Line(line.ID)
	if !approx(got.DiscountAmount(), 8.00) {
		t.Errorf("DiscountAmount = %v, want 8.00", got.DiscountAmount())
	}
	if !approx(got.LineNet(), 72.00) {
		t.Errorf("LineNet = %v, want 72.00", got.LineNet())
	}

	// Reapplying replaces the discount; it never stacks on the previous one.
	if err := cart.ApplyLineDiscount(line.ID, 25); err != nil {
		t.Fatalf("ApplyLineDiscount: %v", err)
	}
	got, _ = cart.Line(line.ID)
	if !approx(got.DiscountAmount(), 20.00) {
		t.Errorf("DiscountAmount after reapply = %v, want 20.00", got.DiscountAmount())
	}
}

func TestDiscountValidation(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)
	line, _ := cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 1})

	for _, percent := range []float64{-1, 100.01, 250} {
		if err := cart.ApplyLineDiscount(line.ID, percent); !errors.Is(err, ErrInvalidDiscount) {
			t.Errorf("ApplyLineDiscount(%v) error = %v, want ErrInvalidDiscount", percent, err)
		}
		if err := cart.SetBillDiscount(percent); !errors.Is(err, ErrInvalidDiscount) {
			t.Errorf("SetBillDiscount(%v) error = %v, want ErrInvalidDiscount", percent, err)
		}
	}

	if err := cart.ApplyLineDiscount(uuid.New(), 10); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("unknown line error = %v, want ErrLineNotFound", err)
	}
	if err := cart.SetBillDiscount(100); err != nil {
		t.Errorf("SetBillDiscount(100) = %v, want nil", err)
	}
}

func TestRemoveLineKeepsOrder(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)
	first, _ := cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 1})
	second, _ := cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 2})
	third, _ := cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 3})

	if err := cart.RemoveLine(second.ID); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}

	lines := cart.Lines()
	if len(lines) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(lines))
	}
	if lines[0].ID != first.ID || lines[1].ID != third.ID {
		t.Errorf("remaining lines out of insertion order")
	}

	if err := cart.RemoveLine(second.ID); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("second remove error = %v, want ErrLineNotFound", err)
	}
}

func TestClearPreservesOrderType(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, DineIn)
	tableID := uuid.New()
	customerID := uuid.New()

	cart.SetTable(&tableID)
	cart.SetCustomer(&customerID)
	cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 1})
	cart.SetBillDiscount(15)

	cart.Clear()

	if got := len(cart.Lines()); got != 0 {
		t.Errorf("cart has %d lines after clear, want 0", got)
	}
	if cart.BillDiscountPercent() != 0 {
		t.Errorf("BillDiscountPercent = %v after clear, want 0", cart.BillDiscountPercent())
	}
	if cart.TableID() != nil || cart.CustomerID() != nil {
		t.Errorf("table/customer survived the clear")
	}
	if cart.OrderType() != DineIn {
		t.Errorf("OrderType = %v after clear, want DineIn", cart.OrderType())
	}
}

func TestSetOrderTypeDropsTable(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, DineIn)
	tableID := uuid.New()
	cart.SetTable(&tableID)

	cart.SetOrderType(Takeaway)

	if cart.TableID() != nil {
		t.Errorf("table assignment survived switch to takeaway")
	}
}

func TestModifierSnapshotIsolation(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)

	line, err := cart.AddLine(AddLineRequest{
		MenuItemID: fx.burger.ID,
		Quantity:   1,
		Modifiers:  []ModifierRequest{{ModifierID: fx.bacon.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	repriced := fx.bacon
	repriced.ExtraPrice = 5.00
	fx.catalog.UpsertModifier(repriced)

	got, _ := cart.Line(line.ID)
	if !approx(got.ModifiersExtra(), 2.00) {
		t.Errorf("ModifiersExtra = %v after catalog reprice, want snapshotted 2.00", got.ModifiersExtra())
	}
	if !approx(got.LineTotal(), 10.00) {
		t.Errorf("LineTotal = %v after catalog reprice, want 10.00", got.LineTotal())
	}

	// New lines pick up the fresh price.
	fresh, _ := cart.AddLine(AddLineRequest{
		MenuItemID: fx.burger.ID,
		Quantity:   1,
		Modifiers:  []ModifierRequest{{ModifierID: fx.bacon.ID, Quantity: 1}},
	})
	if !approx(fresh.ModifiersExtra(), 5.00) {
		t.Errorf("fresh line ModifiersExtra = %v, want 5.00", fresh.ModifiersExtra())
	}
}
