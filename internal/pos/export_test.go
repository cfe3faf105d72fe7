package pos

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestExportIdempotent(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, DineIn)
	tableID := uuid.New()
	customerID := uuid.New()
	cart.SetTable(&tableID)
	cart.SetCustomer(&customerID)

	withMods, _ := cart.AddLine(AddLineRequest{
		MenuItemID: fx.burger.ID,
		Quantity:   2,
		Notes:      "no onions",
		Modifiers:  []ModifierRequest{{ModifierID: fx.cheese.ID, Quantity: 1}},
	})
	cart.ApplyLineDiscount(withMods.ID, 10)
	small := fx.pizza.Sizes[0]
	cart.AddLine(AddLineRequest{MenuItemID: fx.pizza.ID, MenuItemSizeID: &small.ID, Quantity: 1})
	cart.SetBillDiscount(5)

	tax := TaxConfig{VATPercent: 12, ServiceChargePercent: 10}

	first, err := json.Marshal(cart.Export(tax))
	if err != nil {
		t.Fatalf("marshal first export: %v", err)
	}
	second, err := json.Marshal(cart.Export(tax))
	if err != nil {
		t.Fatalf("marshal second export: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("back-to-back exports differ:\n%s\n%s", first, second)
	}
}

func TestExportShape(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, Takeaway)

	added, _ := cart.AddLine(AddLineRequest{
		MenuItemID: fx.burger.ID,
		Quantity:   3,
		Modifiers:  []ModifierRequest{{ModifierID: fx.bacon.ID, Quantity: 2}},
	})
	cart.ApplyLineDiscount(added.ID, 20)
	cart.SetBillDiscount(10)

	tax := TaxConfig{VATPercent: 10, ServiceChargePercent: 5}
	export := cart.Export(tax)

	if export.OrderType != Takeaway {
		t.Errorf("OrderType = %v, want Takeaway", export.OrderType)
	}
	if export.BillDiscountPercent != 10 {
		t.Errorf("BillDiscountPercent = %v, want 10", export.BillDiscountPercent)
	}
	if len(export.Lines) != 1 {
		t.Fatalf("export has %d lines, want 1", len(export.Lines))
	}

	got := export.Lines[0]
	if got.MenuItemID != fx.burger.ID || got.Quantity != 3 || got.DiscountPercent != 20 {
		t.Errorf("exported line = %+v", got)
	}
	if len(got.Modifiers) != 1 || got.Modifiers[0].ModifierID != fx.bacon.ID || got.Modifiers[0].Quantity != 2 {
		t.Errorf("exported modifiers = %+v", got.Modifiers)
	}

	if want := cart.Totals(tax).GrandTotal; export.GrandTotal != want {
		t.Errorf("GrandTotal = %v, want %v", export.GrandTotal, want)
	}
}

func TestExportDoesNotMutateCart(t *testing.T) {
	fx := newCatalogFixture()
	cart := NewCart(fx.catalog, DineIn)
	tableID := uuid.New()
	cart.SetTable(&tableID)
	cart.AddLine(AddLineRequest{MenuItemID: fx.burger.ID, Quantity: 2})

	tax := TaxConfig{VATPercent: 10, ServiceChargePercent: 10}
	before := cart.Totals(tax)

	export := cart.Export(tax)
	// Scribbling on the export must not reach the cart.
	export.Lines[0].Quantity = 99
	*export.TableID = uuid.New()

	after := cart.Totals(tax)
	if before != after {
		t.Errorf("totals changed after export: %+v -> %+v", before, after)
	}
	if *cart.TableID() != tableID {
		t.Errorf("table ID aliased into the export")
	}
}
