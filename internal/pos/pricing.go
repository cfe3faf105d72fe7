package pos

import "math"

// TaxConfig carries the branch-level rates applied on top of the cart.
type TaxConfig struct {
	VATPercent           float64 `json:"vat_percent"`
	ServiceChargePercent float64 `json:"service_charge_percent"`
}

// Totals is the full monetary breakdown of a cart.
type Totals struct {
	Subtotal             float64 `json:"subtotal"`
	LineDiscountTotal    float64 `json:"line_discount_total"`
	NetAfterLineDiscount float64 `json:"net_after_line_discount"`
	BillDiscountPercent  float64 `json:"bill_discount_percent"`
	BillDiscountAmount   float64 `json:"bill_discount_amount"`
	NetAfterBillDiscount float64 `json:"net_after_bill_discount"`
	ServiceCharge        float64 `json:"service_charge"`
	NetBeforeTax         float64 `json:"net_before_tax"`
	Tax                  float64 `json:"tax"`
	GrandTotal           float64 `json:"grand_total"`
}

// ComputeTotals runs the bill pipeline over already-validated lines. The
// stage order is contractual: the bill discount applies to the line-discounted
// net, the service charge to the bill-discounted net, and VAT compounds on top
// of the service charge. Intermediates keep full precision; only the grand
// total is rounded, half-up to two decimals.
func ComputeTotals(lines []OrderLine, billDiscountPercent float64, tax TaxConfig) Totals {
	t := Totals{BillDiscountPercent: billDiscountPercent}
	for _, l := range lines {
		t.Subtotal += l.LineTotal()
		t.LineDiscountTotal += l.DiscountAmount()
	}
	t.NetAfterLineDiscount = t.Subtotal - t.LineDiscountTotal
	t.BillDiscountAmount = t.NetAfterLineDiscount * billDiscountPercent / 100
	t.NetAfterBillDiscount = t.NetAfterLineDiscount - t.BillDiscountAmount
	t.ServiceCharge = t.NetAfterBillDiscount * tax.ServiceChargePercent / 100
	t.NetBeforeTax = t.NetAfterBillDiscount + t.ServiceCharge
	t.Tax = t.NetBeforeTax * tax.VATPercent / 100
	t.GrandTotal = round2(t.NetBeforeTax + t.Tax)
	return t
}

// Totals prices the current cart state against branch rates. Pure; safe to
// call after every mutation.
func (c *Cart) Totals(tax TaxConfig) Totals {
	return ComputeTotals(c.lines, c.billDiscountPercent, tax)
}

// round2 rounds half away from zero to two decimals. Amounts here are never
// negative, so this is plain half-up rounding.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
