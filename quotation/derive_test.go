package quotation

import (
	"math"
	"testing"

	"saisolaredge/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"plain", "368300", 368300},
		{"indian grouping", "3,68,300", 368300},
		{"decimals", "1,234.50", 1234.50},
		{"padded", " 1,234.50 ", 1234.50},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"mixed garbage", "12abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.expect {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestRateFromLabel(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"cgst label", "CGST @9%", 9},
		{"sgst label", "SGST @9%", 9},
		{"bare number", "18", 18},
		{"fractional", "GST 2.5%", 2.5},
		{"first number wins", "9% of 18", 9},
		{"no number", "IGST", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RateFromLabel(tt.input); got != tt.expect {
				t.Errorf("RateFromLabel(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func items(amounts ...string) []models.LineItem {
	out := make([]models.LineItem, len(amounts))
	for i, a := range amounts {
		out[i] = models.LineItem{Amount: a}
	}
	return out
}

func TestDerive_SeedDocument(t *testing.T) {
	d := Derive(items("368300"), 9, 9)

	if math.Abs(d.Taxable-312118.64) > 0.01 {
		t.Errorf("taxable = %v, want ~312118.64", d.Taxable)
	}
	if math.Abs(d.CGST-28090.68) > 0.01 {
		t.Errorf("cgst = %v, want ~28090.68", d.CGST)
	}
	if math.Abs(d.SGST-28090.68) > 0.01 {
		t.Errorf("sgst = %v, want ~28090.68", d.SGST)
	}
	if math.Abs(d.Total-368300) > 0.01 {
		t.Errorf("total = %v, want ~368300", d.Total)
	}
}

func TestDerive_RoundTripAndAdditivity(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		cgst    float64
		sgst    float64
	}{
		{"seed", []string{"368300"}, 9, 9},
		{"multiple items", []string{"1,00,000", "50000", "2,499.99"}, 9, 9},
		{"uneven rates", []string{"75000"}, 14, 9},
		{"fractional rates", []string{"1,234.56", "789"}, 2.5, 2.5},
		{"zero rates", []string{"368300"}, 0, 0},
		{"unparsable treated as zero", []string{"368300", "n/a"}, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lineItems := items(tt.amounts...)
			var sum float64
			for _, it := range lineItems {
				sum += ParseAmount(it.Amount)
			}

			d := Derive(lineItems, tt.cgst, tt.sgst)

			// the taxable base must reconstruct the tax-inclusive aggregate
			rebuilt := d.Taxable * (1 + (tt.cgst+tt.sgst)/100)
			if math.Abs(rebuilt-sum) > 0.01 {
				t.Errorf("taxable*(1+rate) = %v, want %v", rebuilt, sum)
			}

			if math.Abs(d.Taxable+d.CGST+d.SGST-d.Total) > 1e-6 {
				t.Errorf("taxable+cgst+sgst = %v, total = %v", d.Taxable+d.CGST+d.SGST, d.Total)
			}

			if tt.cgst+tt.sgst > 0 && math.Abs(d.CGST/d.Taxable*100-tt.cgst) > 1e-9 {
				t.Errorf("cgst/taxable = %v%%, want %v%%", d.CGST/d.Taxable*100, tt.cgst)
			}
		})
	}
}

func TestDerive_EmptyItems(t *testing.T) {
	d := Derive(nil, 9, 9)
	if d.Taxable != 0 || d.CGST != 0 || d.SGST != 0 || d.Total != 0 {
		t.Errorf("Derive(nil, 9, 9) = %+v, want all zero", d)
	}
}
