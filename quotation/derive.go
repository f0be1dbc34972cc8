package quotation

import (
	"regexp"
	"strconv"
	"strings"

	"saisolaredge/models"
)

var numberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// Derivation holds the raw derived values. The aggregate of line-item
// amounts is tax-inclusive, so Taxable is the back-calculated base and
// Total mathematically reconstructs the aggregate.
type Derivation struct {
	Taxable float64
	CGST    float64
	SGST    float64
	Total   float64
}

// ParseAmount reads a displayed amount string, stripping thousands
// separators. Unparsable text contributes 0, never an error.
func ParseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// RateFromLabel extracts the applied percentage from a tax-rate label
// like "CGST @9%": the first numeric substring wins, no number means 0.
func RateFromLabel(label string) float64 {
	m := numberRe.FindString(label)
	if m == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(m, 64)
	return v
}

// Derive recomputes the summary values from the line items and the two
// rates. Empty items is the trivial case: everything comes out zero.
func Derive(items []models.LineItem, cgstRate, sgstRate float64) Derivation {
	var aggregate float64
	for _, item := range items {
		aggregate += ParseAmount(item.Amount)
	}

	base := aggregate / (1 + (cgstRate+sgstRate)/100)
	cgst := base * cgstRate / 100
	sgst := base * sgstRate / 100

	return Derivation{
		Taxable: base,
		CGST:    cgst,
		SGST:    sgst,
		Total:   base + cgst + sgst,
	}
}
