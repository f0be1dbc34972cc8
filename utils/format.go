package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR renders an amount with exactly two decimals and Indian
// digit grouping: the rightmost 3 integer digits stay together, then
// pairs (312118.644 -> "3,12,118.64"). The currency symbol is left to
// the rendered view.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	return sign + groupIndian(parts[0]) + "." + parts[1]
}

// FormatINRWhole rounds to the nearest rupee and renders with Indian
// grouping and no decimals (368300 -> "3,68,300").
func FormatINRWhole(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + groupIndian(fmt.Sprintf("%d", int64(math.Round(amount))))
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	out := digits[len(digits)-3:]
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		out = rest[len(rest)-2:] + "," + out
		rest = rest[:len(rest)-2]
	}
	return rest + "," + out
}
