package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrAmountOverflow is returned when the integer rupee part has more
// than 9 digits, the largest value the words rendering supports.
var ErrAmountOverflow = errors.New("amount exceeds 9 digits")

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func pairWords(n int) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

// AmountInWords renders the integer rupee part of amount in Indian
// English. Fractional paise are dropped, not rounded. The digits are
// read as crore-pair, lakh-pair, thousand-pair, hundred digit, then
// tens/units; zero groups are skipped entirely. A zero amount renders
// as just "Rupees Only".
func AmountInWords(amount float64) (string, error) {
	n := int64(math.Floor(amount))
	if n < 0 {
		n = 0
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 9 {
		return "", ErrAmountOverflow
	}
	s = strings.Repeat("0", 9-len(s)) + s

	crore, _ := strconv.Atoi(s[0:2])
	lakh, _ := strconv.Atoi(s[2:4])
	thousand, _ := strconv.Atoi(s[4:6])
	hundred := int(s[6] - '0')
	units, _ := strconv.Atoi(s[7:9])

	var parts []string
	if crore != 0 {
		parts = append(parts, pairWords(crore)+" Crore")
	}
	if lakh != 0 {
		parts = append(parts, pairWords(lakh)+" Lakh")
	}
	if thousand != 0 {
		parts = append(parts, pairWords(thousand)+" Thousand")
	}
	if hundred != 0 {
		parts = append(parts, ones[hundred]+" Hundred")
	}
	if units != 0 {
		tail := pairWords(units) + " Rupees Only"
		if len(parts) > 0 {
			tail = "and " + tail
		}
		parts = append(parts, tail)
	} else {
		parts = append(parts, "Rupees Only")
	}

	return strings.Join(parts, " "), nil
}

// AmountInWordsOrOverflow is the display form: out-of-range amounts
// degrade to the sentinel text instead of blocking the document.
func AmountInWordsOrOverflow(amount float64) string {
	words, err := AmountInWords(amount)
	if err != nil {
		return "Overflow"
	}
	return words
}
