package codec

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyMarker prefixes every formatted amount.
const CurrencyMarker = "R$"

// Currency formats unsigned amounts with pt-BR grouping and exactly two
// fraction digits: 1234.5 is shown as "R$ 1.234,50".
type Currency struct {
	printer *message.Printer
}

func NewCurrency() *Currency {
	return &Currency{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// FormatAmount renders v for display. The mask is unsigned, so the sign of
// a negative v is dropped.
func (c *Currency) FormatAmount(v float64) string {
	v = math.Abs(v)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return CurrencyMarker + " " + c.printer.Sprintf("%.2f", v)
}

// ParseAmount removes the marker and the thousands separators, turns the
// decimal comma into a dot and parses the result. At most two fraction
// digits are accepted.
func (c *Currency) ParseAmount(display string) (float64, error) {
	s := strings.TrimSpace(display)
	s = strings.TrimSpace(strings.TrimPrefix(s, CurrencyMarker))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	intPart, frac, _ := strings.Cut(s, ".")
	if intPart == "" || len(frac) > 2 || !allDigits(intPart) || !allDigits(frac) {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Mask normalises keystroke input. A comma is the radix; a lone dot
// followed by at most two digits is taken as the radix too, otherwise
// dots are group separators. Extra fraction digits are cut, leading zeros
// dropped and the fraction padded to two digits.
func (c *Currency) Mask(raw string) string {
	s := strings.TrimPrefix(strings.TrimSpace(raw), CurrencyMarker)

	var intPart, frac string
	switch {
	case strings.Contains(s, ","):
		intPart, frac, _ = strings.Cut(s, ",")
	case strings.Count(s, ".") == 1 && len(Digits(s[strings.Index(s, ".")+1:])) <= 2:
		intPart, frac, _ = strings.Cut(s, ".")
	default:
		intPart = s
	}
	intPart, frac = Digits(intPart), truncate(Digits(frac), 2)
	if intPart == "" && frac == "" {
		return ""
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	v, err := strconv.ParseFloat(intPart+"."+frac+"0", 64)
	if err != nil {
		return ""
	}
	return c.FormatAmount(v)
}

// Format renders a canonical decimal string such as "1234.56".
func (c *Currency) Format(canonical string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(canonical), 64)
	if err != nil {
		return c.Mask(canonical)
	}
	return c.FormatAmount(v)
}

// Parse returns the canonical decimal string for a display amount.
func (c *Currency) Parse(display string) (string, error) {
	v, err := c.ParseAmount(display)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
