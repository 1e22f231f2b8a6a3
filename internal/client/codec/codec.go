// Package codec converts masked text-field input to and from the canonical
// values sent to the backend.
//
// Each codec offers three pure functions:
//
//   - Mask applies the display mask to whatever the user typed so far;
//   - Format renders a canonical value for display;
//   - Parse turns a display string back into its canonical form.
//
// Parse(Format(v)) == v holds for every valid canonical v.
package codec

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCPF    = errors.New("cpf must have 11 digits")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Codec is the contract form fields use to stay agnostic of the concrete
// mask behind them.
type Codec interface {
	Mask(raw string) string
	Format(canonical string) string
	Parse(display string) (string, error)
}

// slot marks a digit position in a Pattern; every other rune is a literal.
const slot = '0'

// Pattern is a fixed-slot mask such as "000.000.000-00".
type Pattern string

// Slots reports how many digits the pattern holds.
func (p Pattern) Slots() int {
	return strings.Count(string(p), string(slot))
}

// Apply lays digits into the pattern. Literals are emitted only when a
// digit follows them, so a partial input never ends in a separator:
// Pattern("000.000").Apply("1234") == "123.4". Extra digits are dropped.
func (p Pattern) Apply(digits string) string {
	var (
		b       strings.Builder
		pending strings.Builder
		next    int
	)
	for _, r := range string(p) {
		if r != slot {
			pending.WriteRune(r)
			continue
		}
		if next >= len(digits) {
			break
		}
		b.WriteString(pending.String())
		pending.Reset()
		b.WriteByte(digits[next])
		next++
	}
	return b.String()
}

// Digits returns only the ASCII digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
