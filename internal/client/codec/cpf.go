package codec

// CPFPattern is the Brazilian taxpayer number layout.
const CPFPattern Pattern = "000.000.000-00"

// CPF stores the 11 digits only; no checksum is verified client-side.
type CPF struct{}

func (CPF) Mask(raw string) string {
	return CPFPattern.Apply(truncate(Digits(raw), CPFPattern.Slots()))
}

func (c CPF) Format(canonical string) string {
	return c.Mask(canonical)
}

// Parse strips every non-digit. An empty result is valid because the field
// is optional; anything else must be exactly 11 digits.
func (CPF) Parse(display string) (string, error) {
	d := Digits(display)
	if d == "" {
		return "", nil
	}
	if len(d) != CPFPattern.Slots() {
		return "", ErrInvalidCPF
	}
	return d, nil
}
