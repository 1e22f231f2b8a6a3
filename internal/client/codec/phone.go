package codec

import "strings"

// DefaultCountryCode is used when a Phone codec has no country code set.
const DefaultCountryCode = "55"

// PhoneLocalPattern covers area code and subscriber number.
const PhoneLocalPattern Pattern = "(00) 00000-0000"

// Phone masks numbers as "+55 (11) 98765-4321" and stores them as
// "+5511987654321". The country code is a fixed literal of the mask.
type Phone struct {
	CountryCode string
}

func (p Phone) countryCode() string {
	if p.CountryCode == "" {
		return DefaultCountryCode
	}
	return p.CountryCode
}

// local drops the country code when the input clearly carries it: either
// written with a leading "+" or longer than the local slots allow.
func (p Phone) local(raw string) string {
	cc := p.countryCode()
	d := Digits(raw)
	withPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")
	if strings.HasPrefix(d, cc) && (withPlus || len(d) > PhoneLocalPattern.Slots()) {
		d = d[len(cc):]
	}
	return truncate(d, PhoneLocalPattern.Slots())
}

func (p Phone) Mask(raw string) string {
	local := p.local(raw)
	if local == "" {
		return ""
	}
	return "+" + p.countryCode() + " " + PhoneLocalPattern.Apply(local)
}

func (p Phone) Format(canonical string) string {
	return p.Mask(canonical)
}

// Parse keeps the digits and a leading "+". Length is bounded by the mask
// slots only; a partial number is passed through.
func (p Phone) Parse(display string) (string, error) {
	s := strings.TrimSpace(display)
	d := truncate(Digits(s), len(p.countryCode())+PhoneLocalPattern.Slots())
	if d == "" {
		return "", nil
	}
	if strings.HasPrefix(s, "+") {
		return "+" + d, nil
	}
	return d, nil
}
