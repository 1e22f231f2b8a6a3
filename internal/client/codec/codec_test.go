package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_Apply(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		digits  string
		want    string
	}{
		{name: "empty", pattern: CPFPattern, digits: "", want: ""},
		{name: "partial stops before literal", pattern: CPFPattern, digits: "123", want: "123"},
		{name: "literal appears with next digit", pattern: CPFPattern, digits: "1234", want: "123.4"},
		{name: "full", pattern: CPFPattern, digits: "12345678901", want: "123.456.789-01"},
		{name: "extra digits dropped", pattern: CPFPattern, digits: "1234567890199", want: "123.456.789-01"},
		{name: "leading literal", pattern: PhoneLocalPattern, digits: "1", want: "(1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Apply(tt.digits))
		})
	}
}

func TestPattern_Slots(t *testing.T) {
	assert.Equal(t, 11, CPFPattern.Slots())
	assert.Equal(t, 11, PhoneLocalPattern.Slots())
}

func TestCPF_RoundTrip(t *testing.T) {
	var c CPF
	for _, d := range []string{"12345678901", "00000000000", "98765432100"} {
		got, err := c.Parse(c.Format(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestCPF_ParseStripsNonDigitsAnywhere(t *testing.T) {
	var c CPF
	for _, in := range []string{"123.456.789-01", "a1b2c3d4e5f6g7h8i9j0k1", " 123 456 789 01 ", "-12345678901-"} {
		got, err := c.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, "12345678901", got, in)
	}
}

func TestCPF_ParseRejectsWrongLength(t *testing.T) {
	var c CPF
	_, err := c.Parse("123.456")
	require.ErrorIs(t, err, ErrInvalidCPF)

	got, err := c.Parse("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCPF_Mask(t *testing.T) {
	var c CPF
	assert.Equal(t, "123.456.7", c.Mask("1234567"))
	assert.Equal(t, "123.456.789-01", c.Mask("123.456.789-0123"))
}

func TestPhone_MaskAndParse(t *testing.T) {
	p := Phone{}
	tests := []struct {
		name      string
		raw       string
		display   string
		canonical string
	}{
		{name: "local digits", raw: "11987654321", display: "+55 (11) 98765-4321", canonical: "+5511987654321"},
		{name: "canonical", raw: "+5511987654321", display: "+55 (11) 98765-4321", canonical: "+5511987654321"},
		{name: "already masked", raw: "+55 (11) 98765-4321", display: "+55 (11) 98765-4321", canonical: "+5511987654321"},
		{name: "country code without plus", raw: "5511987654321", display: "+55 (11) 98765-4321", canonical: "+5511987654321"},
		{name: "partial", raw: "119", display: "+55 (11) 9", canonical: "+55119"},
		{name: "empty", raw: "", display: "", canonical: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := p.Mask(tt.raw)
			assert.Equal(t, tt.display, display)

			canonical, err := p.Parse(display)
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, canonical)
		})
	}
}

func TestPhone_CustomCountryCode(t *testing.T) {
	p := Phone{CountryCode: "351"}
	assert.Equal(t, "+351 (21) 12345-6789", p.Format("+35121123456789"))
	got, err := p.Parse("+351 (21) 12345-6789")
	require.NoError(t, err)
	assert.Equal(t, "+35121123456789", got)
}

func TestPhone_ParseKeepsDigitsAndLeadingPlus(t *testing.T) {
	p := Phone{}
	got, err := p.Parse("+55 (11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, "+5511987654321", got)

	got, err = p.Parse("\t +55 (11) 98765-4321\u00a0")
	require.NoError(t, err)
	assert.Equal(t, "+5511987654321", got)

	got, err = p.Parse("(11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, "11987654321", got)
}

func TestCurrency_FormatAmount(t *testing.T) {
	c := NewCurrency()
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{0.5, "R$ 0,50"},
		{12, "R$ 12,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.8, "R$ 1.234.567,80"},
		{-10, "R$ 10,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.FormatAmount(tt.in), "%v", tt.in)
	}
}

func TestCurrency_ParseAmount(t *testing.T) {
	c := NewCurrency()

	v, err := c.ParseAmount("R$ 1.234,56")
	require.NoError(t, err)
	assert.Equal(t, 1234.56, v)

	v, err = c.ParseAmount("  R$0,5 ")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	v, err = c.ParseAmount("\u00a0R$\t7,25\n")
	require.NoError(t, err)
	assert.Equal(t, 7.25, v)

	v, err = c.ParseAmount("15")
	require.NoError(t, err)
	assert.Equal(t, 15.0, v)

	for _, bad := range []string{"", "R$", "R$ -5,00", "abc", "1,234,5", "1,234", "R$ 1,2,3"} {
		_, err := c.ParseAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestCurrency_RoundTrip(t *testing.T) {
	c := NewCurrency()
	rng := rand.New(rand.NewSource(1))

	cents := []int64{0, 1, 9, 10, 99, 100, 101, 123456, 100000, 99999999}
	for i := 0; i < 500; i++ {
		cents = append(cents, rng.Int63n(1_000_000_000))
	}

	for _, n := range cents {
		x := float64(n) / 100
		display := c.FormatAmount(x)
		got, err := c.ParseAmount(display)
		require.NoError(t, err, display)
		require.Equal(t, x, got, display)
	}
}

func TestCurrency_Mask(t *testing.T) {
	c := NewCurrency()
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "R$", want: ""},
		{raw: "1234,56", want: "R$ 1.234,56"},
		{raw: "1234,5", want: "R$ 1.234,50"},
		{raw: "1234,567", want: "R$ 1.234,56"},
		{raw: "1234.5", want: "R$ 1.234,50"},
		{raw: "1.234", want: "R$ 1.234,00"},
		{raw: "1.234.567", want: "R$ 1.234.567,00"},
		{raw: "007", want: "R$ 7,00"},
		{raw: ",5", want: "R$ 0,50"},
		{raw: "R$ 1.234,56", want: "R$ 1.234,56"},
		{raw: "-42", want: "R$ 42,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Mask(tt.raw), tt.raw)
	}
}

func TestCurrency_CodecStrings(t *testing.T) {
	c := NewCurrency()
	var _ Codec = c

	assert.Equal(t, "R$ 1.234,56", c.Format("1234.56"))
	got, err := c.Parse("R$ 1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got)

	got, err = c.Parse(c.Format("0.1"))
	require.NoError(t, err)
	assert.Equal(t, "0.1", got)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "5511", Digits("+55 (11)"))
	assert.Empty(t, Digits("abc"))
}
