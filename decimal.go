package jsonmodel

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Decimal is an arbitrary-precision decimal number: an unscaled integer plus
// the count of digits after the decimal point. Unlike float64 it preserves
// every digit of its textual source, including trailing zeros.
type Decimal struct {
	unscaled *big.Int
	scale    int
}

// ParseDecimal parses a decimal string such as "-123.4500" or "1.5e3".
// Plain and exponent notation are accepted; anything else is an error.
func ParseDecimal(text string) (Decimal, error) {
	mantissa := text
	exponent := 0
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		parsed, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return Decimal{}, fmt.Errorf("malformed decimal %q", text)
		}
		mantissa, exponent = text[:i], parsed
	}
	scale := 0
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		fraction := mantissa[i+1:]
		if fraction == "" || strings.IndexByte(fraction, '.') >= 0 {
			return Decimal{}, fmt.Errorf("malformed decimal %q", text)
		}
		mantissa = mantissa[:i] + fraction
		scale = len(fraction)
	}
	unscaled, ok := new(big.Int).SetString(mantissa, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("malformed decimal %q", text)
	}
	scale -= exponent
	if scale < 0 {
		shift := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-scale)), nil)
		unscaled.Mul(unscaled, shift)
		scale = 0
	}
	return Decimal{unscaled: unscaled, scale: scale}, nil
}

// String renders the canonical decimal form, preserving the full precision
// the value was parsed with.
func (d Decimal) String() string {
	if d.unscaled == nil {
		return "0"
	}
	digits := d.unscaled.String()
	if d.scale == 0 {
		return digits
	}
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	for len(digits) <= d.scale {
		digits = "0" + digits
	}
	split := len(digits) - d.scale
	result := digits[:split] + "." + digits[split:]
	if negative {
		result = "-" + result
	}
	return result
}

// Rat returns the exact value as a big.Rat.
func (d Decimal) Rat() *big.Rat {
	if d.unscaled == nil {
		return new(big.Rat)
	}
	denominator := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.scale)), nil)
	return new(big.Rat).SetFrac(new(big.Int).Set(d.unscaled), denominator)
}

// Float64 returns the nearest float64, which may lose precision.
func (d Decimal) Float64() float64 {
	result, _ := d.Rat().Float64()
	return result
}
