package bankist

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds input to roughly the float64 range. Comparing decimals
// rescales both sides to one exponent, so an unbounded "1e2000000000" would
// build a number with billions of digits while the store is locked.
const maxExponent = 330

// parseNumber reads a raw input field. An empty field reads as zero, which
// then fails whatever positivity or equality check follows.
func parseNumber(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedInput, raw)
	}
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent || d.NumDigits()+int(exp) > maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrMalformedInput, raw)
	}
	return d, nil
}

func pinMatches(a *Account, pin decimal.Decimal) bool {
	return pin.Equal(decimal.NewFromInt(int64(a.Pin)))
}
