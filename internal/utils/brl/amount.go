// Package brl converts Brazilian real amounts between user input, display text and the
// canonical two-decimal form sent to the server.
package brl

import (
	"math"

	"github.com/shopspring/decimal"
)

// Symbol is the currency symbol used in display strings.
const Symbol = "R$"

// Amount is a monetary value in centavos (minor units).
type Amount int64

// Zero is the amount every unparseable input degrades to.
const Zero Amount = 0

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// FromCents builds an Amount from a count of centavos.
func FromCents(cents int64) Amount {
	return Amount(cents)
}

// FromDecimal rounds d half away from zero to centavos.
// Values outside the int64 range of centavos yield Zero.
func FromDecimal(d decimal.Decimal) Amount {
	cents := d.Round(2).Shift(2)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return Zero
	}
	return Amount(cents.IntPart())
}

// Cents returns the amount in centavos.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Decimal returns the amount in reais as an exact decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// IsWhole reports whether the amount has no centavos.
func (a Amount) IsWhole() bool {
	return a%100 == 0
}

// String returns the canonical form, e.g. "1234.56".
func (a Amount) String() string {
	return FormatCanonical(a)
}

// parts splits the amount into sign, whole reais and centavos without
// overflowing on math.MinInt64.
func (a Amount) parts() (negative bool, units uint64, cents uint64) {
	u := uint64(a)
	if a < 0 {
		negative = true
		u = uint64(-(a + 1)) + 1
	}
	return negative, u / 100, u % 100
}
