package domain

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Amount is a token or native-currency quantity in base units.
// It is a value type and can be compared with ==.
type Amount struct {
	v uint256.Int
}

// Zero is the zero amount.
var Zero = Amount{} //nolint: gochecknoglobals

// MaxAmount is 2^256-1. An allowance of MaxAmount is never decremented.
var MaxAmount = AmountFromUint256(new(uint256.Int).SetAllOne()) //nolint: gochecknoglobals

// NewAmount returns an Amount holding v base units.
func NewAmount(v uint64) Amount {
	var a Amount
	a.v.SetUint64(v)

	return a
}

// AmountFromUint256 copies x into an Amount.
func AmountFromUint256(x *uint256.Int) Amount {
	var a Amount
	a.v.Set(x)

	return a
}

// ParseAmount parses a base-unit decimal string such as "1000000000000000000".
func ParseAmount(s string) (Amount, error) {
	x, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return AmountFromUint256(x), nil
}

// MustParseAmount is like ParseAmount but panics on malformed input.
// It is meant for constants and tests.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}

	return a
}

// ParseUnits converts a human-readable quantity ("0.1", "1000000000") into
// base units with the given number of decimals. Fractions finer than the
// token precision are rejected.
func ParseUnits(s string, decimals uint8) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("quantity %q cannot be negative", s)
	}

	shifted := d.Shift(int32(decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return Amount{}, fmt.Errorf("quantity %q has more than %d decimals", s, decimals)
	}

	x, overflow := uint256.FromBig(shifted.BigInt())
	if overflow {
		return Amount{}, fmt.Errorf("quantity %q overflows 256 bits", s)
	}

	return AmountFromUint256(x), nil
}

// Uint256 returns a copy of the amount as *uint256.Int.
func (a Amount) Uint256() *uint256.Int {
	return new(uint256.Int).Set(&a.v)
}

// Decimal returns the amount expressed in human units.
func (a Amount) Decimal(decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(a.v.ToBig(), -int32(decimals))
}

// FormatUnits renders the amount in human units, e.g. "0.97" for 97e16
// base units with 18 decimals.
func (a Amount) FormatUnits(decimals uint8) string {
	return a.Decimal(decimals).String()
}

// String returns the base-unit decimal representation.
func (a Amount) String() string {
	return a.v.Dec()
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Lt reports whether a < b.
func (a Amount) Lt(b Amount) bool {
	return a.v.Lt(&b.v)
}

// Add returns a + b. Callers add quantities bounded by the total supply,
// which never comes close to 2^256; use AddChecked for unbounded inputs.
func (a Amount) Add(b Amount) Amount {
	var r Amount
	r.v.Add(&a.v, &b.v)

	return r
}

// AddChecked returns a + b and reports whether the sum overflowed.
func (a Amount) AddChecked(b Amount) (Amount, bool) {
	var r Amount
	_, overflow := r.v.AddOverflow(&a.v, &b.v)

	return r, overflow
}

// Sub returns a - b and reports whether the subtraction underflowed.
// On underflow the returned amount must be ignored.
func (a Amount) Sub(b Amount) (Amount, bool) {
	var r Amount
	_, underflow := r.v.SubOverflow(&a.v, &b.v)

	return r, underflow
}

// MustSub returns a - b and panics on underflow. Only used where b <= a is
// guaranteed by construction.
func (a Amount) MustSub(b Amount) Amount {
	r, underflow := a.Sub(b)
	if underflow {
		panic(fmt.Sprintf("amount underflow: %s - %s", a, b))
	}

	return r
}

// Div returns floor(a / n); division by zero yields zero.
func (a Amount) Div(n uint64) Amount {
	var r Amount
	r.v.Div(&a.v, uint256.NewInt(n))

	return r
}

// PercentOf returns floor(a * pct / 100). The computation splits a into
// quotient and remainder of 100 so it cannot overflow for pct <= 100.
func (a Amount) PercentOf(pct uint8) Amount {
	hundred := uint256.NewInt(100)
	p := uint256.NewInt(uint64(pct))

	var q, r uint256.Int
	q.DivMod(&a.v, hundred, &r)
	q.Mul(&q, p)
	r.Mul(&r, p)
	r.Div(&r, hundred)

	var out Amount
	out.v.Add(&q, &r)

	return out
}

// MulDiv returns floor(a * b / c) and reports an error when c is zero or the
// intermediate product overflows.
func (a Amount) MulDiv(b, c Amount) (Amount, error) {
	if c.IsZero() {
		return Amount{}, fmt.Errorf("division by zero")
	}

	var prod uint256.Int
	if _, overflow := prod.MulOverflow(&a.v, &b.v); overflow {
		return Amount{}, fmt.Errorf("multiplication overflow: %s * %s", a, b)
	}

	var out Amount
	out.v.Div(&prod, &c.v)

	return out, nil
}

// Min returns the smaller of a and b.
func Min(a, b Amount) Amount {
	if a.Lt(b) {
		return a
	}

	return b
}

// Sqrt returns floor(sqrt(a)).
func (a Amount) Sqrt() Amount {
	var out Amount
	out.v.Sqrt(&a.v)

	return out
}
