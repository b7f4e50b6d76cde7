// Package money holds the exact BRL amount type used across the pricing
// engine and the normalization between pt-BR formatted text and decimals.
//
// Rounding policy (service-wide): round half away from zero at 2 decimal
// places, applied only at defined checkpoints: after a multiplication and
// after the final margin application. Sums of already-rounded values are
// never re-rounded.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("negative amount")

// Money is an exact monetary amount in BRL with scale 2.
//
// The zero value is R$ 0,00. Money is immutable: arithmetic returns new
// values. Amounts are non-negative by construction; there are no negative
// prices or costs in this domain.
type Money struct {
	amount decimal.Decimal
}

// Zero is R$ 0,00.
var Zero = Money{}

// New builds a Money from a decimal, rounding half away from zero to 2
// places. Negative input fails with ErrNegativeAmount.
func New(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: d.Round(2)}, nil
}

// NewFromString builds a Money from a machine-formatted decimal string
// ("1234.56"). Locale-formatted user input goes through ParseAmount instead.
func NewFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, err
	}
	return New(d)
}

// MustFromString is NewFromString that panics on error. Test fixtures only.
func MustFromString(s string) Money {
	m, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the machine format with exactly 2 decimals ("1234.56").
// This is the representation persisted by the repositories.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount)}
}

// Mul multiplies by a non-negative factor and rounds at the checkpoint.
func (m Money) Mul(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: m.amount.Mul(factor).Round(2)}, nil
}

// MulInt multiplies by a unit count. Integer multiples of a scale-2 amount
// need no rounding.
func (m Money) MulInt(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n))}
}

func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

func (m Money) LessThan(o Money) bool {
	return m.amount.LessThan(o.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}
