package domain

import (
	"fmt"
	"math/big"
)

// Money is a monetary amount backed by big.Rat so that aggregation over
// large order sets never accumulates floating-point drift. The zero value
// is zero and safe to use; all operations return new instances.
type Money struct {
	amount *big.Rat
}

// NewMoney creates Money from whole currency units (e.g. NewMoney(1000) = 1000.00)
func NewMoney(units int64) Money {
	return Money{amount: big.NewRat(units, 1)}
}

// NewMoneyFromDecimal creates Money from a decimal string such as "1499.50"
func NewMoneyFromDecimal(decimal string) (Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return Money{}, fmt.Errorf("invalid decimal amount: %s", decimal)
	}
	return Money{amount: rat}, nil
}

func (m Money) rat() *big.Rat {
	if m.amount == nil {
		return big.NewRat(0, 1)
	}
	return m.amount
}

// Add returns the sum of m and other
func (m Money) Add(other Money) Money {
	return Money{amount: new(big.Rat).Add(m.rat(), other.rat())}
}

// Sub returns the difference of m and other
func (m Money) Sub(other Money) Money {
	return Money{amount: new(big.Rat).Sub(m.rat(), other.rat())}
}

// Cmp compares m and other: -1 if m < other, 0 if equal, +1 if m > other
func (m Money) Cmp(other Money) int {
	return m.rat().Cmp(other.rat())
}

// IsZero reports whether the amount is exactly zero
func (m Money) IsZero() bool {
	return m.rat().Sign() == 0
}

// IsPositive reports whether the amount is greater than zero
func (m Money) IsPositive() bool {
	return m.rat().Sign() > 0
}

// Rat returns a copy of the underlying rational amount
func (m Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat())
}

// String returns the amount as a decimal string with two digits ("1499.50")
func (m Money) String() string {
	return m.rat().FloatString(2)
}

// MarshalJSON encodes the amount as a JSON number with two decimal digits
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.rat().FloatString(2)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string. A null or
// missing amount decodes to zero, matching how the storefront omits prices
// on malformed entities.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		m.amount = big.NewRat(0, 1)
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		m.amount = big.NewRat(0, 1)
		return nil
	}
	rat := new(big.Rat)
	if _, ok := rat.SetString(s); !ok {
		return fmt.Errorf("invalid monetary amount: %s", string(data))
	}
	m.amount = rat
	return nil
}
