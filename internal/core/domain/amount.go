package domain

import (
	"fmt"
	"math/big"
)

// maxAmount is 2^128 - 1, the largest value the chain's native unit can carry.
var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Amount is a non-negative integer value in the chain's native unit, up to
// 128 bits. The zero value is 0. On the wire it is a decimal string, the same
// encoding the asset registry uses for its U128 amounts.
type Amount struct {
	v *big.Int
}

// NewAmount creates an Amount from a uint64.
func NewAmount(u uint64) Amount {
	return Amount{v: new(big.Int).SetUint64(u)}
}

// ParseAmount parses a decimal string into an Amount.
func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	if v.Sign() < 0 {
		return Amount{}, fmt.Errorf("amount %q is negative", s)
	}
	if v.Cmp(maxAmount) > 0 {
		return Amount{}, fmt.Errorf("amount %q exceeds 128 bits", s)
	}
	return Amount{v: v}, nil
}

func (a Amount) bigInt() *big.Int {
	if a.v == nil {
		return big.NewInt(0)
	}
	return a.v
}

// IsZero reports whether the amount is 0.
func (a Amount) IsZero() bool {
	return a.bigInt().Sign() == 0
}

// IsPositive reports whether the amount is greater than 0.
func (a Amount) IsPositive() bool {
	return a.bigInt().Sign() > 0
}

// Cmp compares a and b, returning -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.bigInt().Cmp(b.bigInt())
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{v: new(big.Int).Add(a.bigInt(), b.bigInt())}
}

// Sub returns a - b and true, or the zero Amount and false on underflow.
func (a Amount) Sub(b Amount) (Amount, bool) {
	r := new(big.Int).Sub(a.bigInt(), b.bigInt())
	if r.Sign() < 0 {
		return Amount{}, false
	}
	return Amount{v: r}, true
}

// PercentFee returns a * rate / 100 with integer truncation.
func (a Amount) PercentFee(rate uint64) Amount {
	r := new(big.Int).Mul(a.bigInt(), new(big.Int).SetUint64(rate))
	return Amount{v: r.Div(r, big.NewInt(100))}
}

// String returns the decimal representation.
func (a Amount) String() string {
	return a.bigInt().String()
}

// MarshalJSON encodes the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON decodes a decimal string amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("amount must be a decimal string, got %s", data)
	}
	parsed, err := ParseAmount(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
