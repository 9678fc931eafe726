package orderbook

import (
	"encoding/json"
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

const (
	// UintPrecision is precision of decimal places for Uint.
	UintPrecision = 1_000_000_000_000
	// UintComma is the amount of zeros in UintPrecision.
	UintComma = 12
)

// uintMaxValue is the max possible value of the Uint.
var uintMaxValue = Uint{uint128.Max}

// Uint is an unsigned 128-bit fixed-point number with UintPrecision decimal
// precision. All prices and quantities in the order book use Uint so price
// comparisons never go through floating point.
type Uint struct {
	v uint128.Uint128
}

func NewZeroUint() Uint {
	return Uint{}
}

func NewMaxUint() Uint {
	return Uint{uint128.Max}
}

func NewUint(u uint64) Uint {
	return Uint{v: uint128.From64(u)}
}

func NewUintFromStr(v string) (Uint, error) {
	if v == "" {
		return NewZeroUint(), nil
	}

	u, err := uint128.FromString(v)
	if err != nil {
		return Uint{}, err
	}

	return Uint{v: u}, nil
}

// NewUintFromFloatString parses a decimal number string ("123.45") into
// a Uint with UintPrecision decimal places. Excess decimal digits beyond
// UintComma are truncated.
func NewUintFromFloatString(number string) (Uint, error) {
	integer, decimal := splitFloatString(number)

	if len(decimal) > UintComma {
		decimal = decimal[:UintComma]
	}
	decimal += strings.Repeat("0", UintComma-len(decimal))

	result, err := NewUintFromStr(integer)
	if err != nil {
		return Uint{}, err
	}
	result = result.Mul64(UintPrecision)

	fraction, err := NewUintFromStr(strings.TrimLeft(decimal, "0"))
	if err != nil {
		return Uint{}, err
	}

	return result.Add(fraction), nil
}

// ToFloatString formats the Uint as a decimal number string with
// trailing zeros of the fractional part removed.
func (u Uint) ToFloatString() string {
	integer, remainder := u.QuoRem(NewUint(UintPrecision))

	result := integer.String()

	if !remainder.IsZero() {
		fraction := remainder.String()
		fraction = strings.Repeat("0", UintComma-len(fraction)) + fraction
		fraction = strings.TrimRight(fraction, "0")
		result = fmt.Sprintf("%s.%s", result, fraction)
	}

	return result
}

func (u Uint) Add(v Uint) Uint {
	u.v = u.v.Add(v.v)
	return u
}

func (u Uint) Add64(v uint64) Uint {
	u.v = u.v.Add64(v)
	return u
}

func (u Uint) Sub(v Uint) Uint {
	u.v = u.v.Sub(v.v)
	return u
}

func (u Uint) Mul(v Uint) Uint {
	u.v = u.v.Mul(v.v)
	return u
}

func (u Uint) Mul64(v uint64) Uint {
	u.v = u.v.Mul64(v)
	return u
}

func (u Uint) QuoRem(v Uint) (Uint, Uint) {
	var remainder uint128.Uint128
	u.v, remainder = u.v.QuoRem(v.v)
	return u, Uint{v: remainder}
}

func (u Uint) Div64(v uint64) Uint {
	u.v = u.v.Div64(v)
	return u
}

func (u Uint) Cmp(v Uint) int {
	return u.v.Cmp(v.v)
}

func (u Uint) IsZero() bool {
	return u.v.IsZero()
}

func (u Uint) IsMax() bool {
	return u.Equals(uintMaxValue)
}

func (u Uint) Equals(v Uint) bool {
	return u.v.Equals(v.v)
}

func (u Uint) LessThan(v Uint) bool {
	return u.v.Cmp(v.v) < 0
}

func (u Uint) LessThanOrEqualTo(v Uint) bool {
	return u.v.Cmp(v.v) <= 0
}

func (u Uint) GreaterThan(v Uint) bool {
	return u.v.Cmp(v.v) > 0
}

func (u Uint) GreaterThanOrEqualTo(v Uint) bool {
	return u.v.Cmp(v.v) >= 0
}

func (u Uint) String() string {
	return u.v.String()
}

var (
	_ json.Marshaler   = Uint{}
	_ json.Unmarshaler = &Uint{}
)

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint) UnmarshalJSON(data []byte) error {
	u128, err := uint128.FromString(string(data))
	if err != nil {
		return err
	}

	u.v = u128

	return nil
}

func Min(a Uint, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func Max(a Uint, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func splitFloatString(number string) (string, string) {
	parts := strings.SplitN(number, ".", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
