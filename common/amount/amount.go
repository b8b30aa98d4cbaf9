package amount

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// FractionalCount represent the number of under the float point
const FractionalCount = 18

// FractionalMax represent the max value of under the float point
var FractionalMax = Pow10(FractionalCount)

// COIN is 1 coin
var COIN = NewAmount(1, 0)

var zeroInt = big.NewInt(0)

// Amount is the precision float value based on the big.Int
type Amount struct {
	*big.Int
}

func newAmount(value int64) *Amount {
	return &Amount{
		Int: big.NewInt(value),
	}
}

// Zero returns a new zero amount
func Zero() *Amount {
	return newAmount(0)
}

// NewAmount returns the amount that is consisted of the integer and the fractional value
func NewAmount(i uint64, f uint64) *Amount {
	bi := &Amount{Int: new(big.Int).SetUint64(i)}
	bi = bi.Mul(FractionalMax)
	if f == 0 {
		return bi
	}
	return bi.Add(&Amount{Int: new(big.Int).SetUint64(f)})
}

// NewAmountFromUint64 returns the amount of v smallest units
func NewAmountFromUint64(v uint64) *Amount {
	return &Amount{Int: new(big.Int).SetUint64(v)}
}

// NewAmountFromBytes parse the amount from the byte array
func NewAmountFromBytes(bs []byte) *Amount {
	b := newAmount(0)
	b.Int.SetBytes(bs)
	return b
}

// NewAmountFromBigInt wraps the copy of the big.Int
func NewAmountFromBigInt(v *big.Int) *Amount {
	return &Amount{Int: new(big.Int).Set(v)}
}

// Pow10 returns 10^n
func Pow10(n int) *Amount {
	return &Amount{Int: new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)}
}

// MarshalJSON is a marshaler function
func (am *Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + am.Int.String() + `"`), nil
}

// UnmarshalJSON is a unmarshaler function
func (am *Amount) UnmarshalJSON(bs []byte) error {
	if len(bs) < 3 {
		return ErrInvalidAmountFormat
	}
	if bs[0] != '"' || bs[len(bs)-1] != '"' {
		return ErrInvalidAmountFormat
	}
	v, ok := new(big.Int).SetString(string(bs[1:len(bs)-1]), 10)
	if !ok {
		return ErrInvalidAmountFormat
	}
	am.Int = v
	return nil
}

// Clone returns the clonend value of it
func (am *Amount) Clone() *Amount {
	c := newAmount(0)
	c.Int.Set(am.Int)
	return c
}

// Add returns a + b (*immutable)
func (am *Amount) Add(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Add(am.Int, b.Int)
	return c
}

// Sub returns a - b (*immutable)
func (am *Amount) Sub(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Sub(am.Int, b.Int)
	return c
}

// Div returns a / b (*immutable)
func (am *Amount) Div(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Div(am.Int, b.Int)
	return c
}

// DivC returns a / b (*immutable)
func (am *Amount) DivC(b int64) *Amount {
	c := newAmount(0)
	c.Int.Div(am.Int, big.NewInt(b))
	return c
}

// Mul returns a * b (*immutable)
func (am *Amount) Mul(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Mul(am.Int, b.Int)
	return c
}

// MulC returns a * b (*immutable)
func (am *Amount) MulC(b int64) *Amount {
	c := newAmount(0)
	c.Int.Mul(am.Int, big.NewInt(b))
	return c
}

// MulDiv returns a * b / c (*immutable)
func (am *Amount) MulDiv(b *Amount, c *Amount) *Amount {
	return am.Mul(b).Div(c)
}

// IsZero returns a == 0
func (am *Amount) IsZero() bool {
	return am.Int.Cmp(zeroInt) == 0
}

// IsPlus returns a > 0
func (am *Amount) IsPlus() bool {
	return am.Int.Cmp(zeroInt) > 0
}

// IsMinus returns a < 0
func (am *Amount) IsMinus() bool {
	return am.Int.Cmp(zeroInt) < 0
}

// Less returns a < b
func (am *Amount) Less(b *Amount) bool {
	return am.Int.Cmp(b.Int) < 0
}

// Equal checks that two values is same or not
func (am *Amount) Equal(b *Amount) bool {
	return am.Int.Cmp(b.Int) == 0
}

// Min returns the smaller of a and b
func Min(a *Amount, b *Amount) *Amount {
	if a.Less(b) {
		return a
	}
	return b
}

// String returns the float string of the amount
func (am *Amount) String() string {
	return am.FormatUnits(FractionalCount)
}

// FormatUnits returns the float string of the amount with the given decimals
func (am *Amount) FormatUnits(decimals int) string {
	if am.IsZero() {
		return "0"
	}
	str := new(big.Int).Abs(am.Int).String()
	sign := ""
	if am.IsMinus() {
		sign = "-"
	}
	if decimals <= 0 {
		return sign + str
	}
	if len(str) <= decimals {
		str = strings.Repeat("0", decimals-len(str)+1) + str
	}
	si := str[:len(str)-decimals]
	sf := strings.TrimRight(str[len(str)-decimals:], "0")
	if len(sf) > 0 {
		return sign + si + "." + sf
	}
	return sign + si
}

// ParseAmount parse the amount from the float string
func ParseAmount(str string) (*Amount, error) {
	return ParseUnits(str, FractionalCount)
}

// ParseUnits parse the amount from the float string of an asset with the given decimals
func ParseUnits(str string, decimals int) (*Amount, error) {
	str = strings.TrimSpace(str)
	ls := strings.SplitN(str, ".", 2)
	ip := ls[0]
	fp := ""
	if len(ls) == 2 {
		fp = ls[1]
	}
	if len(ip) == 0 && len(fp) == 0 {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	if len(fp) > decimals {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	digits := ip + fp + strings.Repeat("0", decimals-len(fp))
	if strings.ContainsAny(digits, "+-") {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	bi, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	return &Amount{Int: bi}, nil
}

// MustParseAmount parse the amount from the float string
func MustParseAmount(str string) *Amount {
	am, err := ParseAmount(str)
	if err != nil {
		panic(err)
	}
	return am
}

// MustParseUnits parse the amount with the given decimals
func MustParseUnits(str string, decimals int) *Amount {
	am, err := ParseUnits(str, decimals)
	if err != nil {
		panic(err)
	}
	return am
}
