package internal

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// A Number is a float64 which is guaranteed never to be NaN. The value is
// unexported, so the only ways to get a non-zero Number are NewNumber and
// arithmetic on other Numbers. That makes comparisons total: there is never an
// incomparable pair.
type Number struct {
	value float64
}

func NewNumber(v float64) (Number, error) {
	if math.IsNaN(v) {
		return Number{}, errors.WithStack(ErrNotANumber)
	}
	return Number{v}, nil
}

// Arithmetic results are re-checked. Finite inputs can still produce NaN
// (Inf-Inf, 0*Inf), and that must never leak into a Number.
func mustNumber(v float64) Number {
	n, err := NewNumber(v)
	if err != nil {
		throw(err, "arithmetic produced %v", v)
	}
	return n
}

func (n Number) Float() float64 {
	return n.value
}

func (n Number) Add(other Number) Number {
	return mustNumber(float64(n.value + other.value))
}

func (n Number) Sub(other Number) Number {
	return mustNumber(float64(n.value - other.value))
}

// The conversion rounds the product, so it is never fused into a multiply-add.
func (n Number) Mul(other Number) Number {
	return mustNumber(float64(n.value * other.value))
}

// Three way comparison. Returns -1, 0 or 1.
func (n Number) Cmp(other Number) int {
	switch {
	case n.value < other.value:
		return -1
	case n.value > other.value:
		return 1
	}
	return 0
}

func (n Number) Less(other Number) bool {
	return n.value < other.value
}

func (n Number) Equal(other Number) bool {
	return n.value == other.value
}

func (n Number) Sign() int {
	return n.Cmp(Number{})
}

func (n Number) IsZero() bool {
	return n.value == 0
}

func (n Number) String() string {
	return strconv.FormatFloat(n.value, 'g', -1, 64)
}
