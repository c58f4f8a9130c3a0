// Package math holds the fixed-point helpers shared by the issuance
// accounting formulas. All intermediate arithmetic runs in math/big so
// results match bit-for-bit across replicas regardless of word size.
package math

import (
	"errors"
	"math/big"
)

// Rounding selects the direction a division truncates.
type Rounding uint8

const (
	RoundingDown Rounding = iota
	RoundingUp
)

// Resolution is the Q64 fractional bit width used for rate arithmetic.
const Resolution = 64

var ErrDivisionByZero = errors.New("math: division by zero")

// MulDiv computes x*y/denominator with the requested rounding.
func MulDiv(x, y, denominator *big.Int, rounding Rounding) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	prod := new(big.Int).Mul(x, y)
	if rounding == RoundingUp {
		numerator := new(big.Int).Add(prod, new(big.Int).Sub(denominator, big.NewInt(1)))
		return new(big.Int).Div(numerator, denominator), nil
	}
	return new(big.Int).Div(prod, denominator), nil
}

// MulDivU64 is MulDiv over uint64 operands, erroring when the result does
// not fit back into 64 bits.
func MulDivU64(x, y, denominator uint64, rounding Rounding) (uint64, error) {
	out, err := MulDiv(
		new(big.Int).SetUint64(x),
		new(big.Int).SetUint64(y),
		new(big.Int).SetUint64(denominator),
		rounding,
	)
	if err != nil {
		return 0, err
	}
	return ToU64(out)
}

// MulShr computes x*y >> offset, rounding up when requested.
func MulShr(x, y *big.Int, offset uint, rounding Rounding) *big.Int {
	prod := new(big.Int).Mul(x, y)
	if rounding == RoundingUp {
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), offset), big.NewInt(1))
		prod.Add(prod, mask)
	}
	return prod.Rsh(prod, offset)
}

// ShlDiv computes (x << offset) / denominator, rounding down.
func ShlDiv(x *big.Int, offset uint, denominator *big.Int) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Int).Div(new(big.Int).Lsh(x, offset), denominator), nil
}

var ErrU64Overflow = errors.New("math: value overflows uint64")

// ToU64 converts a non-negative big.Int back to uint64.
func ToU64(x *big.Int) (uint64, error) {
	if x.Sign() < 0 || x.BitLen() > 64 {
		return 0, ErrU64Overflow
	}
	return x.Uint64(), nil
}

// MulU64 multiplies two uint64 values in the big domain.
func MulU64(x, y uint64) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
}

func MinU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func MaxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func MinI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
