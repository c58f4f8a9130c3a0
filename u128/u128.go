// Package u128 provides arithmetic helpers over binary.Uint128 for counters
// that can outgrow 64 bits, such as the cumulative value raised by a mint.
package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
)

var ErrOverflow = errors.New("u128: value overflows 128 bits")

// Zero returns the little-endian zero value.
func Zero() binary.Uint128 {
	return *binary.NewUint128LittleEndian()
}

// FromUint64 widens v to 128 bits.
func FromUint64(v uint64) binary.Uint128 {
	u := binary.NewUint128LittleEndian()
	u.Lo = v
	return *u
}

// FromBig converts a non-negative big.Int, erroring on overflow.
func FromBig(i *big.Int) (binary.Uint128, error) {
	if i.Sign() < 0 || i.BitLen() > 128 {
		return Zero(), ErrOverflow
	}
	u := binary.NewUint128LittleEndian()
	u.Lo = i.Uint64()
	u.Hi = new(big.Int).Rsh(i, 64).Uint64()
	return *u, nil
}

// FromString parses a decimal string. Panics on malformed input; intended
// for constants.
func FromString(num string) binary.Uint128 {
	i, ok := new(big.Int).SetString(num, 10)
	if !ok {
		panic(fmt.Sprintf("u128: malformed number %q", num))
	}
	u, err := FromBig(i)
	if err != nil {
		panic(err)
	}
	return u
}

// Add returns a+b, erroring on overflow.
func Add(a, b binary.Uint128) (binary.Uint128, error) {
	return FromBig(new(big.Int).Add(a.BigInt(), b.BigInt()))
}

// AddBig returns a+b for a big.Int addend, erroring on overflow.
func AddBig(a binary.Uint128, b *big.Int) (binary.Uint128, error) {
	return FromBig(new(big.Int).Add(a.BigInt(), b))
}

// Cmp compares a and b, returning -1, 0 or 1.
func Cmp(a, b binary.Uint128) int {
	return a.BigInt().Cmp(b.BigInt())
}
