// Package integer provides the sign and magnitude form of byte counts.
//
// A Block is the binary encoding of a signed integer: the magnitude is
// shifted left by one bit and the freed low bit carries the sign (aka
// zigzag). The encoding is big-endian.
//
//  +1    -> 0b0000_0010
//  -1    -> 0b0000_0011
//  +127  -> 0b1111_1110
//  -127  -> 0b1111_1111
//
// The package also carries the fixed width (uint64) fast path used for
// common arithmetic. Fast path operations never wrap: results that do not
// fit return an ErrOverflow error and the caller is expected to redo the
// operation with math/big.
package integer

import (
	"math/big"
	"math/bits"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// ErrOverflow is the class of errors returned when a fast path result does
// not fit in 64 bits.
var ErrOverflow = errs.Class("overflow")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i.
func FromBig(i *big.Int) Block {
	value := new(big.Int).Abs(i).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(value) == 0 {
		value = []byte{0}
	}

	return Block{
		Value:    value,
		Negative: i.Sign() < 0,
	}
}

// Big returns the block as a new integer. A negative zero is zero.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Uint64 returns i as a uint64. Negative values and values of 2^64 or more
// overflow.
func Uint64(i *big.Int) (uint64, error) {
	if i.Sign() < 0 || !i.IsUint64() {
		return 0, ErrOverflow.New("%s does not fit in 64 bits", i)
	}

	return i.Uint64(), nil
}

// Add returns x + y.
func Add(x, y uint64) (uint64, error) {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return 0, ErrOverflow.New("%d + %d", x, y)
	}

	return sum, nil
}

// Mul returns x * y.
func Mul(x, y uint64) (uint64, error) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return 0, ErrOverflow.New("%d * %d", x, y)
	}

	return lo, nil
}

// QuoRem returns the truncated quotient and the remainder of x / y.
func QuoRem(x, y uint64) (q, r uint64, err error) {
	if y == 0 {
		return 0, 0, Error.New("division by zero")
	}

	return x / y, x % y, nil
}
