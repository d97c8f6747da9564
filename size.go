package bytesize

import (
	"math/big"

	"github.com/calebcase/bytesize/integer"
	"github.com/calebcase/bytesize/unit"
)

var zero = new(big.Int)

// Size is a signed number of bytes. The zero value is zero bytes.
//
// Size is a value type: assignment copies it. Operations never write
// through the internal integer, so copies are independent even across the
// in place Grow and Shrink methods.
//
// Reflection based dumpers such as go-spew mishandle the unexported
// pointer field and may crash on negative sizes; give them Big() instead.
type Size struct {
	bytes *big.Int
}

// New returns a zero size.
func New() Size {
	return Size{}
}

// FromBytes returns a size of bytes. A sign of -1 makes it negative, any
// other sign leaves it positive (or zero).
func FromBytes(bytes uint64, sign int) Size {
	i := new(big.Int).SetUint64(bytes)
	if sign == -1 {
		i.Neg(i)
	}

	return Size{bytes: i}
}

// FromInt64 returns a size of n bytes.
func FromInt64(n int64) Size {
	return Size{bytes: big.NewInt(n)}
}

// FromBig returns a size of i bytes. i is copied.
func FromBig(i *big.Int) Size {
	return Size{bytes: new(big.Int).Set(i)}
}

// FromUnit returns a size of exactly one u.
func FromUnit(u unit.Unit) (Size, error) {
	m := u.Multiplier()
	if m == nil {
		return Size{}, ErrInvalidSpec.New("unknown unit %s", u)
	}

	return Size{bytes: m}, nil
}

// value returns the integer backing s. It must not be modified.
func (s Size) value() *big.Int {
	if s.bytes == nil {
		return zero
	}

	return s.bytes
}

// magnitude returns |s| as a new integer.
func (s Size) magnitude() *big.Int {
	return new(big.Int).Abs(s.value())
}

// Copy returns an independent copy of s.
func (s Size) Copy() Size {
	return FromBig(s.value())
}

// Sign returns -1, 0 or +1.
func (s Size) Sign() int {
	return s.value().Sign()
}

// IsZero returns true if s is zero bytes.
func (s Size) IsZero() bool {
	return s.Sign() == 0
}

// Big returns s as a new integer.
func (s Size) Big() *big.Int {
	return new(big.Int).Set(s.value())
}

// Bytes returns the magnitude and sign of s. Magnitudes of 2^64 or more
// return ErrOverflow; use BytesString or Big for those.
func (s Size) Bytes() (bytes uint64, sign int, err error) {
	bytes, err = integer.Uint64(s.magnitude())
	if err != nil {
		return 0, 0, ErrOverflow.New("size %s does not fit in 64 bits", s.value())
	}

	return bytes, s.Sign(), nil
}

// BytesString returns the signed number of bytes as decimal text.
func (s Size) BytesString() string {
	return s.value().String()
}

// MarshalText implements encoding.TextMarshaler. The text is the exact
// human readable form, e.g. "1.5 KiB".
func (s Size) MarshalText() (text []byte, err error) {
	return []byte(s.HumanReadable(unit.B, -1, nil)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The magnitude is
// encoded big-endian with the sign in the lowest bit.
func (s Size) MarshalBinary() (data []byte, err error) {
	return integer.FromBig(s.value()).MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Size) UnmarshalBinary(data []byte) (err error) {
	blk := integer.Block{}

	err = blk.UnmarshalBinary(data)
	if err != nil {
		return ErrInvalidSpec.Wrap(err)
	}

	s.bytes = blk.Big()

	return nil
}
