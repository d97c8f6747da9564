package bytesize

import (
	"math/big"

	"github.com/calebcase/bytesize/decimal"
	"github.com/calebcase/bytesize/locale"
	"github.com/calebcase/bytesize/unit"
)

// Rat returns s expressed in u exactly.
func (s Size) Rat(u unit.Unit) (*big.Rat, error) {
	m := u.Multiplier()
	if m == nil {
		return nil, ErrInvalidSpec.New("unknown unit %s", u)
	}

	return new(big.Rat).SetFrac(s.Big(), m), nil
}

// ConvertTo returns s expressed in u as exact decimal text, e.g. "1.5" for
// 1536 bytes in KiB. Every multiplier is a power of two or ten, so the
// expansion always terminates.
func (s Size) ConvertTo(u unit.Unit) (string, error) {
	m := u.Multiplier()
	if m == nil {
		return "", ErrInvalidSpec.New("unknown unit %s", u)
	}

	d, err := decimal.QuoExact(s.value(), m)
	if err != nil {
		return "", ErrInvalidSpec.Wrap(err)
	}

	return decimal.Format(d, decimal.Radix), nil
}

// bestUnit returns the largest unit of floor's family, no smaller than
// floor, that is at most |s|.
func (s Size) bestUnit(floor unit.Unit) unit.Unit {
	ladder := unit.Ladder(floor.Family())

	i := 0
	for i < len(ladder) && ladder[i] != floor {
		i++
	}

	mag := s.magnitude()
	for i+1 < len(ladder) && mag.Cmp(ladder[i+1].Multiplier()) >= 0 {
		i++
	}

	return ladder[i]
}

// HumanReadable returns s in the largest unit, no smaller than minUnit, in
// which its magnitude is at least one. The family of minUnit selects the
// ladder (B selects the binary one). The value is rounded half away from
// zero to maxPlaces digits after the radix; a negative maxPlaces keeps every
// digit. Trailing zeros of the fraction are dropped.
//
// A nil loc formats with '.' and canonical unit names. An invalid minUnit is
// treated as B.
func (s Size) HumanReadable(minUnit unit.Unit, maxPlaces int, loc *locale.Locale) string {
	if !minUnit.Valid() {
		minUnit = unit.B
	}

	u := s.bestUnit(minUnit)

	// The quotient of an integer by a power of two or ten always
	// terminates.
	d, err := decimal.QuoExact(s.value(), u.Multiplier())
	if err != nil {
		panic(err)
	}

	d = decimal.Round(d, maxPlaces)

	radix := decimal.Radix
	name := u.String()

	if loc != nil {
		radix = loc.RadixChar()
		name = loc.UnitName(u)
	}

	return decimal.Format(d, radix) + " " + name
}

// String implements fmt.Stringer with at most two places, e.g. "1.5 KiB".
func (s Size) String() string {
	return s.HumanReadable(unit.B, 2, nil)
}
