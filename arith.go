package bytesize

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/calebcase/bytesize/decimal"
	"github.com/calebcase/bytesize/integer"
	"github.com/calebcase/bytesize/locale"
	"github.com/calebcase/bytesize/unit"
)

// TrueDivPrecision is the number of significant digits TrueDiv keeps.
const TrueDivPrecision = 50

// Round is a rounding direction.
type Round int

// Rounding directions.
const (
	RoundUp Round = iota
	RoundDown
	RoundHalfUp
)

func (r Round) String() string {
	switch r {
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	case RoundHalfUp:
		return "half-up"
	}

	return fmt.Sprintf("Round(%d)", int(r))
}

// ParseRound returns the direction named "up", "down" or "half-up".
func ParseRound(name string) (Round, error) {
	switch strings.ToLower(name) {
	case "up":
		return RoundUp, nil
	case "down":
		return RoundDown, nil
	case "half-up", "halfup", "half_up":
		return RoundHalfUp, nil
	}

	return 0, ErrInvalidSpec.New("unknown rounding direction %q", name)
}

// Add returns s + o.
func (s Size) Add(o Size) Size {
	return Size{bytes: new(big.Int).Add(s.value(), o.value())}
}

// AddBytes returns s + n.
func (s Size) AddBytes(n uint64) Size {
	r, err := s.addBytesFast(n)
	if err == nil {
		return r
	}

	return s.Add(FromBytes(n, 1))
}

func (s Size) addBytesFast(n uint64) (Size, error) {
	// Negative sizes have no uint64 form.
	m, err := integer.Uint64(s.value())
	if err != nil {
		return Size{}, err
	}

	sum, err := integer.Add(m, n)
	if err != nil {
		return Size{}, err
	}

	return FromBytes(sum, 1), nil
}

// Sub returns s - o.
func (s Size) Sub(o Size) Size {
	return Size{bytes: new(big.Int).Sub(s.value(), o.value())}
}

// SubBytes returns s - n.
func (s Size) SubBytes(n uint64) Size {
	return s.Sub(FromBytes(n, 1))
}

// Neg returns -s.
func (s Size) Neg() Size {
	return Size{bytes: new(big.Int).Neg(s.value())}
}

// Abs returns |s|.
func (s Size) Abs() Size {
	return Size{bytes: s.magnitude()}
}

// Grow adds o to s.
func (s *Size) Grow(o Size) {
	*s = s.Add(o)
}

// GrowBytes adds n to s.
func (s *Size) GrowBytes(n uint64) {
	*s = s.AddBytes(n)
}

// Shrink subtracts o from s.
func (s *Size) Shrink(o Size) {
	*s = s.Sub(o)
}

// ShrinkBytes subtracts n from s.
func (s *Size) ShrinkBytes(n uint64) {
	*s = s.SubBytes(n)
}

// MulInt returns s * n.
func (s Size) MulInt(n uint64) Size {
	r, err := s.mulIntFast(n)
	if err == nil {
		return r
	}

	return Size{bytes: new(big.Int).Mul(s.value(), new(big.Int).SetUint64(n))}
}

func (s Size) mulIntFast(n uint64) (Size, error) {
	m, err := integer.Uint64(s.magnitude())
	if err != nil {
		return Size{}, err
	}

	p, err := integer.Mul(m, n)
	if err != nil {
		return Size{}, err
	}

	return FromBytes(p, s.Sign()), nil
}

// GrowMulInt multiplies s by n.
func (s *Size) GrowMulInt(n uint64) {
	*s = s.MulInt(n)
}

// MulRat returns s * r rounded to the nearest byte. Ties round away from
// zero.
func (s Size) MulRat(r *big.Rat) Size {
	p := new(big.Rat).Mul(new(big.Rat).SetInt(s.value()), r)

	d, err := decimal.QuoRound(p.Num(), p.Denom(), 0)
	if err != nil {
		// The denominator of a big.Rat is never zero.
		panic(err)
	}

	return Size{bytes: new(big.Int).Set(d.UnscaledBig())}
}

// MulDecimal returns s multiplied by the decimal literal text, e.g. "1.51"
// or "-2e3", rounded to the nearest byte.
func (s Size) MulDecimal(text string) (Size, error) {
	return s.MulDecimalLocale(text, locale.C)
}

// MulDecimalLocale is like MulDecimal but also accepts the radix of loc.
func (s Size) MulDecimalLocale(text string, loc locale.Locale) (Size, error) {
	blk, err := decimal.Parse(strings.TrimSpace(text), loc.RadixChar())
	if err != nil {
		return Size{}, ErrInvalidSpec.Wrap(err)
	}

	return s.MulRat(blk.Rat()), nil
}

// GrowMulDecimal multiplies s by the decimal literal text. s is unchanged on
// error.
func (s *Size) GrowMulDecimal(text string) (err error) {
	v, err := s.MulDecimal(text)
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// Div returns the whole number of times o fits in s. The magnitude of the
// quotient is floor(|s| / |o|) and its sign is the product of the signs.
func (s Size) Div(o Size) (*big.Int, error) {
	if o.IsZero() {
		return nil, ErrZeroDiv.New("%s / 0", s.value())
	}

	q := new(big.Int).Quo(s.magnitude(), o.magnitude())
	if s.Sign()*o.Sign() < 0 {
		q.Neg(q)
	}

	return q, nil
}

// DivUint64 is like Div but returns the quotient as a magnitude and sign.
// Quotients of 2^64 or more return ErrOverflow.
func (s Size) DivUint64(o Size) (q uint64, sign int, err error) {
	b, err := s.Div(o)
	if err != nil {
		return 0, 0, err
	}

	q, err = integer.Uint64(new(big.Int).Abs(b))
	if err != nil {
		return 0, 0, ErrOverflow.New("quotient %s does not fit in 64 bits", b)
	}

	return q, b.Sign(), nil
}

// DivInt returns s / n. The magnitude is floor(|s| / n) and the sign is the
// sign of s.
func (s Size) DivInt(n uint64) (Size, error) {
	if n == 0 {
		return Size{}, ErrZeroDiv.New("%s / 0", s.value())
	}

	r, err := s.divIntFast(n)
	if err == nil {
		return r, nil
	}

	q := new(big.Int).Quo(s.magnitude(), new(big.Int).SetUint64(n))
	if s.Sign() < 0 {
		q.Neg(q)
	}

	return Size{bytes: q}, nil
}

func (s Size) divIntFast(n uint64) (Size, error) {
	m, err := integer.Uint64(s.magnitude())
	if err != nil {
		return Size{}, err
	}

	q, _, err := integer.QuoRem(m, n)
	if err != nil {
		return Size{}, err
	}

	return FromBytes(q, s.Sign()), nil
}

// ShrinkDivInt divides s by n. s is unchanged on error.
func (s *Size) ShrinkDivInt(n uint64) (err error) {
	v, err := s.DivInt(n)
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// Mod returns |s| mod |o|. The result is never negative.
func (s Size) Mod(o Size) (Size, error) {
	if o.IsZero() {
		return Size{}, ErrZeroDiv.New("%s mod 0", s.value())
	}

	return Size{bytes: new(big.Int).Rem(s.magnitude(), o.magnitude())}, nil
}

// DivMod returns Div(o) and Mod(o) together.
func (s Size) DivMod(o Size) (q *big.Int, r Size, err error) {
	q, err = s.Div(o)
	if err != nil {
		return nil, Size{}, err
	}

	r, err = s.Mod(o)
	if err != nil {
		return nil, Size{}, err
	}

	return q, r, nil
}

// DivModInt returns DivInt(n) and |s| mod n together.
func (s Size) DivModInt(n uint64) (q, r Size, err error) {
	q, err = s.DivInt(n)
	if err != nil {
		return Size{}, Size{}, err
	}

	r, err = s.Mod(FromBytes(n, 1))
	if err != nil {
		return Size{}, Size{}, err
	}

	return q, r, nil
}

// Ratio returns s / o exactly.
func (s Size) Ratio(o Size) (*big.Rat, error) {
	if o.IsZero() {
		return nil, ErrZeroDiv.New("%s / 0", s.value())
	}

	return new(big.Rat).SetFrac(s.Big(), o.Big()), nil
}

// TrueDiv returns s / o as decimal text. The quotient is rounded half away
// from zero to TrueDivPrecision significant digits, so the result is not
// exact in general. Use Ratio for the exact value.
func (s Size) TrueDiv(o Size) (string, error) {
	if o.IsZero() {
		return "", ErrZeroDiv.New("%s / 0", s.value())
	}

	places := TrueDivPrecision - (decimal.Digits(s.value()) - decimal.Digits(o.value()))
	if places < 0 {
		places = 0
	}

	d, err := decimal.QuoRound(s.value(), o.value(), places)
	if err != nil {
		return "", ErrZeroDiv.Wrap(err)
	}

	return decimal.Format(d, decimal.Radix), nil
}

// TrueDivInt returns s / n as decimal text. See TrueDiv.
func (s Size) TrueDivInt(n uint64) (string, error) {
	return s.TrueDiv(FromBytes(n, 1))
}

// RoundToNearest returns s rounded to a multiple of |to|. RoundUp rounds
// toward positive infinity, RoundDown toward negative infinity and
// RoundHalfUp to the nearest multiple with ties away from zero.
func (s Size) RoundToNearest(to Size, dir Round) (Size, error) {
	if to.IsZero() {
		return Size{}, ErrZeroDiv.New("round %s to 0", s.value())
	}

	m := to.magnitude()
	v := s.value()

	// m > 0, so q is floor(v / m) and r is in [0, m).
	q, r := new(big.Int).DivMod(v, m, new(big.Int))

	switch dir {
	case RoundDown:
	case RoundUp:
		if r.Sign() != 0 {
			q.Add(q, big.NewInt(1))
		}
	case RoundHalfUp:
		c := r.Lsh(r, 1).Cmp(m)
		if c > 0 || (c == 0 && v.Sign() >= 0) {
			q.Add(q, big.NewInt(1))
		}
	default:
		return Size{}, ErrInvalidSpec.New("unknown rounding direction %s", dir)
	}

	return Size{bytes: q.Mul(q, m)}, nil
}

// RoundToUnit returns s rounded to a multiple of u.
func (s Size) RoundToUnit(u unit.Unit, dir Round) (Size, error) {
	to, err := FromUnit(u)
	if err != nil {
		return Size{}, err
	}

	return s.RoundToNearest(to, dir)
}
