package bytesize

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/calebcase/bytesize/decimal"
	"github.com/calebcase/bytesize/locale"
	"github.com/calebcase/bytesize/unit"
)

// Spec is a parsed size specification before it is truncated to whole
// bytes.
type Spec struct {
	Negative bool
	Value    *big.Rat // Magnitude, in units.
	Unit     unit.Unit
}

// Size returns the spec as a number of bytes. Fractions of a byte are
// truncated toward zero. A spec without a value or with an unknown unit
// returns ErrInvalidSpec.
func (sp Spec) Size() (Size, error) {
	if sp.Value == nil {
		return Size{}, ErrInvalidSpec.New("spec has no value")
	}

	m := sp.Unit.Multiplier()
	if m == nil {
		return Size{}, ErrInvalidSpec.New("unknown unit %s", sp.Unit)
	}

	r := new(big.Rat).Mul(sp.Value, new(big.Rat).SetInt(m))

	b := new(big.Int).Quo(r.Num(), r.Denom())
	if sp.Negative {
		b.Neg(b)
	}

	return Size{bytes: b}, nil
}

// ParseSpec splits text into its exact value and unit. A missing unit is
// B.
func ParseSpec(text string, loc locale.Locale) (sp Spec, err error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Spec{}, ErrInvalidSpec.New("empty size spec")
	}

	blk, n, err := decimal.Scan(s, loc.RadixChar())
	if err != nil {
		return Spec{}, ErrInvalidSpec.Wrap(err)
	}

	u := unit.B

	rest := strings.TrimLeftFunc(s[n:], unicode.IsSpace)
	if rest != "" {
		var ok bool

		u, ok = loc.LookupUnit(rest)
		if !ok {
			return Spec{}, ErrInvalidSpec.New("unknown unit %q in %q", rest, text)
		}
	}

	value := blk.Rat()

	return Spec{
		Negative: value.Sign() < 0,
		Value:    value.Abs(value),
		Unit:     u,
	}, nil
}

// Parse returns the size described by text using '.' as the radix and the
// canonical unit names.
func Parse(text string) (Size, error) {
	return ParseLocale(text, locale.C)
}

// ParseLocale returns the size described by text. The radix and unit names
// of loc are accepted in addition to '.' and the canonical names.
func ParseLocale(text string, loc locale.Locale) (Size, error) {
	sp, err := ParseSpec(text, loc)
	if err != nil {
		return Size{}, err
	}

	return sp.Size()
}

// MustParse is like Parse but panics if text cannot be parsed.
func MustParse(text string) Size {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return s
}
