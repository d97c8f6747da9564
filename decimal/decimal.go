package decimal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
	"gopkg.in/inf.v0"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// MaxScale is the largest allowed magnitude of a scale.
const MaxScale = 1 << 21

// Radix is the radix that is always accepted.
const Radix = "."

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	five = big.NewInt(5)
	ten  = big.NewInt(10)
)

// Block is a fixed point base 10 decimal number.
type Block struct {
	Value *big.Int
	Scale int32
}

// Sign returns -1, 0 or +1.
func (b Block) Sign() int {
	if b.Value == nil {
		return 0
	}

	return b.Value.Sign()
}

// Rat returns the exact value of the block.
func (b Block) Rat() *big.Rat {
	r := new(big.Rat)
	if b.Value == nil {
		return r
	}

	r.SetInt(b.Value)

	switch {
	case b.Scale > 0:
		r.Mul(r, new(big.Rat).SetInt(Pow10(int(b.Scale))))
	case b.Scale < 0:
		r.Quo(r, new(big.Rat).SetInt(Pow10(int(-b.Scale))))
	}

	return r
}

// String returns the block as a plain decimal using '.' as the radix.
func (b Block) String() string {
	if b.Value == nil {
		return "0"
	}

	return Format(inf.NewDecBig(b.Value, inf.Scale(-b.Scale)), Radix)
}

// Pow10 returns 10^n. n must not be negative.
func Pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// Scan reads a literal from the start of s and returns it with the number of
// bytes consumed. The remainder of s is left to the caller.
func Scan(s, radix string) (b Block, n int, err error) {
	i := 0

	var negative bool
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	whole := s[start:i]

	var frac string
	if w := radixWidth(s[i:], radix); w > 0 {
		i += w

		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		frac = s[start:i]
	}

	if whole == "" && frac == "" {
		return Block{}, 0, Error.New("no digits in %q", s)
	}

	var exp int64
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		start = j
		for j < len(s) && isDigit(s[j]) {
			j++
		}

		if j > start {
			exp, err = strconv.ParseInt(s[i+1:j], 10, 32)
			if err != nil {
				return Block{}, 0, Error.New("exponent out of range in %q", s)
			}

			i = j
		}
	}

	scale := exp - int64(len(frac))
	if scale > MaxScale || scale < -MaxScale {
		return Block{}, 0, Error.New("scale %d out of range in %q", scale, s)
	}

	value, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return Block{}, 0, Error.New("invalid digits in %q", s)
	}

	if negative {
		value.Neg(value)
	}

	return Block{
		Value: value,
		Scale: int32(scale),
	}, i, nil
}

// Parse reads a literal that spans all of s.
func Parse(s, radix string) (b Block, err error) {
	b, n, err := Scan(s, radix)
	if err != nil {
		return Block{}, err
	}

	if n != len(s) {
		return Block{}, Error.New("unexpected %q after literal in %q", s[n:], s)
	}

	return b, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func radixWidth(s, radix string) int {
	if strings.HasPrefix(s, Radix) {
		return len(Radix)
	}

	if radix != "" && strings.HasPrefix(s, radix) {
		return len(radix)
	}

	return 0
}

// QuoExact returns x / y when the quotient has a terminating decimal
// expansion.
func QuoExact(x, y *big.Int) (d *inf.Dec, err error) {
	if y.Sign() == 0 {
		return nil, Error.New("division by zero")
	}

	// x/y terminates iff the reduced denominator is 2^a * 5^b, in which
	// case multiplying by 10^max(a, b) makes it an integer.
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y))
	if g.Sign() == 0 {
		g.Set(one)
	}

	den := new(big.Int).Quo(y, g)
	den.Abs(den)

	twos := factor(den, two)
	fives := factor(den, five)

	if den.Cmp(one) != 0 {
		return nil, Error.New("%s/%s does not terminate", x, y)
	}

	scale := twos
	if fives > scale {
		scale = fives
	}

	unscaled := new(big.Int).Mul(x, Pow10(scale))
	unscaled.Quo(unscaled, y)

	return inf.NewDecBig(unscaled, inf.Scale(scale)), nil
}

// factor divides all factors p out of n and returns how many there were.
func factor(n, p *big.Int) (count int) {
	q, r := new(big.Int), new(big.Int)

	for n.Sign() != 0 {
		q.QuoRem(n, p, r)
		if r.Sign() != 0 {
			break
		}

		n.Set(q)
		count++
	}

	return count
}

// QuoRound returns x / y rounded half away from zero to places digits after
// the radix.
func QuoRound(x, y *big.Int, places int) (d *inf.Dec, err error) {
	if y.Sign() == 0 {
		return nil, Error.New("division by zero")
	}

	return new(inf.Dec).QuoRound(
		inf.NewDecBig(x, 0),
		inf.NewDecBig(y, 0),
		inf.Scale(places),
		inf.RoundHalfUp,
	), nil
}

// Round returns d rounded half away from zero to places digits after the
// radix. A negative places returns d unchanged.
func Round(d *inf.Dec, places int) *inf.Dec {
	if places < 0 || int(d.Scale()) <= places {
		return d
	}

	return new(inf.Dec).Round(d, inf.Scale(places), inf.RoundHalfUp)
}

// Digits returns the number of decimal digits in |x|. Zero has one digit.
func Digits(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}

	return len(new(big.Int).Abs(x).String())
}

// Format renders d using radix with trailing zeros of the fraction (and a
// bare radix) removed.
func Format(d *inf.Dec, radix string) string {
	unscaled := d.UnscaledBig()
	scale := int(d.Scale())

	digits := new(big.Int).Abs(unscaled).String()

	sb := &strings.Builder{}
	if unscaled.Sign() < 0 {
		sb.WriteByte('-')
	}

	if scale <= 0 {
		sb.WriteString(digits)
		if unscaled.Sign() != 0 {
			sb.WriteString(strings.Repeat("0", -scale))
		}

		return sb.String()
	}

	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}

	whole := digits[:len(digits)-scale]
	frac := strings.TrimRight(digits[len(digits)-scale:], "0")

	sb.WriteString(whole)
	if frac != "" {
		sb.WriteString(radix)
		sb.WriteString(frac)
	}

	return sb.String()
}
