package bytesize

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bytesize/locale"
	"github.com/calebcase/bytesize/unit"
)

func TestAddSub(t *testing.T) {
	a := MustParse("1000 B")
	b := MustParse("100 B")

	require.Equal(t, "1100", a.Add(b).BytesString())
	require.Equal(t, "900", a.Sub(b).BytesString())
	require.Equal(t, "-900", b.Sub(a).BytesString())
	require.Equal(t, "1034", MustParse("1 KiB").AddBytes(10).BytesString())
	require.Equal(t, "5", FromInt64(-5).AddBytes(10).BytesString())
	require.Equal(t, "-5", FromInt64(-15).AddBytes(10).BytesString())
	require.Equal(t, "18446744073709551615", FromBytes(math.MaxUint64-1, 1).AddBytes(1).BytesString())
	require.Equal(t, "18446744073709551616", FromBytes(math.MaxUint64, 1).AddBytes(1).BytesString())
	require.Equal(t, "36893488147419103230", FromBytes(math.MaxUint64, 1).AddBytes(math.MaxUint64).BytesString())
	require.Equal(t, "1208925819614629174706177", MustParse("1 YiB").AddBytes(1).BytesString())
	require.Equal(t, "-10", New().SubBytes(10).BytesString())
	require.Equal(t, "-1000", a.Neg().BytesString())
	require.Equal(t, "1000", a.Neg().Abs().BytesString())

	// Operands are left alone.
	require.Equal(t, "1000", a.BytesString())
	require.Equal(t, "100", b.BytesString())
}

func TestMutators(t *testing.T) {
	a := MustParse("1 KiB")
	b := a

	a.Grow(MustParse("1 KiB"))
	require.Equal(t, "2048", a.BytesString())
	require.Equal(t, "1024", b.BytesString())

	a.GrowBytes(1)
	require.Equal(t, "2049", a.BytesString())

	a.ShrinkBytes(1)
	a.Shrink(b)
	require.Equal(t, "1024", a.BytesString())

	a.GrowMulInt(3)
	require.Equal(t, "3072", a.BytesString())

	require.NoError(t, a.ShrinkDivInt(3))
	require.Equal(t, "1024", a.BytesString())

	require.NoError(t, a.GrowMulDecimal("1.5"))
	require.Equal(t, "1536", a.BytesString())

	err := a.GrowMulDecimal("x")
	require.True(t, ErrInvalidSpec.Has(err))
	require.Equal(t, "1536", a.BytesString())

	err = a.ShrinkDivInt(0)
	require.True(t, ErrZeroDiv.Has(err))
	require.Equal(t, "1536", a.BytesString())

	var z Size
	z.GrowBytes(7)
	require.Equal(t, "7", z.BytesString())
	require.Equal(t, "1024", b.BytesString())
}

func TestMulInt(t *testing.T) {
	type TC struct {
		name  string
		size  Size
		n     uint64
		bytes string
	}

	tcs := []TC{
		{"small", MustParse("1 KiB"), 3, "3072"},
		{"negative", MustParse("-1 KiB"), 3, "-3072"},
		{"zero", MustParse("1 KiB"), 0, "0"},
		{"zero size", New(), 9, "0"},
		{"fast path overflow", FromBytes(math.MaxUint64, 1), 2, "36893488147419103230"},
		{"negative overflow", FromBytes(math.MaxUint64, -1), 2, "-36893488147419103230"},
		{"big", MustParse("1 YiB"), 2, "2417851639229258349412352"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.bytes, tc.size.MulInt(tc.n).BytesString())
		})
	}
}

func TestMulDecimal(t *testing.T) {
	type TC struct {
		name  string
		size  Size
		text  string
		bytes string
	}

	tcs := []TC{
		{"fraction", FromInt64(8), "1.51", "12"},
		{"negative size", FromInt64(-8), "1.51", "-12"},
		{"negative factor", FromInt64(8), "-1.51", "-12"},
		{"both negative", FromInt64(-8), "-1.51", "12"},
		{"tie", FromInt64(2), "0.25", "1"},
		{"negative tie", FromInt64(-2), "0.25", "-1"},
		{"one and a half", FromInt64(3), "0.5", "2"},
		{"exponent", FromInt64(10), "1e2", "1000"},
		{"padded", FromInt64(10), " 2 ", "20"},
		{"big", MustParse("1 YiB"), "0.5", "604462909807314587353088"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			s, err := tc.size.MulDecimal(tc.text)
			require.NoError(t, err, oops.New("unexpected"))
			require.Equal(t, tc.bytes, s.BytesString())
		})
	}

	s, err := FromInt64(10).MulDecimalLocale("1,5", locale.Locale{Radix: ","})
	require.NoError(t, err)
	require.Equal(t, "15", s.BytesString())

	for _, text := range []string{"", "abc", "1.5 KiB", "1,5"} {
		_, err = FromInt64(10).MulDecimal(text)
		require.True(t, ErrInvalidSpec.Has(err), "%q", text)
	}

	require.Equal(t, "3", FromInt64(10).MulRat(big.NewRat(1, 3)).BytesString())
	require.Equal(t, "-7", FromInt64(10).MulRat(big.NewRat(-2, 3)).BytesString())

	// Ties round away from zero.
	require.Equal(t, "3", FromInt64(1).MulRat(big.NewRat(5, 2)).BytesString())
	require.Equal(t, "-3", FromInt64(-1).MulRat(big.NewRat(5, 2)).BytesString())
	require.Equal(t, "-3", FromInt64(1).MulRat(big.NewRat(-5, 2)).BytesString())
	require.Equal(t, "2", FromInt64(3).MulRat(big.NewRat(1, 2)).BytesString())
	require.Equal(t, "0", FromInt64(1).MulRat(big.NewRat(1, 3)).BytesString())
	require.Equal(t, "0", FromInt64(7).MulRat(new(big.Rat)).BytesString())
}

func TestDiv(t *testing.T) {
	type TC struct {
		name string
		a    Size
		b    Size
		q    string
		r    string
	}

	tcs := []TC{
		{"exact", MustParse("100 B"), MustParse("10 B"), "10", "0"},
		{"remainder", MustParse("1024 B"), MustParse("1000 B"), "1", "24"},
		{"negative divisor", MustParse("1024 B"), MustParse("-1000 B"), "-1", "24"},
		{"negative dividend", MustParse("-1024 B"), MustParse("1000 B"), "-1", "24"},
		{"both negative", MustParse("-1024 B"), MustParse("-1000 B"), "1", "24"},
		{"smaller", MustParse("1 B"), MustParse("1 KiB"), "0", "1"},
		{"zero", New(), MustParse("1 KiB"), "0", "0"},
		{"units", MustParse("15 GiB"), FromInt64(7), "2300875337", "1"},
		{"big", MustParse("1 YiB"), MustParse("1 KiB"), "1180591620717411303424", "0"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			q, r, err := tc.a.DivMod(tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.q, q.String())
			require.Equal(t, tc.r, r.BytesString())
			require.True(t, r.Sign() >= 0)

			// |a| == |q| * |b| + r
			back := new(big.Int).Mul(new(big.Int).Abs(q), tc.b.Abs().Big())
			back.Add(back, r.Big())
			require.Equal(t, tc.a.Abs().BytesString(), back.String())

			if tc.a.Sign() >= 0 && tc.b.Sign() > 0 {
				require.True(t, FromBig(q).MulInt(uint64(tc.b.Big().Int64())).Add(r).Equal(tc.a))
			}
		})
	}
}

func TestDivUint64(t *testing.T) {
	q, sign, err := MustParse("-1 MiB").DivUint64(MustParse("1 KiB"))
	require.NoError(t, err)
	require.Equal(t, uint64(1024), q)
	require.Equal(t, -1, sign)

	q, sign, err = MustParse("1 B").DivUint64(MustParse("1 KiB"))
	require.NoError(t, err)
	require.Equal(t, uint64(0), q)
	require.Equal(t, 0, sign)

	_, _, err = MustParse("1 YiB").DivUint64(MustParse("1 B"))
	require.True(t, ErrOverflow.Has(err), "%+v", err)

	k, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, Overflow, k)
}

func TestDivInt(t *testing.T) {
	type TC struct {
		name  string
		size  Size
		n     uint64
		bytes string
	}

	tcs := []TC{
		{"negative", MustParse("-1 MiB"), 1077, "-973"},
		{"floor", FromInt64(100), 11, "9"},
		{"floor again", FromInt64(98), 11, "8"},
		{"exact", MustParse("1 KiB"), 2, "512"},
		{"big", MustParse("1 YiB"), 1024, "1180591620717411303424"},
		{"negative big", MustParse("-1 YiB"), 1024, "-1180591620717411303424"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			s, err := tc.size.DivInt(tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.bytes, s.BytesString())
		})
	}

	q, r, err := MustParse("15 GiB").DivModInt(7)
	require.NoError(t, err)
	require.Equal(t, "2300875337", q.BytesString())
	require.Equal(t, "1", r.BytesString())

	q, r, err = MustParse("-1 MiB").DivModInt(1077)
	require.NoError(t, err)
	require.Equal(t, "-973", q.BytesString())
	require.Equal(t, "655", r.BytesString())
}

func TestZeroDivision(t *testing.T) {
	a := MustParse("1 KiB")
	z := New()

	_, err := a.Div(z)
	require.True(t, ErrZeroDiv.Has(err))

	_, _, err = a.DivUint64(z)
	require.True(t, ErrZeroDiv.Has(err))

	_, err = a.DivInt(0)
	require.True(t, ErrZeroDiv.Has(err))

	_, err = a.Mod(z)
	require.True(t, ErrZeroDiv.Has(err))

	_, _, err = a.DivMod(z)
	require.True(t, ErrZeroDiv.Has(err))

	_, _, err = a.DivModInt(0)
	require.True(t, ErrZeroDiv.Has(err))

	_, err = a.Ratio(z)
	require.True(t, ErrZeroDiv.Has(err))

	_, err = a.TrueDiv(z)
	require.True(t, ErrZeroDiv.Has(err))

	_, err = a.TrueDivInt(0)
	require.True(t, ErrZeroDiv.Has(err))

	_, err = a.RoundToNearest(z, RoundUp)
	require.True(t, ErrZeroDiv.Has(err))

	k, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, ZeroDivision, k)
}

func TestTrueDiv(t *testing.T) {
	type TC struct {
		name   string
		a      Size
		b      Size
		result string
	}

	tcs := []TC{
		{"quarter", FromInt64(1), FromInt64(4), "0.25"},
		{"whole", FromInt64(3), FromInt64(3), "1"},
		{"half", FromInt64(10), FromInt64(4), "2.5"},
		{"third", FromInt64(1), FromInt64(3), "0.33333333333333333333333333333333333333333333333333"},
		{"two thirds", FromInt64(2), FromInt64(3), "0.66666666666666666666666666666666666666666666666667"},
		{"negative", FromInt64(1024), MustParse("-102.4 B"), "-10.039215686274509803921568627450980392156862745098"},
		{"units", MustParse("1 GiB"), MustParse("1 MiB"), "1024"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			result, err := tc.a.TrueDiv(tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.result, result)
		})
	}

	result, err := FromInt64(10).TrueDivInt(4)
	require.NoError(t, err)
	require.Equal(t, "2.5", result)

	r, err := FromInt64(1536).Ratio(FromInt64(-1024))
	require.NoError(t, err)
	require.Equal(t, "-3/2", r.RatString())
}

func TestRoundToNearest(t *testing.T) {
	kib := MustParse("1 KiB")

	type TC struct {
		name  string
		size  Size
		to    Size
		dir   Round
		bytes string
	}

	tcs := []TC{
		{"up", FromInt64(1500), kib, RoundUp, "2048"},
		{"down", FromInt64(1500), kib, RoundDown, "1024"},
		{"down to zero", FromInt64(1500), MustParse("10 KiB"), RoundDown, "0"},
		{"half up below", FromInt64(1535), kib, RoundHalfUp, "1024"},
		{"half up tie", FromInt64(1536), kib, RoundHalfUp, "2048"},
		{"exact up", FromInt64(2048), kib, RoundUp, "2048"},
		{"negative up", FromInt64(-1500), kib, RoundUp, "-1024"},
		{"negative down", FromInt64(-1500), kib, RoundDown, "-2048"},
		{"negative half up tie", FromInt64(-1536), kib, RoundHalfUp, "-2048"},
		{"negative half up below", FromInt64(-1535), kib, RoundHalfUp, "-1024"},
		{"negative reference", FromInt64(1500), kib.Neg(), RoundUp, "2048"},
		{"zero", New(), kib, RoundUp, "0"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			s, err := tc.size.RoundToNearest(tc.to, tc.dir)
			require.NoError(t, err)
			require.Equal(t, tc.bytes, s.BytesString())

			_, r, err := s.DivMod(tc.to)
			require.NoError(t, err)
			require.True(t, r.IsZero())
		})
	}

	s, err := FromInt64(1500).RoundToUnit(unit.KiB, RoundHalfUp)
	require.NoError(t, err)
	require.Equal(t, "1024", s.BytesString())

	_, err = FromInt64(1500).RoundToUnit(unit.Unit(99), RoundUp)
	require.True(t, ErrInvalidSpec.Has(err))

	_, err = FromInt64(1500).RoundToNearest(kib, Round(7))
	require.True(t, ErrInvalidSpec.Has(err))
}

func TestRound(t *testing.T) {
	require.Equal(t, Round(0), RoundUp)
	require.Equal(t, Round(1), RoundDown)
	require.Equal(t, Round(2), RoundHalfUp)

	for _, r := range []Round{RoundUp, RoundDown, RoundHalfUp} {
		p, err := ParseRound(r.String())
		require.NoError(t, err)
		require.Equal(t, r, p)
	}

	_, err := ParseRound("sideways")
	require.True(t, ErrInvalidSpec.Has(err))
	require.Equal(t, "Round(7)", Round(7).String())
}

func TestProperties(t *testing.T) {
	sizes := []Size{
		New(),
		FromInt64(1),
		FromInt64(-1),
		MustParse("1 KiB"),
		MustParse("-1.5 GiB"),
		MustParse("3 YB"),
		FromBytes(math.MaxUint64, 1),
	}

	for i, a := range sizes {
		for j, b := range sizes {
			t.Run(fmt.Sprintf("[%d,%d]", i, j), func(t *testing.T) {
				require.True(t, a.Sub(b).Equal(a.Add(b.Neg())))
				require.True(t, a.Add(b).Equal(b.Add(a)))
				require.True(t, a.Add(b).Sub(b).Equal(a))

				for k, c := range sizes {
					require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "c=[%d]", k)
				}

				if b.IsZero() {
					return
				}

				q, r, err := a.DivMod(b)
				require.NoError(t, err)
				require.True(t, r.Cmp(b, true) < 0)

				back := new(big.Int).Mul(new(big.Int).Abs(q), b.Abs().Big())
				back.Add(back, r.Big())
				require.Equal(t, a.Abs().BytesString(), back.String())
			})
		}
	}
}

func BenchmarkMulInt(b *testing.B) {
	s := MustParse("1 GiB")

	for i := 0; i < b.N; i++ {
		_ = s.MulInt(1024)
	}
}

func BenchmarkDivInt(b *testing.B) {
	s := MustParse("1 GiB")

	for i := 0; i < b.N; i++ {
		_, err := s.DivInt(7)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
