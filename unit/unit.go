// Package unit provides the binary (KiB, MiB, ...) and decimal (KB, MB, ...)
// byte unit ladders.
//
// Unit values are stable small integers so they can be passed through
// foreign call boundaries unchanged:
//
//  | Family  | Units          | Values    | Multiplier |
//  |---------|----------------|-----------|------------|
//  | Binary  | B, KiB ... YiB | 0 ... 8   | 1024^n     |
//  | Decimal | KB ... YB      | 21 ... 28 | 1000^n     |
//
// B is the base of both families.
package unit

import (
	"fmt"
	"math/big"
)

// Unit is a byte unit.
type Unit int

// Binary units.
const (
	B Unit = iota
	KiB
	MiB
	GiB
	TiB
	PiB
	EiB
	ZiB
	YiB
)

// Decimal units.
const (
	KB Unit = iota + 21
	MB
	GB
	TB
	PB
	EB
	ZB
	YB
)

// Undefined is not a unit. It is returned by failed lookups.
const Undefined Unit = -1

// Family is a unit ladder.
type Family int

// Unit families.
const (
	Binary Family = iota
	Decimal
)

// Base returns the ratio between neighboring units of the family.
func (f Family) Base() int64 {
	if f == Decimal {
		return 1000
	}

	return 1024
}

func (f Family) String() string {
	switch f {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	}

	return fmt.Sprintf("Family(%d)", int(f))
}

var (
	binary = []Unit{B, KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB}

	decimal = []Unit{B, KB, MB, GB, TB, PB, EB, ZB, YB}

	names = map[Unit]string{
		B:   "B",
		KiB: "KiB",
		MiB: "MiB",
		GiB: "GiB",
		TiB: "TiB",
		PiB: "PiB",
		EiB: "EiB",
		ZiB: "ZiB",
		YiB: "YiB",
		KB:  "KB",
		MB:  "MB",
		GB:  "GB",
		TB:  "TB",
		PB:  "PB",
		EB:  "EB",
		ZB:  "ZB",
		YB:  "YB",
	}

	byName = func() map[string]Unit {
		m := make(map[string]Unit, len(names))
		for u, n := range names {
			m[n] = u
		}

		return m
	}()

	multipliers = func() map[Unit]*big.Int {
		m := make(map[Unit]*big.Int, len(names))
		for u := range names {
			base := big.NewInt(u.Family().Base())
			exp := big.NewInt(int64(u.Exponent()))

			m[u] = new(big.Int).Exp(base, exp, nil)
		}

		return m
	}()
)

// Units lists every unit, binary family first.
var Units = []Unit{
	B, KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB,
	KB, MB, GB, TB, PB, EB, ZB, YB,
}

// Valid returns true if u is a known unit.
func (u Unit) Valid() bool {
	_, ok := names[u]

	return ok
}

// Family returns the ladder u belongs to. B reports Binary.
func (u Unit) Family() Family {
	if u >= KB {
		return Decimal
	}

	return Binary
}

// Exponent returns n such that u is Base^n bytes.
func (u Unit) Exponent() int {
	if u.Family() == Decimal {
		return int(u - KB + 1)
	}

	return int(u)
}

// Multiplier returns the number of bytes in one u. The caller owns the
// returned integer. Invalid units return nil.
func (u Unit) Multiplier() *big.Int {
	m, ok := multipliers[u]
	if !ok {
		return nil
	}

	return new(big.Int).Set(m)
}

func (u Unit) String() string {
	if n, ok := names[u]; ok {
		return n
	}

	return fmt.Sprintf("Unit(%d)", int(u))
}

// Parse returns the unit with the exact (case sensitive) name.
func Parse(name string) (u Unit, ok bool) {
	u, ok = byName[name]
	if !ok {
		return Undefined, false
	}

	return u, true
}

// Ladder returns the units of the family in increasing order, starting at B.
// The caller owns the returned slice.
func Ladder(f Family) []Unit {
	var l []Unit

	if f == Decimal {
		l = decimal
	} else {
		l = binary
	}

	return append([]Unit(nil), l...)
}
