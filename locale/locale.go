// Package locale holds the locale inputs of parsing and formatting: the radix
// string and the translations of unit names.
//
// Nothing here is read from the process environment. A Locale is a plain
// value that callers pass explicitly, typically loaded from a YAML file:
//
//  name: cs_CZ
//  radix: ","
//  units:
//    KiB: KiB
//    B: B
//
// Units that are not listed keep their canonical name.
package locale

import (
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/calebcase/oops"
	log "github.com/sirupsen/logrus"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/bytesize/unit"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("locale")

// Locale is a radix and a unit name translation table.
type Locale struct {
	Name  string            `yaml:"name"`
	Radix string            `yaml:"radix"`
	Units map[string]string `yaml:"units"`
}

// C is the untranslated locale with '.' as the radix.
var C = Locale{
	Name:  "C",
	Radix: ".",
}

// RadixChar returns the radix, defaulting to '.'.
func (l Locale) RadixChar() string {
	if l.Radix == "" {
		return "."
	}

	return l.Radix
}

// UnitName returns the translated name of u, or its canonical name when no
// translation is configured.
func (l Locale) UnitName(u unit.Unit) string {
	if n, ok := l.Units[u.String()]; ok && n != "" {
		return n
	}

	return u.String()
}

// LookupUnit returns the unit with the canonical or translated name. Matches
// are exact.
func (l Locale) LookupUnit(name string) (u unit.Unit, ok bool) {
	if u, ok = unit.Parse(name); ok {
		return u, true
	}

	for canonical, translated := range l.Units {
		if translated != name {
			continue
		}

		if u, ok = unit.Parse(canonical); ok {
			return u, true
		}
	}

	return unit.Undefined, false
}

// Validate checks that the radix can be told apart from the rest of a size
// literal and that translated unit names are unambiguous.
func (l Locale) Validate() (err error) {
	defer Error.WrapP(&err)

	for _, r := range l.RadixChar() {
		switch {
		case unicode.IsDigit(r), unicode.IsSpace(r):
			return errs.New("invalid radix %q", l.Radix)
		case strings.ContainsRune("+-eE", r):
			return errs.New("invalid radix %q", l.Radix)
		}
	}

	seen := map[string]string{}
	for canonical, translated := range l.Units {
		u, ok := unit.Parse(canonical)
		if !ok {
			return errs.New("unknown unit %q", canonical)
		}

		if strings.TrimSpace(translated) == "" || strings.TrimSpace(translated) != translated {
			return errs.New("invalid translation %q for %s", translated, u)
		}

		if other, ok := unit.Parse(translated); ok && other != u {
			return errs.New("translation %q for %s names %s", translated, u, other)
		}

		if prev, ok := seen[translated]; ok {
			return errs.New("translation %q used for %s and %s", translated, prev, canonical)
		}
		seen[translated] = canonical
	}

	return nil
}

// Load reads a YAML locale from r.
func Load(r io.Reader) (l Locale, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err = dec.Decode(&l)
	if err != nil {
		return Locale{}, Error.Wrap(err)
	}

	err = l.Validate()
	if err != nil {
		return Locale{}, err
	}

	log.WithFields(log.Fields{
		"name":  l.Name,
		"radix": l.RadixChar(),
		"units": len(l.Units),
	}).Debug("loaded locale")

	return l, nil
}

// LoadFile reads a YAML locale from the file at path.
func LoadFile(path string) (l Locale, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Locale{}, oops.Trace(err)
	}
	defer f.Close()

	return Load(f)
}
