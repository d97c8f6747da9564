// Package decimal provides exact base 10 numbers for size literals.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ scale
//
// Where number is the literal, value is an unscaled integer, and scale is a
// base 10 exponent. For example:
//
//  1.23    = 123 * 10^-2
//  1.5e3   = 15 * 10^2
//  -0.0001 = -1 * 10^-4
//
// Scale may be up to ±2^21 (approximately a decimal number with 2 million
// zeros). Value is unbounded.
//
// Literals
//
// A literal is an optional sign, digits, an optional radix followed by
// digits, and an optional exponent:
//
//  [+-] digits [radix [digits]] [(e|E) [+-] digits]
//  [+-] radix digits [(e|E) [+-] digits]
//
// At least one digit must be present. The radix is always '.' and may
// additionally be a locale specific string (e.g. ',' or the two byte U+066B
// ARABIC DECIMAL SEPARATOR). An 'e' or 'E' that is not followed by digits is
// not part of the literal, which keeps unit names such as "EiB" and "EB"
// intact.
//
// Conversion never goes through binary floating point. A literal is turned
// into a big.Rat with Rat and multiplied exactly.
//
// Rendering
//
// Quotients are rendered with gopkg.in/inf.v0 decimals. QuoExact renders a
// quotient whose decimal expansion terminates (denominators with only 2 and
// 5 as prime factors, which covers every unit multiplier), QuoRound rounds
// to a fixed number of places. Format prints a decimal with trailing zeros of
// the fraction removed.
package decimal
