// Package bytesize provides exact, arbitrary precision sizes in bytes.
//
// A Size is a signed count of bytes backed by math/big. It never passes
// through binary floating point: literals are read into exact rationals,
// quotients are rendered with exact decimals, and the only lossy operation
// (TrueDiv) says so in its name and documentation.
//
// Units
//
// Sizes are parsed and displayed using two unit ladders (see package unit):
//
//  | Family  | Units                                   | Step |
//  |---------|-----------------------------------------|------|
//  | Binary  | B KiB MiB GiB TiB PiB EiB ZiB YiB       | 1024 |
//  | Decimal | B KB  MB  GB  TB  PB  EB  ZB  YB        | 1000 |
//
// Parsing
//
// A size specification is a decimal literal followed by an optional unit:
//
//  "1 KiB"     = 1024 bytes
//  "1KB"       = 1000 bytes
//  " -1.5 GiB" = -1610612736 bytes
//  "1e-1 KB"   = 100 bytes
//  "0.5 KiB"   = 512 bytes
//
// Whitespace around the specification and between the literal and the unit
// is ignored. Unit names are case sensitive. The literal is multiplied by the
// unit exactly and any fraction of a byte left over is truncated toward
// zero. ParseLocale additionally accepts the locale's radix and translated
// unit names; '.' is always accepted as the radix.
//
// Arithmetic
//
// Methods without a receiver pointer return new sizes and leave their
// operands alone. The Grow and Shrink methods update the receiver in place
// and must not be called concurrently on the same Size.
//
//  | Operation      | Result                                            |
//  |----------------|---------------------------------------------------|
//  | Add, Sub       | exact                                             |
//  | MulInt         | exact                                             |
//  | MulDecimal     | exact product rounded to whole bytes, half away   |
//  | Div            | floor(|a| / |b|) with sign sign(a) * sign(b)      |
//  | DivInt         | floor(|a| / n) with the sign of a                 |
//  | Mod            | |a| mod |b|, never negative                       |
//  | TrueDiv        | a / b as decimal text, TrueDivPrecision digits    |
//  | RoundToNearest | exact multiple of the reference size              |
//
// Division and modulo by zero return ErrZeroDiv. Integer division and
// modulo satisfy |a| == |Div(a, b)| * |b| + Mod(a, b), which is the plain
// identity a == Div(a, b) * b + Mod(a, b) whenever a is not negative.
//
// Fast path
//
// Multiplication and division by machine integers first try a uint64 fast
// path (package integer). A fast path overflow is retried with math/big, so
// it is never observed by callers. Only the accessors whose result is a
// uint64 (Bytes and DivUint64) return ErrOverflow.
//
// Errors
//
// Errors are returned, never panicked (except by MustParse). KindOf maps any
// error to a stable Kind code for foreign callers: InvalidSpec, Overflow or
// ZeroDivision.
package bytesize
