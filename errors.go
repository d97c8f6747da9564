package bytesize

import (
	"fmt"

	"github.com/zeebo/errs"

	"github.com/calebcase/bytesize/integer"
)

// Error classes. Every error returned by this package belongs to exactly one
// of them.
var (
	ErrInvalidSpec = errs.Class("invalid size spec")
	ErrOverflow    = errs.Class("overflow")
	ErrZeroDiv     = errs.Class("division by zero")
)

// Kind is a stable error code for foreign callers.
type Kind int

// Error kinds.
const (
	InvalidSpec Kind = iota
	Overflow
	ZeroDivision
)

func (k Kind) String() string {
	switch k {
	case InvalidSpec:
		return "InvalidSpec"
	case Overflow:
		return "Overflow"
	case ZeroDivision:
		return "ZeroDivision"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf returns the kind of err. ok is false for nil and for errors that
// did not originate in this module.
func KindOf(err error) (k Kind, ok bool) {
	switch {
	case err == nil:
		return 0, false
	case ErrInvalidSpec.Has(err):
		return InvalidSpec, true
	case ErrOverflow.Has(err), integer.ErrOverflow.Has(err):
		return Overflow, true
	case ErrZeroDiv.Has(err):
		return ZeroDivision, true
	}

	return 0, false
}
