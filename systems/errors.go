package systems

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation marks programmer errors in the simulation: negative
// time steps, negative damage, lookups for characters that were never
// configured. The tick path panics with it instead of limping on.
var ErrInvariantViolation = errors.New("invariant violation")

func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...)))
}
