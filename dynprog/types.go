package dynprog

import "errors"

// Unreachable is the sentinel returned by CoinChange when no combination
// of coins sums to the requested amount. A normal outcome, not an error.
const Unreachable = -1

// MaxHanoiDisks bounds the materialized Hanoi variant: 2²⁴−1 moves is
// already ~16M entries. HanoiWalk has no such bound.
const MaxHanoiDisks = 24

// Sentinel errors for invalid inputs.
var (
	// ErrNegativeInput is returned when n < 0 where only n ≥ 0 is defined.
	ErrNegativeInput = errors.New("dynprog: input must be non-negative")

	// ErrOverflow is returned when the exact result does not fit in uint64.
	ErrOverflow = errors.New("dynprog: result overflows uint64")

	// ErrBadInput is returned for structurally invalid arguments, such as
	// non-positive coin denominations.
	ErrBadInput = errors.New("dynprog: invalid input")

	// ErrTooManyDisks is returned by Hanoi when n exceeds MaxHanoiDisks.
	ErrTooManyDisks = errors.New("dynprog: too many disks to materialize; use HanoiWalk")
)

// Peg names one of the three Tower of Hanoi pegs.
type Peg string

// Move is a single Tower of Hanoi step: disk Disk (1 = smallest) moves
// from peg From to peg To.
type Move struct {
	Disk int
	From Peg
	To   Peg
}
