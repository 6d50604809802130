package dynprog

import "fmt"

// Hanoi returns the full move sequence transferring n disks from peg from
// to peg to via peg aux. The sequence has exactly 2ⁿ−1 moves; n == 0 yields
// an empty sequence.
// Returns ErrNegativeInput for n < 0 and ErrTooManyDisks for
// n > MaxHanoiDisks (use HanoiWalk instead of materializing).
func Hanoi(n int, from, to, aux Peg) ([]Move, error) {
	if n < 0 {
		return nil, ErrNegativeInput
	}
	if n > MaxHanoiDisks {
		return nil, fmt.Errorf("%w: n=%d exceeds %d", ErrTooManyDisks, n, MaxHanoiDisks)
	}
	moves := make([]Move, 0, (1<<uint(n))-1)
	// the callback never errors here, so neither does the walk
	_ = hanoi(n, from, to, aux, func(m Move) error {
		moves = append(moves, m)
		return nil
	})
	return moves, nil
}

// HanoiWalk streams the move sequence for n disks to fn, one move at a
// time, without materializing it. The sequence is recomputed from scratch
// on every call — it cannot be resumed mid-way. If fn returns an error the
// walk stops and that error is propagated.
// Returns ErrNegativeInput for n < 0.
func HanoiWalk(n int, from, to, aux Peg, fn func(Move) error) error {
	if n < 0 {
		return ErrNegativeInput
	}
	if fn == nil {
		return fmt.Errorf("%w: nil move callback", ErrBadInput)
	}
	return hanoi(n, from, to, aux, fn)
}

// hanoi is the classic recursion: move n−1 out of the way, move the big
// disk, move n−1 back on top.
func hanoi(n int, from, to, aux Peg, fn func(Move) error) error {
	if n == 0 {
		return nil
	}
	if err := hanoi(n-1, from, aux, to, fn); err != nil {
		return err
	}
	if err := fn(Move{Disk: n, From: from, To: to}); err != nil {
		return err
	}
	return hanoi(n-1, aux, to, from, fn)
}
