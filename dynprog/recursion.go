package dynprog

// maxFactorialN is the largest n with n! representable in uint64 (20! fits,
// 21! does not).
const maxFactorialN = 20

// maxFibonacciN is the largest n with fib(n) representable in uint64
// (fib(93) overflows).
const maxFibonacciN = 92

// Factorial returns n! computed by direct recursion.
// Returns ErrNegativeInput for n < 0 and ErrOverflow for n > 20.
// Complexity: O(n) time and stack.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n > maxFactorialN {
		return 0, ErrOverflow
	}
	return factorial(n), nil
}

// factorial is the unchecked recursive core.
func factorial(n int) uint64 {
	if n < 2 {
		return 1
	}
	return uint64(n) * factorial(n-1)
}

// FibonacciNaive returns the n-th Fibonacci number (fib(0)=0, fib(1)=1) by
// plain double recursion. Exponential time — kept as the reference point the
// memoized variant is measured against; prefer Fibonacci for real use.
// Returns ErrNegativeInput for n < 0 and ErrOverflow for n > 92.
// Complexity: O(φⁿ) time, O(n) stack.
func FibonacciNaive(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n > maxFibonacciN {
		return 0, ErrOverflow
	}
	return fibNaive(n), nil
}

// fibNaive is the unchecked exponential core.
func fibNaive(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return fibNaive(n-1) + fibNaive(n-2)
}

// Fibonacci returns the n-th Fibonacci number using top-down memoization.
// The memo table lives on this call's stack frame — no package state, so
// concurrent callers never share anything.
// Returns ErrNegativeInput for n < 0 and ErrOverflow for n > 92.
// Complexity: O(n) time and memory.
func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n > maxFibonacciN {
		return 0, ErrOverflow
	}
	memo := make([]uint64, n+1)
	seen := make([]bool, n+1)
	return fibMemo(n, memo, seen), nil
}

// fibMemo resolves fib(n) against the per-call memo table.
func fibMemo(n int, memo []uint64, seen []bool) uint64 {
	if n < 2 {
		return uint64(n)
	}
	if seen[n] {
		return memo[n]
	}
	memo[n] = fibMemo(n-1, memo, seen) + fibMemo(n-2, memo, seen)
	seen[n] = true
	return memo[n]
}
