// Package dynprog collects the classic recursion and dynamic-programming
// routines: factorial, Fibonacci (naive and memoized), longest common
// subsequence, coin change, and Tower of Hanoi.
//
// ✨ Key features:
//   - two Fibonacci variants exposed side by side — the exponential naive
//     recursion and the linear memoized one — so their cost difference can
//     be measured, not just asserted
//   - memoization state is scoped per call: no package-level caches, no
//     shared mutable state between invocations
//   - expected "no solution" outcomes (unreachable coin amount) use the
//     Unreachable sentinel value; invalid inputs use sentinel errors
//   - Tower of Hanoi in materialized (Hanoi) and streaming (HanoiWalk)
//     forms; the stream recomputes from scratch on every call
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/dynprog"
//
//	n, err := dynprog.CoinChange([]int{1, 2, 5}, 11)
//	if err != nil {
//	  // handle ErrBadInput
//	}
//	if n == dynprog.Unreachable {
//	  // amount cannot be assembled from these coins
//	}
//
// Performance:
//
//   - Factorial: O(n); FibonacciNaive: O(φⁿ); Fibonacci: O(n)
//   - LCS: O(|a|·|b|) time, O(min(|a|,|b|)) memory (two-row rolling table)
//   - CoinChange: O(len(coins)·amount) time, O(amount) memory
//   - Hanoi / HanoiWalk: Θ(2ⁿ) moves — exact count 2ⁿ−1
package dynprog
