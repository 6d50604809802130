package dynprog

import "fmt"

// LCS returns the length of the longest common subsequence of a and b,
// compared rune-wise. Only the length is computed, so the full
// (|a|+1)×(|b|+1) table collapses to two rolling rows over the shorter
// string.
// Complexity: O(|a|·|b|) time, O(min(|a|,|b|)) memory.
func LCS(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	// roll over the shorter dimension
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// CoinChange returns the minimum number of coins from coins (unlimited
// supply of each) summing exactly to amount, or the Unreachable sentinel
// when no combination exists.
// Returns ErrBadInput for a negative amount or a non-positive denomination.
// Bottom-up DP over a table of size amount+1:
// O(len(coins)·amount) time, O(amount) memory.
func CoinChange(coins []int, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", ErrBadInput, amount)
	}
	for _, c := range coins {
		if c <= 0 {
			return 0, fmt.Errorf("%w: non-positive coin denomination %d", ErrBadInput, c)
		}
	}
	if amount == 0 {
		return 0, nil
	}

	const unset = -1
	best := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		best[i] = unset
	}
	for _, c := range coins {
		for v := c; v <= amount; v++ {
			if best[v-c] == unset {
				continue
			}
			if best[v] == unset || best[v-c]+1 < best[v] {
				best[v] = best[v-c] + 1
			}
		}
	}
	if best[amount] == unset {
		return Unreachable, nil
	}
	return best[amount], nil
}
