package dynprog_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/dynprog"
)

// ExampleCoinChange assembles an amount and probes an unreachable one.
func ExampleCoinChange() {
	n, _ := dynprog.CoinChange([]int{1, 2, 5}, 11)
	fmt.Println("coins for 11:", n)

	n, _ = dynprog.CoinChange([]int{2}, 3)
	if n == dynprog.Unreachable {
		fmt.Println("3 is unreachable with only 2s")
	}
	// Output:
	// coins for 11: 3
	// 3 is unreachable with only 2s
}

// ExampleLCS compares two strings by subsequence length.
func ExampleLCS() {
	fmt.Println(dynprog.LCS("ABCBDAB", "BDCABA"))
	// Output:
	// 4
}

// ExampleFibonacci contrasts the two variants — same answer, different cost.
func ExampleFibonacci() {
	memo, _ := dynprog.Fibonacci(40)
	naive, _ := dynprog.FibonacciNaive(25)
	fmt.Println("fib(40):", memo)
	fmt.Println("fib(25):", naive)
	// Output:
	// fib(40): 102334155
	// fib(25): 75025
}

// ExampleHanoiWalk streams the 2-disk solution move by move.
func ExampleHanoiWalk() {
	_ = dynprog.HanoiWalk(2, "A", "C", "B", func(m dynprog.Move) error {
		fmt.Printf("disk %d: %s → %s\n", m.Disk, m.From, m.To)
		return nil
	})
	// Output:
	// disk 1: A → B
	// disk 2: A → C
	// disk 1: B → C
}
