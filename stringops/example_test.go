package stringops_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/stringops"
)

// ExampleIsPalindromeFold demonstrates the folding palindrome check.
func ExampleIsPalindromeFold() {
	fmt.Println(stringops.IsPalindromeFold("A man, a plan, a canal: Panama"))
	fmt.Println(stringops.IsPalindromeFold("Definitely not"))
	// Output:
	// true
	// false
}

// ExampleAreAnagrams demonstrates the anagram check.
func ExampleAreAnagrams() {
	fmt.Println(stringops.AreAnagrams("listen", "silent"))
	fmt.Println(stringops.AreAnagrams("listen", "little"))
	// Output:
	// true
	// false
}

// ExampleIndexKMP searches for a pattern and handles the miss sentinel.
func ExampleIndexKMP() {
	at := stringops.IndexKMP("abracadabra", "cad")
	fmt.Println("found at:", at)

	if stringops.IndexKMP("abracadabra", "xyz") == stringops.NotFound {
		fmt.Println("xyz: not found")
	}
	// Output:
	// found at: 4
	// xyz: not found
}

// ExampleCharFrequency prints selected rune counts.
func ExampleCharFrequency() {
	freq := stringops.CharFrequency("bookkeeper")
	fmt.Println("k:", freq['k'])
	fmt.Println("e:", freq['e'])
	// Output:
	// k: 2
	// e: 3
}
