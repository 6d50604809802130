// Package stringops provides the classic string utilities: palindrome and
// anagram checks, character-frequency counting, and substring search in
// both naive and Knuth–Morris–Pratt (KMP) variants.
//
// All operations are rune-aware: inputs are treated as sequences of Unicode
// code points, not bytes, so multi-byte characters behave as one unit.
//
// ✨ Key features:
//   - IsPalindrome / IsPalindromeFold — strict or case-folding, letters &
//     digits only (the interview-classic phrasing)
//   - AreAnagrams — rune-frequency comparison, O(n)
//   - CharFrequency — rune histogram
//   - Index / IndexKMP — substring search; misses return the NotFound
//     sentinel (-1), never an error
//   - CountOccurrences — non-overlapping occurrence count
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/stringops"
//
//	if stringops.IsPalindromeFold("A man, a plan, a canal: Panama") {
//	  // true — folding ignores case and punctuation
//	}
//
//	at := stringops.IndexKMP("abracadabra", "cad")
//	if at == stringops.NotFound {
//	  // not present
//	}
//
// Performance:
//
//   - IsPalindrome / AreAnagrams / CharFrequency: O(n)
//   - Index: O(n·m) worst case; IndexKMP: O(n+m) guaranteed
package stringops
