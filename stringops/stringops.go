package stringops

import "unicode"

// NotFound is the sentinel index returned by Index, IndexKMP and friends
// when the needle does not occur in the haystack.
const NotFound = -1

// IsPalindrome reports whether s reads the same forwards and backwards,
// comparing runes exactly (case- and punctuation-sensitive).
// Complexity: O(n) time, O(n) memory for the rune decode.
func IsPalindrome(s string) bool {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		if r[i] != r[j] {
			return false
		}
	}
	return true
}

// IsPalindromeFold reports whether s is a palindrome when only letters and
// digits are considered and case is ignored — "A man, a plan, a canal:
// Panama" is a palindrome under this reading.
// Complexity: O(n) time.
func IsPalindromeFold(s string) bool {
	r := []rune(s)
	i, j := 0, len(r)-1
	for i < j {
		for i < j && !isAlnum(r[i]) {
			i++
		}
		for i < j && !isAlnum(r[j]) {
			j--
		}
		if unicode.ToLower(r[i]) != unicode.ToLower(r[j]) {
			return false
		}
		i++
		j--
	}
	return true
}

// isAlnum reports whether r is a letter or a digit.
func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// AreAnagrams reports whether a and b contain exactly the same runes with
// the same multiplicities. Comparison is exact (case-sensitive).
// Complexity: O(n) time, O(k) memory for k distinct runes.
func AreAnagrams(a, b string) bool {
	freq := make(map[rune]int)
	n := 0
	for _, r := range a {
		freq[r]++
		n++
	}
	for _, r := range b {
		freq[r]--
		if freq[r] < 0 {
			return false
		}
		n--
	}
	return n == 0
}

// CharFrequency returns a histogram of the runes in s.
// Complexity: O(n) time, O(k) memory for k distinct runes.
func CharFrequency(s string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range s {
		freq[r]++
	}
	return freq
}

// Index returns the rune index of the first occurrence of needle in
// haystack, or NotFound. An empty needle matches at index 0.
// Naive scan: O(n·m) worst-case time.
func Index(haystack, needle string) int {
	h, n := []rune(haystack), []rune(needle)
	if len(n) == 0 {
		return 0
	}
	if len(n) > len(h) {
		return NotFound
	}
	for i := 0; i+len(n) <= len(h); i++ {
		j := 0
		for j < len(n) && h[i+j] == n[j] {
			j++
		}
		if j == len(n) {
			return i
		}
	}
	return NotFound
}

// IndexKMP returns the rune index of the first occurrence of needle in
// haystack, or NotFound, using the Knuth–Morris–Pratt automaton.
// Same contract as Index; guaranteed O(n+m) time, O(m) memory.
func IndexKMP(haystack, needle string) int {
	n := []rune(needle)
	if len(n) == 0 {
		return 0
	}
	fail := kmpFailure(n)
	j := 0 // matched prefix length
	i := 0 // rune position in haystack
	for _, r := range haystack {
		for j > 0 && r != n[j] {
			j = fail[j-1]
		}
		if r == n[j] {
			j++
		}
		if j == len(n) {
			return i - len(n) + 1
		}
		i++
	}
	return NotFound
}

// kmpFailure builds the KMP failure table: fail[i] is the length of the
// longest proper prefix of n[:i+1] that is also a suffix of it.
func kmpFailure(n []rune) []int {
	fail := make([]int, len(n))
	for i := 1; i < len(n); i++ {
		j := fail[i-1]
		for j > 0 && n[i] != n[j] {
			j = fail[j-1]
		}
		if n[i] == n[j] {
			j++
		}
		fail[i] = j
	}
	return fail
}

// CountOccurrences returns the number of non-overlapping occurrences of
// needle in haystack. An empty needle yields 0.
// Complexity: O(n+m) time via the KMP automaton.
func CountOccurrences(haystack, needle string) int {
	n := []rune(needle)
	if len(n) == 0 {
		return 0
	}
	fail := kmpFailure(n)
	count, j := 0, 0
	for _, r := range haystack {
		for j > 0 && r != n[j] {
			j = fail[j-1]
		}
		if r == n[j] {
			j++
		}
		if j == len(n) {
			count++
			j = 0 // non-overlapping: restart after a full match
		}
	}
	return count
}
