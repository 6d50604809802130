// Package algokit is a compact toolbox of the classic algorithms and data
// structures everyone keeps re-deriving on a whiteboard — implemented once,
// documented, and tested.
//
// 🚀 What is algokit?
//
//	A small, dependency-light library that brings together:
//		• Array utilities: max/min, reverse, dedup, rotate, sorted merge, peak finding
//		• String utilities: palindromes, anagrams, character frequency, pattern search (naive & KMP)
//		• Searching: linear & binary search over ordered slices
//		• Sorting: bubble, selection, insertion, quick, merge — with documented stability & complexity
//		• Recursion & DP: factorial, Fibonacci (naive + memoized), LCS, coin change, Tower of Hanoi
//		• LRUCache: fixed-capacity cache with O(1) Get/Put and an eviction hook
//
// ✨ Why choose algokit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contracts – sentinel values for expected misses, sentinel errors for bad input
//   - Pure Go – no cgo, no hidden deps
//   - Generic – works over any ordered or comparable element type
//
// Everything is organized under flat, independent subpackages:
//
//	arrayops/   — slice utilities (max/min, reverse, dedup, rotate, merge, peak)
//	stringops/  — string utilities (palindrome, anagram, frequency, pattern search)
//	sortsearch/ — linear/binary search and the five classic comparison sorts
//	dynprog/    — recursion & dynamic-programming routines
//	lrucache/   — generic fixed-capacity LRU cache
//
// Each subpackage is a leaf: no cross-package imports, independently testable.
//
//	go get github.com/katalvlaran/algokit
package algokit
