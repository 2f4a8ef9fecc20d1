// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package compare implements bounded lexicographic byte-string comparison in
// three interchangeable tiers.
//
// Every tier follows the contract of C's strncmp applied to Go slices:
// comparison stops after n bytes, at the first differing byte, or at a zero
// byte both inputs share. The end of a slice acts as an implicit terminator,
// so a position at or past len(buf) reads as zero and nothing outside the
// slice is ever touched.
//
// # Tiers
//
//   - Wide: 32-byte chunks, one 32-bit lane mask per chunk (AVX2 on amd64)
//   - Narrow: 16-byte chunks, one 16-bit lane mask per chunk (SSE2 on amd64)
//   - Scalar: byte-by-byte loop, also used for the tail of the vector tiers
//
// All tiers return identical results. The result is the unsigned difference
// of the first differing byte pair, or zero when the inputs are equal over
// the compared range.
//
// # Selection
//
// The widest tier the CPU supports is chosen once during package
// initialisation and cached in a function value, so Compare pays for a single
// indirect call and never probes the CPU on the hot path. The selection can be
// capped with the STRNCMP_TIER environment variable, and the purego build tag
// replaces the assembly lane providers with portable SWAR code.
//
// # Thread Safety
//
// The comparators are pure functions over caller-owned memory. They never
// allocate or write, and may be called from any number of goroutines.
package compare

import "unsafe"

// Func is the signature shared by every tier.
type Func func(a, b []byte, n int) int

// Compare compares at most n bytes of a and b using the selected tier.
// It returns a negative value when a sorts first, a positive value when b
// sorts first, and zero when they are equal over the compared range.
func Compare(a, b []byte, n int) int {
	return active.fn(a, b, n)
}

// CompareString is Compare for strings. It views the string data in place and
// does not copy.
func CompareString(a, b string, n int) int {
	return active.fn(stringBytes(a), stringBytes(b), n)
}

// stringBytes returns the bytes backing s. The result must not be modified.
func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s)) // #nosec G103
}

// byteAt returns buf[i], or the implicit terminator when i is past the end.
func byteAt(buf []byte, i int) byte {
	if i < len(buf) {
		return buf[i]
	}
	return 0
}

// settle resolves a stop position found inside a chunk: either the bytes
// differ, or both hold a terminator.
func settle(a, b []byte, i int) int {
	return int(a[i]) - int(b[i])
}
