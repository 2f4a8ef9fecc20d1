// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package strncmp provides bounded lexicographic byte-string comparison
// accelerated with vector instructions.
//
// This is the main public API of the module. It compares at most n bytes of
// two inputs with the semantics of C's strncmp: the first differing byte
// decides the order (bytes compare as unsigned values), a zero byte shared by
// both inputs ends the comparison, and the end of a slice behaves like a
// terminator.
//
// # Quick Start
//
//	import "github.com/kianostad/strncmp"
//
//	strncmp.Compare([]byte("apple"), []byte("apply"), 5)  // < 0
//	strncmp.CompareString("short", "short-plus-tail", 5)  // == 0
//
// # Tiers
//
// On amd64 the widest available tier is picked once at start-up:
//
//   - Wide: 32 bytes per step with AVX2
//   - Narrow: 16 bytes per step with SSE2
//   - Scalar: one byte per step
//
// Every tier returns the same value for the same input, so callers never need
// to know which one is active. ActiveTier reports it, ForTier hands out a
// specific one, and the STRNCMP_TIER environment variable (scalar, narrow or
// wide) caps the automatic choice. Building with the purego tag disables the
// assembly.
//
// # Performance Characteristics
//
//   - No allocation and no writes to the inputs
//   - Cost is linear in min(n, position of the first mismatch)
//   - One indirect call per comparison for tier dispatch
//
// # Thread Safety
//
// All functions are safe for concurrent use.
//
// # See Also
//
// For the tier implementations, see the internal compare package.
// For benchmarking and interactive use, see cmd/strncmp.
package strncmp

import "github.com/kianostad/strncmp/internal/compare"

// Re-export compare types
type (
	// Tier identifies one comparator implementation.
	Tier = compare.Tier

	// Func is the signature shared by every tier.
	Func = compare.Func
)

// Available tiers.
const (
	Scalar = compare.Scalar
	Narrow = compare.Narrow
	Wide   = compare.Wide
)

// Errors returned by ForTier and ParseTier.
var (
	ErrUnknownTier     = compare.ErrUnknownTier
	ErrTierUnavailable = compare.ErrTierUnavailable
)

// Compare compares at most n bytes of a and b. It returns a negative value if
// a sorts first, a positive value if b sorts first and zero if they are equal
// over the compared range. When they differ, the value is the difference of
// the first differing bytes taken as unsigned.
func Compare(a, b []byte, n int) int {
	return compare.Compare(a, b, n)
}

// CompareString is Compare for strings, without copying.
func CompareString(a, b string, n int) int {
	return compare.CompareString(a, b, n)
}

// ActiveTier returns the tier Compare uses.
func ActiveTier() Tier {
	return compare.Active()
}

// Tiers returns every tier runnable on this CPU, widest first.
func Tiers() []Tier {
	return compare.Tiers()
}

// ForTier returns the comparator of a specific tier.
func ForTier(t Tier) (Func, error) {
	return compare.ForTier(t)
}

// ParseTier converts "scalar", "narrow" or "wide" into a Tier.
func ParseTier(s string) (Tier, error) {
	return compare.ParseTier(s)
}
