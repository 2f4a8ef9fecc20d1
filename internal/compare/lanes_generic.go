// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build !amd64 || purego

package compare

// emulatedLanes reports whether the lane masks come from portable code.
// Emulated tiers are always safe to run but are never auto-selected.
const emulatedLanes = true

var (
	hasWide   = false
	hasNarrow = false
)

func wideMasks(a, b []byte) (eq, nul uint32) {
	return swarWideMasks(a, b)
}

func narrowMasks(a, b []byte) (eq, nul uint32) {
	return swarNarrowMasks(a, b)
}
