// Licensed under the MIT License. See LICENSE file in the project root for details.

package compare

import "math/bits"

// Lane widths and the all-lanes-equal sentinels of their masks.
const (
	narrowLanes = 16
	wideLanes   = 32

	narrowAllEqual uint32 = 0xFFFF
	wideAllEqual   uint32 = 0xFFFFFFFF
)

// lowestSetBit returns the index of the least significant set bit of a
// nonzero mask.
func lowestSetBit(mask uint32) int {
	return bits.TrailingZeros32(mask)
}

// stopMask marks every lane where the comparison has to stop: the bytes
// differ, or the first input holds a terminator. all selects the lanes that
// belong to the chunk.
func stopMask(eq, nul, all uint32) uint32 {
	return (^eq & all) | nul
}
