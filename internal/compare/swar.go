// Licensed under the MIT License. See LICENSE file in the project root for details.

package compare

import "encoding/binary"

// SWAR ("SIMD within a register") constants for 8 lanes of one byte each.
const (
	swarLow7   = 0x7f7f7f7f7f7f7f7f
	swarHigh   = 0x8080808080808080
	swarGather = 0x0102040810204080
)

// nonzeroBytes sets the high bit of every byte of x that is not zero and
// clears everything else. No carry crosses a byte boundary.
func nonzeroBytes(x uint64) uint64 {
	return ((x&swarLow7)+swarLow7 | x) & swarHigh
}

// movemask packs the high bit of each byte of x into bits 0..7, byte 0 first.
// It mirrors PMOVMSKB for one 64-bit word.
func movemask(x uint64) uint32 {
	return uint32((((x & swarHigh) >> 7) * swarGather) >> 56)
}

// wordMasks returns the 8-lane equality and terminator masks of the first
// eight bytes of a and b.
func wordMasks(a, b []byte) (eq, nul uint32) {
	wa := binary.LittleEndian.Uint64(a)
	wb := binary.LittleEndian.Uint64(b)
	eq = ^movemask(nonzeroBytes(wa^wb)) & 0xFF
	nul = ^movemask(nonzeroBytes(wa)) & 0xFF
	return eq, nul
}

// swarNarrowMasks builds a 16-lane mask from two words.
func swarNarrowMasks(a, b []byte) (eq, nul uint32) {
	eq0, nul0 := wordMasks(a, b)
	eq1, nul1 := wordMasks(a[8:], b[8:])
	return eq0 | eq1<<8, nul0 | nul1<<8
}

// swarWideMasks builds a 32-lane mask from four words.
func swarWideMasks(a, b []byte) (eq, nul uint32) {
	for w := 0; w < 4; w++ {
		e, z := wordMasks(a[w*8:], b[w*8:])
		eq |= e << (w * 8)
		nul |= z << (w * 8)
	}
	return eq, nul
}
