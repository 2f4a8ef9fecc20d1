// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build amd64 && !purego

package compare

import "golang.org/x/sys/cpu"

// emulatedLanes reports whether the lane masks come from portable code.
const emulatedLanes = false

// CPU feature flags for tier selection.
var (
	hasWide   = cpu.X86.HasAVX2
	hasNarrow = cpu.X86.HasSSE2
)

// wideMasks compares the first 32 bytes of a and b with AVX2 and returns the
// per-byte equality mask and the mask of zero bytes in a.
// The implementation resides in lanes_amd64.s.
//
//go:noescape
func wideMasks(a, b []byte) (eq, nul uint32)

// narrowMasks is wideMasks for 16 bytes using SSE2.
// The implementation resides in lanes_amd64.s.
//
//go:noescape
func narrowMasks(a, b []byte) (eq, nul uint32)
