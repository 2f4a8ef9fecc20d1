// Licensed under the MIT License. See LICENSE file in the project root for details.

package compare

// compareNarrow is compareWide with 16-byte chunks.
func compareNarrow(a, b []byte, n int) int {
	limit := min(n, len(a), len(b))

	i := 0
	for ; i+narrowLanes <= limit; i += narrowLanes {
		eq, nul := narrowMasks(a[i:], b[i:])
		if eq == narrowAllEqual && nul == 0 {
			continue
		}
		return settle(a, b, i+lowestSetBit(stopMask(eq, nul, narrowAllEqual)))
	}

	if i == 0 {
		return compareScalar(a, b, n)
	}
	return compareScalar(a[i:], b[i:], n-i)
}
