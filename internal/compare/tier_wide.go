// Licensed under the MIT License. See LICENSE file in the project root for details.

package compare

// compareWide compares 32 bytes per step. Chunks never extend past n or the
// end of either slice; the remainder goes to compareScalar.
func compareWide(a, b []byte, n int) int {
	limit := min(n, len(a), len(b))

	i := 0
	for ; i+wideLanes <= limit; i += wideLanes {
		eq, nul := wideMasks(a[i:], b[i:])
		if eq == wideAllEqual && nul == 0 {
			continue
		}
		return settle(a, b, i+lowestSetBit(stopMask(eq, nul, wideAllEqual)))
	}

	if i == 0 {
		return compareScalar(a, b, n)
	}
	return compareScalar(a[i:], b[i:], n-i)
}
