// Licensed under the MIT License. See LICENSE file in the project root for details.

package compare

// compareScalar is the byte-at-a-time tier. The vector tiers hand it whatever
// is left after their last whole chunk.
func compareScalar(a, b []byte, n int) int {
	if n <= 0 {
		return 0
	}

	m := min(n, len(a), len(b))
	for i := 0; i < m; i++ {
		ca, cb := a[i], b[i]
		if ca != cb {
			return int(ca) - int(cb)
		}
		if ca == 0 {
			return 0
		}
	}
	if m == n {
		return 0
	}

	// At least one input ended before n; its terminator meets the other's byte.
	return int(byteAt(a, m)) - int(byteAt(b, m))
}
