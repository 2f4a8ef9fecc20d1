// Licensed under the MIT License. See LICENSE file in the project root for details.

package compare

import "testing"

// FuzzTiersAgree checks that all runnable tiers match the reference on
// arbitrary inputs.
func FuzzTiersAgree(f *testing.F) {
	f.Add([]byte("hello"), []byte("hello"), 5)
	f.Add([]byte("apple"), []byte("apply"), 5)
	f.Add([]byte("same-prefix-AAAA"), []byte("same-prefix-AAAB"), 16)
	f.Add([]byte("exactly32byteslongstringhereXX!!"), []byte("exactly32byteslongstringhereXX!?"), 32)
	f.Add([]byte("short"), []byte("short-plus-tail"), 5)
	f.Add([]byte{0xFF}, []byte{0x7F}, 1)
	f.Add([]byte("ab\x00cd"), []byte("ab\x00ef"), 5)

	fns := runnableTiers(f)
	f.Fuzz(func(t *testing.T, a, b []byte, n int) {
		if n > 1<<16 {
			n = 1 << 16
		}
		want := referenceCompare(a, b, n)
		for tier, fn := range fns {
			if got := fn(a, b, n); got != want {
				t.Fatalf("%s: compare(%q, %q, %d) = %d, want %d", tier, a, b, n, got, want)
			}
		}
	})
}
