// Licensed under the MIT License. See LICENSE file in the project root for details.

package strncmp

import (
	"errors"
	"fmt"
	"sort"
	"testing"
)

func TestPublicAPI(t *testing.T) {
	if got := Compare([]byte("hello"), []byte("hello"), 5); got != 0 {
		t.Errorf("Expected equal inputs to compare as 0, got %d", got)
	}
	if got := Compare([]byte("apple"), []byte("apply"), 5); got >= 0 {
		t.Errorf("Expected apple < apply, got %d", got)
	}
	if got := CompareString("short", "short-plus-tail", 5); got != 0 {
		t.Errorf("Expected bound to truncate comparison, got %d", got)
	}
	if got := Compare([]byte{0xFF}, []byte{0x7F}, 1); got <= 0 {
		t.Errorf("Expected 0xFF > 0x7F, got %d", got)
	}

	// The active tier must be one of the runnable ones.
	found := false
	for _, tier := range Tiers() {
		if tier == ActiveTier() {
			found = true
		}
		fn, err := ForTier(tier)
		if err != nil {
			t.Fatalf("ForTier(%s): %v", tier, err)
		}
		if got := fn([]byte("same-prefix-AAAA"), []byte("same-prefix-AAAB"), 16); got >= 0 {
			t.Errorf("%s: expected AAAA < AAAB, got %d", tier, got)
		}
	}
	if !found {
		t.Errorf("Active tier %s not in %v", ActiveTier(), Tiers())
	}

	if _, err := ParseTier("sse9"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("Expected ErrUnknownTier, got %v", err)
	}
}

func TestSortWithCompare(t *testing.T) {
	keys := []string{"prefix/b", "prefix/a", "prefix", "prefix/ab", "\xffhigh", "Prefix"}
	sort.Slice(keys, func(i, j int) bool {
		n := max(len(keys[i]), len(keys[j]))
		return CompareString(keys[i], keys[j], n) < 0
	})

	want := []string{"Prefix", "prefix", "prefix/a", "prefix/ab", "prefix/b", "\xffhigh"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Expected %q, got %q", want, keys)
		}
	}
}

func ExampleCompare() {
	fmt.Println(Compare([]byte("apple"), []byte("apply"), 5) < 0)
	fmt.Println(Compare([]byte("hello"), []byte("hello"), 5))
	fmt.Println(Compare([]byte("short"), []byte("short-plus-tail"), 5))
	fmt.Println(Compare([]byte{0xFF}, []byte{0x7F}, 1))
	// Output:
	// true
	// 0
	// 0
	// 128
}

func ExampleCompareString() {
	a := "exactly32byteslongstringhereXX!!"
	b := "exactly32byteslongstringhereXX!?"
	fmt.Println(CompareString(a, b, 32))
	// Output: -30
}
