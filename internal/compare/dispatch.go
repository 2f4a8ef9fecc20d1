// Licensed under the MIT License. See LICENSE file in the project root for details.

package compare

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Tier identifies one comparator implementation. Higher tiers process more
// bytes per step.
type Tier uint8

const (
	// Scalar compares one byte at a time.
	Scalar Tier = iota
	// Narrow compares 16-byte chunks.
	Narrow
	// Wide compares 32-byte chunks.
	Wide
)

// EnvTier names the environment variable that caps the auto-selected tier.
const EnvTier = "STRNCMP_TIER"

var (
	// ErrUnknownTier is returned for a tier name or value that does not exist.
	ErrUnknownTier = errors.New("unknown tier")
	// ErrTierUnavailable is returned when the CPU cannot run the requested tier.
	ErrTierUnavailable = errors.New("tier not supported on this CPU")
)

var tierNames = [...]string{
	Scalar: "scalar",
	Narrow: "narrow",
	Wide:   "wide",
}

// String returns the lower-case tier name.
func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return fmt.Sprintf("tier(%d)", uint8(t))
}

// Width returns the number of bytes compared per step.
func (t Tier) Width() int {
	switch t {
	case Wide:
		return wideLanes
	case Narrow:
		return narrowLanes
	default:
		return 1
	}
}

// Native reports whether the tier runs on dedicated vector instructions on
// this build, as opposed to portable emulation.
func (t Tier) Native() bool {
	switch t {
	case Wide:
		return hasWide
	case Narrow:
		return hasNarrow
	default:
		return false
	}
}

// ParseTier converts a tier name (case-insensitive) into a Tier.
func ParseTier(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range tierNames {
		if n == name {
			return Tier(t), nil
		}
	}
	return Scalar, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Runnable reports whether t can execute on this CPU.
func Runnable(t Tier) bool {
	switch t {
	case Scalar:
		return true
	case Narrow:
		return emulatedLanes || hasNarrow
	case Wide:
		return emulatedLanes || hasWide
	default:
		return false
	}
}

// Tiers returns every runnable tier, widest first.
func Tiers() []Tier {
	tiers := make([]Tier, 0, len(tierNames))
	for t := Wide; ; t-- {
		if Runnable(t) {
			tiers = append(tiers, t)
		}
		if t == Scalar {
			return tiers
		}
	}
}

// ForTier returns the comparator of a specific tier.
func ForTier(t Tier) (Func, error) {
	if int(t) >= len(tierNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, uint8(t))
	}
	if !Runnable(t) {
		return nil, fmt.Errorf("%s: %w", t, ErrTierUnavailable)
	}
	return tierFunc(t), nil
}

func tierFunc(t Tier) Func {
	switch t {
	case Wide:
		return compareWide
	case Narrow:
		return compareNarrow
	default:
		return compareScalar
	}
}

// Active returns the tier Compare uses.
func Active() Tier {
	return active.tier
}

// Detected returns the widest tier with native hardware support, ignoring
// any STRNCMP_TIER cap.
func Detected() Tier {
	switch {
	case hasWide:
		return Wide
	case hasNarrow:
		return Narrow
	default:
		return Scalar
	}
}

type selection struct {
	tier Tier
	fn   Func
}

// active is written once during initialisation and read-only afterwards.
var active = selectTier(os.Getenv(EnvTier))

// selectTier picks the widest native tier not above the cap. An empty or
// unparsable cap is ignored.
func selectTier(limit string) selection {
	t := Detected()
	if limit != "" {
		if capped, err := ParseTier(limit); err == nil && capped < t {
			t = capped
		}
	}
	return selection{tier: t, fn: tierFunc(t)}
}
