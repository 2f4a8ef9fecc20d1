// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kianostad/strncmp/internal/compare"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		bound    int
		tierName string
		hexInput bool
	)

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two inputs up to a bound",
		Long: `Compare two inputs lexicographically and print the result.

The bound defaults to the length of the longer input. With --hex both
arguments are hex-encoded bytes, which allows zero and high-bit bytes.

Examples:
  strncmp compare apple apply
  strncmp compare -n 5 short short-plus-tail
  strncmp compare --tier scalar --hex ff00aa ff00ab`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := decodeArgs(args, hexInput)
			if err != nil {
				return err
			}

			fn, tier, err := resolveTier(tierName)
			if err != nil {
				return err
			}

			n := bound
			if n < 0 {
				n = max(len(x), len(y))
			}
			result := fn(x, y, n)
			a.logger.Debug("compared", "tier", tier.String(), "n", n, "len_a", len(x), "len_b", len(y))

			fmt.Fprintf(a.out, "%d (%s)\n", result, ordering(result))
			return nil
		},
	}

	cmd.Flags().IntVarP(&bound, "bound", "n", -1, "Maximum number of bytes to compare, negative for the longer input")
	cmd.Flags().StringVar(&tierName, "tier", "", "Comparator tier: scalar, narrow or wide (default: active tier)")
	cmd.Flags().BoolVar(&hexInput, "hex", false, "Arguments are hex-encoded bytes")
	return cmd
}

func decodeArgs(args []string, hexInput bool) ([]byte, []byte, error) {
	if !hexInput {
		return []byte(args[0]), []byte(args[1]), nil
	}
	x, err := hex.DecodeString(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("decode first argument: %w", err)
	}
	y, err := hex.DecodeString(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("decode second argument: %w", err)
	}
	return x, y, nil
}

// resolveTier returns the comparator for a tier name, or the active one when
// the name is empty.
func resolveTier(name string) (compare.Func, compare.Tier, error) {
	if name == "" {
		return compare.Compare, compare.Active(), nil
	}
	tier, err := compare.ParseTier(name)
	if err != nil {
		return nil, tier, err
	}
	fn, err := compare.ForTier(tier)
	if err != nil {
		return nil, tier, err
	}
	return fn, tier, nil
}

func ordering(result int) string {
	switch {
	case result < 0:
		return "less"
	case result > 0:
		return "greater"
	default:
		return "equal"
	}
}
