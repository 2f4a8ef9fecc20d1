// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kianostad/strncmp/internal/compare"
)

const replHelp = `Commands:
  cmp <a> <b> [n]   - Compare two words, n defaults to the longer length
  hex <a> <b> [n]   - Compare two hex-encoded byte strings
  tier <name>       - Switch to scalar, narrow or wide
  tiers             - List runnable tiers
  help              - Show this message
  quit, exit        - Leave the session`

// REPL is an interactive comparison session bound to one comparator tier.
type REPL struct {
	app  *app
	fn   compare.Func
	tier compare.Tier
}

func NewREPL(a *app) *REPL {
	return &REPL{app: a, fn: compare.Compare, tier: compare.Active()}
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive comparison session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return NewREPL(a).Run(ctx)
		},
	}
}

// Run reads commands until end of input, quit, or cancellation of ctx.
func (r *REPL) Run(ctx context.Context) error {
	out := r.app.out
	fmt.Fprintf(out, "strncmp REPL (tier %s)\n", r.tier)
	fmt.Fprintln(out, "Commands: cmp, hex, tier, tiers, help, quit")

	scanner := bufio.NewScanner(r.app.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "cmp", "hex":
			if len(args) < 2 || len(args) > 3 {
				fmt.Fprintf(out, "Usage: %s <a> <b> [n]\n", cmd)
				continue
			}
			x, y, err := decodeArgs(args[:2], cmd == "hex")
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			n := max(len(x), len(y))
			if len(args) == 3 {
				n, err = strconv.Atoi(args[2])
				if err != nil {
					fmt.Fprintf(out, "Error: bad bound %q\n", args[2])
					continue
				}
			}
			result := r.fn(x, y, n)
			fmt.Fprintf(out, "%d (%s)\n", result, ordering(result))

		case "tier":
			if len(args) != 1 {
				fmt.Fprintln(out, "Usage: tier <name>")
				continue
			}
			fn, tier, err := resolveTier(args[0])
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			r.fn, r.tier = fn, tier
			r.app.logger.Debug("repl tier switched", "tier", tier.String())
			fmt.Fprintf(out, "Tier: %s\n", tier)

		case "tiers":
			if err := printTiers(r.app); err != nil {
				return err
			}

		case "help":
			fmt.Fprintln(out, replHelp)

		case "quit", "exit":
			fmt.Fprintln(out, "Goodbye!")
			return nil

		default:
			fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		}
	}
}
