// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main provides the strncmp command-line tool.
//
// The tool exposes the bounded comparison primitive for interactive checks and
// measures the available tiers against each other on generated corpora.
//
// # Usage
//
//	strncmp compare apple apply             # -20 (less)
//	strncmp compare -n 5 short short-plus-tail
//	strncmp compare --hex ff 7f             # 128 (greater)
//	strncmp tiers                           # runnable tiers, active one marked
//	strncmp bench --kind dna --pairs 10000 --prefix 48
//	strncmp bench --format prom             # Prometheus text output
//	strncmp repl                            # interactive session
//
// # Configuration
//
//   - STRNCMP_TIER caps the automatically selected tier (scalar, narrow, wide)
//   - --tier picks a tier for a single compare invocation
//   - --verbose enables debug logging on stderr
//
// # Dangers and Warnings
//
//   - **Resource Consumption**: bench keeps every generated pair in memory
//   - **System Impact**: results depend on CPU frequency scaling and load
//
// # See Also
//
// For the library API, see the strncmp package.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kianostad/strncmp/internal/compare"
)

// app carries the shared state of all subcommands.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	verbose bool
	logger  *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "strncmp",
		Short: "Bounded byte-string comparison with vector acceleration",
		Long: `strncmp compares byte strings lexicographically up to a bound, 32 or 16
bytes at a time on CPUs with AVX2 or SSE2.

Subcommands:
  compare  - Compare two inputs
  tiers    - List the comparator tiers of this CPU
  bench    - Measure every tier on a generated corpus
  repl     - Interactive comparison session`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
			a.logger.Debug("tier selected",
				"active", compare.Active().String(),
				"detected", compare.Detected().String(),
				"env", os.Getenv(compare.EnvTier))
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newCompareCmd(a),
		newTiersCmd(a),
		newBenchCmd(a),
		newReplCmd(a),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
