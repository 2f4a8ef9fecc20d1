// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kianostad/strncmp/internal/compare"
	"github.com/kianostad/strncmp/internal/monitoring/metrics"
	"github.com/kianostad/strncmp/internal/workload"
)

// baselineLabel names the standard library reference in bench output.
const baselineLabel = "bytes.Compare"

var errTierDisagreement = errors.New("tiers disagree")

type benchConfig struct {
	kind     string
	pairs    int
	length   int
	prefix   int
	rounds   int
	batch    int
	seed     int64
	format   string
	baseline bool
}

func newBenchCmd(a *app) *cobra.Command {
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure every runnable tier on a generated corpus",
		Long: `Generate entry/query pairs, check that every tier returns the same
results, then time each tier over several rounds.

Corpus kinds: random, dna, protein, words, paths.

Examples:
  strncmp bench
  strncmp bench --kind protein --length 64 --prefix 32
  strncmp bench --format json --rounds 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), a, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.kind, "kind", string(workload.Random), "Corpus kind")
	cmd.Flags().IntVar(&cfg.pairs, "pairs", 10000, "Number of entry/query pairs")
	cmd.Flags().IntVar(&cfg.length, "length", 40, "String length (levels for paths)")
	cmd.Flags().IntVar(&cfg.prefix, "prefix", 0, "Shared prefix length prepended to every pair")
	cmd.Flags().IntVar(&cfg.rounds, "rounds", 10, "Timed rounds per tier")
	cmd.Flags().IntVar(&cfg.batch, "batch", 256, "Comparisons per latency sample")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 1, "Corpus seed")
	cmd.Flags().StringVar(&cfg.format, "format", "text", "Output format: text, json or prom")
	cmd.Flags().BoolVar(&cfg.baseline, "baseline", true, "Also measure bytes.Compare")
	return cmd
}

type benchTarget struct {
	label string
	fn    compare.Func
}

func benchTargets(withBaseline bool) []benchTarget {
	var targets []benchTarget
	for _, tier := range compare.Tiers() {
		fn, err := compare.ForTier(tier)
		if err != nil {
			continue
		}
		targets = append(targets, benchTarget{label: tier.String(), fn: fn})
	}
	if withBaseline {
		targets = append(targets, benchTarget{
			label: baselineLabel,
			fn: func(a, b []byte, n int) int {
				return bytes.Compare(a[:min(n, len(a))], b[:min(n, len(b))])
			},
		})
	}
	return targets
}

func runBench(ctx context.Context, a *app, cfg benchConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	switch cfg.format {
	case "text", "json", "prom":
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.rounds < 1 || cfg.batch < 1 {
		return fmt.Errorf("rounds and batch must be positive: rounds=%d batch=%d", cfg.rounds, cfg.batch)
	}

	kind, err := workload.ParseKind(cfg.kind)
	if err != nil {
		return err
	}
	pairs, err := workload.New(cfg.seed).Pairs(kind, cfg.pairs, cfg.length, cfg.prefix)
	if err != nil {
		return err
	}
	bounds := make([]int, len(pairs))
	for i, p := range pairs {
		bounds[i] = max(len(p.A), len(p.B))
	}
	a.logger.Debug("corpus ready", "kind", kind, "pairs", len(pairs), "prefix", cfg.prefix)

	targets := benchTargets(cfg.baseline)
	if err := verifyTiers(pairs, bounds); err != nil {
		return err
	}

	rec := metrics.NewRecorder(metrics.Config{
		BufferSize:    cfg.rounds * (len(pairs)/cfg.batch + 1) * len(targets),
		LatencySample: metrics.DefaultConfig().LatencySample,
	})
	defer rec.Close()

	sink := 0
	for round := 0; round < cfg.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, target := range targets {
			for start := 0; start < len(pairs); start += cfg.batch {
				end := min(start+cfg.batch, len(pairs))
				size := 0
				began := time.Now()
				for i := start; i < end; i++ {
					sink += target.fn(pairs[i].A, pairs[i].B, bounds[i])
					size += bounds[i]
				}
				rec.Record(target.label, time.Since(began), end-start, size)
			}
		}
	}
	a.logger.Debug("bench finished", "rounds", cfg.rounds, "checksum", sink)

	rec.Close()
	return writeBench(a, rec, cfg.format, targets)
}

// verifyTiers checks every runnable tier against the scalar tier on the
// whole corpus before anything is timed.
func verifyTiers(pairs []workload.Pair, bounds []int) error {
	scalar, err := compare.ForTier(compare.Scalar)
	if err != nil {
		return err
	}
	for _, tier := range compare.Tiers() {
		if tier == compare.Scalar {
			continue
		}
		fn, err := compare.ForTier(tier)
		if err != nil {
			return err
		}
		for i, p := range pairs {
			want := scalar(p.A, p.B, bounds[i])
			if got := fn(p.A, p.B, bounds[i]); got != want {
				return fmt.Errorf("%w: %s returned %d, scalar %d for pair %d (%q, %q)",
					errTierDisagreement, tier, got, want, i, p.A, p.B)
			}
		}
	}
	return nil
}

func writeBench(a *app, rec *metrics.Recorder, format string, targets []benchTarget) error {
	switch format {
	case "json":
		data, err := rec.ExportJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "%s\n", data)
		return err
	case "prom":
		_, err := fmt.Fprint(a.out, rec.ExportPrometheus())
		return err
	}

	snap := rec.Snapshot()
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "TARGET\tOPS\tMB/s\tMEAN\tP50\tP95\tP99\t")
	for _, target := range targets {
		st, ok := snap.Labels[target.label]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%v\t%v\t%v\t%v\t\n",
			target.label, st.Ops, st.MBPerSec,
			st.Latency.Mean, st.Latency.P50, st.Latency.P95, st.Latency.P99)
	}
	if snap.Dropped > 0 {
		a.logger.Warn("latency samples dropped", "count", snap.Dropped)
	}
	return w.Flush()
}
