// Package commands implements the CLI command handlers for nwdist.
package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/li-maxime/Needleman-Wunsch-algorithm/base"
	"github.com/li-maxime/Needleman-Wunsch-algorithm/fasta"
	"github.com/li-maxime/Needleman-Wunsch-algorithm/nw"
)

var (
	// ErrUnknownStrategyName indicates a --strategy value outside the known set.
	ErrUnknownStrategyName = errors.New(
		`unknown strategy. Use -s with: memoized, iterative, cache-aware, cache-oblivious, or "all"`,
	)
	// ErrBadCacheSize indicates an unparsable --cache-size value.
	ErrBadCacheSize = errors.New("cache-size must be a byte string like 32KiB or 1MB")
)

// strategyNames maps command-line names to strategies, in display order.
var strategyNames = []struct {
	name string
	s    nw.Strategy
}{
	{"memoized", nw.Memoized},
	{"iterative", nw.Iterative},
	{"cache-aware", nw.CacheAware},
	{"cache-oblivious", nw.CacheOblivious},
}

// DistCommand holds the flag state of the nwdist root command.
type DistCommand struct {
	strategies  []string
	cacheSize   string
	threshold   int
	subCost     int64
	unknownCost int64
	insCost     int64
	warnInvalid bool
	noColor     bool
}

// NewDistCommand creates the nwdist root command.
func NewDistCommand() *cobra.Command {
	dc := &DistCommand{}

	cmd := &cobra.Command{
		Use:   "nwdist <fileA.fasta> <fileB.fasta>",
		Short: "Needleman-Wunsch edit distance between two genetic sequences",
		Long: `nwdist loads two FASTA sequences and computes their global alignment
score (minimum edit distance) with one or more evaluation strategies:

  memoized         top-down, full memo table      O(M*N) time and memory
  iterative        bottom-up, one row             O(M*N) time, O(N) memory
  cache-aware      bottom-up, cache-sized blocks  O(M*N) time, O(M) memory
  cache-oblivious  bottom-up, recursive halving   O(M*N) time, O(M) memory

All strategies return the same distance; the point of running several is
comparing their wall time on the same input.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return dc.run(args[0], args[1], c.OutOrStdout(), c.ErrOrStderr())
		},
	}

	cmd.Flags().StringSliceVarP(&dc.strategies, "strategy", "s", []string{"iterative"},
		`strategies to run: memoized, iterative, cache-aware, cache-oblivious, or "all"`)
	cmd.Flags().StringVar(&dc.cacheSize, "cache-size", "32KiB",
		"assumed cache capacity for cache-aware (byte string, e.g. 64KiB)")
	cmd.Flags().IntVar(&dc.threshold, "threshold", nw.DefaultThreshold,
		"bisection stop width in columns for cache-oblivious")
	cmd.Flags().Int64Var(&dc.subCost, "sub-cost", 1, "substitution cost between distinct canonical bases")
	cmd.Flags().Int64Var(&dc.unknownCost, "unknown-cost", 1, "substitution cost when either base is the N wildcard")
	cmd.Flags().Int64Var(&dc.insCost, "ins-cost", 2, "insertion/deletion cost per base")
	cmd.Flags().BoolVar(&dc.warnInvalid, "warn-invalid", false, "report non-alphabet symbols on stderr")
	cmd.Flags().BoolVar(&dc.noColor, "no-color", false, "disable colored output")

	return cmd
}

// run loads both sequences, runs each selected strategy once, and renders
// the result table to out. Diagnostics go to errOut.
func (dc *DistCommand) run(pathA, pathB string, out, errOut io.Writer) error {
	if dc.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	selected, err := parseStrategies(dc.strategies)
	if err != nil {
		return err
	}

	cacheBytes, err := humanize.ParseBytes(dc.cacheSize)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadCacheSize, dc.cacheSize)
	}

	seqA, err := fasta.ReadFile(pathA)
	if err != nil {
		return err
	}
	seqB, err := fasta.ReadFile(pathB)
	if err != nil {
		return err
	}

	alphabet := base.DNA()
	if dc.warnInvalid {
		warn := color.New(color.FgYellow)
		alphabet = alphabet.OnInvalid(func(sym byte) {
			warn.Fprintf(errOut, "warning: invalid symbol %q skipped\n", sym)
		})
	}

	opts := nw.Options{
		Costs: nw.Costs{
			Substitution:        dc.subCost,
			UnknownSubstitution: dc.unknownCost,
			Insertion:           dc.insCost,
		},
		CacheSize: int(cacheBytes),
		Threshold: dc.threshold,
		Alphabet:  alphabet,
	}

	fmt.Fprintf(out, "A: %s (%s symbols)\n", pathA, humanize.Comma(int64(len(seqA))))
	fmt.Fprintf(out, "B: %s (%s symbols)\n", pathB, humanize.Comma(int64(len(seqB))))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"STRATEGY", "DISTANCE", "TIME"})

	for _, s := range selected {
		opts.Strategy = s

		start := time.Now()
		dist, runErr := nw.Distance(seqA, seqB, &opts)
		if runErr != nil {
			return runErr
		}
		tbl.AppendRow(table.Row{s.String(), dist, time.Since(start).Round(time.Microsecond)})
	}
	tbl.Render()

	return nil
}

// parseStrategies resolves --strategy values into a deduplicated strategy
// list in display order. "all" selects every strategy.
func parseStrategies(names []string) ([]nw.Strategy, error) {
	picked := make(map[nw.Strategy]bool, len(strategyNames))
	for _, name := range names {
		if name == "all" {
			for _, sn := range strategyNames {
				picked[sn.s] = true
			}
			continue
		}
		known := false
		for _, sn := range strategyNames {
			if name == sn.name {
				picked[sn.s] = true
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategyName, name)
		}
	}

	var out []nw.Strategy
	for _, sn := range strategyNames {
		if picked[sn.s] {
			out = append(out, sn.s)
		}
	}
	if len(out) == 0 {
		return nil, ErrUnknownStrategyName
	}

	return out, nil
}
