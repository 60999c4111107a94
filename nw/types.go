// Package nw defines options, strategies and sentinel errors for the
// Needleman-Wunsch edit-distance solvers.
package nw

import (
	"errors"

	"github.com/li-maxime/Needleman-Wunsch-algorithm/base"
)

// Sentinel errors for option validation.
var (
	// ErrUnknownStrategy indicates Options.Strategy is not one of the four
	// defined strategies.
	ErrUnknownStrategy = errors.New("nw: unknown evaluation strategy")
	// ErrNegativeCost indicates a cost constant is negative.
	ErrNegativeCost = errors.New("nw: cost constants must be non-negative")
	// ErrBadCacheSize indicates CacheSize is not positive for CacheAware.
	ErrBadCacheSize = errors.New("nw: CacheSize must be positive for the CacheAware strategy")
	// ErrBadThreshold indicates Threshold is not positive for CacheOblivious.
	ErrBadThreshold = errors.New("nw: Threshold must be positive for the CacheOblivious strategy")
)

// Strategy selects how the distance table is evaluated.
//
// Every strategy computes the same value; they differ only in which φ(i,j)
// values they materialize, and for how long.
type Strategy int

const (
	// Memoized evaluates top-down with a full (M+1)×(N+1) memo table,
	// filling exactly the cells reachable from (0,0). O(M·N) time and
	// memory — the baseline the other strategies are judged against.
	Memoized Strategy = iota

	// Iterative evaluates bottom-up with one (N+1)-element row updated in
	// place, plus a single scalar carrying the stale diagonal value.
	// O(M·N) time, O(N) memory — the practical baseline.
	Iterative

	// CacheAware processes the Y-axis in fixed-width blocks derived from an
	// assumed cache capacity (Options.CacheSize), carrying boundary values
	// between blocks in an (M+1)-element border column. Same asymptotic
	// cost as Iterative; the goal is fewer cache misses on large inputs.
	CacheAware

	// CacheOblivious recursively halves the Y-axis until sub-ranges shrink
	// below Options.Threshold, then processes each leaf as one block. The
	// locality benefit holds at every level of the memory hierarchy without
	// naming a cache capacity.
	CacheOblivious
)

// String returns the strategy name as used on the command line.
func (s Strategy) String() string {
	switch s {
	case Memoized:
		return "memoized"
	case Iterative:
		return "iterative"
	case CacheAware:
		return "cache-aware"
	case CacheOblivious:
		return "cache-oblivious"
	default:
		return "unknown"
	}
}

// Costs holds the three constants of the edit cost model. All must be
// non-negative.
type Costs struct {
	// Substitution is charged when two distinct canonical symbols align.
	Substitution int64
	// UnknownSubstitution is charged when the aligned symbols are unequal
	// and at least one of them is the wildcard.
	UnknownSubstitution int64
	// Insertion is charged for one alphabet symbol consumed alone
	// (insertion or deletion; the model is symmetric).
	Insertion int64
}

// DefaultCosts returns the classic genetic-sequence cost model:
// substitution 1, wildcard substitution 1, insertion 2.
func DefaultCosts() Costs {
	return Costs{Substitution: 1, UnknownSubstitution: 1, Insertion: 2}
}

// Default tuning parameters for the blocked strategies.
const (
	// DefaultCacheSize assumes a 32 KiB L1 data cache.
	DefaultCacheSize = 32 << 10

	// DefaultThreshold stops the cache-oblivious bisection at sub-ranges of
	// 1024 columns.
	DefaultThreshold = 1024
)

// Options configures a Distance call.
//
// Fields:
//   - Strategy  — which of the four evaluation strategies to run.
//   - Costs     — the three cost constants; see DefaultCosts.
//   - CacheSize — assumed cache capacity in bytes (CacheAware only).
//   - Threshold — bisection stop width in columns (CacheOblivious only).
//   - Alphabet  — symbol classification; nil means base.DNA().
type Options struct {
	Strategy  Strategy
	Costs     Costs
	CacheSize int
	Threshold int
	Alphabet  *base.Alphabet
}

// DefaultOptions returns Options with the Iterative strategy, DefaultCosts,
// DefaultCacheSize, DefaultThreshold, and the DNA alphabet.
func DefaultOptions() Options {
	return Options{
		Strategy:  Iterative,
		Costs:     DefaultCosts(),
		CacheSize: DefaultCacheSize,
		Threshold: DefaultThreshold,
		Alphabet:  base.DNA(),
	}
}

// validate checks the option set for the strategy about to run.
func (o *Options) validate() error {
	if o.Strategy < Memoized || o.Strategy > CacheOblivious {
		return ErrUnknownStrategy
	}
	if o.Costs.Substitution < 0 || o.Costs.UnknownSubstitution < 0 || o.Costs.Insertion < 0 {
		return ErrNegativeCost
	}
	if o.Strategy == CacheAware && o.CacheSize <= 0 {
		return ErrBadCacheSize
	}
	if o.Strategy == CacheOblivious && o.Threshold <= 0 {
		return ErrBadThreshold
	}

	return nil
}
