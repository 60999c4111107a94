package nw

import "github.com/li-maxime/Needleman-Wunsch-algorithm/base"

// Distance computes the Needleman-Wunsch edit distance between sequences a
// and b using the strategy selected in opts. A nil opts means
// DefaultOptions(); a nil opts.Alphabet means base.DNA().
//
// The sequences are borrowed read-only for the duration of the call and
// must not be mutated concurrently. Orientation — the longer sequence
// becomes X, ties keep a — happens inside the call, so
// Distance(a, b, o) == Distance(b, a, o) always.
//
// Degenerate inputs are not errors: an empty side costs the pure insertion
// cost of the other side, two empty sides cost 0. Invalid symbols are
// reported to the alphabet's notifier and skipped at zero cost.
//
// Returns a non-negative distance, or one of ErrUnknownStrategy,
// ErrNegativeCost, ErrBadCacheSize, ErrBadThreshold.
func Distance(a, b []byte, opts *Options) (int64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Alphabet == nil {
		o.Alphabet = base.DNA()
	}
	if err := o.validate(); err != nil {
		return 0, err
	}

	p := orient(a, b, o.Alphabet, o.Costs)

	switch o.Strategy {
	case Memoized:
		return p.memoized(), nil
	case Iterative:
		return p.iterative(), nil
	case CacheAware:
		return p.cacheAware(blockWidth(o.CacheSize)), nil
	case CacheOblivious:
		return p.cacheOblivious(o.Threshold), nil
	default:
		// validate has already rejected anything else
		return 0, ErrUnknownStrategy
	}
}
