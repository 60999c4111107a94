package nw_test

import (
	"fmt"

	"github.com/li-maxime/Needleman-Wunsch-algorithm/nw"
)

// ExampleDistance aligns two short genetic sequences with the default
// (iterative, linear-space) strategy and the classic cost model:
// substitution 1, wildcard substitution 1, insertion 2.
func ExampleDistance() {
	dist, err := nw.Distance([]byte("GATTACA"), []byte("GCATGCN"), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("distance =", dist)
	// Output:
	// distance = 4
}

// ExampleDistance_strategies computes one distance with all four evaluation
// strategies: same value, different time/memory trade-offs.
func ExampleDistance_strategies() {
	a := []byte("ACGTACGTNACGT")
	b := []byte("ACGTCGTAACG")

	opts := nw.DefaultOptions()
	for _, s := range []nw.Strategy{nw.Memoized, nw.Iterative, nw.CacheAware, nw.CacheOblivious} {
		opts.Strategy = s
		dist, err := nw.Distance(a, b, &opts)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s: %d\n", s, dist)
	}
	// Output:
	// memoized: 5
	// iterative: 5
	// cache-aware: 5
	// cache-oblivious: 5
}
