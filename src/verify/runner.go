package verify

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/badgemaker/src/identity"
)

// Result is the outcome of one differential comparison.
type Result struct {
	Case   Case
	ID     identity.ID
	Got    string // local engine output
	Want   string // cleaned reference output
	Cached bool
	Err    error
}

// Match reports whether both renderers agreed.
func (r Result) Match() bool {
	return r.Err == nil && r.Got == r.Want
}

// Offset returns the byte offset of the first difference, or -1 on a match.
func (r Result) Offset() int {
	n := min(len(r.Got), len(r.Want))
	for i := 0; i < n; i++ {
		if r.Got[i] != r.Want[i] {
			return i
		}
	}
	if len(r.Got) != len(r.Want) {
		return n
	}
	return -1
}

// Stats summarizes a run.
type Stats struct {
	Total      int
	Matched    int
	Mismatched int
	Errors     int
}

// Summarize counts results by outcome.
func Summarize(results []Result) Stats {
	s := Stats{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Errors++
		case r.Match():
			s.Matched++
		default:
			s.Mismatched++
		}
	}
	return s
}

// Runner compares the local engine with an oracle over a case list.
type Runner struct {
	Oracle      Oracle
	Cache       *Cache
	Concurrency int
	Verbose     bool

	CacheHits   atomic.Int64
	CacheMisses atomic.Int64
}

// Run checks every case and returns results in input order. Per-case
// failures are recorded in the result; the returned error is only set when
// ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, len(cases))

	limit := r.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU() * 2
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.check(ctx, c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) check(ctx context.Context, c Case) Result {
	res := Result{Case: c}

	b, err := c.Build()
	if err != nil {
		res.Err = fmt.Errorf("building %s: %w", c, err)
		return res
	}
	res.ID = b.ID()
	res.Got = b.SVG()

	key := c.Key()
	if want, ok := r.Cache.Get(key); ok {
		r.CacheHits.Add(1)
		res.Want = want
		res.Cached = true
		return res
	}
	r.CacheMisses.Add(1)

	raw, err := r.Oracle.Render(ctx, c)
	if err != nil {
		res.Err = fmt.Errorf("oracle %s: %w", c, err)
		return res
	}
	res.Want = Clean(raw, b.ID())

	if err := r.Cache.Put(key, c, res.Want); err != nil && r.Verbose {
		// Non-fatal: the comparison itself succeeded.
		fmt.Fprintf(os.Stderr, "verify: cache write failed: %v\n", err)
	}
	return res
}
