// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/boukman/normalize"
	"github.com/katalvlaran/boukman/pathfinder"
	"github.com/katalvlaran/boukman/shortest"
	"github.com/panjf2000/ants/v2"
	log "github.com/sirupsen/logrus"
)

// ErrNilAdjacency indicates that Run received a nil adjacency.
var ErrNilAdjacency = errors.New("batch: adjacency is nil")

// Query is one source → target index pair.
type Query struct {
	Source int `yaml:"source"`
	Target int `yaml:"target"`
}

// Result carries the outcome of one Query. Err is set instead of Path when
// the query failed or was cancelled.
type Result struct {
	Query
	Path   []int         `yaml:"path,omitempty"`
	Weight float64       `yaml:"weight"`
	Took   time.Duration `yaml:"-"`
	Err    error         `yaml:"-"`
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	alg     shortest.Algorithm
	engine  shortest.Engine
	logger  log.FieldLogger
}

// WithWorkers bounds the pool size. Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("batch: WithWorkers(%d): must be > 0", n))
	}

	return func(o *options) { o.workers = n }
}

// WithAlgorithm selects the algorithm for every query.
func WithAlgorithm(a shortest.Algorithm) Option {
	if err := a.Validate(); err != nil {
		panic(fmt.Sprintf("batch: WithAlgorithm: %v", err))
	}

	return func(o *options) { o.alg = a }
}

// WithEngine replaces the native engine. Panics on nil.
func WithEngine(e shortest.Engine) Option {
	if e == nil {
		panic("batch: WithEngine(nil)")
	}

	return func(o *options) { o.engine = e }
}

// WithLogger routes per-query logging to l.
func WithLogger(l log.FieldLogger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// Run resolves queries concurrently on a bounded ants pool and returns one
// Result per query, in query order.
//
// Every query searches its own clone of adj, so no worker observes another's
// state. Once ctx is done, queries not yet started report ctx.Err().
// The returned error is reserved for setup failures (nil adj, pool creation).
func Run(ctx context.Context, adj *normalize.Adjacency, queries []Query, opts ...Option) ([]Result, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	cfg := options{
		workers: runtime.GOMAXPROCS(0),
		alg:     pathfinder.DefaultAlgorithm,
		engine:  shortest.New(),
		logger:  log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]Result, len(queries))
	if len(queries) == 0 {
		return results, nil
	}

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(cfg.workers, func(arg interface{}) {
		defer wg.Done()
		i := arg.(int)
		results[i] = resolve(ctx, adj, queries[i], cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("batch: NewPoolWithFunc failed: %w", err)
	}
	defer pool.Release()

	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Query: q, Err: err}
			continue
		}
		wg.Add(1)
		if err := pool.Invoke(i); err != nil {
			wg.Done()
			results[i] = Result{Query: q, Err: fmt.Errorf("batch: submit query %d: %w", i, err)}
		}
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	cfg.logger.WithFields(log.Fields{
		"queries":   len(queries),
		"failed":    failed,
		"workers":   cfg.workers,
		"algorithm": cfg.alg.String(),
	}).Info("batch finished")

	return results, nil
}

// resolve runs one query on a private clone of adj.
func resolve(ctx context.Context, adj *normalize.Adjacency, q Query, cfg options) Result {
	res := Result{Query: q}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	local := adj.Clone()
	path, err := pathfinder.FindPath(local, q.Source, q.Target,
		pathfinder.WithAlgorithm(cfg.alg), pathfinder.WithEngine(cfg.engine))
	res.Took = time.Since(start)

	entry := cfg.logger.WithFields(log.Fields{"source": q.Source, "target": q.Target})
	if err != nil {
		entry.Debugf("query failed: %v", err)
		res.Err = err
		return res
	}
	res.Path = path
	if res.Weight, err = shortest.PathWeight(local.Matrix(), path); err != nil {
		res.Err = err
		return res
	}
	entry.WithField("hops", len(path)-1).Debug("query resolved")

	return res
}
