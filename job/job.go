// Package job runs route searches off the caller's goroutine.
//
// Start launches one search and hands back a Job that can be polled each
// frame or tick without blocking, or waited on with a context. RunAll runs a
// batch of searches with bounded parallelism.
//
// Cancelling a context stops the caller from waiting; it never interrupts a
// search that is already running. pathfind.Compute has no cancellation
// points and always runs to completion.
package job

import (
	"context"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/terrapath/pathfind"
)

// Job is one search running in its own goroutine.
type Job struct {
	cfg   pathfind.Config
	done  chan struct{}
	path  pathfind.Path
	stats pathfind.Stats
}

// Start launches pathfind.ComputeStats(cfg) and returns immediately.
func Start(cfg pathfind.Config) *Job {
	j := &Job{cfg: cfg, done: make(chan struct{})}
	go func() {
		defer close(j.done)
		j.path, j.stats = pathfind.ComputeStats(cfg)
	}()
	return j
}

// Config returns the configuration the job was started with.
func (j *Job) Config() pathfind.Config { return j.cfg }

// Done is closed once the search has finished.
func (j *Job) Done() <-chan struct{} { return j.done }

// Poll returns the result and true if the search has finished, or the
// absent path and false without blocking otherwise.
func (j *Job) Poll() (pathfind.Path, bool) {
	select {
	case <-j.done:
		return j.path, true
	default:
		return pathfind.NotFound(), false
	}
}

// Stats returns the search statistics once the job has finished.
func (j *Job) Stats() (pathfind.Stats, bool) {
	select {
	case <-j.done:
		return j.stats, true
	default:
		return pathfind.Stats{}, false
	}
}

// Wait blocks until the search finishes or ctx is done, whichever comes
// first. On ctx expiry it returns the absent path and ctx.Err(); the search
// keeps running and a later Wait or Poll still sees its result.
func (j *Job) Wait(ctx context.Context) (pathfind.Path, error) {
	select {
	case <-j.done:
		return j.path, nil
	case <-ctx.Done():
		return pathfind.NotFound(), ctx.Err()
	}
}

// RunAll computes every configuration in cfgs with at most limit searches in
// flight (limit <= 0 means unbounded) and returns the paths in input order.
// Once ctx is done no further searches start; RunAll then returns ctx.Err()
// and the absent path for every search that never ran.
func RunAll(ctx context.Context, cfgs []pathfind.Config, limit int) ([]pathfind.Path, error) {
	paths := make([]pathfind.Path, len(cfgs))
	for i := range paths {
		paths[i] = pathfind.NotFound()
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	klog.V(2).InfoS("Starting search batch", "searches", len(cfgs), "limit", limit)
	for i, cfg := range cfgs {
		if gctx.Err() != nil {
			break
		}
		i, cfg := i, cfg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			paths[i] = pathfind.Compute(cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return paths, err
	}
	return paths, ctx.Err()
}
