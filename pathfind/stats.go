package pathfind

import "time"

// Stats summarizes one search.
type Stats struct {
	Settled  int           // cells popped with their final cost
	Pushed   int           // frontier pushes, including the start
	Stale    int           // popped entries discarded by lazy deletion
	Pruned   int           // edges dropped for an infinite, NaN or negative cost
	Bridges  int           // bridge edges available to the search
	Found    bool          // whether a path was returned
	Cost     float64       // path cost, or NoCost
	Duration time.Duration // wall time spent in Compute
	Err      error         // validation error when the config was rejected
}

// Observer receives the Stats of every search run with WithObserver.
// ObserveSearch is called synchronously on the goroutine running Compute.
type Observer interface {
	ObserveSearch(s Stats)
}

// ObserverFunc adapts an ordinary function to Observer.
type ObserverFunc func(s Stats)

// ObserveSearch calls f(s).
func (f ObserverFunc) ObserveSearch(s Stats) { f(s) }
