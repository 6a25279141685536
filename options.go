package pixconv

// ParallelOption configures a ParallelConverter during creation.
//
// Example:
//
//	pc := pixconv.Parallel(c, pixconv.WithWorkers(8), pixconv.WithBandRows(32))
type ParallelOption func(*parallelOptions)

// parallelOptions holds optional configuration for Parallel.
type parallelOptions struct {
	workers   int
	bandRows  int
	minPixels int
}

// defaultParallelOptions returns the default parallel options.
func defaultParallelOptions() parallelOptions {
	return parallelOptions{
		workers:   0, // GOMAXPROCS
		bandRows:  0, // one band per worker
		minPixels: defaultMinPixels,
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.workers = n
	}
}

// WithBandRows sets the number of rows each task converts.
// Zero or negative splits the region evenly across workers.
func WithBandRows(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.bandRows = n
	}
}

// WithMinPixels sets the region size, in pixels, below which conversions
// run on the calling goroutine.
func WithMinPixels(n int) ParallelOption {
	return func(o *parallelOptions) {
		o.minPixels = max(n, 0)
	}
}
