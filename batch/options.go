package batch

// Option configures a Transformer during creation.
//
// Example:
//
//	tr := batch.New(batch.WithWorkers(4), batch.WithChunkSize(4096))
//	defer tr.Close()
type Option func(*options)

type options struct {
	workers   int
	chunkSize int
}

// DefaultChunkSize is the number of points handed to one worker at a time.
const DefaultChunkSize = 1024

func defaultOptions() options {
	return options{
		workers:   0, // GOMAXPROCS
		chunkSize: DefaultChunkSize,
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative values use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets how many points each work item transforms.
// Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}
