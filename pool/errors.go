package pool

import "errors"

var (
	// ErrInvalidCapacity indicates New was called with a non-positive capacity.
	ErrInvalidCapacity = errors.New("pool: capacity must be at least 1")
	// ErrClosed indicates Schedule was called after Close had drained the
	// pool and marked it closed. Scheduling after Close is a caller bug; this error
	// exists so that bug fails loudly instead of racing on a closed worker
	// channel.
	ErrClosed = errors.New("pool: schedule called on a closed pool")
)
