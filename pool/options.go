package pool

import "go.uber.org/zap"

// Option configures a Pool at construction time. The shape mirrors the
// generic functional-option pattern used by the option package elsewhere
// in this module, monomorphized to *Pool since New already returns
// (*Pool, error) and a generic constructor would add a type parameter
// for no benefit here.
type Option func(*Pool)

// WithLogger sets the logger used for pool diagnostics, including the
// default ThunkFault handler (see WithPanicHandler). The zero value is
// zap.NewNop(), so a Pool is silent unless a logger is supplied.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPanicHandler overrides the default ThunkFault policy (log via the
// configured logger) with a caller-supplied sink. It is invoked with the
// recovered panic value and the stack trace captured at the point of the
// panic. The job counter is decremented regardless of whether a handler
// is configured — Wait can never deadlock because of a misbehaving thunk.
func WithPanicHandler(handler func(recovered any, stack []byte)) Option {
	return func(p *Pool) {
		p.panicHandler = handler
	}
}
