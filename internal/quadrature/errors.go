package quadrature

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkerFault matches every *WorkerError.
	ErrWorkerFault = errors.New("worker fault")
	// ErrWorkerPanic means the integrand panicked inside a worker.
	ErrWorkerPanic = errors.New("integrand panicked")
	// ErrNonFinite means a strip produced NaN or an infinity.
	ErrNonFinite = errors.New("non-finite partial integral")
)

// WorkerError reports a fault in a single strip. It fails the whole pass.
type WorkerError struct {
	Strip int
	Err   error // ErrWorkerPanic or ErrNonFinite
	Panic any
	Value float64
}

func (e *WorkerError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("strip %d: %v: %v", e.Strip, e.Err, e.Panic)
	}
	return fmt.Sprintf("strip %d: %v: %v", e.Strip, e.Err, e.Value)
}

// Unwrap exposes both ErrWorkerFault and the specific cause to errors.Is.
func (e *WorkerError) Unwrap() []error {
	return []error{ErrWorkerFault, e.Err}
}
