package newton

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var ErrWorkerPanic = errors.New("worker panicked")

// catchPanic turns a panic in the calling goroutine into an error on err,
// with the stack attached.
func catchPanic(worker int, err *error) {
	if v := recover(); v != nil {
		cause, ok := v.(error)
		if !ok {
			cause = fmt.Errorf("panic: %v", v)
		}
		*err = fmt.Errorf("%w: worker %d: %w\n%v", ErrWorkerPanic, worker, cause, string(debug.Stack()))
	}
}
