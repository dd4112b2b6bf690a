package table

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// OutOfMemoryError reports that a column, Data envelope, or growth
// could not be allocated. Per spec.md §7 this is fatal by default:
// callers are expected to let it propagate into a process-level abort
// rather than retry, since there is no backpressure at this layer.
type OutOfMemoryError struct {
	Op string
}

func (e OutOfMemoryError) Error() string {
	return fmt.Sprintf("table: out of memory during %s", e.Op)
}

// InternalError reports a violated invariant: a nil collaborator, a
// row index out of range, a merge into a non-superset type, a delete
// on an empty table, or mismatched column state. Per spec.md §7 this
// indicates a bug in the caller (or a prior corrupting operation) and
// is never recovered locally.
type InternalError struct {
	Op     string
	Reason string
}

func (e InternalError) Error() string {
	return fmt.Sprintf("table: internal error during %s: %s", e.Op, e.Reason)
}

// fail panics with a traced InternalError. There is no suspension
// point and no retry at this layer (spec.md §5, §7): a violated
// invariant can only mean the caller corrupted state before calling
// in, so the only correct response is to stop immediately.
func fail(op, reason string) {
	panic(bark.AddTrace(InternalError{Op: op, Reason: reason}))
}

// failOOM panics with a traced OutOfMemoryError.
func failOOM(op string) {
	panic(bark.AddTrace(OutOfMemoryError{Op: op}))
}
