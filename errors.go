package fslist

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExhausted is raised when a node is requested while every
	// index is already live.
	ErrCapacityExhausted = errors.New("capacity exhausted")

	// ErrInvalidIndex is raised when an operation names a free or out-of-range index.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrEmpty is raised by front/back/pop access on an empty list.
	ErrEmpty = errors.New("list is empty")

	// ErrEndCursor is raised when the end cursor is dereferenced or stepped past.
	ErrEndCursor = errors.New("end cursor")

	// ErrBeginCursor is raised when a cursor is stepped back from the first element.
	ErrBeginCursor = errors.New("cursor already at begin")

	// ErrForeignCursor is raised when a cursor is used with a list it was not created from.
	ErrForeignCursor = errors.New("cursor belongs to another list")

	// ErrLinked is raised when an index is spliced into the active list twice.
	ErrLinked = errors.New("index already linked")

	// ErrInvalidCapacity is raised at construction for a capacity that is not
	// positive or does not fit the index type below its sentinel.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrBackingTooSmall is raised at construction when a backing array has
	// fewer slots than the requested capacity.
	ErrBackingTooSmall = errors.New("backing array too small")

	// ErrCorrupted is returned by Validate when the arena invariants do not hold.
	ErrCorrupted = errors.New("arena corrupted")
)

// ContractError describes a violated precondition.
//
// It is the panic value raised by every checked operation. The violated
// condition (one of the Err* sentinels) can be tested with errors.Is.
type ContractError struct {
	Op       string
	Index    uint64
	Size     int
	Capacity int
	cause    error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("fslist: %s: %v (index=%d size=%d capacity=%d)", e.Op, e.cause, e.Index, e.Size, e.Capacity)
}

func (e *ContractError) Unwrap() error { return e.cause }

// AsContractError reports whether a value recovered from a panic is a
// contract violation raised by this package.
//
//	defer func() {
//		if ce, ok := fslist.AsContractError(recover()); ok { ... }
//	}()
func AsContractError(recovered any) (*ContractError, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var ce *ContractError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// CorruptionError is returned by Validate. It names the first broken invariant.
type CorruptionError struct {
	Reason string
	Index  uint64
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%v: %s (index=%d)", ErrCorrupted, e.Reason, e.Index)
}

func (e *CorruptionError) Unwrap() error { return ErrCorrupted }
