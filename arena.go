package fslist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kang-sw/fslist/internal/assert"
	"github.com/kang-sw/fslist/internal/conv"
)

// Index is the set of unsigned types usable as node indices.
//
// A narrower type saves memory per link record at the cost of a smaller
// maximum capacity: an arena indexed by uint8 holds at most 255 nodes.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Sentinel returns the reserved "no node" value of I, its maximum value.
// It marks list ends and free slots and is never a valid node index.
func Sentinel[I Index]() I {
	return ^I(0)
}

// Link is the per-slot link record of an Arena.
//
// Callers allocate a []Link[I] with at least capacity elements and hand it to
// NewArena or New; the fields are managed exclusively by the arena.
type Link[I Index] struct {
	next I
	prev I
	// self equals the slot's own index while live and Sentinel while free.
	self I
}

// Arena partitions the index space [0, capacity) of a caller-owned link array
// into an ordered, doubly linked active list and a FIFO idle queue.
//
// Arena never allocates. All operations are O(1) except the diagnostics in
// validate.go. It is not safe for concurrent use.
//
// Violated preconditions panic with a *ContractError; see package docs.
type Arena[I Index] struct {
	links    []Link[I]
	capacity I
	size     I

	head I
	tail I

	idleFront I
	idleBack  I

	log *Logger
}

// NewArena creates an Arena managing links[:capacity].
func NewArena[I Index](capacity int, links []Link[I], opts ...Option) *Arena[I] {
	return new(Arena[I]).Init(capacity, links, opts...)
}

// Init initializes or resets a to manage links[:capacity] with every index
// idle, chained in index order. It returns a.
//
// capacity must be positive and at most Sentinel[I](); the highest valid
// index is then Sentinel[I]()-1.
func (a *Arena[I]) Init(capacity int, links []Link[I], opts ...Option) *Arena[I] {
	o := applyOptions(opts)
	a.log = o.logger.WithName(o.name).WithCapacity(capacity)

	none := Sentinel[I]()
	c, err := conv.IntTo[I](capacity)
	if assert.Enabled {
		if err == nil && capacity < 1 {
			err = fmt.Errorf("capacity %d outside [1, %d]", capacity, uint64(none))
		}
		if err != nil {
			failInit(a.log, fmt.Errorf("%w: %w", ErrInvalidCapacity, err), capacity)
		}
		if len(links) < capacity {
			failInit(a.log, fmt.Errorf("%w: %d link records for capacity %d", ErrBackingTooSmall, len(links), capacity), capacity)
		}
	}

	a.links = links[:capacity]
	a.capacity = c
	a.size = 0
	a.head = none
	a.tail = none
	a.idleFront = 0
	a.idleBack = c - 1

	for i := range a.links {
		a.links[i] = Link[I]{
			next: I(i) + 1,
			prev: I(i) - 1,
			self: none,
		}
	}
	a.links[0].prev = none
	a.links[c-1].next = none

	a.log.LogInit(context.Background(), conv.BitsOf[I]())
	return a
}

// Allocate pops the front of the idle queue, marks it live and returns it.
// The returned index is live but not yet part of the active list; splice it
// with PushFront, PushBack or InsertBefore.
//
// Allocating from a full arena is a contract violation.
func (a *Arena[I]) Allocate() I {
	if assert.Enabled && a.size >= a.capacity {
		a.fail("allocate", ErrCapacityExhausted, Sentinel[I]())
	}

	none := Sentinel[I]()
	i := a.idleFront
	n := &a.links[i]

	a.idleFront = n.next
	if a.idleFront == none {
		a.idleBack = none
	} else {
		a.links[a.idleFront].prev = none
	}

	n.self = i
	n.next = none
	n.prev = none
	a.size++
	return i
}

// Release unsplices the live index i from the active list and appends it to
// the back of the idle queue.
func (a *Arena[I]) Release(i I) {
	a.checkLive("release", i)

	none := Sentinel[I]()
	n := &a.links[i]

	if n.next != none {
		a.links[n.next].prev = n.prev
	} else if a.tail == i {
		a.tail = n.prev
	}

	if n.prev != none {
		a.links[n.prev].next = n.next
	} else if a.head == i {
		a.head = n.next
	}

	if a.idleBack != none {
		a.links[a.idleBack].next = i
	} else {
		a.idleFront = i
	}
	n.prev = a.idleBack
	n.next = none
	n.self = none
	a.idleBack = i
	a.size--
}

// PushFront links a freshly allocated index at the head of the active list.
func (a *Arena[I]) PushFront(i I) {
	a.checkUnlinked("push_front", i)

	n := &a.links[i]
	if a.head != Sentinel[I]() {
		a.links[a.head].prev = i
	} else {
		a.tail = i
	}

	n.prev = Sentinel[I]()
	n.next = a.head
	a.head = i
}

// PushBack links a freshly allocated index at the tail of the active list.
func (a *Arena[I]) PushBack(i I) {
	a.checkUnlinked("push_back", i)

	n := &a.links[i]
	if a.tail != Sentinel[I]() {
		a.links[a.tail].next = i
	} else {
		a.head = i
	}

	n.next = Sentinel[I]()
	n.prev = a.tail
	a.tail = i
}

// InsertBefore links a freshly allocated index immediately before at.
// at is either a live index or Sentinel, which appends at the tail.
func (a *Arena[I]) InsertBefore(i, at I) {
	switch at {
	case Sentinel[I]():
		a.PushBack(i)
		return
	case a.head:
		a.PushFront(i)
		return
	}

	a.checkUnlinked("insert_before", i)
	a.checkLinked("insert_before", at)

	m := &a.links[at]
	n := &a.links[i]
	p := m.prev

	a.links[p].next = i
	n.prev = p
	n.next = at
	m.prev = i
}

// Next returns the successor of the live index i, or Sentinel at the tail.
func (a *Arena[I]) Next(i I) I {
	a.checkLive("next", i)
	return a.links[i].next
}

// Prev returns the predecessor of the live index i, or Sentinel at the head.
func (a *Arena[I]) Prev(i I) I {
	a.checkLive("prev", i)
	return a.links[i].prev
}

// IsLive reports whether i is currently allocated. An index is live from
// Allocate until Release, including the window before it is spliced into
// the active list.
func (a *Arena[I]) IsLive(i I) bool {
	return i != Sentinel[I]() && i < a.capacity && a.links[i].self == i
}

// Head returns the first index of the active list, or Sentinel when empty.
func (a *Arena[I]) Head() I { return a.head }

// Tail returns the last index of the active list, or Sentinel when empty.
func (a *Arena[I]) Tail() I { return a.tail }

// IdleFront returns the index the next Allocate will hand out, or Sentinel
// when the arena is full.
func (a *Arena[I]) IdleFront() I { return a.idleFront }

// IdleBack returns the most recently released index still idle, or Sentinel
// when the arena is full.
func (a *Arena[I]) IdleBack() I { return a.idleBack }

// Len returns the number of live indices.
func (a *Arena[I]) Len() int { return int(a.size) }

// Cap returns the fixed capacity.
func (a *Arena[I]) Cap() int { return int(a.capacity) }

// Empty reports whether no index is live.
func (a *Arena[I]) Empty() bool { return a.size == 0 }

func (a *Arena[I]) checkLive(op string, i I) {
	if assert.Enabled && !a.IsLive(i) {
		a.fail(op, ErrInvalidIndex, i)
	}
}

// checkLinked requires i to be a member of the active list.
func (a *Arena[I]) checkLinked(op string, i I) {
	if !assert.Enabled {
		return
	}
	a.checkLive(op, i)
	if a.links[i].prev == Sentinel[I]() && a.head != i {
		a.fail(op, ErrInvalidIndex, i)
	}
}

// checkUnlinked requires i to be live and not yet spliced into the active list.
func (a *Arena[I]) checkUnlinked(op string, i I) {
	if !assert.Enabled {
		return
	}
	a.checkLive(op, i)
	n := &a.links[i]
	if n.next != Sentinel[I]() || n.prev != Sentinel[I]() || a.head == i {
		a.fail(op, ErrLinked, i)
	}
}

func (a *Arena[I]) fail(op string, cause error, i I) {
	err := &ContractError{
		Op:       op,
		Index:    uint64(i),
		Size:     int(a.size),
		Capacity: int(a.capacity),
		cause:    cause,
	}
	assert.Fail(a.slog(), err, "op", op, "index", uint64(i), "size", int(a.size))
}

func (a *Arena[I]) slog() *slog.Logger {
	if a.log == nil {
		return nil
	}
	return a.log.Logger
}

func failInit(l *Logger, cause error, capacity int) {
	err := &ContractError{
		Op:       "init",
		Capacity: capacity,
		cause:    cause,
	}
	assert.Fail(l.Logger, err, "op", "init")
}
