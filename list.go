package fslist

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/kang-sw/fslist/internal/assert"
)

// List is a fixed-capacity doubly linked list of T stored in caller-owned
// arrays: values holds the payloads and links the arena's link records,
// index-aligned 1:1.
//
// The zero List is unusable; create one with New or Init.
type List[T any, I Index] struct {
	arena  Arena[I]
	values []T
}

// New creates a List over values[:capacity] and links[:capacity].
func New[T any, I Index](capacity int, values []T, links []Link[I], opts ...Option) *List[T, I] {
	return new(List[T, I]).Init(capacity, values, links, opts...)
}

// Init initializes or resets l over values[:capacity] and links[:capacity]
// and returns l. Every value slot is reset to the zero value.
//
// Init lets a List live in static or embedded storage without any heap
// allocation:
//
//	var (
//		values [64]Task
//		links  [64]fslist.Link[uint8]
//		tasks  fslist.List[Task, uint8]
//	)
//	tasks.Init(len(values), values[:], links[:])
func (l *List[T, I]) Init(capacity int, values []T, links []Link[I], opts ...Option) *List[T, I] {
	l.arena.Init(capacity, links, opts...)
	if assert.Enabled && len(values) < capacity {
		failInit(l.arena.log, fmt.Errorf("%w: %d value slots for capacity %d", ErrBackingTooSmall, len(values), capacity), capacity)
	}
	l.values = values[:capacity]
	clear(l.values)
	return l
}

// EmplaceFront stores v at the head and returns a pointer to its slot.
func (l *List[T, I]) EmplaceFront(v T) *T {
	i := l.arena.Allocate()
	l.arena.PushFront(i)
	l.values[i] = v
	return &l.values[i]
}

// EmplaceBack stores v at the tail and returns a pointer to its slot.
func (l *List[T, I]) EmplaceBack(v T) *T {
	i := l.arena.Allocate()
	l.arena.PushBack(i)
	l.values[i] = v
	return &l.values[i]
}

// PushFront stores v at the head.
func (l *List[T, I]) PushFront(v T) { l.EmplaceFront(v) }

// PushBack stores v at the tail.
func (l *List[T, I]) PushBack(v T) { l.EmplaceBack(v) }

// Emplace stores v immediately before at and returns a cursor to it.
// at may be End, which appends.
func (l *List[T, I]) Emplace(at Cursor[T, I], v T) Cursor[T, I] {
	c := l.link("emplace", at)
	l.values[c.index] = v
	return c
}

// EmplaceFunc links a new element immediately before at and constructs it
// in place by calling init with a pointer to its zeroed slot.
func (l *List[T, I]) EmplaceFunc(at Cursor[T, I], init func(*T)) Cursor[T, I] {
	c := l.link("emplace", at)
	init(&l.values[c.index])
	return c
}

// Insert is Emplace with a copy of v.
func (l *List[T, I]) Insert(at Cursor[T, I], v T) Cursor[T, I] {
	return l.Emplace(at, v)
}

// InsertSeq inserts every element of seq before at, preserving their order.
// It returns a cursor to the last inserted element, or at itself when seq
// yields nothing.
func (l *List[T, I]) InsertSeq(at Cursor[T, I], seq iter.Seq[T]) Cursor[T, I] {
	ret := at
	for v := range seq {
		ret = l.Emplace(at, v)
	}
	return ret
}

// InsertSlice inserts vs before at. See InsertSeq.
func (l *List[T, I]) InsertSlice(at Cursor[T, I], vs []T) Cursor[T, I] {
	return l.InsertSeq(at, slices.Values(vs))
}

// Erase removes the element at and returns a cursor to its successor.
// Cursors to the erased element are invalidated.
func (l *List[T, I]) Erase(at Cursor[T, I]) Cursor[T, I] {
	l.checkOwner("erase", at)
	l.arena.checkLive("erase", at.index)
	next := l.arena.links[at.index].next
	l.release(at.index)
	return Cursor[T, I]{list: l, index: next}
}

// PopFront removes the first element.
func (l *List[T, I]) PopFront() {
	l.checkNotEmpty("pop_front")
	l.release(l.arena.head)
}

// PopBack removes the last element.
func (l *List[T, I]) PopBack() {
	l.checkNotEmpty("pop_back")
	l.release(l.arena.tail)
}

// Front returns a pointer to the first element.
func (l *List[T, I]) Front() *T {
	l.checkNotEmpty("front")
	return &l.values[l.arena.head]
}

// Back returns a pointer to the last element.
func (l *List[T, I]) Back() *T {
	l.checkNotEmpty("back")
	return &l.values[l.arena.tail]
}

// Begin returns a cursor to the first element, or End when empty.
func (l *List[T, I]) Begin() Cursor[T, I] {
	return Cursor[T, I]{list: l, index: l.arena.head}
}

// End returns the past-the-end cursor.
func (l *List[T, I]) End() Cursor[T, I] {
	return Cursor[T, I]{list: l, index: Sentinel[I]()}
}

// CursorAt returns a cursor to the live index i.
func (l *List[T, I]) CursorAt(i I) Cursor[T, I] {
	l.arena.checkLive("cursor_at", i)
	return Cursor[T, I]{list: l, index: i}
}

// At returns a pointer to the element stored at index i, or nil if i is not live.
func (l *List[T, I]) At(i I) *T {
	if !l.arena.IsLive(i) {
		return nil
	}
	return &l.values[i]
}

// Len returns the number of elements.
func (l *List[T, I]) Len() int { return l.arena.Len() }

// Cap returns the fixed capacity.
func (l *List[T, I]) Cap() int { return l.arena.Cap() }

// Empty reports whether the list holds no elements.
func (l *List[T, I]) Empty() bool { return l.arena.Empty() }

// Arena exposes the index layer, e.g. for Validate.
func (l *List[T, I]) Arena() *Arena[I] { return &l.arena }

// Clear removes every element, resetting their slots to the zero value.
//
// Indices return to the idle queue in list order, so the order in which
// they are handed out afterwards generally differs from a fresh Init.
func (l *List[T, I]) Clear() {
	none := Sentinel[I]()
	n := 0
	for i := l.arena.head; i != none; {
		next := l.arena.links[i].next
		l.release(i)
		i = next
		n++
	}
	l.arena.log.LogClear(context.Background(), n)
}

// All yields the elements front to back. Erasing the element just yielded
// is allowed; any other structural change during iteration is not.
func (l *List[T, I]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		none := Sentinel[I]()
		for i := l.arena.head; i != none; {
			next := l.arena.links[i].next
			if !yield(l.values[i]) {
				return
			}
			i = next
		}
	}
}

// Backward yields the elements back to front, with the same rules as All.
func (l *List[T, I]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		none := Sentinel[I]()
		for i := l.arena.tail; i != none; {
			prev := l.arena.links[i].prev
			if !yield(l.values[i]) {
				return
			}
			i = prev
		}
	}
}

// Indexed yields each element's arena index and a pointer to its slot,
// front to back.
func (l *List[T, I]) Indexed() iter.Seq2[I, *T] {
	return func(yield func(I, *T) bool) {
		none := Sentinel[I]()
		for i := l.arena.head; i != none; {
			next := l.arena.links[i].next
			if !yield(i, &l.values[i]) {
				return
			}
			i = next
		}
	}
}

// link allocates an index, splices it before at and returns its cursor.
func (l *List[T, I]) link(op string, at Cursor[T, I]) Cursor[T, I] {
	l.checkOwner(op, at)
	if assert.Enabled && at.index != Sentinel[I]() {
		l.arena.checkLinked(op, at.index)
	}
	i := l.arena.Allocate()
	l.arena.InsertBefore(i, at.index)
	return Cursor[T, I]{list: l, index: i}
}

func (l *List[T, I]) release(i I) {
	var zero T
	l.arena.checkLive("release", i)
	l.values[i] = zero
	l.arena.Release(i)
}

func (l *List[T, I]) checkOwner(op string, c Cursor[T, I]) {
	if assert.Enabled && c.list != l {
		l.arena.fail(op, ErrForeignCursor, c.index)
	}
}

func (l *List[T, I]) checkNotEmpty(op string) {
	if assert.Enabled && l.arena.size == 0 {
		l.arena.fail(op, ErrEmpty, Sentinel[I]())
	}
}
