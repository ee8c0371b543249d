package fslist

import (
	"github.com/kang-sw/fslist/internal/assert"
)

// Cursor is a position in a List: a list reference paired with an index.
//
// A cursor owns nothing. It stays valid across operations on other elements
// and is invalidated only when the element it points at is erased. The end
// cursor carries the sentinel index.
//
// Cursors are comparable; two cursors are equal iff they refer to the same
// list and the same index.
type Cursor[T any, I Index] struct {
	list  *List[T, I]
	index I
}

// Index returns the arena index the cursor points at, or Sentinel for End.
func (c Cursor[T, I]) Index() I { return c.index }

// IsEnd reports whether c is the end cursor.
func (c Cursor[T, I]) IsEnd() bool { return c.index == Sentinel[I]() }

// Valid reports whether c points at a live element.
func (c Cursor[T, I]) Valid() bool {
	return c.list != nil && c.list.arena.IsLive(c.index)
}

// Equal reports whether c and o refer to the same position of the same list.
func (c Cursor[T, I]) Equal(o Cursor[T, I]) bool {
	return c.list == o.list && c.index == o.index
}

// Next returns the cursor after c. Stepping past End is a contract violation.
func (c Cursor[T, I]) Next() Cursor[T, I] {
	c.mustLive("cursor_next")
	c.index = c.list.arena.links[c.index].next
	return c
}

// Prev returns the cursor before c. From End it moves to the last element.
// Stepping back from Begin is a contract violation.
func (c Cursor[T, I]) Prev() Cursor[T, I] {
	if assert.Enabled {
		if c.list == nil {
			failDetached("cursor_prev")
		}
		if c.index == c.list.arena.head {
			c.list.arena.fail("cursor_prev", ErrBeginCursor, c.index)
		}
	}
	if c.index == Sentinel[I]() {
		c.index = c.list.arena.tail
		return c
	}
	c.mustLive("cursor_prev")
	c.index = c.list.arena.links[c.index].prev
	return c
}

// Value returns a copy of the element at c.
func (c Cursor[T, I]) Value() T {
	c.mustLive("cursor_value")
	return c.list.values[c.index]
}

// Ptr returns a pointer to the element at c. The pointer stays valid until
// the element is erased.
func (c Cursor[T, I]) Ptr() *T {
	c.mustLive("cursor_ptr")
	return &c.list.values[c.index]
}

// Set overwrites the element at c.
func (c Cursor[T, I]) Set(v T) {
	c.mustLive("cursor_set")
	c.list.values[c.index] = v
}

func (c Cursor[T, I]) mustLive(op string) {
	if !assert.Enabled {
		return
	}
	if c.list == nil {
		failDetached(op)
	}
	if c.index == Sentinel[I]() {
		c.list.arena.fail(op, ErrEndCursor, c.index)
	}
	c.list.arena.checkLive(op, c.index)
}

// failDetached reports use of a zero Cursor, which belongs to no list.
func failDetached(op string) {
	assert.Fail(nil, &ContractError{Op: op, cause: ErrForeignCursor})
}
