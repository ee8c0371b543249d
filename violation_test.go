//go:build !fslist_release

package fslist

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireViolation runs fn and requires it to panic with a contract
// violation caused by want.
func requireViolation(t *testing.T, want error, fn func()) *ContractError {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected a contract violation")
	ce, ok := AsContractError(recovered)
	require.True(t, ok, "panic value %v is not a contract violation", recovered)
	require.ErrorIs(t, ce, want)
	return ce
}

func TestViolation_Capacity(t *testing.T) {
	l := newTestList(t, 4)
	for _, v := range []int{10, 20, 30, 40} {
		l.EmplaceBack(v)
	}

	ce := requireViolation(t, ErrCapacityExhausted, func() { l.EmplaceBack(50) })
	assert.Equal(t, "allocate", ce.Op)
	assert.Equal(t, 4, ce.Size)
	assert.Equal(t, 4, ce.Capacity)

	requireViolation(t, ErrCapacityExhausted, func() { l.Emplace(l.Begin(), 0) })
	requireViolation(t, ErrCapacityExhausted, func() { l.PushFront(0) })

	// A rejected insert leaves the list untouched.
	assert.Equal(t, 4, l.Len())
	requireValid(t, l)
}

func TestViolation_Empty(t *testing.T) {
	l := newTestList(t, 4)

	for name, fn := range map[string]func(){
		"pop_front": l.PopFront,
		"pop_back":  l.PopBack,
		"front":     func() { l.Front() },
		"back":      func() { l.Back() },
	} {
		t.Run(name, func(t *testing.T) {
			ce := requireViolation(t, ErrEmpty, fn)
			assert.Equal(t, name, ce.Op)
		})
	}
}

func TestViolation_Cursor(t *testing.T) {
	t.Run("dereference end", func(t *testing.T) {
		l := newTestList(t, 2)
		l.PushBack(1)
		requireViolation(t, ErrEndCursor, func() { l.End().Value() })
		requireViolation(t, ErrEndCursor, func() { l.End().Ptr() })
		requireViolation(t, ErrEndCursor, func() { l.End().Set(1) })
		requireViolation(t, ErrEndCursor, func() { l.End().Next() })
	})

	t.Run("step back from begin", func(t *testing.T) {
		l := newTestList(t, 2)
		requireViolation(t, ErrBeginCursor, func() { l.End().Prev() })

		l.PushBack(1)
		requireViolation(t, ErrBeginCursor, func() { l.Begin().Prev() })
	})

	t.Run("erased cursor", func(t *testing.T) {
		l := newTestList(t, 2)
		l.PushBack(1)
		c := l.Begin()
		l.Erase(c)

		requireViolation(t, ErrInvalidIndex, func() { c.Value() })
		requireViolation(t, ErrInvalidIndex, func() { l.Erase(c) })
		requireViolation(t, ErrInvalidIndex, func() { l.Insert(c, 2) })
		assert.Equal(t, 0, l.Len(), "failed insert must not leak an index")
		requireValid(t, l)
	})

	t.Run("erase end", func(t *testing.T) {
		l := newTestList(t, 2)
		requireViolation(t, ErrInvalidIndex, func() { l.Erase(l.End()) })
	})

	t.Run("foreign cursor", func(t *testing.T) {
		l1, l2 := newTestList(t, 2), newTestList(t, 2)
		l2.PushBack(1)
		requireViolation(t, ErrForeignCursor, func() { l1.Insert(l2.Begin(), 1) })
		requireViolation(t, ErrForeignCursor, func() { l1.Erase(l2.Begin()) })
		assert.Equal(t, 0, l1.Len())
	})

	t.Run("zero cursor", func(t *testing.T) {
		var c Cursor[int, uint8]
		requireViolation(t, ErrForeignCursor, func() { c.Value() })
		requireViolation(t, ErrForeignCursor, func() { c.Prev() })
	})

	t.Run("cursor at free index", func(t *testing.T) {
		l := newTestList(t, 2)
		requireViolation(t, ErrInvalidIndex, func() { l.CursorAt(0) })
	})
}

func TestViolation_Arena(t *testing.T) {
	t.Run("release free index", func(t *testing.T) {
		a := newTestArena(t, 2)
		requireViolation(t, ErrInvalidIndex, func() { a.Release(0) })
		requireViolation(t, ErrInvalidIndex, func() { a.Release(Sentinel[uint8]()) })
		requireViolation(t, ErrInvalidIndex, func() { a.Release(7) })
	})

	t.Run("double release", func(t *testing.T) {
		a := newTestArena(t, 2)
		i := a.Allocate()
		a.PushBack(i)
		a.Release(i)
		requireViolation(t, ErrInvalidIndex, func() { a.Release(i) })
		require.NoError(t, a.Validate())
	})

	t.Run("link twice", func(t *testing.T) {
		a := newTestArena(t, 3)
		i := a.Allocate()
		a.PushBack(i)
		requireViolation(t, ErrLinked, func() { a.PushBack(i) })
		requireViolation(t, ErrLinked, func() { a.PushFront(i) })

		j := a.Allocate()
		a.PushBack(j)
		requireViolation(t, ErrLinked, func() { a.InsertBefore(j, i) })
		require.NoError(t, a.Validate())
	})

	t.Run("link free index", func(t *testing.T) {
		a := newTestArena(t, 2)
		requireViolation(t, ErrInvalidIndex, func() { a.PushBack(1) })
	})

	t.Run("insert before free index", func(t *testing.T) {
		a := newTestArena(t, 3)
		x := a.Allocate()
		a.PushBack(x)
		y := a.Allocate()
		requireViolation(t, ErrInvalidIndex, func() { a.InsertBefore(y, 2) })
	})

	t.Run("insert before unlinked index", func(t *testing.T) {
		a := newTestArena(t, 4)
		x := a.Allocate()
		a.PushBack(x)
		y, z := a.Allocate(), a.Allocate()

		ce := requireViolation(t, ErrInvalidIndex, func() { a.InsertBefore(z, y) })
		assert.Equal(t, "insert_before", ce.Op)
		assert.Equal(t, uint64(y), ce.Index)

		// The rejected splice leaves both indices usable.
		a.PushBack(y)
		a.InsertBefore(z, y)
		assert.Equal(t, []uint8{x, z, y}, forward(a))
		require.NoError(t, a.Validate())
	})

	t.Run("step from free index", func(t *testing.T) {
		a := newTestArena(t, 2)
		requireViolation(t, ErrInvalidIndex, func() { a.Next(0) })
		requireViolation(t, ErrInvalidIndex, func() { a.Prev(1) })
	})

	t.Run("zero arena", func(t *testing.T) {
		var a Arena[uint16]
		requireViolation(t, ErrCapacityExhausted, func() { a.Allocate() })
	})
}

func TestViolation_Init(t *testing.T) {
	t.Run("zero capacity", func(t *testing.T) {
		requireViolation(t, ErrInvalidCapacity, func() {
			NewArena(0, make([]Link[uint8], 4))
		})
	})

	t.Run("negative capacity", func(t *testing.T) {
		requireViolation(t, ErrInvalidCapacity, func() {
			NewArena(-1, make([]Link[uint8], 4))
		})
	})

	t.Run("capacity beyond index width", func(t *testing.T) {
		ce := requireViolation(t, ErrInvalidCapacity, func() {
			NewArena(256, make([]Link[uint8], 256))
		})
		assert.Equal(t, "init", ce.Op)
		assert.Equal(t, 256, ce.Capacity)
	})

	t.Run("short link array", func(t *testing.T) {
		requireViolation(t, ErrBackingTooSmall, func() {
			NewArena(4, make([]Link[uint8], 3))
		})
	})

	t.Run("short value array", func(t *testing.T) {
		requireViolation(t, ErrBackingTooSmall, func() {
			New(4, make([]int, 3), make([]Link[uint8], 4))
		})
	})
}

func TestViolation_Logged(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))
	l := New(1, make([]int, 1), make([]Link[uint8], 1), WithLogger(logger), WithName("queue"))

	requireViolation(t, ErrEmpty, l.PopFront)

	out := buf.String()
	assert.Contains(t, out, `"msg":"contract violation"`)
	assert.Contains(t, out, `"op":"pop_front"`)
	assert.Contains(t, out, `"list":"queue"`)
}

func TestAsContractError(t *testing.T) {
	_, ok := AsContractError(nil)
	assert.False(t, ok)

	_, ok = AsContractError("boom")
	assert.False(t, ok)

	_, ok = AsContractError(ErrEmpty)
	assert.False(t, ok)

	ce, ok := AsContractError(&ContractError{Op: "x", cause: ErrEmpty})
	require.True(t, ok)
	assert.ErrorIs(t, ce, ErrEmpty)
	assert.Contains(t, ce.Error(), "x: list is empty")
}
