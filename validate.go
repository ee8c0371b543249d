package fslist

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// LiveSet returns the indices reachable by forward traversal of the active
// list. It allocates and is O(capacity); use it for diagnostics and tests.
func (a *Arena[I]) LiveSet() *roaring64.Bitmap {
	bm := roaring64.New()
	a.walk(a.head, func(i I) bool {
		return bm.CheckedAdd(uint64(i))
	})
	return bm
}

// IdleSet returns the indices reachable from the front of the idle queue.
func (a *Arena[I]) IdleSet() *roaring64.Bitmap {
	bm := roaring64.New()
	a.walk(a.idleFront, func(i I) bool {
		return bm.CheckedAdd(uint64(i))
	})
	return bm
}

// walk follows next links from start, stopping at the sentinel, at an
// out-of-range index, when visit returns false, or after capacity steps.
func (a *Arena[I]) walk(start I, visit func(I) bool) {
	steps := 0
	for i := start; i != Sentinel[I]() && i < a.capacity && steps < int(a.capacity); i = a.links[i].next {
		if !visit(i) {
			return
		}
		steps++
	}
}

// Validate checks every structural invariant of the arena:
//
//   - the active list is acyclic, its links are symmetric, its ends carry the
//     sentinel and its length equals Len
//   - every idle index is marked free and the idle queue ends at IdleBack
//   - live and idle indices are disjoint and together cover [0, Cap)
//
// It returns a *CorruptionError wrapping ErrCorrupted for the first broken
// invariant. Validate never panics.
func (a *Arena[I]) Validate() error {
	none := Sentinel[I]()
	live := roaring64.New()

	prev := none
	last := none
	for i := a.head; i != none; i = a.links[i].next {
		if i >= a.capacity {
			return corrupt("active index out of range", i)
		}
		if !live.CheckedAdd(uint64(i)) {
			return corrupt("cycle in active list", i)
		}
		n := a.links[i]
		if n.self != i {
			return corrupt("active index not marked live", i)
		}
		if n.prev != prev {
			return corrupt("asymmetric active link", i)
		}
		prev = i
		last = i
	}
	if last != a.tail {
		return corrupt("tail does not end the active list", a.tail)
	}
	if live.GetCardinality() != uint64(a.size) {
		return corrupt("size does not match active list length", I(live.GetCardinality()))
	}

	idle := roaring64.New()
	prev = none
	last = none
	for i := a.idleFront; i != none; i = a.links[i].next {
		if i >= a.capacity {
			return corrupt("idle index out of range", i)
		}
		if live.Contains(uint64(i)) {
			return corrupt("index both live and idle", i)
		}
		if !idle.CheckedAdd(uint64(i)) {
			return corrupt("cycle in idle queue", i)
		}
		n := a.links[i]
		if n.self != none {
			return corrupt("idle index marked live", i)
		}
		if n.prev != prev {
			return corrupt("asymmetric idle link", i)
		}
		prev = i
		last = i
	}
	if last != a.idleBack {
		return corrupt("idle back does not end the idle queue", a.idleBack)
	}

	if live.GetCardinality()+idle.GetCardinality() != uint64(a.capacity) {
		return corrupt("live and idle sets do not cover the index space", none)
	}
	return nil
}

func corrupt[I Index](reason string, i I) error {
	return &CorruptionError{Reason: reason, Index: uint64(i)}
}
