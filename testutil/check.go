package testutil

import (
	"container/list"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/kang-sw/fslist"
)

// Config controls a single model-checking run.
type Config struct {
	// Capacity of the list under test, at most 65535.
	Capacity int
	// Ops is the number of random operations to apply.
	Ops int
}

// DefaultConfig returns a small configuration that still exercises full and
// empty lists frequently.
func DefaultConfig() Config {
	return Config{Capacity: 32, Ops: 2000}
}

// Result summarizes a successful run.
type Result struct {
	Seed     int64
	Ops      int
	MaxLen   int
	Inserts  int
	Erases   int
	Clears   int
	Duration time.Duration
}

// ErrMismatch is returned when the list diverges from the model.
var ErrMismatch = errors.New("testutil: list diverged from model")

type op int

const (
	opPushFront op = iota
	opPushBack
	opInsert
	opErase
	opPopFront
	opPopBack
	opClear
	opCursor
)

var opNames = [...]string{
	opPushFront: "push_front",
	opPushBack:  "push_back",
	opInsert:    "insert",
	opErase:     "erase",
	opPopFront:  "pop_front",
	opPopBack:   "pop_back",
	opClear:     "clear",
	opCursor:    "cursor",
}

func (o op) String() string { return opNames[o] }

// entry is the model's element: the stored value plus the arena index the
// list is expected to hold it at.
type entry struct {
	value int
	index uint16
}

type checker struct {
	rng   *RNG
	cfg   Config
	list  *fslist.List[int, uint16]
	model *list.List
	// idle mirrors the arena's FIFO idle queue.
	idle []uint16
	next int
	res  Result
}

// Check applies cfg.Ops random operations, seeded by seed, to a fresh
// List[int, uint16] and an equivalent container/list model. After every
// operation it compares order, size and index reuse, and runs Validate.
//
// A contract violation raised by the list is reported as an error.
func Check(seed int64, cfg Config) (res Result, err error) {
	if cfg.Capacity < 1 || cfg.Capacity > int(fslist.Sentinel[uint16]()) {
		return Result{}, fmt.Errorf("testutil: capacity %d out of range", cfg.Capacity)
	}

	c := &checker{
		rng:   NewRNG(seed),
		cfg:   cfg,
		list:  fslist.New(cfg.Capacity, make([]int, cfg.Capacity), make([]fslist.Link[uint16], cfg.Capacity)),
		model: list.New(),
		res:   Result{Seed: seed},
	}
	for i := range cfg.Capacity {
		c.idle = append(c.idle, uint16(i))
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			ce, ok := fslist.AsContractError(r)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("seed %d op %d: %w", seed, c.res.Ops, ce)
		}
	}()

	for range cfg.Ops {
		o := c.pick()
		if err := c.apply(o); err != nil {
			return c.res, fmt.Errorf("seed %d op %d (%s): %w", seed, c.res.Ops, o, err)
		}
		if err := c.compare(); err != nil {
			return c.res, fmt.Errorf("seed %d op %d (%s): %w", seed, c.res.Ops, o, err)
		}
		c.res.Ops++
		c.res.MaxLen = max(c.res.MaxLen, c.list.Len())
	}

	c.res.Duration = time.Since(start)
	return c.res, nil
}

// pick chooses an operation that is legal in the current state. Inserts are
// favored so the list regularly reaches capacity.
func (c *checker) pick() op {
	n, full := c.list.Len(), c.list.Len() == c.list.Cap()

	for {
		o := op(c.rng.Intn(len(opNames)))
		switch {
		case o == opClear && c.rng.Intn(50) != 0:
			continue
		case (o == opPushFront || o == opPushBack || o == opInsert) && full:
			continue
		case (o == opErase || o == opPopFront || o == opPopBack) && n == 0:
			continue
		}
		return o
	}
}

func (c *checker) apply(o op) error {
	switch o {
	case opPushFront:
		v := c.value()
		c.list.PushFront(v)
		return c.inserted(c.model.PushFront, v, c.list.Begin().Index())

	case opPushBack:
		v := c.value()
		c.list.PushBack(v)
		return c.inserted(c.model.PushBack, v, c.list.Arena().Tail())

	case opInsert:
		pos := c.rng.Intn(c.list.Len() + 1)
		at, mark := c.at(pos)
		v := c.value()
		got := c.list.Insert(at, v)
		if got.Value() != v {
			return fmt.Errorf("%w: inserted cursor holds %d, want %d", ErrMismatch, got.Value(), v)
		}
		if !got.Next().Equal(at) {
			return fmt.Errorf("%w: inserted element is not before its position", ErrMismatch)
		}
		return c.inserted(func(e any) *list.Element {
			if mark == nil {
				return c.model.PushBack(e)
			}
			return c.model.InsertBefore(e, mark)
		}, v, got.Index())

	case opErase:
		pos := c.rng.Intn(c.list.Len())
		at, mark := c.at(pos)
		next := c.list.Erase(at)
		if want := mark.Next(); want == nil && !next.IsEnd() {
			return fmt.Errorf("%w: erase of last element returned index %d", ErrMismatch, next.Index())
		} else if want != nil && next.Index() != want.Value.(entry).index {
			return fmt.Errorf("%w: erase returned index %d, want %d", ErrMismatch, next.Index(), want.Value.(entry).index)
		}
		c.erased(mark)

	case opPopFront:
		c.list.PopFront()
		c.erased(c.model.Front())

	case opPopBack:
		c.list.PopBack()
		c.erased(c.model.Back())

	case opClear:
		c.list.Clear()
		for e := c.model.Front(); e != nil; e = e.Next() {
			c.idle = append(c.idle, e.Value.(entry).index)
		}
		c.model.Init()
		c.res.Clears++

	case opCursor:
		return c.checkCursors()
	}
	return nil
}

func (c *checker) value() int {
	c.next++
	return c.next
}

// inserted records an insertion in the model and checks that the list took
// the index at the front of the idle queue.
func (c *checker) inserted(push func(any) *list.Element, v int, got uint16) error {
	want := c.idle[0]
	c.idle = c.idle[1:]
	push(entry{value: v, index: want})
	c.res.Inserts++

	if got != want {
		return fmt.Errorf("%w: allocated index %d, want %d", ErrMismatch, got, want)
	}
	return nil
}

func (c *checker) erased(e *list.Element) {
	c.idle = append(c.idle, c.model.Remove(e).(entry).index)
	c.res.Erases++
}

// at returns the cursor at position pos of the list and the model element at
// the same position. pos == Len yields End and a nil element.
func (c *checker) at(pos int) (fslist.Cursor[int, uint16], *list.Element) {
	cur, e := c.list.Begin(), c.model.Front()
	for range pos {
		cur, e = cur.Next(), e.Next()
	}
	return cur, e
}

// checkCursors verifies prev(next(c)) == c for every non-end cursor and
// next(prev(c)) == c for every non-begin cursor.
func (c *checker) checkCursors() error {
	begin := c.list.Begin()
	for cur := begin; ; cur = cur.Next() {
		if !cur.IsEnd() {
			if back := cur.Next().Prev(); !back.Equal(cur) {
				return fmt.Errorf("%w: prev(next(%d)) = %d", ErrMismatch, cur.Index(), back.Index())
			}
		}
		if !cur.Equal(begin) {
			if fwd := cur.Prev().Next(); !fwd.Equal(cur) {
				return fmt.Errorf("%w: next(prev(%d)) = %d", ErrMismatch, cur.Index(), fwd.Index())
			}
		}
		if cur.IsEnd() {
			return nil
		}
	}
}

func (c *checker) compare() error {
	if c.list.Len() != c.model.Len() {
		return fmt.Errorf("%w: len %d, want %d", ErrMismatch, c.list.Len(), c.model.Len())
	}

	want := make([]entry, 0, c.model.Len())
	for e := c.model.Front(); e != nil; e = e.Next() {
		want = append(want, e.Value.(entry))
	}

	got := make([]entry, 0, c.list.Len())
	for i, v := range c.list.Indexed() {
		got = append(got, entry{value: *v, index: i})
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: forward order %v, want %v", ErrMismatch, got, want)
	}

	slices.Reverse(want)
	if back := slices.Collect(c.list.Backward()); !slices.EqualFunc(back, want, func(v int, e entry) bool { return v == e.value }) {
		return fmt.Errorf("%w: backward order %v", ErrMismatch, back)
	}

	a := c.list.Arena()
	if len(c.idle) > 0 && (a.IdleFront() != c.idle[0] || a.IdleBack() != c.idle[len(c.idle)-1]) {
		return fmt.Errorf("%w: idle queue [%d..%d], want [%d..%d]", ErrMismatch,
			a.IdleFront(), a.IdleBack(), c.idle[0], c.idle[len(c.idle)-1])
	}

	return a.Validate()
}
