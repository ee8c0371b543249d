package fslist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DetectsCorruption(t *testing.T) {
	setup := func(t *testing.T) *Arena[uint8] {
		a := newTestArena(t, 6)
		for range 4 {
			a.PushBack(a.Allocate())
		}
		require.NoError(t, a.Validate())
		return a
	}

	tests := []struct {
		name    string
		corrupt func(a *Arena[uint8])
		reason  string
	}{
		{
			name:    "size drift",
			corrupt: func(a *Arena[uint8]) { a.size++ },
			reason:  "size does not match active list length",
		},
		{
			name:    "cycle",
			corrupt: func(a *Arena[uint8]) { a.links[3].next = 1 },
			reason:  "cycle in active list",
		},
		{
			name:    "broken back link",
			corrupt: func(a *Arena[uint8]) { a.links[2].prev = 0 },
			reason:  "asymmetric active link",
		},
		{
			name:    "stale tail",
			corrupt: func(a *Arena[uint8]) { a.tail = 2 },
			reason:  "tail does not end the active list",
		},
		{
			name:    "live slot marked free",
			corrupt: func(a *Arena[uint8]) { a.links[1].self = Sentinel[uint8]() },
			reason:  "active index not marked live",
		},
		{
			name:    "idle slot marked live",
			corrupt: func(a *Arena[uint8]) { a.links[5].self = 5 },
			reason:  "idle index marked live",
		},
		{
			name:    "index in both lists",
			corrupt: func(a *Arena[uint8]) { a.links[5].next = 0 },
			reason:  "index both live and idle",
		},
		{
			name: "lost idle index",
			corrupt: func(a *Arena[uint8]) {
				a.links[4].next = Sentinel[uint8]()
				a.idleBack = 4
			},
			reason: "live and idle sets do not cover the index space",
		},
		{
			name:    "out of range",
			corrupt: func(a *Arena[uint8]) { a.links[3].next = 9 },
			reason:  "active index out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setup(t)
			tt.corrupt(a)

			err := a.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorrupted)

			var ce *CorruptionError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.reason, ce.Reason)
		})
	}
}

func TestLiveSet_BoundedOnCycle(t *testing.T) {
	a := newTestArena(t, 4)
	for range 3 {
		a.PushBack(a.Allocate())
	}
	a.links[2].next = 0

	// Must terminate despite the cycle.
	assert.Equal(t, uint64(3), a.LiveSet().GetCardinality())
}
