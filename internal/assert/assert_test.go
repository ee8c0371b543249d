//go:build !fslist_release

package assert

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestFail(t *testing.T) {
	t.Run("panics with error", func(t *testing.T) {
		require.PanicsWithError(t, "boom", func() {
			Fail(nil, errBoom)
		})
	})

	t.Run("logs before panicking", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		assert.Panics(t, func() {
			Fail(logger, errBoom, "op", "pop_front", "size", 0)
		})

		out := buf.String()
		assert.Contains(t, out, "contract violation")
		assert.Contains(t, out, "error=boom")
		assert.Contains(t, out, "op=pop_front")
		assert.Contains(t, out, "size=0")
	})
}
