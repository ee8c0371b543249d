package assert

import (
	"context"
	"log/slog"
)

// Fail logs err at error level through logger and panics with err.
// A nil logger skips logging.
//
// attrs are slog key/value pairs appended to the log record.
func Fail(logger *slog.Logger, err error, attrs ...any) {
	if logger != nil {
		args := make([]any, 0, len(attrs)+2)
		args = append(args, "error", err)
		args = append(args, attrs...)
		logger.ErrorContext(context.Background(), "contract violation", args...)
	}
	panic(err)
}
