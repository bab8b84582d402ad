package csv

import (
	"io"
	"log/slog"
)

// Options configures parsing. The grammar itself is fixed; options only
// change what is done around it.
type Options struct {
	// Logger receives debug events for each parse. nil disables logging.
	Logger *slog.Logger

	// Strict rejects input after the sentinel with ErrTrailingData.
	// Default: false (the remainder is returned to the caller)
	Strict bool
}

// DefaultOptions returns the default parse configuration.
func DefaultOptions() Options {
	return Options{
		Logger: nil,
		Strict: false,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return discardLogger
}
