package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	gerrors "github.com/YuminosukeSato/gridge/pkg/errors"
)

// NewWarnLogger creates a zerolog logger for library warnings.
// Warning types that implement zerolog.LogObjectMarshaler are emitted
// as structured objects, anything else as a plain message.
func NewWarnLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// EnableZerologWarnings routes pkg/errors warnings through the given
// zerolog logger. Registered lazily to avoid a circular import between
// pkg/log and pkg/errors.
func EnableZerologWarnings(logger zerolog.Logger) {
	gerrors.SetZerologWarnFunc(func(warning error) {
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().Object("warning", marshaler).Msg(warning.Error())
			return
		}
		logger.Warn().Msg(warning.Error())
	})
}
