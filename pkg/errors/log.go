package errors

import (
	"go.uber.org/zap"

	"github.com/go-drift/drift-lottie/pkg/logging"
)

// LogHandler is an ErrorHandler that writes through the process logger.
type LogHandler struct {
	// Verbose enables stack traces on panics.
	Verbose bool
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	logging.Named("errors").Error(err.Op,
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
		zap.Time("at", err.Timestamp),
	)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.Any("value", err.Value)}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	logging.Named("errors").Error("panic in "+err.Op, fields...)
}
