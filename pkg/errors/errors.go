// Package errors provides structured error handling for drift-lottie.
//
// Configuration errors and lifecycle-ordering errors are fatal: the code
// that detects them panics with a typed value so the host's error boundary
// (see [Recover]) sees the full context. Recoverable failures are returned
// as ordinary errors wrapping the sentinels below.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid declarative configuration.
	KindConfig
	// KindLifecycle indicates a call made in the wrong lifecycle state.
	KindLifecycle
	// KindLoad indicates an animation source could not be loaded.
	KindLoad
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindLoad:
		return "load"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is checks.
var (
	ErrNoContainer     = stderrors.New("no container surface")
	ErrNoSource        = stderrors.New("no animation source")
	ErrUnknownRenderer = stderrors.New("unknown renderer")
	ErrInvalidState    = stderrors.New("playing state not specified")
	ErrDestroyed       = stderrors.New("animation destroyed")
	ErrNotAttached     = stderrors.New("no animation attached")
)

// Error represents a structured, reportable error.
type Error struct {
	// Op is the operation that failed (e.g., "lottie.LoadAnimation").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError reports a caller configuration the adapter refuses to
// default silently. It is raised with panic.
type ConfigError struct {
	// Op is the operation that rejected the configuration.
	Op string
	// Field names the offending prop or config field.
	Field string
	// Value is the rejected value, if any.
	Value any
	// Err is the underlying cause.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: invalid %s %v: %v", e.Op, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LifecycleError reports an operation invoked on an instance that is not
// in a state to accept it, such as a control call after destroy.
type LifecycleError struct {
	// Op is the rejected operation.
	Op string
	// State is the state the instance was in.
	State string
	// Err is the underlying cause.
	Err error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s in state %s: %v", e.Op, e.State, e.Err)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.StatefulElement.Mount").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, so callers can
// match a recovered *ConfigError with errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// New returns an error that formats as the given text.
func New(text string) error { return stderrors.New(text) }
